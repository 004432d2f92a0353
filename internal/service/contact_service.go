package service

import (
	"context"
	"strings"

	"github.com/loanbaazar/backend/internal/model"
)

// ValidationError reports required contact fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// SheetAppender mirrors a row into an external spreadsheet.
type SheetAppender interface {
	Append(ctx context.Context, row []any) error
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores msg. On success msg.ID and timestamps are
	// populated. Returns *ValidationError when a required field is empty.
	Submit(ctx context.Context, msg *model.ContactSubmission) error

	// List returns every submission, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)

	// SetReadState marks a submission read or unread. Returns
	// repository.ErrNotFound for unknown ids.
	SetReadState(ctx context.Context, id string, isRead bool) (*model.ContactSubmission, error)

	// Delete removes a submission; deleting a missing id succeeds.
	Delete(ctx context.Context, id string) error
}
