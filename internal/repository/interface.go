package repository

import (
	"context"

	"github.com/loanbaazar/backend/internal/model"
)

// DB reports whether the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact submissions. Implementations assign the
// ID and the CreatedAt/UpdatedAt timestamps.
type ContactRepository interface {
	// Insert stores msg and fills in ID, SubmittedAt (when zero), CreatedAt and UpdatedAt.
	Insert(ctx context.Context, msg *model.ContactSubmission) error

	// List returns every submission, newest first. An empty store yields an empty slice.
	List(ctx context.Context) ([]*model.ContactSubmission, error)

	// UpdateReadState sets IsRead and UpdatedAt and returns the updated record.
	// It returns ErrNotFound when id does not resolve to a stored record.
	UpdateReadState(ctx context.Context, id string, isRead bool) (*model.ContactSubmission, error)

	// Delete removes the record if present. A missing record is not an error.
	Delete(ctx context.Context, id string) error
}
