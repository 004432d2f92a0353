package service

import (
	"context"
	"log/slog"

	"github.com/loanbaazar/backend/internal/metrics"
	"github.com/loanbaazar/backend/internal/model"
	"github.com/loanbaazar/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.ContactRepository
	sheets SheetAppender
}

// NewContactService creates a ContactService backed by the given repository.
// sheets may be nil, in which case submissions are not mirrored.
func NewContactService(repo repository.ContactRepository, sheets SheetAppender) ContactService {
	return &contactServiceImpl{repo: repo, sheets: sheets}
}

// Submit forces IsRead to false, persists msg and, when a spreadsheet is
// configured, mirrors it in the background. The mirror never affects the result.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactSubmission) error {
	if missing := msg.MissingFields(); len(missing) > 0 {
		metrics.IncrementContactSubmission(metrics.StatusInvalid)
		return &ValidationError{Missing: missing}
	}

	msg.IsRead = false
	if err := s.repo.Insert(ctx, msg); err != nil {
		metrics.IncrementContactSubmission(metrics.StatusFailed)
		return err
	}
	metrics.IncrementContactSubmission(metrics.StatusSuccess)

	if s.sheets != nil {
		go s.mirror(context.WithoutCancel(ctx), msg.ID, msg.SheetRow())
	}
	return nil
}

func (s *contactServiceImpl) mirror(ctx context.Context, contactID string, row []any) {
	if err := s.sheets.Append(ctx, row); err != nil {
		metrics.IncrementSheetAppend(metrics.StatusFailed)
		slog.Error("sheet append failed", "error", err, "contact_id", contactID)
		return
	}
	metrics.IncrementSheetAppend(metrics.StatusSuccess)
	slog.Debug("sheet append done", "contact_id", contactID)
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []*model.ContactSubmission{}
	}
	return contacts, nil
}

func (s *contactServiceImpl) SetReadState(ctx context.Context, id string, isRead bool) (*model.ContactSubmission, error) {
	return s.repo.UpdateReadState(ctx, id, isRead)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
