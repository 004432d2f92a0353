package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/loanbaazar/backend/internal/model"
)

const contactColumns = `id, name, email, phone, message, is_read, submitted_at, created_at, updated_at`

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Insert adds a contact_submissions row and populates msg.ID and timestamps
// from the RETURNING clause.
func (r *PgContactRepository) Insert(ctx context.Context, msg *model.ContactSubmission) error {
	var submittedAt any
	if !msg.SubmittedAt.IsZero() {
		submittedAt = msg.SubmittedAt
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, message, is_read, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, NOW()))
		 RETURNING id, submitted_at, created_at, updated_at`,
		msg.Name, msg.Email, msg.Phone, msg.Message, msg.IsRead, submittedAt,
	).Scan(&msg.ID, &msg.SubmittedAt, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+`
		 FROM contact_submissions
		 ORDER BY created_at DESC, seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*model.ContactSubmission{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("list contacts: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *PgContactRepository) UpdateReadState(ctx context.Context, id string, isRead bool) (*model.ContactSubmission, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	row := r.pool.QueryRow(ctx,
		`UPDATE contact_submissions
		 SET is_read = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+contactColumns,
		id, isRead,
	)
	c, err := scanContact(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update contact read state: %w", err)
	}
	return c, nil
}

func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func scanContact(row pgx.Row) (*model.ContactSubmission, error) {
	var c model.ContactSubmission
	if err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message,
		&c.IsRead, &c.SubmittedAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
