package model

import "time"

// ContactSubmission is a message left by a visitor through the contact form.
// IsRead is the only field that changes after creation.
type ContactSubmission struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"isRead"`
	SubmittedAt time.Time `json:"submittedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MissingFields returns the names of required fields that are empty, in form order.
func (c *ContactSubmission) MissingFields() []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Phone == "" {
		missing = append(missing, "phone")
	}
	if c.Message == "" {
		missing = append(missing, "message")
	}
	return missing
}

// SheetRow is the row mirrored into the spreadsheet for this submission.
func (c *ContactSubmission) SheetRow() []any {
	return []any{
		c.SubmittedAt.UTC().Format(time.RFC3339),
		c.Name,
		c.Email,
		c.Phone,
		c.Message,
	}
}
