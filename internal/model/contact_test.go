package model

import (
	"reflect"
	"testing"
	"time"
)

func TestContactSubmission_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		in   ContactSubmission
		want []string
	}{
		{"complete", ContactSubmission{Name: "A", Email: "a@b.in", Phone: "98", Message: "hi"}, nil},
		{"no name", ContactSubmission{Email: "a@b.in", Phone: "98", Message: "hi"}, []string{"name"}},
		{"no phone", ContactSubmission{Name: "A", Email: "a@b.in", Message: "hi"}, []string{"phone"}},
		{"empty", ContactSubmission{}, []string{"name", "email", "phone", "message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.MissingFields(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingFields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContactSubmission_SheetRow(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	c := ContactSubmission{Name: "Ravi", Email: "ravi@example.in", Phone: "9876543210", Message: "Need a loan", SubmittedAt: ts}

	want := []any{"2024-03-01T10:30:00Z", "Ravi", "ravi@example.in", "9876543210", "Need a loan"}
	if got := c.SheetRow(); !reflect.DeepEqual(got, want) {
		t.Errorf("SheetRow() = %v, want %v", got, want)
	}
}
