package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/loanbaazar/backend/internal/model"
	"github.com/loanbaazar/backend/internal/service"
)

const maxContactBodyBytes = 1 << 20

const msgFieldsRequired = "All fields are required: name, email, phone, message"

// ContactHandler serves the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type submitResponse struct {
	Message   string `json:"message"`
	ContactID string `json:"contactId"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgFieldsRequired, Missing: vErr.Missing})
			return
		}
		slog.Error("contact submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Message:   "Contact form submitted successfully!",
		ContactID: msg.ID,
	})
}
