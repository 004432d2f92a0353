package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/loanbaazar/backend/internal/model"
	"github.com/loanbaazar/backend/internal/repository"
	"github.com/loanbaazar/backend/internal/service"
	"github.com/loanbaazar/backend/pkg/auth"
)

// AdminHandler serves the administrator login and contact management routes.
// Every route except Login must be mounted behind auth.RequireAdmin.
type AdminHandler struct {
	authService    service.AuthService
	contactService service.ContactService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(authService service.AuthService, contactService service.ContactService) *AdminHandler {
	return &AdminHandler{authService: authService, contactService: contactService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminIdentity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	Admin   adminIdentity `json:"admin"`
}

type contactStateResponse struct {
	Message string                   `json:"message"`
	Contact *model.ContactSubmission `json:"contact"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			slog.Warn("admin login rejected", "remote_addr", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("admin login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	slog.Info("admin logged in", "username", res.Username)
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   res.Token,
		Admin:   adminIdentity{Username: res.Username, Role: res.Role},
	})
}

// ListContacts handles GET /api/admin/contacts.
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("list contacts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	if contacts == nil {
		contacts = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// DeleteContact handles DELETE /api/admin/contacts/{id}.
func (h *AdminHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.contactService.Delete(r.Context(), id); err != nil {
		slog.Error("delete contact failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}
	slog.Info("contact deleted", "id", id, "admin", adminName(r))
	writeJSON(w, http.StatusOK, messageResponse{Message: "Contact deleted successfully"})
}

// MarkRead handles PUT /api/admin/contacts/{id}/read.
func (h *AdminHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.setReadState(w, r, true)
}

// MarkUnread handles PUT /api/admin/contacts/{id}/unread.
func (h *AdminHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	h.setReadState(w, r, false)
}

func (h *AdminHandler) setReadState(w http.ResponseWriter, r *http.Request, isRead bool) {
	id := r.PathValue("id")
	contact, err := h.contactService.SetReadState(r.Context(), id, isRead)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact not found")
			return
		}
		slog.Error("update contact failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	msg := "Contact marked as unread"
	if isRead {
		msg = "Contact marked as read"
	}
	writeJSON(w, http.StatusOK, contactStateResponse{Message: msg, Contact: contact})
}

func adminName(r *http.Request) string {
	if claims, ok := auth.AdminFromContext(r.Context()); ok {
		return claims.Username
	}
	return ""
}
