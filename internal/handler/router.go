package handler

import (
	"net/http"

	"github.com/loanbaazar/backend/internal/metrics"
	"github.com/loanbaazar/backend/internal/repository"
	"github.com/loanbaazar/backend/internal/service"
	"github.com/loanbaazar/backend/pkg/auth"
)

// Deps are the collaborators the HTTP surface needs.
type Deps struct {
	DB        repository.DB
	Origins   *OriginPolicy
	Contacts  service.ContactService
	Auth      service.AuthService
	JWTSecret []byte
}

// NewRouter registers every route and wraps the mux with request logging,
// security headers and the origin policy, in that order.
func NewRouter(d Deps) http.Handler {
	h := New(d.DB, d.Origins)
	contactHandler := NewContactHandler(d.Contacts)
	adminHandler := NewAdminHandler(d.Auth, d.Contacts)
	requireAdmin := auth.RequireAdmin(d.JWTSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/admin/login", adminHandler.Login)

	// Admin routes (bearer token required)
	mux.Handle("GET /api/admin/contacts", requireAdmin(http.HandlerFunc(adminHandler.ListContacts)))
	mux.Handle("DELETE /api/admin/contacts/{id}", requireAdmin(http.HandlerFunc(adminHandler.DeleteContact)))
	mux.Handle("PUT /api/admin/contacts/{id}/read", requireAdmin(http.HandlerFunc(adminHandler.MarkRead)))
	mux.Handle("PUT /api/admin/contacts/{id}/unread", requireAdmin(http.HandlerFunc(adminHandler.MarkUnread)))

	return RequestLogger(SecurityHeaders(h.CORS(mux)))
}
