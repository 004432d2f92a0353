package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/loanbaazar/backend/internal/repository"
)

type Handler struct {
	db        repository.DB
	origins   *OriginPolicy
	startedAt time.Time
	now       func() time.Time
}

func New(db repository.DB, origins *OriginPolicy) *Handler {
	return &Handler{db: db, origins: origins, startedAt: time.Now(), now: time.Now}
}

// CORS rejects disallowed origins with 403 before any route runs and answers
// preflight requests directly.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if !h.origins.Allowed(origin) {
			slog.Warn("origin rejected", "origin", origin, "method", r.Method, "path", r.URL.Path)
			writeError(w, http.StatusForbidden, "Not allowed by CORS")
			return
		}

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
