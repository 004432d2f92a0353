package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey string

const adminKey contextKey = "admin"

// Messages returned by RequireAdmin.
const (
	MsgNoToken      = "Access denied. No token provided."
	MsgInvalidToken = "Invalid token."
)

// AdminFromContext returns the verified admin claims attached by RequireAdmin.
func AdminFromContext(ctx context.Context) (*AdminClaims, bool) {
	v, ok := ctx.Value(adminKey).(*AdminClaims)
	return v, ok
}

// WithAdmin attaches claims to ctx.
func WithAdmin(ctx context.Context, claims *AdminClaims) context.Context {
	return context.WithValue(ctx, adminKey, claims)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
// It returns "" when the header is absent or uses another scheme.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAdmin rejects requests without a valid admin bearer token.
// A missing header or an empty bearer token yields 401. Any other scheme, or a
// token that fails verification, yields 400.
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				if hasForeignScheme(r) {
					writeError(w, http.StatusBadRequest, MsgInvalidToken)
					return
				}
				writeError(w, http.StatusUnauthorized, MsgNoToken)
				return
			}

			claims, err := VerifyToken(token, secret)
			if err != nil {
				slog.Debug("admin token rejected", "error", err, "path", r.URL.Path)
				writeError(w, http.StatusBadRequest, MsgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), claims)))
		})
	}
}

// hasForeignScheme reports whether Authorization carries a scheme other than Bearer.
func hasForeignScheme(r *http.Request) bool {
	scheme, _, _ := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	return scheme != "" && !strings.EqualFold(scheme, "Bearer")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
