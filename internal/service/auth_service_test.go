package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/loanbaazar/backend/pkg/auth"
)

var testSecret = []byte("test-secret-for-admin-tokens-32bytes")

func TestAuthService_Login_Success(t *testing.T) {
	svc := NewAuthService("admin", "correct-pw", testSecret)

	res, err := svc.Login(context.Background(), "admin", "correct-pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Username != "admin" || res.Role != auth.RoleAdmin {
		t.Errorf("unexpected identity: %+v", res)
	}

	claims, err := auth.VerifyToken(res.Token, testSecret)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("expected username claim admin, got %q", claims.Username)
	}
	if d := time.Until(res.ExpiresAt); d < 23*time.Hour || d > 24*time.Hour {
		t.Errorf("expected ~24h expiry, got %v", d)
	}
}

func TestAuthService_Login_ExpiresAfter24h(t *testing.T) {
	impl := NewAuthService("admin", "correct-pw", testSecret).(*authServiceImpl)
	impl.now = func() time.Time { return time.Now().Add(-24*time.Hour - time.Minute) }

	res, err := impl.Login(context.Background(), "admin", "correct-pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := auth.VerifyToken(res.Token, testSecret); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected token issued >24h ago to be rejected, got %v", err)
	}
}

func TestAuthService_Login_InvalidCredentialsAreUniform(t *testing.T) {
	svc := NewAuthService("admin", "correct-pw", testSecret)

	cases := []struct{ user, pass string }{
		{"admin", "wrong"},
		{"root", "correct-pw"},
		{"root", "wrong"},
		{"", ""},
		{"Admin", "correct-pw"},
	}
	for _, c := range cases {
		res, err := svc.Login(context.Background(), c.user, c.pass)
		if err != ErrInvalidCredentials {
			t.Errorf("login(%q, %q): expected exactly ErrInvalidCredentials, got %v", c.user, c.pass, err)
		}
		if res != nil {
			t.Errorf("login(%q, %q): expected nil result", c.user, c.pass)
		}
	}
}

func TestAuthService_Login_EmptyConfiguredPasswordDisablesLogin(t *testing.T) {
	svc := NewAuthService("admin", "", testSecret)

	if _, err := svc.Login(context.Background(), "admin", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials when no password is configured, got %v", err)
	}
}
