package service

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult is a freshly issued admin session.
type LoginResult struct {
	Token     string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// AuthService authenticates the single configured administrator.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
