package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/loanbaazar/backend/internal/metrics"
	"github.com/loanbaazar/backend/pkg/auth"
)

type authServiceImpl struct {
	username string
	password string
	secret   []byte
	now      func() time.Time
}

// NewAuthService creates an AuthService checking against the configured
// admin credentials and signing tokens with secret. An empty password
// disables login.
func NewAuthService(username, password string, secret []byte) AuthService {
	return &authServiceImpl{
		username: username,
		password: password,
		secret:   secret,
		now:      time.Now,
	}
}

// Login compares both fields without short-circuiting so that a wrong
// username and a wrong password cannot be told apart.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if s.password == "" || !userOK || !passOK {
		metrics.IncrementAdminLogin(metrics.StatusInvalid)
		return nil, ErrInvalidCredentials
	}

	issuedAt := s.now()
	token, err := auth.IssueToken(s.username, s.secret, issuedAt)
	if err != nil {
		metrics.IncrementAdminLogin(metrics.StatusFailed)
		return nil, err
	}
	metrics.IncrementAdminLogin(metrics.StatusSuccess)

	return &LoginResult{
		Token:     token,
		Username:  s.username,
		Role:      auth.RoleAdmin,
		ExpiresAt: issuedAt.Add(auth.TokenTTL),
	}, nil
}
