// Package service implements the application services on top of the
// storage layer and the settlement engine.
package service

import (
	"context"
	"log/slog"
	"time"

	"splitledger/internal/auth"
	"splitledger/internal/models"
)

// AuthService handles registration and login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthService creates an AuthService.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{authenticator: authenticator, jwtManager: jwtManager}
}

// Session is the result of a successful registration or login.
type Session struct {
	User   *models.User
	Token  string
	Expiry time.Time
}

// Register creates a user account and returns a fresh session.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*Session, error) {
	user, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		return nil, err
	}

	token, expiry, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("token generation failed after register", "user_id", user.ID, "error", err)
		return nil, err
	}
	return &Session{User: user, Token: token, Expiry: expiry}, nil
}

// Login verifies credentials and returns a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, expiry, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("token generation failed after login", "user_id", user.ID, "error", err)
		return nil, err
	}
	return &Session{User: user, Token: token, Expiry: expiry}, nil
}
