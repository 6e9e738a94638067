package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"splitledger/internal/auth"
	"splitledger/internal/storage/sqlite"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret-key", "splitledger-test", time.Hour)
	return NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, "alice@example.com", "Alice", "correct-horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if session.Token == "" || session.User.ID == "" {
		t.Errorf("session = %+v, want token and user ID", session)
	}
	if !session.Expiry.After(time.Now()) {
		t.Errorf("Expiry = %v, want in the future", session.Expiry)
	}

	login, err := svc.Login(ctx, "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.User.ID != session.User.ID {
		t.Errorf("login user = %s, want %s", login.User.ID, session.User.ID)
	}

	if _, err := svc.Login(ctx, "alice@example.com", "wrong-password"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("Login with bad password = %v, want %v", err, auth.ErrInvalidCredentials)
	}
}

func TestRegisterRejections(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice@example.com", "Alice", "short"); !errors.Is(err, auth.ErrWeakPassword) {
		t.Errorf("Register with weak password = %v, want %v", err, auth.ErrWeakPassword)
	}

	if _, err := svc.Register(ctx, "alice@example.com", "Alice", "correct-horse"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "alice@example.com", "Alice 2", "battery-staple"); !errors.Is(err, auth.ErrEmailExists) {
		t.Errorf("duplicate Register = %v, want %v", err, auth.ErrEmailExists)
	}
}
