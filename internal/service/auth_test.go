package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"photofolio/internal/models"
)

// fakeUserRepo returns a preconfigured user or error.
type fakeUserRepo struct {
	user *models.User
	err  error
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return f.user, f.err
}

func adminUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{ID: "u1", Username: "admin", PasswordHash: string(hash)}
}

func TestAuthenticate_Success(t *testing.T) {
	repo := &fakeUserRepo{user: adminUser(t, "admin123")}
	s := NewAuthService(repo)

	if err := s.Authenticate(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := &fakeUserRepo{user: adminUser(t, "admin123")}
	s := NewAuthService(repo)

	err := s.Authenticate(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	repo := &fakeUserRepo{err: sql.ErrNoRows}
	s := NewAuthService(repo)

	err := s.Authenticate(context.Background(), "ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_StorageError(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("db gone")}
	s := NewAuthService(repo)

	err := s.Authenticate(context.Background(), "admin", "admin123")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}
