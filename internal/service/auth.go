package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"photofolio/internal/models"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService verifies administrator credentials against the users table.
type AuthService struct {
	repo UserRepository
}

// NewAuthService constructs an AuthService using the provided repository.
func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate checks the username and password against the stored
// account. An unknown username and a wrong password both yield
// ErrInvalidCredentials, indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) error {
	u, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
