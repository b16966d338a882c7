package repository

import (
	"context"
	"database/sql"

	"photofolio/internal/models"
)

// UserRepository implements user lookups over a sqlite database.
type UserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewUserRepository creates a UserRepository with the given database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// GetByUsername returns the user with the given username.
// Returns sql.ErrNoRows if it does not exist.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, username, password FROM users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
