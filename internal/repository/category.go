// Package repository provides sqlite persistence for the portfolio entities.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"photofolio/internal/models"
)

// CategoryRepository implements category persistence over a sqlite database.
type CategoryRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewCategoryRepository creates a CategoryRepository with the given database connection.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// GetAll returns every category sorted by name ascending.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, '') FROM categories ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("GetAll categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetByID returns the category with the given id.
// Returns sql.ErrNoRows if it does not exist.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, '') FROM categories WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// NameExists reports whether a category with the given name already exists.
func (r *CategoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE name = ?)`,
		name,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new category row.
func (r *CategoryRepository) Create(ctx context.Context, c models.Category) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO categories (id, name, description) VALUES (?, ?, ?)`,
		c.ID, c.Name, c.Description,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Delete removes the category row. Photos referencing it are left
// untouched; dangling references are a display-layer concern.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
