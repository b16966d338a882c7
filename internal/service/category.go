package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"photofolio/internal/models"
)

// CategoryRepository defines the persistence operations required by the
// category service.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, c models.Category) error
	Delete(ctx context.Context, id string) error
}

// CategoryService implements category operations by delegating to a
// CategoryRepository.
type CategoryService struct {
	repo CategoryRepository
	log  *zap.Logger
}

// NewCategoryService constructs a CategoryService using the provided
// repository and logger.
func NewCategoryService(repo CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

// List returns all categories sorted by name ascending. Storage failures
// are logged and masked as an empty list.
func (s *CategoryService) List(ctx context.Context) []models.Category {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("failed to list categories", zap.Error(err))
		return []models.Category{}
	}
	return categories
}

// Get returns the category with the given id, or ErrNotFound.
func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Create validates and stores a new category with a fresh id.
// An empty name yields ErrValidation; a duplicate name yields ErrConflict.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, ErrValidation
	}

	exists, err := s.repo.NameExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, ErrConflict
	}

	c := models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

// Delete removes the category. Photos referencing it keep their dangling
// reference; there is no cascade.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
