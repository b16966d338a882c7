package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"photofolio/internal/models"
)

// PhotoRepository defines the persistence operations required by the
// photo service.
type PhotoRepository interface {
	GetAll(ctx context.Context) ([]models.Photo, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.Photo, error)
	GetByID(ctx context.Context, id string) (*models.Photo, error)
	Create(ctx context.Context, p models.Photo) error
	Update(ctx context.Context, id string, upd models.PhotoUpdate, updatedAt string) error
	Delete(ctx context.Context, id string) error
}

// CreatePhotoInput carries the fields of a new photo. The id and
// timestamps are assigned by the service.
type CreatePhotoInput struct {
	Title           string
	Description     string
	ImageURL        string
	BackgroundColor string
	CategoryID      string
}

// PhotoService implements photo operations by delegating to a
// PhotoRepository.
type PhotoService struct {
	repo PhotoRepository
	log  *zap.Logger
}

// NewPhotoService constructs a PhotoService using the provided repository
// and logger.
func NewPhotoService(repo PhotoRepository, log *zap.Logger) *PhotoService {
	return &PhotoService{repo: repo, log: log}
}

func (s *PhotoService) now() string {
	return time.Now().UTC().Format(models.TimeLayout)
}

// List returns all photos, newest first. Storage failures are logged and
// masked as an empty list.
func (s *PhotoService) List(ctx context.Context) []models.Photo {
	photos, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("failed to list photos", zap.Error(err))
		return []models.Photo{}
	}
	return photos
}

// ListByCategory returns the photos of one category, newest first.
// Storage failures are logged and masked as an empty list.
func (s *PhotoService) ListByCategory(ctx context.Context, categoryID string) []models.Photo {
	photos, err := s.repo.GetByCategory(ctx, categoryID)
	if err != nil {
		s.log.Error("failed to list photos by category",
			zap.String("category_id", categoryID), zap.Error(err))
		return []models.Photo{}
	}
	return photos
}

// Get returns the photo with the given id, or ErrNotFound.
func (s *PhotoService) Get(ctx context.Context, id string) (*models.Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}
	return p, nil
}

// Create stores a new photo with a fresh id and identical creation and
// update timestamps.
func (s *PhotoService) Create(ctx context.Context, in CreatePhotoInput) (*models.Photo, error) {
	if in.Title == "" || in.ImageURL == "" {
		return nil, ErrValidation
	}

	now := s.now()
	p := models.Photo{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		BackgroundColor: in.BackgroundColor,
		CategoryID:      in.CategoryID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	return &p, nil
}

// Update merges the supplied fields into the photo and refreshes its
// update timestamp, then returns the stored row. Returns ErrNotFound for
// an unknown id.
func (s *PhotoService) Update(ctx context.Context, id string, upd models.PhotoUpdate) (*models.Photo, error) {
	err := s.repo.Update(ctx, id, upd, s.now())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update photo: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete removes the photo row. Returns ErrNotFound for an unknown id.
// Removal of the backing image file is the caller's concern.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
