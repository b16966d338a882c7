package repository

import (
	"context"
	"database/sql"
	"fmt"

	"photofolio/internal/models"
)

const photoColumns = `id, title, COALESCE(description, ''), imageUrl,
		COALESCE(backgroundColor, ''), COALESCE(categoryId, ''), createdAt, updatedAt`

// PhotoRepository implements photo persistence over a sqlite database.
type PhotoRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPhotoRepository creates a PhotoRepository with the given database connection.
func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{DB: db}
}

func scanPhoto(row interface{ Scan(...any) error }) (models.Photo, error) {
	var p models.Photo
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL,
		&p.BackgroundColor, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetAll returns every photo sorted by creation time, newest first.
func (r *PhotoRepository) GetAll(ctx context.Context) ([]models.Photo, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+photoColumns+` FROM photos ORDER BY createdAt DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("GetAll photos: %w", err)
	}
	defer rows.Close()

	return collectPhotos(rows)
}

// GetByCategory returns the photos referencing the given category,
// newest first.
func (r *PhotoRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.Photo, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+photoColumns+` FROM photos WHERE categoryId = ? ORDER BY createdAt DESC
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("GetByCategory photos: %w", err)
	}
	defer rows.Close()

	return collectPhotos(rows)
}

func collectPhotos(rows *sql.Rows) ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, nil
}

// GetByID returns the photo with the given id.
// Returns sql.ErrNoRows if it does not exist.
func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	p, err := scanPhoto(r.DB.QueryRowContext(ctx, `
		SELECT `+photoColumns+` FROM photos WHERE id = ?
	`, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new photo row.
func (r *PhotoRepository) Create(ctx context.Context, p models.Photo) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO photos (id, title, description, imageUrl, backgroundColor, categoryId, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Title, p.Description, p.ImageURL, p.BackgroundColor, p.CategoryID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

// Update merges the non-nil fields of upd into the row in a single
// statement and refreshes updatedAt. Returns sql.ErrNoRows if the id
// does not exist.
func (r *PhotoRepository) Update(ctx context.Context, id string, upd models.PhotoUpdate, updatedAt string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE photos SET
			title = COALESCE(?, title),
			description = COALESCE(?, description),
			backgroundColor = COALESCE(?, backgroundColor),
			categoryId = COALESCE(?, categoryId),
			updatedAt = ?
		WHERE id = ?
	`, upd.Title, upd.Description, upd.BackgroundColor, upd.CategoryID, updatedAt, id)
	if err != nil {
		return fmt.Errorf("update photo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update photo rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the photo row. Returns sql.ErrNoRows if the id does not exist.
func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete photo rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
