package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// ImageRepository persists metadata for uploaded images. Listings run
// against these rows; the asset store holds only the blobs.
type ImageRepository struct {
	db *sqlx.DB
}

// NewImageRepository creates the repository.
func NewImageRepository(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// ListByCategory returns image records for a category, newest first.
func (r *ImageRepository) ListByCategory(ctx context.Context, category models.ImageCategory) ([]models.ImageRecord, error) {
	const query = `SELECT id, filename, url, category, size, uploaded_at
FROM images WHERE category = $1 ORDER BY uploaded_at DESC`
	images := []models.ImageRecord{}
	if err := r.db.SelectContext(ctx, &images, query, category); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

// Get returns a single image record by id. Malformed ids report absence
// without touching the uuid column.
func (r *ImageRepository) Get(ctx context.Context, id string) (*models.ImageRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, appErrors.ErrNotFound
	}
	const query = `SELECT id, filename, url, category, size, uploaded_at FROM images WHERE id = $1`
	var image models.ImageRecord
	if err := r.db.GetContext(ctx, &image, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &image, nil
}

// GetByFilename returns the image record matching a category and filename.
func (r *ImageRepository) GetByFilename(ctx context.Context, category models.ImageCategory, filename string) (*models.ImageRecord, error) {
	const query = `SELECT id, filename, url, category, size, uploaded_at
FROM images WHERE category = $1 AND filename = $2`
	var image models.ImageRecord
	if err := r.db.GetContext(ctx, &image, query, category, filename); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get image by filename: %w", err)
	}
	return &image, nil
}

// Create inserts a new image record, assigning its id when empty.
func (r *ImageRepository) Create(ctx context.Context, image *models.ImageRecord) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	if image.UploadedAt.IsZero() {
		image.UploadedAt = time.Now().UTC()
	}
	const query = `INSERT INTO images (id, filename, url, category, size, uploaded_at)
VALUES (:id, :filename, :url, :category, :size, :uploaded_at)`
	if _, err := r.db.NamedExecContext(ctx, query, image); err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	return nil
}

// Delete removes the image record and reports whether a row was removed.
func (r *ImageRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete image: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete image: %w", err)
	}
	return affected > 0, nil
}
