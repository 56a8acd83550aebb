package jsonfile

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// ImageRepository keeps upload metadata in images.json. A missing file
// simply means nothing has been uploaded yet.
type ImageRepository struct {
	col *Collection[models.ImageRecord]
}

// NewImageRepository creates the repository over the data directory.
func NewImageRepository(dataDir string) *ImageRepository {
	return &ImageRepository{
		col: NewCollection[models.ImageRecord](filepath.Join(dataDir, "images.json")),
	}
}

// ListByCategory returns image records for a category, newest first.
func (r *ImageRepository) ListByCategory(ctx context.Context, category models.ImageCategory) ([]models.ImageRecord, error) {
	items, err := r.col.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	filtered := []models.ImageRecord{}
	for _, img := range items {
		if img.Category == category {
			filtered = append(filtered, img)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].UploadedAt.After(filtered[j].UploadedAt)
	})
	return filtered, nil
}

// Get returns a single image record by id.
func (r *ImageRepository) Get(ctx context.Context, id string) (*models.ImageRecord, error) {
	items, err := r.col.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, appErrors.ErrNotFound
}

// GetByFilename returns the image record matching a category and filename.
func (r *ImageRepository) GetByFilename(ctx context.Context, category models.ImageCategory, filename string) (*models.ImageRecord, error) {
	items, err := r.col.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Category == category && items[i].Filename == filename {
			return &items[i], nil
		}
	}
	return nil, appErrors.ErrNotFound
}

// Create appends a new image record, assigning its id when empty.
func (r *ImageRepository) Create(ctx context.Context, image *models.ImageRecord) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	if image.UploadedAt.IsZero() {
		image.UploadedAt = time.Now().UTC()
	}
	return r.col.Mutate(func(items []models.ImageRecord) ([]models.ImageRecord, error) {
		return append(items, *image), nil
	})
}

// Delete removes the image record and reports whether anything was removed.
func (r *ImageRepository) Delete(ctx context.Context, id string) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.ImageRecord) ([]models.ImageRecord, error) {
		kept := items[:0]
		for _, img := range items {
			if img.ID == id {
				removed = true
				continue
			}
			kept = append(kept, img)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
