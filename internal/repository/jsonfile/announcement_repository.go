package jsonfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// AnnouncementRepository keeps announcements in announcements.json.
type AnnouncementRepository struct {
	col *Collection[models.Announcement]
}

// NewAnnouncementRepository creates the repository over the data directory.
func NewAnnouncementRepository(dataDir string) *AnnouncementRepository {
	return &AnnouncementRepository{
		col: NewCollection[models.Announcement](filepath.Join(dataDir, "announcements.json")),
	}
}

// List returns the collection in file order, which is newest first
// because Create prepends.
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	return r.col.Load()
}

// Get returns the announcement with the given id or reports absence.
func (r *AnnouncementRepository) Get(ctx context.Context, id models.RecordID) (*models.Announcement, error) {
	items, err := r.col.Load()
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

// Create assigns the next numeric id and prepends the record.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.Date.IsZero() {
		announcement.Date = time.Now().UTC()
	}
	return r.col.Mutate(func(items []models.Announcement) ([]models.Announcement, error) {
		ids := make([]models.RecordID, len(items))
		for i, a := range items {
			ids[i] = a.ID
		}
		announcement.ID = models.NextRecordID(ids)
		return append([]models.Announcement{*announcement}, items...), nil
	})
}

// Update rewrites the matching record in place, keeping its position.
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	return r.col.Mutate(func(items []models.Announcement) ([]models.Announcement, error) {
		for i := range items {
			if items[i].ID == announcement.ID {
				items[i] = *announcement
				return items, nil
			}
		}
		return nil, appErrors.ErrNotFound
	})
}

// Delete removes the record and reports whether anything was removed.
func (r *AnnouncementRepository) Delete(ctx context.Context, id models.RecordID) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.Announcement) ([]models.Announcement, error) {
		kept := items[:0]
		for _, a := range items {
			if a.ID == id {
				removed = true
				continue
			}
			kept = append(kept, a)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
