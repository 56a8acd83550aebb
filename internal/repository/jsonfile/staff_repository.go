package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// StaffRepository keeps staff members in staff.json.
type StaffRepository struct {
	col *Collection[models.StaffMember]
}

// NewStaffRepository creates the repository over the data directory.
func NewStaffRepository(dataDir string) *StaffRepository {
	return &StaffRepository{
		col: NewCollection[models.StaffMember](filepath.Join(dataDir, "staff.json")),
	}
}

// List returns the collection in insertion order.
func (r *StaffRepository) List(ctx context.Context) ([]models.StaffMember, error) {
	return r.col.Load()
}

// Get returns the staff member with the given id or reports absence.
func (r *StaffRepository) Get(ctx context.Context, id models.RecordID) (*models.StaffMember, error) {
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

// Create assigns the next numeric id and appends the record, preserving
// insertion order on the public pages.
func (r *StaffRepository) Create(ctx context.Context, member *models.StaffMember) error {
	member.Normalize()
	return r.col.Mutate(func(items []models.StaffMember) ([]models.StaffMember, error) {
		ids := make([]models.RecordID, len(items))
		for i, m := range items {
			ids[i] = m.ID
		}
		member.ID = models.NextRecordID(ids)
		return append(items, *member), nil
	})
}

// Update rewrites the matching record in place.
func (r *StaffRepository) Update(ctx context.Context, member *models.StaffMember) error {
	member.Normalize()
	return r.col.Mutate(func(items []models.StaffMember) ([]models.StaffMember, error) {
		for i := range items {
			if items[i].ID == member.ID {
				items[i] = *member
				return items, nil
			}
		}
		return nil, appErrors.ErrNotFound
	})
}

// Delete removes the record and reports whether anything was removed.
func (r *StaffRepository) Delete(ctx context.Context, id models.RecordID) (bool, error) {
	removed := false
	err := r.col.Mutate(func(items []models.StaffMember) ([]models.StaffMember, error) {
		kept := items[:0]
		for _, m := range items {
			if m.ID == id {
				removed = true
				continue
			}
			kept = append(kept, m)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
