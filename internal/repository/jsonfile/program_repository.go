package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// ProgramRepository keeps the seeded program set in programs.json. The
// id set is fixed at deployment time; only image URLs change.
type ProgramRepository struct {
	col *Collection[models.Program]
}

// NewProgramRepository creates the repository over the data directory.
func NewProgramRepository(dataDir string) *ProgramRepository {
	return &ProgramRepository{
		col: NewCollection[models.Program](filepath.Join(dataDir, "programs.json")),
	}
}

// List returns the programs in seed order.
func (r *ProgramRepository) List(ctx context.Context) ([]models.Program, error) {
	return r.col.Load()
}

// Get returns the program with the given id or reports absence.
func (r *ProgramRepository) Get(ctx context.Context, id string) (*models.Program, error) {
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

// UpdateImage points the program at a new image URL.
func (r *ProgramRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	return r.col.Mutate(func(items []models.Program) ([]models.Program, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].ImageURL = imageURL
				return items, nil
			}
		}
		return nil, appErrors.ErrNotFound
	})
}
