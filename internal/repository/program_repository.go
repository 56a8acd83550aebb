package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// ProgramRepository provides read and image-update access to the seeded
// program offerings. Programs are never created or deleted at runtime.
type ProgramRepository struct {
	db *sqlx.DB
}

// NewProgramRepository creates the repository.
func NewProgramRepository(db *sqlx.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// List returns the programs in seed order.
func (r *ProgramRepository) List(ctx context.Context) ([]models.Program, error) {
	const query = `SELECT id, name, description, image_url FROM programs ORDER BY position ASC`
	programs := []models.Program{}
	if err := r.db.SelectContext(ctx, &programs, query); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// Get returns the program with the given id.
func (r *ProgramRepository) Get(ctx context.Context, id string) (*models.Program, error) {
	const query = `SELECT id, name, description, image_url FROM programs WHERE id = $1`
	var program models.Program
	if err := r.db.GetContext(ctx, &program, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	return &program, nil
}

// UpdateImage points the program at a new image URL.
func (r *ProgramRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE programs SET image_url = $1 WHERE id = $2`, imageURL, id)
	if err != nil {
		return fmt.Errorf("update program image: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update program image: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}
