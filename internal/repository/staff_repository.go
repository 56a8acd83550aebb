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

// StaffRepository provides row-level persistence for staff members.
type StaffRepository struct {
	db *sqlx.DB
}

// NewStaffRepository creates the repository.
func NewStaffRepository(db *sqlx.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// List returns all staff members in insertion order.
func (r *StaffRepository) List(ctx context.Context) ([]models.StaffMember, error) {
	const query = `SELECT id, name, title, bio, role, email, linkedin_url, image_url, department
FROM staff ORDER BY id ASC`
	staff := []models.StaffMember{}
	if err := r.db.SelectContext(ctx, &staff, query); err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}

// Get returns the staff member with the given id, reporting absence for
// unknown and non-numeric ids.
func (r *StaffRepository) Get(ctx context.Context, id models.RecordID) (*models.StaffMember, error) {
	numeric, ok := id.Int()
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	const query = `SELECT id, name, title, bio, role, email, linkedin_url, image_url, department
FROM staff WHERE id = $1`
	var member models.StaffMember
	if err := r.db.GetContext(ctx, &member, query, numeric); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get staff member: %w", err)
	}
	return &member, nil
}

// Create inserts a new staff member and assigns its id.
func (r *StaffRepository) Create(ctx context.Context, member *models.StaffMember) error {
	member.Normalize()
	const query = `INSERT INTO staff (name, title, bio, role, email, linkedin_url, image_url, department)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		member.Name,
		member.Title,
		member.Bio,
		member.Role,
		member.Email,
		member.LinkedInURL,
		member.ImageURL,
		member.Department,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create staff member: %w", err)
	}
	member.ID = models.RecordID(fmt.Sprintf("%d", id))
	return nil
}

// Update rewrites an existing staff member in place.
func (r *StaffRepository) Update(ctx context.Context, member *models.StaffMember) error {
	numeric, ok := member.ID.Int()
	if !ok {
		return appErrors.ErrNotFound
	}
	member.Normalize()
	const query = `UPDATE staff SET name = $1, title = $2, bio = $3, role = $4, email = $5,
linkedin_url = $6, image_url = $7, department = $8 WHERE id = $9`
	res, err := r.db.ExecContext(ctx, query,
		member.Name,
		member.Title,
		member.Bio,
		member.Role,
		member.Email,
		member.LinkedInURL,
		member.ImageURL,
		member.Department,
		numeric,
	)
	if err != nil {
		return fmt.Errorf("update staff member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update staff member: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}

// Delete removes the staff member and reports whether a row was removed.
func (r *StaffRepository) Delete(ctx context.Context, id models.RecordID) (bool, error) {
	numeric, ok := id.Int()
	if !ok {
		return false, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, numeric)
	if err != nil {
		return false, fmt.Errorf("delete staff member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete staff member: %w", err)
	}
	return affected > 0, nil
}
