package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// AnnouncementRepository provides row-level persistence for announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// List returns all announcements, most recently created first.
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	const query = `SELECT id, title, excerpt, category, date, image_url, featured
FROM announcements ORDER BY date DESC, id DESC`
	announcements := []models.Announcement{}
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

// Get returns the announcement with the given id. Unknown and
// non-numeric ids report absence, never an internal failure.
func (r *AnnouncementRepository) Get(ctx context.Context, id models.RecordID) (*models.Announcement, error) {
	numeric, ok := id.Int()
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	const query = `SELECT id, title, excerpt, category, date, image_url, featured
FROM announcements WHERE id = $1`
	var announcement models.Announcement
	if err := r.db.GetContext(ctx, &announcement, query, numeric); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	return &announcement, nil
}

// Create inserts a new announcement and assigns its id.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.Date.IsZero() {
		announcement.Date = time.Now().UTC()
	}
	const query = `INSERT INTO announcements (title, excerpt, category, date, image_url, featured)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		announcement.Title,
		announcement.Excerpt,
		announcement.Category,
		announcement.Date,
		announcement.ImageURL,
		announcement.Featured,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	announcement.ID = models.RecordID(fmt.Sprintf("%d", id))
	return nil
}

// Update rewrites the mutable fields of an existing announcement.
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	numeric, ok := announcement.ID.Int()
	if !ok {
		return appErrors.ErrNotFound
	}
	const query = `UPDATE announcements SET title = $1, excerpt = $2, category = $3, image_url = $4, featured = $5
WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query,
		announcement.Title,
		announcement.Excerpt,
		announcement.Category,
		announcement.ImageURL,
		announcement.Featured,
		numeric,
	)
	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}

// Delete removes the announcement and reports whether a row was removed.
func (r *AnnouncementRepository) Delete(ctx context.Context, id models.RecordID) (bool, error) {
	numeric, ok := id.Int()
	if !ok {
		return false, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, numeric)
	if err != nil {
		return false, fmt.Errorf("delete announcement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete announcement: %w", err)
	}
	return affected > 0, nil
}
