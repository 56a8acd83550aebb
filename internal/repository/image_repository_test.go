package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

func TestImageRepositoryListByCategory(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewImageRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "filename", "url", "category", "size", "uploaded_at"}).
		AddRow("id-1", "hero_1.jpg", "/static/images/hero/hero_1.jpg", "hero", int64(1024), now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, filename, url, category, size, uploaded_at
FROM images WHERE category = $1 ORDER BY uploaded_at DESC`)).
		WithArgs(models.CategoryHero).
		WillReturnRows(rows)

	images, err := repo.ListByCategory(context.Background(), models.CategoryHero)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "hero_1.jpg", images[0].Filename)
	assert.Equal(t, models.CategoryHero, images[0].Category)
}

func TestImageRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewImageRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO images")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	record := &models.ImageRecord{Filename: "photo.jpg", URL: "/static/photo.jpg", Category: models.CategoryUploads}
	require.NoError(t, repo.Create(context.Background(), record))
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.UploadedAt.IsZero())
}

func TestImageRepositoryGetByFilenameMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewImageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM images WHERE category = $1 AND filename = $2")).
		WithArgs(models.CategoryUploads, "ghost.jpg").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByFilename(context.Background(), models.CategoryUploads, "ghost.jpg")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestImageRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewImageRepository(db)

	id := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM images WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestImageRepositoryMalformedID(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewImageRepository(db)

	_, err := repo.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	removed, err := repo.Delete(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, removed)
}
