package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/repository/jsonfile"
	"github.com/mochwana/aesi-web/internal/storage"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

func newAnnouncementFixture(t *testing.T) *AnnouncementService {
	t.Helper()
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "announcements.json"), []byte("[]"), 0o644))

	images := NewImageService(jsonfile.NewImageRepository(dataDir), storage.NewLocalStore(t.TempDir(), 0), nil, nil)
	cache := NewCacheService(nil, nil, 0, nil, false)
	return NewAnnouncementService(jsonfile.NewAnnouncementRepository(dataDir), images, cache, nil, nil)
}

func TestAnnouncementCreateWithoutImageUsesDefault(t *testing.T) {
	svc := newAnnouncementFixture(t)

	created, err := svc.Create(context.Background(), models.AnnouncementForm{
		Title: "Launch", Excerpt: "We are live", Category: "News",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultAnnouncementImage, created.ImageURL)
	assert.False(t, created.Date.IsZero())
}

func TestAnnouncementCreateValidation(t *testing.T) {
	svc := newAnnouncementFixture(t)

	_, err := svc.Create(context.Background(), models.AnnouncementForm{Title: "No excerpt"}, nil)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestAnnouncementCreateWithImage(t *testing.T) {
	svc := newAnnouncementFixture(t)

	created, err := svc.Create(context.Background(), models.AnnouncementForm{
		Title: "Launch", Excerpt: "x", Category: "News",
	}, &Upload{Filename: "banner.png", Data: []byte("img")})
	require.NoError(t, err)
	assert.Contains(t, created.ImageURL, "/static/images/uploads/")
}

func TestAnnouncementListNewestFirstAfterCreates(t *testing.T) {
	svc := newAnnouncementFixture(t)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, models.AnnouncementForm{Title: title, Excerpt: "x", Category: "News"}, nil)
		require.NoError(t, err)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "C", items[0].Title)
	assert.Equal(t, "A", items[2].Title)
}

func TestAnnouncementUpdateKeepsImageWithoutUpload(t *testing.T) {
	svc := newAnnouncementFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.AnnouncementForm{
		Title: "Original", Excerpt: "x", Category: "News",
	}, &Upload{Filename: "banner.png", Data: []byte("img")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, models.AnnouncementForm{
		Title: "Edited", Excerpt: "y", Category: "News", Featured: true,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
	assert.True(t, updated.Featured)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
}

func TestAnnouncementDeleteMissing(t *testing.T) {
	svc := newAnnouncementFixture(t)

	removed, err := svc.Delete(context.Background(), "404")
	require.NoError(t, err)
	assert.False(t, removed)
}
