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

func newImageFixture(t *testing.T) (*ImageService, string) {
	t.Helper()
	staticDir := t.TempDir()
	svc := NewImageService(jsonfile.NewImageRepository(t.TempDir()), storage.NewLocalStore(staticDir, 0), nil, nil)
	return svc, staticDir
}

func TestImageUploadRecordsMetadata(t *testing.T) {
	svc, staticDir := newImageFixture(t)
	ctx := context.Background()

	record, err := svc.Upload(ctx, models.CategoryHero, &Upload{Filename: "slide.jpg", Data: []byte("img")})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryHero, record.Category)
	assert.NotEmpty(t, record.ID)

	_, err = os.Stat(filepath.Join(staticDir, "images", "hero", record.Filename))
	require.NoError(t, err)

	listed, err := svc.List(ctx, models.CategoryHero)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, record.ID, listed[0].ID)
}

func TestImageUploadRejectedLeavesNoRecord(t *testing.T) {
	svc, _ := newImageFixture(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, models.CategoryHero, &Upload{Filename: "photo.exe", Data: []byte("x")})
	assert.ErrorIs(t, err, appErrors.ErrInvalidExtension)

	listed, err := svc.List(ctx, models.CategoryHero)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestImageReplaceSwapsRecord(t *testing.T) {
	svc, staticDir := newImageFixture(t)
	ctx := context.Background()

	old, err := svc.Upload(ctx, models.CategoryAbout, &Upload{Filename: "team.png", Data: []byte("one")})
	require.NoError(t, err)

	fresh, err := svc.Replace(ctx, models.CategoryAbout, old.Filename, &Upload{Filename: "team2.png", Data: []byte("two")})
	require.NoError(t, err)
	assert.NotEqual(t, old.Filename, fresh.Filename)

	listed, err := svc.List(ctx, models.CategoryAbout)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, fresh.ID, listed[0].ID)

	_, err = os.Stat(filepath.Join(staticDir, "images", "about", old.Filename))
	assert.True(t, os.IsNotExist(err))
}

func TestImageDeleteMissingIsNoOp(t *testing.T) {
	svc, _ := newImageFixture(t)

	removed, err := svc.Delete(context.Background(), "ghost-id")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestImageDeleteRemovesBlobAndRecord(t *testing.T) {
	svc, staticDir := newImageFixture(t)
	ctx := context.Background()

	record, err := svc.Upload(ctx, models.CategoryUploads, &Upload{Filename: "photo.jpg", Data: []byte("x")})
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = os.Stat(filepath.Join(staticDir, "images", "uploads", record.Filename))
	assert.True(t, os.IsNotExist(err))
}
