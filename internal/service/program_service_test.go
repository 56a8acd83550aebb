package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochwana/aesi-web/internal/repository/jsonfile"
	"github.com/mochwana/aesi-web/internal/storage"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

func newProgramFixture(t *testing.T) (*ProgramService, string) {
	t.Helper()
	dataDir := t.TempDir()
	staticDir := t.TempDir()

	seed := `[
  {"id": "mentorship", "name": "Mentorship Program", "description": "x", "image_url": ""}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "programs.json"), []byte(seed), 0o644))

	assets := storage.NewLocalStore(staticDir, 0)
	images := jsonfile.NewImageRepository(dataDir)
	cache := NewCacheService(nil, nil, 0, nil, false)

	svc := NewProgramService(jsonfile.NewProgramRepository(dataDir), assets, images, cache, nil)
	return svc, filepath.Join(staticDir, "images", "programs")
}

func TestProgramUpdateImageSameNameReplace(t *testing.T) {
	svc, programsDir := newProgramFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateImage(ctx, "mentorship", &Upload{Filename: "photo.png", Data: []byte("one")})
	require.NoError(t, err)

	program, err := svc.UpdateImage(ctx, "mentorship", &Upload{Filename: "another.PNG", Data: []byte("two")})
	require.NoError(t, err)
	assert.Equal(t, "/static/images/programs/Mentorship_Program.png", program.ImageURL)

	entries, err := os.ReadDir(programsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mentorship_Program.png", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(programsDir, "Mentorship_Program.png"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestProgramUpdateImageExtensionChangeDropsOldFile(t *testing.T) {
	svc, programsDir := newProgramFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateImage(ctx, "mentorship", &Upload{Filename: "photo.png", Data: []byte("one")})
	require.NoError(t, err)

	_, err = svc.UpdateImage(ctx, "mentorship", &Upload{Filename: "photo.jpg", Data: []byte("two")})
	require.NoError(t, err)

	entries, err := os.ReadDir(programsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mentorship_Program.jpg", entries[0].Name())
}

func TestProgramUpdateImageRejectsExtension(t *testing.T) {
	svc, _ := newProgramFixture(t)

	_, err := svc.UpdateImage(context.Background(), "mentorship", &Upload{Filename: "script.exe", Data: []byte("x")})
	assert.ErrorIs(t, err, appErrors.ErrInvalidExtension)
}

func TestProgramUpdateImageUnknownProgram(t *testing.T) {
	svc, _ := newProgramFixture(t)

	_, err := svc.UpdateImage(context.Background(), "ghost", &Upload{Filename: "photo.png", Data: []byte("x")})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
