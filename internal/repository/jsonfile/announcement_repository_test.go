package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

func seedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestAnnouncementCreateGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewAnnouncementRepository(dir)
	ctx := context.Background()

	created := &models.Announcement{Title: "Launch", Excerpt: "We are live", Category: "News"}
	require.NoError(t, repo.Create(ctx, created))
	assert.Equal(t, models.RecordID("1"), created.ID)
	assert.False(t, created.Date.IsZero())

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", got.Title)
	assert.Equal(t, "News", got.Category)
}

func TestAnnouncementListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	repo := NewAnnouncementRepository(dir)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, &models.Announcement{Title: title, Excerpt: "x", Category: "News"}))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "C", items[0].Title)
	assert.Equal(t, "B", items[1].Title)
	assert.Equal(t, "A", items[2].Title)
}

func TestAnnouncementNextIDSkipsNonNumeric(t *testing.T) {
	dir := t.TempDir()
	seedFile(t, dir, "announcements.json", `[
  {"id": 1, "title": "one"},
  {"id": "abc", "title": "legacy"}
]`)
	repo := NewAnnouncementRepository(dir)
	ctx := context.Background()

	created := &models.Announcement{Title: "two"}
	require.NoError(t, repo.Create(ctx, created))
	assert.Equal(t, models.RecordID("2"), created.ID)
}

func TestAnnouncementNextIDFromGaps(t *testing.T) {
	dir := t.TempDir()
	seedFile(t, dir, "announcements.json", `[
  {"id": 1}, {"id": 3}, {"id": 7}
]`)
	repo := NewAnnouncementRepository(dir)

	created := &models.Announcement{Title: "next"}
	require.NoError(t, repo.Create(context.Background(), created))
	assert.Equal(t, models.RecordID("8"), created.ID)
}

func TestAnnouncementDeleteMissingIsNoOp(t *testing.T) {
	dir := t.TempDir()
	repo := NewAnnouncementRepository(dir)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Announcement{Title: "keep"}))

	removed, err := repo.Delete(ctx, "99")
	require.NoError(t, err)
	assert.False(t, removed)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAnnouncementUpdateMissing(t *testing.T) {
	dir := t.TempDir()
	repo := NewAnnouncementRepository(dir)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Announcement{Title: "only"}))

	err := repo.Update(ctx, &models.Announcement{ID: "42", Title: "ghost"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestAnnouncementGetMissing(t *testing.T) {
	dir := t.TempDir()
	seedFile(t, dir, "announcements.json", `[]`)
	repo := NewAnnouncementRepository(dir)

	_, err := repo.Get(context.Background(), "1")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestAnnouncementUpdateKeepsPosition(t *testing.T) {
	dir := t.TempDir()
	repo := NewAnnouncementRepository(dir)
	ctx := context.Background()

	first := &models.Announcement{Title: "first"}
	second := &models.Announcement{Title: "second"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	first.Title = "first edited"
	require.NoError(t, repo.Update(ctx, first))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "first edited", items[1].Title)
}
