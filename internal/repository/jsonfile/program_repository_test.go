package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

func TestProgramUpdateImage(t *testing.T) {
	dir := t.TempDir()
	seedFile(t, dir, "programs.json", `[
  {"id": "mentorship", "name": "Mentorship Program", "description": "x", "image_url": ""},
  {"id": "skills-training", "name": "Skills Training", "description": "y", "image_url": ""}
]`)
	repo := NewProgramRepository(dir)
	ctx := context.Background()

	require.NoError(t, repo.UpdateImage(ctx, "mentorship", "/static/images/programs/Mentorship_Program.png"))

	program, err := repo.Get(ctx, "mentorship")
	require.NoError(t, err)
	assert.Equal(t, "/static/images/programs/Mentorship_Program.png", program.ImageURL)

	programs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, "mentorship", programs[0].ID)
}

func TestProgramUpdateImageUnknown(t *testing.T) {
	dir := t.TempDir()
	seedFile(t, dir, "programs.json", `[]`)
	repo := NewProgramRepository(dir)

	err := repo.UpdateImage(context.Background(), "ghost", "/x.png")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
