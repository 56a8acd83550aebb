package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

func TestProgramRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "image_url"}).
		AddRow("mentorship", "Mentorship Program", "x", "").
		AddRow("skills-training", "Skills Training", "y", "")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, image_url FROM programs ORDER BY position ASC")).
		WillReturnRows(rows)

	programs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, "mentorship", programs[0].ID)
}

func TestProgramRepositoryUpdateImage(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET image_url = $1 WHERE id = $2")).
		WithArgs("/static/images/programs/Mentorship_Program.png", "mentorship").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateImage(context.Background(), "mentorship", "/static/images/programs/Mentorship_Program.png")
	require.NoError(t, err)
}

func TestProgramRepositoryUpdateImageUnknown(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET image_url = $1 WHERE id = $2")).
		WithArgs("/x.png", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateImage(context.Background(), "ghost", "/x.png")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
