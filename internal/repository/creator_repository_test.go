package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psycheverse/creator-admin-api/internal/models"
)

func newCreatorMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func creatorRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "display_name", "description", "avatar_url", "status", "viewers", "is_featured", "featured_priority", "is_paid_member", "platforms", "created_at"}).
		AddRow(1, "Nova", nil, nil, "active", 120, true, 1, false, `["twitch"]`, now)
}

func TestCreatorRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newCreatorMock(t)
	defer cleanup()
	repo := NewCreatorRepository(db)

	mock.ExpectQuery("INSERT INTO creators").
		WithArgs("Nova", nil, nil, "active", int64(0), false, int64(0), false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	creator := &models.Creator{DisplayName: "Nova", Status: "active"}
	require.NoError(t, repo.Create(context.Background(), creator))
	assert.Equal(t, int64(7), creator.ID)
	assert.False(t, creator.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatorRepositoryListNewestFirst(t *testing.T) {
	db, mock, cleanup := newCreatorMock(t)
	defer cleanup()
	repo := NewCreatorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + creatorColumns + " FROM creators ORDER BY created_at DESC")).
		WillReturnRows(creatorRows(time.Now()))

	creators, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, creators, 1)
	assert.Equal(t, "Nova", creators[0].DisplayName)
	assert.Equal(t, models.PlatformList{"twitch"}, creators[0].Platforms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatorRepositoryListFeaturedFirst(t *testing.T) {
	db, mock, cleanup := newCreatorMock(t)
	defer cleanup()
	repo := NewCreatorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + creatorColumns + " FROM creators ORDER BY is_featured DESC, display_name ASC")).
		WillReturnRows(creatorRows(time.Now()))

	creators, err := repo.ListFeaturedFirst(context.Background())
	require.NoError(t, err)
	require.Len(t, creators, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatorRepositoryUpdateFieldsClauseOrder(t *testing.T) {
	db, mock, cleanup := newCreatorMock(t)
	defer cleanup()
	repo := NewCreatorRepository(db)

	// Clauses follow schema column order regardless of payload field order.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE creators SET display_name = $1, viewers = $2, is_featured = $3 WHERE id = $4")).
		WithArgs("Vega", int64(0), true, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	name := "Vega"
	viewers := int64(0)
	featured := true
	affected, err := repo.UpdateFields(context.Background(), 3, CreatorUpdate{
		IsFeatured:  &featured,
		Viewers:     &viewers,
		DisplayName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatorRepositoryUpdateFieldsMissingRow(t *testing.T) {
	db, mock, cleanup := newCreatorMock(t)
	defer cleanup()
	repo := NewCreatorRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE creators SET status = $1 WHERE id = $2")).
		WithArgs("inactive", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	status := "inactive"
	affected, err := repo.UpdateFields(context.Background(), 99, CreatorUpdate{Status: &status})
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatorRepositoryUpdateFieldsEmpty(t *testing.T) {
	db, _, cleanup := newCreatorMock(t)
	defer cleanup()
	repo := NewCreatorRepository(db)

	_, err := repo.UpdateFields(context.Background(), 1, CreatorUpdate{})
	assert.Error(t, err)
}

func TestCreatorRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newCreatorMock(t)
	defer cleanup()
	repo := NewCreatorRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM creators WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM creators WHERE id = $1")).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 6)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatorUpdateEmpty(t *testing.T) {
	assert.True(t, CreatorUpdate{}.Empty())

	falseValue := false
	assert.False(t, CreatorUpdate{IsPaidMember: &falseValue}.Empty())

	zero := int64(0)
	assert.False(t, CreatorUpdate{Viewers: &zero}.Empty())
}
