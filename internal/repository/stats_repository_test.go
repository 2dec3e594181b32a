package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepositoryCreatorStats(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewStatsRepository(sqlx.NewDb(db, "sqlmock"))

	rows := sqlmock.NewRows([]string{"total_creators", "active_creators", "featured_creators", "total_viewers"}).
		AddRow(10, 7, 3, 45210)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	stats, err := repo.CreatorStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalCreators)
	assert.Equal(t, int64(7), stats.ActiveCreators)
	assert.Equal(t, int64(3), stats.FeaturedCreators)
	assert.Equal(t, int64(45210), stats.TotalViewers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryEmptyCatalog(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewStatsRepository(sqlx.NewDb(db, "sqlmock"))

	rows := sqlmock.NewRows([]string{"total_creators", "active_creators", "featured_creators", "total_viewers"}).
		AddRow(0, 0, 0, 0)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	stats, err := repo.CreatorStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCreators)
	assert.Zero(t, stats.TotalViewers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
