package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/psycheverse/creator-admin-api/internal/models"
)

// StatsRepository exposes read-only aggregates over the creators catalog.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository instantiates the repository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CreatorStats computes all four aggregates in one grouped query so the
// returned snapshot is internally consistent even under concurrent writes.
func (r *StatsRepository) CreatorStats(ctx context.Context) (*models.CreatorStats, error) {
	const query = `SELECT
		COUNT(*) AS total_creators,
		COUNT(*) FILTER (WHERE status = 'active') AS active_creators,
		COUNT(*) FILTER (WHERE is_featured) AS featured_creators,
		COALESCE(SUM(viewers), 0) AS total_viewers
		FROM creators`
	var stats models.CreatorStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("query creator stats: %w", err)
	}
	return &stats, nil
}
