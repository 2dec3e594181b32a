package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/psycheverse/creator-admin-api/internal/models"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
)

const statsCacheKey = "stats:creators"

type statsRepository interface {
	CreatorStats(ctx context.Context) (*models.CreatorStats, error)
}

type statsCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type dbQueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// StatsService serves catalog aggregates with an optional cache in front.
type StatsService struct {
	repo    statsRepository
	cache   statsCache
	metrics dbQueryObserver
	ttl     time.Duration
	logger  *zap.Logger
}

// NewStatsService constructs a StatsService.
func NewStatsService(repo statsRepository, cache statsCache, metrics dbQueryObserver, ttl time.Duration, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{repo: repo, cache: cache, metrics: metrics, ttl: ttl, logger: logger}
}

// GetStats returns the catalog aggregates and whether they were served
// from cache. Cache errors are logged and treated as misses.
func (s *StatsService) GetStats(ctx context.Context) (*models.CreatorStats, bool, error) {
	if s.cache != nil {
		var cached models.CreatorStats
		hit, err := s.cache.Get(ctx, statsCacheKey, &cached)
		if err != nil {
			s.logger.Warn("stats cache lookup failed", zap.Error(err))
		}
		if hit {
			return &cached, true, nil
		}
	}

	start := time.Now()
	stats, err := s.repo.CreatorStats(ctx)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("creator_stats", time.Since(start))
	}
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to compute creator stats")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, stats, s.ttl); err != nil {
			s.logger.Warn("stats cache store failed", zap.Error(err))
		}
	}
	return stats, false, nil
}
