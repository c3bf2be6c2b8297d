package xsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/storage"
	"github.com/nutrisync/nutrisync/internal/xslog"
)

// MetricsFetcher answers metric reads cache-first.
type MetricsFetcher interface {
	Metrics(ctx context.Context, userID string, rng aggregate.DateRange) (*aggregate.Metrics, error)
}

// Fetcher reads metrics cache-aside: cache hit wins, then the
// repository, then a live fetch and aggregation. Cache failures are
// logged and never fail the read.
type Fetcher struct {
	service *Service
	logger  *slog.Logger
}

var _ MetricsFetcher = (*Fetcher)(nil)

func NewFetcher(service *Service, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		service: service,
		logger:  logger,
	}
}

func (f *Fetcher) Metrics(ctx context.Context, userID string, rng aggregate.DateRange) (*aggregate.Metrics, error) {
	if f.service.cache != nil {
		m, err := f.service.cache.Get(ctx, userID)
		switch {
		case err == nil:
			return &m, nil
		case !errors.Is(err, storage.ErrNotFound):
			f.logger.WarnContext(ctx, "metrics cache read failed", xslog.Error(err))
		}
	}

	m, err := f.service.repos.Metrics.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading metrics: %w", err)
	}
	if m != nil {
		if f.service.cache != nil {
			if err := f.service.cache.Set(ctx, userID, *m, metricsTTL); err != nil {
				f.logger.WarnContext(ctx, "failed to cache metrics", xslog.Error(err))
			}
		}
		return m, nil
	}

	// Nothing stored for this user yet. Pull the window live and
	// compute; Aggregate handles storing and caching.
	if rng.IsZero() {
		rng = aggregate.LastNDays(time.Now(), aggregate.DefaultDays)
	}
	if err := f.service.Backfill(ctx, userID, rng.Days()); err != nil {
		return nil, err
	}
	return f.service.Aggregate(ctx, userID, rng)
}
