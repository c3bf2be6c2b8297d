// Package xsync moves wearable data through the system: backfilling
// raw samples from the aggregation API, folding them into metrics
// windows, and answering metric reads cache-first.
package xsync

import (
	"context"
	"log/slog"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/client/wearable"
	"github.com/nutrisync/nutrisync/internal/profile"
	"github.com/nutrisync/nutrisync/internal/repository"
	"github.com/nutrisync/nutrisync/internal/storage"
)

type SyncService interface {
	// Backfill fetches the last days of activity and sleep samples
	// and upserts them. Re-running over an already synced window is
	// idempotent.
	Backfill(ctx context.Context, userID string, days int) error

	// Aggregate folds the stored samples within rng into a metrics
	// window, stores it, and caches the latest copy.
	Aggregate(ctx context.Context, userID string, rng aggregate.DateRange) (*aggregate.Metrics, error)
}

// Repos is the persistence surface the sync service writes through.
// The server passes the Postgres repositories, the CLI its local
// SQLite store.
type Repos struct {
	Profiles profile.Store
	Samples  repository.SampleRepository
	Metrics  repository.MetricsRepository
}

type Service struct {
	client *wearable.Client
	repos  Repos
	cache  storage.MetricsCache
	logger *slog.Logger
}

var _ SyncService = (*Service)(nil)

// NewService wires a sync service. cache may be nil when no metrics
// cache is available; reads then always hit the repository.
func NewService(client *wearable.Client, repos Repos, cache storage.MetricsCache, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		repos:  repos,
		cache:  cache,
		logger: logger,
	}
}
