// Package repository is the Postgres persistence layer. Raw samples,
// computed metrics, and generated plans live here; the storage backend
// only caches.
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/profile"
)

type Repository struct {
	Profiles profile.Store
	Samples  SampleRepository
	Metrics  MetricsRepository
	Plans    plan.Plans
}

func New(db *pgxpool.Pool) *Repository {
	return &Repository{
		Profiles: profile.NewPostgresStore(db),
		Samples:  &sampleRepo{db: db},
		Metrics:  &metricsRepo{db: db},
		Plans:    &planRepo{db: db},
	}
}

type CursorParams struct {
	Limit  int
	Cursor *time.Time
}

type CursorResult[T any] struct {
	Records    []T
	NextCursor *time.Time
}

const DefaultPageSize = 50

// SampleRepository persists raw per-platform samples. Upserts key on
// (user, platform, timestamp) so re-syncing a window is idempotent.
type SampleRepository interface {
	UpsertActivity(ctx context.Context, userID string, samples []aggregate.ActivitySample) error
	UpsertSleep(ctx context.Context, userID string, samples []aggregate.SleepSample) error
	ActivityByDateRange(ctx context.Context, userID string, start, end time.Time, cursor *CursorParams) (*CursorResult[aggregate.ActivitySample], error)
	SleepByDateRange(ctx context.Context, userID string, start, end time.Time, cursor *CursorParams) (*CursorResult[aggregate.SleepSample], error)
}

// MetricsRepository keeps computed aggregation windows per user.
type MetricsRepository interface {
	Upsert(ctx context.Context, userID string, m aggregate.Metrics) error
	// Latest returns the most recently computed window, or nil when
	// the user has none.
	Latest(ctx context.Context, userID string) (*aggregate.Metrics, error)
}
