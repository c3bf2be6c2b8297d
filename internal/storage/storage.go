package storage

import (
	"context"
	"errors"
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
)

var ErrNotFound = errors.New("entry not found")

// RateLimitResult carries the limiter verdict plus how long a denied
// caller should wait before retrying.
type RateLimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// MetricsCache holds the latest aggregated metrics per user so reads
// skip the repository on the hot path.
type MetricsCache interface {
	Set(ctx context.Context, userID string, m aggregate.Metrics, ttl time.Duration) error

	// Get returns ErrNotFound if no entry exists or it has expired.
	Get(ctx context.Context, userID string) (aggregate.Metrics, error)
}

type Backend interface {
	RateLimiter
	MetricsCache

	Close() error

	Ping(ctx context.Context) error
}
