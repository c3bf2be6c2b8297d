package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/nutrisync/nutrisync/internal/aggregate"
)

var _ Backend = (*RedisBackend)(nil)

const (
	rateLimitKeyPrefix = "ratelimit:"
	metricsKeyPrefix   = "metrics:"
)

type RedisConfig struct {
	Client *redis.Client
}

type RedisBackend struct {
	client     *redis.Client
	rateLimit  int
	rateWindow time.Duration
}

// NewRedisBackend wraps client in a Backend. rateLimit is the number
// of requests allowed per key per minute.
func NewRedisBackend(cfg RedisConfig, rateLimit int) (*RedisBackend, error) {
	return &RedisBackend{
		client:     cfg.Client,
		rateLimit:  rateLimit,
		rateWindow: time.Minute,
	}, nil
}

func (r *RedisBackend) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	params := rateLimitParams{
		window: r.rateWindow,
		limit:  r.rateLimit,
		ttl:    r.rateWindow + time.Second,
	}

	allowed, err := runRateLimitScript(ctx, r.client, rateLimitKeyPrefix+key, params)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to run rate limit script: %w", err)
	}

	return RateLimitResult{
		Allowed:    allowed,
		RetryAfter: r.rateWindow,
	}, nil
}

func (r *RedisBackend) Set(ctx context.Context, userID string, m aggregate.Metrics, ttl time.Duration) error {
	data, err := go_json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	if err := r.client.Set(ctx, metricsKeyPrefix+userID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set metrics: %w", err)
	}

	return nil
}

func (r *RedisBackend) Get(ctx context.Context, userID string) (aggregate.Metrics, error) {
	data, err := r.client.Get(ctx, metricsKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return aggregate.Metrics{}, ErrNotFound
	}
	if err != nil {
		return aggregate.Metrics{}, fmt.Errorf("failed to get metrics: %w", err)
	}

	var m aggregate.Metrics
	if err := go_json.Unmarshal(data, &m); err != nil {
		return aggregate.Metrics{}, fmt.Errorf("failed to unmarshal metrics: %w", err)
	}

	return m, nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
