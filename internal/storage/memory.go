package storage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nutrisync/nutrisync/internal/aggregate"
)

var _ Backend = (*MemoryBackend)(nil)

type metricsEntry struct {
	metrics  aggregate.Metrics
	cachedAt time.Time
	ttl      time.Duration
}

type MemoryBackend struct {
	// Rate limiting
	limiters  map[string]*rate.Limiter
	limiterMu sync.RWMutex
	rateLimit rate.Limit
	rateBurst int

	// Metrics cache
	metrics   map[string]metricsEntry
	metricsMu sync.RWMutex

	// Cleanup
	done chan struct{}
}

func NewMemoryBackend(ratePerSec float64, burst int) *MemoryBackend {
	m := &MemoryBackend{
		limiters:  make(map[string]*rate.Limiter),
		rateLimit: rate.Limit(ratePerSec),
		rateBurst: burst,
		metrics:   make(map[string]metricsEntry),
		done:      make(chan struct{}),
	}

	go m.cleanupLoop()

	return m
}

func (m *MemoryBackend) Allow(_ context.Context, key string) (RateLimitResult, error) {
	limiter := m.limiter(key)

	r := limiter.Reserve()
	if !r.OK() {
		return RateLimitResult{}, nil
	}
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return RateLimitResult{RetryAfter: delay}, nil
	}

	return RateLimitResult{Allowed: true}, nil
}

func (m *MemoryBackend) limiter(key string) *rate.Limiter {
	m.limiterMu.RLock()
	limiter, exists := m.limiters[key]
	m.limiterMu.RUnlock()

	if exists {
		return limiter
	}

	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()

	limiter, exists = m.limiters[key]
	if exists {
		return limiter
	}

	limiter = rate.NewLimiter(m.rateLimit, m.rateBurst)
	m.limiters[key] = limiter
	return limiter
}

func (m *MemoryBackend) Set(_ context.Context, userID string, metrics aggregate.Metrics, ttl time.Duration) error {
	m.metricsMu.Lock()
	m.metrics[userID] = metricsEntry{metrics: metrics, cachedAt: time.Now(), ttl: ttl}
	m.metricsMu.Unlock()
	return nil
}

func (m *MemoryBackend) Get(_ context.Context, userID string) (aggregate.Metrics, error) {
	m.metricsMu.RLock()
	e, ok := m.metrics[userID]
	m.metricsMu.RUnlock()

	if !ok {
		return aggregate.Metrics{}, ErrNotFound
	}

	// Expired entries are left for the cleanup loop.
	if time.Since(e.cachedAt) > e.ttl {
		return aggregate.Metrics{}, ErrNotFound
	}

	return e.metrics, nil
}

func (m *MemoryBackend) Close() error {
	close(m.done)
	return nil
}

func (m *MemoryBackend) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryBackend) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.metricsMu.Lock()
			now := time.Now()
			for userID, e := range m.metrics {
				if now.Sub(e.cachedAt) > e.ttl {
					delete(m.metrics, userID)
				}
			}
			m.metricsMu.Unlock()
		case <-m.done:
			return
		}
	}
}
