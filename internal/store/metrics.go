package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/repository"
)

type metricsStore struct {
	db *sql.DB
}

var _ repository.MetricsRepository = (*metricsStore)(nil)

const upsertMetrics = `
INSERT INTO metrics (user_id, range_start, range_end, payload, computed_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (user_id, range_start, range_end) DO UPDATE SET
	payload = excluded.payload,
	computed_at = excluded.computed_at`

func (s *metricsStore) Upsert(ctx context.Context, userID string, m aggregate.Metrics) error {
	payload, err := go_json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	_, err = s.db.ExecContext(ctx, upsertMetrics,
		userID, m.DateRange.Start, m.DateRange.End, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

const getLatestMetrics = `
SELECT payload
FROM metrics
WHERE user_id = ?
ORDER BY computed_at DESC
LIMIT 1`

func (s *metricsStore) Latest(ctx context.Context, userID string) (*aggregate.Metrics, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, getLatestMetrics, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var m aggregate.Metrics
	if err := go_json.Unmarshal([]byte(payload), &m); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &m, nil
}
