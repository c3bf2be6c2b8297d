package repository

import (
	"context"
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrisync/nutrisync/internal/aggregate"
)

type metricsRepo struct {
	db *pgxpool.Pool
}

var _ MetricsRepository = (*metricsRepo)(nil)

const upsertMetrics = `
INSERT INTO metrics (user_id, range_start, range_end, payload, computed_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (user_id, range_start, range_end) DO UPDATE SET
	payload = EXCLUDED.payload,
	computed_at = now()`

func (r *metricsRepo) Upsert(ctx context.Context, userID string, m aggregate.Metrics) error {
	payload, err := go_json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	_, err = r.db.Exec(ctx, upsertMetrics, userID, m.DateRange.Start, m.DateRange.End, payload)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

const getLatestMetrics = `
SELECT payload
FROM metrics
WHERE user_id = $1
ORDER BY computed_at DESC
LIMIT 1`

func (r *metricsRepo) Latest(ctx context.Context, userID string) (*aggregate.Metrics, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, getLatestMetrics, userID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var m aggregate.Metrics
	if err := go_json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &m, nil
}
