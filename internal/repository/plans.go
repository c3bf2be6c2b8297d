package repository

import (
	"context"
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrisync/nutrisync/internal/plan"
)

type planRepo struct {
	db *pgxpool.Pool
}

var _ plan.Plans = (*planRepo)(nil)

const upsertPlan = `
INSERT INTO plans (id, user_id, result, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
	result = EXCLUDED.result`

func (r *planRepo) Upsert(ctx context.Context, rec *plan.Record) error {
	result, err := go_json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	_, err = r.db.Exec(ctx, upsertPlan, rec.ID, rec.UserID, result, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

const getLatestPlan = `
SELECT id, user_id, result, created_at
FROM plans
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`

func (r *planRepo) Latest(ctx context.Context, userID string) (*plan.Record, error) {
	var (
		rec    plan.Record
		result []byte
	)
	err := r.db.QueryRow(ctx, getLatestPlan, userID).Scan(&rec.ID, &rec.UserID, &result, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := go_json.Unmarshal(result, &rec.Result); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &rec, nil
}
