package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"

	"github.com/nutrisync/nutrisync/internal/plan"
)

type planStore struct {
	db *sql.DB
}

var _ plan.Plans = (*planStore)(nil)

const upsertPlan = `
INSERT INTO plans (id, user_id, result, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	result = excluded.result`

func (s *planStore) Upsert(ctx context.Context, rec *plan.Record) error {
	result, err := go_json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	_, err = s.db.ExecContext(ctx, upsertPlan, rec.ID, rec.UserID, string(result), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

const getLatestPlan = `
SELECT id, user_id, result, created_at
FROM plans
WHERE user_id = ?
ORDER BY created_at DESC
LIMIT 1`

func (s *planStore) Latest(ctx context.Context, userID string) (*plan.Record, error) {
	var (
		rec    plan.Record
		result string
	)
	err := s.db.QueryRowContext(ctx, getLatestPlan, userID).Scan(&rec.ID, &rec.UserID, &result, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := go_json.Unmarshal([]byte(result), &rec.Result); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &rec, nil
}
