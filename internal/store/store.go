// Package store is the local SQLite database behind the CLI and the
// TUI. It mirrors the server's Postgres repositories so synced data
// and generated plans survive between runs without a network.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nutrisync/nutrisync/internal/migrations"
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/profile"
	"github.com/nutrisync/nutrisync/internal/repository"
)

type Store struct {
	db *sql.DB

	Profiles profile.Store
	Samples  repository.SampleRepository
	Metrics  repository.MetricsRepository
	Plans    plan.Plans
}

// Open opens (creating if needed) the database at path and applies
// pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return &Store{
		db:       db,
		Profiles: profile.NewSQLiteStore(db),
		Samples:  &sampleStore{db: db},
		Metrics:  &metricsStore{db: db},
		Plans:    &planStore{db: db},
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
