// Package postgres provides a PostgreSQL-backed tiredness store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/appengine-ltd/better-sleep/internal/store"
	"github.com/appengine-ltd/better-sleep/internal/store/postgres/migrations"
	"github.com/appengine-ltd/better-sleep/internal/tiredness"
)

// Store wraps a pgx pool for one save slot.
type Store struct {
	pool   *pgxpool.Pool
	saveID string
}

// New connects to PostgreSQL, applies migrations and returns a store.
func New(ctx context.Context, dsn, saveID string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if err := RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return NewWithPool(pool, saveID), nil
}

// NewWithPool uses an already migrated pool.
func NewWithPool(pool *pgxpool.Pool, saveID string) *Store {
	if strings.TrimSpace(saveID) == "" {
		saveID = store.DefaultSaveID
	}
	return &Store{pool: pool, saveID: saveID}
}

// RunMigrations applies the embedded migrations through a database/sql
// handle sharing the pool's connection config.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	connStr := stdlib.RegisterConnConfig(pool.Config().ConnConfig)
	defer stdlib.UnregisterConnConfig(connStr)

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Close closes the pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Load(ctx context.Context) (tiredness.Record, bool, error) {
	if s == nil || s.pool == nil {
		return tiredness.Record{}, false, store.ErrNotConfigured
	}
	var rec tiredness.Record
	err := s.pool.QueryRow(ctx,
		`SELECT tiredness, last_sleep_time, last_tiredness_update, last_sleep_quality
		 FROM sleep_records WHERE save_id = $1`, s.saveID,
	).Scan(&rec.Tiredness, &rec.LastSleepTime, &rec.LastTirednessUpdate, &rec.LastSleepQuality)
	if errors.Is(err, pgx.ErrNoRows) {
		return tiredness.Record{}, false, nil
	}
	if err != nil {
		return tiredness.Record{}, false, fmt.Errorf("querying sleep record %q: %w", s.saveID, err)
	}
	return rec, true, nil
}

func (s *Store) Upsert(ctx context.Context, rec tiredness.Record) error {
	if s == nil || s.pool == nil {
		return store.ErrNotConfigured
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sleep_records (
		   save_id, tiredness, last_sleep_time, last_tiredness_update, last_sleep_quality, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (save_id) DO UPDATE SET
		   tiredness = EXCLUDED.tiredness,
		   last_sleep_time = EXCLUDED.last_sleep_time,
		   last_tiredness_update = EXCLUDED.last_tiredness_update,
		   last_sleep_quality = EXCLUDED.last_sleep_quality,
		   updated_at = EXCLUDED.updated_at`,
		s.saveID, rec.Tiredness, rec.LastSleepTime, rec.LastTirednessUpdate, rec.LastSleepQuality,
	)
	if err != nil {
		return fmt.Errorf("saving sleep record %q: %w", s.saveID, err)
	}
	return nil
}
