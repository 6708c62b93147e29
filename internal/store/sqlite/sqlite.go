// Package sqlite provides a SQLite-backed tiredness store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/appengine-ltd/better-sleep/internal/store"
	"github.com/appengine-ltd/better-sleep/internal/store/sqlite/migrations"
	"github.com/appengine-ltd/better-sleep/internal/tiredness"
)

// Store persists one save slot's record in SQLite.
type Store struct {
	sqlDB  *sql.DB
	saveID string
}

// Open opens a SQLite store and applies embedded migrations.
func Open(ctx context.Context, path, saveID string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if strings.TrimSpace(saveID) == "" {
		saveID = store.DefaultSaveID
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, saveID: saveID}, nil
}

func migrate(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	return goose.UpContext(ctx, sqlDB, ".")
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Load(ctx context.Context) (tiredness.Record, bool, error) {
	if s == nil || s.sqlDB == nil {
		return tiredness.Record{}, false, store.ErrNotConfigured
	}
	var rec tiredness.Record
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT tiredness, last_sleep_time, last_tiredness_update, last_sleep_quality
		 FROM sleep_records WHERE save_id = ?`, s.saveID,
	).Scan(&rec.Tiredness, &rec.LastSleepTime, &rec.LastTirednessUpdate, &rec.LastSleepQuality)
	if errors.Is(err, sql.ErrNoRows) {
		return tiredness.Record{}, false, nil
	}
	if err != nil {
		return tiredness.Record{}, false, fmt.Errorf("querying sleep record %q: %w", s.saveID, err)
	}
	return rec, true, nil
}

func (s *Store) Upsert(ctx context.Context, rec tiredness.Record) error {
	if s == nil || s.sqlDB == nil {
		return store.ErrNotConfigured
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO sleep_records (
		   save_id, tiredness, last_sleep_time, last_tiredness_update, last_sleep_quality, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(save_id) DO UPDATE SET
		   tiredness = excluded.tiredness,
		   last_sleep_time = excluded.last_sleep_time,
		   last_tiredness_update = excluded.last_tiredness_update,
		   last_sleep_quality = excluded.last_sleep_quality,
		   updated_at = excluded.updated_at`,
		s.saveID, rec.Tiredness, rec.LastSleepTime, rec.LastTirednessUpdate, rec.LastSleepQuality,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("saving sleep record %q: %w", s.saveID, err)
	}
	return nil
}
