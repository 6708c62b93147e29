// Package jsonfile persists tiredness records as one JSON document keyed by
// save slot.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/better-sleep/internal/tiredness"
)

type document struct {
	Saves map[string]tiredness.Record `json:"saves"`
}

type Store struct {
	path   string
	saveID string
}

func New(path, saveID string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if strings.TrimSpace(saveID) == "" {
		return nil, fmt.Errorf("save id is required")
	}
	return &Store{path: filepath.Clean(path), saveID: saveID}, nil
}

// DefaultPath is the per-user location used when no path is configured.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, "BetterSleep", "saves.json"), nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Load(ctx context.Context) (tiredness.Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return tiredness.Record{}, false, err
	}
	doc, err := s.read()
	if err != nil {
		return tiredness.Record{}, false, err
	}
	rec, ok := doc.Saves[s.saveID]
	return rec, ok, nil
}

func (s *Store) Upsert(ctx context.Context, rec tiredness.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Saves[s.saveID] = rec
	return s.write(doc)
}

func (s *Store) read() (document, error) {
	doc := document{Saves: map[string]tiredness.Record{}}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read saves: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse saves: %w", err)
	}
	if doc.Saves == nil {
		doc.Saves = map[string]tiredness.Record{}
	}
	return doc, nil
}

// write replaces the file through a temp file so a crash never leaves a
// truncated document.
func (s *Store) write(doc document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create saves dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "saves-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace saves: %w", err)
	}

	cleanup = false
	return nil
}
