// Package store holds persistence adapters for the tiredness record and the
// write-behind queue the frame loop saves through.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/appengine-ltd/better-sleep/internal/tiredness"
)

// ErrNotConfigured is returned by adapters used without a backing handle.
var ErrNotConfigured = errors.New("storage is not configured")

// DefaultSaveID keys the record when no save slot is configured.
const DefaultSaveID = "default"

// Queue coalesces upserts of the singleton record and writes the latest one
// on Flush. Loads see pending writes.
type Queue struct {
	backend tiredness.Store
	pending *tiredness.Record
	writes  int
}

func NewQueue(backend tiredness.Store) *Queue {
	return &Queue{backend: backend}
}

func (q *Queue) Load(ctx context.Context) (tiredness.Record, bool, error) {
	if q.pending != nil {
		return *q.pending, true, nil
	}
	if q.backend == nil {
		return tiredness.Record{}, false, ErrNotConfigured
	}
	return q.backend.Load(ctx)
}

func (q *Queue) Upsert(_ context.Context, rec tiredness.Record) error {
	q.pending = &rec
	return nil
}

// Pending reports whether a write is waiting for Flush.
func (q *Queue) Pending() bool { return q.pending != nil }

// Writes counts records handed to the backend.
func (q *Queue) Writes() int { return q.writes }

// Flush writes the latest pending record. A failed write stays pending.
func (q *Queue) Flush(ctx context.Context) error {
	if q.pending == nil {
		return nil
	}
	if q.backend == nil {
		return ErrNotConfigured
	}
	if err := q.backend.Upsert(ctx, *q.pending); err != nil {
		return fmt.Errorf("flushing tiredness record: %w", err)
	}
	q.pending = nil
	q.writes++
	return nil
}
