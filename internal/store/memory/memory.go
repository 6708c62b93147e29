// Package memory keeps the tiredness record in process, for tests and
// throwaway sessions.
package memory

import (
	"context"

	"github.com/appengine-ltd/better-sleep/internal/tiredness"
)

type Store struct {
	rec   tiredness.Record
	found bool
}

func New() *Store {
	return &Store{}
}

// NewWith returns a store already holding rec.
func NewWith(rec tiredness.Record) *Store {
	return &Store{rec: rec, found: true}
}

func (s *Store) Load(ctx context.Context) (tiredness.Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return tiredness.Record{}, false, err
	}
	return s.rec, s.found, nil
}

func (s *Store) Upsert(ctx context.Context, rec tiredness.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.rec = rec
	s.found = true
	return nil
}
