package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/better-sleep/internal/tiredness"
)

func openTestStore(t *testing.T, path, saveID string) *Store {
	t.Helper()
	s, err := Open(context.Background(), path, saveID)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmpty(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "sleep.db"), "slot")
	_, found, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpsertRoundTripAndOverwrite(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "sleep.db"), "slot")

	require.NoError(t, s.Upsert(ctx, tiredness.DefaultRecord(12)))
	want := tiredness.Record{Tiredness: 0.25, LastSleepTime: 100, LastTirednessUpdate: 400, LastSleepQuality: 0.55}
	require.NoError(t, s.Upsert(ctx, want))

	got, found, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
}

func TestReopenKeepsRecordsPerSlot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sleep.db")

	first, err := Open(ctx, path, "a")
	require.NoError(t, err)
	require.NoError(t, first.Upsert(ctx, tiredness.Record{Tiredness: 0.9, LastSleepQuality: 1}))
	require.NoError(t, first.Close())

	again := openTestStore(t, path, "a")
	got, found, err := again.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 0.9, got.Tiredness)

	other := openTestStore(t, path, "b")
	_, found, err = other.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "", "a")
	assert.Error(t, err)
}
