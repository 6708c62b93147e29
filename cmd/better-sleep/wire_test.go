package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/better-sleep/internal/config"
	"github.com/appengine-ltd/better-sleep/internal/input"
	"github.com/appengine-ltd/better-sleep/internal/quality"
)

func testConfig(driver, path string) config.Config {
	cfg := config.Default()
	cfg.TimeScale = 0
	cfg.Storage.Driver = driver
	cfg.Storage.Path = path
	return cfg
}

func TestNewSessionWiresRestingSpotAndClock(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.DriverMemory, "")
	cfg.RestingSpot = "vehicle rear"
	cfg.StartFraction = 0.5

	s, err := newSession(ctx, cfg, &input.Buffer{}, newLogger(io.Discard, "debug"))
	require.NoError(t, err)
	defer s.close()

	assert.Equal(t, quality.SurfaceVehicleRear, s.spot.Surface())
	assert.Equal(t, "12:00", s.driver.ClockText())
}

func TestSessionPersistsThroughJSONFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves.json")
	cfg := testConfig(config.DriverJSON, path)

	s, err := newSession(ctx, cfg, &input.Buffer{}, newLogger(io.Discard, "info"))
	require.NoError(t, err)
	require.True(t, s.driver.Wait(ctx, 120))
	want := s.driver.Tracker().Tiredness()
	wantClock := s.driver.ClockText()
	require.NoError(t, s.close())

	again, err := newSession(ctx, cfg, &input.Buffer{}, newLogger(io.Discard, "info"))
	require.NoError(t, err)
	defer again.close()
	assert.Equal(t, wantClock, again.driver.ClockText())

	again.driver.Frame(ctx, 16*time.Millisecond)
	assert.InDelta(t, want, again.driver.Tracker().Tiredness(), 1e-9)
	assert.InDelta(t, 2.0, again.driver.Tracker().Status().AwakeHours, 1e-9)
}

func TestFreshSaveStartsAtConfiguredTime(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.DriverJSON, filepath.Join(t.TempDir(), "saves.json"))
	cfg.StartFraction = 0.25

	s, err := newSession(ctx, cfg, &input.Buffer{}, newLogger(io.Discard, "info"))
	require.NoError(t, err)
	defer s.close()
	assert.Equal(t, "06:00", s.driver.ClockText())
}

func TestSessionOnSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves.db")
	s, err := newSession(ctx, testConfig(config.DriverSQLite, path), &input.Buffer{}, newLogger(io.Discard, "info"))
	require.NoError(t, err)

	s.driver.Frame(ctx, 16*time.Millisecond)
	assert.False(t, s.queue.Pending())
	require.NoError(t, s.close())
}

func TestOpenBackendRejectsUnknownDriver(t *testing.T) {
	_, _, err := openBackend(context.Background(), config.Storage{Driver: "tape"})
	require.Error(t, err)
}
