package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
twelve_hour: true
blackout: 2s
day_length_minutes: 720
resting_spot: vehicle_rear
storage:
  driver: sqlite
  path: /tmp/sleep.db
  save_id: run-7
`)
	t.Setenv("BETTER_SLEEP_BLACKOUT", "3s")
	t.Setenv("BETTER_SLEEP_STORAGE_SAVE_ID", "run-8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.TwelveHour)
	assert.Equal(t, 3*time.Second, cfg.Blackout)
	assert.Equal(t, 720.0, cfg.DayLengthMinutes)
	assert.Equal(t, 1.0, cfg.TimeScale)
	assert.Equal(t, "vehicle_rear", cfg.RestingSpot)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/sleep.db", cfg.Storage.Path)
	assert.Equal(t, "run-8", cfg.Storage.SaveID)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
log_level: loud
day_length_minutes: 0
storage:
  driver: postgres
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "log_level")
	assert.ErrorContains(t, err, "day_length_minutes")
	assert.ErrorContains(t, err, "storage.dsn")
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "debug: [\n"))
	assert.ErrorContains(t, err, "parsing config")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
