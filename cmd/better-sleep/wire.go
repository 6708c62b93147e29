package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/better-sleep/internal/config"
	"github.com/appengine-ltd/better-sleep/internal/game"
	"github.com/appengine-ltd/better-sleep/internal/host"
	"github.com/appengine-ltd/better-sleep/internal/hud"
	"github.com/appengine-ltd/better-sleep/internal/input"
	"github.com/appengine-ltd/better-sleep/internal/quality"
	"github.com/appengine-ltd/better-sleep/internal/sleep"
	"github.com/appengine-ltd/better-sleep/internal/store"
	"github.com/appengine-ltd/better-sleep/internal/store/jsonfile"
	"github.com/appengine-ltd/better-sleep/internal/store/memory"
	"github.com/appengine-ltd/better-sleep/internal/store/postgres"
	"github.com/appengine-ltd/better-sleep/internal/store/sqlite"
	"github.com/appengine-ltd/better-sleep/internal/tiredness"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type session struct {
	driver *game.Driver
	spot   *host.Spot
	queue  *store.Queue
	close  func() error
}

// openBackend returns the configured record store and its cleanup.
func openBackend(ctx context.Context, cfg config.Storage) (tiredness.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), noop, nil
	case config.DriverJSON:
		path := cfg.Path
		if path == "" {
			p, err := jsonfile.DefaultPath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		s, err := jsonfile.New(path, cfg.SaveID)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case config.DriverSQLite:
		path := cfg.Path
		if path == "" {
			p, err := jsonfile.DefaultPath()
			if err != nil {
				return nil, nil, err
			}
			path = filepath.Join(filepath.Dir(p), "saves.db")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("create save dir: %w", err)
			}
		}
		s, err := sqlite.Open(ctx, path, cfg.SaveID)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg.DSN, cfg.SaveID)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { s.Close(); return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// newSession wires the world, the tiredness record and the driver for one
// run of the game. src is the frontend's picker input.
func newSession(ctx context.Context, cfg config.Config, src input.Source, logger *slog.Logger) (*session, error) {
	backend, closeBackend, err := openBackend(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}

	surface, ok := quality.ParseSurface(cfg.RestingSpot)
	if !ok {
		surface = quality.SurfaceNone
	}
	world := host.NewWorldClock(cfg.DayLengthMinutes, cfg.TimeScale, cfg.StartFraction)
	spot := host.NewSpot(surface)
	queue := store.NewQueue(backend)
	resumeClock(ctx, world, queue, logger)
	tracker := tiredness.NewTracker(ctx, queue, world.Now(), world.DayLength(), logger)

	driver := game.NewDriver(game.Deps{
		World:   world,
		Input:   src,
		HUD:     hud.NewState(),
		Tracker: tracker,
		Resting: spot,
		Saves:   queue,
		Rand:    sleep.NewRand(cfg.Seed),
		Logger:  logger,
	}, game.Options{
		Debug:      cfg.Debug,
		TwelveHour: cfg.TwelveHour,
		Blackout:   cfg.Blackout,
	})

	return &session{
		driver: driver,
		spot:   spot,
		queue:  queue,
		close: func() error {
			flushErr := queue.Flush(context.WithoutCancel(ctx))
			return errors.Join(flushErr, closeBackend())
		},
	}, nil
}

// resumeClock continues the world clock from the saved record so a restart
// adds no fatigue. StartFraction only applies to a fresh save.
func resumeClock(ctx context.Context, world *host.WorldClock, saves tiredness.Store, logger *slog.Logger) {
	rec, found, err := saves.Load(ctx)
	switch {
	case err != nil:
		logger.WarnContext(ctx, "loading save for clock resume", "err", err)
	case found:
		world.ResumeAt(rec.LastTirednessUpdate)
		logger.DebugContext(ctx, "clock resumed", "now", world.Now())
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// openLogFile sends logs beside the saves so they stay off the terminal UI.
func openLogFile() (io.WriteCloser, error) {
	p, err := jsonfile.DefaultPath()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "better-sleep.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func printVersion() {
	fmt.Printf("Better Sleep %s (%s) %s\n", version, commit, date)
}
