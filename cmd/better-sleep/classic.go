package main

import (
	"context"
	"io"

	"github.com/appengine-ltd/better-sleep/internal/config"
	"github.com/appengine-ltd/better-sleep/internal/input"
	"github.com/appengine-ltd/better-sleep/internal/ui"
)

// runClassic runs the terminal frontend.
func runClassic(ctx context.Context, cfg config.Config) error {
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg.LogLevel)

	keys := &input.Buffer{}
	s, err := newSession(ctx, cfg, keys, logger)
	if err != nil {
		return err
	}
	app := ui.NewApp(ui.AppConfig{
		Version: version,
		Driver:  s.driver,
		Keys:    keys,
		Spot:    s.spot,
	})
	runErr := app.Run(ctx)
	if err := s.close(); err != nil {
		logger.Warn("closing session", "err", err)
	}
	return runErr
}
