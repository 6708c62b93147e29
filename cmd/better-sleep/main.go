//go:build cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/appengine-ltd/better-sleep/internal/gui"
)

func main() {
	var (
		showVersion bool
		classic     bool
		configPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&classic, "classic", false, "run the terminal frontend instead of the window")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.Parse()

	if showVersion {
		printVersion()
		return
	}

	if err := run(configPath, classic); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, classic bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if classic {
		return runClassic(ctx, cfg)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)
	keyboard := gui.NewKeyboard()
	s, err := newSession(ctx, cfg, keyboard, logger)
	if err != nil {
		return err
	}
	app := gui.NewApp(gui.AppConfig{
		Version: version,
		Driver:  s.driver,
		Spot:    s.spot,
		Logger:  logger,
	})
	runErr := app.Run(ctx)
	if err := s.close(); err != nil {
		logger.Warn("closing session", "err", err)
	}
	return runErr
}
