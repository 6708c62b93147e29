//go:build !cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	var (
		showVersion bool
		configPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Bool("classic", true, "ignored; builds without cgo always use the terminal frontend")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.Parse()

	if showVersion {
		printVersion()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(configPath)
	if err == nil {
		err = runClassic(ctx, cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
