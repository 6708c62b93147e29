// Package config loads runtime settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "BETTER_SLEEP_"

type Config struct {
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL"`
	Debug      bool   `yaml:"debug" env:"DEBUG"`
	TwelveHour bool   `yaml:"twelve_hour" env:"TWELVE_HOUR"`

	// Blackout is the base time spent asleep on screen before quality scaling.
	Blackout time.Duration `yaml:"blackout" env:"BLACKOUT"`

	// DayLengthMinutes is the length of one day in game minutes.
	DayLengthMinutes float64 `yaml:"day_length_minutes" env:"DAY_LENGTH_MINUTES"`
	// TimeScale is game minutes per real second.
	TimeScale     float64 `yaml:"time_scale" env:"TIME_SCALE"`
	StartFraction float64 `yaml:"start_fraction" env:"START_FRACTION"`
	Seed          int64   `yaml:"seed" env:"SEED"`
	RestingSpot   string  `yaml:"resting_spot" env:"RESTING_SPOT"`

	Storage Storage `yaml:"storage" envPrefix:"STORAGE_"`
}

// Storage selects where the tiredness record lives.
type Storage struct {
	Driver string `yaml:"driver" env:"DRIVER"`
	Path   string `yaml:"path" env:"PATH"`
	DSN    string `yaml:"dsn" env:"DSN"`
	SaveID string `yaml:"save_id" env:"SAVE_ID"`
}

const (
	DriverMemory   = "memory"
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func Default() Config {
	return Config{
		LogLevel:         "info",
		Blackout:         5 * time.Second,
		DayLengthMinutes: 1440,
		TimeScale:        1,
		StartFraction:    0.9,
		RestingSpot:      "bed",
		Storage: Storage{
			Driver: DriverJSON,
			SaveID: "default",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides. A
// missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Blackout < 0 {
		errs = append(errs, fmt.Errorf("blackout must not be negative"))
	}
	if c.DayLengthMinutes <= 0 {
		errs = append(errs, fmt.Errorf("day_length_minutes must be greater than zero"))
	}
	if c.TimeScale < 0 {
		errs = append(errs, fmt.Errorf("time_scale must not be negative"))
	}
	if c.StartFraction < 0 || c.StartFraction >= 1 {
		errs = append(errs, fmt.Errorf("start_fraction must be in [0, 1)"))
	}
	switch c.Storage.Driver {
	case DriverMemory, DriverJSON, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			errs = append(errs, fmt.Errorf("storage.dsn is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a config log level to slog.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", s)
	}
	return level, nil
}
