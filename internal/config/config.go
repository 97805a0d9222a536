// Package config resolves runtime settings from a .env file and the
// environment, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings.
type Config struct {
	// DBPath is the SQLite database location. ROTA_DB overrides the
	// default ~/.rota/rota.db.
	DBPath string
	// MetricsAddr, when non-empty, enables the Prometheus /metrics
	// listener on that address (ROTA_METRICS_ADDR).
	MetricsAddr string
	// Location is the reporting timezone (ROTA_TZ, IANA name). Defaults
	// to UTC. Timestamps are recorded with this offset so day bucketing
	// follows the call center's clock.
	Location *time.Location
}

// Load reads .env if present, then the environment, and fills defaults.
func Load() (*Config, error) {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:      os.Getenv("ROTA_DB"),
		MetricsAddr: os.Getenv("ROTA_METRICS_ADDR"),
		Location:    time.UTC,
	}
	if tz := os.Getenv("ROTA_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid ROTA_TZ %q: %w", tz, err)
		}
		cfg.Location = loc
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".rota", "rota.db")
	}
	return cfg, nil
}
