// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the CLI reads from the environment.
type Config struct {
	// DBPath is the SQLite file that stores played rounds.
	DBPath string `env:"ZIKZAKZOO_DB_PATH" envDefault:"zikzakzoo.db"`
	// Seed fixes the opponent seed; 0 means derive it from the clock.
	Seed uint64 `env:"ZIKZAKZOO_SEED" envDefault:"0"`
	// ProverKey is the hex HMAC key for the local prover. Empty means a
	// fresh random key per process.
	ProverKey string `env:"ZIKZAKZOO_PROVER_KEY"`
	// MemLimitMB is the guest memory limit passed to the prover.
	MemLimitMB int `env:"ZIKZAKZOO_MEMLIMIT_MB" envDefault:"8"`
	// Events turns on JSON event lines on stderr.
	Events bool `env:"ZIKZAKZOO_EVENTS" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config populated from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MemLimitMB <= 0 {
		return Config{}, fmt.Errorf("parse env: ZIKZAKZOO_MEMLIMIT_MB must be positive, got %d", cfg.MemLimitMB)
	}
	return cfg, nil
}
