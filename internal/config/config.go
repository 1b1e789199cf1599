package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, read from the environment.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"GOLFSHOTS_ADDR" envDefault:":8080"`

	// DataDir is the directory holding the Golf-*.json source files.
	DataDir string `env:"GOLFSHOTS_DATA_DIR" envDefault:"."`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
