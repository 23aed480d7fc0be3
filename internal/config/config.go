// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the service knobs.
type Config struct {
	// HTTPAddr is the listen address. The default matches the port the
	// original dashboard backend used, so existing front ends keep working.
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":5000"`

	// SeedSales is how many synthetic sales to record at startup. Zero
	// disables seeding.
	SeedSales int `envconfig:"SEED_SALES" default:"50"`
}

// Load reads a .env file if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
