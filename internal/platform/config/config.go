// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries every knob the client reads from the environment.
type Config struct {
	// APIBaseURL is the remote library service origin.
	APIBaseURL string `env:"LIBRARIUM_API_BASE_URL" envDefault:"https://localhost:7187"`
	// StateDriver selects the durable client-state backend.
	StateDriver string `env:"LIBRARIUM_STATE_DRIVER" envDefault:"bbolt"`
	// StatePath is the state file location for file-backed drivers.
	StatePath string `env:"LIBRARIUM_STATE_PATH" envDefault:"librarium.db"`
	// Locale selects the message catalog.
	Locale string `env:"LIBRARIUM_LOCALE" envDefault:"en-US"`
	// OTelEndpoint enables trace export when set.
	OTelEndpoint string `env:"LIBRARIUM_OTEL_ENDPOINT"`
	// OTelEnabled force-disables tracing even when an endpoint is set.
	OTelEnabled bool `env:"LIBRARIUM_OTEL_ENABLED" envDefault:"true"`
}

// State drivers.
const (
	DriverBBolt  = "bbolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the client cannot run with.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	switch c.StateDriver {
	case DriverBBolt, DriverSQLite:
		if c.StatePath == "" {
			return fmt.Errorf("state path is required for driver %q", c.StateDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown state driver %q", c.StateDriver)
	}
	return nil
}
