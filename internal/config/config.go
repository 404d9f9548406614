package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains simulator configuration parameters.
type Config struct {
	LogLevel  int    `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	API       API    `envPrefix:"API_"`
	Script    Script `envPrefix:"SCRIPT_"`
}

// API contains fake client parameters.
type API struct {
	// BaseURL is cosmetic: the fake client never dials it, but logs full
	// URLs as a real client would.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

// Script contains driver script parameters.
type Script struct {
	TraceRequests bool `env:"TRACE_REQUESTS" envDefault:"true"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
