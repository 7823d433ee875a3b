package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the application reads its own settings from.
const EnvPrefix = "CMDGRID_"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// ConfigPaths lists HCL/YAML/JSON files or directories holding command variables.
	ConfigPaths []string `env:"CONFIG" envSeparator:","`

	// Host is the program name shown in usage lines.
	Host string `env:"HOST" envDefault:"cmdgrid"`

	// VarsPrefix selects which environment variables become command variables.
	VarsPrefix string `env:"VARS_PREFIX" envDefault:"CMDGRID_VAR_"`
}

// ConfigFromEnv reads settings from environ, or from the process environment
// when environ is nil.
func ConfigFromEnv(environ map[string]string) (*Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return NewConfig(cfg)
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Host == "" {
		cfg.Host = "cmdgrid"
	}
	return &cfg, nil
}
