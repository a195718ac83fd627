package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultRouteFile  = "route.csv"
	defaultConfigFile = "config.yml"
)

// Application configuration. Values come from an optional config.yml with
// environment variables taking precedence; the zero config falls back to a
// CSV file next to the binary.
type Config struct {
	// Path of the CSV file holding the route between invocations.
	RouteFile string `yaml:"route_file" validate:"required"`

	// When set, the route is persisted to this database instead of the CSV
	// file. SQLite path or postgres:// URL.
	DatabaseURL string `yaml:"database_url"`

	LogFormat string `yaml:"log_format" validate:"oneof=console json"`
	Debug     bool   `yaml:"debug"`
}

// Load reads config.yml when present, applies environment overrides and
// validates the result.
func Load() (Config, error) {
	cfg := Config{
		RouteFile: defaultRouteFile,
		LogFormat: "console",
	}

	data, err := os.ReadFile(defaultConfigFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: parse %s: %w", defaultConfigFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// config file is optional
	default:
		return Config{}, fmt.Errorf("load config: read %s: %w", defaultConfigFile, err)
	}

	cfg.RouteFile = Get("BUSROUTE_FILE", cfg.RouteFile)
	cfg.DatabaseURL = Get("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogFormat = Get("BUSROUTE_LOG_FORMAT", cfg.LogFormat)
	if os.Getenv("BUSROUTE_DEBUG") == "YES" {
		cfg.Debug = true
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
