package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
)

// Config holds process configuration, read from the environment.
type Config struct {
	// DBPath is the SQLite file backing the key-value store. Empty means
	// ~/.stillness/stillness.db.
	DBPath string `env:"STILLNESS_DB"`

	// CatalogPath optionally points at a YAML file overriding the built-in
	// breathing-pattern and ambient-sound catalogs.
	CatalogPath string `env:"STILLNESS_CATALOG"`

	// NoColor disables styled terminal output.
	NoColor bool `env:"STILLNESS_NO_COLOR"`
}

// New parses configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// ResolveDBPath returns the configured database path, defaulting to
// ~/.stillness/stillness.db.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".stillness", "stillness.db"), nil
}
