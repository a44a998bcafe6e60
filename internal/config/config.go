// Package config loads settings for the catalogue command from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls which pages the catalogue runs and how it logs.
type Config struct {
	// Pages limits the run to these page names. Empty means every page.
	Pages     []string `env:"SINGLETON_PAGES"      envSeparator:","`
	LogPrefix string   `env:"SINGLETON_LOG_PREFIX" envDefault:"singletons"`
}

// LoadFromEnv parses Config from the process environment.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load parses Config from environ instead of the process environment.
func Load(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
