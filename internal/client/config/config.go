package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the gallery CLI.
//
// Fields:
//   - APIBaseURL: base URL of the REST API, e.g. http://127.0.0.1:8000/api.
//   - RequestTimeout: upper bound of a single HTTP request.
//   - DatabasePath: SQLite file with the session and preferences.
//   - LogLevel, LogFormat: see logging.Options.
//   - ColorSchemeFile: optional file holding "dark" or "light"; watched in
//     auto theme mode.
type Config struct {
	APIBaseURL      string        `validate:"required,url"`
	RequestTimeout  time.Duration `validate:"gt=0"`
	DatabasePath    string        `validate:"required"`
	LogLevel        string        `validate:"oneof=debug info warn warning error"`
	LogFormat       string        `validate:"oneof=pretty json text"`
	ColorSchemeFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 5000 * time.Millisecond
	c.DatabasePath = "gallery.db"
	c.LogLevel = "info"
	c.LogFormat = "pretty"
	c.ColorSchemeFile = ""
}

// Validate checks field constraints after all sources have been applied.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
