package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const defaultEnvFile = ".env"

// EnvConfig maps environment variables onto Config. noinit keeps unset
// variables nil.
type EnvConfig struct {
	APIBaseURL       *string `env:"GALLERY_API_BASE_URL, noinit"`
	RequestTimeoutMs *int64  `env:"GALLERY_REQUEST_TIMEOUT_MS, noinit"`
	DatabasePath     *string `env:"GALLERY_DB_PATH, noinit"`
	LogLevel         *string `env:"GALLERY_LOG_LEVEL, noinit"`
	LogFormat        *string `env:"GALLERY_LOG_FORMAT, noinit"`
	ColorSchemeFile  *string `env:"GALLERY_COLOR_SCHEME_FILE, noinit"`
}

// parseEnv loads the dotenv file given with -e/-env (or ./.env when present)
// into the process environment, then overlays Config from it. Variables
// already set in the environment win over the dotenv file.
func parseEnv(cfg *Config) error {
	if err := loadEnvFile(flagx.EnvFileFlags()); err != nil {
		return err
	}
	return parseEnvWith(context.Background(), cfg, envconfig.OsLookuper())
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", defaultEnvFile, err)
	}
	return nil
}

func parseEnvWith(ctx context.Context, cfg *Config, l envconfig.Lookuper) error {
	var ec EnvConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &ec, Lookuper: l}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	setString(&cfg.APIBaseURL, ec.APIBaseURL)
	setString(&cfg.DatabasePath, ec.DatabasePath)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.LogFormat, ec.LogFormat)
	setString(&cfg.ColorSchemeFile, ec.ColorSchemeFile)
	if ec.RequestTimeoutMs != nil {
		cfg.RequestTimeout = time.Duration(*ec.RequestTimeoutMs) * time.Millisecond
	}
	return nil
}
