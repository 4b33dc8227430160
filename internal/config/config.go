// Package config loads basket settings from the environment and from
// config.json in the basket home directory.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/marcus/basket/internal/flock"
	"github.com/marcus/basket/internal/models"
)

const (
	configFile = "config.json"
	lockFile   = "config.json.lock"
)

// Export formats
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// DefaultExportFormat is used when config.json does not set one.
const DefaultExportFormat = FormatJSON

// Env holds the settings read from BASKET_* environment variables.
type Env struct {
	Home      string `env:"BASKET_HOME"`
	LogLevel  string `env:"BASKET_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"BASKET_LOG_FORMAT" envDefault:"text"`
	User      string `env:"BASKET_USER"`
}

// LoadEnv parses the environment into an Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// IsValidExportFormat reports whether f names a supported export format
func IsValidExportFormat(f string) bool {
	return f == FormatJSON || f == FormatMarkdown
}

// Load reads the config from disk. A missing file yields defaults.
func Load(home string) (*models.Config, error) {
	data, err := os.ReadFile(filepath.Join(home, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return withDefaults(&models.Config{}), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return withDefaults(&cfg), nil
}

func withDefaults(cfg *models.Config) *models.Config {
	if cfg.ExportFormat == "" {
		cfg.ExportFormat = DefaultExportFormat
	}
	return cfg
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(home string, cfg *models.Config) error {
	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("create home: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(home, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, filepath.Join(home, configFile))
}

// lockWait bounds how long Update waits for another writer.
const lockWait = 5 * time.Second

// withConfigLock serializes read-modify-write cycles on config.json
func withConfigLock(home string, fn func() error) error {
	if err := os.MkdirAll(home, 0755); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockWait)
	defer cancel()

	lock := flock.New(filepath.Join(home, lockFile))
	if err := lock.Lock(ctx); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer lock.Unlock()

	return fn()
}

// Update loads the config, applies fn, and saves it under the config lock.
func Update(home string, fn func(*models.Config) error) error {
	return withConfigLock(home, func() error {
		cfg, err := Load(home)
		if err != nil {
			return err
		}
		if err := fn(cfg); err != nil {
			return err
		}
		return Save(home, cfg)
	})
}

// SetExportFormat sets the default export format
func SetExportFormat(home, format string) error {
	if !IsValidExportFormat(format) {
		return fmt.Errorf("invalid export format %q (want json or markdown)", format)
	}
	return Update(home, func(cfg *models.Config) error {
		cfg.ExportFormat = format
		return nil
	})
}

// SetMarkdownWidth sets the glamour wrap width; 0 means terminal width
func SetMarkdownWidth(home string, width int) error {
	if width < 0 {
		return fmt.Errorf("markdown width must be >= 0, got %d", width)
	}
	return Update(home, func(cfg *models.Config) error {
		cfg.MarkdownWidth = width
		return nil
	})
}
