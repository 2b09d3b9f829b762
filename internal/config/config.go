// Package config loads and validates the application configuration.
//
// Source identifiers and fetch behavior are configuration, not
// constants. A missing config file is fine — defaults apply — but a
// malformed one fails fast at startup: it is unrecoverable without
// operator intervention, unlike an unreachable sheet.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/mbarros/linhatempo/internal/sheet"
)

// Validation errors surfaced by Validate.
var (
	ErrNoSource       = errors.New("sheet id or url must be set")
	ErrTimeoutInvalid = errors.New("fetch timeout must be positive")
	ErrTTLInvalid     = errors.New("cache ttl must be positive")
)

// Config is the full application configuration.
type Config struct {
	Sheet SheetConfig `mapstructure:"sheet"`
	Fetch FetchConfig `mapstructure:"fetch"`
}

// SheetConfig identifies the spreadsheet to load.
type SheetConfig struct {
	ID   string   `mapstructure:"id"`   // Google Sheets document ID
	Tabs []string `mapstructure:"tabs"` // optional tab GIDs; empty means first tab
	URL  string   `mapstructure:"url"`  // explicit CSV endpoint, overrides ID/Tabs
}

// FetchConfig bounds the remote fetch and the cache window.
type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// Default returns the built-in configuration: the public geography
// timeline sheet, a bounded fetch, and a ten minute cache window.
func Default() Config {
	return Config{
		Sheet: SheetConfig{
			ID: "1Q3IsRvT5KmR72NtWYuHSqKz50xdP9S4a-U5z6UAacTQ",
		},
		Fetch: FetchConfig{
			Timeout: 15 * time.Second,
			TTL:     10 * time.Minute,
		},
	}
}

// Load reads configuration with Viper. When path is empty it looks for
// config.yaml in the working directory and then ~/.linhatempo; a
// missing file is not an error. The result is validated before return.
func Load(path string) (Config, error) {
	v := viper.New()
	defaults := Default()
	v.SetDefault("sheet.id", defaults.Sheet.ID)
	v.SetDefault("fetch.timeout", defaults.Fetch.Timeout)
	v.SetDefault("fetch.ttl", defaults.Fetch.TTL)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".linhatempo"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable, returning a
// sentinel error on failure.
func (c Config) Validate() error {
	if c.Sheet.ID == "" && c.Sheet.URL == "" {
		return ErrNoSource
	}
	if c.Fetch.Timeout <= 0 {
		return ErrTimeoutInvalid
	}
	if c.Fetch.TTL <= 0 {
		return ErrTTLInvalid
	}
	return nil
}

// Sources expands the sheet configuration into one fetch source per
// tab, preserving configured tab order. Without tabs there is a single
// source for the sheet's first tab.
func (c Config) Sources() []sheet.Source {
	if c.Sheet.URL != "" {
		return []sheet.Source{{URL: c.Sheet.URL}}
	}
	if len(c.Sheet.Tabs) == 0 {
		return []sheet.Source{{SheetID: c.Sheet.ID}}
	}
	sources := make([]sheet.Source, len(c.Sheet.Tabs))
	for i, gid := range c.Sheet.Tabs {
		sources[i] = sheet.Source{SheetID: c.Sheet.ID, GID: gid}
	}
	return sources
}
