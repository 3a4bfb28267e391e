// Package internal provides the per-invocation wiring of the journal CLI.
package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	pkgconfig "github.com/starford/dagaz/pkg/config"
)

// Config file locations, in discovery order after an explicit --config path.
const (
	LocalConfigName = ".dagaz.toml"
	userConfigDir   = "dagaz"
	userConfigName  = "config.toml"
)

// Config represents the application configuration.
type Config struct {
	// DefaultPath is the journal root used when no --path is given.
	DefaultPath string `toml:"default_path,omitempty"`
	// DefaultFormat is the output format `get` uses when no --format is
	// given; empty means paths.
	DefaultFormat string     `toml:"default_format,omitempty"`
	LogLevel      slog.Level `toml:"log_level,omitempty"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultFormat, validation.In(FormatPaths, FormatContent, FormatJSON)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: slog.LevelInfo,
	}
}

// UserConfigPath returns the per-user config file location,
// e.g. ~/.config/dagaz/config.toml on Linux.
func UserConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, userConfigDir, userConfigName), nil
}

// LoadConfig resolves the configuration for one invocation. An explicit
// path is used as-is; otherwise the working directory and the user config
// location are tried in turn. A file that is missing anywhere in the chain
// falls through to defaults, but a file that exists and fails to parse or
// validate is an error.
func LoadConfig(explicit string) (*Config, error) {
	cfg := NewDefaultConfig()

	if explicit != "" {
		if _, err := pkgconfig.LoadIfExists(explicit, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if found, err := pkgconfig.LoadIfExists(LocalConfigName, cfg); err != nil {
		return nil, err
	} else if found {
		return cfg, nil
	}

	userPath, err := UserConfigPath()
	if err != nil {
		// No resolvable home directory; run on defaults.
		return cfg, nil
	}
	if _, err := pkgconfig.LoadIfExists(userPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
