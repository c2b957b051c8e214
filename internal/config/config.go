// Package config provides configuration management for the resource tracker.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config holds the complete application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

// StorageConfig selects where records are kept.
type StorageConfig struct {
	Backend Backend `toml:"backend"`
	Dir     string  `toml:"dir"`
	File    string  `toml:"file"`
}

// Backend names a storage adapter.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	Theme      Theme  `toml:"theme"`
	DateFormat string `toml:"date_format"`
}

// Theme names the initial color palette.
type Theme string

const (
	ThemeStandard Theme = "standard"
	ThemeDark     Theme = "dark"
	ThemeRebel    Theme = "rebel"
	ThemeImperial Theme = "imperial"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// SlogLevel converts the level to a slog.Level, defaulting to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	var errs []error

	if s.Backend != BackendJSON && s.Backend != BackendSQLite {
		errs = append(errs, fmt.Errorf("invalid backend: %q", s.Backend))
	}

	if strings.TrimSpace(s.File) == "" {
		errs = append(errs, errors.New("file is required"))
	}

	if strings.ContainsAny(s.File, `/\`) {
		errs = append(errs, fmt.Errorf("file must be a bare name, got %q", s.File))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	validThemes := map[Theme]bool{
		ThemeStandard: true,
		ThemeDark:     true,
		ThemeRebel:    true,
		ThemeImperial: true,
	}

	if !validThemes[d.Theme] && d.Theme != "" {
		return fmt.Errorf("invalid theme: %s", d.Theme)
	}

	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	return nil
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Dir:     "",
			File:    "swg-resource-tracker.txt",
		},
		Display: DisplayConfig{
			Theme:      ThemeStandard,
			DateFormat: "2006-01-02 15:04",
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "tracker.log",
		},
	}
}
