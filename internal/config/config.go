// Package config loads the optional syllabus config file.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the show command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Environment variable names.
const (
	EnvSchedule = "SYLLABUS_FILE"
	EnvFormat   = "SYLLABUS_FORMAT"
)

// Config holds user preferences read from config.yaml.
type Config struct {
	// Schedule is the schedule file, relative to the base directory unless absolute.
	Schedule string `yaml:"schedule"`

	// Format is the default output format for show.
	Format string `yaml:"format"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:   FormatText,
		LogLevel: "warn",
	}
}

// Load reads and validates the config at path. A missing file yields the defaults.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate normalises and checks a configuration.
func Validate(cfg *Config) error {
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if err := ValidateFormat(cfg.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// ValidateFormat rejects output formats other than text, json and yaml.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid format %q (must be text, json, or yaml)", format)
	}
}

// ParseLevel maps a config log level onto slog. Empty means warn.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid level %q (must be debug, info, warn, or error)", value)
	}
}

func (c *Config) applyEnvironmentOverrides() {
	if schedule := strings.TrimSpace(os.Getenv(EnvSchedule)); schedule != "" {
		c.Schedule = schedule
	}
	if format := strings.TrimSpace(os.Getenv(EnvFormat)); format != "" {
		c.Format = format
	}
}
