// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/dotandev/cucalc/internal/errors"
)

// Format selects how estimate output is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

var validFormats = map[string]bool{
	string(FormatText):     true,
	string(FormatMarkdown): true,
	string(FormatJSON):     true,
}

// CurrentSchemaVersion is written into new config files. Files with a
// schema_version outside schemaConstraint are rejected rather than
// half-applied.
const CurrentSchemaVersion = "1.0"

const schemaConstraint = ">= 1.0, < 2.0"

// Config represents the general configuration for cucalc. It covers
// presentation and ambient concerns only; the fee model rates are fixed
// constants and deliberately not configurable.
type Config struct {
	// SchemaVersion identifies the config file layout, checked against
	// a semver constraint on load.
	SchemaVersion string `json:"schema_version,omitempty"`
	Format        Format `json:"format,omitempty"`
	LogLevel      string `json:"log_level,omitempty"`
	// Telemetry enables opt-in OpenTelemetry trace export.
	// Set via telemetry = true in config or CUCALC_TELEMETRY=true.
	Telemetry bool `json:"telemetry,omitempty"`
	// TelemetryEndpoint is the OTLP/HTTP collector endpoint.
	TelemetryEndpoint string `json:"telemetry_endpoint,omitempty"`
}

var defaultConfig = &Config{
	SchemaVersion:     CurrentSchemaVersion,
	Format:            FormatText,
	LogLevel:          "info",
	TelemetryEndpoint: "localhost:4318",
}

// DefaultConfig returns a fresh copy of the built-in defaults.
func DefaultConfig() *Config {
	cfg := *defaultConfig
	return &cfg
}

// GetConfigPath returns the cucalc configuration directory.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapConfigError("failed to resolve home directory", err)
	}
	return filepath.Join(home, ".cucalc"), nil
}

// GetGeneralConfigPath returns the path to the general configuration file.
func GetGeneralConfigPath() (string, error) {
	configDir, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the general configuration from disk (JSON format),
// falling back to defaults when no file exists.
func LoadConfig() (*Config, error) {
	configPath, err := GetGeneralConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapConfigError("failed to read config file", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a JSON config document on top of the defaults and
// validates it.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.WrapConfigError("failed to parse config file", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load builds the configuration from defaults, the config file, and CUCALC_*
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("CUCALC_FORMAT"); v != "" {
		cfg.Format = Format(v)
	}
	if v := os.Getenv("CUCALC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CUCALC_TELEMETRY_ENDPOINT"); v != "" {
		cfg.TelemetryEndpoint = v
	}

	// CUCALC_TELEMETRY is a boolean env var; parse it explicitly.
	switch strings.ToLower(os.Getenv("CUCALC_TELEMETRY")) {
	case "1", "true", "yes":
		cfg.Telemetry = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the schema version and enumerated fields.
func (c *Config) Validate() error {
	if c.SchemaVersion != "" {
		v, err := goversion.NewVersion(c.SchemaVersion)
		if err != nil {
			return errors.WrapConfigError(fmt.Sprintf("invalid schema_version %q", c.SchemaVersion), err)
		}
		constraint, err := goversion.NewConstraint(schemaConstraint)
		if err != nil {
			return errors.WrapConfigError("invalid schema constraint", err)
		}
		if !constraint.Check(v) {
			return errors.WrapConfigError(
				fmt.Sprintf("unsupported schema_version %q (want %s)", c.SchemaVersion, schemaConstraint),
				os.ErrInvalid,
			)
		}
	}
	if c.Format != "" && !validFormats[string(c.Format)] {
		return errors.WrapUnsupportedFormat(string(c.Format))
	}
	return nil
}
