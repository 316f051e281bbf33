// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fba-cost/adapters/history"
	"fba-cost/core/engine"
	"fba-cost/core/types"
	"fba-cost/internal/errors"
	"fba-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains quoting defaults
	Engine EngineConfig `json:"engine"`

	// History contains history store configuration
	History history.Config `json:"history"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig fills product fields left blank on the command line or in
// scenario files
type EngineConfig struct {
	// DefaultCategory is the fulfillment category
	DefaultCategory string `json:"default_category"`

	// DefaultSeason is the fulfillment rate-table version
	DefaultSeason string `json:"default_season"`

	// DefaultStorageSeason is jansep or octdec
	DefaultStorageSeason string `json:"default_storage_season"`

	// DefaultReferralCategory is the referral catalog entry
	DefaultReferralCategory string `json:"default_referral_category"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors in CLI output
	NoColor bool `json:"no_color"`
}

// Dir is the per-user configuration and data directory
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fba-cost"
	}
	return filepath.Join(homeDir, ".fba-cost")
}

// DefaultPath is the configuration file used when --config is not given
func DefaultPath() string {
	return filepath.Join(Dir(), "config.json")
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			DefaultCategory:         string(types.CategoryNormal),
			DefaultSeason:           string(types.SeasonNonPeak2026),
			DefaultStorageSeason:    string(types.StorageJanSep),
			DefaultReferralCategory: "everything_else",
		},
		History: history.Config{
			Backend: history.BackendSQLite,
			Path:    filepath.Join(Dir(), "history.db"),
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file; a missing file yields defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config file", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to parse config file", err).WithContext("path", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.History.Backend {
	case history.BackendMemory, history.BackendFile, history.BackendSQLite:
	default:
		return errors.Newf(errors.TypeConfig, "unknown history backend %q", c.History.Backend)
	}
	switch c.Output.DefaultFormat {
	case "cli", "json":
	default:
		return errors.Newf(errors.TypeConfig, "unknown output format %q", c.Output.DefaultFormat)
	}
	if s := types.ParseSeason(c.Engine.DefaultSeason); !s.IsValid() {
		return errors.Newf(errors.TypeConfig, "unknown default season %q", c.Engine.DefaultSeason)
	}
	return nil
}

// EngineDefaults converts the engine section for engine.WithDefaults
func (c *Config) EngineDefaults() engine.Defaults {
	return engine.Defaults{
		Category:         types.ParseCategory(c.Engine.DefaultCategory),
		Season:           types.ParseSeason(c.Engine.DefaultSeason),
		StorageSeason:    types.ParseStorageSeason(c.Engine.DefaultStorageSeason),
		ReferralCategory: c.Engine.DefaultReferralCategory,
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("failed to create config directory", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Config("failed to encode config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("failed to write config file", err)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
