// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// navtokens.
//
// TOML configuration with sensible defaults, environment variable overrides
// and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.navtokens/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/navtokens/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete navtokens configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version"`

	// DefaultDevice is the registry device used when a command names none
	DefaultDevice string `toml:"default_device"`

	// OutputFormat is the default export format: "json", "md" or "html"
	OutputFormat string `toml:"output_format"`

	// ProfilesPath points at an optional custom device profiles TOML file
	ProfilesPath string `toml:"profiles_path"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// ColorMode controls colored output: "auto", "always" or "never"
	ColorMode string `toml:"color_mode"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Version:       "1",
		DefaultDevice: "iphone-14-pro",
		OutputFormat:  "json",
		ProfilesPath:  "",
		UI: UIConfig{
			ColorMode: "auto",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the navtokens configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".navtokens"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file.
// Missing file falls back to defaults. Environment overrides are applied
// last, then the result is validated.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific TOML file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the config file, creating the config
// directory on first save.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// Atomic write: never leave a torn config file behind.
	if err := util.AtomicWriteFileWithDir(path, buf.Bytes(), 0644, 0755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors aggregates validation failures.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// validFormats are the supported export formats.
var validFormats = map[string]bool{"json": true, "md": true, "html": true}

// validColorModes are the supported color modes.
var validColorModes = map[string]bool{"auto": true, "always": true, "never": true}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !validFormats[c.OutputFormat] {
		errs = append(errs, ValidationError{
			Field:   "output_format",
			Message: fmt.Sprintf("must be one of json, md, html (got %q)", c.OutputFormat),
		})
	}

	if !validColorModes[c.UI.ColorMode] {
		errs = append(errs, ValidationError{
			Field:   "ui.color_mode",
			Message: fmt.Sprintf("must be one of auto, always, never (got %q)", c.UI.ColorMode),
		})
	}

	if c.ProfilesPath != "" {
		if _, err := os.Stat(c.ProfilesPath); err != nil {
			errs = append(errs, ValidationError{
				Field:   "profiles_path",
				Message: fmt.Sprintf("file not accessible: %v", err),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty fields with defaults. Called after load so partial
// config files stay valid.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.DefaultDevice == "" {
		c.DefaultDevice = def.DefaultDevice
	}
	if c.OutputFormat == "" {
		c.OutputFormat = def.OutputFormat
	}
	if c.UI.ColorMode == "" {
		c.UI.ColorMode = def.UI.ColorMode
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - NAVTOKENS_DEVICE: overrides default_device
//   - NAVTOKENS_FORMAT: overrides output_format
//   - NAVTOKENS_PROFILES: overrides profiles_path
//   - NAVTOKENS_COLOR: overrides ui.color_mode
func (c *Config) ApplyEnvOverrides() {
	if device := os.Getenv("NAVTOKENS_DEVICE"); device != "" {
		c.DefaultDevice = device
	}

	if format := os.Getenv("NAVTOKENS_FORMAT"); format != "" {
		c.OutputFormat = strings.ToLower(format)
	}

	if profiles := os.Getenv("NAVTOKENS_PROFILES"); profiles != "" {
		c.ProfilesPath = profiles
	}

	if color := os.Getenv("NAVTOKENS_COLOR"); color != "" {
		c.UI.ColorMode = strings.ToLower(color)
	}
}

// =============================================================================
// KEY-BASED ACCESS (for the config command)
// =============================================================================

// configKeys enumerates the settable config keys.
var configKeys = []string{
	"default_device",
	"output_format",
	"profiles_path",
	"color_mode",
}

// GetAllKeys returns all settable configuration keys.
func GetAllKeys() []string {
	keys := make([]string, len(configKeys))
	copy(keys, configKeys)
	return keys
}

// Get returns the value for a configuration key.
func (c *Config) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case "default_device":
		return c.DefaultDevice, nil
	case "output_format":
		return c.OutputFormat, nil
	case "profiles_path":
		return c.ProfilesPath, nil
	case "color_mode":
		return c.UI.ColorMode, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set assigns a value to a configuration key and validates the result.
func (c *Config) Set(key, value string) error {
	switch normalizeKey(key) {
	case "default_device":
		c.DefaultDevice = value
	case "output_format":
		c.OutputFormat = strings.ToLower(value)
	case "profiles_path":
		c.ProfilesPath = value
	case "color_mode":
		c.UI.ColorMode = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return c.Validate()
}

// normalizeKey accepts dashed and dotted key spellings.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.TrimPrefix(key, "ui.")
	return key
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		defer globalConfigMu.Unlock()
		// A SetGlobal that raced ahead of the first access wins.
		if globalConfig == nil {
			globalConfig = cfg
		}
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
