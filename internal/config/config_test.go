// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultDevice != "iphone-14-pro" {
		t.Errorf("DefaultDevice = %q, want iphone-14-pro", cfg.DefaultDevice)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want json", cfg.OutputFormat)
	}
	if cfg.UI.ColorMode != "auto" {
		t.Errorf("ColorMode = %q, want auto", cfg.UI.ColorMode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"md format", func(c *Config) { c.OutputFormat = "md" }, false},
		{"html format", func(c *Config) { c.OutputFormat = "html" }, false},
		{"bad format", func(c *Config) { c.OutputFormat = "yaml" }, true},
		{"never color", func(c *Config) { c.UI.ColorMode = "never" }, false},
		{"bad color mode", func(c *Config) { c.UI.ColorMode = "rainbow" }, true},
		{"missing profiles file", func(c *Config) { c.ProfilesPath = "/nonexistent/devices.toml" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
version = "1"
default_device = "pixel-7"
output_format = "md"

[ui]
color_mode = "never"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.DefaultDevice != "pixel-7" {
		t.Errorf("DefaultDevice = %q, want pixel-7", cfg.DefaultDevice)
	}
	if cfg.OutputFormat != "md" {
		t.Errorf("OutputFormat = %q, want md", cfg.OutputFormat)
	}
	if cfg.UI.ColorMode != "never" {
		t.Errorf("ColorMode = %q, want never", cfg.UI.ColorMode)
	}
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`default_device = "ipad"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.DefaultDevice != "ipad" {
		t.Errorf("DefaultDevice = %q, want ipad", cfg.DefaultDevice)
	}
	// Unset fields fall back to defaults.
	if cfg.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want json", cfg.OutputFormat)
	}
	if cfg.UI.ColorMode != "auto" {
		t.Errorf("ColorMode = %q, want auto", cfg.UI.ColorMode)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("NAVTOKENS_DEVICE", "galaxy-a14")
	t.Setenv("NAVTOKENS_FORMAT", "HTML")
	t.Setenv("NAVTOKENS_COLOR", "never")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.DefaultDevice != "galaxy-a14" {
		t.Errorf("DefaultDevice = %q, want galaxy-a14", cfg.DefaultDevice)
	}
	if cfg.OutputFormat != "html" {
		t.Errorf("OutputFormat = %q, want html (lowercased)", cfg.OutputFormat)
	}
	if cfg.UI.ColorMode != "never" {
		t.Errorf("ColorMode = %q, want never", cfg.UI.ColorMode)
	}
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"default_device", "pixel-7", false},
		{"output_format", "md", false},
		{"output-format", "html", false}, // dashed spelling
		{"color_mode", "always", false},
		{"ui.color_mode", "never", false}, // dotted spelling
		{"output_format", "yaml", true},
		{"nonsense", "x", true},
	}

	for _, tc := range tests {
		err := cfg.Set(tc.key, tc.value)
		if (err != nil) != tc.wantErr {
			t.Errorf("Set(%q, %q) error = %v, wantErr %v", tc.key, tc.value, err, tc.wantErr)
		}
		if !tc.wantErr {
			got, err := cfg.Get(tc.key)
			if err != nil {
				t.Errorf("Get(%q): %v", tc.key, err)
			}
			if got != tc.value {
				t.Errorf("Get(%q) = %q, want %q", tc.key, got, tc.value)
			}
		}
	}
}

func TestGetAllKeys(t *testing.T) {
	keys := GetAllKeys()
	if len(keys) != 4 {
		t.Fatalf("GetAllKeys() returned %d keys, want 4", len(keys))
	}

	cfg := Default()
	for _, key := range keys {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("key %q listed but not gettable: %v", key, err)
		}
	}
}

func TestSetGlobal_BeforeFirstGlobalWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	cfg := Default()
	cfg.DefaultDevice = "pixel-7"
	SetGlobal(cfg)

	// The lazy first-access load must not clobber an explicit SetGlobal.
	if got := Global().DefaultDevice; got != "pixel-7" {
		t.Errorf("Global().DefaultDevice = %q, want pixel-7", got)
	}
}

func TestSave_CreatesConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.UI.ColorMode = "never"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath error: %v", err)
	}
	if loaded.UI.ColorMode != "never" {
		t.Errorf("ColorMode = %q, want never", loaded.UI.ColorMode)
	}
}
