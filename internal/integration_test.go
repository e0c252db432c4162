// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package internal provides integration tests for the complete navtokens
// pipeline.
//
// These tests verify end-to-end functionality including:
// - Device lookup through detection to token assembly
// - Custom profile loading layered over builtins
// - Snapshot export to every supported format
// - Configuration save/load round trips
package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/navtokens/internal/config"
	"github.com/jeranaias/navtokens/internal/device"
	"github.com/jeranaias/navtokens/internal/export"
	"github.com/jeranaias/navtokens/internal/tokens"
)

// =============================================================================
// PIPELINE TESTS
// =============================================================================

// TestDeviceToTokensPipeline walks the full path a CLI command takes:
// registry lookup, capability detection, token assembly.
func TestDeviceToTokensPipeline(t *testing.T) {
	reg := device.NewRegistry()

	tests := []struct {
		device        string
		wantIOS       bool
		wantTablet    bool
		wantBlur      bool
		wantTabTotal  float64
		wantHeaderTot float64
	}{
		{"iphone-14-pro", true, false, true, 83, 91},
		{"iphone-se", true, false, true, 49, 64},
		{"pixel-7", false, false, false, 56, 80},
		{"pixel-tablet", false, true, false, 56, 80},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			ref, ok := reg.Lookup(tt.device)
			if !ok {
				t.Fatalf("builtin device %q not found", tt.device)
			}

			profile := device.Detect(ref.Metrics)
			if profile.IsIOS != tt.wantIOS {
				t.Errorf("IsIOS = %v, want %v", profile.IsIOS, tt.wantIOS)
			}
			if profile.IsTablet != tt.wantTablet {
				t.Errorf("IsTablet = %v, want %v", profile.IsTablet, tt.wantTablet)
			}
			if profile.SupportsBlur != tt.wantBlur {
				t.Errorf("SupportsBlur = %v, want %v", profile.SupportsBlur, tt.wantBlur)
			}

			tree := tokens.Assemble(profile)
			if tree.Spacing.TabBar.TotalHeight != tt.wantTabTotal {
				t.Errorf("tab_bar.total_height = %g, want %g", tree.Spacing.TabBar.TotalHeight, tt.wantTabTotal)
			}
			if tree.Spacing.Header.TotalHeight != tt.wantHeaderTot {
				t.Errorf("header.total_height = %g, want %g", tree.Spacing.Header.TotalHeight, tt.wantHeaderTot)
			}
		})
	}
}

// TestCustomProfilesLayerOverBuiltins loads a profiles file that both adds
// a new device and overrides a builtin one.
func TestCustomProfilesLayerOverBuiltins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devices.toml")
	content := `
[devices.foldable-x]
width = 373
height = 841
pixel_ratio = 2.5
os = "android"

[devices.pixel-7]
width = 500
height = 1000
pixel_ratio = 3
os = "android"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	reg := device.NewRegistry()
	if err := reg.LoadProfiles(path); err != nil {
		t.Fatalf("LoadProfiles error: %v", err)
	}

	added, ok := reg.Lookup("foldable-x")
	if !ok {
		t.Fatal("custom device foldable-x should resolve")
	}
	if added.Metrics.PixelRatio != 2.5 {
		t.Errorf("foldable-x pixel ratio = %g, want 2.5", added.Metrics.PixelRatio)
	}

	overridden, ok := reg.Lookup("pixel-7")
	if !ok {
		t.Fatal("pixel-7 should still resolve")
	}
	if overridden.Metrics.Width != 500 {
		t.Errorf("pixel-7 width = %g, want override 500", overridden.Metrics.Width)
	}

	// Builtins not named in the file survive.
	if _, ok := reg.Lookup("iphone-14-pro"); !ok {
		t.Error("builtin iphone-14-pro should survive a profile load")
	}
}

// =============================================================================
// EXPORT TESTS
// =============================================================================

// TestSnapshotExportAllFormats exports one snapshot to every format and
// verifies each file lands on disk with sensible content.
func TestSnapshotExportAllFormats(t *testing.T) {
	reg := device.NewRegistry()
	ref, ok := reg.Lookup("iphone-14-pro")
	if !ok {
		t.Fatal("iphone-14-pro not found")
	}
	snap := export.NewSnapshot(ref)

	dir := t.TempDir()
	tests := []struct {
		format   string
		ext      string
		contains string
	}{
		{"json", ".json", `"snapshot_id"`},
		{"md", ".md", "# Navigation Tokens: iphone-14-pro"},
		{"html", ".html", "<!DOCTYPE html>"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := export.ForFormat(tt.format, export.DefaultOptions())
			if err != nil {
				t.Fatalf("ForFormat(%q) error: %v", tt.format, err)
			}
			if exporter.FileExtension() != tt.ext {
				t.Errorf("extension = %q, want %q", exporter.FileExtension(), tt.ext)
			}

			path := filepath.Join(dir, "out"+tt.ext)
			size, err := export.WriteSnapshot(snap, exporter, path)
			if err != nil {
				t.Fatalf("WriteSnapshot error: %v", err)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if len(content) != size {
				t.Errorf("reported size %d, file has %d bytes", size, len(content))
			}
			if !strings.Contains(string(content), tt.contains) {
				t.Errorf("%s output should contain %q", tt.format, tt.contains)
			}
		})
	}
}

// TestJSONSnapshotRoundTrip ensures an exported JSON snapshot decodes back
// to the identical token tree.
func TestJSONSnapshotRoundTrip(t *testing.T) {
	reg := device.NewRegistry()
	ref, _ := reg.Lookup("pixel-7")
	snap := export.NewSnapshot(ref)

	exporter, err := export.ForFormat("json", nil)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := exporter.Export(snap)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	var decoded export.Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded.SnapshotID != snap.SnapshotID {
		t.Errorf("snapshot id = %q, want %q", decoded.SnapshotID, snap.SnapshotID)
	}
	if decoded.Tokens != snap.Tokens {
		t.Error("decoded token tree should equal the original")
	}
}

// =============================================================================
// CONFIG TESTS
// =============================================================================

// TestConfigSaveLoadRoundTrip saves a config under a temp home and loads
// it back through the file path API.
func TestConfigSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := config.Default()
	cfg.DefaultDevice = "galaxy-a14"
	cfg.OutputFormat = "html"
	cfg.UI.ColorMode = "never"

	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	path, err := config.ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath error: %v", err)
	}
	if loaded.DefaultDevice != "galaxy-a14" {
		t.Errorf("DefaultDevice = %q, want galaxy-a14", loaded.DefaultDevice)
	}
	if loaded.OutputFormat != "html" {
		t.Errorf("OutputFormat = %q, want html", loaded.OutputFormat)
	}
	if loaded.UI.ColorMode != "never" {
		t.Errorf("ColorMode = %q, want never", loaded.UI.ColorMode)
	}
}

// TestConfiguredDeviceDrivesPipeline wires a config default device through
// the registry into token assembly.
func TestConfiguredDeviceDrivesPipeline(t *testing.T) {
	cfg := config.Default()
	reg := device.NewRegistry()

	ref, ok := reg.Lookup(cfg.DefaultDevice)
	if !ok {
		t.Fatalf("default device %q should be a builtin", cfg.DefaultDevice)
	}

	tree := tokens.Assemble(device.Detect(ref.Metrics))
	if tree.Spacing.Insets.Bottom != 34 {
		t.Errorf("default device bottom inset = %g, want 34", tree.Spacing.Insets.Bottom)
	}
}
