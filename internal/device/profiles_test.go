// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package device derives capability facts for mobile devices.
package device

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name   string
		wantOK bool
	}{
		{"iphone-14-pro", true},
		{"IPHONE-14-PRO", true}, // case-insensitive
		{"  ipad  ", true},      // whitespace-tolerant
		{"pixel-7", true},
		{"unknown-device", false},
		{"", false},
	}

	for _, tc := range tests {
		_, ok := r.Lookup(tc.name)
		if ok != tc.wantOK {
			t.Errorf("Lookup(%q) ok = %v, want %v", tc.name, ok, tc.wantOK)
		}
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	names := r.Names()

	if len(names) != len(builtinReferences) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(builtinReferences))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestRegistry_BuiltinsDetectSanely(t *testing.T) {
	// Every built-in phone named iphone-* with a modern size should come
	// out of detection as an iOS device; tablets as tablets.
	r := NewRegistry()

	for _, ref := range r.All() {
		p := Detect(ref.Metrics)
		if ref.Metrics.OS == FamilyIOS && !p.IsIOS {
			t.Errorf("%s: expected iOS profile", ref.Name)
		}
		if ref.Metrics.TabletHint && !p.IsTablet {
			t.Errorf("%s: tablet hint ignored", ref.Name)
		}
	}
}

// =============================================================================
// TOML PROFILE LOADING TESTS
// =============================================================================

func TestRegistry_LoadProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.toml")

	content := `
[devices.foldable-x]
width = 373
height = 841
pixel_ratio = 2.5
os = "android"

[devices.kiosk-tablet]
width = 800
height = 1280
os = "android"
tablet = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.LoadProfiles(path); err != nil {
		t.Fatalf("LoadProfiles failed: %v", err)
	}

	ref, ok := r.Lookup("foldable-x")
	if !ok {
		t.Fatal("foldable-x not registered")
	}
	if ref.Metrics.Width != 373 || ref.Metrics.PixelRatio != 2.5 {
		t.Errorf("foldable-x metrics = %+v", ref.Metrics)
	}
	if ref.Metrics.OS != FamilyAndroid {
		t.Errorf("foldable-x OS = %v, want Android", ref.Metrics.OS)
	}

	kiosk, ok := r.Lookup("kiosk-tablet")
	if !ok {
		t.Fatal("kiosk-tablet not registered")
	}
	if !kiosk.Metrics.TabletHint {
		t.Error("kiosk-tablet should carry the tablet hint")
	}
	if kiosk.Metrics.PixelRatio != 2 {
		t.Errorf("missing pixel_ratio should default to 2, got %v", kiosk.Metrics.PixelRatio)
	}
}

func TestRegistry_LoadProfiles_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"zero width", "[devices.bad]\nwidth = 0\nheight = 100\n"},
		{"malformed toml", "[devices.bad\nwidth = "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := NewRegistry().LoadProfiles(path); err == nil {
				t.Error("LoadProfiles should reject invalid input")
			}
		})
	}
}

func TestRegistry_LoadProfiles_MissingFile(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadProfiles("/nonexistent/profiles.toml"); err == nil {
		t.Error("LoadProfiles should fail for a missing file")
	}
}
