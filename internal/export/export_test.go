// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/navtokens/internal/device"
)

func testReference() device.Reference {
	return device.Reference{
		Name:    "iphone-14-pro",
		Metrics: device.Metrics{Width: 393, Height: 852, PixelRatio: 3, OS: device.FamilyIOS},
	}
}

func TestNewSnapshot(t *testing.T) {
	snap := NewSnapshot(testReference())

	if snap.SnapshotID == "" {
		t.Error("snapshot id should be set")
	}
	if snap.Device != "iphone-14-pro" {
		t.Errorf("device = %q, want iphone-14-pro", snap.Device)
	}
	if snap.GeneratedAt.IsZero() {
		t.Error("generated timestamp should be set")
	}
	if !snap.Profile.HasDynamicIsland {
		t.Error("iphone-14-pro should carry a dynamic island")
	}
	if snap.Tokens.Spacing.Header.Height != 44 {
		t.Errorf("header height = %v, want 44", snap.Tokens.Spacing.Header.Height)
	}

	// Two snapshots of the same device differ only in envelope identity.
	other := NewSnapshot(testReference())
	if other.SnapshotID == snap.SnapshotID {
		t.Error("snapshot ids should be unique")
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"json", ".json", false},
		{"md", ".md", false},
		{"markdown", ".md", false},
		{"html", ".html", false},
		{"HTML", ".html", false},
		{"yaml", "", true},
	}

	for _, tc := range tests {
		exp, err := ForFormat(tc.format, nil)
		if (err != nil) != tc.wantErr {
			t.Errorf("ForFormat(%q) error = %v, wantErr %v", tc.format, err, tc.wantErr)
			continue
		}
		if err == nil && exp.FileExtension() != tc.wantExt {
			t.Errorf("ForFormat(%q) extension = %q, want %q", tc.format, exp.FileExtension(), tc.wantExt)
		}
	}
}

func TestJSONExporter_RoundTrips(t *testing.T) {
	snap := NewSnapshot(testReference())
	content, err := NewJSONExporter(nil).Export(snap)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var back Snapshot
	if err := json.Unmarshal(content, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.SnapshotID != snap.SnapshotID {
		t.Errorf("snapshot id = %q, want %q", back.SnapshotID, snap.SnapshotID)
	}
	if back.Tokens != snap.Tokens {
		t.Error("token tree does not survive a JSON round trip")
	}
}

func TestMarkdownExporter(t *testing.T) {
	snap := NewSnapshot(testReference())
	content, err := NewMarkdownExporter(nil).Export(snap)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	text := string(content)
	for _, want := range []string{
		"# Navigation Tokens: iphone-14-pro",
		"snapshot_id: " + snap.SnapshotID,
		"## Spacing",
		"`header.total_height` | 91pt",
		"`insets.bottom` | 34pt",
		"## Colors",
		"#007AFF",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestMarkdownExporter_NoMetadata(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeMetadata = false

	snap := NewSnapshot(testReference())
	content, err := NewMarkdownExporter(opts).Export(snap)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Contains(string(content), "snapshot_id") {
		t.Error("metadata should be omitted")
	}
}

func TestHTMLExporter(t *testing.T) {
	snap := NewSnapshot(testReference())
	content, err := NewHTMLExporter(nil).Export(snap)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	text := string(content)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Navigation Tokens: iphone-14-pro",
		snap.SnapshotID,
		`class="swatch"`,
		"--bg: #1c1c1e", // dark theme default
	} {
		if !strings.Contains(text, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestWriteSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "tokens.json")

	snap := NewSnapshot(testReference())
	n, err := WriteSnapshot(snap, NewJSONExporter(nil), path)
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) != n {
		t.Errorf("wrote %d bytes, file has %d", n, len(data))
	}
}

func TestExportToFile_GeneratesName(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.OutputDir = dir

	snap := NewSnapshot(testReference())
	path, err := ExportToFile(snap, NewMarkdownExporter(opts), opts)
	if err != nil {
		t.Fatalf("ExportToFile: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "tokens_iphone-14-pro_") || !strings.HasSuffix(base, ".md") {
		t.Errorf("unexpected generated filename: %s", base)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"iphone-14-pro", "iphone-14-pro"},
		{"My Device 2.0", "my_device_2_0"},
		{"///", "device"},
	}

	for _, tc := range tests {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
