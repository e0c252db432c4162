// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/navtokens/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for snapshot exporters.
type Exporter interface {
	// Export converts a snapshot to the target format and returns the content.
	Export(snap *Snapshot) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md", ".html").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// ForFormat returns the exporter for a format name.
func ForFormat(format string, opts *Options) (Exporter, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONExporter(opts), nil
	case "markdown", "md":
		return NewMarkdownExporter(opts), nil
	case "html", "htm":
		return NewHTMLExporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where generated files are saved.
	// Default: current working directory
	OutputDir string

	// IncludeMetadata includes the snapshot envelope (id, timestamp,
	// metrics) in markdown and HTML output.
	IncludeMetadata bool

	// Theme for HTML export ("light" or "dark").
	// Default: "dark"
	Theme string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		IncludeMetadata: true,
		Theme:           "dark",
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// WriteSnapshot exports a snapshot to an explicit file path.
// Returns the number of bytes written.
func WriteSnapshot(snap *Snapshot, exporter Exporter, path string) (int, error) {
	content, err := exporter.Export(snap)
	if err != nil {
		return 0, fmt.Errorf("export failed: %w", err)
	}

	// Atomic write: a crash mid-export never leaves a half-written snapshot.
	if err := util.AtomicWriteFile(path, content, 0644); err != nil {
		return 0, fmt.Errorf("write file: %w", err)
	}
	return len(content), nil
}

// ExportToFile exports a snapshot to a generated filename in the output
// directory. Returns the output file path.
func ExportToFile(snap *Snapshot, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("tokens_%s_%s%s",
		sanitizeFilename(snap.Device),
		timestamp,
		exporter.FileExtension(),
	)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, filename)
	if _, err := WriteSnapshot(snap, exporter, outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

// sanitizeFilename strips characters that are unsafe in filenames.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ', r == '.':
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "device"
	}
	return sb.String()
}
