// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/navtokens/internal/visual"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports snapshots to Markdown format, one table per
// token group. Suitable for design documentation and diff review.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a snapshot to Markdown format.
func (e *MarkdownExporter) Export(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}
	if snap.Device == "" {
		return nil, fmt.Errorf("snapshot has no device name")
	}

	var sb strings.Builder

	// YAML frontmatter with metadata
	if e.options.IncludeMetadata {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("device: %s\n", snap.Device))
		sb.WriteString(fmt.Sprintf("snapshot_id: %s\n", snap.SnapshotID))
		sb.WriteString(fmt.Sprintf("generated: %s\n", snap.GeneratedAt.Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("os: %s\n", snap.Metrics.OS))
		sb.WriteString(fmt.Sprintf("generator: %s\n", snap.Generator))
		sb.WriteString("---\n\n")
	}

	sb.WriteString(fmt.Sprintf("# Navigation Tokens: %s\n\n", snap.Device))

	if e.options.IncludeMetadata {
		m := snap.Metrics
		sb.WriteString(fmt.Sprintf("%gx%g logical points @%gx, %s.\n\n",
			m.Width, m.Height, m.PixelRatio, m.OS))
	}

	t := snap.Tokens

	writeTable(&sb, "Spacing", [][2]string{
		{"header.height", pt(t.Spacing.Header.Height)},
		{"header.total_height", pt(t.Spacing.Header.TotalHeight)},
		{"header.padding_horizontal", pt(t.Spacing.Header.PaddingHorizontal)},
		{"tab_bar.height", pt(t.Spacing.TabBar.Height)},
		{"tab_bar.total_height", pt(t.Spacing.TabBar.TotalHeight)},
		{"tab_bar.icon_size", pt(t.Spacing.TabBar.IconSize)},
		{"tab_bar.label_gap", pt(t.Spacing.TabBar.LabelGap)},
		{"insets.status_bar", pt(t.Spacing.Insets.StatusBar)},
		{"insets.bottom", pt(t.Spacing.Insets.Bottom)},
		{"screen.padding_horizontal", pt(t.Spacing.Screen.PaddingHorizontal)},
		{"screen.gutter", pt(t.Spacing.Screen.Gutter)},
	})

	writeTable(&sb, "Typography", [][2]string{
		{"header.title", typeStyle(t.Typography.Header.Title)},
		{"header.large_title", typeStyle(t.Typography.Header.LargeTitle)},
		{"tab_bar.label", typeStyle(t.Typography.TabBar.Label)},
	})

	writeTable(&sb, "Colors", [][2]string{
		{"tint.tab_bar_active", t.Colors.Tint.TabBarActive},
		{"tint.tab_bar_inactive", t.Colors.Tint.TabBarInactive},
		{"tint.header", t.Colors.Tint.Header},
		{"background.screen", t.Colors.Background.Screen},
		{"background.header", t.Colors.Background.Header},
		{"background.tab_bar", t.Colors.Background.TabBar},
		{"backdrop.header", t.Colors.Backdrop.Header},
		{"backdrop.tab_bar", t.Colors.Backdrop.TabBar},
		{"border", t.Colors.Border},
	})

	writeTable(&sb, "Shape", [][2]string{
		{"card", fmt.Sprintf("%.2fpt", t.Shape.Card)},
		{"sheet", fmt.Sprintf("%.2fpt", t.Shape.Sheet)},
		{"button", fmt.Sprintf("%.2fpt", t.Shape.Button)},
		{"pill", fmt.Sprintf("%.2fpt", t.Shape.Pill)},
	})

	writeTable(&sb, "Elevation", [][2]string{
		{"header", shadow(t.Elevation.Header)},
		{"tab_bar", shadow(t.Elevation.TabBar)},
		{"card", shadow(t.Elevation.Card)},
		{"overlay", shadow(t.Elevation.Overlay)},
	})

	writeTable(&sb, "Blur", [][2]string{
		{"enabled", fmt.Sprintf("%v", t.Blur.Enabled)},
		{"header_intensity", fmt.Sprintf("%d", t.Blur.HeaderIntensity)},
		{"tab_bar_intensity", fmt.Sprintf("%d", t.Blur.TabBarIntensity)},
	})

	writeTable(&sb, "Animation", [][2]string{
		{"tab_switch", fmt.Sprintf("%dms %s", t.Animation.TabSwitch.DurationMS, t.Animation.TabSwitch.Easing)},
		{"header_transition", fmt.Sprintf("%dms %s", t.Animation.HeaderTransition.DurationMS, t.Animation.HeaderTransition.Easing)},
		{"press", fmt.Sprintf("%dms %s", t.Animation.Press.DurationMS, t.Animation.Press.Easing)},
	})

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// writeTable writes one token group as a two-column markdown table.
func writeTable(sb *strings.Builder, title string, rows [][2]string) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	sb.WriteString("| Token | Value |\n")
	sb.WriteString("|-------|-------|\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", row[0], row[1]))
	}
	sb.WriteString("\n")
}

func pt(v float64) string {
	return fmt.Sprintf("%gpt", v)
}

func typeStyle(ts visual.OpticalTypography) string {
	s := fmt.Sprintf("%gpt / w%s / tracking %+.1f / line %g", ts.FontSize, ts.Weight, ts.LetterSpacing, ts.LineHeight)
	if ts.FontFamily != "" {
		s += " / " + ts.FontFamily
	}
	return s
}

func shadow(s visual.ShadowParams) string {
	if s.UsesNativeElevation {
		return fmt.Sprintf("native elevation %d", s.AndroidElevation)
	}
	return fmt.Sprintf("blur %.2f, offsetY %.2f, opacity %.2f", s.BlurRadius, s.OffsetY, s.Opacity)
}
