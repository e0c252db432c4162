// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports snapshots to a standalone HTML document with light
// and dark themes, for sharing token sets with designers.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// htmlStyles holds the per-theme CSS variables.
var htmlStyles = map[string]string{
	"dark": `--bg: #1c1c1e; --fg: #f2f2f7; --muted: #8e8e93;
--surface: #2c2c2e; --accent: #0a84ff; --border: #3a3a3c;`,
	"light": `--bg: #ffffff; --fg: #1c1c1e; --muted: #6e6e73;
--surface: #f2f2f7; --accent: #007aff; --border: #d1d1d6;`,
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Navigation Tokens: %s</title>
<style>
:root { %s }
body { background: var(--bg); color: var(--fg); font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; }
h1 { font-size: 1.5rem; }
h2 { font-size: 1.1rem; border-bottom: 1px solid var(--border); padding-bottom: 0.3rem; margin-top: 2rem; }
.meta { color: var(--muted); font-size: 0.85rem; }
table { border-collapse: collapse; width: 100%%; }
td { padding: 0.4rem 0.6rem; border-bottom: 1px solid var(--border); }
td.token { font-family: ui-monospace, monospace; color: var(--accent); width: 45%%; }
.swatch { display: inline-block; width: 0.9rem; height: 0.9rem; border: 1px solid var(--border); border-radius: 3px; vertical-align: -2px; margin-right: 0.4rem; }
</style>
</head>
<body>
%s
</body>
</html>
`

// Export converts a snapshot to HTML format.
func (e *HTMLExporter) Export(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}

	theme := e.options.Theme
	css, ok := htmlStyles[theme]
	if !ok {
		css = htmlStyles["dark"]
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>Navigation Tokens: %s</h1>\n", html.EscapeString(snap.Device)))

	if e.options.IncludeMetadata {
		m := snap.Metrics
		body.WriteString(fmt.Sprintf(
			`<p class="meta">%gx%g @%gx %s &middot; snapshot %s &middot; %s</p>`+"\n",
			m.Width, m.Height, m.PixelRatio, html.EscapeString(m.OS),
			html.EscapeString(snap.SnapshotID),
			snap.GeneratedAt.Format(time.RFC3339)))
	}

	t := snap.Tokens

	writeHTMLSection(&body, "Spacing", [][2]string{
		{"header.height", pt(t.Spacing.Header.Height)},
		{"header.total_height", pt(t.Spacing.Header.TotalHeight)},
		{"tab_bar.height", pt(t.Spacing.TabBar.Height)},
		{"tab_bar.total_height", pt(t.Spacing.TabBar.TotalHeight)},
		{"tab_bar.icon_size", pt(t.Spacing.TabBar.IconSize)},
		{"insets.status_bar", pt(t.Spacing.Insets.StatusBar)},
		{"insets.bottom", pt(t.Spacing.Insets.Bottom)},
	})

	writeHTMLSection(&body, "Typography", [][2]string{
		{"header.title", typeStyle(t.Typography.Header.Title)},
		{"header.large_title", typeStyle(t.Typography.Header.LargeTitle)},
		{"tab_bar.label", typeStyle(t.Typography.TabBar.Label)},
	})

	writeHTMLSection(&body, "Colors", [][2]string{
		{"tint.tab_bar_active", colorCell(t.Colors.Tint.TabBarActive)},
		{"tint.tab_bar_inactive", colorCell(t.Colors.Tint.TabBarInactive)},
		{"background.screen", colorCell(t.Colors.Background.Screen)},
		{"background.header", colorCell(t.Colors.Background.Header)},
		{"backdrop.header", colorCell(t.Colors.Backdrop.Header)},
		{"backdrop.tab_bar", colorCell(t.Colors.Backdrop.TabBar)},
		{"border", colorCell(t.Colors.Border)},
	})

	writeHTMLSection(&body, "Shape", [][2]string{
		{"card", fmt.Sprintf("%.2fpt", t.Shape.Card)},
		{"sheet", fmt.Sprintf("%.2fpt", t.Shape.Sheet)},
		{"button", fmt.Sprintf("%.2fpt", t.Shape.Button)},
		{"pill", fmt.Sprintf("%.2fpt", t.Shape.Pill)},
	})

	writeHTMLSection(&body, "Elevation", [][2]string{
		{"header", shadow(t.Elevation.Header)},
		{"tab_bar", shadow(t.Elevation.TabBar)},
		{"card", shadow(t.Elevation.Card)},
		{"overlay", shadow(t.Elevation.Overlay)},
	})

	writeHTMLSection(&body, "Blur", [][2]string{
		{"enabled", fmt.Sprintf("%v", t.Blur.Enabled)},
		{"header_intensity", fmt.Sprintf("%d", t.Blur.HeaderIntensity)},
		{"tab_bar_intensity", fmt.Sprintf("%d", t.Blur.TabBarIntensity)},
	})

	writeHTMLSection(&body, "Animation", [][2]string{
		{"tab_switch", fmt.Sprintf("%dms %s", t.Animation.TabSwitch.DurationMS, t.Animation.TabSwitch.Easing)},
		{"header_transition", fmt.Sprintf("%dms %s", t.Animation.HeaderTransition.DurationMS, t.Animation.HeaderTransition.Easing)},
		{"press", fmt.Sprintf("%dms %s", t.Animation.Press.DurationMS, t.Animation.Press.Easing)},
	})

	doc := fmt.Sprintf(htmlTemplate, html.EscapeString(snap.Device), css, body.String())
	return []byte(doc), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// writeHTMLSection writes one token group as an HTML table.
// Values in rows are trusted markup; token names are escaped.
func writeHTMLSection(sb *strings.Builder, title string, rows [][2]string) {
	sb.WriteString(fmt.Sprintf("<h2>%s</h2>\n<table>\n", html.EscapeString(title)))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(`<tr><td class="token">%s</td><td>%s</td></tr>`+"\n",
			html.EscapeString(row[0]), row[1]))
	}
	sb.WriteString("</table>\n")
}

// colorCell renders a color value with a preview swatch.
func colorCell(value string) string {
	return fmt.Sprintf(`<span class="swatch" style="background:%s"></span>%s`,
		value, html.EscapeString(value))
}
