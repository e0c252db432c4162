// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// reference_cmd.go - Token-name reference guide command.
package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// referenceText is the token-name reference rendered by the reference
// command. Token paths match the JSON output of the tokens command.
const referenceText = `# Token Reference

Every assembled tree carries the same fixed set of named tokens. Consumers
address tokens by path; the shape never changes for a given device.

## spacing

| Token | Meaning |
|-------|---------|
| ` + "`spacing.header.height`" + ` | Header content height, excluding the status bar |
| ` + "`spacing.header.total_height`" + ` | Header plus the status bar region above it |
| ` + "`spacing.header.padding_horizontal`" + ` | Horizontal header content padding |
| ` + "`spacing.tab_bar.height`" + ` | Tab bar content height, excluding the bottom inset |
| ` + "`spacing.tab_bar.total_height`" + ` | Tab bar plus the home-indicator inset |
| ` + "`spacing.tab_bar.icon_size`" + ` | Tab icon bounding size |
| ` + "`spacing.tab_bar.label_gap`" + ` | Gap between icon and label |
| ` + "`spacing.insets.status_bar`" + ` | Top safe-area inset |
| ` + "`spacing.insets.bottom`" + ` | Bottom safe-area inset (34pt with a home indicator) |
| ` + "`spacing.screen.padding_horizontal`" + ` | Screen-level content margin |
| ` + "`spacing.screen.gutter`" + ` | Gap between adjacent content blocks |

## typography

| Token | Meaning |
|-------|---------|
| ` + "`typography.header.title`" + ` | Stack header title style |
| ` + "`typography.header.large_title`" + ` | Collapsing large title style |
| ` + "`typography.tab_bar.label`" + ` | Tab label style |

Each style resolves font size, numeric weight, letter spacing (tighter as
size grows, +0.1 for weights of 600 and up), integer line height and the
platform font family (system font on iOS, Roboto on Android).

## colors

| Token | Meaning |
|-------|---------|
| ` + "`colors.tint.tab_bar_active`" + ` | Selected tab tint |
| ` + "`colors.tint.tab_bar_inactive`" + ` | Unselected tab tint |
| ` + "`colors.tint.header`" + ` | Header interactive tint |
| ` + "`colors.background.*`" + ` | Opaque surface colors (screen, header, tab_bar) |
| ` + "`colors.backdrop.*`" + ` | Translucent rgba() surfaces layered over blur; fully opaque on devices without blur |
| ` + "`colors.border`" + ` | Hairline separator color |

## shape

Corner radii in points for ` + "`card`" + `, ` + "`sheet`" + `, ` + "`button`" + ` and ` + "`pill`" + `.
Radii grow with surface size, scaled up 1.2x on notched iPhones and down
0.75x on Android; pill always returns half the shorter side.

## elevation

Shadow parameters for ` + "`header`" + `, ` + "`tab_bar`" + `, ` + "`card`" + ` and ` + "`overlay`" + ` layers.
iOS carries explicit color/offset/opacity/blur values; Android delegates to
native elevation and carries only the clamped level.

## blur

| Token | Meaning |
|-------|---------|
| ` + "`blur.enabled`" + ` | Whether backdrop blur is available |
| ` + "`blur.header_intensity`" + ` | Header material intensity (0-100) |
| ` + "`blur.tab_bar_intensity`" + ` | Tab bar material intensity (0-100) |

## animation

Motion timings for ` + "`tab_switch`" + `, ` + "`header_transition`" + ` and ` + "`press`" + `; each a
duration in milliseconds plus a named easing curve.
`

// HandleReference handles the "reference" command: render the token-name
// reference guide, with glamour styling on a TTY and plain markdown
// otherwise.
func HandleReference(args Args) error {
	if !IsStdoutTTY() || args.Quiet {
		fmt.Print(referenceText)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		fmt.Print(referenceText)
		return nil
	}

	rendered, err := renderer.Render(referenceText)
	if err != nil {
		fmt.Print(referenceText)
		return nil
	}

	fmt.Print(rendered)
	return nil
}
