// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive token browser TUI.
//
// This file contains all rendering logic for the browser, including:
//   - Main view layout (header, panes, status bar)
//   - Device list rendering with selection highlight
//   - Token tree rendering into the viewport
//   - Help overlay
package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/navtokens/internal/device"
	"github.com/jeranaias/navtokens/internal/tokens"
	"github.com/jeranaias/navtokens/internal/ui/styles"
	"github.com/jeranaias/navtokens/internal/util"
	"github.com/jeranaias/navtokens/internal/visual"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the complete browser.
// Layout: header (1 line) + panes + status bar (1 line).
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := m.renderHeader()
	status := m.renderStatusBar()

	var body string
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		// Narrow terminals show only the focused pane.
		if m.focus == paneTree {
			body = m.renderTreePane()
		} else {
			body = m.renderListPane()
		}
	} else {
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderListPane(),
			m.renderTreePane(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// =============================================================================
// HEADER
// =============================================================================

func (m Model) renderHeader() string {
	brand := m.theme.HeaderBrand.Render("navtokens")
	title := m.theme.HeaderSubtitle.Render("token browser")

	line := brand + " " + title
	if ref, ok := m.Selected(); ok {
		line += "  " + m.theme.HeaderTitle.Render(ref.Name) +
			" " + m.theme.HeaderSubtitle.Render(ref.Metrics.String())
	}
	return m.theme.Header.Width(m.width).Render(line)
}

// =============================================================================
// DEVICE LIST PANE
// =============================================================================

func (m Model) renderListPane() string {
	width := m.listPaneWidth()
	height := m.paneHeight()

	var b strings.Builder
	b.WriteString(m.theme.ListTitle.Render(fmt.Sprintf("Devices (%d)", len(m.refs))))
	b.WriteString("\n")

	if len(m.refs) == 0 {
		b.WriteString(m.theme.ListItemMetrics.Render("no device profiles"))
	}

	// Keep the cursor in view when the list outgrows the pane.
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.refs) {
		end = len(m.refs)
	}

	// Room for padding, metrics suffix, and the tablet badge.
	nameWidth := width - 16
	if nameWidth < 8 {
		nameWidth = 8
	}

	for i := start; i < end; i++ {
		ref := m.refs[i]
		label := util.TruncateWidth(ref.Name, nameWidth)
		if device.Detect(ref.Metrics).IsTablet {
			label += " " + m.theme.TabletBadgeStyle.Render("[tablet]")
		}
		metrics := m.theme.ListItemMetrics.Render(
			fmt.Sprintf(" %gx%g@%gx", ref.Metrics.Width, ref.Metrics.Height, ref.Metrics.PixelRatio))

		if i == m.cursor {
			b.WriteString(m.theme.ListItemSelected.Render(label + metrics))
		} else {
			b.WriteString(m.theme.ListItem.Render(label + metrics))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	pane := m.theme.ListPane
	if m.focus == paneList {
		pane = m.theme.ListPaneFocused
	}
	return pane.Width(width).Height(height).Render(b.String())
}

// =============================================================================
// TOKEN TREE PANE
// =============================================================================

func (m Model) renderTreePane() string {
	pane := m.theme.TreePane
	if m.focus == paneTree {
		pane = m.theme.TreePaneFocused
	}
	return pane.Width(m.treePaneWidth()).Height(m.paneHeight()).Render(m.viewport.View())
}

// refreshViewport reassembles the token tree for the current selection
// and pushes it into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	ref, ok := m.Selected()
	if !ok {
		m.viewport.SetContent(m.theme.TokenName.Render("select a device"))
		return
	}
	profile := device.Detect(ref.Metrics)
	tree := tokens.Assemble(profile)
	m.viewport.SetContent(m.renderTree(profile, tree))
	m.viewport.GotoTop()
}

// tokenRow is one leaf in the rendered tree.
type tokenRow struct {
	name  string
	value string
}

// tokenGroup is one top-level branch in the rendered tree.
type tokenGroup struct {
	name string
	rows []tokenRow
}

// renderTree renders the capability summary followed by every token group.
func (m Model) renderTree(profile device.Profile, tree tokens.Tree) string {
	var b strings.Builder

	b.WriteString(m.theme.GroupHeading.Render("profile"))
	b.WriteString("\n")
	b.WriteString("  " + m.renderCapability("tablet", profile.IsTablet) + "\n")
	b.WriteString("  " + m.renderCapability("notch or island", profile.HasNotchOrIsland) + "\n")
	b.WriteString("  " + m.renderCapability("dynamic island", profile.HasDynamicIsland) + "\n")
	b.WriteString("  " + m.renderCapability("home indicator", profile.HasHomeIndicator) + "\n")
	b.WriteString("  " + m.renderCapability("blur", profile.SupportsBlur) + "\n\n")

	for _, g := range flattenTree(tree) {
		b.WriteString(m.theme.GroupHeading.Render(g.name))
		b.WriteString("\n")
		for i, row := range g.rows {
			prefix := m.theme.TreeConnector.Render(styles.RenderTreeLine(i == len(g.rows)-1))
			b.WriteString("  " + prefix +
				m.theme.TokenName.Render(row.name) + " " +
				m.theme.TokenValue.Render(row.value) + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderCapability(name string, on bool) string {
	if on {
		return m.theme.CapabilityOn.Render("+ " + name)
	}
	return m.theme.CapabilityOff.Render("- " + name)
}

// flattenTree converts the token tree into named groups of display rows.
func flattenTree(tree tokens.Tree) []tokenGroup {
	return []tokenGroup{
		{name: "spacing", rows: []tokenRow{
			{"header.height", pt(tree.Spacing.Header.Height)},
			{"header.total_height", pt(tree.Spacing.Header.TotalHeight)},
			{"header.padding_horizontal", pt(tree.Spacing.Header.PaddingHorizontal)},
			{"tab_bar.height", pt(tree.Spacing.TabBar.Height)},
			{"tab_bar.total_height", pt(tree.Spacing.TabBar.TotalHeight)},
			{"tab_bar.icon_size", pt(tree.Spacing.TabBar.IconSize)},
			{"tab_bar.label_gap", pt(tree.Spacing.TabBar.LabelGap)},
			{"insets.status_bar", pt(tree.Spacing.Insets.StatusBar)},
			{"insets.bottom", pt(tree.Spacing.Insets.Bottom)},
			{"screen.padding_horizontal", pt(tree.Spacing.Screen.PaddingHorizontal)},
			{"screen.gutter", pt(tree.Spacing.Screen.Gutter)},
		}},
		{name: "typography", rows: []tokenRow{
			{"header.title", typeStyle(tree.Typography.Header.Title)},
			{"header.large_title", typeStyle(tree.Typography.Header.LargeTitle)},
			{"tab_bar.label", typeStyle(tree.Typography.TabBar.Label)},
		}},
		{name: "colors", rows: []tokenRow{
			{"tint.tab_bar_active", tree.Colors.Tint.TabBarActive},
			{"tint.tab_bar_inactive", tree.Colors.Tint.TabBarInactive},
			{"tint.header", tree.Colors.Tint.Header},
			{"background.screen", tree.Colors.Background.Screen},
			{"background.header", tree.Colors.Background.Header},
			{"background.tab_bar", tree.Colors.Background.TabBar},
			{"backdrop.header", tree.Colors.Backdrop.Header},
			{"backdrop.tab_bar", tree.Colors.Backdrop.TabBar},
			{"border", tree.Colors.Border},
		}},
		{name: "shape", rows: []tokenRow{
			{"card", pt2(tree.Shape.Card)},
			{"sheet", pt2(tree.Shape.Sheet)},
			{"button", pt2(tree.Shape.Button)},
			{"pill", pt2(tree.Shape.Pill)},
		}},
		{name: "elevation", rows: []tokenRow{
			{"header", shadow(tree.Elevation.Header)},
			{"tab_bar", shadow(tree.Elevation.TabBar)},
			{"card", shadow(tree.Elevation.Card)},
			{"overlay", shadow(tree.Elevation.Overlay)},
		}},
		{name: "blur", rows: []tokenRow{
			{"enabled", fmt.Sprintf("%v", tree.Blur.Enabled)},
			{"header_intensity", fmt.Sprintf("%d", tree.Blur.HeaderIntensity)},
			{"tab_bar_intensity", fmt.Sprintf("%d", tree.Blur.TabBarIntensity)},
		}},
		{name: "animation", rows: []tokenRow{
			{"tab_switch", motion(tree.Animation.TabSwitch)},
			{"header_transition", motion(tree.Animation.HeaderTransition)},
			{"press", motion(tree.Animation.Press)},
		}},
	}
}

func pt(v float64) string  { return fmt.Sprintf("%gpt", v) }
func pt2(v float64) string { return fmt.Sprintf("%.2fpt", v) }

func typeStyle(ts visual.OpticalTypography) string {
	v := fmt.Sprintf("%gpt w%s tracking %+.1f line %g", ts.FontSize, ts.Weight, ts.LetterSpacing, ts.LineHeight)
	if ts.FontFamily != "" {
		v += " " + ts.FontFamily
	}
	return v
}

func shadow(s visual.ShadowParams) string {
	if s.UsesNativeElevation {
		return fmt.Sprintf("native elevation %d", s.AndroidElevation)
	}
	return fmt.Sprintf("blur %.2f offsetY %.2f opacity %.2f", s.BlurRadius, s.OffsetY, s.Opacity)
}

func motion(mo tokens.Motion) string {
	return fmt.Sprintf("%dms %s", mo.DurationMS, mo.Easing)
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	if m.notice != "" {
		return m.theme.StatusBar.Width(m.width).Render(m.notice)
	}

	var parts []string
	for _, b := range m.keyMap.ShortHelp() {
		parts = append(parts,
			m.theme.ShortcutKey.Render(b.Help().Key)+" "+
				m.theme.ShortcutDesc.Render(b.Help().Desc))
	}
	if m.profilesPath != "" {
		parts = append(parts, m.theme.ShortcutDesc.Render("watching "+m.profilesPath))
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}

// =============================================================================
// HELP OVERLAY
// =============================================================================

func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, group := range m.keyMap.FullHelp() {
		for _, binding := range group {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.theme.ShortcutKey.Render(fmt.Sprintf("%-10s", binding.Help().Key)),
				m.theme.ShortcutDesc.Render(binding.Help().Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.ShortcutDesc.Render("press any key to close"))
	return m.theme.Container.Render(b.String())
}
