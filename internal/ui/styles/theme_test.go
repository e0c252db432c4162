// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the navtokens TUI.
package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Verify styles are initialized by rendering a test string
	renderedApp := theme.App.Render("test")
	if renderedApp == "" {
		t.Error("NewTheme() should initialize App style")
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme()

	// We test by rendering and checking for non-empty output
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"ListPane", theme.ListPane},
		{"ListItemSelected", theme.ListItemSelected},
		{"TreePane", theme.TreePane},
		{"GroupHeading", theme.GroupHeading},
		{"TokenValue", theme.TokenValue},
		{"StatusBar", theme.StatusBar},
		{"ErrorBox", theme.ErrorBox},
	}

	for _, s := range styles {
		// An uninitialized style would just return the input unchanged
		rendered := s.style.Render("test")
		if rendered == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

// =============================================================================
// THEME SIZE TESTS
// =============================================================================

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		width  int
		height int
	}{
		{80, 24},
		{120, 40},
		{200, 60},
		{40, 10},
	}

	for _, tc := range tests {
		theme.SetSize(tc.width, tc.height)
		if theme.Width != tc.width {
			t.Errorf("SetSize(%d, %d) Width = %d, want %d", tc.width, tc.height, theme.Width, tc.width)
		}
		if theme.Height != tc.height {
			t.Errorf("SetSize(%d, %d) Height = %d, want %d", tc.width, tc.height, theme.Height, tc.height)
		}
	}
}

func TestThemeGetLayoutMode(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	for _, tc := range tests {
		theme.SetSize(tc.width, 24)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tc.width, got, tc.want)
		}
	}
}

// =============================================================================
// TREE CONNECTOR TESTS
// =============================================================================

func TestRenderTreeLine(t *testing.T) {
	mid := RenderTreeLine(false)
	if mid != TreeChars.Tee+TreeChars.Dash+" " {
		t.Errorf("RenderTreeLine(false) = %q", mid)
	}

	last := RenderTreeLine(true)
	if last != TreeChars.Corner+TreeChars.Dash+" " {
		t.Errorf("RenderTreeLine(true) = %q", last)
	}

	if mid == last {
		t.Error("mid and last tree prefixes should differ")
	}
}

func TestTreeCharsASCII(t *testing.T) {
	chars := []string{
		TreeChars.Pipe, TreeChars.Tee, TreeChars.Corner, TreeChars.Dash,
		BoxChars.TopLeft, BoxChars.TopRight, BoxChars.BottomLeft,
		BoxChars.BottomRight, BoxChars.Horizontal, BoxChars.Vertical,
	}
	for _, c := range chars {
		if c == "" {
			t.Error("box/tree character should not be empty")
			continue
		}
		for _, r := range c {
			if r > 127 {
				t.Errorf("box/tree character %q is not ASCII", c)
			}
		}
	}
}
