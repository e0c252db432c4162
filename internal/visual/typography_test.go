// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts.
package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// LETTER SPACING TESTS
// =============================================================================

func TestTypography_LetterSpacingBands(t *testing.T) {
	tests := []struct {
		name     string
		fontSize float64
		weight   string
		want     float64
	}{
		{"caption regular", 12, "400", 0.5},
		{"caption bold gets weight bonus", 12, "bold", 0.6},
		{"body regular", 16, "regular", 0.2},
		{"body semibold", 16, "semibold", 0.3},
		{"title", 24, "400", 0},
		{"title heavy", 24, "700", 0.1},
		{"display", 40, "normal", -0.5},
		{"display bold", 40, "700", -0.4},
		{"band edge at 14", 14, "400", 0.2},
		{"band edge at 20", 20, "400", 0},
		{"band edge at 34", 34, "400", -0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Typography(tc.fontSize, tc.weight, modernIOS)
			assert.InDelta(t, tc.want, got.LetterSpacing, 1e-9)
		})
	}
}

// =============================================================================
// WEIGHT RESOLUTION TESTS
// =============================================================================

func TestTypography_ResolvesSymbolicWeights(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"normal", "400"},
		{"regular", "400"},
		{"medium", "500"},
		{"semibold", "600"},
		{"bold", "700"},
		{"600", "600"},
		{"heavy", "heavy"}, // unknown names pass through
	}

	for _, tc := range tests {
		got := Typography(16, tc.in, modernIOS)
		assert.Equal(t, tc.want, got.Weight, "weight %q", tc.in)
	}
}

// =============================================================================
// LINE HEIGHT TESTS
// =============================================================================

func TestTypography_LineHeightRoundsToInteger(t *testing.T) {
	tests := []struct {
		fontSize float64
		want     float64
	}{
		{12, 16}, // 12 * 1.3 = 15.6
		{16, 20}, // 16 * 1.25
		{17, 21}, // 17 * 1.25 = 21.25
		{24, 29}, // 24 * 1.2 = 28.8
		{40, 44}, // 40 * 1.1
	}

	for _, tc := range tests {
		got := Typography(tc.fontSize, "400", modernIOS)
		assert.Equal(t, tc.want, got.LineHeight, "line height at %v", tc.fontSize)
	}
}

// =============================================================================
// FONT FAMILY TESTS
// =============================================================================

func TestTypography_FontFamilyFollowsPlatform(t *testing.T) {
	assert.Empty(t, Typography(16, "400", modernIOS).FontFamily,
		"iOS uses the system font")
	assert.Equal(t, "Roboto", Typography(16, "400", android2x).FontFamily)
}
