// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts.
package visual

import (
	"math"

	"github.com/jeranaias/navtokens/internal/device"
)

// =============================================================================
// OPTICAL TYPOGRAPHY
// =============================================================================

// OpticalTypography is a resolved type style: the input size and weight plus
// the size-dependent optical adjustments a real type system would apply.
type OpticalTypography struct {
	FontSize      float64 `json:"font_size"`
	Weight        string  `json:"weight"`
	LetterSpacing float64 `json:"letter_spacing"`
	LineHeight    float64 `json:"line_height"`
	// FontFamily is empty for the platform system font.
	FontFamily string `json:"font_family,omitempty"`
}

// weightMap resolves symbolic weight names to numeric weight tokens.
// Unrecognized weights pass through unchanged.
var weightMap = map[string]string{
	"normal":   "400",
	"regular":  "400",
	"medium":   "500",
	"semibold": "600",
	"bold":     "700",
}

// Typography resolves the optical metrics for a font size and weight.
//
// Letter spacing tightens as size grows (small text tracks wide, display
// text tracks negative), with a +0.1 bonus for weights at or above 600.
// Line height uses the same size bands, multiplied out and rounded to the
// nearest integer. The font family comes from the OS trait table: system
// font on iOS, a fixed family on Android.
func Typography(fontSize float64, weight string, p device.Profile) OpticalTypography {
	resolved := weight
	if w, ok := weightMap[weight]; ok {
		resolved = w
	}

	tracking := baseTracking(fontSize)
	// Weight tokens are three-digit strings, so a string comparison orders
	// them the same way their numeric values do.
	if resolved >= "600" {
		tracking += 0.1
	}

	family := ""
	if p.IsAndroid {
		family = device.TraitsFor(device.FamilyAndroid).FontFamily
	}

	return OpticalTypography{
		FontSize:      fontSize,
		Weight:        resolved,
		LetterSpacing: tracking,
		LineHeight:    math.Round(fontSize * lineHeightFactor(fontSize)),
		FontFamily:    family,
	}
}

// baseTracking returns letter spacing by size band.
func baseTracking(fontSize float64) float64 {
	switch {
	case fontSize < 14:
		return 0.5
	case fontSize < 20:
		return 0.2
	case fontSize < 34:
		return 0
	default:
		return -0.5
	}
}

// lineHeightFactor returns the line height multiplier by size band.
func lineHeightFactor(fontSize float64) float64 {
	switch {
	case fontSize < 14:
		return 1.3
	case fontSize < 20:
		return 1.25
	case fontSize < 34:
		return 1.2
	default:
		return 1.1
	}
}
