// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts.
package visual

import (
	"math"

	"github.com/jeranaias/navtokens/internal/device"
)

// =============================================================================
// CORNER RADIUS
// =============================================================================

// Size is the rendered dimensions of the element being rounded. A zero
// smaller side means the size is unknown and triggers the fallback table.
type Size struct {
	Width  float64
	Height float64
}

// Smaller returns the smaller of the two dimensions.
func (s Size) Smaller() float64 {
	if s.Width < s.Height {
		return s.Width
	}
	return s.Height
}

// RadiusVariant selects a corner rounding treatment.
type RadiusVariant string

const (
	RadiusSmall    RadiusVariant = "small"
	RadiusStandard RadiusVariant = "standard"
	RadiusLarge    RadiusVariant = "large"
	RadiusPill     RadiusVariant = "pill"
)

// radiusFallbacks are the fixed radii used when the element size is unknown.
var radiusFallbacks = map[RadiusVariant]float64{
	RadiusSmall:    4,
	RadiusStandard: 8,
	RadiusLarge:    12,
	RadiusPill:     20,
}

// radiusParams pairs the base radius with the growth factor per variant.
type radiusParams struct {
	base  float64
	scale float64
}

var radiusVariants = map[RadiusVariant]radiusParams{
	RadiusSmall:    {base: 4, scale: 0.08},
	RadiusStandard: {base: 10, scale: 0.1},
	RadiusLarge:    {base: 16, scale: 0.12},
}

// CornerRadius computes the corner radius for an element of the given size.
//
// Unknown sizes (smaller side 0) return a fixed per-variant fallback. The
// pill variant short-circuits to half the smaller dimension. Otherwise the
// radius grows logarithmically with element size from a per-variant base,
// scaled up on modern-form-factor iOS devices and down on Android, and is
// clamped to [base/2, smaller*0.25].
func CornerRadius(size Size, variant RadiusVariant, p device.Profile) float64 {
	baseSize := size.Smaller()
	if baseSize == 0 {
		if fb, ok := radiusFallbacks[variant]; ok {
			return fb
		}
		return radiusFallbacks[RadiusStandard]
	}

	if variant == RadiusPill {
		return baseSize / 2
	}

	params, ok := radiusVariants[variant]
	if !ok {
		params = radiusVariants[RadiusStandard]
	}

	scale := params.scale
	switch {
	case p.IsIOS && p.HasNotchOrIsland:
		// Modern form factors carry visibly rounder hardware corners.
		scale *= 1.2
	case p.IsAndroid:
		scale *= 0.75
	}

	radius := params.base + math.Log10(math.Max(100, baseSize))*baseSize*scale*0.05

	if min := params.base / 2; radius < min {
		radius = min
	}
	if max := baseSize * 0.25; radius > max {
		radius = max
	}
	return radius
}
