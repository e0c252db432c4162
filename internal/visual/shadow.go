// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts.
package visual

import (
	"math"

	"github.com/jeranaias/navtokens/internal/device"
)

// =============================================================================
// ELEVATION SHADOWS
// =============================================================================

const (
	// MinElevation and MaxElevation bound the abstract z-depth scale.
	MinElevation = 0
	MaxElevation = 24
)

// ShadowParams drives shadow rendering. iOS consumers read the color,
// offset, opacity and blur radius; Android consumers read only the native
// elevation and ignore the rest.
type ShadowParams struct {
	Color      string  `json:"color"`
	OffsetX    float64 `json:"offset_x"`
	OffsetY    float64 `json:"offset_y"`
	Opacity    float64 `json:"opacity"`
	BlurRadius float64 `json:"blur_radius"`
	// AndroidElevation is the clamped elevation passed to the Android
	// compositor. Meaningful only when UsesNativeElevation is set.
	AndroidElevation int `json:"android_elevation"`
	// UsesNativeElevation reports whether the platform shadows via native
	// elevation instead of the explicit parameters above.
	UsesNativeElevation bool `json:"uses_native_elevation"`
}

// Shadow computes shadow parameters for an elevation level.
//
// Elevation is clamped to [0,24]. Elevation 0 yields an all-zero shadow on
// every platform. On iOS the blur radius grows sublinearly (e^0.7 * 0.8),
// the vertical offset ramps up over the first 8 levels, and opacity fades
// from 0.18 down, floored at 0. Android delegates to native elevation and
// computes none of the explicit parameters.
func Shadow(elevation int, p device.Profile) ShadowParams {
	e := clampElevation(elevation)

	params := ShadowParams{
		Color:               "#000000",
		UsesNativeElevation: p.IsAndroid,
	}
	if p.IsAndroid {
		params.AndroidElevation = e
		return params
	}

	if e == 0 {
		return params
	}

	fe := float64(e)
	params.BlurRadius = math.Pow(fe, 0.7) * 0.8
	params.OffsetY = fe * math.Min(fe/8, 1)
	params.Opacity = math.Max(0, 0.18-fe/100)
	return params
}

// clampElevation clamps an elevation level into the valid scale.
func clampElevation(e int) int {
	if e < MinElevation {
		return MinElevation
	}
	if e > MaxElevation {
		return MaxElevation
	}
	return e
}
