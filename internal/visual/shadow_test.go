// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts.
package visual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/navtokens/internal/device"
)

// =============================================================================
// ELEVATION CLAMPING TESTS
// =============================================================================

func TestShadow_ClampsElevation(t *testing.T) {
	for _, p := range []device.Profile{modernIOS, android2x} {
		assert.Equal(t, Shadow(0, p), Shadow(-5, p), "negative elevation clamps to 0")
		assert.Equal(t, Shadow(24, p), Shadow(30, p), "oversized elevation clamps to 24")
	}
}

func TestShadow_ZeroElevationIsZeroShadow(t *testing.T) {
	for _, p := range []device.Profile{classicIOS, modernIOS, android2x} {
		s := Shadow(0, p)
		assert.Zero(t, s.Opacity, "opacity at elevation 0")
		assert.Zero(t, s.BlurRadius, "blur radius at elevation 0")
		assert.Zero(t, s.OffsetX)
		assert.Zero(t, s.OffsetY)
		assert.Zero(t, s.AndroidElevation)
	}
}

// =============================================================================
// IOS SHADOW CURVE TESTS
// =============================================================================

func TestShadow_IOSCurve(t *testing.T) {
	tests := []struct {
		elevation   int
		wantBlur    float64
		wantOffsetY float64
		wantOpacity float64
	}{
		{1, 0.8, 0.125, 0.17},
		{4, math.Pow(4, 0.7) * 0.8, 2, 0.14},
		{8, math.Pow(8, 0.7) * 0.8, 8, 0.10},
		{16, math.Pow(16, 0.7) * 0.8, 16, 0.02},
		// Beyond 18 the linear fade would go negative; it floors at 0.
		{24, math.Pow(24, 0.7) * 0.8, 24, 0},
	}

	for _, tc := range tests {
		s := Shadow(tc.elevation, modernIOS)
		assert.InDelta(t, tc.wantBlur, s.BlurRadius, 1e-9, "blur at %d", tc.elevation)
		assert.InDelta(t, tc.wantOffsetY, s.OffsetY, 1e-9, "offsetY at %d", tc.elevation)
		assert.InDelta(t, tc.wantOpacity, s.Opacity, 1e-9, "opacity at %d", tc.elevation)
		assert.Zero(t, s.OffsetX, "offsetX is always 0")
		assert.Equal(t, "#000000", s.Color)
		assert.False(t, s.UsesNativeElevation)
	}
}

// =============================================================================
// ANDROID NATIVE ELEVATION TESTS
// =============================================================================

func TestShadow_AndroidDelegatesToNativeElevation(t *testing.T) {
	tests := []struct {
		elevation int
		want      int
	}{
		{-5, 0},
		{0, 0},
		{8, 8},
		{30, 24},
	}

	for _, tc := range tests {
		s := Shadow(tc.elevation, android2x)
		assert.True(t, s.UsesNativeElevation)
		assert.Equal(t, tc.want, s.AndroidElevation)
		// None of the explicit shadow parameters are computed on Android.
		assert.Zero(t, s.BlurRadius)
		assert.Zero(t, s.OffsetY)
		assert.Zero(t, s.Opacity)
	}
}
