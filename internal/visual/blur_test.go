// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts.
package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// BLUR INTENSITY TESTS
// =============================================================================

func TestBlurIntensity_IOSUsesFullCeiling(t *testing.T) {
	tests := []struct {
		level BlurLevel
		want  int
	}{
		{BlurSubtle, 10},
		{BlurLight, 25},
		{BlurRegular, 50},
		{BlurHeavy, 80},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, BlurIntensity(tc.level, modernIOS),
			"level %s", tc.level)
	}
}

func TestBlurIntensity_AndroidScalesByCeiling(t *testing.T) {
	// android2x carries a 40/100 ceiling.
	tests := []struct {
		level BlurLevel
		want  int
	}{
		{BlurSubtle, 4},
		{BlurLight, 10},
		{BlurRegular, 20},
		{BlurHeavy, 32},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, BlurIntensity(tc.level, android2x),
			"level %s", tc.level)
	}
}

func TestBlurIntensity_UnknownLevelFallsBackToRegular(t *testing.T) {
	assert.Equal(t, BlurIntensity(BlurRegular, modernIOS),
		BlurIntensity(BlurLevel("frosted"), modernIOS))
	assert.Equal(t, BlurIntensity(BlurRegular, android2x),
		BlurIntensity(BlurLevel(""), android2x))
}
