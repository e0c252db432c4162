// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts.
package visual

import (
	"math"

	"github.com/jeranaias/navtokens/internal/device"
)

// =============================================================================
// BLUR INTENSITY
// =============================================================================

// BlurLevel is a semantic blur strength.
type BlurLevel string

const (
	BlurSubtle  BlurLevel = "subtle"
	BlurLight   BlurLevel = "light"
	BlurRegular BlurLevel = "regular"
	BlurHeavy   BlurLevel = "heavy"
)

// blurBases maps semantic levels to base intensities on a 0-100 scale.
var blurBases = map[BlurLevel]float64{
	BlurSubtle:  10,
	BlurLight:   25,
	BlurRegular: 50,
	BlurHeavy:   80,
}

// BlurIntensity resolves a semantic blur level against the device's blur
// ceiling. Unrecognized levels fall back to the regular base. The base is
// scaled by MaxBlurIntensity/100 and rounded to the nearest integer.
func BlurIntensity(level BlurLevel, p device.Profile) int {
	base, ok := blurBases[level]
	if !ok {
		base = blurBases[BlurRegular]
	}
	return int(math.Round(base * float64(p.MaxBlurIntensity) / 100))
}
