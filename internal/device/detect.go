// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package device derives capability facts for mobile devices.
package device

import (
	"fmt"
	"math"
)

// =============================================================================
// DETECTION THRESHOLDS
// =============================================================================

const (
	// tabletMinDevicePixelsLowDensity is the device-pixel dimension at or
	// above which a sub-2x device counts as a tablet.
	tabletMinDevicePixelsLowDensity = 1000

	// tabletMinDevicePixelsStandard is the device-pixel dimension at or
	// above which a 2x device counts as a tablet. High-density (3x) phones
	// never classify as tablets by geometry.
	tabletMinDevicePixelsStandard = 1920

	// notchMinLongerDim is the minimum longer dimension of notched iPhones
	// (iPhone X class and later).
	notchMinLongerDim = 812

	// largeFaceIDMinLongerDim is the minimum longer dimension of tablets
	// with Face ID and a home indicator.
	largeFaceIDMinLongerDim = 1024

	// homeIndicatorInset is the bottom safe-area inset reserved for the
	// home indicator.
	homeIndicatorInset = 34

	// iosMaxBlurIntensity is the blur intensity ceiling on iOS.
	iosMaxBlurIntensity = 100
)

// dynamicIslandWidths is the exact set of shorter-side widths shipped with a
// Dynamic Island. This is a whitelist, not a continuous rule: any notched
// device outside it is treated as notch-without-island.
var dynamicIslandWidths = map[float64]bool{
	393: true,
	430: true,
}

// =============================================================================
// CAPABILITY PROFILE
// =============================================================================

// Profile is the derived capability fact set. Every field is a pure function
// of Metrics; no field is ever mutated independently. Thread a Profile value
// through consumers instead of reaching for shared state.
type Profile struct {
	IsIOS            bool    `json:"is_ios"`
	IsAndroid        bool    `json:"is_android"`
	IsTablet         bool    `json:"is_tablet"`
	HasNotchOrIsland bool    `json:"has_notch_or_island"`
	HasDynamicIsland bool    `json:"has_dynamic_island"`
	HasHomeIndicator bool    `json:"has_home_indicator"`
	StatusBarHeight  float64 `json:"status_bar_height"`
	BottomInset      float64 `json:"bottom_inset"`
	SupportsBlur     bool    `json:"supports_blur"`
	MaxBlurIntensity int     `json:"max_blur_intensity"`
}

// String returns a short summary of the profile.
func (p Profile) String() string {
	os := "Android"
	if p.IsIOS {
		os = "iOS"
	}
	form := "phone"
	if p.IsTablet {
		form = "tablet"
	}
	return fmt.Sprintf("%s %s (notch=%v island=%v blur=%d)",
		os, form, p.HasNotchOrIsland, p.HasDynamicIsland, p.MaxBlurIntensity)
}

// =============================================================================
// DETECTION
// =============================================================================

// Detect derives the capability profile from raw metrics. Pure function;
// inputs are assumed to be valid numbers >= 0 and no error conditions exist.
func Detect(m Metrics) Profile {
	traits := TraitsFor(m.OS)

	p := Profile{
		IsIOS:     m.OS == FamilyIOS,
		IsAndroid: m.OS == FamilyAndroid,
	}

	// Tablet: large screen in device pixels at a tablet-class density, or
	// the host runtime says so directly.
	p.IsTablet = isTabletGeometry(m) || m.TabletHint

	// Notch / Dynamic Island exist only on iOS phones.
	if p.IsIOS && !p.IsTablet {
		p.HasNotchOrIsland = m.Longer() >= notchMinLongerDim
		p.HasDynamicIsland = p.HasNotchOrIsland && dynamicIslandWidths[m.Shorter()]
	}

	// Home indicator follows the notch on phones; large Face ID tablets
	// carry one as well.
	p.HasHomeIndicator = p.HasNotchOrIsland
	if p.IsIOS && p.IsTablet && m.Longer() >= largeFaceIDMinLongerDim {
		p.HasHomeIndicator = true
	}

	p.StatusBarHeight = traits.StatusBarHeight
	switch {
	case p.HasNotchOrIsland:
		p.StatusBarHeight = traits.NotchStatusBarHeight
	case p.IsTablet:
		p.StatusBarHeight = traits.TabletStatusBarHeight
	}

	if p.HasHomeIndicator {
		p.BottomInset = homeIndicatorInset
	}

	p.SupportsBlur = traits.SupportsBlur
	p.MaxBlurIntensity = maxBlurIntensity(m)

	return p
}

// isTabletGeometry classifies tablets from screen geometry alone. Density
// bands matter: low-density devices hit tablet pixel counts at much smaller
// physical sizes than 3x phones, so the pixel threshold rises with density
// and 3x-class devices never qualify by geometry.
func isTabletGeometry(m Metrics) bool {
	adjusted := math.Max(m.Width, m.Height) * m.PixelRatio
	switch {
	case m.PixelRatio < 2:
		return adjusted >= tabletMinDevicePixelsLowDensity
	case m.PixelRatio < 2.5:
		return adjusted >= tabletMinDevicePixelsStandard
	default:
		return false
	}
}

// maxBlurIntensity returns the blur intensity ceiling for a device. iOS is
// fixed; Android is banded by pixel density since blur-capable compositing
// scales with it.
func maxBlurIntensity(m Metrics) int {
	if m.OS == FamilyIOS {
		return iosMaxBlurIntensity
	}
	switch {
	case m.PixelRatio >= 3:
		return 80
	case m.PixelRatio >= 2.5:
		return 60
	case m.PixelRatio >= 2:
		return 40
	default:
		return 20
	}
}
