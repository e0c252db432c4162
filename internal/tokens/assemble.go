// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tokens assembles the navigation-chrome design token tree.
package tokens

import (
	"github.com/jeranaias/navtokens/internal/device"
	"github.com/jeranaias/navtokens/internal/visual"
)

// =============================================================================
// PER-OS CHROME CONSTANTS
// =============================================================================

// chromeConstants are the fixed per-OS values assembly selects from.
type chromeConstants struct {
	headerTitleSize      float64
	headerTitleWeight    string
	largeTitleSize       float64
	largeTitleWeight     string
	tabLabelSize         float64
	tabLabelWeight       string
	iconSize             float64
	labelGap             float64
	headerPadding        float64
	screenPadding        float64
	gutter               float64
	tintActive           string
	tintInactive         string
	surface              string
	screen               string
	border               string
	backdropOpacity      float64
	tabSwitchMS          int
	headerTransitionMS   int
	pressMS              int
	primaryEasing        string
	pressEasing          string
}

var iosChrome = chromeConstants{
	headerTitleSize:    17,
	headerTitleWeight:  "semibold",
	largeTitleSize:     34,
	largeTitleWeight:   "bold",
	tabLabelSize:       10,
	tabLabelWeight:     "medium",
	iconSize:           28,
	labelGap:           2,
	headerPadding:      16,
	screenPadding:      16,
	gutter:             8,
	tintActive:         "#007AFF",
	tintInactive:       "#8E8E93",
	surface:            "#F9F9F9",
	screen:             "#FFFFFF",
	border:             "#C6C6C8",
	backdropOpacity:    0.75,
	tabSwitchMS:        250,
	headerTransitionMS: 350,
	pressMS:            150,
	primaryEasing:      "ease-out",
	pressEasing:        "ease-in-out",
}

var androidChrome = chromeConstants{
	headerTitleSize:    20,
	headerTitleWeight:  "medium",
	largeTitleSize:     28,
	largeTitleWeight:   "medium",
	tabLabelSize:       12,
	tabLabelWeight:     "medium",
	iconSize:           24,
	labelGap:           4,
	headerPadding:      16,
	screenPadding:      16,
	gutter:             8,
	tintActive:         "#1A73E8",
	tintInactive:       "#5F6368",
	surface:            "#FFFFFF",
	screen:             "#FAFAFA",
	border:             "#DADCE0",
	backdropOpacity:    1,
	tabSwitchMS:        300,
	headerTransitionMS: 300,
	pressMS:            100,
	primaryEasing:      "fast-out-slow-in",
	pressEasing:        "linear",
}

// chromeFor selects the constant set for a profile.
func chromeFor(p device.Profile) chromeConstants {
	if p.IsIOS {
		return iosChrome
	}
	return androidChrome
}

// =============================================================================
// ASSEMBLY
// =============================================================================

// Elevation levels per chrome layer.
const (
	headerElevation  = 4
	tabBarElevation  = 8
	cardElevation    = 2
	overlayElevation = 16
)

// Assemble composes the token tree for a capability profile. Pure and cheap;
// callers recompute per navigation render rather than caching globally, and
// two calls with equal profiles produce structurally equal trees.
func Assemble(p device.Profile) Tree {
	c := chromeFor(p)
	traits := traitsForProfile(p)

	backdropOpacity := c.backdropOpacity
	if !p.SupportsBlur {
		// No blur to shine through; the backdrop must go fully opaque.
		backdropOpacity = 1
	}

	return Tree{
		Spacing: SpacingTokens{
			Header: HeaderSpacing{
				Height:            traits.HeaderHeight,
				TotalHeight:       traits.HeaderHeight + p.StatusBarHeight,
				PaddingHorizontal: c.headerPadding,
			},
			TabBar: TabBarSpacing{
				Height:      traits.TabBarHeight,
				TotalHeight: traits.TabBarHeight + p.BottomInset,
				IconSize:    c.iconSize,
				LabelGap:    c.labelGap,
			},
			Insets: InsetTokens{
				StatusBar: p.StatusBarHeight,
				Bottom:    p.BottomInset,
			},
			Screen: ScreenSpacing{
				PaddingHorizontal: c.screenPadding,
				Gutter:            c.gutter,
			},
		},
		Typography: TypographyTokens{
			Header: HeaderTypography{
				Title:      visual.Typography(c.headerTitleSize, c.headerTitleWeight, p),
				LargeTitle: visual.Typography(c.largeTitleSize, c.largeTitleWeight, p),
			},
			TabBar: TabBarTypography{
				Label: visual.Typography(c.tabLabelSize, c.tabLabelWeight, p),
			},
		},
		Colors: ColorTokens{
			Tint: TintColors{
				TabBarActive:   c.tintActive,
				TabBarInactive: c.tintInactive,
				Header:         c.tintActive,
			},
			Background: BackgroundColors{
				Screen: c.screen,
				Header: c.surface,
				TabBar: c.surface,
			},
			Backdrop: BackdropColors{
				Header: visual.BackdropColor(c.surface, backdropOpacity),
				TabBar: visual.BackdropColor(c.surface, backdropOpacity),
			},
			Border: c.border,
		},
		Shape: ShapeTokens{
			Card:   visual.CornerRadius(visual.Size{Width: 343, Height: 120}, visual.RadiusStandard, p),
			Sheet:  visual.CornerRadius(visual.Size{Width: 375, Height: 560}, visual.RadiusLarge, p),
			Button: visual.CornerRadius(visual.Size{Width: 120, Height: 44}, visual.RadiusSmall, p),
			Pill:   visual.CornerRadius(visual.Size{Width: 120, Height: 32}, visual.RadiusPill, p),
		},
		Elevation: ElevationTokens{
			Header:  visual.Shadow(headerElevation, p),
			TabBar:  visual.Shadow(tabBarElevation, p),
			Card:    visual.Shadow(cardElevation, p),
			Overlay: visual.Shadow(overlayElevation, p),
		},
		Blur: BlurTokens{
			Enabled:         p.SupportsBlur,
			HeaderIntensity: visual.BlurIntensity(visual.BlurRegular, p),
			TabBarIntensity: visual.BlurIntensity(visual.BlurHeavy, p),
		},
		Animation: AnimationTokens{
			TabSwitch:        Motion{DurationMS: c.tabSwitchMS, Easing: c.primaryEasing},
			HeaderTransition: Motion{DurationMS: c.headerTransitionMS, Easing: c.primaryEasing},
			Press:            Motion{DurationMS: c.pressMS, Easing: c.pressEasing},
		},
	}
}

// traitsForProfile rebinds the profile to its family trait entry.
func traitsForProfile(p device.Profile) device.Traits {
	if p.IsIOS {
		return device.TraitsFor(device.FamilyIOS)
	}
	return device.TraitsFor(device.FamilyAndroid)
}
