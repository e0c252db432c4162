// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tokens assembles the navigation-chrome design token tree.
//
// The tree is a fixed, enumerated structure: consumers address tokens by
// name (spacing.header.height, typography.header.title, colors.tint.
// tab_bar_active) and rely on the shape never changing for a given
// capability profile. Assembly is pure composition — every leaf is a direct
// capability fact, a per-OS constant, or a call into the visual calculator;
// no computation logic beyond selection lives here.
package tokens

import "github.com/jeranaias/navtokens/internal/visual"

// =============================================================================
// TOKEN TREE STRUCTURE
// =============================================================================

// Tree is the full navigation-chrome token set for one capability profile.
// Assembled on demand and read-only thereafter.
type Tree struct {
	Spacing    SpacingTokens    `json:"spacing"`
	Typography TypographyTokens `json:"typography"`
	Colors     ColorTokens      `json:"colors"`
	Shape      ShapeTokens      `json:"shape"`
	Elevation  ElevationTokens  `json:"elevation"`
	Blur       BlurTokens       `json:"blur"`
	Animation  AnimationTokens  `json:"animation"`
}

// SpacingTokens groups dimensional tokens in logical points.
type SpacingTokens struct {
	Header HeaderSpacing `json:"header"`
	TabBar TabBarSpacing `json:"tab_bar"`
	Insets InsetTokens   `json:"insets"`
	Screen ScreenSpacing `json:"screen"`
}

// HeaderSpacing sizes the stack header.
type HeaderSpacing struct {
	// Height is the header content height, excluding the status bar.
	Height float64 `json:"height"`
	// TotalHeight includes the status bar region above the content.
	TotalHeight       float64 `json:"total_height"`
	PaddingHorizontal float64 `json:"padding_horizontal"`
}

// TabBarSpacing sizes the tab bar.
type TabBarSpacing struct {
	// Height is the tab bar content height, excluding the bottom inset.
	Height float64 `json:"height"`
	// TotalHeight includes the home-indicator inset below the content.
	TotalHeight float64 `json:"total_height"`
	IconSize    float64 `json:"icon_size"`
	LabelGap    float64 `json:"label_gap"`
}

// InsetTokens are the safe-area insets the chrome must respect.
type InsetTokens struct {
	StatusBar float64 `json:"status_bar"`
	Bottom    float64 `json:"bottom"`
}

// ScreenSpacing sizes screen-level content margins.
type ScreenSpacing struct {
	PaddingHorizontal float64 `json:"padding_horizontal"`
	Gutter            float64 `json:"gutter"`
}

// TypographyTokens groups resolved type styles.
type TypographyTokens struct {
	Header HeaderTypography `json:"header"`
	TabBar TabBarTypography `json:"tab_bar"`
}

// HeaderTypography holds the stack header type styles.
type HeaderTypography struct {
	Title      visual.OpticalTypography `json:"title"`
	LargeTitle visual.OpticalTypography `json:"large_title"`
}

// TabBarTypography holds the tab bar type styles.
type TabBarTypography struct {
	Label visual.OpticalTypography `json:"label"`
}

// ColorTokens groups color tokens as hex or rgba color strings.
type ColorTokens struct {
	Tint       TintColors       `json:"tint"`
	Background BackgroundColors `json:"background"`
	Backdrop   BackdropColors   `json:"backdrop"`
	Border     string           `json:"border"`
}

// TintColors are the interactive accent colors.
type TintColors struct {
	TabBarActive   string `json:"tab_bar_active"`
	TabBarInactive string `json:"tab_bar_inactive"`
	Header         string `json:"header"`
}

// BackgroundColors are the opaque surface colors.
type BackgroundColors struct {
	Screen string `json:"screen"`
	Header string `json:"header"`
	TabBar string `json:"tab_bar"`
}

// BackdropColors are the translucent surface colors layered over blur.
// On devices without blur support they are fully opaque equivalents.
type BackdropColors struct {
	Header string `json:"header"`
	TabBar string `json:"tab_bar"`
}

// ShapeTokens are corner radii for common chrome surfaces.
type ShapeTokens struct {
	Card   float64 `json:"card"`
	Sheet  float64 `json:"sheet"`
	Button float64 `json:"button"`
	Pill   float64 `json:"pill"`
}

// ElevationTokens are the shadow parameters per chrome layer.
type ElevationTokens struct {
	Header  visual.ShadowParams `json:"header"`
	TabBar  visual.ShadowParams `json:"tab_bar"`
	Card    visual.ShadowParams `json:"card"`
	Overlay visual.ShadowParams `json:"overlay"`
}

// BlurTokens resolve the backdrop material intensities.
type BlurTokens struct {
	Enabled         bool `json:"enabled"`
	HeaderIntensity int  `json:"header_intensity"`
	TabBarIntensity int  `json:"tab_bar_intensity"`
}

// AnimationTokens are the chrome motion timings.
type AnimationTokens struct {
	TabSwitch        Motion `json:"tab_switch"`
	HeaderTransition Motion `json:"header_transition"`
	Press            Motion `json:"press"`
}

// Motion is one timing curve: a duration in milliseconds plus a named
// easing the renderer maps to its own curve type.
type Motion struct {
	DurationMS int    `json:"duration_ms"`
	Easing     string `json:"easing"`
}
