// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package device derives capability facts for mobile devices.
//
// This package captures raw device metrics (logical screen dimensions, pixel
// density, OS family) once at startup and derives the boolean/numeric
// capability facts the visual token engine runs on: notch and Dynamic Island
// presence, home indicator, safe-area insets, blur support.
//
// Supported OS families:
//   - iOS (phones, tablets)
//   - Android
package device

// =============================================================================
// OS FAMILY DEFINITIONS
// =============================================================================

// Family represents the operating system family a device runs.
type Family int

const (
	// FamilyIOS indicates an iOS device (iPhone, iPad).
	FamilyIOS Family = iota
	// FamilyAndroid indicates an Android device.
	FamilyAndroid
)

// String returns the string representation of the OS family.
func (f Family) String() string {
	switch f {
	case FamilyIOS:
		return "iOS"
	case FamilyAndroid:
		return "Android"
	default:
		return "Unknown"
	}
}

// ParseFamily parses an OS family name. Unrecognized names map to Android,
// the conservative family (no blur, no notch rules).
func ParseFamily(name string) Family {
	switch name {
	case "ios", "iOS", "IOS":
		return FamilyIOS
	case "android", "Android":
		return FamilyAndroid
	default:
		return FamilyAndroid
	}
}

// =============================================================================
// FAMILY TRAIT TABLE
// =============================================================================

// Traits holds the fixed per-family constants the detector and token
// assembler select from. New OS families are added by extending this table,
// not by branching on the family elsewhere.
type Traits struct {
	// StatusBarHeight is the default status bar height in logical points,
	// before any notch or tablet override.
	StatusBarHeight float64
	// NotchStatusBarHeight replaces StatusBarHeight on notched devices.
	NotchStatusBarHeight float64
	// TabletStatusBarHeight replaces StatusBarHeight on tablets.
	TabletStatusBarHeight float64
	// SupportsBlur reports whether the family renders backdrop blur.
	// Android never does, regardless of hardware; the renderer falls back
	// to opaque surfaces there.
	SupportsBlur bool
	// FontFamily is the fixed UI font, empty for the platform system font.
	FontFamily string
	// HeaderHeight is the navigation header content height in points.
	HeaderHeight float64
	// TabBarHeight is the tab bar content height in points.
	TabBarHeight float64
}

// familyTraits is the per-family constant table.
var familyTraits = map[Family]Traits{
	FamilyIOS: {
		StatusBarHeight:       20,
		NotchStatusBarHeight:  47,
		TabletStatusBarHeight: 24,
		SupportsBlur:          true,
		FontFamily:            "",
		HeaderHeight:          44,
		TabBarHeight:          49,
	},
	FamilyAndroid: {
		StatusBarHeight:       24,
		NotchStatusBarHeight:  24,
		TabletStatusBarHeight: 24,
		SupportsBlur:          false,
		FontFamily:            "Roboto",
		HeaderHeight:          56,
		TabBarHeight:          56,
	},
}

// TraitsFor returns the trait table entry for a family.
// Unknown families fall back to Android traits.
func TraitsFor(f Family) Traits {
	if t, ok := familyTraits[f]; ok {
		return t
	}
	return familyTraits[FamilyAndroid]
}

// Families returns all families present in the trait table.
func Families() []Family {
	return []Family{FamilyIOS, FamilyAndroid}
}
