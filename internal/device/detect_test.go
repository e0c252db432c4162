// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package device derives capability facts for mobile devices.
package device

import "testing"

// =============================================================================
// OS FAMILY TESTS
// =============================================================================

func TestFamily_String(t *testing.T) {
	tests := []struct {
		family Family
		want   string
	}{
		{FamilyIOS, "iOS"},
		{FamilyAndroid, "Android"},
		{Family(99), "Unknown"},
	}

	for _, tc := range tests {
		got := tc.family.String()
		if got != tc.want {
			t.Errorf("Family(%d).String() = %q, want %q", tc.family, got, tc.want)
		}
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		name string
		want Family
	}{
		{"ios", FamilyIOS},
		{"iOS", FamilyIOS},
		{"android", FamilyAndroid},
		{"Android", FamilyAndroid},
		{"harmony", FamilyAndroid}, // unknown maps to the conservative family
		{"", FamilyAndroid},
	}

	for _, tc := range tests {
		if got := ParseFamily(tc.name); got != tc.want {
			t.Errorf("ParseFamily(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFamiliesCoverTraitTable(t *testing.T) {
	for _, f := range Families() {
		if _, ok := familyTraits[f]; !ok {
			t.Errorf("Families() lists %v but the trait table has no entry", f)
		}
	}
	if len(Families()) != len(familyTraits) {
		t.Errorf("Families() returns %d families, trait table has %d",
			len(Families()), len(familyTraits))
	}
}

// =============================================================================
// NOTCH AND DYNAMIC ISLAND TESTS
// =============================================================================

func TestDetect_NotchAndIsland(t *testing.T) {
	tests := []struct {
		name       string
		metrics    Metrics
		wantNotch  bool
		wantIsland bool
	}{
		{
			name:      "classic iPhone has no notch",
			metrics:   Metrics{Width: 375, Height: 667, PixelRatio: 2, OS: FamilyIOS},
			wantNotch: false,
		},
		{
			name:      "812-point iPhone is notched",
			metrics:   Metrics{Width: 375, Height: 812, PixelRatio: 3, OS: FamilyIOS},
			wantNotch: true,
		},
		{
			name:       "393-wide device has a Dynamic Island",
			metrics:    Metrics{Width: 393, Height: 852, PixelRatio: 3, OS: FamilyIOS},
			wantNotch:  true,
			wantIsland: true,
		},
		{
			name:       "430-wide device has a Dynamic Island",
			metrics:    Metrics{Width: 430, Height: 932, PixelRatio: 3, OS: FamilyIOS},
			wantNotch:  true,
			wantIsland: true,
		},
		{
			// The island list is an exact-match whitelist: a 400-wide
			// notched device is notch-without-island.
			name:       "400-wide device satisfies notch but not island",
			metrics:    Metrics{Width: 400, Height: 870, PixelRatio: 3, OS: FamilyIOS},
			wantNotch:  true,
			wantIsland: false,
		},
		{
			name:      "Android never reports a notch",
			metrics:   Metrics{Width: 393, Height: 852, PixelRatio: 3, OS: FamilyAndroid},
			wantNotch: false,
		},
		{
			name:      "iPad reports no notch",
			metrics:   Metrics{Width: 810, Height: 1080, PixelRatio: 2, OS: FamilyIOS, TabletHint: true},
			wantNotch: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Detect(tc.metrics)
			if p.HasNotchOrIsland != tc.wantNotch {
				t.Errorf("HasNotchOrIsland = %v, want %v", p.HasNotchOrIsland, tc.wantNotch)
			}
			if p.HasDynamicIsland != tc.wantIsland {
				t.Errorf("HasDynamicIsland = %v, want %v", p.HasDynamicIsland, tc.wantIsland)
			}
		})
	}
}

// =============================================================================
// TABLET CLASSIFICATION TESTS
// =============================================================================

func TestDetect_Tablet(t *testing.T) {
	tests := []struct {
		name    string
		metrics Metrics
		want    bool
	}{
		{
			name:    "iPad by geometry",
			metrics: Metrics{Width: 810, Height: 1080, PixelRatio: 2, OS: FamilyIOS},
			want:    true,
		},
		{
			name:    "iPad by runtime hint",
			metrics: Metrics{Width: 744, Height: 1133, PixelRatio: 2, OS: FamilyIOS, TabletHint: true},
			want:    true,
		},
		{
			name:    "3x phone never classifies by geometry",
			metrics: Metrics{Width: 430, Height: 932, PixelRatio: 3, OS: FamilyIOS},
			want:    false,
		},
		{
			name:    "2x phone stays below the pixel threshold",
			metrics: Metrics{Width: 414, Height: 896, PixelRatio: 2, OS: FamilyIOS},
			want:    false,
		},
		{
			name:    "low-density large screen classifies as tablet",
			metrics: Metrics{Width: 600, Height: 960, PixelRatio: 1.5, OS: FamilyAndroid},
			want:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.metrics).IsTablet; got != tc.want {
				t.Errorf("IsTablet = %v, want %v", got, tc.want)
			}
		})
	}
}

// =============================================================================
// INSET AND STATUS BAR TESTS
// =============================================================================

func TestDetect_StatusBarAndInsets(t *testing.T) {
	tests := []struct {
		name          string
		metrics       Metrics
		wantStatusBar float64
		wantBottom    float64
	}{
		{
			name:          "classic iPhone",
			metrics:       Metrics{Width: 375, Height: 667, PixelRatio: 2, OS: FamilyIOS},
			wantStatusBar: 20,
			wantBottom:    0,
		},
		{
			name:          "notched iPhone",
			metrics:       Metrics{Width: 393, Height: 852, PixelRatio: 3, OS: FamilyIOS},
			wantStatusBar: 47,
			wantBottom:    34,
		},
		{
			name:          "large Face ID iPad keeps the tablet status bar",
			metrics:       Metrics{Width: 834, Height: 1194, PixelRatio: 2, OS: FamilyIOS, TabletHint: true},
			wantStatusBar: 24,
			wantBottom:    34,
		},
		{
			name:          "small iPad has no home indicator",
			metrics:       Metrics{Width: 768, Height: 1023, PixelRatio: 2, OS: FamilyIOS, TabletHint: true},
			wantStatusBar: 24,
			wantBottom:    0,
		},
		{
			name:          "Android phone",
			metrics:       Metrics{Width: 412, Height: 915, PixelRatio: 2.625, OS: FamilyAndroid},
			wantStatusBar: 24,
			wantBottom:    0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Detect(tc.metrics)
			if p.StatusBarHeight != tc.wantStatusBar {
				t.Errorf("StatusBarHeight = %v, want %v", p.StatusBarHeight, tc.wantStatusBar)
			}
			if p.BottomInset != tc.wantBottom {
				t.Errorf("BottomInset = %v, want %v", p.BottomInset, tc.wantBottom)
			}
		})
	}
}

// =============================================================================
// BLUR CAPABILITY TESTS
// =============================================================================

func TestDetect_Blur(t *testing.T) {
	tests := []struct {
		name         string
		metrics      Metrics
		wantSupports bool
		wantMax      int
	}{
		{
			name:         "iOS always supports blur at full intensity",
			metrics:      Metrics{Width: 393, Height: 852, PixelRatio: 3, OS: FamilyIOS},
			wantSupports: true,
			wantMax:      100,
		},
		{
			name:    "Android 3x band",
			metrics: Metrics{Width: 412, Height: 915, PixelRatio: 3, OS: FamilyAndroid},
			wantMax: 80,
		},
		{
			name:    "Android 2.5x band",
			metrics: Metrics{Width: 412, Height: 915, PixelRatio: 2.625, OS: FamilyAndroid},
			wantMax: 60,
		},
		{
			name:    "Android 2x band",
			metrics: Metrics{Width: 384, Height: 854, PixelRatio: 2, OS: FamilyAndroid},
			wantMax: 40,
		},
		{
			name:    "Android low-density band",
			metrics: Metrics{Width: 360, Height: 640, PixelRatio: 1.5, OS: FamilyAndroid},
			wantMax: 20,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Detect(tc.metrics)
			if p.SupportsBlur != tc.wantSupports {
				t.Errorf("SupportsBlur = %v, want %v", p.SupportsBlur, tc.wantSupports)
			}
			if p.MaxBlurIntensity != tc.wantMax {
				t.Errorf("MaxBlurIntensity = %d, want %d", p.MaxBlurIntensity, tc.wantMax)
			}
		})
	}
}

// =============================================================================
// PURITY TESTS
// =============================================================================

func TestDetect_Deterministic(t *testing.T) {
	m := Metrics{Width: 393, Height: 852, PixelRatio: 3, OS: FamilyIOS}

	first := Detect(m)
	for i := 0; i < 10; i++ {
		if got := Detect(m); got != first {
			t.Fatalf("Detect is not deterministic: %+v != %+v", got, first)
		}
	}
}
