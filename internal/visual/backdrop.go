// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts.
package visual

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// BACKDROP COLOR
// =============================================================================

// BackdropColor blends a hex base color with an opacity into an rgba color
// string for translucent chrome surfaces.
//
// Opacity is clamped to [0,1]. Three-digit hex shorthand expands to six
// digits. Malformed hex input falls back to opaque white rather than
// signaling an error; a backdrop must always have a usable color.
func BackdropColor(baseHex string, opacity float64) string {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}

	r, g, b := parseHexColor(baseHex)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b,
		strconv.FormatFloat(opacity, 'g', -1, 64))
}

// parseHexColor parses #RGB or #RRGGBB, substituting white on any failure.
func parseHexColor(hex string) (r, g, b int) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 255, 255, 255
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
