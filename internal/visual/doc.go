// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual computes concrete visual parameters from capability facts
// and semantic inputs.
//
// Every function here is pure: identical inputs always yield identical
// outputs, nothing reaches for global state, and no function returns an
// error — missing or malformed inputs substitute documented fallback values
// instead of failing. Capability facts arrive as an explicit device.Profile
// argument so each calculation is testable in isolation.
//
// Calculations:
//   - CornerRadius: size- and platform-aware corner rounding
//   - Shadow: elevation-driven shadow parameters
//   - Typography: optical letter spacing and line height
//   - BlurIntensity: semantic blur levels scaled to device capability
//   - BackdropColor: translucent backdrop color strings
package visual
