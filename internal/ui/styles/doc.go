// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the navtokens
// terminal UI.
//
// It defines the adaptive color palette (light/dark terminal backgrounds),
// the Theme struct holding every lipgloss style used by the token browser,
// and small ASCII-safe helpers for tree connectors and status indicators.
//
// Colors are declared as lipgloss.AdaptiveColor so the same named color
// resolves sensibly on both light and dark terminals. The Theme detects
// terminal capability once at construction via termenv and the browser
// reuses it for every frame.
package styles
