// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for navtokens.
//
// This package contains common helper functions used throughout the
// application for display-width string handling and crash-safe file
// writing.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: Display-width truncation for terminal columns
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long device names safely for display
//	display := util.TruncateWidth(name, 30)
//
//	// Write snapshots atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
