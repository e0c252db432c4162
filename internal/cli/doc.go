// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for
// navtokens.
//
// This package implements all CLI commands for the navtokens tool:
// device inspection, token tree display, snapshot export, and the
// interactive token browser.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments with global and command-specific flags
//   - ArgParser: Per-command flag and positional argument parsing
//
// # Usage
//
// Parse and execute commands:
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdDevices:
//	    return cli.HandleDevices(args)
//	case cli.CmdTokens:
//	    return cli.HandleTokens(args)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - browse: Interactive token browser (default)
//   - devices: List known device profiles
//   - inspect: Show the capability profile for a device or custom metrics
//   - tokens: Display the assembled token tree
//   - export: Write a token snapshot to JSON, Markdown, or HTML
//   - reference: Show the token reference documentation
//   - config: Configuration management
//
// All data commands support the --json flag for machine-readable output.
package cli
