// navtokens - platform-adaptive navigation design tokens.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"github.com/jeranaias/navtokens/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// Parse CLI arguments
	cmd, args := cli.Parse()

	// Route to appropriate handler
	switch cmd {
	case cli.CmdBrowse:
		cli.HandleErrorAndExit(cli.HandleBrowse(args), args.JSON)
	case cli.CmdDevices:
		cli.HandleErrorAndExit(cli.HandleDevices(args), args.JSON)
	case cli.CmdInspect:
		cli.HandleErrorAndExit(cli.HandleInspect(args), args.JSON)
	case cli.CmdTokens:
		cli.HandleErrorAndExit(cli.HandleTokens(args), args.JSON)
	case cli.CmdExport:
		cli.HandleErrorAndExit(cli.HandleExport(args), args.JSON)
	case cli.CmdReference:
		cli.HandleErrorAndExit(cli.HandleReference(args), args.JSON)
	case cli.CmdConfig:
		cli.HandleErrorAndExit(cli.HandleConfig(args), args.JSON)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		cli.HandleHelp()
	}
}
