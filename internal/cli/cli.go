// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for navtokens.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdBrowse Command = iota
	CmdDevices
	CmdInspect
	CmdTokens
	CmdExport
	CmdReference
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet    bool
	JSON     bool   // Output in JSON format
	Profiles string // Path to a custom device profiles TOML file

	// Command-specific
	Device     string // Device name from the registry
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `navtokens - adaptive navigation-chrome token engine

Navtokens computes the platform-adaptive visual parameters that drive a
mobile app's navigation chrome: capability detection, visual property
calculation (corner radii, shadows, optical typography, blur, backdrops)
and assembly of a stable, named design token tree.

Usage:
  navtokens                       Interactive token browser (default)
  navtokens browse [device]       Interactive token browser
  navtokens devices               List known device profiles
  navtokens inspect <device>      Show the derived capability profile
  navtokens tokens <device>       Show the assembled token tree
  navtokens export <device>       Export a token snapshot to a file
  navtokens reference             Token-name reference guide
  navtokens config [show|set]     Tool configuration
  navtokens version               Show version information

Inspect Commands:
  navtokens inspect iphone-14-pro     Capability profile for a registry device
  navtokens inspect --width 393 --height 852 --ratio 3 --os ios
                                      Profile for ad-hoc metrics

Tokens Commands:
  navtokens tokens pixel-7            Styled token tree summary
    --json                            Full tree as JSON

Export Commands:
  navtokens export ipad --out FILE    Write a snapshot file
    --format json|md|html             Snapshot format (default: json)

Browse Commands:
  navtokens browse iphone-15-pro-max  Start on a specific device
    --profiles FILE                   Watch FILE and live-reload profiles

Config Commands:
  navtokens config show               Show current configuration
  navtokens config set KEY VALUE      Set a configuration value
  navtokens config path               Show config file location

  Keys: default_device, output_format, profiles_path, color_mode

Global Flags:
  --profiles FILE Load additional device profiles from a TOML file
  --json          Output in JSON format
  -q, --quiet     Minimal output

Examples:
  navtokens devices                         List the registry
  navtokens inspect iphone-14-pro           Island, insets, blur ceiling
  navtokens tokens galaxy-a14 --json        Machine-readable token tree
  navtokens export ipad-pro-11 --out ipad.json
  navtokens browse --profiles ./devices.toml

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("navtokens version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	args := os.Args[1:]

	remaining, parsedArgs := parseGlobalFlags(args)

	// If no remaining args, default to the interactive browser
	if len(remaining) == 0 {
		return CmdBrowse, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "browse", "tui":
		if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
			parsedArgs.Device = remaining[0]
		}
		return CmdBrowse, parsedArgs

	case "devices", "list", "ls":
		return CmdDevices, parsedArgs

	case "inspect", "profile":
		// Detailed argument parsing is done in inspect_cmd.go
		if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
			parsedArgs.Device = remaining[0]
		}
		return CmdInspect, parsedArgs

	case "tokens", "tree":
		if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
			parsedArgs.Device = remaining[0]
		}
		return CmdTokens, parsedArgs

	case "export":
		// Detailed argument parsing is done in export_cmd.go
		if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
			parsedArgs.Device = remaining[0]
		}
		return CmdExport, parsedArgs

	case "reference", "ref":
		return CmdReference, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command: treat it as a device name for the browser,
		// matching how the registry commands address devices.
		parsedArgs.Device = cmd
		return CmdBrowse, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--json":
			parsedArgs.JSON = true
		case "--profiles":
			if i+1 < len(args) {
				i++
				parsedArgs.Profiles = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--profiles=") {
				parsedArgs.Profiles = strings.TrimPrefix(arg, "--profiles=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) > 0 {
		args.Subcommand = remaining[0]
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			args.ConfigVal = remaining[2]
		}
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleVersion handles the "version" command.
func HandleVersion(args Args) {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		resp := NewJSONResponse("version", data)
		resp.Print()
		return
	}
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
