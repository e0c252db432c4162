// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command implementation for navtokens.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display current configuration
//   set <key> <value>   Set a configuration value
//   reset               Reset to default configuration
//   path                Show configuration file path
//
// Examples:
//   navtokens config                          Show current config (default)
//   navtokens config set default_device pixel-7
//   navtokens config set output_format md
//   navtokens config set profiles_path ~/devices.toml
//   navtokens config set color_mode never
//   navtokens config reset                    Reset to defaults
//   navtokens config path                     Show config file location
//
// Configuration Keys:
//   default_device      Device used when a command names none
//   output_format       Export format (json/md/html)
//   profiles_path       Custom device profiles TOML file
//   color_mode          Terminal colors (auto/always/never)
//
// Flags:
//   --json              Output in JSON format
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/navtokens/internal/config"
)

// =============================================================================
// HANDLE CONFIG
// =============================================================================

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)

	case "set":
		return handleConfigSet(args)

	case "reset":
		return handleConfigReset(args)

	case "path":
		return handleConfigPath(args)

	default:
		return NewCommandError("config", "parse subcommand",
			fmt.Sprintf("unknown subcommand %q", args.Subcommand), nil)
	}
}

// handleConfigShow displays the current configuration.
func handleConfigShow(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s (using defaults)\n", err)
		cfg = config.Default()
	}

	if args.JSON {
		path, _ := config.ConfigPath()
		data := map[string]interface{}{
			"path": path,
		}
		for _, key := range config.GetAllKeys() {
			value, getErr := cfg.Get(key)
			if getErr != nil {
				continue
			}
			data[key] = value
		}
		return NewJSONResponse("config show", data).Print()
	}

	fmt.Println(TitleStyle.Render("navtokens Configuration"))
	fmt.Println(RenderSeparator(41))
	for _, key := range config.GetAllKeys() {
		value, getErr := cfg.Get(key)
		if getErr != nil {
			continue
		}
		display := value
		if display == "" {
			display = DimStyle.Render("(unset)")
		} else {
			display = ValueStyle.Render(display)
		}
		fmt.Printf("%s %s\n", RenderLabel(key), display)
	}

	if path, pathErr := config.ConfigPath(); pathErr == nil {
		fmt.Println()
		fmt.Println(DimStyle.Render("config file: " + path))
	}
	return nil
}

// handleConfigSet sets one configuration key and persists the file.
func handleConfigSet(args Args) error {
	if args.ConfigKey == "" {
		return ErrMissingArgument("key", "navtokens config set <key> <value>")
	}
	if args.ConfigVal == "" {
		return ErrMissingArgument("value", "navtokens config set <key> <value>")
	}

	cfg, err := config.Load()
	if err != nil {
		return WrapError(err, "load config")
	}

	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return WrapError(err, "save config")
	}
	config.SetGlobal(cfg)

	if args.JSON {
		data := map[string]string{"key": args.ConfigKey, "value": args.ConfigVal}
		return NewJSONResponse("config set", data).Print()
	}
	if !args.Quiet {
		fmt.Println(SuccessStyle.Render(fmt.Sprintf("Set %s = %s", args.ConfigKey, args.ConfigVal)))
	}
	return nil
}

// handleConfigReset restores the default configuration.
func handleConfigReset(args Args) error {
	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return WrapError(err, "save config")
	}
	config.SetGlobal(cfg)

	if args.JSON {
		return NewJSONResponse("config reset", map[string]bool{"reset": true}).Print()
	}
	if !args.Quiet {
		fmt.Println(SuccessStyle.Render("Configuration reset to defaults"))
	}
	return nil
}

// handleConfigPath prints the configuration file location.
func handleConfigPath(args Args) error {
	path, err := config.ConfigPath()
	if err != nil {
		return WrapError(err, "resolve config path")
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil

	if args.JSON {
		data := map[string]interface{}{"path": path, "exists": exists}
		return NewJSONResponse("config path", data).Print()
	}

	fmt.Println(path)
	if !exists && !args.Quiet {
		fmt.Println(DimStyle.Render("(not created yet; run 'navtokens config set' to create it)"))
	}
	return nil
}
