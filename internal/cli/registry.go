// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// registry.go - Shared device registry construction for CLI commands.
package cli

import (
	"github.com/jeranaias/navtokens/internal/config"
	"github.com/jeranaias/navtokens/internal/device"
)

// buildRegistry assembles the device registry for a command invocation:
// built-in references, then the configured profiles file, then the
// --profiles flag. Later sources override earlier entries by name.
func buildRegistry(args Args) (*device.Registry, error) {
	reg := device.NewRegistry()

	if path := config.Global().ProfilesPath; path != "" {
		if err := reg.LoadProfiles(path); err != nil {
			return nil, WrapError(err, "configured profiles file")
		}
	}

	if args.Profiles != "" {
		if err := reg.LoadProfiles(args.Profiles); err != nil {
			return nil, WrapError(err, "--profiles file")
		}
	}

	return reg, nil
}

// resolveDevice looks up the device named by args, falling back to the
// configured default device when the command names none.
func resolveDevice(reg *device.Registry, args Args) (device.Reference, error) {
	name := args.Device
	if name == "" {
		name = config.Global().DefaultDevice
	}

	ref, ok := reg.Lookup(name)
	if !ok {
		return device.Reference{}, ErrDeviceNotFound(name)
	}
	return ref, nil
}
