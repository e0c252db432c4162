// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// browse_cmd.go - Interactive token browser command.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/navtokens/internal/device"
	"github.com/jeranaias/navtokens/internal/ui/browser"
)

// HandleBrowse handles the "browse" command: launch the interactive
// token browser. A device argument preselects that device; --profiles
// enables live reload of the profiles file while the browser runs.
func HandleBrowse(args Args) error {
	if err := RequiresTTY("browse"); err != nil {
		return err
	}

	reg, err := buildRegistry(args)
	if err != nil {
		return err
	}

	initial := ""
	if args.Device != "" {
		ref, ok := reg.Lookup(args.Device)
		if !ok {
			return ErrDeviceNotFound(args.Device)
		}
		initial = ref.Name
	}

	m := browser.New(browser.Options{
		Registry:      reg,
		InitialDevice: initial,
		ProfilesPath:  args.Profiles,
		Reload: func() (*device.Registry, error) {
			return buildRegistry(args)
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
