// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive token browser TUI.
//
// The browser is a two-pane Bubble Tea application: the left pane lists
// the known device profiles and the right pane shows the assembled
// navigation token tree for the selected device. Selection is live —
// moving the cursor reassembles the tree for the newly selected device.
//
// When a profiles file is being watched (the --profiles flag), edits to
// the file reload the device registry in place and the list refreshes
// without restarting the browser.
//
// # Usage
//
//	m := browser.New(browser.Options{Registry: reg})
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	if _, err := p.Run(); err != nil {
//		// handle error
//	}
//
// Key bindings follow the rest of the terminal UI: j/k or arrows move,
// tab switches panes, g/G jump, r reloads profiles, q quits.
package browser
