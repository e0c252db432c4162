// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive token browser TUI.
package browser

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/navtokens/internal/device"
	"github.com/jeranaias/navtokens/internal/ui/styles"
)

// =============================================================================
// PANE FOCUS
// =============================================================================

// pane identifies which half of the browser has keyboard focus.
type pane int

const (
	paneList pane = iota // device list
	paneTree             // token tree viewport
)

// =============================================================================
// MESSAGES
// =============================================================================

// ProfilesReloadedMsg is emitted after the watched profiles file changed
// and the registry was rebuilt.
type ProfilesReloadedMsg struct {
	Registry *device.Registry
}

// WatchErrorMsg is emitted when the profiles watcher fails.
type WatchErrorMsg struct {
	Err error

	// watcher lets Update re-arm the watch loop even when this message
	// arrives before watcherReadyMsg. Nil when no watcher is running.
	watcher *profileWatcher
}

// profilesChangedMsg is the internal signal that the watched file was
// written. It triggers a reload command. The watcher rides along so the
// loop re-arms even if this beats watcherReadyMsg to the model.
type profilesChangedMsg struct {
	watcher *profileWatcher
}

// =============================================================================
// BROWSER MODEL
// =============================================================================

// Options configures a new browser model.
type Options struct {
	// Registry supplies the device profiles to browse. Required.
	Registry *device.Registry

	// InitialDevice preselects a device by name. Empty selects the first.
	InitialDevice string

	// ProfilesPath, when non-empty, is watched for changes and the
	// registry reloaded on edit.
	ProfilesPath string

	// Reload rebuilds the registry after the profiles file changed.
	// Defaults to builtins plus ProfilesPath when nil.
	Reload func() (*device.Registry, error)
}

// Model is the Bubble Tea model for the token browser.
type Model struct {
	// Styling
	theme *styles.Theme

	// Device registry
	registry *device.Registry
	refs     []device.Reference
	cursor   int

	// Pane focus
	focus pane

	// Token tree viewport
	viewport viewport.Model
	ready    bool

	// Dimensions
	width  int
	height int

	// Key bindings
	keyMap KeyMap

	// Live profile reload
	profilesPath string
	reload       func() (*device.Registry, error)
	watcher      *profileWatcher

	// Transient state
	notice   string
	showHelp bool
}

// New creates a browser model over the given registry.
func New(opts Options) Model {
	reg := opts.Registry
	if reg == nil {
		reg = device.NewRegistry()
	}

	m := Model{
		theme:        styles.NewTheme(),
		registry:     reg,
		refs:         reg.All(),
		keyMap:       DefaultKeyMap(),
		profilesPath: opts.ProfilesPath,
		reload:       opts.Reload,
	}

	if m.reload == nil && opts.ProfilesPath != "" {
		path := opts.ProfilesPath
		m.reload = func() (*device.Registry, error) {
			r := device.NewRegistry()
			if err := r.LoadProfiles(path); err != nil {
				return nil, err
			}
			return r, nil
		}
	}

	if opts.InitialDevice != "" {
		for i, ref := range m.refs {
			if ref.Name == opts.InitialDevice {
				m.cursor = i
				break
			}
		}
	}

	return m
}

// Init starts the profiles watcher when a profiles path is set.
func (m Model) Init() tea.Cmd {
	if m.profilesPath == "" {
		return nil
	}
	w, err := watchProfiles(m.profilesPath)
	if err != nil {
		return func() tea.Msg { return WatchErrorMsg{Err: err} }
	}
	// The watcher outlives this value copy of the model; Update carries
	// it forward through the returned model.
	return tea.Batch(
		func() tea.Msg { return watcherReadyMsg{watcher: w} },
		w.wait(),
	)
}

// watcherReadyMsg hands the running watcher to the model.
type watcherReadyMsg struct {
	watcher *profileWatcher
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles incoming messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case watcherReadyMsg:
		m.watcher = msg.watcher
		return m, nil

	case profilesChangedMsg:
		m.adoptWatcher(msg.watcher)
		return m, tea.Batch(m.reloadCmd(), m.waitCmd())

	case ProfilesReloadedMsg:
		m.applyRegistry(msg.Registry)
		m.notice = styles.RenderSuccess("profiles reloaded")
		return m, nil

	case WatchErrorMsg:
		m.adoptWatcher(msg.watcher)
		m.notice = styles.RenderError(msg.Err.Error())
		return m, m.waitCmd()
	}

	return m, nil
}

// handleKey processes a key press according to the current focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows everything except its own toggle and quit.
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, m.quit()
		default:
			m.showHelp = false
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.NextPane):
		if m.focus == paneList {
			m.focus = paneTree
		} else {
			m.focus = paneList
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Reload):
		if m.reload != nil {
			return m, m.reloadCmd()
		}
		m.notice = styles.RenderInfo("no profiles file to reload")
		return m, nil
	}

	if m.focus == paneTree {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keyMap.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keyMap.PageUp):
		m.moveCursor(-m.listPageSize())
	case key.Matches(msg, m.keyMap.PageDown):
		m.moveCursor(m.listPageSize())
	case key.Matches(msg, m.keyMap.Home):
		m.setCursor(0)
	case key.Matches(msg, m.keyMap.End):
		m.setCursor(len(m.refs) - 1)
	}
	return m, nil
}

// quit closes the watcher before exiting the program.
func (m Model) quit() tea.Cmd {
	if m.watcher != nil {
		m.watcher.close()
	}
	return tea.Quit
}

// =============================================================================
// SELECTION
// =============================================================================

// Selected returns the currently selected device reference.
func (m Model) Selected() (device.Reference, bool) {
	if m.cursor < 0 || m.cursor >= len(m.refs) {
		return device.Reference{}, false
	}
	return m.refs[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Model) setCursor(idx int) {
	if len(m.refs) == 0 {
		m.cursor = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.refs) {
		idx = len(m.refs) - 1
	}
	if idx != m.cursor {
		m.cursor = idx
		m.notice = ""
	}
	m.refreshViewport()
}

// listPageSize is how many rows a page jump moves the list cursor.
func (m Model) listPageSize() int {
	page := m.paneHeight() - 2
	if page < 1 {
		page = 1
	}
	return page
}

// =============================================================================
// REGISTRY RELOAD
// =============================================================================

// reloadCmd rebuilds the registry off the UI loop.
func (m Model) reloadCmd() tea.Cmd {
	reload := m.reload
	if reload == nil {
		return nil
	}
	return func() tea.Msg {
		reg, err := reload()
		if err != nil {
			return WatchErrorMsg{Err: err}
		}
		return ProfilesReloadedMsg{Registry: reg}
	}
}

// waitCmd re-arms the watcher for the next file event.
func (m Model) waitCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.wait()
}

// adoptWatcher records the watcher delivered by a watch message.
func (m *Model) adoptWatcher(w *profileWatcher) {
	if w != nil {
		m.watcher = w
	}
}

// applyRegistry swaps in a rebuilt registry, keeping the selection on the
// same device name when it still exists.
func (m *Model) applyRegistry(reg *device.Registry) {
	selected := ""
	if ref, ok := m.Selected(); ok {
		selected = ref.Name
	}

	m.registry = reg
	m.refs = reg.All()

	m.cursor = 0
	for i, ref := range m.refs {
		if ref.Name == selected {
			m.cursor = i
			break
		}
	}
	m.refreshViewport()
}

// =============================================================================
// LAYOUT
// =============================================================================

// handleResize recomputes pane dimensions for a new terminal size.
func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	vpWidth := m.treePaneWidth() - 4 // pane border and padding
	if vpWidth < 10 {
		vpWidth = 10
	}
	vpHeight := m.paneHeight()

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
}

// listPaneWidth is the device list column width.
func (m Model) listPaneWidth() int {
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return m.width - 2
	}
	w := m.width / 3
	if w < 26 {
		w = 26
	}
	return w
}

// treePaneWidth is the token tree column width.
func (m Model) treePaneWidth() int {
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return m.width - 2
	}
	return m.width - m.listPaneWidth() - 2
}

// paneHeight is the content height inside either pane.
// Layout: header (1) + panes + status bar (1), minus pane borders (2).
func (m Model) paneHeight() int {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}
