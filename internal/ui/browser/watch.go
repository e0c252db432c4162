// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive token browser TUI.
//
// This file wires the profiles file watcher. The watcher observes the
// directory containing the profiles file rather than the file itself,
// because editors commonly replace files via rename on save.
package browser

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// profileWatcher wraps an fsnotify watcher scoped to one profiles file.
type profileWatcher struct {
	fs   *fsnotify.Watcher
	path string
}

// watchProfiles starts watching the directory of the given profiles file.
func watchProfiles(path string) (*profileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &profileWatcher{fs: w, path: abs}, nil
}

// wait returns a command that blocks until the profiles file changes.
// Events for other files in the directory are skipped without waking
// the UI loop.
func (w *profileWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if !w.matches(ev.Name) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return profilesChangedMsg{watcher: w}
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				return WatchErrorMsg{Err: err, watcher: w}
			}
		}
	}
}

// matches reports whether an event path refers to the watched file.
func (w *profileWatcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.path
}

// close stops the underlying fsnotify watcher.
func (w *profileWatcher) close() {
	if w.fs != nil {
		w.fs.Close()
	}
}
