// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package device derives capability facts for mobile devices.
package device

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// REFERENCE DEVICE REGISTRY
// =============================================================================

// Reference is a named device with known metrics, used by the inspection
// tooling to address devices by name instead of raw numbers.
type Reference struct {
	Name    string
	Metrics Metrics
}

// builtinReferences is the set of devices the tool knows out of the box.
// Logical sizes are portrait-orientation points as reported by the runtimes.
var builtinReferences = []Reference{
	{"iphone-se", Metrics{Width: 375, Height: 667, PixelRatio: 2, OS: FamilyIOS}},
	{"iphone-11", Metrics{Width: 414, Height: 896, PixelRatio: 2, OS: FamilyIOS}},
	{"iphone-13-mini", Metrics{Width: 375, Height: 812, PixelRatio: 3, OS: FamilyIOS}},
	{"iphone-14", Metrics{Width: 390, Height: 844, PixelRatio: 3, OS: FamilyIOS}},
	{"iphone-14-pro", Metrics{Width: 393, Height: 852, PixelRatio: 3, OS: FamilyIOS}},
	{"iphone-15-pro-max", Metrics{Width: 430, Height: 932, PixelRatio: 3, OS: FamilyIOS}},
	{"ipad", Metrics{Width: 810, Height: 1080, PixelRatio: 2, OS: FamilyIOS, TabletHint: true}},
	{"ipad-pro-11", Metrics{Width: 834, Height: 1194, PixelRatio: 2, OS: FamilyIOS, TabletHint: true}},
	{"pixel-7", Metrics{Width: 412, Height: 915, PixelRatio: 2.625, OS: FamilyAndroid}},
	{"pixel-8-pro", Metrics{Width: 448, Height: 998, PixelRatio: 3, OS: FamilyAndroid}},
	{"galaxy-a14", Metrics{Width: 384, Height: 854, PixelRatio: 2, OS: FamilyAndroid}},
	{"pixel-tablet", Metrics{Width: 800, Height: 1280, PixelRatio: 2, OS: FamilyAndroid, TabletHint: true}},
}

// Registry maps reference names to device metrics.
type Registry struct {
	refs map[string]Reference
}

// NewRegistry returns a registry seeded with the built-in references.
func NewRegistry() *Registry {
	r := &Registry{refs: make(map[string]Reference, len(builtinReferences))}
	for _, ref := range builtinReferences {
		r.refs[ref.Name] = ref
	}
	return r
}

// Lookup finds a reference by name, case-insensitively.
func (r *Registry) Lookup(name string) (Reference, bool) {
	ref, ok := r.refs[strings.ToLower(strings.TrimSpace(name))]
	return ref, ok
}

// Names returns all registered reference names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.refs))
	for name := range r.refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all references sorted by name.
func (r *Registry) All() []Reference {
	refs := make([]Reference, 0, len(r.refs))
	for _, name := range r.Names() {
		refs = append(refs, r.refs[name])
	}
	return refs
}

// Add registers a reference, replacing any existing entry with the same name.
func (r *Registry) Add(ref Reference) {
	r.refs[strings.ToLower(strings.TrimSpace(ref.Name))] = ref
}

// =============================================================================
// TOML PROFILE LOADING
// =============================================================================

// profileFile is the on-disk shape of a custom profile file:
//
//	[devices.foldable-x]
//	width = 373
//	height = 841
//	pixel_ratio = 2.5
//	os = "android"
//	tablet = false
type profileFile struct {
	Devices map[string]profileEntry `toml:"devices"`
}

type profileEntry struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	PixelRatio float64 `toml:"pixel_ratio"`
	OS         string  `toml:"os"`
	Tablet     bool    `toml:"tablet"`
}

// LoadProfiles merges custom device profiles from a TOML file into the
// registry. Entries with the same name as a built-in override it.
func (r *Registry) LoadProfiles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profiles: %w", err)
	}

	var file profileFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse profiles %s: %w", path, err)
	}

	for name, entry := range file.Devices {
		if entry.Width <= 0 || entry.Height <= 0 {
			return fmt.Errorf("profile %q: width and height must be positive", name)
		}
		pr := entry.PixelRatio
		if pr <= 0 {
			pr = 2
		}
		r.Add(Reference{
			Name: name,
			Metrics: Metrics{
				Width:      entry.Width,
				Height:     entry.Height,
				PixelRatio: pr,
				OS:         ParseFamily(entry.OS),
				TabletHint: entry.Tablet,
			},
		})
	}

	return nil
}
