// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides token snapshot export functionality for navtokens.
// Supports exporting assembled token trees to various formats with metadata.
package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/navtokens/internal/device"
	"github.com/jeranaias/navtokens/internal/tokens"
)

// =============================================================================
// TOKEN SNAPSHOT
// =============================================================================

// Snapshot is one exported token tree plus the facts it was derived from.
// The snapshot id lets design pipelines track which export a rendered
// artifact came from.
type Snapshot struct {
	SnapshotID  string         `json:"snapshot_id"`
	Generator   string         `json:"generator"`
	GeneratedAt time.Time      `json:"generated_at"`
	Device      string         `json:"device"`
	Metrics     Metrics        `json:"metrics"`
	Profile     device.Profile `json:"profile"`
	Tokens      tokens.Tree    `json:"tokens"`
}

// Metrics mirrors device metrics in the snapshot envelope.
type Metrics struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PixelRatio float64 `json:"pixel_ratio"`
	OS         string  `json:"os"`
	TabletHint bool    `json:"tablet_hint"`
}

// NewSnapshot assembles the token tree for a reference device and wraps it
// in a snapshot envelope with a fresh id and timestamp.
func NewSnapshot(ref device.Reference) *Snapshot {
	profile := device.Detect(ref.Metrics)
	return &Snapshot{
		SnapshotID:  uuid.NewString(),
		Generator:   "navtokens",
		GeneratedAt: time.Now().UTC(),
		Device:      ref.Name,
		Metrics: Metrics{
			Width:      ref.Metrics.Width,
			Height:     ref.Metrics.Height,
			PixelRatio: ref.Metrics.PixelRatio,
			OS:         ref.Metrics.OS.String(),
			TabletHint: ref.Metrics.TabletHint,
		},
		Profile: profile,
		Tokens:  tokens.Assemble(profile),
	}
}
