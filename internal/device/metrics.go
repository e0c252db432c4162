// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package device derives capability facts for mobile devices.
package device

import (
	"fmt"
	"sync"
)

// =============================================================================
// RAW DEVICE METRICS
// =============================================================================

// Metrics holds the raw device facts everything else is derived from.
// Width and Height are the logical window size the host runtime reports at
// startup; they are not re-read on rotation.
type Metrics struct {
	// Width is the logical window width in points.
	Width float64
	// Height is the logical window height in points.
	Height float64
	// PixelRatio is the device pixel density (device pixels per point).
	PixelRatio float64
	// OS is the operating system family.
	OS Family
	// TabletHint is set when the host runtime reports a tablet form factor
	// directly, independent of screen geometry.
	TabletHint bool
}

// String returns a formatted representation of the metrics.
func (m Metrics) String() string {
	return fmt.Sprintf("%.0fx%.0f @%gx (%s)", m.Width, m.Height, m.PixelRatio, m.OS)
}

// Longer returns the longer of the two logical dimensions.
func (m Metrics) Longer() float64 {
	if m.Height >= m.Width {
		return m.Height
	}
	return m.Width
}

// Shorter returns the shorter of the two logical dimensions.
func (m Metrics) Shorter() float64 {
	if m.Height < m.Width {
		return m.Height
	}
	return m.Width
}

// =============================================================================
// ONE-TIME METRICS CAPTURE
// =============================================================================

// MetricsProbe reads raw metrics from a host runtime. Probes may panic when
// the host environment is unavailable; Capture swallows that.
type MetricsProbe func() Metrics

var (
	captured     Metrics
	captureOnce  sync.Once
	captureReset sync.Mutex
)

// fallbackMetrics is the conservative profile substituted when a probe
// fails: a small Android phone with no notch and no blur support.
var fallbackMetrics = Metrics{
	Width:      360,
	Height:     640,
	PixelRatio: 2,
	OS:         FamilyAndroid,
}

// Capture reads device metrics exactly once for the process lifetime and
// returns the cached value on every later call. A panicking probe is
// swallowed and replaced with the conservative fallback; capture never
// fails.
func Capture(probe MetricsProbe) Metrics {
	captureOnce.Do(func() {
		captured = safeProbe(probe)
	})
	return captured
}

// safeProbe runs the probe with a recover guard, substituting the fallback
// when the probe panics or is nil.
func safeProbe(probe MetricsProbe) (m Metrics) {
	defer func() {
		if r := recover(); r != nil {
			m = fallbackMetrics
		}
	}()
	if probe == nil {
		return fallbackMetrics
	}
	return probe()
}

// ResetCapture clears the cached metrics so the next Capture probes again.
// Test hook only; production code captures once per process.
func ResetCapture() {
	captureReset.Lock()
	defer captureReset.Unlock()
	captureOnce = sync.Once{}
	captured = Metrics{}
}
