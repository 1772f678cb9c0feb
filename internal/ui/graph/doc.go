// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package graph provides the chart components for the statgraph TUI.

This package contains the building blocks the stats view composes into
its dashboard. Each component renders against a *styles.Theme and reads
its presentation rules from a *cascade.Computed set, so a viewport or
mode change restyles everything without touching component state.

# Core Components

Panel (panel.go) - One bar chart of reviews per day, with bucket
folding, an ease legend and the constant-height no-data placeholder.
RangeBox (rangebox.go) - The pinned header bar: span buttons plus the
deck search input.
Tooltip (tooltip.go) - The shared hover readout. It follows the pointer
and never intercepts it.
Spinner (spinner.go) - The loading wheel. Rotation runs off the wall
clock so it never resets between loads; only opacity gates visibility.
HitMap (hitmap.go) - Pointer geometry registered during render and
consulted on mouse events.

# Hit Testing

Panels register two layers per chart: the decorative area rectangle and
one hover zone per column. The area declares pointer-events none, so
Locate skips it and the zones behind it take the pointer:

	hits := graph.NewHitMap()
	view := panel.Render(theme, comp, hits, 0, y)
	if hit, ok := hits.Locate(mouseX, mouseY, comp); ok {
		// hit.Column indexes panel.Buckets()
	}

# Rendering Contract

Components never cache styled output. Callers re-render on every update
with the current theme and computed set; the components themselves hold
only data and interaction state.
*/
package graph
