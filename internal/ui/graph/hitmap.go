// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package graph provides the chart components for the statgraph TUI.
package graph

import (
	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
)

// =============================================================================
// HIT TESTING
// =============================================================================

// Hit identifies what the pointer is over.
type Hit struct {
	Element cascade.Element
	// Column is the data column index for hover zones, -1 otherwise.
	Column int
}

// region is one rectangle of terminal cells owned by an element.
// Bounds are inclusive.
type region struct {
	x0, y0, x1, y1 int
	hit            Hit
}

// HitMap maps terminal cells to the elements drawn there. Components
// register regions while rendering; registration order is z-order, so
// the last region added at a cell sits on top.
//
// Lookup consults the computed styles: an element whose computed
// pointer-events is "none" is transparent to the pointer no matter
// where it is drawn, and hidden elements cannot be hit at all. The
// chart area never swallows input this way, while the invisible hover
// rectangles always take it.
type HitMap struct {
	regions []region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Reset clears all regions. Called at the start of every render pass.
func (h *HitMap) Reset() {
	h.regions = h.regions[:0]
}

// Add registers a rectangle of cells for an element. Column is the
// data column the region represents, or -1 when it has none.
func (h *HitMap) Add(el cascade.Element, column, x0, y0, x1, y1 int) {
	if x1 < x0 || y1 < y0 {
		return
	}
	h.regions = append(h.regions, region{x0, y0, x1, y1, Hit{Element: el, Column: column}})
}

// Len returns the number of registered regions.
func (h *HitMap) Len() int {
	return len(h.regions)
}

// Locate returns the top-most interactive element at a cell. Regions
// whose element is hidden or pointer-transparent under the computed
// styles are skipped, exposing whatever sits beneath them.
func (h *HitMap) Locate(x, y int, comp *cascade.Computed) (Hit, bool) {
	for i := len(h.regions) - 1; i >= 0; i-- {
		r := h.regions[i]
		if x < r.x0 || x > r.x1 || y < r.y0 || y > r.y1 {
			continue
		}
		if !comp.Visible(r.hit.Element) {
			continue
		}
		if !comp.HitTestable(r.hit.Element) {
			continue
		}
		return r.hit, true
	}
	return Hit{Column: -1}, false
}
