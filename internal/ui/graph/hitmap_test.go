// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package graph provides the chart components for the statgraph TUI.
package graph

import (
	"testing"

	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
)

// =============================================================================
// HIT MAP TESTS
// =============================================================================

func wideComputed() *cascade.Computed {
	return cascade.Resolve(cascade.Viewport{Width: 1000})
}

func TestHitMap_LocateMiss(t *testing.T) {
	h := NewHitMap()
	h.Add(cascade.HoverRect, 0, 5, 5, 10, 10)

	hit, ok := h.Locate(0, 0, wideComputed())
	if ok {
		t.Errorf("Locate outside all regions = %+v, want miss", hit)
	}
	if hit.Column != -1 {
		t.Errorf("miss Column = %d, want -1", hit.Column)
	}
}

func TestHitMap_InclusiveBounds(t *testing.T) {
	h := NewHitMap()
	h.Add(cascade.HoverRect, 2, 5, 5, 10, 10)
	comp := wideComputed()

	corners := [][2]int{{5, 5}, {10, 5}, {5, 10}, {10, 10}}
	for _, c := range corners {
		hit, ok := h.Locate(c[0], c[1], comp)
		if !ok || hit.Column != 2 {
			t.Errorf("Locate(%d, %d) = %+v, %v; want column 2 hit", c[0], c[1], hit, ok)
		}
	}
	if _, ok := h.Locate(11, 10, comp); ok {
		t.Error("Locate just past the right edge should miss")
	}
}

func TestHitMap_LastRegionOnTop(t *testing.T) {
	h := NewHitMap()
	h.Add(cascade.HoverRect, 0, 0, 0, 10, 10)
	h.Add(cascade.HoverRect, 1, 0, 0, 10, 10)

	hit, ok := h.Locate(5, 5, wideComputed())
	if !ok {
		t.Fatal("expected a hit on overlapping regions")
	}
	if hit.Column != 1 {
		t.Errorf("overlapping hit Column = %d, want 1 (last registered)", hit.Column)
	}
}

func TestHitMap_AreaIsPointerTransparent(t *testing.T) {
	h := NewHitMap()
	// The decorative area is drawn over the zone here, the reverse of
	// the usual panel order, to prove transparency comes from the
	// computed pointer-events and not from registration order.
	h.Add(cascade.HoverRect, 3, 0, 0, 10, 10)
	h.Add(cascade.Area, -1, 0, 0, 10, 10)

	hit, ok := h.Locate(5, 5, wideComputed())
	if !ok {
		t.Fatal("expected the zone beneath the area to take the pointer")
	}
	if hit.Element != cascade.HoverRect || hit.Column != 3 {
		t.Errorf("hit = %+v, want hoverzone rect column 3", hit)
	}
}

func TestHitMap_HiddenElementsCannotBeHit(t *testing.T) {
	h := NewHitMap()
	h.Add(cascade.TickOdd, -1, 0, 0, 10, 10)

	// Wide viewport keeps odd ticks visible.
	if _, ok := h.Locate(5, 5, wideComputed()); !ok {
		t.Error("odd tick should be hittable on a wide viewport")
	}

	// At 600px the odd ticks are dropped entirely.
	narrow := cascade.Resolve(cascade.Viewport{Width: 600})
	if hit, ok := h.Locate(5, 5, narrow); ok {
		t.Errorf("hidden odd tick was hit: %+v", hit)
	}
}

func TestHitMap_Reset(t *testing.T) {
	h := NewHitMap()
	h.Add(cascade.HoverRect, 0, 0, 0, 10, 10)
	h.Add(cascade.HoverRect, 1, 0, 0, 10, 10)

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", h.Len())
	}
	if _, ok := h.Locate(5, 5, wideComputed()); ok {
		t.Error("Locate should miss after Reset")
	}
}

func TestHitMap_IgnoresInvertedRects(t *testing.T) {
	h := NewHitMap()
	h.Add(cascade.HoverRect, 0, 10, 10, 5, 5)

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for an inverted rectangle", h.Len())
	}
}
