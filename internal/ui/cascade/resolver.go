// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cascade models the graph overlay's presentation rules as
// typed data with a deterministic resolver.
package cascade

// =============================================================================
// VIEWPORT
// =============================================================================

// Orientation of the hosting device.
type Orientation int

const (
	Landscape Orientation = iota
	Portrait
)

func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// Media is the rendering medium.
type Media int

const (
	MediaScreen Media = iota
	MediaPrint
)

func (m Media) String() string {
	if m == MediaPrint {
		return "print"
	}
	return "screen"
}

// Viewport describes the rendering context a resolution is computed
// for. Width is the layout width in px. DeviceWidth is the physical
// device width; zero means the host does not distinguish it from the
// layout width.
type Viewport struct {
	Width       float64
	DeviceWidth float64
	Orientation Orientation
	Media       Media
}

func (vp Viewport) deviceWidth() float64 {
	if vp.DeviceWidth > 0 {
		return vp.DeviceWidth
	}
	return vp.Width
}

// =============================================================================
// RESOLUTION
// =============================================================================

type styleKey struct {
	el   Element
	st   State
	prop Property
}

// Computed is the resolved style set for one viewport: the last
// matching write per (element, state, property). Token references are
// still unresolved inside it; pair a lookup with Value.Resolve(mode)
// to get concrete paint.
type Computed struct {
	vp    Viewport
	decls map[styleKey]Value
}

// Resolve walks the sheets in order and applies every one whose
// condition matches the viewport. Later sheets overwrite earlier ones
// per property; properties only ever set by earlier sheets survive
// untouched. The walk is the entire cascade: no specificity, no
// source-order ties, nothing else to reason about.
func Resolve(vp Viewport) *Computed {
	c := &Computed{
		vp:    vp,
		decls: make(map[styleKey]Value, 64),
	}
	for _, sheet := range Sheets {
		if !sheet.Cond.Matches(vp) {
			continue
		}
		for _, rule := range sheet.Rules {
			for _, d := range rule.Decls {
				c.decls[styleKey{rule.Element, rule.State, d.Prop}] = d.Value
			}
		}
	}
	return c
}

// Viewport returns the viewport the set was resolved for.
func (c *Computed) Viewport() Viewport {
	return c.vp
}

// Each calls fn for every declaration in the set. Iteration order is
// unspecified; callers that need stable output sort on their side.
func (c *Computed) Each(fn func(el Element, st State, prop Property, v Value)) {
	for k, v := range c.decls {
		fn(k.el, k.st, k.prop, v)
	}
}

// Get returns an element's base-state value for a property. The second
// result is false when no matching sheet declared the property, which
// callers treat as "inherit / engine default".
func (c *Computed) Get(el Element, prop Property) (Value, bool) {
	v, ok := c.decls[styleKey{el, StateBase, prop}]
	return v, ok
}

// GetState returns an element's value for a property in an interaction
// state, falling back to the base state when the state layer does not
// override the property.
func (c *Computed) GetState(el Element, st State, prop Property) (Value, bool) {
	if v, ok := c.decls[styleKey{el, st, prop}]; ok {
		return v, true
	}
	return c.Get(el, prop)
}

// Visible reports whether the element is displayed at all.
func (c *Computed) Visible(el Element) bool {
	v, ok := c.Get(el, PropDisplay)
	return !ok || !v.Is("none")
}

// PointerEvents returns the element's pointer-events keyword, "auto"
// when undeclared.
func (c *Computed) PointerEvents(el Element) string {
	v, ok := c.Get(el, PropPointerEvents)
	if !ok || v.Kind != KindKeyword {
		return "auto"
	}
	return v.Keyword
}

// HitTestable reports whether the element can intercept pointer input.
func (c *Computed) HitTestable(el Element) bool {
	return c.PointerEvents(el) != "none"
}

// FontSizePx returns an element's base font size when a sheet pinned
// it to an absolute length. The boolean is false for relative values
// and for elements left at the engine default.
func (c *Computed) FontSizePx(el Element) (float64, bool) {
	v, ok := c.Get(el, PropFontSize)
	if !ok || v.Kind != KindPx {
		return 0, false
	}
	return v.Amount, true
}
