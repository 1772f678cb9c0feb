// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cascade models the graph overlay's presentation rules as typed
data with a deterministic resolver.

Instead of selector matching, every styleable surface has a typed
Element identifier and every rule is a (element, state, property,
value) record grouped into Sheets. A Sheet activates on a viewport
condition; the sheet list is ordered and resolution is additive with
last-write-wins per property:

	base
	max-width <= 800px          tick labels pinned to 13px
	max-width <= 600px          body 12px, ticks 16px, odd ticks hidden
	device <= 480px + portrait  range selector text one step smaller
	print                       pinned range bar becomes absolute

Width bounds are inclusive: a viewport of exactly 800px activates the
800px sheet, 801px does not. At 600px both width sheets activate and
the 600px sheet's tick size wins because it comes later.

# Resolving

	vp := cascade.Viewport{Width: 600}
	cs := cascade.Resolve(vp)
	v, ok := cs.Get(cascade.Tick, cascade.PropFontSize)
	// ok, v.Amount == 16

Interaction states layer over the base state:

	fill, _ := cs.GetState(cascade.HoverRect, cascade.StateHover, cascade.PropFill)

Token references inside values stay unresolved until render time so a
night-mode flip needs no re-resolution:

	fill, _ := cs.Get(cascade.Area, cascade.PropFill)
	paint := fill.Resolve(styles.ModeDark) // concrete hex

# Element contract

The Element constants are the complete public naming contract of the
overlay; hosts, tests and exported stylesheets all address surfaces
through them. Selector() returns the exact CSS selector each maps to.
*/
package cascade
