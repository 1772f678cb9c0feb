// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cascade models the graph overlay's presentation rules as
// typed data with a deterministic resolver.
package cascade

import "fmt"

// =============================================================================
// ELEMENT IDENTIFIERS
// =============================================================================

// Element identifies one styleable surface of the graph overlay. The
// set below is the complete public contract; external markup, themes
// and tests address surfaces by these identifiers, so renaming one is
// a breaking change.
type Element int

const (
	// Body is the overlay's document root.
	Body Element = iota
	// Graph is the outer container of a single chart.
	Graph
	// GraphTooltip is the shared hover tooltip.
	GraphTooltip
	// Area is the decorative filled region inside a chart. It never
	// intercepts pointer input.
	Area
	// Hoverzone is a column-shaped hover hit group.
	Hoverzone
	// HoverRect is the invisible hit rectangle inside a hoverzone.
	HoverRect
	// RangeBox is the pinned range-selector bar.
	RangeBox
	// RangeBoxPad reserves layout space under the pinned bar.
	RangeBoxPad
	// RangeBoxInner wraps the bar's controls.
	RangeBoxInner
	// Spin is the loading wheel.
	Spin
	// LegendOuter wraps a chart's legend row.
	LegendOuter
	// Subtitle is the explanatory line under a chart title.
	Subtitle
	// NoData is the placeholder label shown when a chart has nothing
	// to plot.
	NoData
	// NoDataRect is the placeholder's backing rectangle.
	NoDataRect
	// Centered, AlignEnd and AlignStart are text alignment utilities.
	Centered
	AlignEnd
	AlignStart
	// NoFocusOutline suppresses the focus ring without changing focus
	// behavior.
	NoFocusOutline
	// Clickable marks an element as activatable.
	Clickable
	// Tick is an axis tick label.
	Tick
	// TickOdd is every other axis tick, droppable on narrow viewports.
	TickOdd
	// Domain is the axis baseline, addressed only under the
	// no-domain-line scope that hides it.
	Domain

	elementCount // sentinel, keep last
)

var elementInfo = [elementCount]struct {
	name     string
	selector string
}{
	Body:           {"body", "body"},
	Graph:          {"graph", ".graph"},
	GraphTooltip:   {"graph-tooltip", ".graph-tooltip"},
	Area:           {"area", ".graph .area"},
	Hoverzone:      {"hoverzone", ".hoverzone"},
	HoverRect:      {"hoverzone-rect", ".hoverzone rect"},
	RangeBox:       {"range-box", ".range-box"},
	RangeBoxPad:    {"range-box-pad", ".range-box-pad"},
	RangeBoxInner:  {"range-box-inner", ".range-box-inner"},
	Spin:           {"spin", ".spin"},
	LegendOuter:    {"legend-outer", ".legend-outer"},
	Subtitle:       {"subtitle", ".subtitle"},
	NoData:         {"no-data", ".no-data"},
	NoDataRect:     {"no-data-rect", ".no-data rect"},
	Centered:       {"centered", ".centered"},
	AlignEnd:       {"align-end", ".align-end"},
	AlignStart:     {"align-start", ".align-start"},
	NoFocusOutline: {"no-focus-outline", ".no-focus-outline"},
	Clickable:      {"clickable", ".clickable"},
	Tick:           {"tick", ".tick text"},
	TickOdd:        {"tick-odd", ".tick-odd"},
	Domain:         {"domain", ".no-domain-line .domain"},
}

// String returns the element's semantic name.
func (e Element) String() string {
	if e < 0 || e >= elementCount {
		return fmt.Sprintf("element(%d)", int(e))
	}
	return elementInfo[e].name
}

// Selector returns the element's base CSS selector.
func (e Element) Selector() string {
	if e < 0 || e >= elementCount {
		return ""
	}
	return elementInfo[e].selector
}

// AllElements returns every element in declaration order.
func AllElements() []Element {
	es := make([]Element, 0, elementCount)
	for e := Element(0); e < elementCount; e++ {
		es = append(es, e)
	}
	return es
}

// =============================================================================
// INTERACTION STATES
// =============================================================================

// State is an interaction layer over an element's base declarations.
type State int

const (
	StateBase State = iota
	StateHover
	StateFocus
	StateActive

	stateCount // sentinel, keep last
)

var stateNames = [stateCount]string{"base", "hover", "focus", "active"}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// StateSelector returns the CSS selector for an element in a given
// state. Hover on the hit rectangle attaches to its parent zone, and
// the spinner's active state is a class rather than a pseudo-class.
func (e Element) StateSelector(s State) string {
	if s == StateBase {
		return e.Selector()
	}
	switch {
	case e == HoverRect && s == StateHover:
		return ".hoverzone:hover rect"
	case e == Spin && s == StateActive:
		return ".spin.active"
	case s == StateHover:
		return e.Selector() + ":hover"
	case s == StateFocus:
		return e.Selector() + ":focus"
	default:
		return e.Selector() + ".active"
	}
}
