// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cascade models the graph overlay's presentation rules as
// typed data with a deterministic resolver.
package cascade

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// =============================================================================
// PROPERTIES
// =============================================================================

// Property is a typed style property name.
type Property int

const (
	PropDisplay Property = iota
	PropPosition
	PropFontSize
	PropFill
	PropFillOpacity
	PropStroke
	PropStrokeOpacity
	PropOpacity
	PropPointerEvents
	PropTextAlign
	PropTextAnchor
	PropCursor
	PropOutline
	PropColor
	PropBackground
	PropTransition
	PropAnimation
	PropTop
	PropWidth
	PropHeight
	PropMaxWidth
	PropMargin
	PropPadding
	PropBorderRadius
	PropWhiteSpace
	PropZIndex

	propCount // sentinel, keep last
)

var propNames = [propCount]string{
	PropDisplay:       "display",
	PropPosition:      "position",
	PropFontSize:      "font-size",
	PropFill:          "fill",
	PropFillOpacity:   "fill-opacity",
	PropStroke:        "stroke",
	PropStrokeOpacity: "stroke-opacity",
	PropOpacity:       "opacity",
	PropPointerEvents: "pointer-events",
	PropTextAlign:     "text-align",
	PropTextAnchor:    "text-anchor",
	PropCursor:        "cursor",
	PropOutline:       "outline",
	PropColor:         "color",
	PropBackground:    "background",
	PropTransition:    "transition",
	PropAnimation:     "animation",
	PropTop:           "top",
	PropWidth:         "width",
	PropHeight:        "height",
	PropMaxWidth:      "max-width",
	PropMargin:        "margin",
	PropPadding:       "padding",
	PropBorderRadius:  "border-radius",
	PropWhiteSpace:    "white-space",
	PropZIndex:        "z-index",
}

// String returns the property's stylesheet name.
func (p Property) String() string {
	if p < 0 || p >= propCount {
		return fmt.Sprintf("property(%d)", int(p))
	}
	return propNames[p]
}

// =============================================================================
// VALUES
// =============================================================================

// ValueKind discriminates the representations a declaration value can
// take. Shorthands that the resolver never inspects (animation and
// transition strings, compound margins) stay raw; everything the
// resolver or renderer branches on is typed.
type ValueKind int

const (
	KindKeyword ValueKind = iota
	KindPx
	KindEm
	KindNumber
	KindColor
	KindToken
	KindHostVar
	KindRaw
)

// Value is one declaration value. Token references stay unresolved in
// the rule data and are looked up against the mode at render time, so
// a night-mode flip propagates without re-resolving the cascade.
type Value struct {
	Kind    ValueKind
	Keyword string
	Amount  float64
	Hex     string
	Token   styles.Token
	Var     string
	Raw     string
}

// Keyword builds a keyword value such as "none" or "smaller".
func Keyword(s string) Value { return Value{Kind: KindKeyword, Keyword: s} }

// Px builds an absolute pixel length.
func Px(f float64) Value { return Value{Kind: KindPx, Amount: f} }

// Em builds a font-relative length.
func Em(f float64) Value { return Value{Kind: KindEm, Amount: f} }

// Number builds a unitless scalar (opacities, z-index).
func Number(f float64) Value { return Value{Kind: KindNumber, Amount: f} }

// Hex builds a concrete color value.
func Hex(s string) Value { return Value{Kind: KindColor, Hex: s} }

// TokenRef builds a reference to a theme token, resolved at render time.
func TokenRef(t styles.Token) Value { return Value{Kind: KindToken, Token: t} }

// HostVar builds a reference to a host-owned variable such as
// "--window-bg". The overlay consumes these; it never defines them.
func HostVar(name string) Value { return Value{Kind: KindHostVar, Var: name} }

// Raw builds an opaque shorthand emitted verbatim in stylesheets.
func Raw(s string) Value { return Value{Kind: KindRaw, Raw: s} }

// CSS renders the value in stylesheet notation.
func (v Value) CSS() string {
	switch v.Kind {
	case KindKeyword:
		return v.Keyword
	case KindPx:
		return trimNumber(v.Amount) + "px"
	case KindEm:
		return trimNumber(v.Amount) + "em"
	case KindNumber:
		return trimNumber(v.Amount)
	case KindColor:
		return v.Hex
	case KindToken:
		return fmt.Sprintf("var(%s)", v.Token.CSSVar())
	case KindHostVar:
		return fmt.Sprintf("var(%s)", v.Var)
	default:
		return v.Raw
	}
}

// Resolve chases a token reference under the given mode; other kinds
// return themselves. Resolution is total: a token that resolves to the
// fallback becomes a transparent paint, never an error.
func (v Value) Resolve(m styles.Mode) Value {
	if v.Kind != KindToken {
		return v
	}
	tv := styles.Resolve(v.Token, m)
	if tv.IsColor() {
		return Hex(tv.Hex)
	}
	return Number(tv.Opacity)
}

// Is reports whether the value is the given keyword.
func (v Value) Is(keyword string) bool {
	return v.Kind == KindKeyword && v.Keyword == keyword
}

func trimNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// =============================================================================
// DECLARATIONS AND RULES
// =============================================================================

// Decl binds one property to one value.
type Decl struct {
	Prop  Property
	Value Value
}

// D is shorthand for building a declaration.
func D(p Property, v Value) Decl { return Decl{Prop: p, Value: v} }

// Rule applies an ordered declaration list to an element in one
// interaction state.
type Rule struct {
	Element Element
	State   State
	Decls   []Decl
}
