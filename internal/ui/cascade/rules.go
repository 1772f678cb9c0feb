// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cascade models the graph overlay's presentation rules as
// typed data with a deterministic resolver.
package cascade

import "github.com/jeranaias/statgraph-tui/internal/ui/styles"

// =============================================================================
// MEDIA CONDITIONS
// =============================================================================

// ConditionKind discriminates sheet activation conditions.
type ConditionKind int

const (
	// CondAlways matches every viewport.
	CondAlways ConditionKind = iota
	// CondMaxWidth matches viewports at or below a width. Bounds are
	// inclusive: a viewport of exactly the limit activates the sheet.
	CondMaxWidth
	// CondSmallDevicePortrait matches portrait devices at or below
	// 480px device width.
	CondSmallDevicePortrait
	// CondPrint matches the print medium regardless of width.
	CondPrint
)

// Condition gates a sheet on the viewport.
type Condition struct {
	Kind       ConditionKind
	MaxWidthPx float64
}

// Matches reports whether the sheet applies to the viewport.
func (c Condition) Matches(vp Viewport) bool {
	switch c.Kind {
	case CondAlways:
		return true
	case CondMaxWidth:
		return vp.Width <= c.MaxWidthPx
	case CondSmallDevicePortrait:
		return vp.deviceWidth() <= smallDeviceMaxPx && vp.Orientation == Portrait
	case CondPrint:
		return vp.Media == MediaPrint
	default:
		return false
	}
}

// CSS returns the @media header for the condition, empty for the base
// sheet.
func (c Condition) CSS() string {
	switch c.Kind {
	case CondMaxWidth:
		return "@media (max-width: " + trimNumber(c.MaxWidthPx) + "px)"
	case CondSmallDevicePortrait:
		return "@media only screen and (max-device-width: 480px) and (orientation: portrait)"
	case CondPrint:
		return "@media print"
	default:
		return ""
	}
}

// smallDeviceMaxPx is the device-width limit for the portrait sheet.
const smallDeviceMaxPx = 480

// Sheet is one ordered rule list behind one condition.
type Sheet struct {
	Name  string
	Cond  Condition
	Rules []Rule
}

// =============================================================================
// THE OVERRIDE LIST
// =============================================================================

// Sheets is the overlay's full rule set in priority order. Matching is
// additive: every sheet whose condition holds contributes, and when two
// contributions target the same element, state and property, the later
// sheet wins. There is no other specificity arithmetic.
var Sheets = []Sheet{
	{
		Name: "base",
		Cond: Condition{Kind: CondAlways},
		Rules: []Rule{
			{Element: Graph, Decls: []Decl{
				D(PropMargin, Raw("0 auto")),
				D(PropMaxWidth, Em(50)),
			}},
			{Element: GraphTooltip, Decls: []Decl{
				D(PropPosition, Keyword("absolute")),
				D(PropWhiteSpace, Keyword("nowrap")),
				D(PropPadding, Px(15)),
				D(PropBorderRadius, Px(5)),
				D(PropOpacity, Number(0)),
				D(PropPointerEvents, Keyword("none")),
				D(PropColor, HostVar(styles.HostVarTextFg)),
				D(PropBackground, HostVar(styles.HostVarTooltipBg)),
			}},
			// The chart body reads all four theme tokens. It is
			// decoration only and must never swallow pointer input.
			{Element: Area, Decls: []Decl{
				D(PropFill, TokenRef(styles.TokenAreaFill)),
				D(PropFillOpacity, TokenRef(styles.TokenAreaFillOpacity)),
				D(PropStroke, TokenRef(styles.TokenAreaStroke)),
				D(PropStrokeOpacity, TokenRef(styles.TokenAreaStrokeOpacity)),
				D(PropPointerEvents, Keyword("none")),
			}},
			// The hit rectangle is the opposite: invisible at rest but
			// always interactive.
			{Element: HoverRect, Decls: []Decl{
				D(PropFill, Keyword("none")),
				D(PropPointerEvents, Keyword("all")),
			}},
			{Element: HoverRect, State: StateHover, Decls: []Decl{
				D(PropFill, Hex(styles.HoverGrey)),
				D(PropOpacity, Number(styles.HoverHighlightOpacity)),
			}},
			{Element: RangeBox, Decls: []Decl{
				D(PropPosition, Keyword("fixed")),
				D(PropTop, Px(0)),
				D(PropWidth, Raw("100%")),
				D(PropTextAlign, Keyword("center")),
				D(PropBackground, HostVar(styles.HostVarWindowBg)),
				D(PropZIndex, Number(1)),
			}},
			{Element: RangeBoxPad, Decls: []Decl{
				D(PropHeight, Em(2)),
			}},
			{Element: RangeBoxInner, Decls: []Decl{
				D(PropPadding, Em(0.5)),
			}},
			// The wheel turns forever; only its opacity gates
			// visibility. The fade applies to the activate edge alone,
			// so clearing the flag hides it instantly.
			{Element: Spin, Decls: []Decl{
				D(PropAnimation, Raw("spin 1s linear infinite")),
				D(PropOpacity, Number(styles.SpinnerOpacityIdle)),
			}},
			{Element: Spin, State: StateActive, Decls: []Decl{
				D(PropOpacity, Number(styles.SpinnerOpacityActive)),
				D(PropTransition, Raw("opacity 1s")),
			}},
			{Element: LegendOuter, Decls: []Decl{
				D(PropTextAlign, Keyword("center")),
			}},
			{Element: Subtitle, Decls: []Decl{
				D(PropTextAlign, Keyword("center")),
			}},
			{Element: NoData, Decls: []Decl{
				D(PropTextAnchor, Keyword("middle")),
				D(PropFill, Hex(styles.HoverGrey)),
			}},
			{Element: NoDataRect, Decls: []Decl{
				D(PropFill, HostVar(styles.HostVarWindowBg)),
			}},
			{Element: Centered, Decls: []Decl{
				D(PropTextAlign, Keyword("center")),
			}},
			{Element: AlignEnd, Decls: []Decl{
				D(PropTextAlign, Keyword("end")),
			}},
			{Element: AlignStart, Decls: []Decl{
				D(PropTextAlign, Keyword("start")),
			}},
			{Element: NoFocusOutline, State: StateFocus, Decls: []Decl{
				D(PropOutline, Keyword("none")),
			}},
			{Element: Clickable, Decls: []Decl{
				D(PropCursor, Keyword("pointer")),
			}},
			{Element: Domain, Decls: []Decl{
				D(PropDisplay, Keyword("none")),
			}},
		},
	},
	{
		Name: "max-width-800",
		Cond: Condition{Kind: CondMaxWidth, MaxWidthPx: 800},
		Rules: []Rule{
			{Element: Tick, Decls: []Decl{
				D(PropFontSize, Px(13)),
			}},
		},
	},
	{
		Name: "max-width-600",
		Cond: Condition{Kind: CondMaxWidth, MaxWidthPx: 600},
		Rules: []Rule{
			{Element: Body, Decls: []Decl{
				D(PropFontSize, Px(12)),
			}},
			{Element: Tick, Decls: []Decl{
				D(PropFontSize, Px(16)),
			}},
			// Half the labels go; the survivors get bigger. Legibility
			// beats density on a narrow screen.
			{Element: TickOdd, Decls: []Decl{
				D(PropDisplay, Keyword("none")),
			}},
		},
	},
	{
		Name: "small-device-portrait",
		Cond: Condition{Kind: CondSmallDevicePortrait},
		Rules: []Rule{
			{Element: RangeBoxInner, Decls: []Decl{
				D(PropFontSize, Keyword("smaller")),
			}},
		},
	},
	{
		// Printed pages must not repeat the pinned bar on every sheet.
		Name: "print",
		Cond: Condition{Kind: CondPrint},
		Rules: []Rule{
			{Element: RangeBox, Decls: []Decl{
				D(PropPosition, Keyword("absolute")),
			}},
		},
	},
}
