// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the statgraph TUI.
package styles

import "fmt"

// =============================================================================
// THEME MODES
// =============================================================================

// Mode selects which variant of each theme token is in effect.
// By the time tokens are resolved the mode is always concrete; the
// "auto" preference is mapped to Light or Dark at the prefs layer.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// ParseMode parses a concrete mode name. "auto" is not accepted here;
// callers resolve it against the terminal background first.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("unknown mode %q (want light or dark)", s)
	}
}

// =============================================================================
// GRAPH THEME TOKENS
// =============================================================================

// Token identifies one themed value consumed by the graph surfaces.
// The four tokens below are the complete public set; their wire names
// double as CSS custom property names in exported stylesheets.
type Token int

const (
	TokenAreaFill Token = iota
	TokenAreaFillOpacity
	TokenAreaStroke
	TokenAreaStrokeOpacity

	tokenCount // sentinel, keep last
)

var tokenNames = [tokenCount]string{
	TokenAreaFill:          "area-fill",
	TokenAreaFillOpacity:   "area-fill-opacity",
	TokenAreaStroke:        "area-stroke",
	TokenAreaStrokeOpacity: "area-stroke-opacity",
}

// String returns the token's wire name, e.g. "area-fill-opacity".
func (t Token) String() string {
	if t < 0 || t >= tokenCount {
		return fmt.Sprintf("token(%d)", int(t))
	}
	return tokenNames[t]
}

// CSSVar returns the custom property name used in exported stylesheets.
func (t Token) CSSVar() string {
	return "--" + t.String()
}

// AllTokens returns every registered token in declaration order.
func AllTokens() []Token {
	ts := make([]Token, 0, tokenCount)
	for t := Token(0); t < tokenCount; t++ {
		ts = append(ts, t)
	}
	return ts
}

// TokenValue is a resolved token: either a color (Hex set) or a scalar
// opacity in [0, 1]. The zero value is the defined fallback for tokens
// that cannot be resolved: no paint, fully transparent.
type TokenValue struct {
	Hex     string
	Opacity float64
}

// IsColor reports whether the value carries a color rather than a scalar.
func (v TokenValue) IsColor() bool {
	return v.Hex != ""
}

// CSS returns the value as it appears in a stylesheet.
func (v TokenValue) CSS() string {
	if v.IsColor() {
		return v.Hex
	}
	return trimFloat(v.Opacity)
}

// Fallback is returned for unregistered tokens. Resolution is total:
// an unknown token produces this value, never a panic.
var Fallback = TokenValue{}

func color(hex string) TokenValue  { return TokenValue{Hex: hex} }
func opacity(o float64) TokenValue { return TokenValue{Opacity: o} }

type tokenVariants struct {
	light TokenValue
	dark  TokenValue
}

// The token table. The area stroke keeps the same color in both modes;
// only its opacity changes. The dark fill flips to white so the wash
// stays visible against a dark window background.
var tokenTable = [tokenCount]tokenVariants{
	TokenAreaFill:          {light: color("#000000"), dark: color("#ffffff")},
	TokenAreaFillOpacity:   {light: opacity(0.03), dark: opacity(0.08)},
	TokenAreaStroke:        {light: color("#000000"), dark: color("#000000")},
	TokenAreaStrokeOpacity: {light: opacity(0.08), dark: opacity(0.18)},
}

// Resolve returns the value of a token under the given mode. It is a
// pure lookup: nothing is cached, so a mode flip is reflected by the
// very next call. Unknown tokens resolve to Fallback; unknown modes
// resolve as light.
func Resolve(t Token, m Mode) TokenValue {
	if t < 0 || t >= tokenCount {
		return Fallback
	}
	if m == ModeDark {
		return tokenTable[t].dark
	}
	return tokenTable[t].light
}

// =============================================================================
// HOST-SUPPLIED VARIABLES
// =============================================================================

// Names of the variables the graph surfaces consume but never define.
// The surrounding application owns these; exported stylesheets reference
// them as var(...) and never emit concrete values for them.
const (
	HostVarTextFg    = "--text-fg"
	HostVarTooltipBg = "--tooltip-bg"
	HostVarWindowBg  = "--window-bg"
)

// HostVars carries the host-owned colors the graph surfaces read:
// foreground text, tooltip background, and window background. Empty
// fields fall back to built-in defaults so a partially configured host
// still renders.
type HostVars struct {
	TextFg    string
	TooltipBg string
	WindowBg  string
}

var hostDefaults = map[Mode]HostVars{
	ModeLight: {TextFg: "#020202", TooltipBg: "#fcfcfc", WindowBg: "#f5f5f5"},
	ModeDark:  {TextFg: "#fcfcfc", TooltipBg: "#272727", WindowBg: "#2c2c2c"},
}

// WithDefaults fills any unset field from the built-in fallbacks for
// the given mode.
func (h HostVars) WithDefaults(m Mode) HostVars {
	d, ok := hostDefaults[m]
	if !ok {
		d = hostDefaults[ModeLight]
	}
	if h.TextFg == "" {
		h.TextFg = d.TextFg
	}
	if h.TooltipBg == "" {
		h.TooltipBg = d.TooltipBg
	}
	if h.WindowBg == "" {
		h.WindowBg = d.WindowBg
	}
	return h
}

// DefaultHostVars returns the full fallback set for a mode.
func DefaultHostVars(m Mode) HostVars {
	return HostVars{}.WithDefaults(m)
}

// trimFloat formats an opacity without trailing zeros, matching the
// stylesheet notation (0.03, 0.18, 0.5).
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 1 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
