// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the statgraph TUI.
// All colors use Lip Gloss AdaptiveColor pairs; the Theme selects a side
// explicitly so a night-mode toggle never depends on terminal detection.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// SURFACE COLORS
// =============================================================================

// WindowBackground - Main dashboard background, mirrors the host window.
var WindowBackground = lipgloss.AdaptiveColor{Light: "#f5f5f5", Dark: "#2c2c2c"}

// SurfaceDim - Header and status bar background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#e8e8e8", Dark: "#222222"}

// TooltipBackground - Hover tooltip background
var TooltipBackground = lipgloss.AdaptiveColor{Light: "#fcfcfc", Dark: "#272727"}

// Overlay - Borders, separators, axis lines
var Overlay = lipgloss.AdaptiveColor{Light: "#d4d4d4", Dark: "#45475a"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text, mirrors the host --text-fg
var TextPrimary = lipgloss.AdaptiveColor{Light: "#020202", Dark: "#fcfcfc"}

// TextSecondary - Subtitles, legends, axis tick labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#a6adc8"}

// TextMuted - Hints, placeholder text, the no-data label
var TextMuted = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6c7086"}

// =============================================================================
// GRAPH SERIES COLORS
// =============================================================================

// Answer-ease buckets for the review breakdown panel.
var (
	EaseAgain = lipgloss.AdaptiveColor{Light: "#e11d48", Dark: "#fb7185"}
	EaseHard  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	EaseGood  = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	EaseEasy  = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
)

// Accent - Selected span, focused search field, key hints
var Accent = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}

// HoverGrey is the hover highlight paint. The stylesheet keyword "grey"
// normalizes to this hex in the value layer.
const HoverGrey = "#808080"

// HoverHighlightOpacity is the faint wash applied while a zone is hovered.
const HoverHighlightOpacity = 0.05

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains text/shape indicators for status states.
// These symbols provide visual cues beyond color for colorblind accessibility.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
	Pending string
}

// StatusIndicators provides accessible shape/text indicators alongside colors.
// ACCESSIBILITY: ASCII-only indicators for maximum compatibility.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Pending: "[ ]",
}

// =============================================================================
// OPACITY EMULATION
// =============================================================================

// WithOpacity composites fg over bg at the given alpha and returns the
// resulting hex color. Terminal cells have no alpha channel, so paints
// declared with a fractional opacity are pre-blended against the known
// background before they reach the renderer.
func WithOpacity(fg, bg string, alpha float64) string {
	if alpha <= 0 {
		return bg
	}
	if alpha >= 1 {
		return fg
	}
	f, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	return b.BlendRgb(f, alpha).Clamped().Hex()
}

// TokenPaint resolves a color token and its companion opacity token,
// blended over the given background. Unknown tokens blend as no paint.
func TokenPaint(colorTok, opacityTok Token, m Mode, bg string) string {
	c := Resolve(colorTok, m)
	o := Resolve(opacityTok, m)
	if !c.IsColor() {
		return bg
	}
	return WithOpacity(c.Hex, bg, o.Opacity)
}
