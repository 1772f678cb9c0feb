// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the statgraph TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the dashboard, resolved for
// one concrete mode. Unlike AdaptiveColor's automatic detection, the
// side of each color pair is chosen from the mode explicitly; the night
// toggle rebuilds the theme and every consumer picks up the flip on the
// next render.
type Theme struct {
	Mode Mode
	Host HostVars

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Window lipgloss.Style

	// ==========================================================================
	// RANGE BOX (pinned header) STYLES
	// ==========================================================================

	RangeBox      lipgloss.Style
	RangeBoxInner lipgloss.Style
	SpanActive    lipgloss.Style
	SpanInactive  lipgloss.Style
	SearchPrompt  lipgloss.Style

	// ==========================================================================
	// GRAPH PANEL STYLES
	// ==========================================================================

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Legend   lipgloss.Style
	Tick     lipgloss.Style
	Axis     lipgloss.Style
	NoData   lipgloss.Style

	// ==========================================================================
	// INTERACTION STYLES
	// ==========================================================================

	Tooltip     lipgloss.Style
	HoverColumn lipgloss.Style
	Spinner     lipgloss.Style
	Clickable   lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// Pre-blended paints for the chart body.
	AreaFillHex   string
	AreaStrokeHex string
	HoverFillHex  string
}

// DetectMode probes the terminal background, the path taken when the
// mode preference is "auto".
func DetectMode() Mode {
	if termenv.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

// NewTheme builds a theme for a concrete mode. Host variables the
// caller leaves empty are filled from the built-in fallbacks.
func NewTheme(mode Mode, host HostVars) *Theme {
	t := &Theme{
		Mode: mode,
		Host: host.WithDefaults(mode),
	}
	t.initStyles()
	return t
}

// pick selects the side of an adaptive pair matching the theme's mode.
func (t *Theme) pick(c lipgloss.AdaptiveColor) lipgloss.Color {
	if t.Mode == ModeDark {
		return lipgloss.Color(c.Dark)
	}
	return lipgloss.Color(c.Light)
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	windowBg := lipgloss.Color(t.Host.WindowBg)

	// Pre-blend the token paints once per theme build; they change only
	// with the mode or the host background.
	t.AreaFillHex = TokenPaint(TokenAreaFill, TokenAreaFillOpacity, t.Mode, t.Host.WindowBg)
	t.AreaStrokeHex = TokenPaint(TokenAreaStroke, TokenAreaStrokeOpacity, t.Mode, t.Host.WindowBg)
	t.HoverFillHex = WithOpacity(HoverGrey, t.Host.WindowBg, HoverHighlightOpacity)

	// Containers
	t.App = lipgloss.NewStyle()
	t.Window = lipgloss.NewStyle().Background(windowBg)

	// Range box: pinned to the top, full width, centered content. The
	// background mirrors the host window so it reads as chrome.
	t.RangeBox = lipgloss.NewStyle().
		Background(t.pick(SurfaceDim)).
		Foreground(t.pick(TextPrimary)).
		Align(lipgloss.Center)

	t.RangeBoxInner = lipgloss.NewStyle().
		Padding(0, 1)

	t.SpanActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.pick(Accent))

	t.SpanInactive = lipgloss.NewStyle().
		Foreground(t.pick(TextSecondary))

	t.SearchPrompt = lipgloss.NewStyle().
		Foreground(t.pick(Accent))

	// Graph panels
	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.pick(TextPrimary))

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.pick(TextSecondary)).
		Align(lipgloss.Center)

	t.Legend = lipgloss.NewStyle().
		Foreground(t.pick(TextSecondary)).
		Align(lipgloss.Center)

	t.Tick = lipgloss.NewStyle().
		Foreground(t.pick(TextSecondary))

	t.Axis = lipgloss.NewStyle().
		Foreground(t.pick(Overlay))

	t.NoData = lipgloss.NewStyle().
		Foreground(lipgloss.Color(HoverGrey)).
		Background(windowBg).
		Align(lipgloss.Center)

	// Interaction
	t.Tooltip = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Host.TextFg)).
		Background(lipgloss.Color(t.Host.TooltipBg)).
		Padding(0, 1)

	t.HoverColumn = lipgloss.NewStyle().
		Background(lipgloss.Color(t.HoverFillHex))

	t.Spinner = lipgloss.NewStyle().
		Foreground(t.pick(TextSecondary))

	t.Clickable = lipgloss.NewStyle().
		Underline(true).
		Foreground(t.pick(Accent))

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(t.pick(SurfaceDim)).
		Foreground(t.pick(TextSecondary))

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.pick(Accent))

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(t.pick(TextMuted))
}

// SetSize updates width-dependent styles after a terminal resize.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
	t.RangeBox = t.RangeBox.Width(width)
	t.StatusBar = t.StatusBar.Width(width)
}

// EaseColor returns the series color for an answer-ease bucket (1-4).
func (t *Theme) EaseColor(ease int) lipgloss.Color {
	switch ease {
	case 1:
		return t.pick(EaseAgain)
	case 2:
		return t.pick(EaseHard)
	case 3:
		return t.pick(EaseGood)
	default:
		return t.pick(EaseEasy)
	}
}
