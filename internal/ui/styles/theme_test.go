// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the statgraph TUI.
package styles

import "testing"

// =============================================================================
// THEME CONSTRUCTION TESTS
// =============================================================================

func TestNewThemeFillsHostDefaults(t *testing.T) {
	theme := NewTheme(ModeDark, HostVars{})
	if theme.Mode != ModeDark {
		t.Errorf("Mode = %v, want dark", theme.Mode)
	}
	if theme.Host.TextFg == "" || theme.Host.TooltipBg == "" || theme.Host.WindowBg == "" {
		t.Errorf("host fallbacks not filled: %+v", theme.Host)
	}
}

func TestNewThemeKeepsSuppliedHostVars(t *testing.T) {
	theme := NewTheme(ModeLight, HostVars{WindowBg: "#101010"})
	if theme.Host.WindowBg != "#101010" {
		t.Errorf("supplied window bg overwritten: %q", theme.Host.WindowBg)
	}
}

func TestThemePaintsFollowMode(t *testing.T) {
	light := NewTheme(ModeLight, HostVars{})
	dark := NewTheme(ModeDark, HostVars{})
	if light.AreaFillHex == dark.AreaFillHex {
		t.Errorf("area fill identical across modes: %q", light.AreaFillHex)
	}
	if light.AreaStrokeHex == dark.AreaStrokeHex {
		t.Errorf("area stroke identical across modes: %q", light.AreaStrokeHex)
	}
}

func TestThemeHoverPaintIsFaint(t *testing.T) {
	theme := NewTheme(ModeLight, HostVars{})
	// The hover wash blends 5% grey over the window background; it must
	// differ from the background but only slightly.
	if theme.HoverFillHex == theme.Host.WindowBg {
		t.Error("hover wash should differ from the window background")
	}
	if theme.HoverFillHex == HoverGrey {
		t.Error("hover wash should not be the raw grey")
	}
}

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme(ModeLight, HostVars{})
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize not recorded: %dx%d", theme.Width, theme.Height)
	}
	if got := theme.RangeBox.GetWidth(); got != 120 {
		t.Errorf("range box width = %d, want 120", got)
	}
	if got := theme.StatusBar.GetWidth(); got != 120 {
		t.Errorf("status bar width = %d, want 120", got)
	}
}

func TestThemeStylesInitialized(t *testing.T) {
	theme := NewTheme(ModeDark, HostVars{})
	// Spot-check that rendering through key styles produces output.
	for name, s := range map[string]string{
		"Title":    theme.Title.Render("x"),
		"Subtitle": theme.Subtitle.Render("x"),
		"Tooltip":  theme.Tooltip.Render("x"),
		"NoData":   theme.NoData.Render("x"),
		"Tick":     theme.Tick.Render("x"),
	} {
		if s == "" {
			t.Errorf("%s style renders empty", name)
		}
	}
}

func TestEaseColorDistinctBuckets(t *testing.T) {
	theme := NewTheme(ModeLight, HostVars{})
	seen := map[string]int{}
	for ease := 1; ease <= 4; ease++ {
		c := string(theme.EaseColor(ease))
		if prev, dup := seen[c]; dup {
			t.Errorf("ease %d and %d share color %q", prev, ease, c)
		}
		seen[c] = ease
	}
}
