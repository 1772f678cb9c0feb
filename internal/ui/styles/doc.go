// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the statgraph TUI.

This package defines the graph theme tokens, the adaptive color palette,
the loading-wheel animation model, and the Theme that bundles resolved
lip gloss styles for one concrete mode.

# Theme Tokens (tokens.go)

Four themed values drive the chart body; everything else inherits from
the host. Each token has a light and a dark variant:

	area-fill            #000000 / #ffffff
	area-fill-opacity    0.03    / 0.08
	area-stroke          #000000 / #000000
	area-stroke-opacity  0.08    / 0.18

Resolution is a pure lookup:

	v := styles.Resolve(styles.TokenAreaFillOpacity, styles.ModeDark)
	// v.Opacity == 0.08

Unknown tokens resolve to the zero TokenValue (no paint) rather than
panicking, and nothing is cached, so a mode flip is visible on the next
call.

The graph surfaces also consume three host-owned variables, never
defining them: --text-fg, --tooltip-bg and --window-bg. HostVars carries
them with per-field fallbacks.

# Color System (colors.go)

All palette entries are Lip Gloss AdaptiveColor pairs. The Theme picks a
side from its mode explicitly instead of relying on terminal detection,
so a night-mode preference always wins.

Terminal cells have no alpha channel; WithOpacity pre-blends a paint
over the known background:

	hex := styles.WithOpacity("#000000", "#f5f5f5", 0.03)

# Animation System (animations.go)

The loading wheel is a keyframe rotation (0% -> 0deg, 100% -> 360deg,
1s, linear, infinite) whose angle is a pure function of elapsed time.
Visibility is a separate opacity envelope: 0 when idle, fading to 0.5
over one second on activation, snapping straight back to 0 on
deactivation. Because the two are independent, the wheel is mid-spin
wherever it reappears.

# Theme (theme.go)

	theme := styles.NewTheme(styles.ModeDark, styles.HostVars{})
	theme.SetSize(120, 40)
	out := theme.Tooltip.Render("3 reviews")
*/
package styles
