// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package graph provides the chart components for the statgraph TUI.
package graph

import (
	"strings"

	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// =============================================================================
// HOVER TOOLTIP
// =============================================================================

// Tooltip is the shared hover readout. It starts invisible and is never
// registered in the hit map: the pointer always passes through it, so a
// tooltip can never occlude the hover zone that raised it.
type Tooltip struct {
	visible bool
	lines   []string
}

// NewTooltip creates a hidden tooltip.
func NewTooltip() *Tooltip {
	return &Tooltip{}
}

// Show makes the tooltip visible with the given lines. Lines are kept
// whole; the readout never wraps.
func (t *Tooltip) Show(lines ...string) {
	t.visible = true
	t.lines = lines
}

// Hide makes the tooltip invisible.
func (t *Tooltip) Hide() {
	t.visible = false
	t.lines = nil
}

// Visible returns whether the tooltip is showing.
func (t *Tooltip) Visible() bool {
	return t.visible
}

// View renders the tooltip, or nothing while hidden. Colors come from
// the host-provided text and tooltip backgrounds so the readout matches
// the surrounding application chrome.
func (t *Tooltip) View(th *styles.Theme) string {
	if !t.visible || len(t.lines) == 0 {
		return ""
	}
	return th.Tooltip.Render(strings.Join(t.lines, "\n"))
}
