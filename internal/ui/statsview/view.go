// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package statsview provides the review statistics dashboard for the TUI.
package statsview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
	"github.com/jeranaias/statgraph-tui/internal/util"
)

// =============================================================================
// CONTENT COMPOSITION
// =============================================================================

// refreshContent re-renders the scrolled content and rebuilds the hit
// geometry. Every caller that changes what the charts show goes through
// here, so the hit map can never describe a stale frame.
func (m *Model) refreshContent() {
	if m.width <= 0 {
		return
	}

	var sections []string
	y := 0

	if m.rangeBox.Pinned(m.comp) {
		// The bar row itself sits outside the viewport; the pad reserves
		// whatever height remains so the first chart never starts
		// underneath the pinned bar.
		pad := m.rangeBox.PadLines(m.comp) - m.barRows()
		for i := 0; i < pad; i++ {
			sections = append(sections, "")
			y++
		}
	} else {
		// Unpinned (print layout): the bar flows with the content.
		bar := m.rangeBox.View(m.theme, m.comp)
		sections = append(sections, bar, "")
		y += lipgloss.Height(bar) + 1
	}

	for _, s := range m.slots {
		s.hits.Reset()
		sections = append(sections, s.panel.Render(m.theme, m.comp, s.hits, 0, y), "")
		y += s.panel.Height() + 1
	}

	m.viewport.SetContent(strings.Join(sections, "\n"))
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the dashboard: the pinned range bar, the scrolling chart
// viewport and the status line.
func (m Model) View() string {
	if m.width <= 0 {
		return "starting..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	if m.rangeBox.Pinned(m.comp) {
		b.WriteString(m.rangeBox.View(m.theme, m.comp))
		b.WriteString("\n")
	}
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine renders the bottom row. It doubles as the spinner slot
// while a query is in flight and as the hover readout while the pointer
// rests on a chart column.
func (m Model) statusLine() string {
	switch {
	case m.state == StateError:
		msg := fmt.Sprintf(" %s load failed: %v", styles.StatusIndicators.Error, m.lastErr)
		return m.theme.StatusBar.Render(util.TruncateWidth(msg, m.width))

	case m.state == StateLoading:
		return m.theme.StatusBar.Render(" " + m.spinner.View(time.Now(), m.theme))

	case m.tooltip.Visible():
		return m.theme.StatusBar.Render(" " + m.tooltip.View(m.theme))
	}

	var parts []string
	for _, bind := range m.keyMap.ShortHelp() {
		h := bind.Help()
		parts = append(parts, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	left := " " + strings.Join(parts, "  ")

	right := fmt.Sprintf("%d reviews [%s] ", m.total, m.rangeBox.SpanLabel())
	if m.printPreview {
		right = "print preview | " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return m.theme.StatusBar.Render(left)
	}
	return m.theme.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

// renderHelp draws the full-screen shortcut reference.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(m.theme.Title.Render("KEYBOARD SHORTCUTS"))
	b.WriteString("\n\n")

	for _, group := range m.keyMap.FullHelp() {
		for _, bind := range group {
			h := bind.Help()
			b.WriteString("  ")
			b.WriteString(m.theme.ShortcutKey.Render(util.PadWidth(h.Key, 12)))
			b.WriteString(m.theme.ShortcutDesc.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(m.theme.ShortcutDesc.Render("press any key to return"))
	return b.String()
}
