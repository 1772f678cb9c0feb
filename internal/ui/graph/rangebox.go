// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package graph provides the chart components for the statgraph TUI.
package graph

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// =============================================================================
// RANGE SELECTOR BAR
// =============================================================================

// Span is one selectable review range.
type Span struct {
	Label string
	Days  int // 0 means all history
}

// DefaultSpans returns the built-in range choices.
func DefaultSpans() []Span {
	return []Span{
		{Label: "1m", Days: 30},
		{Label: "1y", Days: 365},
		{Label: "all", Days: 0},
	}
}

// RangeBox is the range selector pinned above the graphs: the span
// buttons plus the deck search field. Whether the bar actually pins,
// how much space it reserves, and how tightly it renders all come from
// the computed styles, so the same component serves the interactive
// view and the print/export layouts.
type RangeBox struct {
	search  textinput.Model
	spans   []Span
	spanIdx int
	focused bool
	night   bool
}

// NewRangeBox creates a range selector with the given starting filter
// and span. A starting span with no built-in button gets its own
// leading button, so preferences outside the standard choices survive.
func NewRangeBox(th *styles.Theme, defaultSearch string, defaultDays int) *RangeBox {
	ti := textinput.New()
	ti.Placeholder = "deck:..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 24
	ti.PromptStyle = th.SearchPrompt
	ti.PlaceholderStyle = th.ShortcutDesc
	ti.Cursor.Style = th.SearchPrompt
	ti.SetValue(defaultSearch)

	spans := DefaultSpans()
	idx := -1
	for i, sp := range spans {
		if sp.Days == defaultDays {
			idx = i
			break
		}
	}
	if idx == -1 {
		spans = append([]Span{{Label: fmt.Sprintf("%dd", defaultDays), Days: defaultDays}}, spans...)
		idx = 0
	}

	return &RangeBox{
		search:  ti,
		spans:   spans,
		spanIdx: idx,
	}
}

// =============================================================================
// FOCUS AND INPUT
// =============================================================================

// Focus moves keyboard input into the search field.
func (r *RangeBox) Focus() tea.Cmd {
	r.focused = true
	return r.search.Focus()
}

// Blur returns keyboard input to the graph shortcuts.
func (r *RangeBox) Blur() {
	r.focused = false
	r.search.Blur()
}

// Focused returns whether the search field owns keyboard input.
func (r *RangeBox) Focused() bool {
	return r.focused
}

// Update feeds a message to the search field while it is focused.
func (r *RangeBox) Update(msg tea.Msg) tea.Cmd {
	if !r.focused {
		return nil
	}
	var cmd tea.Cmd
	r.search, cmd = r.search.Update(msg)
	return cmd
}

// Search returns the current deck filter text.
func (r *RangeBox) Search() string {
	return strings.TrimSpace(r.search.Value())
}

// SetSearch replaces the deck filter text.
func (r *RangeBox) SetSearch(value string) {
	r.search.SetValue(value)
}

// SetWidth resizes the search field.
func (r *RangeBox) SetWidth(width int) {
	w := width - 20
	if w < 12 {
		w = 12
	}
	if w > 40 {
		w = 40
	}
	r.search.Width = w
}

// =============================================================================
// SPAN SELECTION
// =============================================================================

// SpanDays returns the selected span in days, 0 for all history.
func (r *RangeBox) SpanDays() int {
	return r.spans[r.spanIdx].Days
}

// SpanLabel returns the selected span's button label.
func (r *RangeBox) SpanLabel() string {
	return r.spans[r.spanIdx].Label
}

// CycleSpan advances to the next span choice, wrapping around.
func (r *RangeBox) CycleSpan() {
	r.spanIdx = (r.spanIdx + 1) % len(r.spans)
}

// Spans returns the available choices in display order.
func (r *RangeBox) Spans() []Span {
	return r.spans
}

// SetNight updates the bar's mode indicator.
func (r *RangeBox) SetNight(on bool) {
	r.night = on
}

// =============================================================================
// COMPUTED-STYLE QUERIES
// =============================================================================

// Pinned reports whether the bar stays at the top while the graphs
// scroll. Print layouts unpin it so it flows with the page instead of
// repeating on every sheet.
func (r *RangeBox) Pinned(comp *cascade.Computed) bool {
	v, ok := comp.Get(cascade.RangeBox, cascade.PropPosition)
	return !ok || v.Is("fixed")
}

// PadLines returns how many rows to reserve under the pinned bar so
// the first graph never slides beneath it. One em of reserved height
// is one terminal row.
func (r *RangeBox) PadLines(comp *cascade.Computed) int {
	v, ok := comp.Get(cascade.RangeBoxPad, cascade.PropHeight)
	if !ok || v.Kind != cascade.KindEm {
		return 1
	}
	rows := int(v.Amount + 0.5)
	if rows < 1 {
		rows = 1
	}
	return rows
}

// compact reports whether the bar's controls shrink, the small-device
// portrait treatment.
func (r *RangeBox) compact(comp *cascade.Computed) bool {
	v, ok := comp.Get(cascade.RangeBoxInner, cascade.PropFontSize)
	return ok && v.Is("smaller")
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the selector bar for the given theme and computed
// styles.
func (r *RangeBox) View(th *styles.Theme, comp *cascade.Computed) string {
	compact := r.compact(comp)

	sep := " | "
	if compact {
		sep = "|"
	}

	var buttons []string
	for i, sp := range r.spans {
		if i == r.spanIdx {
			buttons = append(buttons, th.SpanActive.Render(sp.Label))
		} else {
			buttons = append(buttons, th.SpanInactive.Render(sp.Label))
		}
	}

	mode := "[day]"
	if r.night {
		mode = "[night]"
	}

	row := strings.Join(buttons, th.SpanInactive.Render(sep)) +
		"  " + r.search.View() +
		"  " + th.ShortcutDesc.Render(mode)

	inner := th.RangeBoxInner
	if compact {
		inner = inner.Padding(0)
	}
	return th.RangeBox.Render(inner.Render(row))
}
