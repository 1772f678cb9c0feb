// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package statsview provides the review statistics dashboard for the TUI.
package statsview

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/statgraph-tui/internal/logging"
	"github.com/jeranaias/statgraph-tui/internal/prefs"
	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
	"github.com/jeranaias/statgraph-tui/internal/ui/graph"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// queryTimeout bounds one load round trip.
const queryTimeout = 10 * time.Second

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// loadCmd creates a command that runs the full query round trip for
// the current filter and span.
func (m *Model) loadCmd() tea.Cmd {
	store := m.store
	search := m.rangeBox.Search()
	days := m.rangeBox.SpanDays()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		counts, err := store.DayCounts(ctx, search, days)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		history, err := store.DayCounts(ctx, search, 0)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		breakdown, err := store.EaseBreakdown(ctx, search, days)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		total, err := store.CountReviews(ctx, search)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}

		return DataLoadedMsg{
			Counts:    counts,
			History:   history,
			Breakdown: breakdown,
			Total:     total,
		}
	}
}

// waitForPrefsCmd creates a command that blocks until the preference
// watcher fires, then surfaces the event as a message. Update re-arms
// it after every delivery.
func waitForPrefsCmd(events <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-events
		return PrefsChangedMsg{}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case graph.SpinnerTickMsg:
		if !m.spinner.IsActive() {
			return m, nil
		}
		return m, m.spinner.TickCmd()

	case DataLoadedMsg:
		m.spinner.Stop()
		m.state = StateReady
		m.lastErr = nil
		m.total = msg.Total
		m.applyData(msg)
		m.refreshContent()
		return m, nil

	case LoadErrorMsg:
		m.spinner.Stop()
		m.state = StateError
		m.lastErr = msg.Err
		log := logging.Component("statsview")
		log.Error().Err(msg.Err).Msg("review query failed")
		return m, nil

	case PrefsChangedMsg:
		cmd := m.applyPrefsChange()
		if m.watcher != nil {
			return m, tea.Batch(cmd, waitForPrefsCmd(m.prefsEvents))
		}
		return m, cmd
	}

	return m, nil
}

// applyData distributes one query result across the panels.
func (m *Model) applyData(msg DataLoadedMsg) {
	counts := m.countsPanel()
	counts.Series = msg.Counts
	counts.Breakdown = msg.Breakdown
	counts.Hovered = -1

	overview := m.overviewPanel()
	overview.Series = msg.History
	overview.Hovered = -1

	m.hoverSlot = -1
	m.hoverCol = -1
	m.tooltip.Hide()
}

// applyPrefsChange reloads the preference file and applies what can
// change mid-session: the color mode. Span and filter edits only seed
// new sessions; the live controls stay as the user set them.
func (m *Model) applyPrefsChange() tea.Cmd {
	if err := prefs.ReloadGlobal(); err != nil {
		log := logging.Component("statsview")
		log.Warn().Err(err).Msg("preference reload failed")
		return nil
	}

	mode := prefs.Global().EffectiveMode()
	if mode != m.mode {
		m.setMode(mode)
	}
	m.refreshContent()
	return nil
}

// setMode rebuilds the theme for a color mode flip.
func (m *Model) setMode(mode styles.Mode) {
	m.mode = mode
	m.theme = styles.NewTheme(mode, styles.HostVars{})
	m.theme.SetSize(m.width, m.height)
	m.rangeBox.SetNight(mode == styles.ModeDark)
}

// reload kicks off a fresh query for the current filter and span.
func (m *Model) reload() tea.Cmd {
	m.state = StateLoading
	return tea.Batch(m.loadCmd(), m.spinner.Start())
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search focus routes everything to the input except the two exits.
	if m.rangeBox.Focused() {
		switch {
		case key.Matches(msg, m.keyMap.Submit):
			m.rangeBox.Blur()
			return m, m.reload()
		case key.Matches(msg, m.keyMap.Blur):
			m.rangeBox.Blur()
			m.refreshContent()
			return m, nil
		default:
			cmd := m.rangeBox.Update(msg)
			m.refreshContent()
			return m, cmd
		}
	}

	if m.showHelp {
		// Any key leaves the help overlay.
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Search):
		cmd := m.rangeBox.Focus()
		m.refreshContent()
		return m, cmd

	case key.Matches(msg, m.keyMap.Span):
		m.rangeBox.CycleSpan()
		m.refreshContent()
		return m, m.reload()

	case key.Matches(msg, m.keyMap.Night):
		next := styles.ModeDark
		if m.mode == styles.ModeDark {
			next = styles.ModeLight
		}
		m.setMode(next)
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keyMap.Print):
		m.printPreview = !m.printPreview
		m.comp = resolveViewport(m.width, m.height, m.media())
		m.viewport.Height = m.contentRows()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
	}

	return m, nil
}

// =============================================================================
// MOUSE HANDLING
// =============================================================================

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.viewport.LineUp(3)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.viewport.LineDown(3)
		return m, nil
	case msg.Action == tea.MouseActionMotion:
		m.mouseX = msg.X
		m.mouseY = msg.Y
		m.updateHover()
		return m, nil
	}
	return m, nil
}

// updateHover hit-tests the pointer against the panel geometry and
// moves the highlight and tooltip. Hover state only changes when the
// resolved target changes, so plain motion inside one column never
// forces a re-render.
func (m *Model) updateHover() {
	slot, col := m.locate(m.mouseX, m.mouseY)
	if slot == m.hoverSlot && col == m.hoverCol {
		return
	}

	m.hoverSlot = slot
	m.hoverCol = col
	for i, s := range m.slots {
		if i == slot {
			s.panel.Hovered = col
		} else {
			s.panel.Hovered = -1
		}
	}

	if slot >= 0 && col >= 0 {
		buckets := m.slots[slot].panel.Buckets()
		if col < len(buckets) {
			m.tooltip.Show(buckets[col].Label())
		}
	} else {
		m.tooltip.Hide()
	}

	m.refreshContent()
}

// locate translates screen coordinates into content coordinates and
// consults each panel's hit geometry.
func (m *Model) locate(x, y int) (slot, col int) {
	top := m.barRows()
	if y < top || y >= top+m.viewport.Height {
		return -1, -1
	}

	cx := x
	cy := y - top + m.viewport.YOffset

	for i, s := range m.slots {
		if hit, ok := s.hits.Locate(cx, cy, m.comp); ok {
			if hit.Element == cascade.HoverRect {
				return i, hit.Column
			}
		}
	}
	return -1, -1
}
