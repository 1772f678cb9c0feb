// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package statsview provides the review statistics dashboard for the TUI.
package statsview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/statgraph-tui/internal/logging"
	"github.com/jeranaias/statgraph-tui/internal/prefs"
	"github.com/jeranaias/statgraph-tui/internal/storage"
	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
	"github.com/jeranaias/statgraph-tui/internal/ui/graph"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// =============================================================================
// DASHBOARD STATE
// =============================================================================

// State represents the current state of the dashboard.
type State int

const (
	StateLoading State = iota // Query in flight
	StateReady                // Showing data
	StateError                // Showing a load failure
)

// Terminal cells are mapped onto the px-denominated breakpoints at a
// fixed scale: one column is 8px wide and one row 16px tall. An
// 80-column terminal therefore resolves like a 640px window, which
// lands it in the narrow-layout range.
const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

// =============================================================================
// DASHBOARD MODEL
// =============================================================================

// panelSlot pairs a panel with the hit geometry of its last render.
type panelSlot struct {
	panel *graph.Panel
	hits  *graph.HitMap
}

// Model is the Bubble Tea model for the statistics dashboard.
type Model struct {
	// State
	state   State
	lastErr error

	// Styling. comp is re-resolved on resize and print toggles; theme
	// is rebuilt on mode flips.
	theme *styles.Theme
	mode  styles.Mode
	comp  *cascade.Computed

	// Dimensions
	width  int
	height int

	// Review store
	store *storage.Store

	// UI components
	rangeBox *graph.RangeBox
	tooltip  *graph.Tooltip
	spinner  *graph.Spinner
	viewport viewport.Model

	// Charts, in display order.
	slots []panelSlot

	// Key bindings
	keyMap KeyMap

	// Hover tracking. hoverSlot is an index into slots, -1 for none.
	mouseX, mouseY int
	hoverSlot      int
	hoverCol       int

	// Print preview applies the print sheet and unpins the range box.
	printPreview bool

	// Help overlay
	showHelp bool

	// Preference watcher plumbing. Events are funneled through a
	// channel so they surface as messages inside Update.
	prefsEvents chan struct{}
	watcher     prefs.FileWatcher

	// Data totals for the status bar.
	total int
}

// New creates the dashboard model. Preferences supply the starting
// mode, span and deck filter; the watcher keeps them live while the
// dashboard runs. A watcher failure is logged and the dashboard runs
// without live reload.
func New(store *storage.Store) Model {
	p := prefs.Global()
	mode := p.EffectiveMode()
	theme := styles.NewTheme(mode, styles.HostVars{})

	rb := graph.NewRangeBox(theme, p.DefaultSearch, p.DefaultSpanDays)
	rb.SetNight(mode == styles.ModeDark)

	counts := graph.NewPanel("REVIEW COUNTS")
	counts.Subtitle = "answered per day"
	counts.ShowLegend = true
	counts.NoDataText = "no reviews in range"

	overview := graph.NewPanel("ALL HISTORY")
	overview.HideDomain = true
	overview.NoDataText = "no reviews yet"

	m := Model{
		state:     StateLoading,
		theme:     theme,
		mode:      mode,
		comp:      cascade.Resolve(cascade.Viewport{Width: 80 * cellWidthPx, DeviceWidth: 80 * cellWidthPx}),
		store:     store,
		rangeBox:  rb,
		tooltip:   graph.NewTooltip(),
		spinner:   graph.NewSpinner(),
		viewport:  viewport.New(80, 22),
		keyMap:    DefaultKeyMap(),
		hoverSlot: -1,
		hoverCol:  -1,
		slots: []panelSlot{
			{panel: counts, hits: graph.NewHitMap()},
			{panel: overview, hits: graph.NewHitMap()},
		},
	}

	m.prefsEvents = make(chan struct{}, 1)
	events := m.prefsEvents
	w, err := prefs.StartWatcher(func() {
		select {
		case events <- struct{}{}:
		default:
		}
	})
	if err != nil {
		log := logging.Component("statsview")
		log.Warn().Err(err).Msg("preference watcher unavailable")
	} else {
		m.watcher = w
	}

	return m
}

// Init starts the first data load and the preference listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd(), m.spinner.Start()}
	if m.watcher != nil {
		cmds = append(cmds, waitForPrefsCmd(m.prefsEvents))
	}
	return tea.Batch(cmds...)
}

// Close releases the store and the preference watcher.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

// countsPanel returns the span-scoped chart.
func (m *Model) countsPanel() *graph.Panel {
	return m.slots[0].panel
}

// overviewPanel returns the all-history chart.
func (m *Model) overviewPanel() *graph.Panel {
	return m.slots[1].panel
}

// =============================================================================
// VIEWPORT BRIDGING
// =============================================================================

// resolveViewport maps the terminal size onto the px-denominated rule
// conditions and resolves the sheets for it.
func resolveViewport(cols, rows int, media cascade.Media) *cascade.Computed {
	widthPx := float64(cols * cellWidthPx)
	orient := cascade.Landscape
	if rows*cellHeightPx > cols*cellWidthPx {
		orient = cascade.Portrait
	}
	return cascade.Resolve(cascade.Viewport{
		Width:       widthPx,
		DeviceWidth: widthPx,
		Orientation: orient,
		Media:       media,
	})
}

// media returns the medium the dashboard currently renders for.
func (m *Model) media() cascade.Media {
	if m.printPreview {
		return cascade.MediaPrint
	}
	return cascade.MediaScreen
}

// handleResize recalculates the layout for a new terminal size.
func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.comp = resolveViewport(width, height, m.media())

	for _, s := range m.slots {
		s.panel.Width = width
	}
	m.rangeBox.SetWidth(width)

	m.viewport.Width = width
	m.viewport.Height = m.contentRows()

	m.refreshContent()
}

// barRows returns how many screen rows the pinned bar occupies, zero
// when it flows with the content instead.
func (m *Model) barRows() int {
	if m.rangeBox.Pinned(m.comp) {
		return 1
	}
	return 0
}

// contentRows returns the viewport height: everything between the
// pinned bar and the status line.
func (m *Model) contentRows() int {
	rows := m.height - m.barRows() - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}
