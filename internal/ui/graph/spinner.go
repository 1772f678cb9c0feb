// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package graph provides the chart components for the statgraph TUI.
package graph

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// =============================================================================
// LOADING WHEEL
// =============================================================================

// SpinnerTickMsg requests a redraw while the wheel is fading or turning.
type SpinnerTickMsg time.Time

// spinnerFPS is the redraw cadence. The wheel itself is clocked off
// wall time, so a dropped tick skews nothing.
const spinnerFPS = 100 * time.Millisecond

// Spinner is the loading wheel shown while review data is being
// queried. Its rotation is a pure function of wall time measured from
// one fixed epoch: starting, stopping and redraw hitches never reset
// the wheel mid-turn. Visibility is opacity only. Activation fades the
// wheel in; deactivation hides it on the very next frame.
type Spinner struct {
	epoch time.Time

	active      bool
	activatedAt time.Time
}

// NewSpinner creates a spinner. The rotation epoch is fixed here.
func NewSpinner() *Spinner {
	return &Spinner{epoch: time.Now()}
}

// Start activates the wheel and begins the fade-in. Starting an
// already-active wheel is a no-op so the fade never restarts mid-ramp.
func (s *Spinner) Start() tea.Cmd {
	if s.active {
		return nil
	}
	s.active = true
	s.activatedAt = time.Now()
	return s.TickCmd()
}

// Stop hides the wheel. There is no fade-out: finishing work should
// clear the screen immediately.
func (s *Spinner) Stop() {
	s.active = false
}

// IsActive returns whether the wheel is visible (or fading in).
func (s *Spinner) IsActive() bool {
	return s.active
}

// TickCmd schedules the next redraw tick.
func (s *Spinner) TickCmd() tea.Cmd {
	return tea.Tick(spinnerFPS, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// Rotation returns the wheel angle in degrees at the given instant.
// The angle depends only on the epoch, never on visibility.
func (s *Spinner) Rotation(now time.Time) float64 {
	return styles.Spin.RotationAt(now.Sub(s.epoch))
}

// Frame returns the glyph for the wheel angle at the given instant.
func (s *Spinner) Frame(now time.Time) string {
	return styles.Spin.FrameAt(now.Sub(s.epoch), styles.SpinnerFrames)
}

// Opacity returns the wheel opacity at the given instant: zero when
// idle, ramping linearly to the active level over the fade-in window.
func (s *Spinner) Opacity(now time.Time) float64 {
	return styles.SpinnerOpacity(s.active, now.Sub(s.activatedAt))
}

// View renders the wheel, or nothing while it is invisible. Terminal
// cells have no alpha channel, so the fade-in ramp renders faint until
// the wheel reaches full strength.
func (s *Spinner) View(now time.Time, th *styles.Theme) string {
	op := s.Opacity(now)
	if op <= styles.SpinnerOpacityIdle {
		return ""
	}
	style := th.Spinner
	if op < styles.SpinnerOpacityActive {
		style = style.Faint(true)
	}
	return style.Render(s.Frame(now) + " loading")
}
