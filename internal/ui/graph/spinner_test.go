// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package graph provides the chart components for the statgraph TUI.
package graph

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER TESTS
// =============================================================================

func testTheme() *styles.Theme {
	return styles.NewTheme(styles.ModeLight, styles.HostVars{})
}

func TestNewSpinner(t *testing.T) {
	s := NewSpinner()

	if s.active {
		t.Error("NewSpinner() should not be active initially")
	}
	if s.epoch.IsZero() {
		t.Error("NewSpinner() should fix the rotation epoch")
	}
}

func TestSpinner_RotationIgnoresVisibility(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &Spinner{epoch: base}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"at epoch", 0, 0},
		{"quarter turn", 250 * time.Millisecond, 90},
		{"half turn", 500 * time.Millisecond, 180},
		{"full turn wraps", time.Second, 0},
		{"second revolution", 1250 * time.Millisecond, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Rotation(base.Add(tc.elapsed))
			if got != tc.want {
				t.Errorf("Rotation(+%v) = %v, want %v", tc.elapsed, got, tc.want)
			}
		})
	}

	// Starting and stopping must not touch the wheel angle.
	before := s.Rotation(base.Add(250 * time.Millisecond))
	s.Start()
	s.Stop()
	after := s.Rotation(base.Add(250 * time.Millisecond))
	if before != after {
		t.Errorf("rotation changed across Start/Stop: %v != %v", before, after)
	}
}

func TestSpinner_Frames(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &Spinner{epoch: base}

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "|"},
		{250 * time.Millisecond, "/"},
		{500 * time.Millisecond, "-"},
		{750 * time.Millisecond, "\\"},
		{time.Second, "|"},
	}

	for _, tc := range tests {
		got := s.Frame(base.Add(tc.elapsed))
		if got != tc.want {
			t.Errorf("Frame(+%v) = %q, want %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestSpinner_StartFadesIn(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &Spinner{epoch: base, active: true, activatedAt: base}

	if got := s.Opacity(base); got != styles.SpinnerOpacityIdle {
		t.Errorf("Opacity at activation = %v, want %v", got, styles.SpinnerOpacityIdle)
	}
	if got := s.Opacity(base.Add(500 * time.Millisecond)); got != 0.25 {
		t.Errorf("Opacity mid-fade = %v, want 0.25", got)
	}
	if got := s.Opacity(base.Add(time.Second)); got != styles.SpinnerOpacityActive {
		t.Errorf("Opacity after fade = %v, want %v", got, styles.SpinnerOpacityActive)
	}
	if got := s.Opacity(base.Add(time.Minute)); got != styles.SpinnerOpacityActive {
		t.Errorf("Opacity long after fade = %v, want %v", got, styles.SpinnerOpacityActive)
	}
}

func TestSpinner_StartWhileActiveKeepsFade(t *testing.T) {
	s := NewSpinner()

	cmd := s.Start()
	if cmd == nil {
		t.Fatal("Start() should return a tick command")
	}
	first := s.activatedAt

	if again := s.Start(); again != nil {
		t.Error("Start() on an active spinner should be a no-op")
	}
	if !s.activatedAt.Equal(first) {
		t.Error("second Start() must not restart the fade")
	}
}

func TestSpinner_StopSnapsOff(t *testing.T) {
	s := NewSpinner()
	s.Start()
	s.Stop()

	if s.IsActive() {
		t.Error("spinner should be inactive after Stop()")
	}

	// No fade-out: opacity is idle immediately, at any later instant.
	now := time.Now()
	if got := s.Opacity(now); got != styles.SpinnerOpacityIdle {
		t.Errorf("Opacity after Stop() = %v, want %v", got, styles.SpinnerOpacityIdle)
	}
	if got := s.View(now, testTheme()); got != "" {
		t.Errorf("View after Stop() = %q, want empty", got)
	}
}

func TestSpinner_View(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	th := testTheme()

	idle := &Spinner{epoch: base}
	if got := idle.View(base.Add(time.Second), th); got != "" {
		t.Errorf("idle View = %q, want empty", got)
	}

	active := &Spinner{epoch: base, active: true, activatedAt: base}
	view := active.View(base.Add(2*time.Second), th)
	if !strings.Contains(view, "loading") {
		t.Errorf("active View = %q, want it to contain %q", view, "loading")
	}
}
