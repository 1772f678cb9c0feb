// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the statgraph TUI.
package styles

import (
	"math"
	"testing"
	"time"
)

// =============================================================================
// SPIN KEYFRAME TESTS
// =============================================================================

func TestSpinRotationAt(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"start", 0, 0},
		{"quarter", 250 * time.Millisecond, 90},
		{"half", 500 * time.Millisecond, 180},
		{"three quarters", 750 * time.Millisecond, 270},
		{"wraps at period", time.Second, 0},
		{"second revolution", 1250 * time.Millisecond, 90},
		{"many revolutions", 10*time.Second + 500*time.Millisecond, 180},
		{"negative wraps back", -250 * time.Millisecond, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spin.RotationAt(tt.elapsed)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("RotationAt(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestSpinRotationIsPeriodic(t *testing.T) {
	// The wheel position depends only on elapsed time modulo the
	// period; no state accumulates between calls.
	for _, elapsed := range []time.Duration{0, 137 * time.Millisecond, 999 * time.Millisecond} {
		a := Spin.RotationAt(elapsed)
		b := Spin.RotationAt(elapsed + Spin.Period)
		c := Spin.RotationAt(elapsed + 7*Spin.Period)
		if math.Abs(a-b) > 1e-6 || math.Abs(a-c) > 1e-6 {
			t.Errorf("rotation not periodic at %v: %v, %v, %v", elapsed, a, b, c)
		}
	}
}

func TestSpinRotationLinearTiming(t *testing.T) {
	// Linear timing: equal time steps produce equal angle steps.
	step := 100 * time.Millisecond
	prev := Spin.RotationAt(0)
	for i := 1; i < 10; i++ {
		cur := Spin.RotationAt(time.Duration(i) * step)
		if math.Abs((cur-prev)-36) > 1e-6 {
			t.Fatalf("step %d: delta = %v, want 36", i, cur-prev)
		}
		prev = cur
	}
}

func TestFrameAtQuarterTurns(t *testing.T) {
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
	for _, tt := range tests {
		if got := Spin.FrameAt(tt.elapsed, SpinnerFrames); got != tt.want {
			t.Errorf("FrameAt(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestFrameAtEmptyFrames(t *testing.T) {
	if got := Spin.FrameAt(time.Second, nil); got != "" {
		t.Errorf("FrameAt with no frames = %q, want empty", got)
	}
}

func TestRotationDegenerateAnimation(t *testing.T) {
	var a SpinAnimation
	if got := a.RotationAt(time.Second); got != 0 {
		t.Errorf("zero-value animation rotation = %v, want 0", got)
	}
}

// =============================================================================
// SPINNER VISIBILITY TESTS
// =============================================================================

func TestSpinnerOpacityRampsOverOneSecond(t *testing.T) {
	tests := []struct {
		name  string
		since time.Duration
		want  float64
	}{
		{"at activation", 0, 0},
		{"quarter ramp", 250 * time.Millisecond, 0.125},
		{"half ramp", 500 * time.Millisecond, 0.25},
		{"full ramp", time.Second, 0.5},
		{"long after", time.Minute, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpinnerOpacity(true, tt.since)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SpinnerOpacity(true, %v) = %v, want %v", tt.since, got, tt.want)
			}
		})
	}
}

func TestSpinnerOpacityDeactivationSnaps(t *testing.T) {
	// No fade-out: inactive is 0 regardless of how recently it was
	// active or how far the fade-in had gotten.
	for _, since := range []time.Duration{0, 100 * time.Millisecond, 900 * time.Millisecond, time.Hour} {
		if got := SpinnerOpacity(false, since); got != SpinnerOpacityIdle {
			t.Errorf("SpinnerOpacity(false, %v) = %v, want 0", since, got)
		}
	}
}

func TestSpinnerOpacityNeverExceedsActive(t *testing.T) {
	for ms := 0; ms <= 3000; ms += 50 {
		got := SpinnerOpacity(true, time.Duration(ms)*time.Millisecond)
		if got < 0 || got > SpinnerOpacityActive {
			t.Fatalf("opacity %v at %dms out of range [0, 0.5]", got, ms)
		}
	}
}

func TestRotationIndependentOfVisibility(t *testing.T) {
	// Toggling visibility must not disturb the wheel's angle: rotation
	// is computed from the epoch, not from activation edges.
	elapsed := 650 * time.Millisecond
	before := Spin.RotationAt(elapsed)
	_ = SpinnerOpacity(true, 10*time.Millisecond)
	_ = SpinnerOpacity(false, 0)
	after := Spin.RotationAt(elapsed)
	if before != after {
		t.Errorf("rotation changed across visibility toggles: %v -> %v", before, after)
	}
}
