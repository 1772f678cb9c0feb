// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the statgraph TUI.
package styles

import "time"

// =============================================================================
// SPIN KEYFRAMES
// =============================================================================

// Keyframe is one stop of a rotation animation: at Percent of the
// period the element has rotated Degrees.
type Keyframe struct {
	Percent float64
	Degrees float64
}

// SpinAnimation is a looping keyframe rotation with linear timing.
// It is stateless: rotation is a pure function of elapsed time, so the
// wheel keeps turning whether or not anything is drawing it.
type SpinAnimation struct {
	Name      string
	Keyframes []Keyframe
	Period    time.Duration
}

// Spin is the loading-wheel animation: a full turn per second, forever.
var Spin = SpinAnimation{
	Name:      "spin",
	Keyframes: []Keyframe{{Percent: 0, Degrees: 0}, {Percent: 100, Degrees: 360}},
	Period:    time.Second,
}

// RotationAt returns the rotation in degrees after the given elapsed
// time, interpolating piecewise-linearly between keyframes and wrapping
// at the period. Negative elapsed times wrap backwards.
func (a SpinAnimation) RotationAt(elapsed time.Duration) float64 {
	if a.Period <= 0 || len(a.Keyframes) == 0 {
		return 0
	}
	phase := elapsed % a.Period
	if phase < 0 {
		phase += a.Period
	}
	pos := float64(phase) / float64(a.Period) * 100

	kf := a.Keyframes
	if pos <= kf[0].Percent {
		return kf[0].Degrees
	}
	for i := 1; i < len(kf); i++ {
		if pos <= kf[i].Percent {
			prev, next := kf[i-1], kf[i]
			span := next.Percent - prev.Percent
			if span <= 0 {
				return next.Degrees
			}
			t := (pos - prev.Percent) / span
			return prev.Degrees + t*(next.Degrees-prev.Degrees)
		}
	}
	return kf[len(kf)-1].Degrees
}

// SpinnerFrames are the glyphs for one revolution, one per quarter turn.
var SpinnerFrames = []string{"|", "/", "-", "\\"}

// FrameAt maps the rotation at the given elapsed time onto a frame set.
func (a SpinAnimation) FrameAt(elapsed time.Duration, frames []string) string {
	if len(frames) == 0 {
		return ""
	}
	deg := a.RotationAt(elapsed)
	idx := int(deg/360*float64(len(frames))) % len(frames)
	if idx < 0 {
		idx += len(frames)
	}
	return frames[idx]
}

// =============================================================================
// SPINNER VISIBILITY
// =============================================================================

// The loading wheel is shown and hidden purely through opacity; its
// rotation never pauses. Activation fades in over SpinnerFadeIn, while
// deactivation snaps to invisible with no fade. The asymmetry is
// intentional: work finishing should clear the screen immediately.
const (
	SpinnerOpacityIdle   = 0.0
	SpinnerOpacityActive = 0.5
)

// SpinnerFadeIn is how long the activate-edge fade takes.
const SpinnerFadeIn = time.Second

// SpinnerOpacity returns the wheel's opacity given the active flag and
// the time since the last activation edge.
func SpinnerOpacity(active bool, sinceActivate time.Duration) float64 {
	if !active {
		return SpinnerOpacityIdle
	}
	if sinceActivate >= SpinnerFadeIn {
		return SpinnerOpacityActive
	}
	if sinceActivate <= 0 {
		return SpinnerOpacityIdle
	}
	t := float64(sinceActivate) / float64(SpinnerFadeIn)
	return SpinnerOpacityActive * EaseLinear(t)
}

// =============================================================================
// TRANSITION EFFECTS
// =============================================================================

// EasingFunc maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// Transition defines a timed property change.
type Transition struct {
	Duration time.Duration
	Easing   EasingFunc
}

// SpinnerFade is the activate-edge envelope. There is no deactivate
// transition on purpose.
var SpinnerFade = Transition{
	Duration: SpinnerFadeIn,
	Easing:   EaseLinear,
}
