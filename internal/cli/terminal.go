// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - TTY detection and terminal capability probing.
package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal. Piped output (for
// example `statgraph export > overlay.css`) must stay free of escape
// sequences.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStderrTTY returns true if stderr is a terminal.
func IsStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Terminal width bounds for CLI output.
const (
	defaultWidth = 80
	minWidth     = 40
	maxWidth     = 120
)

// GetTerminalWidth returns the terminal width, clamped to a readable
// range, or the default when stdout is not a terminal.
func GetTerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	if w < minWidth {
		return minWidth
	}
	if w > maxWidth {
		return maxWidth
	}
	return w
}

// GetTerminalSize returns the raw terminal dimensions, falling back to
// 80x24 when they cannot be determined.
func GetTerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, 24
	}
	return w, h
}

var (
	colorsOnce     sync.Once
	colorsDetected bool
	colorsForced   *bool
)

// ColorsEnabled reports whether CLI output should use color: stdout is
// a terminal, the terminal has a color profile, and NO_COLOR is unset.
func ColorsEnabled() bool {
	if colorsForced != nil {
		return *colorsForced
	}
	colorsOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorsDetected = false
			return
		}
		colorsDetected = IsStdoutTTY() && termenv.ColorProfile() != termenv.Ascii
	})
	return colorsDetected
}

// ForceColorsEnabled overrides color detection, for --no-color and for
// tests.
func ForceColorsEnabled(enabled bool) {
	colorsForced = &enabled
}
