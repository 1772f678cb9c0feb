// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the statgraph application.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: All layout math uses display cells, not runes or bytes.
// Axis labels and deck names can contain wide characters; counting
// runes would misalign every column to their right.

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates s to at most max display cells, appending
// ".." when something was cut.
func TruncateWidth(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 2 {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, "..")
}

// PadWidth pads s with spaces on the right to exactly w display cells,
// truncating first when it is too wide.
func PadWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = TruncateWidth(s, w)
	return s + strings.Repeat(" ", w-runewidth.StringWidth(s))
}

// CenterWidth centers s within w display cells. Odd leftover space
// goes to the right, matching how centered SVG text rounds.
func CenterWidth(s string, w int) string {
	sw := runewidth.StringWidth(s)
	if sw >= w {
		return TruncateWidth(s, w)
	}
	left := (w - sw) / 2
	right := w - sw - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
