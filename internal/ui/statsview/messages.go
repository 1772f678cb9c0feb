// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package statsview provides the review statistics dashboard for the TUI.
//
// This file defines the message types the dashboard's asynchronous
// commands deliver back into Update.
package statsview

import (
	"github.com/jeranaias/statgraph-tui/internal/storage"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// DataLoadedMsg carries the results of one review query round trip.
// One message updates every panel so the dashboard never renders half
// old and half new data.
type DataLoadedMsg struct {
	// Counts is the per-day series for the selected span.
	Counts []storage.DayCount
	// History is the all-time per-day series for the overview panel.
	History []storage.DayCount
	// Breakdown is the answer-ease aggregation for the selected span.
	Breakdown storage.EaseCounts
	// Total is the review count across all history for the filter.
	Total int
}

// LoadErrorMsg reports a failed review query.
type LoadErrorMsg struct {
	Err error
}

// PrefsChangedMsg reports that the preferences file changed on disk.
type PrefsChangedMsg struct{}
