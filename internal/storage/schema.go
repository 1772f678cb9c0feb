// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides review persistence for statgraph.
package storage

const (
	// SchemaVersion tracks the database schema version for migrations
	SchemaVersion = 1
)

// SQLite schema for the review store
const Schema = `
-- Metadata table for schema version and store state
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

-- Reviews table: one row per answered card
CREATE TABLE IF NOT EXISTS reviews (
    id TEXT PRIMARY KEY,          -- UUID
    deck TEXT NOT NULL,           -- full deck path, e.g. "Japanese::Core"
    reviewed_at INTEGER NOT NULL, -- Unix milliseconds
    ease INTEGER NOT NULL,        -- 1=again 2=hard 3=good 4=easy
    interval_days INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_reviewed_at ON reviews(reviewed_at);
CREATE INDEX IF NOT EXISTS idx_reviews_deck ON reviews(deck);
CREATE INDEX IF NOT EXISTS idx_reviews_ease ON reviews(ease);
`

// InitMetadata initializes the metadata table with default values
const InitMetadata = `
INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', '1');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('created_at', strftime('%s', 'now'));
`

// =============================================================================
// EASE VALUES
// =============================================================================

// Ease is the answer button pressed for a review.
type Ease int

const (
	EaseAgain Ease = 1
	EaseHard  Ease = 2
	EaseGood  Ease = 3
	EaseEasy  Ease = 4
)

// String returns the answer button label.
func (e Ease) String() string {
	switch e {
	case EaseAgain:
		return "again"
	case EaseHard:
		return "hard"
	case EaseGood:
		return "good"
	case EaseEasy:
		return "easy"
	default:
		return "unknown"
	}
}

// IsValid checks if the ease is a real answer button.
func (e Ease) IsValid() bool {
	return e >= EaseAgain && e <= EaseEasy
}
