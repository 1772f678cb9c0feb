// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides review persistence for statgraph.
//
// This package wraps a SQLite database of answered cards and serves
// the aggregations the graphs draw: reviews per day, answer-button
// breakdowns, and deck filtering.
//
// # Key Types
//
//   - Store: SQLite-backed review store
//   - Review: One answered card (deck, timestamp, ease, interval)
//   - DayCount: Reviews per local calendar day, zero-filled
//   - EaseCounts: Answer-button breakdown for a span
//
// # Usage
//
// Open a store and add reviews:
//
//	store, err := storage.Open(dbPath)
//	err = store.AddReview(ctx, &storage.Review{...})
//
// Query the series a graph renders:
//
//	series, err := store.DayCounts(ctx, "deck:japanese", 30)
//	counts, err := store.EaseBreakdown(ctx, "", 365)
//
// # Storage Location
//
// The database lives at ~/.statgraph/reviews.db by default.
package storage
