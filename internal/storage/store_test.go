// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestStore opens an in-memory store for one test.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err, "in-memory store should open")
	t.Cleanup(func() { s.Close() })
	return s
}

// midday returns noon on the local day `offset` days before today,
// keeping test reviews far from midnight boundaries.
func midday(offset int) time.Time {
	return startOfDay(time.Now()).AddDate(0, 0, -offset).Add(12 * time.Hour)
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "reviews.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, path, s.Path())

	n, err := s.CountReviews(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 0, n, "fresh store should be empty")
}

func TestAddReview_GeneratesID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := &Review{
		Deck:         "Japanese::Core",
		ReviewedAt:   midday(0),
		Ease:         EaseGood,
		IntervalDays: 3,
	}
	require.NoError(t, s.AddReview(ctx, r))
	require.NotEmpty(t, r.ID, "insert should assign an ID")

	n, err := s.CountReviews(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAddReview_Validation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		review *Review
	}{
		{
			name:   "empty deck",
			review: &Review{ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 1},
		},
		{
			name:   "zero timestamp",
			review: &Review{Deck: "Spanish", Ease: EaseGood, IntervalDays: 1},
		},
		{
			name:   "ease out of range",
			review: &Review{Deck: "Spanish", ReviewedAt: midday(0), Ease: 5, IntervalDays: 1},
		},
		{
			name:   "negative interval",
			review: &Review{Deck: "Spanish", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddReview(ctx, tt.review)
			require.ErrorIs(t, err, ErrInvalidReview)
		})
	}

	n, err := s.CountReviews(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 0, n, "rejected reviews must not be stored")
}

func TestDayCounts_ZeroFilledSpan(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Three reviews today, one two days ago, nothing yesterday.
	require.NoError(t, s.AddReviews(ctx, []*Review{
		{Deck: "Spanish", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 1},
		{Deck: "Spanish", ReviewedAt: midday(0).Add(time.Hour), Ease: EaseAgain, IntervalDays: 1},
		{Deck: "Spanish", ReviewedAt: midday(0).Add(2 * time.Hour), Ease: EaseEasy, IntervalDays: 8},
		{Deck: "Spanish", ReviewedAt: midday(2), Ease: EaseGood, IntervalDays: 2},
	}))

	series, err := s.DayCounts(ctx, "", 7)
	require.NoError(t, err)
	require.Len(t, series, 7, "a 7-day span has exactly 7 entries")

	last := series[len(series)-1]
	require.Equal(t, startOfDay(time.Now()), last.Day, "series ends today")
	require.Equal(t, 3, last.Count)

	require.Equal(t, 0, series[len(series)-2].Count, "gap days are zero-filled")
	require.Equal(t, 1, series[len(series)-3].Count)

	for i := 1; i < len(series); i++ {
		require.True(t, series[i].Day.After(series[i-1].Day), "series is oldest first")
	}
}

func TestDayCounts_AllHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddReviews(ctx, []*Review{
		{Deck: "Chemistry", ReviewedAt: midday(9), Ease: EaseGood, IntervalDays: 1},
		{Deck: "Chemistry", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 4},
	}))

	series, err := s.DayCounts(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, series, 10, "all-history span runs earliest review through today")
	require.Equal(t, 1, series[0].Count)
	require.Equal(t, 1, series[len(series)-1].Count)
}

func TestDayCounts_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	series, err := s.DayCounts(context.Background(), "", 0)
	require.NoError(t, err)
	require.Empty(t, series, "empty store with all-history span yields the no-data state")

	series, err = s.DayCounts(context.Background(), "", 30)
	require.NoError(t, err)
	require.Len(t, series, 30, "fixed spans stay zero-filled even when empty")
	for _, dc := range series {
		require.Equal(t, 0, dc.Count)
	}
}

func TestDayCounts_DeckFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddReviews(ctx, []*Review{
		{Deck: "Japanese::Core", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 1},
		{Deck: "Japanese::Grammar", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 1},
		{Deck: "Spanish", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 1},
	}))

	tests := []struct {
		search string
		want   int
	}{
		{"deck:japanese", 2},
		{"japanese", 2},
		{"deck:JAPANESE", 2},
		{"deck:Japanese::Core", 1},
		{"spanish", 1},
		{"", 3},
		{"deck:klingon", 0},
	}

	for _, tt := range tests {
		series, err := s.DayCounts(ctx, tt.search, 1)
		require.NoError(t, err)
		require.Len(t, series, 1)
		require.Equal(t, tt.want, series[0].Count, "search %q", tt.search)
	}
}

func TestDeckTerm(t *testing.T) {
	tests := []struct {
		search string
		want   string
	}{
		{"", ""},
		{"  ", ""},
		{"japanese", "japanese"},
		{"deck:japanese", "japanese"},
		{"deck: japanese ", "japanese"},
		{" deck:Core ", "Core"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, deckTerm(tt.search), "search %q", tt.search)
	}
}

func TestEaseBreakdown(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddReviews(ctx, []*Review{
		{Deck: "Spanish", ReviewedAt: midday(0), Ease: EaseAgain, IntervalDays: 1},
		{Deck: "Spanish", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 2},
		{Deck: "Spanish", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 5},
		{Deck: "Spanish", ReviewedAt: midday(1), Ease: EaseEasy, IntervalDays: 12},
		{Deck: "Chemistry", ReviewedAt: midday(40), Ease: EaseHard, IntervalDays: 2},
	}))

	counts, err := s.EaseBreakdown(ctx, "", 30)
	require.NoError(t, err)
	require.Equal(t, EaseCounts{Again: 1, Good: 2, Easy: 1}, counts, "old review falls outside the span")
	require.Equal(t, 4, counts.Total())

	all, err := s.EaseBreakdown(ctx, "", 0)
	require.NoError(t, err)
	require.Equal(t, 1, all.Hard)
	require.Equal(t, 5, all.Total())

	filtered, err := s.EaseBreakdown(ctx, "chemistry", 0)
	require.NoError(t, err)
	require.Equal(t, EaseCounts{Hard: 1}, filtered)
}

func TestDecks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddReviews(ctx, []*Review{
		{Deck: "Spanish", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 1},
		{Deck: "Chemistry", ReviewedAt: midday(0), Ease: EaseGood, IntervalDays: 1},
		{Deck: "Spanish", ReviewedAt: midday(1), Ease: EaseHard, IntervalDays: 1},
	}))

	decks, err := s.Decks(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Chemistry", "Spanish"}, decks, "decks are distinct and sorted")
}

func TestSeed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.Seed(ctx, 30, 20)
	require.NoError(t, err)
	require.Greater(t, n, 0, "seeding should insert rows")

	count, err := s.CountReviews(ctx, "")
	require.NoError(t, err)
	require.Equal(t, n, count, "reported insert count matches the table")

	series, err := s.DayCounts(ctx, "", 30)
	require.NoError(t, err)
	require.Len(t, series, 30)

	breakdown, err := s.EaseBreakdown(ctx, "", 30)
	require.NoError(t, err)
	require.Equal(t, count, breakdown.Total(), "every seeded review has a valid ease")

	_, err = s.Seed(ctx, 0, 20)
	require.ErrorIs(t, err, ErrInvalidReview)
}

func TestEase_String(t *testing.T) {
	require.Equal(t, "again", EaseAgain.String())
	require.Equal(t, "hard", EaseHard.String())
	require.Equal(t, "good", EaseGood.String())
	require.Equal(t, "easy", EaseEasy.String())
	require.Equal(t, "unknown", Ease(9).String())

	require.True(t, EaseGood.IsValid())
	require.False(t, Ease(0).IsValid())
	require.False(t, Ease(5).IsValid())
}
