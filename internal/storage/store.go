// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides review persistence for statgraph.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/statgraph-tui/internal/logging"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrDatabaseError = errors.New("database error")
	ErrInvalidReview = errors.New("invalid review")
)

// =============================================================================
// REVIEW TYPE
// =============================================================================

// Review is one answered card.
type Review struct {
	ID           string
	Deck         string
	ReviewedAt   time.Time
	Ease         Ease
	IntervalDays int
}

// Validate checks the review fields before insert.
func (r *Review) Validate() error {
	if r.Deck == "" {
		return fmt.Errorf("%w: deck is empty", ErrInvalidReview)
	}
	if r.ReviewedAt.IsZero() {
		return fmt.Errorf("%w: reviewed_at is zero", ErrInvalidReview)
	}
	if !r.Ease.IsValid() {
		return fmt.Errorf("%w: ease %d out of range", ErrInvalidReview, r.Ease)
	}
	if r.IntervalDays < 0 {
		return fmt.Errorf("%w: negative interval", ErrInvalidReview)
	}
	return nil
}

// DayCount is the review count for one local calendar day.
type DayCount struct {
	Day   time.Time // local midnight
	Count int
}

// EaseCounts is the answer-button breakdown for a span.
type EaseCounts struct {
	Again int
	Hard  int
	Good  int
	Easy  int
}

// Total returns the number of reviews across all buttons.
func (e EaseCounts) Total() int {
	return e.Again + e.Hard + e.Good + e.Easy
}

// =============================================================================
// REVIEW STORE
// =============================================================================

// Store is the SQLite-backed review store.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the review store at path.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	// A single connection also keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Store{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log := logging.Component("storage")
	log.Debug().Str("path", path).Msg("opened review store")
	return s, nil
}

// OpenInMemory opens a throwaway in-memory store.
func OpenInMemory() (*Store, error) {
	return Open(":memory:")
}

func (s *Store) initSchema() error {
	if _, err := s.db.Exec(Schema); err != nil {
		return err
	}
	_, err := s.db.Exec(InitMetadata)
	return err
}

// Close closes the store and releases resources.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// AddReview inserts one review, generating an ID when unset.
func (s *Store) AddReview(ctx context.Context, r *Review) error {
	return s.AddReviews(ctx, []*Review{r})
}

// AddReviews inserts a batch of reviews in one transaction.
func (s *Store) AddReviews(ctx context.Context, reviews []*Review) error {
	if len(reviews) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO reviews (id, deck, reviewed_at, ease, interval_days)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer stmt.Close()

	for _, r := range reviews {
		if err := r.Validate(); err != nil {
			return err
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.Deck, r.ReviewedAt.UnixMilli(), int(r.Ease), r.IntervalDays); err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// =============================================================================
// QUERY OPERATIONS
// =============================================================================

// deckTerm extracts the deck filter from a search string. Both
// "deck:japanese" and bare "japanese" match deck names by substring,
// case-insensitive. Empty means no filter.
func deckTerm(search string) string {
	search = strings.TrimSpace(search)
	if rest, ok := strings.CutPrefix(search, "deck:"); ok {
		return strings.TrimSpace(rest)
	}
	return search
}

// whereDeck appends the deck filter condition when one is set.
func whereDeck(conds []string, args []interface{}, search string) ([]string, []interface{}) {
	if term := deckTerm(search); term != "" {
		conds = append(conds, "LOWER(deck) LIKE ?")
		args = append(args, "%"+strings.ToLower(term)+"%")
	}
	return conds, args
}

// startOfDay returns local midnight for t.
func startOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayCounts returns the reviews-per-day series ending today, oldest
// first, with zero-filled gaps so the series has no holes. days > 0
// returns exactly that many entries; days == 0 spans from the earliest
// matching review to today. An empty store with days == 0 returns an
// empty series, which the UI renders as the no-data state.
func (s *Store) DayCounts(ctx context.Context, search string, days int) ([]DayCount, error) {
	var conds []string
	var args []interface{}
	conds, args = whereDeck(conds, args, search)

	today := startOfDay(time.Now())
	if days > 0 {
		cutoff := today.AddDate(0, 0, -(days - 1))
		conds = append(conds, "reviewed_at >= ?")
		args = append(args, cutoff.UnixMilli())
	}

	query := "SELECT reviewed_at FROM reviews"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	// Bucketing happens in Go so day boundaries follow the local
	// timezone, DST shifts included.
	buckets := make(map[int64]int)
	earliest := today
	for rows.Next() {
		var ms int64
		if err := rows.Scan(&ms); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		day := startOfDay(time.UnixMilli(ms))
		buckets[day.Unix()]++
		if day.Before(earliest) {
			earliest = day
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	start := today
	switch {
	case days > 0:
		start = today.AddDate(0, 0, -(days - 1))
	case len(buckets) > 0:
		start = earliest
	default:
		return []DayCount{}, nil
	}

	var series []DayCount
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		series = append(series, DayCount{Day: day, Count: buckets[day.Unix()]})
	}
	return series, nil
}

// EaseBreakdown returns the answer-button counts for the span.
func (s *Store) EaseBreakdown(ctx context.Context, search string, days int) (EaseCounts, error) {
	var conds []string
	var args []interface{}
	conds, args = whereDeck(conds, args, search)

	if days > 0 {
		cutoff := startOfDay(time.Now()).AddDate(0, 0, -(days - 1))
		conds = append(conds, "reviewed_at >= ?")
		args = append(args, cutoff.UnixMilli())
	}

	query := "SELECT ease, COUNT(*) FROM reviews"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY ease"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return EaseCounts{}, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var counts EaseCounts
	for rows.Next() {
		var ease, n int
		if err := rows.Scan(&ease, &n); err != nil {
			return EaseCounts{}, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		switch Ease(ease) {
		case EaseAgain:
			counts.Again = n
		case EaseHard:
			counts.Hard = n
		case EaseGood:
			counts.Good = n
		case EaseEasy:
			counts.Easy = n
		}
	}
	if err := rows.Err(); err != nil {
		return EaseCounts{}, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return counts, nil
}

// CountReviews returns the number of reviews matching the filter.
func (s *Store) CountReviews(ctx context.Context, search string) (int, error) {
	var conds []string
	var args []interface{}
	conds, args = whereDeck(conds, args, search)

	query := "SELECT COUNT(*) FROM reviews"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return n, nil
}

// Decks returns the distinct deck names, sorted.
func (s *Store) Decks(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT deck FROM reviews ORDER BY deck")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var decks []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return decks, nil
}

// =============================================================================
// SEED DATA
// =============================================================================

var seedDecks = []string{
	"Japanese::Core",
	"Japanese::Grammar",
	"Spanish",
	"Chemistry",
	"Geography",
}

// Seed fills the store with plausible review history covering the last
// days days, around perDay reviews per day. Returns the number of rows
// inserted. Intended for demos and manual testing.
func (s *Store) Seed(ctx context.Context, days, perDay int) (int, error) {
	if days <= 0 || perDay <= 0 {
		return 0, fmt.Errorf("%w: days and perDay must be positive", ErrInvalidReview)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := startOfDay(time.Now())

	var batch []*Review
	for d := days - 1; d >= 0; d-- {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		// Roughly one rest day in ten keeps the series realistic.
		if rng.Intn(10) == 0 {
			continue
		}

		day := today.AddDate(0, 0, -d)
		n := perDay/2 + rng.Intn(perDay+1)
		for i := 0; i < n; i++ {
			at := day.Add(time.Duration(rng.Intn(24*60*60)) * time.Second)
			batch = append(batch, &Review{
				ID:           uuid.NewString(),
				Deck:         seedDecks[rng.Intn(len(seedDecks))],
				ReviewedAt:   at,
				Ease:         seedEase(rng),
				IntervalDays: 1 + rng.Intn(365),
			})
		}
	}

	if err := s.AddReviews(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// seedEase draws an answer button with a distribution that leans
// toward "good", like real review history does.
func seedEase(rng *rand.Rand) Ease {
	switch n := rng.Intn(100); {
	case n < 10:
		return EaseAgain
	case n < 25:
		return EaseHard
	case n < 85:
		return EaseGood
	default:
		return EaseEasy
	}
}
