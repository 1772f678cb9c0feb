// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prefs provides preference loading and management for statgraph.
//
// Supports both TOML and JSON preference formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Preference file locations (in order of precedence):
//   - ~/.statgraph/prefs.toml
//   - ~/.statgraph/prefs.json
//   - Built-in defaults
package prefs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
	"github.com/jeranaias/statgraph-tui/internal/util"
)

// =============================================================================
// PREFERENCES
// =============================================================================

// Prefs holds the persisted graph preferences. TOML is the canonical
// format; legacy JSON files are still read and rewritten as TOML on
// the next save.
type Prefs struct {
	// Mode selects the theme: "auto", "light" or "dark". Auto probes
	// the terminal background at startup.
	Mode string `toml:"mode" json:"mode"`

	// DefaultSpanDays is the review span shown on launch; 0 means all
	// history.
	DefaultSpanDays int `toml:"default_span_days" json:"default_span_days"`

	// DefaultSearch pre-fills the deck filter in the range selector.
	DefaultSearch string `toml:"default_search" json:"default_search"`

	// FirstDayOfWeek starts calendar buckets: 0=Sunday through
	// 6=Saturday.
	FirstDayOfWeek int `toml:"first_day_of_week" json:"first_day_of_week"`

	// FutureDueBacklog includes overdue cards in the future-due panel.
	FutureDueBacklog bool `toml:"future_due_backlog" json:"future_due_backlog"`

	// CountsSeparateInactive splits suspended/buried cards into their
	// own count bucket.
	CountsSeparateInactive bool `toml:"counts_separate_inactive" json:"counts_separate_inactive"`
}

// Default returns the preferences used when no file exists.
func Default() *Prefs {
	return &Prefs{
		Mode:             "auto",
		DefaultSpanDays:  365,
		DefaultSearch:    "",
		FirstDayOfWeek:   1,
		FutureDueBacklog: true,
	}
}

// EffectiveMode maps the mode preference to a concrete theme mode,
// probing the terminal background when set to auto.
func (p *Prefs) EffectiveMode() styles.Mode {
	switch p.Mode {
	case "light":
		return styles.ModeLight
	case "dark":
		return styles.ModeDark
	default:
		return styles.DetectMode()
	}
}

// =============================================================================
// PATHS
// =============================================================================

// AppDir returns the application directory (~/.statgraph).
func AppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".statgraph"), nil
}

// PathTOML returns the path to the canonical TOML preferences file.
func PathTOML() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.toml"), nil
}

// PathJSON returns the path to the legacy JSON preferences file.
func PathJSON() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.json"), nil
}

// DefaultDBPath returns the default review store location.
func DefaultDBPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "reviews.db"), nil
}

// LogPath returns the TUI log file location.
func LogPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "statgraph.log"), nil
}

// EnsureAppDir ensures the application directory exists.
func EnsureAppDir() error {
	dir, err := AppDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads preferences from the preference file(s). It tries TOML
// first, then legacy JSON, and falls back to defaults when neither
// exists. Environment overrides are applied last.
func Load() (*Prefs, error) {
	p := Default()

	tomlPath, err := PathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := loadTOML(p, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML preferences: %w", err)
			}
			return finishLoad(p)
		}
	}

	jsonPath, err := PathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := loadJSON(p, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON preferences: %w", err)
			}
			return finishLoad(p)
		}
	}

	return finishLoad(p)
}

// LoadFromPath loads preferences from an explicit file, choosing the
// decoder by extension.
func LoadFromPath(path string) (*Prefs, error) {
	p := Default()
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = loadJSON(p, path)
	} else {
		err = loadTOML(p, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences from %s: %w", path, err)
	}
	return finishLoad(p)
}

func finishLoad(p *Prefs) (*Prefs, error) {
	p.ApplyEnvOverrides()
	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preferences: %w", err)
	}
	return p, nil
}

// Decoding happens over a pre-filled default struct, so keys absent
// from the file keep their default values.
func loadTOML(p *Prefs, path string) error {
	_, err := toml.DecodeFile(path, p)
	return err
}

func loadJSON(p *Prefs, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, p)
}

func (p *Prefs) normalize() {
	p.Mode = strings.ToLower(strings.TrimSpace(p.Mode))
	if p.Mode == "" {
		p.Mode = "auto"
	}
	p.DefaultSearch = strings.TrimSpace(p.DefaultSearch)
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the preferences to the canonical TOML file.
func Save(p *Prefs) error {
	path, err := PathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(p, path)
}

// SaveTOML writes the preferences to a TOML file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(p *Prefs, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# statgraph preferences\n")
	buf.WriteString("# Edit by hand or via: statgraph prefs set <key> <value>\n\n")
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}

// SaveJSON writes the preferences to a JSON file.
func SaveJSON(p *Prefs, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a preferences validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the preferences and reports every problem at once.
func (p *Prefs) Validate() error {
	var errs ValidateErrors

	switch p.Mode {
	case "auto", "light", "dark":
	default:
		errs = append(errs, ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("must be auto, light or dark (got %q)", p.Mode),
		})
	}

	if p.DefaultSpanDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "default_span_days",
			Message: fmt.Sprintf("must be 0 (all history) or positive (got %d)", p.DefaultSpanDays),
		})
	}

	if p.FirstDayOfWeek < 0 || p.FirstDayOfWeek > 6 {
		errs = append(errs, ValidationError{
			Field:   "first_day_of_week",
			Message: fmt.Sprintf("must be 0 (Sunday) through 6 (Saturday) (got %d)", p.FirstDayOfWeek),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides lets the environment win over the file for
// one-shot runs without editing anything.
func (p *Prefs) ApplyEnvOverrides() {
	if mode := os.Getenv("STATGRAPH_MODE"); mode != "" {
		p.Mode = mode
	}
	if span := os.Getenv("STATGRAPH_SPAN_DAYS"); span != "" {
		if n, err := strconv.Atoi(span); err == nil {
			p.DefaultSpanDays = n
		}
	}
	if search := os.Getenv("STATGRAPH_SEARCH"); search != "" {
		p.DefaultSearch = search
	}
	if dow := os.Getenv("STATGRAPH_FIRST_DOW"); dow != "" {
		if n, err := strconv.Atoi(dow); err == nil {
			p.FirstDayOfWeek = n
		}
	}
}

// =============================================================================
// GET/SET BY KEY
// =============================================================================

// Keys returns the settable preference keys in display order.
func Keys() []string {
	return []string{
		"mode",
		"default_span_days",
		"default_search",
		"first_day_of_week",
		"future_due_backlog",
		"counts_separate_inactive",
	}
}

// Get returns a preference value by key as a display string.
func (p *Prefs) Get(key string) (string, error) {
	switch key {
	case "mode":
		return p.Mode, nil
	case "default_span_days":
		return strconv.Itoa(p.DefaultSpanDays), nil
	case "default_search":
		return p.DefaultSearch, nil
	case "first_day_of_week":
		return strconv.Itoa(p.FirstDayOfWeek), nil
	case "future_due_backlog":
		return strconv.FormatBool(p.FutureDueBacklog), nil
	case "counts_separate_inactive":
		return strconv.FormatBool(p.CountsSeparateInactive), nil
	default:
		return "", fmt.Errorf("unknown preference key %q", key)
	}
}

// Set parses and stores a preference value by key, then validates the
// result.
func (p *Prefs) Set(key, value string) error {
	switch key {
	case "mode":
		p.Mode = strings.ToLower(strings.TrimSpace(value))
	case "default_span_days":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("default_span_days: %w", err)
		}
		p.DefaultSpanDays = n
	case "default_search":
		p.DefaultSearch = value
	case "first_day_of_week":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("first_day_of_week: %w", err)
		}
		p.FirstDayOfWeek = n
	case "future_due_backlog":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("future_due_backlog: %w", err)
		}
		p.FutureDueBacklog = b
	case "counts_separate_inactive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("counts_separate_inactive: %w", err)
		}
		p.CountsSeparateInactive = b
	default:
		return fmt.Errorf("unknown preference key %q", key)
	}
	return p.Validate()
}

// =============================================================================
// GLOBAL INSTANCE
// =============================================================================

var (
	global     *Prefs
	globalOnce sync.Once
	globalMu   sync.RWMutex
)

// Global returns the process-wide preferences, loading them on first
// access. Thread-safe.
func Global() *Prefs {
	globalOnce.Do(func() {
		p, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			p = Default()
		}
		global = p
	})

	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// ReloadGlobal re-reads the preferences from disk. Thread-safe.
func ReloadGlobal() error {
	p, err := Load()
	if err != nil {
		return err
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	global = p
	return nil
}

// SetGlobal replaces the process-wide preferences. Thread-safe.
func SetGlobal(p *Prefs) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = p
}

// ResetGlobalForTesting resets the global state between test runs.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = nil
	globalOnce = sync.Once{}
}
