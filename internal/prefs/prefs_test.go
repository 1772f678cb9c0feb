// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// clearEnv blanks the STATGRAPH_* overrides so load tests see only the
// file contents.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STATGRAPH_MODE", "")
	t.Setenv("STATGRAPH_SPAN_DAYS", "")
	t.Setenv("STATGRAPH_SEARCH", "")
	t.Setenv("STATGRAPH_FIRST_DOW", "")
}

// TestPrefs_Default tests that Default() returns valid preferences.
func TestPrefs_Default(t *testing.T) {
	p := Default()

	if p == nil {
		t.Fatal("Default() returned nil")
	}
	if p.Mode != "auto" {
		t.Errorf("Default mode = %q, want 'auto'", p.Mode)
	}
	if p.DefaultSpanDays != 365 {
		t.Errorf("Default span = %d, want 365", p.DefaultSpanDays)
	}
	if p.FirstDayOfWeek != 1 {
		t.Errorf("Default first day of week = %d, want 1 (Monday)", p.FirstDayOfWeek)
	}
	if !p.FutureDueBacklog {
		t.Error("Default should include the backlog in future due counts")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

// TestPrefs_Validate tests preference validation.
func TestPrefs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		prefs   *Prefs
		wantErr bool
	}{
		{
			name:    "valid defaults",
			prefs:   Default(),
			wantErr: false,
		},
		{
			name: "invalid mode",
			prefs: func() *Prefs {
				p := Default()
				p.Mode = "sepia"
				return p
			}(),
			wantErr: true,
		},
		{
			name: "negative span",
			prefs: func() *Prefs {
				p := Default()
				p.DefaultSpanDays = -7
				return p
			}(),
			wantErr: true,
		},
		{
			name: "zero span means all history",
			prefs: func() *Prefs {
				p := Default()
				p.DefaultSpanDays = 0
				return p
			}(),
			wantErr: false,
		},
		{
			name: "first day of week out of range",
			prefs: func() *Prefs {
				p := Default()
				p.FirstDayOfWeek = 7
				return p
			}(),
			wantErr: true,
		},
		{
			name: "saturday start is valid",
			prefs: func() *Prefs {
				p := Default()
				p.FirstDayOfWeek = 6
				return p
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prefs.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestPrefs_ValidateCollectsAllErrors tests that validation reports
// every problem in one pass.
func TestPrefs_ValidateCollectsAllErrors(t *testing.T) {
	p := Default()
	p.Mode = "sepia"
	p.DefaultSpanDays = -1
	p.FirstDayOfWeek = 9

	err := p.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	verrs, ok := err.(ValidateErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidateErrors", err)
	}
	if len(verrs) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(verrs), verrs)
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("combined error should join with '; ': %q", err.Error())
	}
}

// TestPrefs_SaveLoadTOML tests the TOML round trip.
func TestPrefs_SaveLoadTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "prefs.toml")

	p := Default()
	p.Mode = "dark"
	p.DefaultSpanDays = 30
	p.DefaultSearch = "deck:japanese"
	p.CountsSeparateInactive = true

	if err := SaveTOML(p, path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# statgraph preferences") {
		t.Error("saved TOML should start with the header comment")
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Mode != "dark" {
		t.Errorf("Mode = %q, want 'dark'", loaded.Mode)
	}
	if loaded.DefaultSpanDays != 30 {
		t.Errorf("DefaultSpanDays = %d, want 30", loaded.DefaultSpanDays)
	}
	if loaded.DefaultSearch != "deck:japanese" {
		t.Errorf("DefaultSearch = %q, want 'deck:japanese'", loaded.DefaultSearch)
	}
	if !loaded.CountsSeparateInactive {
		t.Error("CountsSeparateInactive should round-trip as true")
	}
}

// TestPrefs_LoadJSONLegacy tests that legacy JSON files still load.
func TestPrefs_LoadJSONLegacy(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "prefs.json")

	p := Default()
	p.Mode = "light"
	p.DefaultSpanDays = 90
	if err := SaveJSON(p, path); err != nil {
		t.Fatalf("SaveJSON() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Mode != "light" || loaded.DefaultSpanDays != 90 {
		t.Errorf("loaded = %+v, want light/90", loaded)
	}
}

// TestPrefs_PartialFileKeepsDefaults tests that keys absent from the
// file keep their default values.
func TestPrefs_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "prefs.toml")

	if err := os.WriteFile(path, []byte("mode = \"dark\"\n"), 0644); err != nil {
		t.Fatalf("writing partial file: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Mode != "dark" {
		t.Errorf("Mode = %q, want 'dark'", loaded.Mode)
	}
	if loaded.DefaultSpanDays != 365 {
		t.Errorf("DefaultSpanDays = %d, want default 365", loaded.DefaultSpanDays)
	}
	if loaded.FirstDayOfWeek != 1 {
		t.Errorf("FirstDayOfWeek = %d, want default 1", loaded.FirstDayOfWeek)
	}
}

// TestPrefs_EnvOverrides tests that STATGRAPH_* variables win over the
// file.
func TestPrefs_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATGRAPH_MODE", "dark")
	t.Setenv("STATGRAPH_SPAN_DAYS", "14")
	t.Setenv("STATGRAPH_SEARCH", "deck:core")

	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := SaveTOML(Default(), path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Mode != "dark" {
		t.Errorf("Mode = %q, want env override 'dark'", loaded.Mode)
	}
	if loaded.DefaultSpanDays != 14 {
		t.Errorf("DefaultSpanDays = %d, want env override 14", loaded.DefaultSpanDays)
	}
	if loaded.DefaultSearch != "deck:core" {
		t.Errorf("DefaultSearch = %q, want env override 'deck:core'", loaded.DefaultSearch)
	}
}

// TestPrefs_ModeNormalization tests that mode strings are folded to
// lower case on load.
func TestPrefs_ModeNormalization(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "prefs.toml")

	if err := os.WriteFile(path, []byte("mode = \"  DARK \"\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Mode != "dark" {
		t.Errorf("Mode = %q, want normalized 'dark'", loaded.Mode)
	}
}

// TestPrefs_GetSet tests key-based access used by the prefs command.
func TestPrefs_GetSet(t *testing.T) {
	p := Default()

	val, err := p.Get("mode")
	if err != nil {
		t.Fatalf("Get('mode') error = %v", err)
	}
	if val != "auto" {
		t.Errorf("Get('mode') = %q, want 'auto'", val)
	}

	if err := p.Set("default_span_days", "7"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	val, _ = p.Get("default_span_days")
	if val != "7" {
		t.Errorf("Get after Set = %q, want '7'", val)
	}

	if err := p.Set("future_due_backlog", "false"); err != nil {
		t.Fatalf("Set bool error = %v", err)
	}
	if p.FutureDueBacklog {
		t.Error("Set('future_due_backlog', 'false') should clear the flag")
	}

	// Set validates the result: bad values must be rejected.
	if err := p.Set("mode", "sepia"); err == nil {
		t.Error("Set('mode', 'sepia') should fail validation")
	}
	if err := p.Set("default_span_days", "not-a-number"); err == nil {
		t.Error("Set with unparseable int should fail")
	}
	if _, err := p.Get("unknown_key"); err == nil {
		t.Error("Get with unknown key should fail")
	}
	if err := p.Set("unknown_key", "x"); err == nil {
		t.Error("Set with unknown key should fail")
	}
}

// TestPrefs_KeysCoverEveryField tests that every settable key resolves
// through Get.
func TestPrefs_KeysCoverEveryField(t *testing.T) {
	p := Default()
	for _, key := range Keys() {
		if _, err := p.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}
}

// TestPrefs_ConcurrentAccess tests that Global(), SetGlobal(), and
// ReloadGlobal() are safe under concurrency.
// Run with: go test -race -v ./internal/prefs/
func TestPrefs_ConcurrentAccess(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	ResetGlobalForTesting()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			p := Default()
			p.Mode = "dark"
			SetGlobal(p)
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}

	wg.Wait()
}

// TestPrefs_GlobalInitialization tests that Global() falls back to
// defaults when no file exists.
func TestPrefs_GlobalInitialization(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	ResetGlobalForTesting()

	p := Global()
	if p == nil {
		t.Fatal("Global() returned nil")
	}
	if p.Mode != "auto" {
		t.Errorf("fresh Global() mode = %q, want 'auto'", p.Mode)
	}
}

// TestPrefs_ReloadGlobalPicksUpEdits tests the reload path used by the
// preferences watcher.
func TestPrefs_ReloadGlobalPicksUpEdits(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	ResetGlobalForTesting()

	if Global().Mode != "auto" {
		t.Fatal("precondition: fresh global should default to auto")
	}

	p := Default()
	p.Mode = "dark"
	if err := Save(p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := ReloadGlobal(); err != nil {
		t.Fatalf("ReloadGlobal() error = %v", err)
	}
	if Global().Mode != "dark" {
		t.Errorf("Global().Mode after reload = %q, want 'dark'", Global().Mode)
	}
}

// TestPrefs_EffectiveModeExplicit tests the explicit mode mappings.
// Auto depends on the terminal and is not asserted here.
func TestPrefs_EffectiveModeExplicit(t *testing.T) {
	p := Default()

	p.Mode = "light"
	if got := p.EffectiveMode(); got.String() != "light" {
		t.Errorf("EffectiveMode() = %v, want light", got)
	}

	p.Mode = "dark"
	if got := p.EffectiveMode(); got.String() != "dark" {
		t.Errorf("EffectiveMode() = %v, want dark", got)
	}
}
