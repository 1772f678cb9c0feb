// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prefs provides preference loading and management for statgraph.
//
// Supports both TOML and JSON preference formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Prefs: Persisted graph preferences (theme mode, default span, filters)
//   - FileWatcher: Interface over fsnotify and polling watchers for live reload
//   - ValidateErrors: All validation problems from one pass, joined with "; "
//
// # Preference Precedence
//
// Preferences are loaded from (in order of precedence):
//   - Environment variables (STATGRAPH_*)
//   - ~/.statgraph/prefs.toml
//   - ~/.statgraph/prefs.json (legacy, rewritten as TOML on next save)
//   - Built-in defaults
//
// # Usage
//
// Load preferences:
//
//	p, err := prefs.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Follow edits made while the TUI is running:
//
//	w, err := prefs.StartWatcher(func() {
//	    _ = prefs.ReloadGlobal()
//	})
//	defer w.Close()
package prefs
