// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging owns the process-wide structured logger.
//
// The dashboard cannot log to the screen it is drawing on, so TUI runs
// send events to a file under the app directory while plain CLI runs
// use a console writer on stderr. Packages obtain child loggers tagged
// with a component field:
//
//	log := logging.Component("prefs")
//	log.Info().Str("path", path).Msg("preferences loaded")
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(io.Discard)
)

// Init routes the process log to w at the given level. Safe to call
// more than once; later calls replace the sink.
func Init(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// InitConsole points the log at stderr with human-readable formatting,
// used by the non-TUI subcommands.
func InitConsole(level zerolog.Level) {
	Init(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, level)
}

// InitFile appends JSON events to the given file, creating parent
// directories as needed. The caller owns the returned file.
func InitFile(path string, level zerolog.Level) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	Init(f, level)
	return f, nil
}

// Disable silences the process log; the default state.
func Disable() {
	Init(io.Discard, zerolog.Disabled)
}

// Component returns a child logger tagged with a component field.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}
