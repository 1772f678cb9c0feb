// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging owns the process-wide structured logger.
package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestComponentFieldAppears(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, zerolog.InfoLevel)
	defer Disable()

	log := Component("cascade")
	log.Info().Int("sheets", 5).Msg("resolved")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if event["component"] != "cascade" {
		t.Errorf("component = %v, want cascade", event["component"])
	}
	if event["sheets"] != float64(5) {
		t.Errorf("sheets = %v, want 5", event["sheets"])
	}
	if event["message"] != "resolved" {
		t.Errorf("message = %v", event["message"])
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, zerolog.WarnLevel)
	defer Disable()

	log := Component("test")
	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("info event leaked through warn level: %q", buf.String())
	}
	log.Error().Msg("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Error("error event missing")
	}
}

func TestInitFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "statgraph.log")
	f, err := InitFile(path, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("InitFile: %v", err)
	}
	defer Disable()

	log := Component("test")
	log.Info().Msg("hello")
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestDisableSilences(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, zerolog.InfoLevel)
	Disable()
	log := Component("test")
	log.Error().Msg("nope")
	if buf.Len() != 0 {
		t.Errorf("disabled logger still wrote: %q", buf.String())
	}
}
