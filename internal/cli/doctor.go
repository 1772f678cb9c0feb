// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// doctor.go - Environment diagnostics for statgraph.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/muesli/termenv"

	"github.com/jeranaias/statgraph-tui/internal/prefs"
	"github.com/jeranaias/statgraph-tui/internal/storage"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// HandleDoctor checks the terminal, the preferences and the review
// store, printing one [OK]/[FAIL] line per check.
func HandleDoctor(args Args) error {
	fmt.Println("statgraph doctor")
	fmt.Println()

	failures := 0
	check := func(ok bool, name, detail string) {
		mark := styles.StatusIndicators.Success
		if !ok {
			mark = styles.StatusIndicators.Error
			failures++
		}
		fmt.Printf("  %s %-22s %s\n", mark, name, detail)
	}
	info := func(name, detail string) {
		fmt.Printf("  %s %-22s %s\n", styles.StatusIndicators.Info, name, detail)
	}

	// Terminal
	check(IsStdoutTTY(), "terminal", ttyDetail())
	w, h := GetTerminalSize()
	check(w >= minWidth, "size", fmt.Sprintf("%dx%d (min width %d)", w, h, minWidth))
	info("viewport", fmt.Sprintf("%dpx wide (8px per column)", w*8))
	info("color profile", profileName(termenv.ColorProfile()))
	background := "light"
	if termenv.HasDarkBackground() {
		background = "dark"
	}
	info("background", background)

	// Preferences
	p, err := prefs.Load()
	if err != nil {
		check(false, "preferences", err.Error())
	} else {
		check(true, "preferences", fmt.Sprintf("mode=%s span=%d", p.Mode, p.DefaultSpanDays))
	}
	if path, err := prefs.PathTOML(); err == nil {
		info("prefs path", path)
	}

	// Review store
	path := args.DBPath
	if path == "" {
		path, err = prefs.DefaultDBPath()
		if err != nil {
			check(false, "review store", err.Error())
			return doctorResult(failures)
		}
	}
	store, err := storage.Open(path)
	if err != nil {
		check(false, "review store", err.Error())
		return doctorResult(failures)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	n, err := store.CountReviews(ctx, "")
	if err != nil {
		check(false, "review store", err.Error())
	} else {
		check(true, "review store", fmt.Sprintf("%s (%d reviews)", path, n))
		if n == 0 {
			info("hint", "run 'statgraph seed' for sample data")
		}
	}

	return doctorResult(failures)
}

func doctorResult(failures int) error {
	fmt.Println()
	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	fmt.Println("all checks passed")
	return nil
}

func ttyDetail() string {
	if IsStdoutTTY() {
		return "interactive"
	}
	return "stdout is not a terminal"
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "no color"
	}
}
