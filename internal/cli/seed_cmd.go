// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// seed_cmd.go - Handler for the seed command.
package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jeranaias/statgraph-tui/internal/prefs"
	"github.com/jeranaias/statgraph-tui/internal/storage"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// HandleSeed fills the review store with sample history so the
// dashboard has something to show on a fresh install.
func HandleSeed(args Args) error {
	path := args.DBPath
	if path == "" {
		var err error
		path, err = prefs.DefaultDBPath()
		if err != nil {
			return err
		}
	}

	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	n, err := store.Seed(ctx, args.Days, args.PerDay)
	if err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Printf("%s seeded %d reviews over %d days into %s\n",
			styles.StatusIndicators.Success, n, args.Days, path)
	}
	return nil
}
