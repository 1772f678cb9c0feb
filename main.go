// statgraph - a terminal dashboard for review statistics.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/statgraph-tui/internal/cli"
	"github.com/jeranaias/statgraph-tui/internal/logging"
	"github.com/jeranaias/statgraph-tui/internal/prefs"
	"github.com/jeranaias/statgraph-tui/internal/storage"
	"github.com/jeranaias/statgraph-tui/internal/ui/statsview"
)

func main() {
	cmd, args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintln(os.Stderr, "run 'statgraph help' for usage")
		os.Exit(2)
	}

	if args.NoColor {
		cli.ForceColorsEnabled(false)
	}

	cleanup := setupLogging(cmd, args)
	defer cleanup()

	var runErr error
	switch cmd {
	case cli.CmdTUI:
		runErr = runTUI(args)
	case cli.CmdExport:
		runErr = cli.HandleExport(args)
	case cli.CmdPrefs:
		runErr = cli.HandlePrefs(args)
	case cli.CmdSeed:
		runErr = cli.HandleSeed(args)
	case cli.CmdDoctor:
		runErr = cli.HandleDoctor(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}

// setupLogging routes the process log: TUI runs log to a file because
// the screen belongs to the dashboard, CLI runs log to stderr gated by
// --verbose, and --quiet silences everything.
func setupLogging(cmd cli.Command, args cli.Args) func() {
	level := zerolog.WarnLevel
	if args.Verbose {
		level = zerolog.DebugLevel
	}

	switch {
	case args.Quiet:
		logging.Disable()

	case cmd == cli.CmdTUI:
		path, err := prefs.LogPath()
		if err != nil {
			logging.Disable()
			break
		}
		f, err := logging.InitFile(path, level)
		if err != nil {
			logging.Disable()
			break
		}
		return func() { f.Close() }

	default:
		logging.InitConsole(level)
	}
	return func() {}
}

// runTUI opens the review store and runs the dashboard program.
func runTUI(args cli.Args) error {
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
		return fmt.Errorf("failed to open review store: %w", err)
	}
	defer store.Close()

	m := statsview.New(store)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard terminated: %w", err)
	}
	return nil
}
