// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for statgraph.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdExport
	CmdPrefs
	CmdSeed
	CmdDoctor
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	DBPath  string
	Verbose bool
	Quiet   bool
	NoColor bool

	// export
	JSON    bool
	Output  string
	WidthPx float64
	Mode    string
	Media   string

	// prefs
	Subcommand string
	Key        string
	Value      string

	// seed
	Days   int
	PerDay int

	// Raw args (remaining after flag parsing)
	Raw []string
}

// defaultExportWidth is the viewport assumed when --width is not given:
// wide enough that no width breakpoint fires.
const defaultExportWidth = 1024

const usageText = `statgraph - review statistics dashboard

Statgraph renders review-history graphs in the terminal. The same typed
styling rules drive the dashboard and the exported stylesheet.

Usage:
  statgraph                  Start the dashboard (default)
  statgraph export           Emit the overlay stylesheet (CSS)
    --json                   Emit computed styles instead of CSS
    --width N                Viewport width in px for --json (default 1024)
    --mode light|dark        Theme mode for --json (default: preference)
    --media screen|print     Medium for --json (default screen)
    -o, --output FILE        Write to FILE instead of stdout
  statgraph prefs [show|path|set KEY VALUE]
                             Inspect or edit preferences
  statgraph seed             Fill the store with sample review history
    --days N                 Span to cover (default 365)
    --per-day N              Approximate reviews per day (default 40)
  statgraph doctor           Check terminal, preferences and store
  statgraph version          Show version information
  statgraph help             Show this help

Global flags:
  --db PATH                  Review store location (default ~/.statgraph/reviews.db)
  --verbose                  Debug-level logging on stderr
  --quiet                    Suppress non-essential output
  --no-color                 Disable colored output

Environment:
  STATGRAPH_MODE             Override the mode preference (auto|light|dark)
  STATGRAPH_SPAN_DAYS        Override the default span
  STATGRAPH_SEARCH           Override the default deck filter
  STATGRAPH_FIRST_DOW        Override the first day of week (0-6)

Preferences live at ~/.statgraph/prefs.toml and reload live while the
dashboard runs.`

// PrintUsage writes the help text to stdout.
func PrintUsage() {
	fmt.Println(usageText)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("statgraph %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// Parse interprets argv (without the program name) into a command and
// its arguments.
func Parse(argv []string) (Command, Args, error) {
	remaining, args, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, args, err
	}

	// No remaining args: default to the dashboard.
	if len(remaining) == 0 {
		return CmdTUI, args, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args, nil

	case "export":
		if err := parseExportArgs(&args, remaining); err != nil {
			return CmdExport, args, err
		}
		return CmdExport, args, nil

	case "prefs", "preferences":
		if err := parsePrefsArgs(&args, remaining); err != nil {
			return CmdPrefs, args, err
		}
		return CmdPrefs, args, nil

	case "seed":
		if err := parseSeedArgs(&args, remaining); err != nil {
			return CmdSeed, args, err
		}
		return CmdSeed, args, nil

	case "doctor":
		return CmdDoctor, args, nil

	case "version", "-v", "--version":
		return CmdVersion, args, nil

	case "help", "-h", "--help":
		return CmdHelp, args, nil

	default:
		return CmdHelp, args, fmt.Errorf("unknown command %q", cmd)
	}
}

// parseGlobalFlags strips the flags every command accepts and returns
// what is left for command parsing.
func parseGlobalFlags(argv []string) ([]string, Args, error) {
	args := Args{
		WidthPx: defaultExportWidth,
		Days:    365,
		PerDay:  40,
	}

	var remaining []string
	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--db":
			v, err := flagValue(argv, &i, "--db")
			if err != nil {
				return nil, args, err
			}
			args.DBPath = v
		case "--verbose":
			args.Verbose = true
		case "--quiet", "-q":
			args.Quiet = true
		case "--no-color":
			args.NoColor = true
		default:
			remaining = append(remaining, argv[i])
		}
	}
	return remaining, args, nil
}

func parseExportArgs(args *Args, remaining []string) error {
	for i := 0; i < len(remaining); i++ {
		switch remaining[i] {
		case "--json":
			args.JSON = true
		case "--width":
			v, err := flagValue(remaining, &i, "--width")
			if err != nil {
				return err
			}
			w, err := strconv.ParseFloat(v, 64)
			if err != nil || w <= 0 {
				return fmt.Errorf("--width wants a positive number, got %q", v)
			}
			args.WidthPx = w
		case "--mode":
			v, err := flagValue(remaining, &i, "--mode")
			if err != nil {
				return err
			}
			args.Mode = strings.ToLower(v)
		case "--media":
			v, err := flagValue(remaining, &i, "--media")
			if err != nil {
				return err
			}
			m := strings.ToLower(v)
			if m != "screen" && m != "print" {
				return fmt.Errorf("--media wants screen or print, got %q", v)
			}
			args.Media = m
		case "-o", "--output":
			v, err := flagValue(remaining, &i, "--output")
			if err != nil {
				return err
			}
			args.Output = v
		default:
			return fmt.Errorf("unknown export flag %q", remaining[i])
		}
	}
	return nil
}

func parsePrefsArgs(args *Args, remaining []string) error {
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return nil
	}
	args.Subcommand = strings.ToLower(remaining[0])
	switch args.Subcommand {
	case "show", "path":
		return nil
	case "set":
		if len(remaining) < 3 {
			return fmt.Errorf("usage: statgraph prefs set KEY VALUE")
		}
		args.Key = remaining[1]
		args.Value = strings.Join(remaining[2:], " ")
		return nil
	default:
		return fmt.Errorf("unknown prefs subcommand %q (want show, path or set)", args.Subcommand)
	}
}

func parseSeedArgs(args *Args, remaining []string) error {
	for i := 0; i < len(remaining); i++ {
		switch remaining[i] {
		case "--days":
			v, err := flagValue(remaining, &i, "--days")
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("--days wants a positive integer, got %q", v)
			}
			args.Days = n
		case "--per-day":
			v, err := flagValue(remaining, &i, "--per-day")
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("--per-day wants a positive integer, got %q", v)
			}
			args.PerDay = n
		default:
			return fmt.Errorf("unknown seed flag %q", remaining[i])
		}
	}
	return nil
}

// flagValue returns the value following a flag, advancing the index.
func flagValue(argv []string, i *int, name string) (string, error) {
	if *i+1 >= len(argv) {
		return "", fmt.Errorf("%s wants a value", name)
	}
	*i++
	return argv[*i], nil
}
