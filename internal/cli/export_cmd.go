// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Handler for the export command.
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/statgraph-tui/internal/export"
	"github.com/jeranaias/statgraph-tui/internal/prefs"
	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// HandleExport emits the overlay stylesheet, or the computed styles for
// one viewport when --json is given.
func HandleExport(args Args) error {
	exporter, err := buildExporter(args)
	if err != nil {
		return err
	}

	if args.Output != "" {
		path, err := export.ExportToFile(exporter, args.Output)
		if err != nil {
			return err
		}
		if !args.Quiet {
			fmt.Printf("%s wrote %s\n", styles.StatusIndicators.Success, path)
		}
		return nil
	}

	highlight := IsStdoutTTY() && ColorsEnabled() && !args.NoColor
	return export.Preview(os.Stdout, exporter, highlight)
}

// buildExporter picks and configures the exporter for the parsed flags.
func buildExporter(args Args) (export.Exporter, error) {
	if !args.JSON {
		return export.NewCSSExporter(), nil
	}

	mode, err := exportMode(args)
	if err != nil {
		return nil, err
	}

	vp := cascade.Viewport{
		Width:       args.WidthPx,
		DeviceWidth: args.WidthPx,
	}
	if args.Media == "print" {
		vp.Media = cascade.MediaPrint
	}

	return &export.JSONExporter{Viewport: vp, Mode: mode}, nil
}

// exportMode resolves the --mode flag, falling back to the preference
// (with auto probed against the terminal background).
func exportMode(args Args) (styles.Mode, error) {
	if args.Mode == "" {
		return prefs.Global().EffectiveMode(), nil
	}
	return styles.ParseMode(args.Mode)
}
