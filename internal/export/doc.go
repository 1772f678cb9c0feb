// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package export serializes the overlay's styling model back out of the
process. Two exporters share one interface:

CSSExporter (css.go) - The typed rule data rendered as a stylesheet:
:root and .night-mode token variables, base rules, @media blocks in
cascade priority order, and the spin keyframes. The stylesheet is a
projection of the same Sheets the terminal renderer consumes, so the
two surfaces cannot drift apart. Host-owned variables are emitted as
var() references only.

JSONExporter (json.go) - The resolver's computed answer for one
viewport and mode, with token references chased to concrete values.
Intended for external harnesses asserting breakpoint and theming
behavior without a terminal.

Both outputs are byte-stable: fixed ordering in CSS, sorted keys in
JSON. ExportToFile writes atomically; Preview renders to a terminal
with optional syntax highlighting.

	path, err := export.ExportToFile(export.NewCSSExporter(), "overlay.css")

	e := &export.JSONExporter{
		Viewport: cascade.Viewport{Width: 600},
		Mode:     styles.ModeDark,
	}
	err = export.Preview(os.Stdout, e, cli.IsStdoutTTY())
*/
package export
