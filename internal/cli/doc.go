// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements statgraph's command-line surface.

Parsing is hand-rolled: Parse maps argv onto a Command constant and an
Args struct, global flags first, then per-command flags. Each command
has a Handle* function in its own file; main dispatches to them.

Commands:

	statgraph            the dashboard (default)
	statgraph export     stylesheet or computed-style JSON
	statgraph prefs      show/path/set preferences
	statgraph seed       sample review history
	statgraph doctor     environment diagnostics
	statgraph version    version information

terminal.go probes TTYs, sizes and color support so command output
degrades cleanly when piped.
*/
package cli
