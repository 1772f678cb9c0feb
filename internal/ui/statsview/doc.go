// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package statsview provides the review statistics dashboard for the TUI.

The dashboard is a Bubble Tea model composing the graph components: a
pinned range selector, scrolling chart panels and a status line. It is
the host the styling layers serve; it supplies the terminal-sized
viewport to the cascade resolver and the concrete mode to the theme.

Terminal cells bridge to the px-denominated breakpoints at 8px per
column and 16px per row, so an 80-column terminal resolves like a 640px
window and picks up the narrow-layout overrides.

Data flows one way: key and mouse events mutate the range selection or
hover state, loadCmd queries the store off the UI goroutine, and one
DataLoadedMsg updates every panel atomically. Preference file changes
arrive through a watcher and rebuild the theme live, which is how an
external night-mode toggle propagates without restarting.
*/
package statsview
