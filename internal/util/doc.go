// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the statgraph application.
//
// This package contains the small helpers shared across packages:
// display-width string layout and crash-safe file writing.
//
// # Key Functions
//
// Width Utilities (display cells, not runes):
//   - Width: terminal display width of a string
//   - TruncateWidth: cell-aware truncation with a ".." marker
//   - PadWidth, CenterWidth: cell-aware padding for column layout
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	label := util.PadWidth(deckName, 20)
//
//	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
//		return err
//	}
package util
