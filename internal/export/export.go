// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export serializes the overlay's styling model back out of the
// process: as a stylesheet mirroring the rule data, and as a computed
// style document for one viewport. Both outputs are byte-stable so they
// can be diffed across versions.
package export

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/jeranaias/statgraph-tui/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for style exporters.
type Exporter interface {
	// Export renders the target format and returns the content.
	Export() ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".css").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// defaultBasename names exports when the caller gives no path.
const defaultBasename = "statgraph-styles"

// ExportToFile writes an export to path atomically, deriving the file
// name and extension when the caller leaves them off. Returns the path
// actually written.
func ExportToFile(e Exporter, path string) (string, error) {
	data, err := e.Export()
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if path == "" {
		path = defaultBasename + e.FileExtension()
	} else if filepath.Ext(path) == "" {
		path += e.FileExtension()
	}

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// Preview writes an export to w. With highlight set the content is
// syntax-colored for a terminal; highlighting failures fall back to the
// plain bytes rather than losing the output.
func Preview(w io.Writer, e Exporter, highlight bool) error {
	data, err := e.Export()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if highlight {
		lexer := lexerFor(e.MimeType())
		if err := quick.Highlight(w, string(data), lexer, "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err = w.Write(data)
	return err
}

// lexerFor maps an export MIME type to a chroma lexer name.
func lexerFor(mime string) string {
	switch mime {
	case "application/json":
		return "json"
	default:
		return "css"
	}
}
