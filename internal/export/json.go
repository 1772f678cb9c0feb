// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"

	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter emits the resolver's answer for one viewport and mode as
// a machine-checkable document: every computed declaration with token
// references chased to concrete values. It exists so an external
// harness can assert breakpoint and theming behavior without running a
// terminal.
type JSONExporter struct {
	Viewport cascade.Viewport
	Mode     styles.Mode
}

// FileExtension returns ".json".
func (e *JSONExporter) FileExtension() string { return ".json" }

// MimeType returns the JSON MIME type.
func (e *JSONExporter) MimeType() string { return "application/json" }

// computedDoc is the export schema. Styles nests element name, then
// state name, then property name. Map keys marshal sorted, which keeps
// the output byte-stable.
type computedDoc struct {
	Viewport viewportDoc                              `json:"viewport"`
	Mode     string                                   `json:"mode"`
	Styles   map[string]map[string]map[string]string `json:"styles"`
}

type viewportDoc struct {
	Width       float64 `json:"width"`
	DeviceWidth float64 `json:"device_width,omitempty"`
	Orientation string  `json:"orientation"`
	Media       string  `json:"media"`
}

// Export resolves the cascade for the viewport and renders the result.
func (e *JSONExporter) Export() ([]byte, error) {
	comp := cascade.Resolve(e.Viewport)

	doc := computedDoc{
		Viewport: viewportDoc{
			Width:       e.Viewport.Width,
			DeviceWidth: e.Viewport.DeviceWidth,
			Orientation: e.Viewport.Orientation.String(),
			Media:       e.Viewport.Media.String(),
		},
		Mode:   e.Mode.String(),
		Styles: make(map[string]map[string]map[string]string),
	}

	comp.Each(func(el cascade.Element, st cascade.State, prop cascade.Property, v cascade.Value) {
		elDoc, ok := doc.Styles[el.String()]
		if !ok {
			elDoc = make(map[string]map[string]string)
			doc.Styles[el.String()] = elDoc
		}
		stDoc, ok := elDoc[st.String()]
		if !ok {
			stDoc = make(map[string]string)
			elDoc[st.String()] = stDoc
		}
		stDoc[prop.String()] = v.Resolve(e.Mode).CSS()
	})

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode computed styles: %w", err)
	}
	return append(data, '\n'), nil
}
