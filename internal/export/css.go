// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
)

// =============================================================================
// CSS EXPORTER
// =============================================================================

// CSSExporter serializes the typed rule data back into a stylesheet:
// token variables for both modes, the base rules, the @media override
// blocks in cascade order, and the spin keyframes. The output is a
// projection of the same data the terminal renderer consumes, so the
// stylesheet and the dashboard can never drift apart.
//
// Host-owned variables (--text-fg and friends) are emitted as var()
// references only; the surrounding application supplies their values.
type CSSExporter struct{}

// NewCSSExporter creates a stylesheet exporter.
func NewCSSExporter() *CSSExporter {
	return &CSSExporter{}
}

// FileExtension returns ".css".
func (e *CSSExporter) FileExtension() string { return ".css" }

// MimeType returns the CSS MIME type.
func (e *CSSExporter) MimeType() string { return "text/css" }

// Export renders the stylesheet. Ordering is fixed: tokens, then the
// sheets in cascade priority order, then keyframes.
func (e *CSSExporter) Export() ([]byte, error) {
	var b strings.Builder
	b.WriteString("/* statgraph graph overlay - generated, do not edit */\n\n")

	writeTokenBlock(&b, ":root", styles.ModeLight)
	writeTokenBlock(&b, ".night-mode", styles.ModeDark)

	for _, sheet := range cascade.Sheets {
		writeSheet(&b, sheet)
	}

	writeKeyframes(&b, styles.Spin)
	return []byte(b.String()), nil
}

// writeTokenBlock emits one mode's token variables.
func writeTokenBlock(b *strings.Builder, selector string, m styles.Mode) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, t := range styles.AllTokens() {
		fmt.Fprintf(b, "  %s: %s;\n", t.CSSVar(), styles.Resolve(t, m).CSS())
	}
	b.WriteString("}\n\n")
}

// writeSheet emits one sheet, wrapped in its @media header when the
// condition is not the base one.
func writeSheet(b *strings.Builder, sheet cascade.Sheet) {
	header := sheet.Cond.CSS()
	indent := ""
	if header != "" {
		b.WriteString(header)
		b.WriteString(" {\n")
		indent = "  "
	}

	for i, rule := range sheet.Rules {
		if i > 0 {
			b.WriteString("\n")
		}
		writeRule(b, indent, rule)
	}

	if header != "" {
		b.WriteString("}\n")
	}
	b.WriteString("\n")
}

// writeRule emits one rule with its declarations in source order.
func writeRule(b *strings.Builder, indent string, rule cascade.Rule) {
	b.WriteString(indent)
	b.WriteString(rule.Element.StateSelector(rule.State))
	b.WriteString(" {\n")
	for _, d := range rule.Decls {
		fmt.Fprintf(b, "%s  %s: %s;\n", indent, d.Prop, d.Value.CSS())
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

// writeKeyframes emits the rotation animation.
func writeKeyframes(b *strings.Builder, a styles.SpinAnimation) {
	fmt.Fprintf(b, "@keyframes %s {\n", a.Name)
	for _, kf := range a.Keyframes {
		fmt.Fprintf(b, "  %s%% { transform: rotate(%sdeg); }\n",
			formatNumber(kf.Percent), formatNumber(kf.Degrees))
	}
	b.WriteString("}\n")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
