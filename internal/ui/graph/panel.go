// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package graph provides the chart components for the statgraph TUI.
package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/statgraph-tui/internal/storage"
	"github.com/jeranaias/statgraph-tui/internal/ui/cascade"
	"github.com/jeranaias/statgraph-tui/internal/ui/styles"
	"github.com/jeranaias/statgraph-tui/internal/util"
)

// =============================================================================
// GRAPH PANEL
// =============================================================================

// gutterWidth is the y-axis label column: a 5-digit count, a space and
// the axis bar.
const gutterWidth = 7

// defaultChartHeight is the bar area height in rows.
const defaultChartHeight = 8

// Panel renders one bar chart of reviews per day. Data columns wider
// than the panel are folded into multi-day buckets so the full span
// always fits. The panel draws nothing interactive itself; it registers
// its hover zones in a HitMap and the caller decides what a hover
// means.
type Panel struct {
	Title    string
	Subtitle string

	// Series is the reviews-per-day data, oldest first.
	Series []storage.DayCount

	// Breakdown is the answer-button legend. Shown when ShowLegend is
	// set and the panel has data.
	Breakdown  storage.EaseCounts
	ShowLegend bool

	// Hovered is the hovered bucket index, -1 for none.
	Hovered int

	// Width is the full panel width in cells.
	Width int

	// ChartHeight is the bar area height in rows.
	ChartHeight int

	// HideDomain scopes the panel so its axis baseline is suppressed,
	// for charts whose zero line would only add noise.
	HideDomain bool

	// NoDataText is the placeholder label, "NO DATA" when empty.
	NoDataText string
}

// NewPanel creates a panel with nothing hovered.
func NewPanel(title string) *Panel {
	return &Panel{
		Title:       title,
		Hovered:     -1,
		Width:       80,
		ChartHeight: defaultChartHeight,
	}
}

// HasData reports whether there is anything to plot.
func (p *Panel) HasData() bool {
	for _, dc := range p.Series {
		if dc.Count > 0 {
			return true
		}
	}
	return false
}

// Total returns the number of reviews in the series.
func (p *Panel) Total() int {
	total := 0
	for _, dc := range p.Series {
		total += dc.Count
	}
	return total
}

// =============================================================================
// BUCKETS
// =============================================================================

// Bucket is one rendered column: one or more consecutive days folded
// together.
type Bucket struct {
	Start time.Time
	End   time.Time
	Count int
}

// Label formats the bucket for the hover readout.
func (b Bucket) Label() string {
	reviews := "reviews"
	if b.Count == 1 {
		reviews = "review"
	}
	if b.Start.Equal(b.End) {
		return fmt.Sprintf("%s: %d %s", b.Start.Format("Jan 2"), b.Count, reviews)
	}
	return fmt.Sprintf("%s - %s: %d %s", b.Start.Format("Jan 2"), b.End.Format("Jan 2"), b.Count, reviews)
}

// chartCols returns how many data columns fit beside the gutter.
func (p *Panel) chartCols() int {
	cols := p.Width - gutterWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// chartHeight returns the configured bar area height.
func (p *Panel) chartHeight() int {
	if p.ChartHeight > 0 {
		return p.ChartHeight
	}
	return defaultChartHeight
}

// Buckets folds the series into at most chartCols columns of equal day
// spans. The last bucket always ends on the last series day.
func (p *Panel) Buckets() []Bucket {
	n := len(p.Series)
	if n == 0 {
		return nil
	}

	cols := p.chartCols()
	per := (n + cols - 1) / cols

	var buckets []Bucket
	for i := 0; i < n; i += per {
		end := i + per - 1
		if end >= n {
			end = n - 1
		}
		b := Bucket{
			Start: p.Series[i].Day,
			End:   p.Series[end].Day,
		}
		for j := i; j <= end; j++ {
			b.Count += p.Series[j].Count
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// =============================================================================
// LAYOUT
// =============================================================================

// headerRows returns how many rows the title block takes. The legend
// row is reserved whenever it is enabled, data or not, so the panel's
// footprint never depends on what the query returned.
func (p *Panel) headerRows() int {
	rows := 1
	if p.Subtitle != "" {
		rows++
	}
	if p.ShowLegend {
		rows++
	}
	return rows
}

// Height returns the panel's total rows. The chart block has the same
// footprint whether it shows bars or the no-data placeholder, so
// toggling between them never shifts the layout below.
func (p *Panel) Height() int {
	return p.headerRows() + p.chartHeight() + 2 // chart + axis row + tick row
}

// =============================================================================
// RENDERING
// =============================================================================

// Render draws the panel and registers its hover geometry. The origin
// is the panel's top-left cell in the composed screen; hits may be nil
// when the output is not interactive, such as print export.
func (p *Panel) Render(th *styles.Theme, comp *cascade.Computed, hits *HitMap, originX, originY int) string {
	var lines []string

	lines = append(lines, th.Title.Render(util.CenterWidth(p.Title, p.Width)))
	if p.Subtitle != "" {
		lines = append(lines, th.Subtitle.Render(util.CenterWidth(p.Subtitle, p.Width)))
	}
	if p.ShowLegend {
		if p.HasData() {
			lines = append(lines, p.renderLegend(th))
		} else {
			lines = append(lines, strings.Repeat(" ", p.Width))
		}
	}

	if !p.HasData() {
		lines = append(lines, p.renderNoData(th)...)
	} else {
		lines = append(lines, p.renderChart(th, comp, hits, originX, originY+len(lines))...)
	}

	return strings.Join(lines, "\n")
}

// renderLegend draws the answer-button breakdown, each count in its
// series color.
func (p *Panel) renderLegend(th *styles.Theme) string {
	entries := []struct {
		label string
		count int
		ease  int
	}{
		{"again", p.Breakdown.Again, 1},
		{"hard", p.Breakdown.Hard, 2},
		{"good", p.Breakdown.Good, 3},
		{"easy", p.Breakdown.Easy, 4},
	}

	var parts []string
	for _, e := range entries {
		swatch := lipgloss.NewStyle().Foreground(th.EaseColor(e.ease))
		parts = append(parts, swatch.Render(fmt.Sprintf("%s %d", e.label, e.count)))
	}

	row := strings.Join(parts, th.Legend.Render(" | "))
	pad := (p.Width - util.Width(fmt.Sprintf("again %d | hard %d | good %d | easy %d",
		p.Breakdown.Again, p.Breakdown.Hard, p.Breakdown.Good, p.Breakdown.Easy))) / 2
	if pad > 0 {
		row = strings.Repeat(" ", pad) + row
	}
	return row
}

// renderNoData draws the centered placeholder over the chart block's
// footprint.
func (p *Panel) renderNoData(th *styles.Theme) []string {
	text := p.NoDataText
	if text == "" {
		text = "NO DATA"
	}

	rows := p.chartHeight() + 2
	mid := rows / 2

	lines := make([]string, rows)
	for i := range lines {
		if i == mid {
			lines[i] = th.NoData.Render(util.CenterWidth(text, p.Width))
		} else {
			lines[i] = th.NoData.Render(strings.Repeat(" ", p.Width))
		}
	}
	return lines
}

// renderChart draws the bars, axis and tick labels, and registers the
// hover zones.
func (p *Panel) renderChart(th *styles.Theme, comp *cascade.Computed, hits *HitMap, originX, chartY int) []string {
	buckets := p.Buckets()
	height := p.chartHeight()

	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(th.AreaFillHex))
	stroke := lipgloss.NewStyle().Foreground(lipgloss.Color(th.AreaStrokeHex))
	hoverFill := fill.Background(lipgloss.Color(th.HoverFillHex))
	hoverStroke := stroke.Background(lipgloss.Color(th.HoverFillHex))
	hoverBlank := th.HoverColumn

	// Bar heights in rows, top row of each bar drawn as the stroke.
	barRows := make([]int, len(buckets))
	for i, b := range buckets {
		if maxCount > 0 && b.Count > 0 {
			barRows[i] = (b.Count*height + maxCount - 1) / maxCount
		}
	}

	var lines []string
	for row := 0; row < height; row++ {
		var sb strings.Builder
		if row == 0 {
			sb.WriteString(th.Axis.Render(fmt.Sprintf("%5d |", maxCount)))
		} else {
			sb.WriteString(th.Axis.Render("      |"))
		}

		fromTop := height - row // rows at or below this one, inclusive
		for i := range buckets {
			hovered := i == p.Hovered
			switch {
			case barRows[i] == fromTop:
				// Top edge of this bar.
				if hovered {
					sb.WriteString(hoverStroke.Render("#"))
				} else {
					sb.WriteString(stroke.Render("#"))
				}
			case barRows[i] > fromTop:
				if hovered {
					sb.WriteString(hoverFill.Render("#"))
				} else {
					sb.WriteString(fill.Render("#"))
				}
			default:
				if hovered {
					sb.WriteString(hoverBlank.Render(" "))
				} else {
					sb.WriteString(" ")
				}
			}
		}
		lines = append(lines, sb.String())
	}

	lines = append(lines, p.renderAxis(th, comp, len(buckets)))
	lines = append(lines, p.renderTicks(th, comp, buckets))

	if hits != nil {
		chartX := originX + gutterWidth
		// The decorative area sits under the hover zones and never
		// takes the pointer; zones are one column each, full height.
		hits.Add(cascade.Area, -1, chartX, chartY, chartX+len(buckets)-1, chartY+height-1)
		for i := range buckets {
			hits.Add(cascade.HoverRect, i, chartX+i, chartY, chartX+i, chartY+height-1)
		}
	}

	return lines
}

// renderAxis draws the baseline row. A panel scoped to hide its domain
// renders blank cells instead so tick labels keep their alignment.
func (p *Panel) renderAxis(th *styles.Theme, comp *cascade.Computed, cols int) string {
	showBaseline := !p.HideDomain || comp.Visible(cascade.Domain)
	if !showBaseline {
		return strings.Repeat(" ", gutterWidth+cols)
	}
	return th.Axis.Render(fmt.Sprintf("%5d +", 0) + strings.Repeat("-", cols))
}

// renderTicks draws the date labels under the axis. Label density
// follows the computed styles: when the narrow layout drops the odd
// ticks, every other label disappears and the survivors render
// emphasized, mirroring their larger font.
func (p *Panel) renderTicks(th *styles.Theme, comp *cascade.Computed, buckets []Bucket) string {
	cells := make([]rune, len(buckets))
	for i := range cells {
		cells[i] = ' '
	}

	const tickSpacing = 7 // room for a "Jan 02" label plus a gap
	oddVisible := comp.Visible(cascade.TickOdd)

	tickIdx := 0
	for col := 0; col < len(buckets); col += tickSpacing {
		odd := tickIdx%2 == 1
		tickIdx++
		if odd && !oddVisible {
			continue
		}
		label := buckets[col].Start.Format("Jan 02")
		for j, r := range label {
			if col+j >= len(cells) {
				break
			}
			cells[col+j] = r
		}
	}

	tick := th.Tick
	if sz, ok := comp.FontSizePx(cascade.Tick); ok && sz >= 16 {
		tick = tick.Bold(true)
	}
	return strings.Repeat(" ", gutterWidth) + tick.Render(string(cells))
}
