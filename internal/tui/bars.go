package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/abxdash/internal/render"
	"github.com/Mr-Dark-debug/abxdash/pkg/numfmt"
)

const (
	barLabelMaxWidth = 20
	barMinWidth      = 4
	pieStripMaxWidth = 60
)

// ────────────────────────────────────────────────────────────
// Bar series
// ────────────────────────────────────────────────────────────

// renderBarChart draws grouped horizontal bars: one group per x value,
// one bar per series inside the group, all on a shared scale.
func renderBarChart(w render.Widget, width int) string {
	if len(w.Series) == 0 || len(w.Series[0].Points) == 0 {
		return emptyStateStyle.Render("No data points.")
	}

	maxY := 0.0
	labelW, valueW := 0, 0
	for _, s := range w.Series {
		for _, p := range s.Points {
			maxY = math.Max(maxY, p.Y)
			labelW = max(labelW, lipgloss.Width(p.Label))
			valueW = max(valueW, lipgloss.Width(numfmt.WithUnit(p.Y, s.Unit)))
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	labelW = min(labelW, barLabelMaxWidth)
	barW := max(width-labelW-valueW-3, barMinWidth)

	var lines []string
	for i, p := range w.Series[0].Points {
		for j, s := range w.Series {
			if i >= len(s.Points) {
				continue
			}
			label := ""
			if j == 0 {
				label = truncate(p.Label, labelW)
			}
			v := s.Points[i].Y
			lines = append(lines,
				padRight(captionStyle.Render(label), labelW)+" "+
					renderBar(v, maxY, barW, s.Color)+" "+
					numfmt.WithUnit(v, s.Unit))
		}
	}
	lines = append(lines, renderLegend(w.Series))
	if axes := axisCaption(w); axes != "" {
		lines = append(lines, axes)
	}
	return strings.Join(lines, "\n")
}

// renderBar is a filled bar of v/maxV of barWidth cells. Non-zero values
// always get at least one cell.
func renderBar(v, maxV float64, barWidth int, color string) string {
	filled := 0
	if v > 0 {
		filled = clamp(int(math.Round(v/maxV*float64(barWidth))), 1, barWidth)
	}
	return seriesStyle(color).Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}

// ────────────────────────────────────────────────────────────
// Pie breakdown
// ────────────────────────────────────────────────────────────

// renderPie draws the slices as one proportional strip followed by a
// legend of authored values and their share of the total.
func renderPie(w render.Widget, width int) string {
	if len(w.Slices) == 0 {
		return emptyStateStyle.Render("No slices.")
	}
	stripW := clamp(width, 1, pieStripMaxWidth)

	var strip strings.Builder
	for i, n := range shareCells(w.Slices, stripW) {
		strip.WriteString(seriesStyle(w.Slices[i].Color).Render(strings.Repeat("█", n)))
	}

	nameW := 0
	for _, s := range w.Slices {
		nameW = max(nameW, lipgloss.Width(s.Name))
	}
	lines := []string{strip.String(), ""}
	for _, s := range w.Slices {
		lines = append(lines,
			seriesStyle(s.Color).Render("■")+" "+
				padRight(s.Name, nameW)+"  "+
				padRight(numfmt.Value(s.Value), 6)+" "+
				captionStyle.Render(numfmt.Share(s.Share)))
	}
	return strings.Join(lines, "\n")
}

// shareCells splits width cells across slices in proportion to their
// shares. Boundaries are rounded from the running total so the cells add
// up to width whenever the shares sum to one.
func shareCells(slices []render.Slice, width int) []int {
	cells := make([]int, len(slices))
	cum, prev := 0.0, 0
	for i, s := range slices {
		cum += s.Share
		end := clamp(int(math.Round(cum*float64(width))), prev, width)
		cells[i] = end - prev
		prev = end
	}
	return cells
}
