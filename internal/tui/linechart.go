package tui

import (
	"math"
	"strconv"
	"strings"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"

	"github.com/Mr-Dark-debug/abxdash/internal/render"
	"github.com/Mr-Dark-debug/abxdash/pkg/numfmt"
)

const (
	lineChartHeight = 12
	lineChartYSteps = 2
)

// renderLineChart draws every series of w on one braille chart. The x
// values are plotted on ntcharts' time axis as Unix seconds, so a year of
// 2024 sits at t=2024s and the x labels print the number back.
func renderLineChart(w render.Widget, width int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := 0.0, math.Inf(-1)
	points := 0
	for _, s := range w.Series {
		for _, p := range s.Points {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
			points++
		}
	}
	if points == 0 {
		return emptyStateStyle.Render("No data points.")
	}
	if maxY <= minY {
		maxY = minY + 1
	}

	start := time.Unix(int64(math.Floor(minX)), 0)
	end := time.Unix(int64(math.Ceil(maxX)), 0)
	if !end.After(start) {
		end = start.Add(time.Second)
	}

	chart := tslc.New(width, lineChartHeight)
	chart.SetXStep(1)
	chart.SetYStep(lineChartYSteps)
	chart.AxisStyle = chartAxisStyle
	chart.LabelStyle = chartLabelStyle
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	yMax := niceCeil(maxY)
	chart.SetYRange(minY, yMax)
	chart.SetViewYRange(minY, yMax)
	chart.Model.XLabelFormatter = func(_ int, v float64) string {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	chart.Model.YLabelFormatter = func(_ int, v float64) string {
		return numfmt.Compact(v)
	}

	for _, s := range w.Series {
		chart.SetDataSetStyle(s.Field, seriesStyle(s.Color))
		for _, p := range s.Points {
			chart.PushDataSet(s.Field, tslc.TimePoint{
				Time:  time.Unix(int64(math.Round(p.X)), 0),
				Value: p.Y,
			})
		}
	}
	chart.DrawBrailleAll()

	lines := []string{chart.View(), renderLegend(w.Series)}
	if axes := axisCaption(w); axes != "" {
		lines = append(lines, axes)
	}
	return strings.Join(lines, "\n")
}

// renderLegend lists series colors and labels on one line.
func renderLegend(series []render.Series) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		parts = append(parts, seriesStyle(s.Color).Render("━━")+" "+captionStyle.Render(s.Label))
	}
	return strings.Join(parts, "   ")
}

func axisCaption(w render.Widget) string {
	var parts []string
	if w.XLabel != "" {
		parts = append(parts, "x: "+w.XLabel)
	}
	if w.YLabel != "" {
		parts = append(parts, "y: "+w.YLabel)
	}
	return axisLabelStyle.Render(strings.Join(parts, "   "))
}
