// Package render turns widget descriptors into renderable widgets.
//
// Rendering is a pure function of (descriptor, dataset registry): the same
// pair always produces the same Widget, including colors and ordering. The
// terminal drawing of a Widget lives in internal/tui.
package render

import (
	"slices"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
)

// Point is one (x, y) pair of a series. Label is the display form of x.
type Point struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
	Y     float64 `json:"y"`
}

// Series is one dependent variable plotted against the widget's x field.
type Series struct {
	Field  string  `json:"field"`
	Label  string  `json:"label"`
	Unit   string  `json:"unit,omitempty"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// Slice is one share of a pie breakdown. Value is the authored value;
// Share is Value over the sum of all values and is only used for drawing.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
	Color string  `json:"color"`
}

// Column is one table column, in schema order.
type Column struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
}

// Grid is a rendered table: one row per record.
type Grid struct {
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Widget is the rendered, drawable form of a descriptor.
type Widget struct {
	Kind    catalog.Kind       `json:"kind"`
	Title   string             `json:"title,omitempty"`
	Caption string             `json:"caption,omitempty"`
	Note    string             `json:"note,omitempty"`
	Dataset string             `json:"dataset,omitempty"`
	XLabel  string             `json:"x_label,omitempty"`
	YLabel  string             `json:"y_label,omitempty"`
	Series  []Series           `json:"series,omitempty"`
	Slices  []Slice            `json:"slices,omitempty"`
	Grid    *Grid              `json:"grid,omitempty"`
	Text    *catalog.TextBlock `json:"text,omitempty"`
}

// Clone returns a deep copy of w: mutating the copy never reaches w.
func (w Widget) Clone() Widget {
	w.Series = slices.Clone(w.Series)
	for i := range w.Series {
		w.Series[i].Points = slices.Clone(w.Series[i].Points)
	}
	w.Slices = slices.Clone(w.Slices)
	if w.Grid != nil {
		g := Grid{Columns: slices.Clone(w.Grid.Columns), Rows: slices.Clone(w.Grid.Rows)}
		for i := range g.Rows {
			g.Rows[i] = slices.Clone(g.Rows[i])
		}
		w.Grid = &g
	}
	if w.Text != nil {
		t := w.Text.Clone()
		w.Text = &t
	}
	return w
}

// CloneWidgets deep-copies ws.
func CloneWidgets(ws []Widget) []Widget {
	out := slices.Clone(ws)
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out
}
