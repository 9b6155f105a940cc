package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/abxdash/internal/render"
)

// gridHeaderLines is the header row plus its bottom border.
const gridHeaderLines = 2

// renderGrid draws a tabular-grid widget as a static bubbles table. Column
// widths fit the widest of header and cells, shrunk evenly when the total
// would overflow width.
func renderGrid(g *render.Grid, width int) string {
	if g == nil || len(g.Columns) == 0 {
		return emptyStateStyle.Render("No columns.")
	}

	widths := make([]int, len(g.Columns))
	for i, c := range g.Columns {
		widths[i] = lipgloss.Width(c.Label)
	}
	for _, row := range g.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	fitWidths(widths, width)

	cols := make([]table.Column, len(g.Columns))
	for i, c := range g.Columns {
		cols[i] = table.Column{Title: c.Label, Width: widths[i]}
	}
	rows := make([]table.Row, len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+gridHeaderLines),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(colorGold).
		BorderForeground(colorDivider)
	styles.Cell = styles.Cell.Foreground(colorText)
	// Nothing is selectable; keep the cursor row unstyled.
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t.View()
}

// fitWidths shrinks column widths in place until the table, including
// each cell's two cells of padding, fits in width. No column goes below 3.
func fitWidths(widths []int, width int) {
	total := func() int {
		sum := 0
		for _, w := range widths {
			sum += w + 2
		}
		return sum
	}
	for total() > width {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 3 {
			return
		}
		widths[widest]--
	}
}
