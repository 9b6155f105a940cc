package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/page"
	"github.com/Mr-Dark-debug/abxdash/internal/render"
)

// minWidth is the narrowest layout the widgets are drawn for.
const minWidth = 40

// RenderPage draws a whole page as static text: header, tab bar, every
// widget of the active view, then the page footer.
func RenderPage(p page.Page, width int) string {
	width = max(width, minWidth)
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(p, width),
		renderNav(p, width),
		renderScrollBody(p, width),
	)
}

// renderScrollBody is everything below the tab bar: the view, then the
// page footer.
func renderScrollBody(p page.Page, width int) string {
	body := renderBody(p, width)
	if footer := renderPageFooter(p, max(width, minWidth)); footer != "" {
		body += "\n\n" + footer
	}
	return body
}

// renderBody draws the heading and widgets of the active view.
func renderBody(p page.Page, width int) string {
	width = max(width, minWidth)
	var blocks []string
	if p.Heading != "" {
		blocks = append(blocks, headingStyle.Render(p.Heading))
	}
	for _, w := range p.Widgets {
		blocks = append(blocks, renderWidget(w, width))
	}
	if len(p.Widgets) == 0 {
		blocks = append(blocks, emptyStateStyle.Render("Nothing to show on this tab."))
	}
	return strings.Join(blocks, "\n")
}

// renderWidget wraps one widget's drawing in a titled panel.
func renderWidget(w render.Widget, width int) string {
	inner := width - 4 // border + padding

	var parts []string
	if w.Title != "" {
		parts = append(parts, panelTitleStyle.Render(truncate(w.Title, inner)))
	}
	if w.Caption != "" {
		parts = append(parts, wrap(captionStyle, w.Caption, inner))
	}

	switch w.Kind {
	case catalog.KindLine:
		parts = append(parts, renderLineChart(w, inner))
	case catalog.KindBar:
		parts = append(parts, renderBarChart(w, inner))
	case catalog.KindPie:
		parts = append(parts, renderPie(w, inner))
	case catalog.KindTable:
		parts = append(parts, renderGrid(w.Grid, inner))
	case catalog.KindText:
		parts = append(parts, renderText(w.Text, inner))
	}

	if w.Note != "" {
		parts = append(parts, wrap(noteStyle, w.Note, inner))
	}
	return panelStyle.Width(width - 2).Render(strings.Join(parts, "\n"))
}
