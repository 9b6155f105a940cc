package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/abxdash/internal/page"
)

// renderHeader produces the title bar:
//
//	Antibiotics: Discovery, Benefits, Misuse, and Solutions
//	Presented by …  [Al-Balqa Applied University Logo]
func renderHeader(p page.Page, width int) string {
	inner := width - 2
	lines := []string{headerTitleStyle.Render(truncate(p.Header.Title, inner))}

	var meta []string
	if p.Header.Subtitle != "" {
		meta = append(meta, headerMetaStyle.Render(p.Header.Subtitle))
	}
	if p.Header.Logo.Alt != "" {
		meta = append(meta, headerLogoStyle.Render("["+p.Header.Logo.Alt+"]"))
	}
	if len(meta) > 0 {
		lines = append(lines, wrap(lipgloss.NewStyle(), strings.Join(meta, "  "), inner))
	}
	return headerBarStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderNav produces the tab bar in catalog order. Tabs are numbered for
// the jump keys; only the first nine get a number.
func renderNav(p page.Page, width int) string {
	tabs := make([]string, 0, len(p.Nav))
	for i, item := range p.Nav {
		idx := " "
		if i < 9 {
			idx = strconv.Itoa(i + 1)
		}
		style := tabStyle
		if item.Active {
			style = tabActiveStyle
		}
		tabs = append(tabs, tabIndexStyle.Render(idx)+style.Render(item.Label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return tabBarStyle.Width(width).Render(bar)
}

// renderPageFooter is the page's own footer line.
func renderPageFooter(p page.Page, width int) string {
	if p.Footer == "" {
		return ""
	}
	return pageFooterStyle.Width(width).Render(p.Footer)
}

// renderStatusBar produces the bottom status line with keyboard hints.
func renderStatusBar(m *Model) string {
	var left string
	switch {
	case m.statusMsg != "" && m.err != nil:
		left = statusErrorStyle.Render(m.statusMsg)
	case m.statusMsg != "":
		left = statusStyle.Render(m.statusMsg)
	}
	right := renderHints(m.keys.hints())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		MaxWidth(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+hintDescStyle.Render(" "+h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
