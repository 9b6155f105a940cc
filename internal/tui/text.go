package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
)

// renderText lays out a static text block: heading, wrapped paragraphs,
// bullets with a hanging indent, then links with their targets.
func renderText(tb *catalog.TextBlock, width int) string {
	if tb == nil {
		return ""
	}
	var sections []string
	if tb.Heading != "" {
		sections = append(sections, textHeadingStyle.Render(tb.Heading))
	}
	for _, p := range tb.Paragraphs {
		sections = append(sections, wrap(paragraphStyle, p, width))
	}
	if len(tb.Bullets) > 0 {
		lines := make([]string, 0, len(tb.Bullets))
		for _, b := range tb.Bullets {
			lines = append(lines, hangingIndent(bulletStyle.Render("• "), paragraphStyle, b, width))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	if len(tb.Links) > 0 {
		lines := make([]string, 0, len(tb.Links))
		for _, l := range tb.Links {
			lines = append(lines, hangingIndent(bulletStyle.Render("→ "), linkLabelStyle, l.Label, width))
			lines = append(lines, "  "+linkURLStyle.Render(truncate(l.URL, width-2)))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}
