package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen cells and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// wrap word-wraps s to width cells using style.
func wrap(style lipgloss.Style, s string, width int) string {
	if width < 1 {
		width = 1
	}
	return style.Width(width).Render(s)
}

// hangingIndent wraps s to width and prefixes the first line with lead and
// every following line with spaces of the same width.
func hangingIndent(lead string, style lipgloss.Style, s string, width int) string {
	leadW := lipgloss.Width(lead)
	body := wrap(style, s, width-leadW)
	lines := strings.Split(body, "\n")
	pad := strings.Repeat(" ", leadW)
	for i := range lines {
		if i == 0 {
			lines[i] = lead + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// ────────────────────────────────────────────────────────────
// Numeric helpers
// ────────────────────────────────────────────────────────────

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(v)))
	f := v / pow
	switch {
	case f <= 1:
		return 1 * pow
	case f <= 2:
		return 2 * pow
	case f <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}
