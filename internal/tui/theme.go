package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — Al-Balqa green and gold
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere,
// except the per-series colors that arrive with rendered widgets.

var (
	// Base
	colorBgSurface = lipgloss.Color("#10241a")

	// Text
	colorText      = lipgloss.Color("#eef3ee")
	colorTextDim   = lipgloss.Color("#9fb3a6")
	colorTextMuted = lipgloss.Color("#55695c")

	// Brand
	colorGreen = lipgloss.Color("#006B3F")
	colorGold  = lipgloss.Color("#C9A900")
	colorTeal  = lipgloss.Color("#00C49F")

	// Structural
	colorDivider = lipgloss.Color("#2b3d31")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorGreen).
			Foreground(colorText).
			Padding(0, 1)

	headerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorGold)

	headerLogoStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)
)

// Tab bar
var (
	tabStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Background(colorGold).
			Bold(true).
			Padding(0, 1)

	tabIndexStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	tabBarStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{Bottom: "─"}, false, false, true, false).
			BorderForeground(colorDivider)
)

// Body
var (
	headingStyle = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	captionStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	noteStyle = lipgloss.NewStyle().
			Foreground(colorGold).
			Italic(true)

	axisLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	chartAxisStyle = lipgloss.NewStyle().
			Foreground(colorDivider)

	chartLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(1, 2)
)

// Text blocks
var (
	textHeadingStyle = lipgloss.NewStyle().
				Foreground(colorTeal).
				Bold(true)

	paragraphStyle = lipgloss.NewStyle().
			Foreground(colorText)

	bulletStyle = lipgloss.NewStyle().
			Foreground(colorGold)

	linkLabelStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Underline(true)

	linkURLStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(colorGold).
				Background(colorBgSurface).
				Bold(true).
				Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Background(colorBgSurface)

	pageFooterStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Align(lipgloss.Center)
)

// seriesStyle colors a series or slice with its rendered hex color.
func seriesStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
