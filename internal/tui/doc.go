// Package tui implements the abxdash terminal user interface.
//
// Built with Charmbracelet's BubbleTea, Lipgloss and Bubbles libraries,
// with line charts drawn by ntcharts.
//
// Component architecture:
//
//	model.go     — root model, message routing, Init/Update/View
//	keys.go      — key bindings
//	theme.go     — centralized color + style definitions
//	header.go    — title bar, tab bar and status line
//	page.go      — static page rendering shared with the CLI
//	linechart.go — line-series widgets
//	bars.go      — bar-series and pie-breakdown widgets
//	grid.go      — tabular-grid widgets
//	text.go      — static text blocks
//	helpers.go   — truncation, wrapping, number scales
package tui
