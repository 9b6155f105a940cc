package render

// Palette is an ordered list of hex colors assigned to series by position.
type Palette []string

// DefaultPalette returns the page's brand colors.
func DefaultPalette() Palette {
	return Palette{"#006B3F", "#C9A900", "#00C49F"}
}

// Color returns the color for position i, wrapping around the palette.
func (p Palette) Color(i int) string {
	if len(p) == 0 || i < 0 {
		return ""
	}
	return p[i%len(p)]
}
