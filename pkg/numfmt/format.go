// Package numfmt formats the pre-baked dataset values for display.
//
// Values are authored as plain numbers (index points, percentages, years).
// These helpers keep integral values free of trailing decimals so a table
// cell reads "2024" rather than "2024.00".
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value formats v with at most two decimals and no trailing zeros.
// Examples: "100", "22.5", "0.33"
func Value(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// WithUnit appends a unit to the formatted value. Percent signs attach
// directly, other units are separated by a space.
// Examples: "47%", "12 kg"
func WithUnit(v float64, unit string) string {
	switch unit {
	case "":
		return Value(v)
	case "%":
		return Value(v) + "%"
	default:
		return Value(v) + " " + unit
	}
}

// Share formats a 0..1 proportion as a percentage with one decimal.
// Example: 0.35 -> "35.0%"
func Share(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// Compact shortens large axis values.
// Examples: "950", "1.2k", "34k", "2.5m"
func Compact(v float64) string {
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1_000_000:
		return sign + trimDecimal(fmt.Sprintf("%.1fm", abs/1_000_000))
	case abs >= 10_000:
		return sign + fmt.Sprintf("%dk", int(abs/1_000))
	case abs >= 1_000 && abs != math.Trunc(abs):
		return sign + trimDecimal(fmt.Sprintf("%.1fk", abs/1_000))
	default:
		return Value(v)
	}
}

func trimDecimal(s string) string {
	return strings.Replace(s, ".0", "", 1)
}
