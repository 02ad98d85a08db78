package showroom

import "regexp"

const (
	MinFontSize = 10
	MaxFontSize = 60
)

var (
	hexColorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	rgbColorRe = regexp.MustCompile(`^rgba?\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*(,\s*[\d.]+)?\s*\)$`)
)

// IsValidColor accepts #RGB, #RRGGBB, rgb(r, g, b) and rgba(r, g, b, a).
// The store does not call it; editors use it before writing a color.
func IsValidColor(color string) bool {
	return hexColorRe.MatchString(color) || rgbColorRe.MatchString(color)
}

func IsValidFontSize(size int) bool {
	return size >= MinFontSize && size <= MaxFontSize
}

func IsValidRadius(radius int) bool {
	return radius >= 0
}

func IsValidSpacing(spacing int) bool {
	return spacing >= 0
}

// ClampFontSize bounds size to the supported font range.
func ClampFontSize(size int) int {
	return max(MinFontSize, min(MaxFontSize, size))
}

// ClampNonNegative is applied to radii, spacing, padding and stroke weight.
func ClampNonNegative(n int) int {
	return max(0, n)
}
