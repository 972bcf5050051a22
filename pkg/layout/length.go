package layout

import (
	"strconv"
	"strings"
)

// RootFontSize is the fixed rem base.
const RootFontSize = 16.0

// ParseLength converts a CSS length value to pixels. px is literal, % is
// relative to reference, em is relative to fontSize, rem to the fixed root
// size, a bare number is pixels, and auto/none/unparseable values are 0.
func ParseLength(value string, reference, fontSize float64) float64 {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "", "auto", "none":
		return 0
	}

	switch {
	case strings.HasSuffix(value, "px"):
		return parseNumber(strings.TrimSuffix(value, "px"))
	case strings.HasSuffix(value, "%"):
		return parseNumber(strings.TrimSuffix(value, "%")) / 100 * reference
	case strings.HasSuffix(value, "rem"):
		return parseNumber(strings.TrimSuffix(value, "rem")) * RootFontSize
	case strings.HasSuffix(value, "em"):
		return parseNumber(strings.TrimSuffix(value, "em")) * fontSize
	}
	return parseNumber(value)
}

func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}

// parseEdgeShorthand expands a margin/padding style shorthand:
// 1 value → all sides, 2 → vertical/horizontal, 3 → top/horizontal/bottom,
// 4 → top/right/bottom/left.
func parseEdgeShorthand(value string, reference, fontSize float64) EdgeSizes {
	fields := strings.Fields(value)
	px := make([]float64, len(fields))
	for i, f := range fields {
		px[i] = ParseLength(f, reference, fontSize)
	}

	switch len(px) {
	case 1:
		return EdgeSizes{Top: px[0], Right: px[0], Bottom: px[0], Left: px[0]}
	case 2:
		return EdgeSizes{Top: px[0], Right: px[1], Bottom: px[0], Left: px[1]}
	case 3:
		return EdgeSizes{Top: px[0], Right: px[1], Bottom: px[2], Left: px[1]}
	case 4:
		return EdgeSizes{Top: px[0], Right: px[1], Bottom: px[2], Left: px[3]}
	}
	return EdgeSizes{}
}
