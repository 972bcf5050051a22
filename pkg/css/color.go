package css

import (
	"strconv"
	"strings"
)

// Color is an RGBA color with an alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

var namedColors = map[string]Color{
	"black":   {0, 0, 0, 1},
	"white":   {255, 255, 255, 1},
	"red":     {255, 0, 0, 1},
	"green":   {0, 128, 0, 1},
	"blue":    {0, 0, 255, 1},
	"yellow":  {255, 255, 0, 1},
	"cyan":    {0, 255, 255, 1},
	"magenta": {255, 0, 255, 1},
	"gray":    {128, 128, 128, 1},
	"grey":    {128, 128, 128, 1},
	"orange":  {255, 165, 0, 1},
	"purple":  {128, 0, 128, 1},
	"pink":    {255, 192, 203, 1},
	"brown":   {165, 42, 42, 1},
	"lime":    {0, 255, 0, 1},
	"navy":    {0, 0, 128, 1},
	"teal":    {0, 128, 128, 1},
	"silver":  {192, 192, 192, 1},
	"maroon":  {128, 0, 0, 1},
	"olive":   {128, 128, 0, 1},
	"aqua":    {0, 255, 255, 1},
	"fuchsia": {255, 0, 255, 1},
}

// ParseColor parses a CSS color value: a named color, #rgb, #rrggbb,
// rgb(r, g, b) or rgba(r, g, b, a). "transparent" parses to a fully
// transparent color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, false
	}
	if s == "transparent" {
		return Color{A: 0}, true
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBColor(s)
	}
	return Color{}, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return Color{}, false
		}
		return Color{R: r * 17, G: g * 17, B: b * 17, A: 1}, true
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 1,
		}, true
	}
	return Color{}, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func parseRGBColor(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	close := strings.IndexByte(s, ')')
	if open < 0 || close < open {
		return Color{}, false
	}
	parts := strings.Split(s[open+1:close], ",")
	if len(parts) < 3 {
		return Color{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Color{}, false
		}
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		ch[i] = uint8(v)
	}
	alpha := 1.0
	if len(parts) >= 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Color{}, false
		}
		if a < 0 {
			a = 0
		}
		if a > 1 {
			a = 1
		}
		alpha = a
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: alpha}, true
}
