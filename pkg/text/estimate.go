// Package text provides the crude text metrics the layout engine uses.
// Real shaping and font metrics are deliberately out of scope; widths are
// a per-rune estimate so layout stays a pure function of its inputs.
package text

import "unicode/utf8"

// LineHeightFactor approximates a line box height relative to font size.
const LineHeightFactor = 1.2

// widthFactor approximates average glyph advance relative to font size.
const widthFactor = 0.5

// EstimateWidth returns an approximate pixel width for s at the given
// font size. This is a known simplification, not a stand-in for metrics.
func EstimateWidth(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize * widthFactor
}

// LineHeight returns the approximate height of a single line of text.
func LineHeight(fontSize float64) float64 {
	return fontSize * LineHeightFactor
}
