package layout

// Rect is a rectangle in device pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ExpandedBy grows the rect outward by the given edge sizes.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

// EdgeSizes holds per-side thicknesses for one box-model layer.
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// Dimensions is the full box model of one laid-out node: a content rect
// surrounded by padding, border, and margin layers.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox is the content area plus padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the padding box plus border.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the border box plus margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}
