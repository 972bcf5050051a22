package paint

import (
	"image"
	"strings"

	"wren/pkg/css"
	"wren/pkg/html"
	"wren/pkg/layout"
)

// baselineFactor places the text baseline below the content-box top.
const baselineFactor = 0.8

// ImageLoader resolves an img src to a decoded image. A failed load skips
// the image; it never fails the render.
type ImageLoader interface {
	Load(src string) (image.Image, error)
}

// Painter walks a layout tree and emits the display list. The zero value
// paints without images.
type Painter struct {
	Images ImageLoader
}

// BuildDisplayList builds the display list for a layout tree without image
// support. Paint order per node is background, border, content, children.
func BuildDisplayList(root *layout.Node) []Command {
	return (&Painter{}).BuildDisplayList(root)
}

func (p *Painter) BuildDisplayList(root *layout.Node) []Command {
	var list []Command
	p.paintNode(&list, root)
	return list
}

func (p *Painter) paintNode(list *[]Command, n *layout.Node) {
	if n.Display == layout.DisplayNone {
		return
	}

	p.paintBackground(list, n)
	p.paintBorder(list, n)
	p.paintText(list, n)
	p.paintImage(list, n)

	for _, child := range n.Children {
		p.paintNode(list, child)
	}
}

// paintBackground fills the padding box: it covers content and padding but
// not margin, and the border overdraws it.
func (p *Painter) paintBackground(list *[]Command, n *layout.Node) {
	value, ok := n.Styled.Value("background-color")
	if !ok {
		value, ok = n.Styled.Value("background")
	}
	if !ok {
		return
	}
	color, ok := css.ParseColor(value)
	if !ok || color.A == 0 {
		return
	}
	box := n.Dims.PaddingBox()
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	*list = append(*list, RectCommand{
		X: box.X, Y: box.Y, Width: box.Width, Height: box.Height,
		Color: color,
	})
}

func (p *Painter) paintBorder(list *[]Command, n *layout.Node) {
	b := n.Dims.Border
	if b.Top <= 0 && b.Right <= 0 && b.Bottom <= 0 && b.Left <= 0 {
		return
	}
	box := n.Dims.BorderBox()
	width := b.Top
	if width <= 0 {
		width = maxEdge(b)
	}
	*list = append(*list, BorderCommand{
		X: box.X, Y: box.Y, Width: box.Width, Height: box.Height,
		Color:     borderColor(n),
		LineWidth: width,
	})
}

// borderColor takes border-color when set, otherwise the third
// whitespace-separated token of the border shorthand, defaulting to black.
func borderColor(n *layout.Node) css.Color {
	if v, ok := n.Styled.Value("border-color"); ok {
		if c, ok := css.ParseColor(v); ok {
			return c
		}
	}
	if v, ok := n.Styled.Value("border"); ok {
		fields := strings.Fields(v)
		if len(fields) >= 3 {
			if c, ok := css.ParseColor(fields[2]); ok {
				return c
			}
		}
	}
	return css.Color{A: 1}
}

func (p *Painter) paintText(list *[]Command, n *layout.Node) {
	dom := n.Styled.DOM
	if dom.Type != html.TextNode || strings.TrimSpace(dom.Text) == "" {
		return
	}
	s := n.Styled
	fontSize := s.FontSize()
	color, ok := css.ParseColor(s.Lookup("color", "black"))
	if !ok {
		color = css.Color{A: 1}
	}
	*list = append(*list, TextCommand{
		X:    n.Dims.Content.X,
		Y:    n.Dims.Content.Y + fontSize*baselineFactor,
		Text: collapseWhitespace(dom.Text),
		Font: Font{
			Family: s.Lookup("font-family", "serif"),
			Size:   fontSize,
			Bold:   isBold(s.Lookup("font-weight", "normal")),
			Italic: s.Lookup("font-style", "normal") == "italic",
		},
		Color: color,
	})
}

func (p *Painter) paintImage(list *[]Command, n *layout.Node) {
	dom := n.Styled.DOM
	if dom.Type != html.ElementNode || dom.TagName != "img" || p.Images == nil {
		return
	}
	src, ok := dom.GetAttribute("src")
	if !ok || src == "" {
		return
	}
	box := n.Dims.Content
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	img, err := p.Images.Load(src)
	if err != nil {
		// Broken images never fail the render.
		return
	}
	*list = append(*list, ImageCommand{
		X: box.X, Y: box.Y, Width: box.Width, Height: box.Height,
		Image: img,
	})
}

func isBold(weight string) bool {
	switch strings.TrimSpace(weight) {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

func maxEdge(e layout.EdgeSizes) float64 {
	m := e.Top
	for _, v := range []float64{e.Right, e.Bottom, e.Left} {
		if v > m {
			m = v
		}
	}
	return m
}

// collapseWhitespace folds runs of whitespace into single spaces for
// drawing; the DOM keeps the verbatim text.
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
