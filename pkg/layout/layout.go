// Package layout turns a styled tree into a tree of absolutely positioned
// boxes. Only simplified block flow is implemented: inline content is laid
// out as anonymous blocks, with no line wrapping.
package layout

import (
	"strings"

	"wren/pkg/html"
	"wren/pkg/style"
	"wren/pkg/text"
)

type DisplayType int

const (
	DisplayBlock DisplayType = iota
	DisplayInline
	DisplayInlineBlock
	DisplayNone
)

// Node wraps one styled node with its computed box dimensions.
type Node struct {
	Styled   *style.Node
	Display  DisplayType
	Dims     Dimensions
	Children []*Node
}

func displayTypeOf(s *style.Node) DisplayType {
	switch s.Display() {
	case "none":
		return DisplayNone
	case "block", "list-item":
		return DisplayBlock
	case "inline-block":
		return DisplayInlineBlock
	default:
		return DisplayInline
	}
}

// Tree lays out a styled tree against a viewport. Position flows top-down;
// auto heights resolve bottom-up from the children's computed boxes.
func Tree(styled *style.Node, viewportWidth, viewportHeight float64) *Node {
	root := buildNode(styled)
	containing := Dimensions{Content: Rect{Width: viewportWidth, Height: 0}}
	_ = viewportHeight // block flow grows downward; the viewport only clips painting
	root.layout(containing)
	return root
}

// buildNode mirrors the styled tree. A display:none node is kept as a
// zero box, but its subtree is never built, laid out, or painted.
func buildNode(s *style.Node) *Node {
	n := &Node{Styled: s, Display: displayTypeOf(s)}
	if n.Display == DisplayNone {
		return n
	}
	for _, child := range s.Children {
		n.Children = append(n.Children, buildNode(child))
	}
	return n
}

func (n *Node) layout(containing Dimensions) {
	if n.Display == DisplayNone {
		return
	}
	if n.Styled.DOM.Type == html.TextNode {
		n.layoutText(containing)
		return
	}
	n.layoutBlock(containing)
}

// layoutText sizes a text run with the crude width estimate and an
// approximate line height. Whitespace-only runs occupy no space.
func (n *Node) layoutText(containing Dimensions) {
	origin := Rect{
		X: containing.Content.X,
		Y: containing.Content.Y + containing.Content.Height,
	}
	n.Dims.Content = origin

	if strings.TrimSpace(n.Styled.DOM.Text) == "" {
		return
	}
	fontSize := n.Styled.FontSize()
	width := text.EstimateWidth(n.Styled.DOM.Text, fontSize)
	if width > containing.Content.Width {
		width = containing.Content.Width
	}
	n.Dims.Content.Width = width
	n.Dims.Content.Height = text.LineHeight(fontSize)
}

func (n *Node) layoutBlock(containing Dimensions) {
	n.calculateWidth(containing)
	n.calculatePosition(containing)
	n.layoutChildren()
	n.calculateHeight(containing)
}

// calculateWidth resolves the edge sizes and the content width. An explicit
// width wins; otherwise the content auto-fills the containing block minus
// the horizontal edges, floored at zero.
func (n *Node) calculateWidth(containing Dimensions) {
	s := n.Styled
	ref := containing.Content.Width
	fontSize := s.FontSize()

	n.Dims.Margin = n.edges("margin", ref, fontSize)
	n.Dims.Padding = n.edges("padding", ref, fontSize)
	n.Dims.Border = n.borderEdges(ref, fontSize)

	if w, ok := s.Value("width"); ok && strings.TrimSpace(w) != "auto" {
		n.Dims.Content.Width = ParseLength(w, ref, fontSize)
		return
	}
	if w, ok := n.attributeLength("width"); ok {
		n.Dims.Content.Width = w
		return
	}

	edges := n.Dims.Margin.Left + n.Dims.Margin.Right +
		n.Dims.Border.Left + n.Dims.Border.Right +
		n.Dims.Padding.Left + n.Dims.Padding.Right
	width := ref - edges
	if width < 0 {
		width = 0
	}
	n.Dims.Content.Width = width
}

// calculatePosition places the content box inside the containing block,
// directly below everything already laid out there.
func (n *Node) calculatePosition(containing Dimensions) {
	d := &n.Dims
	d.Content.X = containing.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = containing.Content.Y + containing.Content.Height +
		d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutChildren stacks children vertically, growing this node's content
// height by each child's margin box as it goes.
func (n *Node) layoutChildren() {
	for _, child := range n.Children {
		child.layout(n.Dims)
		if child.Display == DisplayNone {
			continue
		}
		n.Dims.Content.Height += child.Dims.MarginBox().Height
	}
}

// calculateHeight applies an explicit height when present; otherwise the
// accumulated children height stands (auto-grow).
func (n *Node) calculateHeight(containing Dimensions) {
	s := n.Styled
	if h, ok := s.Value("height"); ok && strings.TrimSpace(h) != "auto" {
		n.Dims.Content.Height = ParseLength(h, containing.Content.Height, s.FontSize())
		return
	}
	if h, ok := n.attributeLength("height"); ok {
		n.Dims.Content.Height = h
	}
}

// edges resolves a margin/padding layer: the shorthand first, then any
// per-side longhand on top.
func (n *Node) edges(prefix string, ref, fontSize float64) EdgeSizes {
	s := n.Styled
	e := EdgeSizes{}
	if v, ok := s.Value(prefix); ok {
		e = parseEdgeShorthand(v, ref, fontSize)
	}
	if v, ok := s.Value(prefix + "-top"); ok {
		e.Top = ParseLength(v, ref, fontSize)
	}
	if v, ok := s.Value(prefix + "-right"); ok {
		e.Right = ParseLength(v, ref, fontSize)
	}
	if v, ok := s.Value(prefix + "-bottom"); ok {
		e.Bottom = ParseLength(v, ref, fontSize)
	}
	if v, ok := s.Value(prefix + "-left"); ok {
		e.Left = ParseLength(v, ref, fontSize)
	}
	return e
}

// borderEdges resolves border widths: the `border` shorthand's first token,
// then `border-width`, then per-side longhands.
func (n *Node) borderEdges(ref, fontSize float64) EdgeSizes {
	s := n.Styled
	e := EdgeSizes{}
	if v, ok := s.Value("border"); ok {
		fields := strings.Fields(v)
		if len(fields) > 0 {
			w := ParseLength(fields[0], ref, fontSize)
			e = EdgeSizes{Top: w, Right: w, Bottom: w, Left: w}
		}
	}
	if v, ok := s.Value("border-width"); ok {
		e = parseEdgeShorthand(v, ref, fontSize)
	}
	if v, ok := s.Value("border-top-width"); ok {
		e.Top = ParseLength(v, ref, fontSize)
	}
	if v, ok := s.Value("border-right-width"); ok {
		e.Right = ParseLength(v, ref, fontSize)
	}
	if v, ok := s.Value("border-bottom-width"); ok {
		e.Bottom = ParseLength(v, ref, fontSize)
	}
	if v, ok := s.Value("border-left-width"); ok {
		e.Left = ParseLength(v, ref, fontSize)
	}
	return e
}

// attributeLength reads a presentational width/height attribute (as on
// <img width="120">) as pixels.
func (n *Node) attributeLength(name string) (float64, bool) {
	dom := n.Styled.DOM
	if dom.Type != html.ElementNode {
		return 0, false
	}
	v, ok := dom.GetAttribute(name)
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false
	}
	px := ParseLength(v, 0, n.Styled.FontSize())
	if px <= 0 {
		return 0, false
	}
	return px, true
}
