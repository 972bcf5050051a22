package html

import (
	"sort"
	"strings"
)

type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
)

// Node is one node of the DOM tree. Tag names are always lowercase.
// Parent is a non-owning back-reference; ownership and traversal run
// child-down through Children.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

func NewDocument() *Node {
	return &Node{Type: DocumentNode, TagName: "document"}
}

func NewElement(tag string, attrs map[string]string) *Node {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Node{Type: ElementNode, TagName: strings.ToLower(tag), Attributes: attrs}
}

func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// ID returns the node's id attribute, or "".
func (n *Node) ID() string {
	id, _ := n.GetAttribute("id")
	return id
}

// Classes returns the whitespace-separated class list of the node.
func (n *Node) Classes() []string {
	class, ok := n.GetAttribute("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// HasClass reports whether name appears in the node's class list.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddChild appends child and sets its parent back-reference.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText adds a text node child. Empty strings are dropped.
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(NewText(text))
}

// Serialize returns the innerHTML of this node: the serialized HTML of all
// child nodes, without the node's own tags.
func (n *Node) Serialize() string {
	var sb strings.Builder
	for _, child := range n.Children {
		serializeNode(&sb, child)
	}
	return sb.String()
}

// SerializeOuter returns the outerHTML of this node.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	switch n.Type {
	case TextNode:
		sb.WriteString(escapeHTML(n.Text))
		return
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Text)
		sb.WriteString("-->")
		return
	case DocumentNode:
		for _, child := range n.Children {
			serializeNode(sb, child)
		}
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.TagName)

	// Sort attributes for deterministic output
	if len(n.Attributes) > 0 {
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(n.Attributes[k]))
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')

	if IsVoidElement(n.TagName) {
		return
	}
	for _, child := range n.Children {
		serializeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.TagName)
	sb.WriteByte('>')
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
