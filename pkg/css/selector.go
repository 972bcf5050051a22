package css

import (
	"regexp"
	"strings"

	"wren/pkg/html"
)

// Specificity is the (id, class, tag) weight of a selector, compared
// lexicographically: any id outranks any number of classes, any class
// outranks any number of tags.
type Specificity struct {
	ID    int
	Class int
	Tag   int
}

func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{ID: s.ID + o.ID, Class: s.Class + o.Class, Tag: s.Tag + o.Tag}
}

// Less reports whether s is strictly lower than o.
func (s Specificity) Less(o Specificity) bool {
	if s.ID != o.ID {
		return s.ID < o.ID
	}
	if s.Class != o.Class {
		return s.Class < o.Class
	}
	return s.Tag < o.Tag
}

// AtLeast reports whether s is greater than or equal to o.
func (s Specificity) AtLeast(o Specificity) bool {
	return !s.Less(o)
}

// Inline is the synthetic specificity of a style attribute; it outranks
// every selector a stylesheet can express.
var Inline = Specificity{ID: 1 << 20}

// Selector matches a single element in isolation. Combinators (descendant,
// child, sibling) are not supported.
type Selector interface {
	Matches(node *html.Node) bool
	Specificity() Specificity
	String() string
}

type UniversalSelector struct{}

func (UniversalSelector) Matches(node *html.Node) bool {
	return node.Type == html.ElementNode
}

func (UniversalSelector) Specificity() Specificity { return Specificity{} }
func (UniversalSelector) String() string           { return "*" }

type TagSelector struct {
	Name string
}

func (s TagSelector) Matches(node *html.Node) bool {
	return node.Type == html.ElementNode && node.TagName == s.Name
}

func (s TagSelector) Specificity() Specificity { return Specificity{Tag: 1} }
func (s TagSelector) String() string           { return s.Name }

type ClassSelector struct {
	Name string
}

func (s ClassSelector) Matches(node *html.Node) bool {
	return node.Type == html.ElementNode && node.HasClass(s.Name)
}

func (s ClassSelector) Specificity() Specificity { return Specificity{Class: 1} }
func (s ClassSelector) String() string           { return "." + s.Name }

type IDSelector struct {
	Name string
}

func (s IDSelector) Matches(node *html.Node) bool {
	return node.Type == html.ElementNode && node.ID() == s.Name
}

func (s IDSelector) Specificity() Specificity { return Specificity{ID: 1} }
func (s IDSelector) String() string           { return "#" + s.Name }

// CompoundSelector is a conjunction: every part must match the same node.
// Its specificity is the componentwise sum of its parts.
type CompoundSelector struct {
	Parts []Selector
}

func (s CompoundSelector) Matches(node *html.Node) bool {
	if node.Type != html.ElementNode {
		return false
	}
	for _, part := range s.Parts {
		if !part.Matches(node) {
			return false
		}
	}
	return len(s.Parts) > 0
}

func (s CompoundSelector) Specificity() Specificity {
	var sum Specificity
	for _, part := range s.Parts {
		sum = sum.Add(part.Specificity())
	}
	return sum
}

func (s CompoundSelector) String() string {
	var sb strings.Builder
	for _, part := range s.Parts {
		sb.WriteString(part.String())
	}
	return sb.String()
}

var identPattern = regexp.MustCompile(`^-?[a-zA-Z_][a-zA-Z0-9_-]*`)

// ParseSelector parses one comma-part of a selector list: an optional
// leading tag name (or *) followed by any number of .class and #id parts.
// Returns false for anything it cannot interpret.
func ParseSelector(raw string) (Selector, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	var parts []Selector
	rest := raw

	if rest == "*" {
		return UniversalSelector{}, true
	}
	if strings.HasPrefix(rest, "*") {
		parts = append(parts, UniversalSelector{})
		rest = rest[1:]
	} else if m := identPattern.FindString(rest); m != "" {
		parts = append(parts, TagSelector{Name: strings.ToLower(m)})
		rest = rest[len(m):]
	}

	for rest != "" {
		switch rest[0] {
		case '.':
			m := identPattern.FindString(rest[1:])
			if m == "" {
				return nil, false
			}
			parts = append(parts, ClassSelector{Name: m})
			rest = rest[1+len(m):]
		case '#':
			m := identPattern.FindString(rest[1:])
			if m == "" {
				return nil, false
			}
			parts = append(parts, IDSelector{Name: m})
			rest = rest[1+len(m):]
		default:
			// Combinators, attribute selectors, pseudo-classes: unsupported.
			return nil, false
		}
	}

	if len(parts) == 0 {
		return nil, false
	}
	if len(parts) == 1 {
		return parts[0], true
	}
	return CompoundSelector{Parts: parts}, true
}
