// Package style resolves the cascade: it combines base defaults, inherited
// properties, per-tag defaults, matched stylesheet rules, and inline style
// attributes into one resolved property map per node.
package style

import (
	"sort"
	"strconv"
	"strings"

	"wren/pkg/css"
	"wren/pkg/html"
)

// Node wraps one DOM node with its resolved property map. The DOM tree is
// never mutated; the styled tree is a parallel structure.
type Node struct {
	DOM      *html.Node
	Props    map[string]string
	Children []*Node
}

// Value returns the resolved value for a property.
func (n *Node) Value(property string) (string, bool) {
	v, ok := n.Props[property]
	return v, ok
}

// Lookup returns the resolved value for a property, or fallback if unset.
func (n *Node) Lookup(property, fallback string) string {
	if v, ok := n.Props[property]; ok {
		return v
	}
	return fallback
}

// Display returns the resolved display keyword. Text nodes are inline.
func (n *Node) Display() string {
	if n.DOM.Type == html.TextNode {
		return "inline"
	}
	return n.Lookup("display", "inline")
}

// FontSize returns the resolved font-size in pixels (default 16).
func (n *Node) FontSize() float64 {
	v, ok := n.Props["font-size"]
	if !ok {
		return 16
	}
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	size, err := strconv.ParseFloat(v, 64)
	if err != nil || size <= 0 {
		return 16
	}
	return size
}

// baseDefaults apply to every node before anything else in the cascade.
var baseDefaults = map[string]string{
	"color":       "black",
	"background":  "transparent",
	"font-family": "serif",
	"font-size":   "16px",
	"font-style":  "normal",
	"font-weight": "normal",
	"display":     "inline",
}

// inheritedProperties is the fixed whitelist of properties that cross the
// parent/child boundary. Box properties (margin, padding, border, width,
// height, background, display) never inherit, even when explicitly set.
var inheritedProperties = []string{
	"color", "font-family", "font-size", "font-style", "font-weight",
	"line-height", "text-align", "text-decoration", "text-transform",
	"visibility", "white-space", "word-spacing", "letter-spacing", "cursor",
}

// tagDefaults are the built-in user-agent styles per element.
var tagDefaults = map[string]map[string]string{
	"div": {"display": "block"},
	"p":   {"display": "block", "margin-top": "16px", "margin-bottom": "16px"},
	"h1": {"display": "block", "font-size": "32px", "font-weight": "bold",
		"margin-top": "21px", "margin-bottom": "21px"},
	"h2": {"display": "block", "font-size": "24px", "font-weight": "bold",
		"margin-top": "20px", "margin-bottom": "20px"},
	"h3": {"display": "block", "font-size": "19px", "font-weight": "bold",
		"margin-top": "19px", "margin-bottom": "19px"},
	"h4": {"display": "block", "font-size": "16px", "font-weight": "bold",
		"margin-top": "21px", "margin-bottom": "21px"},
	"h5": {"display": "block", "font-size": "13px", "font-weight": "bold",
		"margin-top": "22px", "margin-bottom": "22px"},
	"h6": {"display": "block", "font-size": "11px", "font-weight": "bold",
		"margin-top": "25px", "margin-bottom": "25px"},
	"ul": {"display": "block", "margin-top": "16px", "margin-bottom": "16px",
		"padding-left": "40px"},
	"ol": {"display": "block", "margin-top": "16px", "margin-bottom": "16px",
		"padding-left": "40px"},
	"li":     {"display": "list-item"},
	"span":   {"display": "inline"},
	"a":      {"display": "inline", "color": "#0645ad", "text-decoration": "underline"},
	"strong": {"font-weight": "bold"},
	"b":      {"font-weight": "bold"},
	"em":     {"font-style": "italic"},
	"i":      {"font-style": "italic"},
	"img":    {"display": "inline-block"},
	"br":     {"display": "inline"},
	"hr": {"display": "block", "margin-top": "8px", "margin-bottom": "8px",
		"border-top-width": "1px", "border-color": "gray"},
	// Document metadata never renders.
	"head":  {"display": "none"},
	"title": {"display": "none"},
	"meta":  {"display": "none"},
	"link":  {"display": "none"},
}

// Tree builds the styled tree for a DOM tree in one top-down pass.
// Only element and text nodes become styled nodes; the synthetic document
// node is carried through as a block container, comments are skipped.
func Tree(dom *html.Node, sheet *css.Stylesheet) *Node {
	return styleNode(dom, nil, sheet)
}

func styleNode(dom *html.Node, parentProps map[string]string, sheet *css.Stylesheet) *Node {
	var props map[string]string

	switch dom.Type {
	case html.TextNode:
		props = inheritedOnly(parentProps)
	case html.DocumentNode:
		props = make(map[string]string, len(baseDefaults))
		for k, v := range baseDefaults {
			props[k] = v
		}
		props["display"] = "block"
	default:
		props = resolveElement(dom, parentProps, sheet)
	}

	node := &Node{DOM: dom, Props: props}
	for _, child := range dom.Children {
		if child.Type == html.CommentNode {
			continue
		}
		node.Children = append(node.Children, styleNode(child, props, sheet))
	}
	return node
}

// inheritedOnly gives text nodes exactly the parent's inherited set: no tag
// defaults and no rule matching, since text cannot be a selector target.
func inheritedOnly(parentProps map[string]string) map[string]string {
	props := make(map[string]string, len(inheritedProperties))
	for _, p := range inheritedProperties {
		if v, ok := parentProps[p]; ok {
			props[p] = v
		}
	}
	return props
}

// resolveElement applies the cascade for one element, in strict priority
// order: base defaults, inherited whitelist, tag defaults, matched rules
// by ascending specificity, then the inline style attribute.
func resolveElement(dom *html.Node, parentProps map[string]string, sheet *css.Stylesheet) map[string]string {
	props := make(map[string]string, len(baseDefaults))
	for k, v := range baseDefaults {
		props[k] = v
	}

	for _, p := range inheritedProperties {
		if v, ok := parentProps[p]; ok {
			props[p] = v
		}
	}

	for k, v := range tagDefaults[dom.TagName] {
		props[k] = v
	}

	// recorded tracks the winning specificity per property among rules, so
	// equal specificity means later source order wins and higher specificity
	// wins regardless of order.
	recorded := make(map[string]css.Specificity)

	matches := matchRules(dom, sheet)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].spec.Less(matches[j].spec)
	})
	for _, m := range matches {
		for _, decl := range m.rule.Declarations {
			if m.spec.AtLeast(recorded[decl.Property]) {
				props[decl.Property] = decl.Value
				recorded[decl.Property] = m.spec
			}
		}
	}

	// Inline style always wins, regardless of selector specificity.
	if styleAttr, ok := dom.GetAttribute("style"); ok {
		for _, decl := range css.ParseInlineStyle(styleAttr) {
			props[decl.Property] = decl.Value
			recorded[decl.Property] = css.Inline
		}
	}

	return props
}

type matchedRule struct {
	rule css.Rule
	spec css.Specificity
}

// matchRules returns the rules whose selector list matches the node, each
// with the highest specificity among its matching selectors.
func matchRules(dom *html.Node, sheet *css.Stylesheet) []matchedRule {
	if sheet == nil {
		return nil
	}
	var matches []matchedRule
	for _, rule := range sheet.Rules {
		best := css.Specificity{}
		found := false
		for _, sel := range rule.Selectors {
			if !sel.Matches(dom) {
				continue
			}
			if !found || best.Less(sel.Specificity()) {
				best = sel.Specificity()
			}
			found = true
		}
		if found {
			matches = append(matches, matchedRule{rule: rule, spec: best})
		}
	}
	return matches
}
