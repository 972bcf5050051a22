package html

import "strings"

// Parser builds a DOM tree from a token stream using an explicit stack of
// open elements. Parsing is lenient: mismatched or stray end tags are
// recovered from silently, never reported.
type Parser struct {
	tokenizer *Tokenizer
	root      *Node
	stack     []*Node
	sheets    []string // CSS collected from <style> elements
}

func NewParser(input string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(input),
		root:      NewDocument(),
	}
}

// Parse parses input and returns the document tree.
//
// Root collapsing: when the synthetic document root ends up with exactly one
// element child and nothing else, that child is returned directly (with its
// parent reference cleared); otherwise the document node is returned wrapping
// all top-level nodes. Callers must handle both shapes.
func Parse(input string) *Node {
	root, _ := ParseDocument(input)
	return root
}

// ParseDocument parses input and additionally returns the contents of any
// <style> elements, in document order. Style elements do not enter the tree.
func ParseDocument(input string) (*Node, []string) {
	p := NewParser(input)
	return p.parse()
}

func (p *Parser) parse() (*Node, []string) {
	p.stack = []*Node{p.root}

	for {
		token := p.tokenizer.NextToken()
		if token.Type == TokenEOF {
			break
		}

		switch token.Type {
		case TokenStartTag:
			switch token.TagName {
			case "style":
				// Raw content, collected for the CSS stages.
				p.sheets = append(p.sheets, p.tokenizer.ReadRawUntil("style"))
				continue
			case "script":
				// Script execution is unsupported; consume the body so it
				// never renders as text.
				p.tokenizer.ReadRawUntil("script")
				continue
			}

			if isBlockLevel(token.TagName) {
				p.autoCloseParagraph()
			}

			node := NewElement(token.TagName, token.Attributes)
			p.currentParent().AddChild(node)
			p.stack = append(p.stack, node)

		case TokenSelfClosingTag:
			node := NewElement(token.TagName, token.Attributes)
			p.currentParent().AddChild(node)

		case TokenEndTag:
			p.closeTag(token.TagName)

		case TokenText:
			// Whitespace-only runs directly under the document root are
			// formatting between top-level elements, not content.
			if p.currentParent() == p.root && strings.TrimSpace(token.Content) == "" {
				continue
			}
			p.currentParent().AppendText(token.Content)

		case TokenComment, TokenDoctype:
			// Not represented in the tree.
		}
	}

	return p.collapseRoot(), p.sheets
}

func (p *Parser) currentParent() *Node {
	if len(p.stack) == 0 {
		return p.root
	}
	return p.stack[len(p.stack)-1]
}

// closeTag scans the stack from the top for a matching open element and
// truncates the stack to just below it, implicitly closing anything opened
// in between. An end tag with no matching open element is dropped.
func (p *Parser) closeTag(tagName string) {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].TagName == tagName {
			p.stack = p.stack[:i]
			return
		}
	}
}

// autoCloseParagraph closes an open <p> when a block-level element starts,
// without closing past an enclosing block container.
func (p *Parser) autoCloseParagraph() {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].TagName == "p" {
			p.stack = p.stack[:i]
			return
		}
		if isBlockLevel(p.stack[i].TagName) {
			return
		}
	}
}

func isBlockLevel(tagName string) bool {
	switch tagName {
	case "address", "article", "aside", "blockquote", "details", "dialog",
		"dd", "div", "dl", "dt", "fieldset", "figcaption", "figure",
		"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "hgroup", "hr", "li", "main", "nav", "ol",
		"p", "pre", "section", "table", "ul":
		return true
	}
	return false
}

func (p *Parser) collapseRoot() *Node {
	if len(p.root.Children) == 1 && p.root.Children[0].Type == ElementNode {
		child := p.root.Children[0]
		child.Parent = nil
		return child
	}
	for _, child := range p.root.Children {
		child.Parent = nil
	}
	return p.root
}
