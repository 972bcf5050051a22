package html

import (
	"regexp"
	"strings"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenSelfClosingTag
	TokenText
	TokenComment
	TokenDoctype
	TokenEOF
)

type Token struct {
	Type       TokenType
	TagName    string
	Attributes map[string]string
	Content    string // text runs, comment bodies, doctype content
}

// attrPattern matches one attribute inside a tag: a name optionally followed
// by =value where the value is double-quoted, single-quoted, or bare.
// Boolean attributes (no value) match with all value groups empty.
var attrPattern = regexp.MustCompile(`([a-zA-Z_:][-a-zA-Z0-9_:.]*)\s*(?:=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'=<>` + "`" + `]+)))?`)

// voidElements never have children and tokenize as self-closing even
// without a trailing slash.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Tokenizer scans HTML left to right in a single pass. It never fails:
// malformed constructs are consumed best-effort, browser style.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize returns the full token stream for the input.
func Tokenize(input string) []Token {
	t := NewTokenizer(input)
	var tokens []Token
	for {
		tok := t.NextToken()
		if tok.Type == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (t *Tokenizer) NextToken() Token {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}
	}
	if t.input[t.pos] == '<' {
		return t.readTag()
	}
	return t.readTextFrom(t.pos)
}

func (t *Tokenizer) readTag() Token {
	rest := t.input[t.pos:]

	// <!-- comment -->
	if strings.HasPrefix(rest, "<!--") {
		end := strings.Index(rest[4:], "-->")
		if end < 0 {
			// Unterminated comment: everything to EOF is the body.
			t.pos = len(t.input)
			return Token{Type: TokenComment, Content: rest[4:]}
		}
		t.pos += 4 + end + 3
		return Token{Type: TokenComment, Content: rest[4 : 4+end]}
	}

	// <!doctype ...> (case-insensitive)
	if len(rest) >= 9 && strings.EqualFold(rest[:9], "<!doctype") {
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			t.pos = len(t.input)
			return Token{Type: TokenDoctype, Content: strings.TrimSpace(rest[2:])}
		}
		t.pos += end + 1
		return Token{Type: TokenDoctype, Content: strings.TrimSpace(rest[2:end])}
	}

	// </name>
	if strings.HasPrefix(rest, "</") {
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			// Unterminated end tag: drop the rest.
			t.pos = len(t.input)
			return Token{Type: TokenEOF}
		}
		name := strings.ToLower(strings.TrimSpace(rest[2:end]))
		t.pos += end + 1
		if name == "" {
			return t.NextToken()
		}
		return Token{Type: TokenEndTag, TagName: name}
	}

	// A '<' not followed by a tag-name character is literal text.
	if len(rest) < 2 || !isTagNameStart(rest[1]) {
		return t.readTextFrom(t.pos)
	}

	// Start or self-closing tag.
	end := t.findTagEnd(rest)
	if end < 0 {
		// Unterminated tag: ignore the fragment.
		t.pos = len(t.input)
		return Token{Type: TokenEOF}
	}
	inner := strings.TrimSpace(rest[1:end])
	t.pos += end + 1

	selfClosing := strings.HasSuffix(inner, "/")
	inner = strings.TrimSuffix(inner, "/")

	nameEnd := 0
	for nameEnd < len(inner) && isTagNameChar(inner[nameEnd]) {
		nameEnd++
	}
	name := strings.ToLower(inner[:nameEnd])
	attrs := parseAttributes(inner[nameEnd:])

	if selfClosing || voidElements[name] {
		return Token{Type: TokenSelfClosingTag, TagName: name, Attributes: attrs}
	}
	return Token{Type: TokenStartTag, TagName: name, Attributes: attrs}
}

// findTagEnd locates the closing '>' of a tag, skipping over quoted
// attribute values so <a title="x>y"> tokenizes correctly.
func (t *Tokenizer) findTagEnd(rest string) int {
	var quote byte
	for i := 1; i < len(rest); i++ {
		c := rest[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '>':
			return i
		}
	}
	return -1
}

func parseAttributes(s string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrPattern.FindAllStringSubmatch(s, -1) {
		name := strings.ToLower(m[1])
		value := m[2]
		if value == "" {
			value = m[3]
		}
		if value == "" {
			value = m[4]
		}
		attrs[name] = value
	}
	return attrs
}

// readTextFrom emits the verbatim text run starting at start, up to the next
// '<'. Whitespace is preserved; collapsing it is the caller's concern.
// The leading byte is always included, even when it was a literal '<'.
func (t *Tokenizer) readTextFrom(start int) Token {
	pos := start + 1
	for pos < len(t.input) && t.input[pos] != '<' {
		pos++
	}
	content := t.input[start:pos]
	t.pos = pos
	return Token{Type: TokenText, Content: content}
}

// ReadRawUntil consumes raw character data until the given closing end tag,
// case-insensitively, and returns the content before it. Used for <style>
// and <script> bodies where '<' does not open a tag.
func (t *Tokenizer) ReadRawUntil(endTag string) string {
	needle := "</" + strings.ToLower(endTag) + ">"
	start := t.pos
	for t.pos+len(needle) <= len(t.input) {
		if strings.EqualFold(t.input[t.pos:t.pos+len(needle)], needle) {
			content := t.input[start:t.pos]
			t.pos += len(needle)
			return content
		}
		t.pos++
	}
	content := t.input[start:]
	t.pos = len(t.input)
	return content
}

func isTagNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isTagNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '-' || c == '_'
}
