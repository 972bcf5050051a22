package css

import (
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenSelector TokenType = iota
	TokenOpenBrace
	TokenCloseBrace
	TokenProperty
	TokenColon
	TokenValue
	TokenSemicolon
	TokenComment
	TokenEOF
)

type Token struct {
	Type  TokenType
	Value string
}

// Tokenizer splits CSS text into tokens. Brace depth distinguishes selector
// context (depth 0) from declaration context (depth 1); a colon flips the
// declaration context from property-reading to value-reading.
type Tokenizer struct {
	input     string
	pos       int
	depth     int
	valueMode bool
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
	t.skipWhitespace()

	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}
	}

	if strings.HasPrefix(t.input[t.pos:], "/*") {
		return t.readComment()
	}

	ch := t.input[t.pos]

	if t.depth == 0 {
		switch ch {
		case '{':
			t.pos++
			t.depth = 1
			t.valueMode = false
			return Token{Type: TokenOpenBrace, Value: "{"}
		case '}':
			// Stray closing brace outside any rule; skip it.
			t.pos++
			return t.NextToken()
		}
		sel := t.readUntil("{")
		if sel == "" {
			return t.NextToken()
		}
		return Token{Type: TokenSelector, Value: sel}
	}

	switch ch {
	case '}':
		t.pos++
		t.depth = 0
		t.valueMode = false
		return Token{Type: TokenCloseBrace, Value: "}"}
	case ';':
		t.pos++
		t.valueMode = false
		return Token{Type: TokenSemicolon, Value: ";"}
	case ':':
		t.pos++
		t.valueMode = true
		return Token{Type: TokenColon, Value: ":"}
	}

	if t.valueMode {
		val := t.readUntil(";}")
		if val == "" {
			return t.NextToken()
		}
		return Token{Type: TokenValue, Value: val}
	}
	prop := t.readUntil(":;}")
	if prop == "" {
		return t.NextToken()
	}
	return Token{Type: TokenProperty, Value: prop}
}

// readComment consumes a /* ... */ block. An unterminated comment swallows
// the rest of the input.
func (t *Tokenizer) readComment() Token {
	end := strings.Index(t.input[t.pos+2:], "*/")
	if end < 0 {
		body := t.input[t.pos+2:]
		t.pos = len(t.input)
		return Token{Type: TokenComment, Value: body}
	}
	body := t.input[t.pos+2 : t.pos+2+end]
	t.pos += 2 + end + 2
	return Token{Type: TokenComment, Value: body}
}

// readUntil accumulates text up to (not including) any byte in stops or a
// comment opener, and returns it trimmed.
func (t *Tokenizer) readUntil(stops string) string {
	start := t.pos
	for t.pos < len(t.input) {
		if strings.HasPrefix(t.input[t.pos:], "/*") {
			break
		}
		if strings.IndexByte(stops, t.input[t.pos]) >= 0 {
			break
		}
		t.pos++
	}
	return strings.TrimSpace(t.input[start:t.pos])
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}
