package css

import "testing"

func TestTokenize_SimpleRule(t *testing.T) {
	tokens := Tokenize("p { color: red; }")
	want := []Token{
		{TokenSelector, "p"},
		{TokenOpenBrace, "{"},
		{TokenProperty, "color"},
		{TokenColon, ":"},
		{TokenValue, "red"},
		{TokenSemicolon, ";"},
		{TokenCloseBrace, "}"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d: expected %+v, got %+v", i, want[i], tok)
		}
	}
}

func TestTokenize_MultiWordValue(t *testing.T) {
	tokens := Tokenize("div { border: 1px solid black }")
	var value string
	for _, tok := range tokens {
		if tok.Type == TokenValue {
			value = tok.Value
		}
	}
	if value != "1px solid black" {
		t.Errorf("expected value '1px solid black', got '%s'", value)
	}
}

func TestTokenize_Comments(t *testing.T) {
	tokens := Tokenize("/* note */ p { }")
	if tokens[0].Type != TokenComment || tokens[0].Value != " note " {
		t.Fatalf("expected leading comment token, got %+v", tokens[0])
	}
	if tokens[1].Type != TokenSelector || tokens[1].Value != "p" {
		t.Errorf("expected selector after comment, got %+v", tokens[1])
	}
}

func TestTokenize_CommentInsideDeclarations(t *testing.T) {
	tokens := Tokenize("p { /* hidden */ color: red }")
	sawComment := false
	sawProperty := false
	for _, tok := range tokens {
		if tok.Type == TokenComment {
			sawComment = true
		}
		if tok.Type == TokenProperty && tok.Value == "color" {
			sawProperty = true
		}
	}
	if !sawComment || !sawProperty {
		t.Errorf("expected both a comment and the property, got %+v", tokens)
	}
}

func TestTokenize_UnterminatedComment(t *testing.T) {
	tokens := Tokenize("p { color: red } /* trailing")
	last := tokens[len(tokens)-1]
	if last.Type != TokenComment || last.Value != " trailing" {
		t.Errorf("unterminated comment should swallow the rest, got %+v", last)
	}
}

func TestTokenize_NoFinalSemicolon(t *testing.T) {
	tokens := Tokenize("p { color: red }")
	want := []TokenType{TokenSelector, TokenOpenBrace, TokenProperty, TokenColon, TokenValue, TokenCloseBrace}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: expected type %v, got %v", i, want[i], tok.Type)
		}
	}
}

func TestTokenize_StrayCloseBrace(t *testing.T) {
	tokens := Tokenize("} p { color: red }")
	if tokens[0].Type != TokenSelector || tokens[0].Value != "p" {
		t.Errorf("stray close brace should be skipped, got %+v", tokens[0])
	}
}

func TestTokenize_SelectorWhitespaceTrimmed(t *testing.T) {
	tokens := Tokenize("  div.note  \n { }")
	if tokens[0].Value != "div.note" {
		t.Errorf("expected trimmed selector 'div.note', got '%s'", tokens[0].Value)
	}
}
