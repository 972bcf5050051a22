package css

import "strings"

// Declaration is one property: value pair. Values stay opaque strings;
// numeric and unit parsing happens in layout.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a comma-separated selector list sharing one declaration block.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Stylesheet is an ordered list of rules. Order matters: source order is
// the cascade tie-breaker at equal specificity.
type Stylesheet struct {
	Rules []Rule
}

// ParseStylesheet parses CSS text into a stylesheet. The parser is
// best-effort and non-validating: unknown or unparseable fragments are
// skipped, never reported.
func ParseStylesheet(input string) *Stylesheet {
	sheet := &Stylesheet{}
	tokens := Tokenize(input)

	i := 0
	for i < len(tokens) {
		if tokens[i].Type != TokenSelector {
			i++
			continue
		}
		selectorText := tokens[i].Value
		i++

		// Skip comments between selector and brace.
		for i < len(tokens) && tokens[i].Type == TokenComment {
			i++
		}
		if i >= len(tokens) || tokens[i].Type != TokenOpenBrace {
			continue
		}
		i++

		var decls []Declaration
		decls, i = parseDeclarations(tokens, i)

		selectors := parseSelectorList(selectorText)
		if len(selectors) == 0 {
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{Selectors: selectors, Declarations: decls})
	}

	return sheet
}

// parseDeclarations consumes property/colon/value/semicolon runs up to the
// closing brace. The final declaration needs no trailing semicolon, and a
// block with zero declarations is legal.
func parseDeclarations(tokens []Token, i int) ([]Declaration, int) {
	var decls []Declaration
	for i < len(tokens) && tokens[i].Type != TokenCloseBrace {
		if tokens[i].Type != TokenProperty {
			i++
			continue
		}
		property := tokens[i].Value
		i++

		if i >= len(tokens) || tokens[i].Type != TokenColon {
			continue
		}
		i++

		if i >= len(tokens) || tokens[i].Type != TokenValue {
			continue
		}
		value := tokens[i].Value
		i++

		if i < len(tokens) && tokens[i].Type == TokenSemicolon {
			i++
		}

		if property != "" && value != "" {
			decls = append(decls, Declaration{Property: strings.ToLower(property), Value: value})
		}
	}
	if i < len(tokens) {
		i++ // consume the closing brace
	}
	return decls, i
}

// parseSelectorList splits selector text on commas and parses each part.
// Parts that cannot be interpreted are dropped.
func parseSelectorList(text string) []Selector {
	var selectors []Selector
	for _, part := range strings.Split(text, ",") {
		if sel, ok := ParseSelector(part); ok {
			selectors = append(selectors, sel)
		}
	}
	return selectors
}

// ParseInlineStyle parses a style attribute value ("prop: value; ...")
// into declarations, skipping anything malformed.
func ParseInlineStyle(style string) []Declaration {
	var decls []Declaration
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon < 0 {
			continue
		}
		property := strings.ToLower(strings.TrimSpace(part[:colon]))
		value := strings.TrimSpace(part[colon+1:])
		if property != "" && value != "" {
			decls = append(decls, Declaration{Property: property, Value: value})
		}
	}
	return decls
}
