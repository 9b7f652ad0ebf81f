package descriptor

import (
	descriptors "github.com/js-cst-tokens/js-descriptors"
	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/token"
)

// Shared quote punctuators used by every string descriptor.
var (
	singleQuote = Punctuator("'")
	doubleQuote = Punctuator(`"`)
)

type str struct {
	value string
}

// String matches and builds a quoted string literal. The quote character
// is chosen from the value's enclosing characters when present, defaulting
// to a single quote for a bare value. Matching tries the single-quote
// shape first, then the double-quote shape, so a descriptor for 'abc'
// also matches "abc". Escape sequences in the body are not interpreted.
func String(value string) Descriptor {
	return str{value}
}

func (s str) Kind() Kind {
	return KindString
}

func (s str) Build(override ...string) ([]token.Token, error) {
	v, err := overrideValue(s.value, override)
	if err != nil {
		return nil, err
	}
	quote, body, err := splitQuotes(v)
	if err != nil {
		return nil, err
	}
	toks := []token.Token{token.New(token.Punctuator, quote)}
	if body != "" {
		toks = append(toks, token.New(token.Text, body))
	}
	return append(toks, token.New(token.Punctuator, quote)), nil
}

func (s str) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	_, body, err := splitQuotes(s.value)
	if err != nil {
		return nil, false, err
	}
	for _, shape := range stringShapes(body) {
		toks, ok, err := SequenceTokens(c, shape...)
		if err != nil || ok {
			return toks, ok, err
		}
	}
	return nil, false, nil
}

func (s str) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	_, body, err := splitQuotes(s.value)
	if err != nil {
		return nil, false, err
	}
	for _, shape := range stringShapes(body) {
		toks, ok, err := SequenceChrs(c, shape...)
		if err != nil || ok {
			return toks, ok, err
		}
	}
	return nil, false, nil
}

// stringShapes lists the quote/body/quote triples to try, in priority
// order: first success wins.
func stringShapes(body string) [][]Descriptor {
	if body == "" {
		return [][]Descriptor{
			{singleQuote, singleQuote},
			{doubleQuote, doubleQuote},
		}
	}
	return [][]Descriptor{
		{singleQuote, stringBody(body), singleQuote},
		{doubleQuote, stringBody(body), doubleQuote},
	}
}

// splitQuotes separates a string value into its quote character and body.
// A value with no leading quote is taken as a bare body with the default
// single quote; a leading quote without its matching closer is malformed.
func splitQuotes(value string) (quote, body string, err error) {
	if value == "" || (value[0] != '\'' && value[0] != '"') {
		return "'", value, nil
	}
	if len(value) < 2 || value[len(value)-1] != value[0] {
		return "", "", descriptors.FormatError(ErrBadString, "mismatched quotes in string value %q", value)
	}
	return value[:1], value[1 : len(value)-1], nil
}
