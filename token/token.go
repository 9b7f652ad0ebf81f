// Package token defines the token value type shared by all descriptors.
package token

import (
	"fmt"
)

// Type is the closed set of token types a descriptor can produce or
// recognize. String-quote punctuators are Punctuator tokens; string and
// comment bodies are Text tokens.
type Type int

const (
	Null Type = iota
	Boolean
	Numeric
	Text
	Punctuator
	CommentStart
	CommentEnd
	Whitespace
	Identifier
	Keyword
	RegularExpression
	Reference
)

var typeNames = [...]string{
	"Null",
	"Boolean",
	"Numeric",
	"Text",
	"Punctuator",
	"CommentStart",
	"CommentEnd",
	"Whitespace",
	"Identifier",
	"Keyword",
	"RegularExpression",
	"Reference",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Token is a tagged unit of source. Value holds the exact source text of
// the lexeme, so concatenating the values of a token sequence reproduces
// the text it was matched from.
type Token struct {
	Type  Type
	Value string
}

// New creates a token.
func New(t Type, value string) Token {
	return Token{t, value}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// TextLen returns the total text length of a token sequence, used by
// character cursors to advance past a match.
func TextLen(toks []Token) int {
	n := 0
	for _, t := range toks {
		n += len(t.Value)
	}
	return n
}

// Equal reports whether two token sequences are identical element-wise.
func Equal(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
