package descriptor

import (
	"bytes"
	"regexp"

	descriptors "github.com/js-cst-tokens/js-descriptors"
	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/pattern"
	"github.com/js-cst-tokens/js-descriptors/token"
)

// boundaryExpr requires (without consuming) a character that cannot
// continue a word-like literal, or end of input. It keeps `null` from
// matching inside `nullable`.
const boundaryExpr = "(?:[(){}\\s/\\\\&#@!`+^%?<>,.;:'\"|~-]|$)"

// word is the common shape of the word-like literal descriptors: an exact
// text in token mode, the same text followed by a boundary in character
// mode.
type word struct {
	kind Kind
	typ  token.Type
	text string
	pat  *pattern.Pattern
}

func newWord(kind Kind, typ token.Type, text string) word {
	return word{kind, typ, text, pattern.MustCompile("(" + regexp.QuoteMeta(text) + ")" + boundaryExpr)}
}

func (w word) Kind() Kind {
	return w.kind
}

func (w word) Build(override ...string) ([]token.Token, error) {
	v, err := overrideValue(w.text, override)
	if err != nil {
		return nil, err
	}
	return []token.Token{token.New(w.typ, v)}, nil
}

func (w word) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	t, ok := c.Peek()
	if !ok || t.Type != w.typ || t.Value != w.text {
		return nil, false, nil
	}
	return []token.Token{t}, true, nil
}

func (w word) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	n := w.pat.Prefix(c.Rest())
	if n < 0 {
		return nil, false, nil
	}
	return []token.Token{token.New(w.typ, w.text)}, true, nil
}

// Null matches and builds the null literal.
func Null() Descriptor {
	return newWord(KindNull, token.Null, "null")
}

// Boolean matches and builds a boolean literal.
func Boolean(value bool) Descriptor {
	if value {
		return newWord(KindBoolean, token.Boolean, "true")
	}
	return newWord(KindBoolean, token.Boolean, "false")
}

// Keyword matches and builds the given keyword.
func Keyword(name string) Descriptor {
	return newWord(KindKeyword, token.Keyword, name)
}

// Identifier matches and builds the given identifier.
func Identifier(name string) Descriptor {
	return newWord(KindIdentifier, token.Identifier, name)
}

// RegularExpression matches and builds a regular expression literal,
// compared by its exact source text including flags.
func RegularExpression(text string) Descriptor {
	return newWord(KindRegularExpression, token.RegularExpression, text)
}

// punct is the common shape of punctuation-like descriptors. Unlike word
// literals they match by literal prefix with no boundary requirement,
// since punctuation may be adjacent to any character.
type punct struct {
	kind Kind
	typ  token.Type
	text string
}

func (p punct) Kind() Kind {
	return p.kind
}

func (p punct) Build(override ...string) ([]token.Token, error) {
	v, err := overrideValue(p.text, override)
	if err != nil {
		return nil, err
	}
	return []token.Token{token.New(p.typ, v)}, nil
}

func (p punct) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	t, ok := c.Peek()
	if !ok || t.Type != p.typ || t.Value != p.text {
		return nil, false, nil
	}
	return []token.Token{t}, true, nil
}

func (p punct) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	if !bytes.HasPrefix(c.Rest(), []byte(p.text)) {
		return nil, false, nil
	}
	return []token.Token{token.New(p.typ, p.text)}, true, nil
}

// Punctuator matches and builds the given punctuator.
func Punctuator(text string) Descriptor {
	return punct{KindPunctuator, token.Punctuator, text}
}

// CommentStart matches and builds a comment opening delimiter.
func CommentStart(text string) Descriptor {
	return punct{KindCommentStart, token.CommentStart, text}
}

// CommentEnd matches and builds a comment closing delimiter.
func CommentEnd(text string) Descriptor {
	return punct{KindCommentEnd, token.CommentEnd, text}
}

type reference struct {
	name string
}

// Reference matches and builds a by-name reference to another grammar
// node. Token mode matches by name equality; character mode cannot work
// without resolving the referenced node and returns ErrUnresolvedRef —
// the grammar package owns resolution.
func Reference(name string) Descriptor {
	return reference{name}
}

func (r reference) Kind() Kind {
	return KindReference
}

func (r reference) Build(override ...string) ([]token.Token, error) {
	v, err := overrideValue(r.name, override)
	if err != nil {
		return nil, err
	}
	return []token.Token{token.New(token.Reference, v)}, nil
}

func (r reference) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	t, ok := c.Peek()
	if !ok || t.Type != token.Reference || t.Value != r.name {
		return nil, false, nil
	}
	return []token.Token{t}, true, nil
}

func (r reference) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	return nil, false, descriptors.FormatErrorPos(c, ErrUnresolvedRef,
		"cannot match reference %q against characters, resolution requires a grammar resolver", r.name)
}
