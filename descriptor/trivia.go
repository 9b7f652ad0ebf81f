package descriptor

import (
	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/pattern"
	"github.com/js-cst-tokens/js-descriptors/token"
)

var whitespacePat = pattern.MustCompile("([ \\t\\r\\n\\f\\v]+)")

// Shared trivia matchers used by Separator.
var (
	anyWhitespace = Whitespace()
	anyComment    = Comment()
)

type whitespace struct {
	value string
}

// Whitespace matches a maximal contiguous run of whitespace. The value is
// optional shorthand: without it Build emits a single canonical space,
// used when synthesizing formatting for values that carry no original
// spacing.
func Whitespace(value ...string) Descriptor {
	if len(value) > 0 {
		return whitespace{value[0]}
	}
	return whitespace{" "}
}

func (w whitespace) Kind() Kind {
	return KindWhitespace
}

func (w whitespace) Build(override ...string) ([]token.Token, error) {
	v, err := overrideValue(w.value, override)
	if err != nil {
		return nil, err
	}
	return []token.Token{token.New(token.Whitespace, v)}, nil
}

func (w whitespace) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	fork := c.Fork()
	var toks []token.Token
	for {
		t, ok := fork.Peek()
		if !ok || t.Type != token.Whitespace {
			break
		}
		toks = append(toks, t)
		fork.Advance(toks[len(toks)-1:])
	}
	if len(toks) == 0 {
		return nil, false, nil
	}
	return toks, true, nil
}

func (w whitespace) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	n := whitespacePat.Prefix(c.Rest())
	if n <= 0 {
		return nil, false, nil
	}
	return []token.Token{token.New(token.Whitespace, string(c.Rest()[:n]))}, true, nil
}

type separator struct{}

// Separator matches any run of insignificant content between meaningful
// tokens: whitespace and comments, repeated in any order. It always
// succeeds, possibly with zero tokens, so trivia is captured rather than
// discarded while staying optional at the grammar level.
func Separator() Descriptor {
	return separator{}
}

func (s separator) Kind() Kind {
	return KindSeparator
}

func (s separator) Build(override ...string) ([]token.Token, error) {
	if _, err := overrideValue("", override); err != nil {
		return nil, err
	}
	return []token.Token{}, nil
}

func (s separator) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	fork := c.Fork()
	res := []token.Token{}
	for {
		progress := false
		for _, d := range []Descriptor{anyWhitespace, anyComment} {
			toks, ok, err := d.MatchTokens(fork)
			if err != nil {
				return nil, false, err
			}
			if ok {
				fork.Advance(toks)
				res = append(res, toks...)
				progress = true
			}
		}
		if !progress {
			return res, true, nil
		}
	}
}

func (s separator) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	fork := c.Fork()
	res := []token.Token{}
	for {
		progress := false
		for _, d := range []Descriptor{anyWhitespace, anyComment} {
			toks, ok, err := d.MatchChrs(fork)
			if err != nil {
				return nil, false, err
			}
			if ok {
				fork.Advance(toks)
				res = append(res, toks...)
				progress = true
			}
		}
		if !progress {
			return res, true, nil
		}
	}
}
