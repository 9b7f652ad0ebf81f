package descriptor

import (
	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/token"
)

type optional struct {
	d Descriptor
}

// Optional wraps a descriptor, mapping its match failure to an empty
// success. It makes a separator, a sign, or any literal optional within a
// larger sequence without special-casing the sequence matcher. Build
// always yields the empty sequence, even with an override; the wrapped
// descriptor must be built directly to emit tokens.
func Optional(d Descriptor) Descriptor {
	return optional{d}
}

func (o optional) Kind() Kind {
	return KindOptional
}

func (o optional) Build(override ...string) ([]token.Token, error) {
	if _, err := overrideValue("", override); err != nil {
		return nil, err
	}
	return []token.Token{}, nil
}

func (o optional) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	toks, ok, err := o.d.MatchTokens(c)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return []token.Token{}, true, nil
	}
	return toks, true, nil
}

func (o optional) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	toks, ok, err := o.d.MatchChrs(c)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return []token.Token{}, true, nil
	}
	return toks, true, nil
}
