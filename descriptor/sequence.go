package descriptor

import (
	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/token"
)

// SequenceTokens matches ds in order against a fork of c, all or nothing.
// Each success advances the fork; the first failure aborts the whole
// attempt with c untouched. There is no backtracking within the sequence:
// once a descriptor succeeds its match is final for this attempt.
// On success the concatenation of all matched tokens is returned.
func SequenceTokens(c *cursor.Tokens, ds ...Descriptor) ([]token.Token, bool, error) {
	fork := c.Fork()
	res := []token.Token{}
	for _, d := range ds {
		toks, ok, err := d.MatchTokens(fork)
		if err != nil || !ok {
			return nil, false, err
		}
		fork.Advance(toks)
		res = append(res, toks...)
	}
	return res, true, nil
}

// SequenceChrs is SequenceTokens over character input.
func SequenceChrs(c *cursor.Chars, ds ...Descriptor) ([]token.Token, bool, error) {
	fork := c.Fork()
	res := []token.Token{}
	for _, d := range ds {
		toks, ok, err := d.MatchChrs(fork)
		if err != nil || !ok {
			return nil, false, err
		}
		fork.Advance(toks)
		res = append(res, toks...)
	}
	return res, true, nil
}
