package descriptor

import (
	"strings"

	descriptors "github.com/js-cst-tokens/js-descriptors"
	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/token"
)

// Shared comment delimiter descriptors. Matching a comment is shape based,
// not value based, so the shape lists are built once and reused by every
// comment descriptor.
var (
	lineStart  = CommentStart("//")
	blockStart = CommentStart("/*")
	blockEnd   = CommentEnd("*/")

	// Alternatives in priority order: first success wins.
	commentShapes = [][]Descriptor{
		{lineStart, lineCommentBody("")},
		{lineStart},
		{blockStart, blockCommentBody(""), blockEnd},
		{blockStart, blockEnd},
	}
)

type comment struct {
	value string
}

// Comment matches any line or block comment and builds one from its value.
// The value is optional shorthand: Comment() yields the shared matcher
// shape, Comment("// x") additionally lets Build work without an override.
func Comment(value ...string) Descriptor {
	if len(value) > 0 {
		return comment{value[0]}
	}
	return comment{}
}

func (d comment) Kind() Kind {
	return KindComment
}

func (d comment) Build(override ...string) ([]token.Token, error) {
	v, err := overrideValue(d.value, override)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasPrefix(v, "//"):
		toks := []token.Token{token.New(token.CommentStart, "//")}
		if body := v[2:]; body != "" {
			toks = append(toks, token.New(token.Text, body))
		}
		return toks, nil
	case strings.HasPrefix(v, "/*") && strings.HasSuffix(v, "*/") && len(v) >= 4:
		toks := []token.Token{token.New(token.CommentStart, "/*")}
		if body := v[2 : len(v)-2]; body != "" {
			toks = append(toks, token.New(token.Text, body))
		}
		return append(toks, token.New(token.CommentEnd, "*/")), nil
	}
	return nil, descriptors.FormatError(ErrBadComment, "comment value %q is neither a line nor a block comment", v)
}

func (d comment) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	for _, shape := range commentShapes {
		toks, ok, err := SequenceTokens(c, shape...)
		if err != nil || ok {
			return toks, ok, err
		}
	}
	return nil, false, nil
}

func (d comment) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	for _, shape := range commentShapes {
		toks, ok, err := SequenceChrs(c, shape...)
		if err != nil || ok {
			return toks, ok, err
		}
	}
	return nil, false, nil
}
