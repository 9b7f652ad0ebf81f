package descriptor

import (
	"bytes"
	"strings"

	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/token"
)

// textRun is the generic text-bodied descriptor. consume reports the
// length of the matching prefix of remaining input, or -1 for no match;
// a zero length is treated as no match, bodyless constructs are handled
// by the composites leaving the body descriptor out.
//
// In token mode a maximal run of adjacent Text tokens is merged into one
// logical match, because an upstream tokenizer may split a single textual
// run across several tokens; the merged text must then be consumed
// entirely.
type textRun struct {
	value   string
	consume func(rest []byte) int
}

// Text creates a text-bodied descriptor from a character-level consumer.
// value is the text Build emits.
func Text(value string, consume func(rest []byte) int) Descriptor {
	return textRun{value, consume}
}

func (d textRun) Kind() Kind {
	return KindText
}

func (d textRun) Build(override ...string) ([]token.Token, error) {
	v, err := overrideValue(d.value, override)
	if err != nil {
		return nil, err
	}
	return []token.Token{token.New(token.Text, v)}, nil
}

func (d textRun) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	fork := c.Fork()
	var toks []token.Token
	var merged strings.Builder
	for {
		t, ok := fork.Peek()
		if !ok || t.Type != token.Text {
			break
		}
		toks = append(toks, t)
		merged.WriteString(t.Value)
		fork.Advance(toks[len(toks)-1:])
	}
	text := merged.String()
	if len(toks) == 0 || d.consume([]byte(text)) != len(text) {
		return nil, false, nil
	}
	return toks, true, nil
}

func (d textRun) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	n := d.consume(c.Rest())
	if n <= 0 {
		return nil, false, nil
	}
	return []token.Token{token.New(token.Text, string(c.Rest()[:n]))}, true, nil
}

// stringBody matches the body of a quoted string: an exact
// character-by-character match against the expected text. Escape sequences
// are not interpreted; the body must appear literally.
func stringBody(text string) Descriptor {
	return Text(text, func(rest []byte) int {
		if !bytes.HasPrefix(rest, []byte(text)) {
			return -1
		}
		return len(text)
	})
}

// lineCommentBody matches the longest run up to, not including, the end of
// the line.
func lineCommentBody(text string) Descriptor {
	return Text(text, func(rest []byte) int {
		if n := bytes.IndexAny(rest, "\r\n"); n >= 0 {
			return n
		}
		return len(rest)
	})
}

// blockCommentBody matches the longest run up to, not including, the
// closing block delimiter. With no delimiter in the remaining input the
// whole rest is consumed and the delimiter descriptor that follows in the
// composite rejects the unterminated comment.
func blockCommentBody(text string) Descriptor {
	return Text(text, func(rest []byte) int {
		if n := bytes.Index(rest, []byte("*/")); n >= 0 {
			return n
		}
		return len(rest)
	})
}
