package cursor

import (
	"testing"

	"github.com/js-cst-tokens/js-descriptors/token"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"ab\ncd\n\nefg": {
			{0, 1, 1},
			{2, 1, 3},
			{3, 2, 1},
			{5, 2, 3},
			{6, 3, 1},
			{7, 4, 1},
			{10, 4, 4},
			{-5, 1, 1},
		},
	}

	for text, results := range samples {
		src := NewSource("", []byte(text))
		for _, res := range results {
			line, col := src.LineCol(res.pos)
			if line != res.line || col != res.col {
				t.Errorf("sample %q pos %d: expecting %d:%d, got %d:%d", text, res.pos, res.line, res.col, line, col)
			}
		}
	}
}

func TestCharsForkIsIndependent(t *testing.T) {
	c := NewChars(NewSource("", []byte("abcdef")))
	fork := c.Fork()
	fork.Advance([]token.Token{token.New(token.Text, "abc")})

	if c.Pos() != 0 {
		t.Fatalf("fork advanced the original cursor to %d", c.Pos())
	}
	if fork.Pos() != 3 || string(fork.Rest()) != "def" {
		t.Fatalf("expecting fork at 3 with rest \"def\", got %d %q", fork.Pos(), fork.Rest())
	}
}

func TestCharsAdvanceByTokenText(t *testing.T) {
	c := NewChars(NewSource("", []byte("'ab'x")))
	c.Advance([]token.Token{
		token.New(token.Punctuator, "'"),
		token.New(token.Text, "ab"),
		token.New(token.Punctuator, "'"),
	})
	if c.Pos() != 4 || c.Done() {
		t.Fatalf("expecting position 4, got %d (done %v)", c.Pos(), c.Done())
	}
	c.Advance([]token.Token{token.New(token.Identifier, "x")})
	if !c.Done() {
		t.Fatalf("expecting end of input at %d", c.Pos())
	}
}

func TestCharsSourcePos(t *testing.T) {
	c := NewChars(NewSource("test.js", []byte("ab\ncd")))
	c.Advance([]token.Token{token.New(token.Text, "ab\nc")})
	if c.SourceName() != "test.js" || c.Line() != 2 || c.Col() != 2 {
		t.Fatalf("expecting test.js 2:2, got %s %d:%d", c.SourceName(), c.Line(), c.Col())
	}
}

func TestTokensCursor(t *testing.T) {
	toks := []token.Token{
		token.New(token.Keyword, "if"),
		token.New(token.Whitespace, " "),
		token.New(token.Identifier, "x"),
	}
	c := NewTokens(toks)

	got, ok := c.Peek()
	if !ok || got != toks[0] {
		t.Fatalf("expecting %v, got %v (ok %v)", toks[0], got, ok)
	}

	fork := c.Fork()
	fork.Advance(toks[:2])
	if c.Pos() != 0 {
		t.Fatalf("fork advanced the original cursor to %d", c.Pos())
	}
	got, ok = fork.Peek()
	if !ok || got != toks[2] {
		t.Fatalf("expecting %v after advance, got %v (ok %v)", toks[2], got, ok)
	}

	fork.Advance(toks[2:])
	if !fork.Done() {
		t.Fatalf("expecting end of input at %d", fork.Pos())
	}
	if _, ok = fork.Peek(); ok {
		t.Fatalf("expecting no token at end of input")
	}
}
