package descriptor

import (
	"testing"

	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/token"
)

func TestSequenceChrs(t *testing.T) {
	ds := []Descriptor{Keyword("if"), Whitespace(), Identifier("x")}

	toks, ok, e := SequenceChrs(chrs("if x"), ds...)
	if e != nil || !ok {
		t.Fatalf("expecting match, got ok %v, error %v", ok, e)
	}
	expected := []token.Token{
		token.New(token.Keyword, "if"),
		token.New(token.Whitespace, " "),
		token.New(token.Identifier, "x"),
	}
	if !token.Equal(toks, expected) {
		t.Fatalf("expecting %v, got %v", expected, toks)
	}
}

func TestSequenceFailureRestoresCursor(t *testing.T) {
	ds := []Descriptor{Keyword("if"), Whitespace(), Identifier("x")}

	for _, input := range []string{"if y", "if", "while x", ""} {
		c := chrs(input)
		_, ok, e := SequenceChrs(c, ds...)
		if e != nil || ok {
			t.Errorf("input %q: expecting failure, got ok %v, error %v", input, ok, e)
		}
		if c.Pos() != 0 {
			t.Errorf("input %q: cursor moved to %d by a failed sequence", input, c.Pos())
		}
	}
}

func TestSequenceTokens(t *testing.T) {
	input := []token.Token{
		token.New(token.Keyword, "if"),
		token.New(token.Whitespace, " "),
		token.New(token.Identifier, "x"),
	}
	ds := []Descriptor{Keyword("if"), Whitespace(), Identifier("x")}

	c := cursor.NewTokens(input)
	toks, ok, e := SequenceTokens(c, ds...)
	if e != nil || !ok || !token.Equal(toks, input) {
		t.Fatalf("expecting match of %v, got %v, ok %v, error %v", input, toks, ok, e)
	}
	if c.Pos() != 0 {
		t.Fatalf("cursor moved to %d by a match", c.Pos())
	}

	_, ok, e = SequenceTokens(c, Keyword("if"), Identifier("x"))
	if e != nil || ok {
		t.Fatalf("expecting failure on missing whitespace, got ok %v, error %v", ok, e)
	}
	if c.Pos() != 0 {
		t.Fatalf("cursor moved to %d by a failed sequence", c.Pos())
	}
}

func TestSequenceErrorPropagation(t *testing.T) {
	_, ok, e := SequenceChrs(chrs("x y"), Identifier("x"), Whitespace(), Reference("y"))
	if ok || e == nil {
		t.Fatalf("expecting reference error, got ok %v, error %v", ok, e)
	}
}
