package cursor

import (
	"github.com/js-cst-tokens/js-descriptors/token"
)

// Chars is a position over character input. Forking is a plain struct copy,
// so speculative matching never copies the underlying content.
type Chars struct {
	src *Source
	pos int
}

// NewChars creates a character cursor at the start of src.
func NewChars(src *Source) *Chars {
	return &Chars{src: src}
}

// Fork returns an independent cursor at the same position.
func (c *Chars) Fork() *Chars {
	cp := *c
	return &cp
}

// Done reports whether the cursor is at end of input.
func (c *Chars) Done() bool {
	return c.pos >= c.src.Len()
}

// Pos returns the byte position within the source.
func (c *Chars) Pos() int {
	return c.pos
}

// Rest returns the unconsumed remainder of the input. The returned slice
// aliases the source content and must not be modified.
func (c *Chars) Rest() []byte {
	return c.src.Content()[c.pos:]
}

// Advance moves the cursor past the given matched tokens, consuming exactly
// their total text length.
func (c *Chars) Advance(consumed []token.Token) {
	c.pos += token.TextLen(consumed)
	if c.pos > c.src.Len() {
		c.pos = c.src.Len()
	}
}

// SourceName returns the source name; part of the SourcePos interface used
// when constructing errors.
func (c *Chars) SourceName() string {
	return c.src.Name()
}

// Line returns the 1-based line number at the current position.
func (c *Chars) Line() int {
	line, _ := c.src.LineCol(c.pos)
	return line
}

// Col returns the 1-based column number at the current position.
func (c *Chars) Col() int {
	_, col := c.src.LineCol(c.pos)
	return col
}

// Tokens is a position over an already-lexed token sequence.
type Tokens struct {
	toks []token.Token
	pos  int
}

// NewTokens creates a token cursor at the start of toks.
func NewTokens(toks []token.Token) *Tokens {
	return &Tokens{toks: toks}
}

// Fork returns an independent cursor at the same position.
func (c *Tokens) Fork() *Tokens {
	cp := *c
	return &cp
}

// Done reports whether the cursor is at end of input.
func (c *Tokens) Done() bool {
	return c.pos >= len(c.toks)
}

// Pos returns the index of the current token.
func (c *Tokens) Pos() int {
	return c.pos
}

// Peek returns the current token without consuming it.
// ok is false at end of input.
func (c *Tokens) Peek() (t token.Token, ok bool) {
	if c.Done() {
		return token.Token{}, false
	}
	return c.toks[c.pos], true
}

// Advance moves the cursor past the given matched tokens, consuming exactly
// one input token per matched token.
func (c *Tokens) Advance(consumed []token.Token) {
	c.pos += len(consumed)
	if c.pos > len(c.toks) {
		c.pos = len(c.toks)
	}
}
