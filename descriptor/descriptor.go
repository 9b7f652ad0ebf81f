// Package descriptor defines the lexical descriptors of the toolkit.
//
// A descriptor is an immutable value object that recognizes one lexical
// construct — in raw character input via MatchChrs or in an already-lexed
// token sequence via MatchTokens — and synthesizes the canonical token
// sequence for a semantic value via Build.
//
// Matching is speculative and non-mutating: a matcher never moves the
// cursor it is given. On success the caller advances its own cursor by the
// returned tokens; on failure the cursor is left exactly where it was.
// Descriptors carry no mutable state, so any instance (including the
// package-level shared ones) is safe to reuse across any number of
// matching attempts.
package descriptor

import (
	descriptors "github.com/js-cst-tokens/js-descriptors"
	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/token"
)

// Error codes used by this package:
const (
	// ErrBadComment indicates building a comment from a value that is
	// neither a line comment nor a delimited block comment.
	ErrBadComment = descriptors.BuildErrors + iota

	// ErrBadString indicates building a string from a value with
	// mismatched enclosing quotes.
	ErrBadString

	// ErrBadNumber indicates a numeric literal that cannot be decoded.
	ErrBadNumber

	// ErrBadOverride indicates more than one override value passed to Build.
	ErrBadOverride
)

const (
	// ErrUnresolvedRef indicates an attempt to match a Reference against
	// raw characters. Resolving a reference requires evaluating the
	// referenced grammar node, a capability owned by the grammar engine;
	// see the grammar package.
	ErrUnresolvedRef = descriptors.MatchErrors + iota
)

// Descriptor recognizes and synthesizes one lexical construct.
//
// Build is pure: called without arguments it builds the token sequence for
// the descriptor's own value, called with a single override it builds for
// that value instead. MatchTokens and MatchChrs report an expected mismatch
// as (nil, false, nil) and never move the cursor; a non-nil error is always
// a *descriptors.Error and signals a programmer or construction mistake,
// never an ordinary mismatch.
type Descriptor interface {
	Kind() Kind
	Build(override ...string) ([]token.Token, error)
	MatchTokens(c *cursor.Tokens) (toks []token.Token, ok bool, err error)
	MatchChrs(c *cursor.Chars) (toks []token.Token, ok bool, err error)
}

// overrideValue normalizes Build's optional argument: no argument selects
// the descriptor's own value, one argument replaces it.
func overrideValue(own string, override []string) (string, error) {
	switch len(override) {
	case 0:
		return own, nil
	case 1:
		return override[0], nil
	}
	return "", descriptors.FormatError(ErrBadOverride, "expected at most one override value, got %d", len(override))
}
