/*
Package descriptors is the primitive-matching layer of a grammar-description
toolkit built for format-preserving source transformation: whitespace and
comments are captured as ordinary tokens, never discarded.

Consists of subpackages:
  - token: token value type and the closed set of token types;
  - cursor: forkable, advanceable positions over character and token input;
  - pattern: compiled patterns anchored at a cursor position;
  - descriptor: the descriptors themselves — literal matchers/builders and
    the combinators (sequence, Optional, Separator) they compose into;
  - grammar: the resolver capability mapping reference names to descriptors.

A descriptor recognizes one lexical construct in raw characters or in an
already-lexed token sequence, and synthesizes the canonical token sequence
for a semantic value. Matching is speculative: callers fork a cursor, ask a
descriptor to match, and advance the original cursor only on success.

This package defines the error type shared by the subpackages.
*/
package descriptors

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	BuildErrors   = 1   // building token sequences from malformed values
	MatchErrors   = 101 // fatal conditions hit while matching
	GrammarErrors = 201 // reference registration and resolution
)

// Error is the error type used by all subpackages. Expected match failures
// are not errors; only programmer and construction mistakes produce one.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and
	// position information if provided.
	Message string

	// SourceName contains the name of the source that caused this error
	// or empty string.
	SourceName string

	// Line contains line number in source or 0.
	Line int

	// Col contains column number in source or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when
// constructing an error; cursor.Chars implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
