// Package pattern executes compiled regular expressions anchored at a
// cursor position: a pattern either matches a prefix of the remaining
// input or does not match at all.
package pattern

import (
	"regexp"
)

// Pattern is a compiled expression that only matches at the start of its
// input. Patterns are immutable and safe for concurrent use.
type Pattern struct {
	re *regexp.Regexp
}

// MustCompile compiles expr into an anchored Pattern.
// Panics if expr is not a valid regular expression.
func MustCompile(expr string) *Pattern {
	return &Pattern{regexp.MustCompile(`\A(?:` + expr + `)`)}
}

// Find returns submatch index pairs for a match anchored at the start of
// rest, nil if there is no such match. Index pairs follow the
// regexp.FindSubmatchIndex convention.
func (p *Pattern) Find(rest []byte) []int {
	m := p.re.FindSubmatchIndex(rest)
	if len(m) == 0 {
		return nil
	}
	return m
}

// Prefix returns the length of capturing group 1 of an anchored match,
// -1 if there is no match. Patterns used with Prefix wrap their payload in
// a leading group so trailing context (e.g. a word boundary) can be
// required without being consumed.
func (p *Pattern) Prefix(rest []byte) int {
	m := p.Find(rest)
	if len(m) < 4 || m[2] < 0 {
		return -1
	}
	return m[3] - m[2]
}
