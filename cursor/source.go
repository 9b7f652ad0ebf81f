// Package cursor defines forkable, advanceable positions over character
// and token input, used by descriptors for speculative matching.
package cursor

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source is a named piece of character input with line/column tracking
// used for error positions.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// NewSource creates new Source.
func NewSource(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	s.lineStarts = make([]int, 0, bytes.Count(content, []byte("\n"))+1)
	s.lineStarts = append(s.lineStarts, 0)
	for i, c := range content {
		if c == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol returns 1-based line and column numbers for a byte position.
// Positions outside the content are clamped. Column counts runes, not bytes.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.SearchInts(s.lineStarts, pos+1) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}
