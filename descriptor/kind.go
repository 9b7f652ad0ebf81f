package descriptor

import (
	"fmt"
)

// Kind identifies the lexical construct a descriptor recognizes. It is a
// closed set: the grammar engine dispatches on it instead of inspecting
// concrete types.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumeric
	KindText
	KindPunctuator
	KindCommentStart
	KindCommentEnd
	KindWhitespace
	KindIdentifier
	KindKeyword
	KindRegularExpression
	KindReference
	KindString
	KindComment
	KindSeparator
	KindOptional
)

var kindNames = [...]string{
	"Null",
	"Boolean",
	"Numeric",
	"Text",
	"Punctuator",
	"CommentStart",
	"CommentEnd",
	"Whitespace",
	"Identifier",
	"Keyword",
	"RegularExpression",
	"Reference",
	"String",
	"Comment",
	"Separator",
	"Optional",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}
