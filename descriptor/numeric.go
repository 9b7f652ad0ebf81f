package descriptor

import (
	"strconv"
	"strings"

	descriptors "github.com/js-cst-tokens/js-descriptors"
	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/pattern"
	"github.com/js-cst-tokens/js-descriptors/token"
)

// All spellings of a numeric literal. Legacy octal spellings (017) are
// covered by the decimal alternative, the dispatch happens in ParseNumber.
var numberPat = pattern.MustCompile(
	"(0[bB][01][01_]*" +
		"|0[oO][0-7][0-7_]*" +
		"|0[xX][0-9a-fA-F][0-9a-fA-F_]*" +
		"|[0-9][0-9_]*(?:\\.[0-9_]*)?(?:[eE][+-]?[0-9]+)?" +
		")" + boundaryExpr)

type numeric struct {
	value float64
	text  string
}

// Numeric matches and builds a numeric literal. Equivalence is value
// based, never lexical: a descriptor for 16 matches 0x10, 16, and 1_6
// alike, and Build emits the canonical decimal spelling unless overridden.
func Numeric(value float64) Descriptor {
	return numeric{value, strconv.FormatFloat(value, 'g', -1, 64)}
}

func (n numeric) Kind() Kind {
	return KindNumeric
}

func (n numeric) Build(override ...string) ([]token.Token, error) {
	v, err := overrideValue(n.text, override)
	if err != nil {
		return nil, err
	}
	if _, err = ParseNumber(v); err != nil {
		return nil, err
	}
	return []token.Token{token.New(token.Numeric, v)}, nil
}

func (n numeric) MatchTokens(c *cursor.Tokens) ([]token.Token, bool, error) {
	t, ok := c.Peek()
	if !ok || t.Type != token.Numeric {
		return nil, false, nil
	}
	v, err := ParseNumber(t.Value)
	if err != nil || v != n.value {
		return nil, false, nil
	}
	return []token.Token{t}, true, nil
}

func (n numeric) MatchChrs(c *cursor.Chars) ([]token.Token, bool, error) {
	size := numberPat.Prefix(c.Rest())
	if size < 0 {
		return nil, false, nil
	}
	text := string(c.Rest()[:size])
	v, err := ParseNumber(text)
	if err != nil || v != n.value {
		return nil, false, nil
	}
	return []token.Token{token.New(token.Numeric, text)}, true, nil
}

// ParseNumber decodes the text of a numeric literal. Underscore digit
// separators are stripped, then the spelling dispatches on its prefix:
// 0b/0o/0x to the matching base, a leading zero followed only by digits
// none of which is 8 or 9 to legacy octal, anything else to decimal.
// An 8 or 9 anywhere in a leading-zero spelling makes it decimal, so
// 017 is 15 but 09 is 9 and 019 is 19.
func ParseNumber(text string) (float64, error) {
	s := strings.ReplaceAll(text, "_", "")
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B':
			return parseBase(text, s[2:], 2)
		case 'o', 'O':
			return parseBase(text, s[2:], 8)
		case 'x', 'X':
			return parseBase(text, s[2:], 16)
		default:
			if allDigits(s) && !strings.ContainsAny(s, "89") {
				return parseBase(text, s[1:], 8)
			}
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, descriptors.FormatError(ErrBadNumber, "bad numeric literal %q", text)
	}
	return v, nil
}

func parseBase(text, digits string, base int) (float64, error) {
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, descriptors.FormatError(ErrBadNumber, "bad numeric literal %q", text)
	}
	return float64(v), nil
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
