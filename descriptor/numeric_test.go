package descriptor

import (
	"testing"

	"github.com/js-cst-tokens/js-descriptors/cursor"
	"github.com/js-cst-tokens/js-descriptors/token"
)

func TestParseNumber(t *testing.T) {
	samples := map[string]float64{
		"0":           0,
		"42":          42,
		"1_000":       1000,
		"0b101":       5,
		"0B11":        3,
		"0b1010_1010": 170,
		"0o17":        15,
		"0O7":         7,
		"0x10":        16,
		"0Xff":        255,
		"0x1_0":       16,
		"017":         15,
		"0017":        15,
		"08":          8,
		"09":          9,
		"019":         19,
		"0.5":         0.5,
		"017.5":       17.5,
		"1.5":         1.5,
		"1e1":         10,
		"1E2":         100,
		"2e-1":        0.2,
		"12_3.4_5":    123.45,
	}

	for text, expected := range samples {
		v, e := ParseNumber(text)
		if e != nil {
			t.Errorf("literal %q: unexpected error %s", text, e)
		} else if v != expected {
			t.Errorf("literal %q: expecting %v, got %v", text, expected, v)
		}
	}

	for _, bad := range []string{"", "0b", "0o8", "0xg", "abc", "1e"} {
		_, e := ParseNumber(bad)
		if e == nil {
			t.Errorf("literal %q: expecting error", bad)
		}
	}
}

func TestNumericValueEquivalence(t *testing.T) {
	samples := []struct {
		value float64
		input string
		match bool
	}{
		{16, "0x10 ", true},
		{16, "0x11 ", false},
		{16, "16,", true},
		{16, "1_6;", true},
		{16, "0b10000)", true},
		{16, "0o20 ", true},
		{16, "020 ", true},
		{10, "1e1 ", true},
		{10, "10", true},
		{9, "09 ", true},
		{15, "017 ", true},
		{16, "16x", false},
		{16, "0x10f ", false},
	}

	for _, s := range samples {
		toks, ok, e := Numeric(s.value).MatchChrs(chrs(s.input))
		if e != nil {
			t.Fatalf("input %q: unexpected error %s", s.input, e)
		}
		if ok != s.match {
			t.Errorf("input %q vs value %v: expecting match %v, got %v", s.input, s.value, s.match, ok)
		}
		if ok && len(toks) != 1 {
			t.Errorf("input %q: expecting one token, got %v", s.input, toks)
		}
	}
}

func TestNumericTokenEquivalence(t *testing.T) {
	d := Numeric(10)
	for _, text := range []string{"10", "1e1", "0xa", "1_0"} {
		toks := []token.Token{token.New(token.Numeric, text)}
		_, ok, e := d.MatchTokens(cursor.NewTokens(toks))
		if e != nil || !ok {
			t.Errorf("token %q: expecting match, got ok %v, error %v", text, ok, e)
		}
	}

	_, ok, e := d.MatchTokens(cursor.NewTokens([]token.Token{token.New(token.Numeric, "11")}))
	if e != nil || ok {
		t.Fatalf("expecting mismatch for 11, got ok %v, error %v", ok, e)
	}
}

func TestNumericBuild(t *testing.T) {
	toks := mustBuild(t, Numeric(16))
	if len(toks) != 1 || toks[0] != token.New(token.Numeric, "16") {
		t.Fatalf("expecting canonical spelling 16, got %v", toks)
	}

	toks = mustBuild(t, Numeric(16), "0x10")
	if len(toks) != 1 || toks[0] != token.New(token.Numeric, "0x10") {
		t.Fatalf("expecting overridden spelling 0x10, got %v", toks)
	}

	_, e := Numeric(16).Build("0xzz")
	if e == nil {
		t.Fatalf("expecting error for undecodable override")
	}
}
