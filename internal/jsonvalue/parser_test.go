package jsonvalue

import (
	"strings"
	"testing"

	"github.com/cwbudde/ecmacore/internal/errors"
)

func TestParse_Primitives(t *testing.T) {
	cases := []struct {
		input string
		kind  Kind
	}{
		{"null", KindNull},
		{"true", KindBoolean},
		{"false", KindBoolean},
		{`"hello"`, KindString},
		{"42", KindNumber},
		{"-3.5e2", KindNumber},
	}
	for _, c := range cases {
		v, err := Parse(c.input)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", c.input, err)
		}
		if v.Kind() != c.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", c.input, v.Kind(), c.kind)
		}
	}
}

func TestParse_Object(t *testing.T) {
	v, err := Parse(`{"a": 1, "b": [true, false, null], "c": {"d": "x"}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != KindObject {
		t.Fatalf("expected object, got %v", v.Kind())
	}
	if v.ObjectGet("a").NumberValue() != 1 {
		t.Errorf("a = %v, want 1", v.ObjectGet("a").NumberValue())
	}
	arr := v.ObjectGet("b")
	if arr.Kind() != KindArray || arr.ArrayLen() != 3 {
		t.Errorf("b = %+v, want a 3-element array", arr)
	}
	nested := v.ObjectGet("c")
	if nested.ObjectGet("d").StringValue() != "x" {
		t.Errorf("c.d = %q, want x", nested.ObjectGet("d").StringValue())
	}
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	v, err := Parse(`{"a": 1, "a": 2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ObjectGet("a").NumberValue() != 2 {
		t.Errorf("expected last value to win, got %v", v.ObjectGet("a").NumberValue())
	}
	if len(v.ObjectKeys()) != 1 {
		t.Errorf("expected one key, got %v", v.ObjectKeys())
	}
}

func TestParse_StringEscapes(t *testing.T) {
	v, err := Parse(`"line\nbreak\ttabA"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "line\nbreak\ttabA"
	if v.StringValue() != want {
		t.Errorf("got %q, want %q", v.StringValue(), want)
	}
}

func TestParse_RejectsNonStandardEscapes(t *testing.T) {
	for _, input := range []string{`"\v"`, `"\x41"`, `"\u{41}"`} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q): expected rejection of non-standard escape", input)
		}
	}
}

func TestParse_RejectsTrailingComma(t *testing.T) {
	for _, input := range []string{`[1,2,]`, `{"a":1,}`} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q): expected trailing comma to be rejected", input)
		}
	}
}

func TestParse_RejectsLeadingZero(t *testing.T) {
	if _, err := Parse("012"); err == nil {
		t.Error("expected leading-zero number to be rejected")
	}
}

func TestParse_RejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse("1 2"); err == nil {
		t.Error("expected trailing garbage after a complete value to be rejected")
	}
}

func TestParse_UnexpectedEndOfInput(t *testing.T) {
	_, err := Parse(`{"a":`)
	if err == nil {
		t.Fatal("expected an error")
	}
	ee, ok := err.(*errors.EngineError)
	if !ok {
		t.Fatalf("expected *errors.EngineError, got %T", err)
	}
	if ee.Kind != errors.SyntaxErrorKind {
		t.Errorf("expected SyntaxError, got %v", ee.Kind)
	}
	if !strings.Contains(ee.Message, "Unexpected end of JSON input") {
		t.Errorf("unexpected message: %q", ee.Message)
	}
}

func TestParse_InvalidControlCharacterInString(t *testing.T) {
	_, err := Parse("\"a\x01b\"")
	if err == nil {
		t.Fatal("expected raw control character inside a string to be rejected")
	}
}

func TestParse_RawTabAllowedInString(t *testing.T) {
	v, err := Parse("\"a\tb\"")
	if err != nil {
		t.Fatalf("expected raw tab inside a string to be allowed, got error: %v", err)
	}
	if v.StringValue() != "a\tb" {
		t.Errorf("got %q, want %q", v.StringValue(), "a\tb")
	}
}
