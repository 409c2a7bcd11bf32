package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":     KwFn,
		"let":    KwLet,
		"mut":    KwMut,
		"return": KwReturn,
		"if":     KwIf,
		"else":   KwElse,
		"while":  KwWhile,
		"for":    KwFor,
		"true":   KwTrue,
		"false":  KwFalse,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Fn", "LET", "Mut", // case matters
		"Int", "String", // type names are plain identifiers
		"identifier", "borrow",
	}

	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Amp.String(); got != "&" {
		t.Errorf("Amp.String() = %q", got)
	}
	if got := KwLet.String(); got != "let" {
		t.Errorf("KwLet.String() = %q", got)
	}
	if got := Kind(250).String(); got != "Unknown" {
		t.Errorf("unknown kind String() = %q", got)
	}
}
