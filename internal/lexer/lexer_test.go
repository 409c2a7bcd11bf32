package lexer

import (
	"testing"

	"home/internal/diag"
	"home/internal/source"
	"home/internal/token"
)

func tokenize(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hm", []byte(src))
	bag := diag.NewBag(100)
	toks := Tokenize(fs.Get(id), diag.BagReporter{Bag: bag})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenizeLetStatement(t *testing.T) {
	toks, bag := tokenize(t, "let x = 42;")
	want := []token.Kind{token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF}

	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[1].Text != "x" {
		t.Errorf("ident text = %q", toks[1].Text)
	}
	if toks[3].Text != "42" {
		t.Errorf("int text = %q", toks[3].Text)
	}
}

func TestTokenizeBorrowOperators(t *testing.T) {
	toks, bag := tokenize(t, "let r = &mut x; let s = &x;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	got := kinds(toks)
	want := []token.Kind{
		token.KwLet, token.Ident, token.Assign, token.Amp, token.KwMut, token.Ident, token.Semicolon,
		token.KwLet, token.Ident, token.Assign, token.Amp, token.Ident, token.Semicolon,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeTwoByteOperators(t *testing.T) {
	toks, _ := tokenize(t, "a == b != c <= d >= e && f || g")
	want := []token.Kind{
		token.Ident, token.EqEq, token.Ident, token.BangEq, token.Ident,
		token.LtEq, token.Ident, token.GtEq, token.Ident,
		token.AndAnd, token.Ident, token.OrOr, token.Ident, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	toks, bag := tokenize(t, "// leading comment\nlet x = 1; // trailing\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	got := kinds(toks)
	want := []token.Kind{token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeString(t *testing.T) {
	toks, bag := tokenize(t, `let s = "hi \"there\"";`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[3].Kind != token.StringLit {
		t.Fatalf("kind = %v, want StringLit", toks[3].Kind)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, bag := tokenize(t, `let s = "oops;`)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v", bag.Items()[0].Code)
	}
}

func TestTokenizeUnknownChar(t *testing.T) {
	_, bag := tokenize(t, "let x = 1 # 2;")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Errorf("code = %v", bag.Items()[0].Code)
	}
}

func TestTokenSpansMatchText(t *testing.T) {
	src := "let value = other;"
	toks, _ := tokenize(t, src)
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		if got := src[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span text %q != token text %q", got, tok.Text)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hm", []byte("let x;"))
	lx := New(fs.Get(id), nil)

	p := lx.Peek()
	n := lx.Next()
	if p != n {
		t.Fatalf("Peek %v != Next %v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("expected Ident after let")
	}
}
