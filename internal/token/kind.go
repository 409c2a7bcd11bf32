package token

// Kind enumerates lexical token kinds of the home language.
type Kind uint8

const (
	EOF Kind = iota
	Ident

	// Literals
	IntLit    // 42
	StringLit // "hello"

	// Keywords
	KwLet    // let
	KwMut    // mut
	KwFn     // fn
	KwReturn // return
	KwIf     // if
	KwElse   // else
	KwWhile  // while
	KwFor    // for
	KwTrue   // true
	KwFalse  // false

	// Operators and punctuation
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Amp       // &
	AndAnd    // &&
	OrOr      // ||
	Bang      // !
	Assign    // =
	EqEq      // ==
	BangEq    // !=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Dot       // .
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]

	Invalid
)

var kindNames = map[Kind]string{
	EOF:       "EOF",
	Ident:     "Ident",
	IntLit:    "IntLit",
	StringLit: "StringLit",
	KwLet:     "let",
	KwMut:     "mut",
	KwFn:      "fn",
	KwReturn:  "return",
	KwIf:      "if",
	KwElse:    "else",
	KwWhile:   "while",
	KwFor:     "for",
	KwTrue:    "true",
	KwFalse:   "false",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Percent:   "%",
	Amp:       "&",
	AndAnd:    "&&",
	OrOr:      "||",
	Bang:      "!",
	Assign:    "=",
	EqEq:      "==",
	BangEq:    "!=",
	Lt:        "<",
	LtEq:      "<=",
	Gt:        ">",
	GtEq:      ">=",
	Colon:     ":",
	Semicolon: ";",
	Comma:     ",",
	Dot:       ".",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	Invalid:   "Invalid",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
