package diag

import "fmt"

// Code is a compact numeric identifier for a diagnostic.
// Ranges are reserved per phase:
//
//	1000-1999 lexical
//	2000-2999 syntax
//	3000-3999 borrow / ownership analysis
//	4000-4999 driver / IO
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntax
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectSemicolon  Code = 2002
	SynExpectExpression Code = 2003
	SynExpectIdentifier Code = 2004
	SynUnclosedParen    Code = 2005
	SynUnclosedBrace    Code = 2006
	SynUnclosedBracket  Code = 2007
	SynExpectBlock      Code = 2008

	// Borrow / ownership analysis
	BrwInfo                   Code = 3000
	BrwUseAfterMove           Code = 3001
	BrwMultipleMutableBorrows Code = 3002
	BrwBorrowWhileMutBorrowed Code = 3003
	BrwMutBorrowWhileBorrowed Code = 3004
	BrwReturnBorrowedValue    Code = 3005
	BrwCannotMoveBorrowed     Code = 3006
	BrwRedeclaration          Code = 3007
	// BrwInvalidLifetime is reserved for lifetime-parameter support;
	// nothing emits it today.
	BrwInvalidLifetime Code = 3008

	// Driver / IO
	IOInfo        Code = 4000
	IOReadFailed  Code = 4001
	IOCacheFailed Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	LexInfo:                   "Lexical information",
	LexUnknownChar:            "Unknown character",
	LexUnterminatedString:     "Unterminated string",
	LexBadNumber:              "Bad number",
	SynInfo:                   "Syntax information",
	SynUnexpectedToken:        "Unexpected token",
	SynExpectSemicolon:        "Expect semicolon",
	SynExpectExpression:       "Expect expression",
	SynExpectIdentifier:       "Expect identifier",
	SynUnclosedParen:          "Unclosed parenthesis",
	SynUnclosedBrace:          "Unclosed brace",
	SynUnclosedBracket:        "Unclosed bracket",
	SynExpectBlock:            "Expect block",
	BrwInfo:                   "Borrow information",
	BrwUseAfterMove:           "Use after move",
	BrwMultipleMutableBorrows: "Multiple mutable borrows",
	BrwBorrowWhileMutBorrowed: "Borrow while mutably borrowed",
	BrwMutBorrowWhileBorrowed: "Mutable borrow while borrowed",
	BrwReturnBorrowedValue:    "Return of borrowed value",
	BrwCannotMoveBorrowed:     "Cannot move borrowed value",
	BrwRedeclaration:          "Redeclaration in the same scope",
	BrwInvalidLifetime:        "Invalid lifetime",
	IOInfo:                    "Driver information",
	IOReadFailed:              "Failed to read source file",
	IOCacheFailed:             "Failed to access result cache",
}

// ID returns the stable short identifier, e.g. "BRW3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("BRW%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable summary for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// LookupID resolves a short identifier like "BRW3001" back to its Code.
func LookupID(id string) (Code, bool) {
	for code := range codeDescription {
		if code.ID() == id {
			return code, true
		}
	}
	return UnknownCode, false
}
