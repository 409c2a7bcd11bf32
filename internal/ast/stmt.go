package ast

import (
	"home/internal/source"
)

// LetStmt declares a binding: `let name [: Type] [= init];`.
// TypeName is empty when omitted; Init is nil for `let x;`.
type LetStmt struct {
	Name     string
	NameSpan source.Span
	TypeName string
	Init     Expr
	Sp       source.Span
}

// Param is one function parameter.
type Param struct {
	Name string
	Sp   source.Span
}

// FnStmt declares a function with its body block.
type FnStmt struct {
	Name     string
	NameSpan source.Span
	Params   []Param
	Body     *BlockStmt
	Sp       source.Span
}

// ReturnStmt returns an optional value: `return;` or `return expr;`.
type ReturnStmt struct {
	Value Expr
	Sp    source.Span
}

// IfStmt with independent then/else arms. Else is either *BlockStmt or
// *IfStmt (else-if chain), or nil.
type IfStmt struct {
	Cond Expr
	Then *BlockStmt
	Else Stmt
	Sp   source.Span
}

// WhileStmt loops while Cond holds.
type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
	Sp   source.Span
}

// ForStmt is the C-style loop; Init, Cond and Post may each be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Expr
	Body *BlockStmt
	Sp   source.Span
}

// BlockStmt is a braced statement list introducing a lexical scope.
type BlockStmt struct {
	Stmts []Stmt
	Sp    source.Span
}

// ExprStmt wraps an expression evaluated for effect: `expr;`.
type ExprStmt struct {
	X  Expr
	Sp source.Span
}

func (s *LetStmt) Span() source.Span    { return s.Sp }
func (s *FnStmt) Span() source.Span     { return s.Sp }
func (s *ReturnStmt) Span() source.Span { return s.Sp }
func (s *IfStmt) Span() source.Span     { return s.Sp }
func (s *WhileStmt) Span() source.Span  { return s.Sp }
func (s *ForStmt) Span() source.Span    { return s.Sp }
func (s *BlockStmt) Span() source.Span  { return s.Sp }
func (s *ExprStmt) Span() source.Span   { return s.Sp }

func (*LetStmt) stmtNode()    {}
func (*FnStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode() {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()    {}
func (*BlockStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
