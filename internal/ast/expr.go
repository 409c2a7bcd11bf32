package ast

import (
	"home/internal/source"
)

// UnaryOp enumerates unary operators. OpRef and OpRefMut are the only forms
// that create borrows.
type UnaryOp uint8

const (
	OpRef    UnaryOp = iota // &x
	OpRefMut                // &mut x
	OpDeref                 // *x
	OpNeg                   // -x
	OpNot                   // !x
)

func (op UnaryOp) String() string {
	switch op {
	case OpRef:
		return "&"
	case OpRefMut:
		return "&mut"
	case OpDeref:
		return "*"
	case OpNeg:
		return "-"
	case OpNot:
		return "!"
	}
	return "?"
}

// IdentExpr references a binding by name.
type IdentExpr struct {
	Name string
	Sp   source.Span
}

// IntLitExpr is an integer literal; Text preserves the source spelling.
type IntLitExpr struct {
	Text string
	Sp   source.Span
}

// StringLitExpr is a string literal including quotes in its span.
type StringLitExpr struct {
	Text string
	Sp   source.Span
}

// BoolLitExpr is `true` or `false`.
type BoolLitExpr struct {
	Value bool
	Sp    source.Span
}

// BinaryExpr combines two operands; Op is the operator lexeme.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	Sp    source.Span
}

// UnaryExpr applies Op to X.
type UnaryExpr struct {
	Op UnaryOp
	X  Expr
	Sp source.Span
}

// AssignExpr writes Value into Target: `target = value`.
type AssignExpr struct {
	Target Expr
	Value  Expr
	Sp     source.Span
}

// CallExpr invokes Callee with Args.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Sp     source.Span
}

// MemberExpr accesses a field: `object.field`.
type MemberExpr struct {
	Object Expr
	Field  string
	Sp     source.Span
}

// IndexExpr subscripts: `object[index]`.
type IndexExpr struct {
	Object Expr
	Index  Expr
	Sp     source.Span
}

// GroupExpr is a parenthesized expression, kept for span fidelity.
type GroupExpr struct {
	X  Expr
	Sp source.Span
}

func (e *IdentExpr) Span() source.Span     { return e.Sp }
func (e *IntLitExpr) Span() source.Span    { return e.Sp }
func (e *StringLitExpr) Span() source.Span { return e.Sp }
func (e *BoolLitExpr) Span() source.Span   { return e.Sp }
func (e *BinaryExpr) Span() source.Span    { return e.Sp }
func (e *UnaryExpr) Span() source.Span     { return e.Sp }
func (e *AssignExpr) Span() source.Span    { return e.Sp }
func (e *CallExpr) Span() source.Span      { return e.Sp }
func (e *MemberExpr) Span() source.Span    { return e.Sp }
func (e *IndexExpr) Span() source.Span     { return e.Sp }
func (e *GroupExpr) Span() source.Span     { return e.Sp }

func (*IdentExpr) exprNode()     {}
func (*IntLitExpr) exprNode()    {}
func (*StringLitExpr) exprNode() {}
func (*BoolLitExpr) exprNode()   {}
func (*BinaryExpr) exprNode()    {}
func (*UnaryExpr) exprNode()     {}
func (*AssignExpr) exprNode()    {}
func (*CallExpr) exprNode()      {}
func (*MemberExpr) exprNode()    {}
func (*IndexExpr) exprNode()     {}
func (*GroupExpr) exprNode()     {}
