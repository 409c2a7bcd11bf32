// Package ast models the home language as closed statement and expression
// sum types. Every variant is a struct implementing the sealed Stmt or Expr
// interface, so a walker that switches on the concrete type covers the whole
// language; adding a variant is a compile-visible change here, not a silent
// no-op downstream.
//
// Nodes are immutable after parsing. Analysis passes borrow the tree
// read-only and keep their own state elsewhere.
package ast

import (
	"home/internal/source"
)

// Node is anything carrying a source span.
type Node interface {
	Span() source.Span
}

// Stmt is the closed set of statement variants.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the closed set of expression variants.
type Expr interface {
	Node
	exprNode()
}

// Program is an ordered sequence of top-level statements.
type Program struct {
	Stmts []Stmt
	Sp    source.Span
}

func (p *Program) Span() source.Span { return p.Sp }
