// Package parser builds the home AST from a token stream via recursive
// descent with precedence climbing for expressions. Errors are reported
// through diag.Reporter and recovery synchronizes on `;` and `}` so one
// run surfaces multiple problems.
package parser

import (
	"fmt"

	"home/internal/ast"
	"home/internal/diag"
	"home/internal/lexer"
	"home/internal/source"
	"home/internal/token"
)

// Parser holds the state for parsing one file.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	tok      token.Token // current token
	lastSpan source.Span // span of the last consumed token
}

// ParseFile parses one source file into a Program. Diagnostics go to
// reporter; the returned program contains everything that could be parsed.
func ParseFile(file *source.File, reporter diag.Reporter) *ast.Program {
	lx := lexer.New(file, reporter)
	p := &Parser{
		lx:       lx,
		reporter: reporter,
	}
	p.tok = lx.Next()

	prog := &ast.Program{Sp: source.Span{File: file.ID, End: uint32(len(file.Content))}}
	for p.tok.Kind != token.EOF {
		before := p.tok
		if stmt := p.parseStmt(); stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
		// Guarantee progress even when a statement parse consumed nothing.
		if p.tok == before && p.tok.Kind != token.EOF {
			p.advance()
		}
	}
	return prog
}

func (p *Parser) advance() token.Token {
	prev := p.tok
	p.lastSpan = prev.Span
	p.tok = p.lx.Next()
	return prev
}

func (p *Parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

// eat consumes the current token if it matches kind.
func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or reports code and leaves the
// token in place for recovery.
func (p *Parser) expect(kind token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.report(code, p.tok.Span, fmt.Sprintf("expected %q, found %q", kind.String(), p.describe()))
	return p.tok, false
}

func (p *Parser) describe() string {
	if p.tok.Kind == token.EOF {
		return "end of file"
	}
	return p.tok.Text
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.reporter == nil {
		return
	}
	p.reporter.Report(diag.NewError(code, sp, msg))
}

// syncStmt skips tokens until a statement boundary: just past `;`, or at
// `}`, or at EOF.
func (p *Parser) syncStmt() {
	for {
		switch p.tok.Kind {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			p.advance()
			return
		}
		p.advance()
	}
}
