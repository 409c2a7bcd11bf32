package parser

import (
	"home/internal/ast"
	"home/internal/diag"
	"home/internal/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case token.KwLet:
		return p.parseLet()
	case token.KwFn:
		return p.parseFn()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.LBrace:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

// letStmt := "let" IDENT (":" IDENT)? ("=" expr)? ";"
func (p *Parser) parseLet() ast.Stmt {
	letTok := p.advance()

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return nil
	}

	stmt := &ast.LetStmt{
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
		Sp:       letTok.Span,
	}

	if p.eat(token.Colon) {
		typeTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			p.syncStmt()
			return stmt
		}
		stmt.TypeName = typeTok.Text
	}

	if p.eat(token.Assign) {
		stmt.Init = p.parseExpr()
		if stmt.Init == nil {
			p.syncStmt()
			return stmt
		}
	}

	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
	}
	stmt.Sp = stmt.Sp.Cover(p.lastSpan)
	return stmt
}

// fnStmt := "fn" IDENT "(" (IDENT ("," IDENT)*)? ")" block
func (p *Parser) parseFn() ast.Stmt {
	fnTok := p.advance()

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return nil
	}

	stmt := &ast.FnStmt{
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
		Sp:       fnTok.Span,
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken); !ok {
		p.syncStmt()
		return stmt
	}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		paramTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			break
		}
		stmt.Params = append(stmt.Params, ast.Param{Name: paramTok.Text, Sp: paramTok.Span})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen); !ok {
		p.syncStmt()
		return stmt
	}

	stmt.Body = p.parseBlock()
	if stmt.Body != nil {
		stmt.Sp = stmt.Sp.Cover(stmt.Body.Sp)
	}
	return stmt
}

// returnStmt := "return" expr? ";"
func (p *Parser) parseReturn() ast.Stmt {
	retTok := p.advance()
	stmt := &ast.ReturnStmt{Sp: retTok.Span}

	if !p.at(token.Semicolon) {
		stmt.Value = p.parseExpr()
		if stmt.Value == nil {
			p.syncStmt()
			return stmt
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
	}
	stmt.Sp = stmt.Sp.Cover(p.lastSpan)
	return stmt
}

// ifStmt := "if" expr block ("else" (ifStmt | block))?
func (p *Parser) parseIf() ast.Stmt {
	ifTok := p.advance()
	stmt := &ast.IfStmt{Sp: ifTok.Span}

	stmt.Cond = p.parseExpr()
	if stmt.Cond == nil {
		p.syncStmt()
		return stmt
	}
	stmt.Then = p.parseBlock()
	if stmt.Then == nil {
		return stmt
	}
	stmt.Sp = stmt.Sp.Cover(stmt.Then.Sp)

	if p.eat(token.KwElse) {
		if p.at(token.KwIf) {
			stmt.Else = p.parseIf()
		} else {
			stmt.Else = p.parseBlock()
		}
		if stmt.Else != nil {
			stmt.Sp = stmt.Sp.Cover(stmt.Else.Span())
		}
	}
	return stmt
}

// whileStmt := "while" expr block
func (p *Parser) parseWhile() ast.Stmt {
	whileTok := p.advance()
	stmt := &ast.WhileStmt{Sp: whileTok.Span}

	stmt.Cond = p.parseExpr()
	if stmt.Cond == nil {
		p.syncStmt()
		return stmt
	}
	stmt.Body = p.parseBlock()
	if stmt.Body != nil {
		stmt.Sp = stmt.Sp.Cover(stmt.Body.Sp)
	}
	return stmt
}

// forStmt := "for" (letStmt | exprStmt | ";") expr? ";" expr? block
func (p *Parser) parseFor() ast.Stmt {
	forTok := p.advance()
	stmt := &ast.ForStmt{Sp: forTok.Span}

	switch {
	case p.eat(token.Semicolon):
		// no init
	case p.at(token.KwLet):
		stmt.Init = p.parseLet()
	default:
		stmt.Init = p.parseExprStmt()
	}

	if !p.at(token.Semicolon) {
		stmt.Cond = p.parseExpr()
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
		return stmt
	}

	if !p.at(token.LBrace) {
		stmt.Post = p.parseExpr()
	}

	stmt.Body = p.parseBlock()
	if stmt.Body != nil {
		stmt.Sp = stmt.Sp.Cover(stmt.Body.Sp)
	}
	return stmt
}

// block := "{" stmt* "}"
func (p *Parser) parseBlock() *ast.BlockStmt {
	openTok, ok := p.expect(token.LBrace, diag.SynExpectBlock)
	if !ok {
		return nil
	}
	block := &ast.BlockStmt{Sp: openTok.Span}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.tok
		if stmt := p.parseStmt(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		if p.tok == before && !p.at(token.RBrace) && !p.at(token.EOF) {
			p.advance()
		}
	}

	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace); ok {
		block.Sp = block.Sp.Cover(p.lastSpan)
	}
	return block
}

// exprStmt := expr ";"
func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()
	if expr == nil {
		p.syncStmt()
		return nil
	}
	stmt := &ast.ExprStmt{X: expr, Sp: expr.Span()}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
	}
	stmt.Sp = stmt.Sp.Cover(p.lastSpan)
	return stmt
}
