package parser

import (
	"fmt"

	"home/internal/ast"
	"home/internal/diag"
	"home/internal/token"
)

// Binding powers for precedence climbing; higher binds tighter.
var binaryPrec = map[token.Kind]int{
	token.OrOr:    1,
	token.AndAnd:  2,
	token.EqEq:    3,
	token.BangEq:  3,
	token.Lt:      4,
	token.LtEq:    4,
	token.Gt:      4,
	token.GtEq:    4,
	token.Plus:    5,
	token.Minus:   5,
	token.Star:    6,
	token.Slash:   6,
	token.Percent: 6,
}

// parseExpr parses an assignment or anything below it.
// Assignment is right-associative and lowest-precedence.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseBinary(0)
	if left == nil {
		return nil
	}
	if p.at(token.Assign) {
		p.advance()
		value := p.parseExpr()
		if value == nil {
			return left
		}
		return &ast.AssignExpr{
			Target: left,
			Value:  value,
			Sp:     left.Span().Cover(value.Span()),
		}
	}
	return left
}

func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for {
		prec, ok := binaryPrec[p.tok.Kind]
		if !ok || prec <= minPrec {
			return left
		}
		opTok := p.advance()
		right := p.parseBinary(prec)
		if right == nil {
			return left
		}
		left = &ast.BinaryExpr{
			Op:    opTok.Text,
			Left:  left,
			Right: right,
			Sp:    left.Span().Cover(right.Span()),
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.tok.Kind {
	case token.Amp:
		ampTok := p.advance()
		op := ast.OpRef
		if p.eat(token.KwMut) {
			op = ast.OpRefMut
		}
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{Op: op, X: operand, Sp: ampTok.Span.Cover(operand.Span())}
	case token.Star:
		starTok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{Op: ast.OpDeref, X: operand, Sp: starTok.Span.Cover(operand.Span())}
	case token.Minus:
		minusTok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{Op: ast.OpNeg, X: operand, Sp: minusTok.Span.Cover(operand.Span())}
	case token.Bang:
		bangTok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{Op: ast.OpNot, X: operand, Sp: bangTok.Span.Cover(operand.Span())}
	default:
		return p.parsePostfix()
	}
}

// postfix := primary ( "(" args ")" | "." IDENT | "[" expr "]" )*
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch p.tok.Kind {
		case token.LParen:
			p.advance()
			call := &ast.CallExpr{Callee: expr, Sp: expr.Span()}
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg := p.parseExpr()
				if arg == nil {
					break
				}
				call.Args = append(call.Args, arg)
				if !p.eat(token.Comma) {
					break
				}
			}
			if _, ok := p.expect(token.RParen, diag.SynUnclosedParen); !ok {
				return call
			}
			call.Sp = call.Sp.Cover(p.lastSpan)
			expr = call
		case token.Dot:
			p.advance()
			fieldTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
			if !ok {
				return expr
			}
			expr = &ast.MemberExpr{
				Object: expr,
				Field:  fieldTok.Text,
				Sp:     expr.Span().Cover(fieldTok.Span),
			}
		case token.LBracket:
			p.advance()
			index := p.parseExpr()
			if index == nil {
				return expr
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket); !ok {
				return expr
			}
			expr = &ast.IndexExpr{
				Object: expr,
				Index:  index,
				Sp:     expr.Span().Cover(p.lastSpan),
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.tok.Kind {
	case token.Ident:
		tok := p.advance()
		return &ast.IdentExpr{Name: tok.Text, Sp: tok.Span}
	case token.IntLit:
		tok := p.advance()
		return &ast.IntLitExpr{Text: tok.Text, Sp: tok.Span}
	case token.StringLit:
		tok := p.advance()
		return &ast.StringLitExpr{Text: tok.Text, Sp: tok.Span}
	case token.KwTrue:
		tok := p.advance()
		return &ast.BoolLitExpr{Value: true, Sp: tok.Span}
	case token.KwFalse:
		tok := p.advance()
		return &ast.BoolLitExpr{Value: false, Sp: tok.Span}
	case token.LParen:
		openTok := p.advance()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen); !ok {
			return inner
		}
		return &ast.GroupExpr{X: inner, Sp: openTok.Span.Cover(p.lastSpan)}
	default:
		p.report(diag.SynExpectExpression, p.tok.Span,
			fmt.Sprintf("expected expression, found %q", p.describe()))
		return nil
	}
}
