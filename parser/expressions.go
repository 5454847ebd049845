package parser

import (
	"strconv"

	"github.com/Saliba-codes/GadySH/ast"
	"github.com/Saliba-codes/GadySH/lexer"
)

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is right-associative and the lowest-precedence level.
// The LHS is parsed as an ordinary expression first, then checked: only an
// Identifier or an IndexExpr may be assigned to.
func (p *Parser) parseAssignment() ast.Expr {
	expr := p.parseOr()

	if p.match(lexer.EQ) {
		eqTok := p.previous()
		value := p.parseAssignment()

		switch expr.(type) {
		case *ast.Identifier, *ast.IndexExpr:
			return ast.NewAssignExpr(eqTok.Start, expr, value)
		}
		panic(&ParseError{Message: "Invalid assignment target.", Start: eqTok.Start, End: eqTok.End})
	}

	return expr
}

func (p *Parser) parseOr() ast.Expr {
	expr := p.parseAnd()
	for p.match(lexer.OR_OR) {
		op := p.previous()
		right := p.parseAnd()
		expr = ast.NewBinaryExpr(op.Start, "||", expr, right)
	}
	return expr
}

func (p *Parser) parseAnd() ast.Expr {
	expr := p.parseEquality()
	for p.match(lexer.AND_AND) {
		op := p.previous()
		right := p.parseEquality()
		expr = ast.NewBinaryExpr(op.Start, "&&", expr, right)
	}
	return expr
}

func (p *Parser) parseEquality() ast.Expr {
	expr := p.parseCompare()
	for p.match(lexer.EQ_EQ, lexer.BANG_EQ) {
		op := p.previous()
		sym := "=="
		if op.Type == lexer.BANG_EQ {
			sym = "!="
		}
		right := p.parseCompare()
		expr = ast.NewBinaryExpr(op.Start, sym, expr, right)
	}
	return expr
}

var compareSymbols = map[lexer.TokenType]string{
	lexer.LT:  "<",
	lexer.LTE: "<=",
	lexer.GT:  ">",
	lexer.GTE: ">=",
}

func (p *Parser) parseCompare() ast.Expr {
	expr := p.parseTerm()
	for p.match(lexer.LT, lexer.LTE, lexer.GT, lexer.GTE) {
		op := p.previous()
		right := p.parseTerm()
		expr = ast.NewBinaryExpr(op.Start, compareSymbols[op.Type], expr, right)
	}
	return expr
}

func (p *Parser) parseTerm() ast.Expr {
	expr := p.parseFactor()
	for p.match(lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		sym := "+"
		if op.Type == lexer.MINUS {
			sym = "-"
		}
		right := p.parseFactor()
		expr = ast.NewBinaryExpr(op.Start, sym, expr, right)
	}
	return expr
}

var factorSymbols = map[lexer.TokenType]string{
	lexer.STAR:    "*",
	lexer.SLASH:   "/",
	lexer.PERCENT: "%",
}

func (p *Parser) parseFactor() ast.Expr {
	expr := p.parseUnary()
	for p.match(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		op := p.previous()
		right := p.parseUnary()
		expr = ast.NewBinaryExpr(op.Start, factorSymbols[op.Type], expr, right)
	}
	return expr
}

func (p *Parser) parseUnary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		sym := "!"
		if op.Type == lexer.MINUS {
			sym = "-"
		}
		operand := p.parseUnary()
		return ast.NewUnaryExpr(op.Start, sym, operand)
	}
	return p.parseCall()
}

// parseCall handles the postfix chain of attribute access, calls, and
// indexing, left to right: a.b(c)[d].e() all fall out of this one loop.
func (p *Parser) parseCall() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch {
		case p.match(lexer.DOT):
			nameTok := p.expect(lexer.IDENT, "Expected identifier after '.'.")
			expr = ast.NewAttrExpr(nameTok.Start, expr, nameTok.Value)
			continue

		case p.match(lexer.LPAREN):
			openTok := p.previous()
			var args []ast.Expr
			if !p.check(lexer.RPAREN) {
				for {
					args = append(args, p.parseExpression())
					if !p.match(lexer.COMMA) {
						break
					}
				}
			}
			p.expect(lexer.RPAREN, "Expected ')' after arguments.")
			expr = ast.NewCallExpr(openTok.Start, expr, args)
			continue

		case p.match(lexer.LBRACKET):
			openTok := p.previous()
			index := p.parseExpression()
			p.expect(lexer.RBRACKET, "Expected ']' after index.")
			expr = ast.NewIndexExpr(openTok.Start, expr, index)
			continue
		}
		break
	}

	return expr
}

func (p *Parser) parsePrimary() ast.Expr {
	switch {
	case p.match(lexer.INT):
		tok := p.previous()
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			panic(&ParseError{Message: "Invalid integer literal.", Start: tok.Start, End: tok.End})
		}
		return ast.NewIntLiteral(tok.Start, v)

	case p.match(lexer.FLOAT):
		tok := p.previous()
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			panic(&ParseError{Message: "Invalid float literal.", Start: tok.Start, End: tok.End})
		}
		return ast.NewFloatLiteral(tok.Start, v)

	case p.match(lexer.STRING):
		tok := p.previous()
		return ast.NewStringLiteral(tok.Start, tok.Value)

	case p.match(lexer.TRUE):
		return ast.NewBoolLiteral(p.previous().Start, true)

	case p.match(lexer.FALSE):
		return ast.NewBoolLiteral(p.previous().Start, false)

	case p.match(lexer.NULL):
		return ast.NewNullLiteral(p.previous().Start)

	case p.match(lexer.FN):
		start := p.previous().Start
		p.expect(lexer.LPAREN, "Expected '(' after 'fn'.")
		params := p.parseParamList()
		p.expect(lexer.RPAREN, "Expected ')' after parameters.")

		returnType := ""
		if p.match(lexer.COLON) {
			returnType = p.parseTypeName()
		}

		p.expect(lexer.LBRACE, "Expected '{' before function body.")
		body := p.parseBlockOpened()
		return ast.NewFnExpr(start, params, returnType, body)

	case p.match(lexer.IDENT):
		tok := p.previous()
		return ast.NewIdentifier(tok.Start, tok.Value)

	case p.match(lexer.LBRACKET):
		start := p.previous().Start
		var elems []ast.Expr
		if !p.check(lexer.RBRACKET) {
			for {
				elems = append(elems, p.parseExpression())
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		p.expect(lexer.RBRACKET, "Expected ']' after list literal.")
		return ast.NewListLiteral(start, elems)

	case p.match(lexer.LBRACE):
		start := p.previous().Start
		var entries []ast.MapEntry
		if !p.check(lexer.RBRACE) {
			for {
				key := p.parseExpression()
				p.expect(lexer.COLON, "Expected ':' after map key.")
				val := p.parseExpression()
				entries = append(entries, ast.MapEntry{Key: key, Value: val})
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		p.expect(lexer.RBRACE, "Expected '}' after map literal.")
		return ast.NewMapLiteral(start, entries)

	case p.match(lexer.LPAREN):
		expr := p.parseExpression()
		p.expect(lexer.RPAREN, "Expected ')' after expression.")
		return expr
	}

	p.fail("Expected expression.")
	panic("unreachable")
}
