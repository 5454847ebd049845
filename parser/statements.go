package parser

import (
	"github.com/Saliba-codes/GadySH/ast"
	"github.com/Saliba-codes/GadySH/lexer"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.match(lexer.LET):
		return p.parseVarDecl()
	case p.match(lexer.FN):
		return p.parseFnDecl()
	case p.match(lexer.IF):
		return p.parseIf()
	case p.match(lexer.WHILE):
		return p.parseWhile()
	case p.match(lexer.RETURN):
		return p.parseReturn()
	case p.match(lexer.LBRACE):
		return p.parseBlockOpened()
	}

	start := p.current().Start
	expr := p.parseExpression()
	p.expect(lexer.SEMI, "Expected ';' after expression.")
	return ast.NewExprStmt(start, expr)
}

// parseBlockOpened parses statements up to a closing '}', assuming the
// opening '{' has already been consumed by the caller.
func (p *Parser) parseBlockOpened() *ast.Block {
	start := p.previous().Start
	var stmts []ast.Stmt
	for !p.check(lexer.RBRACE) && !p.atEnd() {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(lexer.RBRACE, "Expected '}' after block.")
	return ast.NewBlock(start, stmts)
}

func (p *Parser) parseVarDecl() ast.Stmt {
	start := p.previous().Start
	nameTok := p.expect(lexer.IDENT, "Expected identifier after 'let'.")

	typeName := ""
	if p.match(lexer.COLON) {
		typeName = p.parseTypeName()
	}

	var init ast.Expr
	if p.match(lexer.EQ) {
		init = p.parseExpression()
	}

	p.expect(lexer.SEMI, "Expected ';' after variable declaration.")
	return ast.NewVarDecl(start, nameTok.Value, typeName, init)
}

func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	if !p.check(lexer.RPAREN) {
		for {
			nameTok := p.expect(lexer.IDENT, "Expected parameter name.")
			typ := ""
			if p.match(lexer.COLON) {
				typ = p.parseTypeName()
			}
			params = append(params, ast.Param{Name: nameTok.Value, Type: typ})
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	return params
}

func (p *Parser) parseFnDecl() ast.Stmt {
	start := p.previous().Start
	nameTok := p.expect(lexer.IDENT, "Expected function name after 'fn'.")
	p.expect(lexer.LPAREN, "Expected '(' after function name.")
	params := p.parseParamList()
	p.expect(lexer.RPAREN, "Expected ')' after parameters.")

	returnType := ""
	if p.match(lexer.COLON) {
		returnType = p.parseTypeName()
	}

	p.expect(lexer.LBRACE, "Expected '{' before function body.")
	body := p.parseBlockOpened()

	return ast.NewFnDecl(start, nameTok.Value, params, returnType, body)
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.previous().Start
	p.expect(lexer.LPAREN, "Expected '(' after 'if'.")
	cond := p.parseExpression()
	p.expect(lexer.RPAREN, "Expected ')' after if condition.")
	then := p.parseStatement()

	var els ast.Stmt
	if p.match(lexer.ELSE) {
		els = p.parseStatement()
	}
	return ast.NewIfStmt(start, cond, then, els)
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.previous().Start
	p.expect(lexer.LPAREN, "Expected '(' after 'while'.")
	cond := p.parseExpression()
	p.expect(lexer.RPAREN, "Expected ')' after while condition.")
	body := p.parseStatement()
	return ast.NewWhileStmt(start, cond, body)
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.previous().Start
	if p.check(lexer.SEMI) {
		p.advance()
		return ast.NewReturnStmt(start, nil)
	}
	value := p.parseExpression()
	p.expect(lexer.SEMI, "Expected ';' after return value.")
	return ast.NewReturnStmt(start, value)
}

// parseTypeName accepts a base identifier optionally followed by a
// bracket-nested type-argument list, e.g. "Int", "List[Int]",
// "Map[Int, List[String]]". The whole thing is kept as one opaque string;
// only identifiers, commas, and nested brackets are permitted inside the
// brackets.
func (p *Parser) parseTypeName() string {
	base := p.expect(lexer.IDENT, "Expected type name after ':'.").Value
	s := base

	if p.match(lexer.LBRACKET) {
		s += "["
		depth := 1
		for depth > 0 && !p.atEnd() {
			switch {
			case p.match(lexer.LBRACKET):
				depth++
				s += "["
			case p.match(lexer.RBRACKET):
				depth--
				s += "]"
			case p.match(lexer.COMMA):
				s += ","
			case p.match(lexer.IDENT):
				s += p.previous().Value
			default:
				p.fail("Invalid token in type annotation.")
			}
		}
		if depth != 0 {
			p.fail("Unterminated type annotation (missing ']').")
		}
	}

	return s
}
