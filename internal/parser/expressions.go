package parser

import (
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/token"
)

// parseExpression is the Pratt-parser core: it parses a prefix expression,
// then repeatedly folds in infix/postfix operators whose precedence beats
// precedence.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix := p.prefixFns[p.cur.Kind]
	if prefix == nil {
		p.errorf(p.cur.Pos, "unexpected token %s in expression", p.cur.Kind)
		return nil
	}
	left := prefix()

	for left != nil && precedence < p.curPrecedence() {
		infix := p.infixFns[p.cur.Kind]
		if infix == nil {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIntLiteral() ast.Expr {
	tok := p.cur
	p.advance()
	lit := &ast.Literal{Kind: ast.LitInt, Int: tok.Literal.Int}
	lit.Token = tok
	return lit
}

func (p *Parser) parseLongLiteral() ast.Expr {
	tok := p.cur
	p.advance()
	lit := &ast.Literal{Kind: ast.LitLong, Int: tok.Literal.Int}
	lit.Token = tok
	return lit
}

func (p *Parser) parseDoubleLiteral() ast.Expr {
	tok := p.cur
	p.advance()
	lit := &ast.Literal{Kind: ast.LitDouble, Float: tok.Literal.Float}
	lit.Token = tok
	return lit
}

func (p *Parser) parseCharLiteral() ast.Expr {
	tok := p.cur
	p.advance()
	lit := &ast.Literal{Kind: ast.LitChar, Char: tok.Literal.Char}
	lit.Token = tok
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expr {
	tok := p.cur
	p.advance()
	lit := &ast.Literal{Kind: ast.LitString, Str: tok.Literal.Str}
	lit.Token = tok
	return lit
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	tok := p.cur
	p.advance()
	lit := &ast.Literal{Kind: ast.LitBool, Bool: tok.Kind == token.TRUE}
	lit.Token = tok
	return lit
}

func (p *Parser) parseNilLiteral() ast.Expr {
	tok := p.cur
	p.advance()
	lit := &ast.Literal{Kind: ast.LitNil}
	lit.Token = tok
	return lit
}

func (p *Parser) parseIdentifier() ast.Expr {
	tok := p.cur
	p.advance()
	v := &ast.Variable{Name: tok.Lexeme}
	v.Token = tok
	return v
}

func (p *Parser) parseGrouping() ast.Expr {
	p.advance() // consume "("
	expr := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	tok := p.cur
	p.advance() // consume "["

	var elems []ast.Expr
	for p.cur.Kind != token.RBRACKET && p.cur.Kind != token.EOF {
		elems = append(elems, p.parseExpression(LOWEST))
		if p.cur.Kind == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACKET)

	arr := &ast.Array{Elements: elems}
	arr.Token = tok
	return arr
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.cur
	p.advance()
	operand := p.parseExpression(PREFIX)

	u := &ast.Unary{Op: tok.Kind, Operand: operand}
	u.Token = tok
	return u
}

func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	tok := p.cur
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)

	b := &ast.Binary{Left: left, Op: tok.Kind, Right: right}
	b.Token = tok
	return b
}

// parseAssign requires a bare variable target and is right-associative:
// parsing the value at LOWEST lets a chained "a = b = c" re-enter another
// assignment.
func (p *Parser) parseAssign(left ast.Expr) ast.Expr {
	tok := p.cur

	target, ok := left.(*ast.Variable)
	if !ok {
		p.errorf(tok.Pos, "invalid assignment target")
	}
	p.advance()
	value := p.parseExpression(LOWEST)

	a := &ast.Assign{Value: value}
	if target != nil {
		a.Name = target.Name
	}
	a.Token = tok
	return a
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	tok := p.cur
	p.advance() // consume "("

	var args []ast.Expr
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		args = append(args, p.parseExpression(LOWEST))
		if p.cur.Kind == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)

	c := &ast.Call{Callee: callee, Args: args}
	c.Token = tok
	return c
}

func (p *Parser) parseIndex(left ast.Expr) ast.Expr {
	tok := p.cur
	p.advance() // consume "["
	idx := p.parseExpression(LOWEST)
	p.expect(token.RBRACKET)

	a := &ast.ArrayAccess{Array: left, Index: idx}
	a.Token = tok
	return a
}

func (p *Parser) parsePostfix(left ast.Expr) ast.Expr {
	tok := p.cur
	p.advance()

	if tok.Kind == token.PLUS_PLUS {
		n := &ast.Increment{Operand: left}
		n.Token = tok
		return n
	}
	n := &ast.Decrement{Operand: left}
	n.Token = tok
	return n
}
