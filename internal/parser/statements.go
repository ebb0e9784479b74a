package parser

import (
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/token"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.VAR:
		return p.parseVarDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseExprStatement() ast.Stmt {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		p.synchronize()
		return nil
	}
	stmt := &ast.ExprStmt{X: expr}
	stmt.Token = expr.Tok()
	p.expectStatementEnd()
	return stmt
}

// parseVarDeclHeader parses "var NAME : TYPE [= EXPR]" without consuming
// a statement terminator, for reuse in both the statement form and the
// for-loop initializer.
func (p *Parser) parseVarDeclHeader() *ast.VarDecl {
	tok := p.cur
	p.advance() // consume "var"

	name := p.expect(token.IDENT).Lexeme
	p.expect(token.COLON)
	typ := p.parseTypeExpr()

	decl := &ast.VarDecl{Name: name, Type: typ}
	decl.Token = tok

	if p.cur.Kind == token.ASSIGN {
		p.advance()
		decl.Initializer = p.parseExpression(LOWEST)
	}
	return decl
}

func (p *Parser) parseVarDecl() ast.Stmt {
	decl := p.parseVarDeclHeader()
	p.expectStatementEnd()
	return decl
}

// parseTypeExpr parses a type keyword, optionally followed by "[]".
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	tok := p.cur
	var name string
	switch tok.Kind {
	case token.TYPE_INT:
		name = "int"
	case token.TYPE_LONG:
		name = "long"
	case token.TYPE_DOUBLE:
		name = "double"
	case token.TYPE_CHAR:
		name = "char"
	case token.TYPE_STR:
		name = "str"
	case token.TYPE_BOOL:
		name = "bool"
	case token.TYPE_VOID:
		name = "void"
	default:
		p.errorf(tok.Pos, "expected a type, found %s", tok.Kind)
		return &ast.TypeExpr{Name: "void", Token: tok}
	}
	p.advance()

	isArray := false
	if p.cur.Kind == token.LBRACKET && p.peek.Kind == token.RBRACKET {
		p.advance()
		p.advance()
		isArray = true
	}
	return &ast.TypeExpr{Name: name, IsArray: isArray, Token: tok}
}

// parseArrowBlock parses the block introduced by an ARROW token: either a
// single inline statement on the same logical line, or an indented
// statement sequence.
func (p *Parser) parseArrowBlock() *ast.Block {
	tok := p.expect(token.ARROW)
	block := &ast.Block{}
	block.Token = tok

	if p.cur.Kind == token.NEWLINE {
		p.advance()
		p.expect(token.INDENT)
		for p.cur.Kind != token.DEDENT && p.cur.Kind != token.EOF {
			stmt := p.parseStatement()
			if stmt != nil {
				block.Statements = append(block.Statements, stmt)
			}
			if p.panicking {
				p.synchronize()
			}
		}
		p.expect(token.DEDENT)
		return block
	}

	stmt := p.parseStatement()
	if stmt != nil {
		block.Statements = append(block.Statements, stmt)
	}
	return block
}

func (p *Parser) parseFunction() ast.Stmt {
	tok := p.cur
	p.advance() // "fn"

	name := p.expect(token.IDENT).Lexeme
	p.expect(token.LPAREN)

	var params []ast.Param
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		pname := p.expect(token.IDENT).Lexeme
		p.expect(token.COLON)
		ptype := p.parseTypeExpr()
		params = append(params, ast.Param{Name: pname, Type: ptype})
		if p.cur.Kind == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.COLON)
	retType := p.parseTypeExpr()
	body := p.parseArrowBlock()

	fn := &ast.Function{Name: name, Params: params, ReturnType: retType, Body: body}
	fn.Token = tok
	return fn
}

func (p *Parser) parseReturn() ast.Stmt {
	tok := p.cur
	p.advance()

	var val ast.Expr
	switch p.cur.Kind {
	case token.NEWLINE, token.SEMICOLON, token.DEDENT, token.EOF:
		// bare return
	default:
		val = p.parseExpression(LOWEST)
	}

	stmt := &ast.Return{Value: val}
	stmt.Token = tok
	p.expectStatementEnd()
	return stmt
}

func (p *Parser) parseIf() ast.Stmt {
	tok := p.cur
	p.advance()

	cond := p.parseExpression(LOWEST)
	thenBlock := p.parseArrowBlock()

	var elseBlock *ast.Block
	if p.cur.Kind == token.ELSE {
		p.advance()
		elseBlock = p.parseArrowBlock()
	}

	stmt := &ast.If{Condition: cond, Then: thenBlock, Else: elseBlock}
	stmt.Token = tok
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	tok := p.cur
	p.advance()

	cond := p.parseExpression(LOWEST)
	body := p.parseArrowBlock()

	stmt := &ast.While{Condition: cond, Body: body}
	stmt.Token = tok
	return stmt
}

func (p *Parser) parseFor() ast.Stmt {
	tok := p.cur
	p.advance()

	init := p.parseVarDeclHeader()
	p.expect(token.SEMICOLON)
	cond := p.parseExpression(LOWEST)
	p.expect(token.SEMICOLON)
	incr := p.parseExpression(LOWEST)
	body := p.parseArrowBlock()

	stmt := &ast.For{Init: init, Condition: cond, Increment: incr, Body: body}
	stmt.Token = tok
	return stmt
}

func (p *Parser) parseImport() ast.Stmt {
	tok := p.cur
	p.advance()

	name := p.expect(token.IDENT).Lexeme
	stmt := &ast.Import{ModuleName: name}
	stmt.Token = tok
	p.expectStatementEnd()
	return stmt
}
