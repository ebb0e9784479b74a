// Package parser implements Sn's recursive-descent, Pratt-expression
// parser: INDENT/DEDENT-delimited blocks, function declarations, control
// flow, and interpolated strings.
package parser

import (
	"github.com/sn-lang/snc/internal/arena"
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/diag"
	"github.com/sn-lang/snc/internal/lexer"
	"github.com/sn-lang/snc/internal/token"
)

// Precedence levels, lowest to highest, tightest binding last.
const (
	LOWEST int = iota
	ASSIGNMENT
	LOR
	LAND
	EQUALITY
	SUM
	PRODUCT
	PREFIX
	POSTFIX
)

var precedences = map[token.Kind]int{
	token.ASSIGN:      ASSIGNMENT,
	token.OR:          LOR,
	token.AND:         LAND,
	token.EQ:          EQUALITY,
	token.NOT_EQ:      EQUALITY,
	token.LT:          EQUALITY,
	token.LT_EQ:       EQUALITY,
	token.GT:          EQUALITY,
	token.GT_EQ:       EQUALITY,
	token.PLUS:        SUM,
	token.MINUS:       SUM,
	token.STAR:        PRODUCT,
	token.SLASH:       PRODUCT,
	token.PERCENT:     PRODUCT,
	token.LPAREN:      POSTFIX,
	token.LBRACKET:    POSTFIX,
	token.PLUS_PLUS:   POSTFIX,
	token.MINUS_MINUS: POSTFIX,
}

type prefixParseFn func() ast.Expr
type infixParseFn func(ast.Expr) ast.Expr

// Parser consumes a token stream and builds a Module. It keeps exactly
// one token of lookahead (cur, peek).
type Parser struct {
	lex      *lexer.Lexer
	filename string
	bag      *diag.Bag
	arena    *arena.Arena

	cur  token.Token
	peek token.Token

	panicking bool

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New creates a Parser reading from lex, reporting diagnostics into bag
// and copying owned bytes (identifiers, interpolation sub-lexemes)
// through a.
func New(lex *lexer.Lexer, filename string, bag *diag.Bag, a *arena.Arena) *Parser {
	p := &Parser{lex: lex, filename: filename, bag: bag, arena: a}

	p.prefixFns = map[token.Kind]prefixParseFn{
		token.INT:           p.parseIntLiteral,
		token.LONG:          p.parseLongLiteral,
		token.DOUBLE:        p.parseDoubleLiteral,
		token.CHAR:          p.parseCharLiteral,
		token.STRING:        p.parseStringLiteral,
		token.INTERP_STRING: p.parseInterpolatedString,
		token.TRUE:          p.parseBoolLiteral,
		token.FALSE:         p.parseBoolLiteral,
		token.NIL:           p.parseNilLiteral,
		token.IDENT:         p.parseIdentifier,
		token.LPAREN:        p.parseGrouping,
		token.LBRACKET:      p.parseArrayLiteral,
		token.MINUS:         p.parseUnary,
		token.BANG:          p.parseUnary,
	}
	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS:        p.parseBinary,
		token.MINUS:       p.parseBinary,
		token.STAR:        p.parseBinary,
		token.SLASH:       p.parseBinary,
		token.PERCENT:     p.parseBinary,
		token.EQ:          p.parseBinary,
		token.NOT_EQ:      p.parseBinary,
		token.LT:          p.parseBinary,
		token.LT_EQ:       p.parseBinary,
		token.GT:          p.parseBinary,
		token.GT_EQ:       p.parseBinary,
		token.AND:         p.parseBinary,
		token.OR:          p.parseBinary,
		token.ASSIGN:      p.parseAssign,
		token.LPAREN:      p.parseCall,
		token.LBRACKET:    p.parseIndex,
		token.PLUS_PLUS:   p.parsePostfix,
		token.MINUS_MINUS: p.parsePostfix,
	}

	p.cur = p.fetch()
	p.peek = p.fetch()
	return p
}

// fetch pulls the next non-ILLEGAL token, folding lexical errors into the
// shared diagnostic bag so parsing can keep going and surface further
// problems in the same run.
func (p *Parser) fetch() token.Token {
	for {
		t := p.lex.NextToken()
		if t.Kind == token.ILLEGAL {
			p.bag.Add(diag.Lexical, t.Pos, "%s", t.Lexeme)
			continue
		}
		return t
	}
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.fetch()
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) errorf(pos token.Position, format string, args ...interface{}) {
	p.panicking = true
	p.bag.Add(diag.Syntactic, pos, format, args...)
}

// expect consumes cur if it has the given kind, or records a diagnostic
// and leaves cur in place so synchronize() can skip forward.
func (p *Parser) expect(kind token.Kind) token.Token {
	if p.cur.Kind != kind {
		p.errorf(p.cur.Pos, "expected %s, found %s", kind, p.cur.Kind)
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

// expectStatementEnd consumes an optional ";" and the NEWLINE that closes
// a logical line.
func (p *Parser) expectStatementEnd() {
	if p.cur.Kind == token.SEMICOLON {
		p.advance()
	}
	if p.cur.Kind == token.NEWLINE {
		p.advance()
		return
	}
	if p.cur.Kind == token.EOF || p.cur.Kind == token.DEDENT {
		return
	}
	p.errorf(p.cur.Pos, "expected end of statement, found %s", p.cur.Kind)
}

// synchronize performs panic-mode recovery after a syntax error: skip to
// the next NEWLINE or a statement-introducing keyword.
func (p *Parser) synchronize() {
	for p.cur.Kind != token.EOF {
		if p.cur.Kind == token.NEWLINE {
			p.advance()
			break
		}
		switch p.cur.Kind {
		case token.FN, token.VAR, token.IF, token.WHILE, token.FOR, token.RETURN, token.IMPORT:
			p.panicking = false
			return
		}
		p.advance()
	}
	p.panicking = false
}

// ParseModule parses an entire file into a Module, repeatedly parsing
// top-level statements until end-of-input, recovering from errors to
// maximize diagnostic yield.
func (p *Parser) ParseModule() *ast.Module {
	mod := &ast.Module{Filename: p.filename}

	for p.cur.Kind != token.EOF {
		if p.cur.Kind == token.NEWLINE {
			p.advance()
			continue
		}
		stmt := p.parseTopLevel()
		if stmt != nil && !p.panicking {
			mod.Statements = append(mod.Statements, stmt)
		}
		if p.panicking {
			p.synchronize()
		}
	}
	return mod
}

func (p *Parser) parseTopLevel() ast.Stmt {
	switch p.cur.Kind {
	case token.IMPORT:
		return p.parseImport()
	case token.FN:
		return p.parseFunction()
	default:
		return p.parseStatement()
	}
}
