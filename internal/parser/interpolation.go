package parser

import (
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/lexer"
	"github.com/sn-lang/snc/internal/token"
)

// parseInterpolatedString decodes the raw "...{expr}..." content the lexer
// preserved undecoded, alternating literal fragments with expressions
// parsed by a fresh sub-lexer/sub-parser pair. The sub-parser shares this
// parser's arena and diagnostic bag, so an error inside "{...}" is folded
// into the same compilation's diagnostics. The sub-lexer counts lines from
// 1 of the embedded text, so positions inside "{...}" are not the line of
// the enclosing string.
func (p *Parser) parseInterpolatedString() ast.Expr {
	tok := p.cur
	p.advance()

	content := tok.Literal.Str
	var parts []ast.Expr

	i := 0
	for i < len(content) {
		start := i
		for i < len(content) && content[i] != '{' {
			i++
		}
		if i > start {
			parts = append(parts, p.interpFragment(tok, content[start:i]))
		}
		if i >= len(content) {
			break
		}

		i++ // consume "{"
		exprStart := i
		depth := 1
		for i < len(content) && depth > 0 {
			switch content[i] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				break
			}
			i++
		}
		if depth != 0 {
			p.errorf(tok.Pos, "Unclosed '{' in interpolated string")
			break
		}

		exprSrc := content[exprStart:i]
		i++ // consume "}"

		subLex := lexer.New(exprSrc, p.filename, p.arena)
		subParser := New(subLex, p.filename, p.bag, p.arena)
		if expr := subParser.parseExpression(LOWEST); expr != nil {
			parts = append(parts, expr)
		}
	}

	if len(parts) == 0 || !isInterpFragment(parts[0]) {
		parts = append([]ast.Expr{p.interpFragment(tok, "")}, parts...)
	}
	if !isInterpFragment(parts[len(parts)-1]) {
		parts = append(parts, p.interpFragment(tok, ""))
	}

	interp := &ast.Interpolated{Parts: parts}
	interp.Token = tok
	return interp
}

func (p *Parser) interpFragment(tok token.Token, s string) *ast.Literal {
	lit := &ast.Literal{Kind: ast.LitString, Str: s, IsInterpolated: true}
	lit.Token = tok
	return lit
}

func isInterpFragment(e ast.Expr) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.IsInterpolated
}
