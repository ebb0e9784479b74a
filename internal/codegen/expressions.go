package codegen

import (
	"math"

	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/token"
	"github.com/sn-lang/snc/internal/types"
)

// genExpr evaluates e, leaving its result in rax.
func (g *Generator) genExpr(e ast.Expr) {
	switch x := e.(type) {
	case *ast.Literal:
		g.genLiteral(x)
	case *ast.Variable:
		g.genVariable(x)
	case *ast.Assign:
		g.genAssign(x)
	case *ast.Binary:
		g.genBinary(x)
	case *ast.Unary:
		g.genUnary(x)
	case *ast.Increment:
		g.genIncDec(x, x.Operand, true)
	case *ast.Decrement:
		g.genIncDec(x, x.Operand, false)
	case *ast.Call:
		g.genCall(x)
	case *ast.Array:
		g.unsupported(x.Tok().Pos, "array literals are not supported by code generation")
		g.emit("    xor rax, rax")
	case *ast.ArrayAccess:
		g.unsupported(x.Tok().Pos, "array indexing is not supported by code generation")
		g.emit("    xor rax, rax")
	case *ast.Interpolated:
		// Only meaningful as print's direct argument; see genCall/genPrintCall.
		g.unsupported(x.Tok().Pos, "an interpolated string may only be used as print's argument")
		g.emit("    xor rax, rax")
	default:
		g.internal(e.Tok().Pos, "no code generator for expression %T", e)
		g.emit("    xor rax, rax")
	}
}

func (g *Generator) genLiteral(x *ast.Literal) {
	switch x.Kind {
	case ast.LitInt, ast.LitLong:
		g.emit("    mov rax, %d", x.Int)
	case ast.LitChar:
		g.emit("    mov rax, %d", int(x.Char))
	case ast.LitBool:
		if x.Bool {
			g.emit("    mov rax, 1")
		} else {
			g.emit("    mov rax, 0")
		}
	case ast.LitNil:
		g.emit("    xor rax, rax")
	case ast.LitDouble:
		bits := math.Float64bits(x.Float)
		g.emit("    mov rax, %d", int64(bits))
	case ast.LitString:
		label := g.strs.intern(x.Str)
		g.emit("    lea rax, [rel %s]", label)
	}
}

func (g *Generator) genVariable(x *ast.Variable) {
	sym := g.symbolOf(x)
	if sym == nil {
		g.internal(x.Tok().Pos, "no frame slot assigned to %q", x.Name)
		g.emit("    xor rax, rax")
		return
	}
	g.emit("    mov rax, [rbp-%d]", sym.Offset)
}

func (g *Generator) genAssign(x *ast.Assign) {
	g.genExpr(x.Value)
	sym := g.symbolOf(x)
	if sym == nil {
		g.internal(x.Tok().Pos, "no frame slot assigned to %q", x.Name)
		return
	}
	g.emit("    mov [rbp-%d], rax", sym.Offset)
}

func (g *Generator) genIncDec(node ast.Expr, operand ast.Expr, isInc bool) {
	v, ok := operand.(*ast.Variable)
	if !ok {
		g.internal(node.Tok().Pos, "increment/decrement operand must be a variable")
		g.emit("    xor rax, rax")
		return
	}
	sym := g.symbolOf(v)
	if sym == nil {
		g.internal(node.Tok().Pos, "no frame slot assigned to %q", v.Name)
		g.emit("    xor rax, rax")
		return
	}
	g.emit("    mov rax, [rbp-%d]", sym.Offset)
	if isInc {
		g.emit("    add rax, 1")
	} else {
		g.emit("    sub rax, 1")
	}
	g.emit("    mov [rbp-%d], rax", sym.Offset)
}

func (g *Generator) genUnary(x *ast.Unary) {
	g.genExpr(x.Operand)
	switch x.Op {
	case token.MINUS:
		g.emit("    neg rax")
	case token.BANG:
		g.emit("    test rax, rax")
		g.emit("    sete al")
		g.emit("    movzx rax, al")
	}
}

var setccByOp = map[token.Kind]string{
	token.EQ:     "sete",
	token.NOT_EQ: "setne",
	token.LT:     "setl",
	token.LT_EQ:  "setle",
	token.GT:     "setg",
	token.GT_EQ:  "setge",
}

func (g *Generator) genBinary(x *ast.Binary) {
	switch x.Op {
	case token.AND:
		g.genShortCircuit(x, true)
		return
	case token.OR:
		g.genShortCircuit(x, false)
		return
	}

	g.genExpr(x.Left)
	g.emit("    mov rbx, rax")
	g.genExpr(x.Right)
	g.emit("    mov rcx, rax")

	if x.Op == token.PLUS && x.Left.ExprType() != nil && x.Left.ExprType().Kind == types.KindString {
		g.genStringConcat()
		return
	}

	switch x.Op {
	case token.PLUS:
		g.emit("    mov rax, rbx")
		g.emit("    add rax, rcx")
	case token.MINUS:
		g.emit("    mov rax, rbx")
		g.emit("    sub rax, rcx")
	case token.STAR:
		g.emit("    mov rax, rbx")
		g.emit("    imul rax, rcx")
	case token.SLASH:
		g.emit("    mov rax, rbx")
		g.emit("    cqo")
		g.emit("    idiv rcx")
	case token.PERCENT:
		g.emit("    mov rax, rbx")
		g.emit("    cqo")
		g.emit("    idiv rcx")
		g.emit("    mov rax, rdx")
	default:
		if mnemonic, ok := setccByOp[x.Op]; ok {
			g.emit("    cmp rbx, rcx")
			g.emit("    %s al", mnemonic)
			g.emit("    movzx rax, al")
		} else {
			g.internal(x.Tok().Pos, "no code generator for operator %s", x.Op)
		}
	}
}

// genShortCircuit evaluates left, and only evaluates right when its
// outcome isn't already decided: "and" skips right once left is false,
// "or" skips right once left is true. Both literal true/false and
// comparison results are always exactly 0 or 1, so leaving left's value
// in rax on the short-circuited path is already the correct bool.
func (g *Generator) genShortCircuit(x *ast.Binary, isAnd bool) {
	endLbl := g.nextLabel("shortcircuit")
	g.genExpr(x.Left)
	g.emit("    test rax, rax")
	if isAnd {
		g.emit("    jz %s", endLbl)
	} else {
		g.emit("    jnz %s", endLbl)
	}
	g.genExpr(x.Right)
	g.emit("%s:", endLbl)
}
