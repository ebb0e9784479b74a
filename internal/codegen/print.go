package codegen

import (
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/token"
	"github.com/sn-lang/snc/internal/types"
)

// genPrintCall renders print(arg): an interpolated-string argument is
// walked fragment by fragment without ever materializing a single
// concatenated string, everything else is evaluated once and dispatched
// by its resolved type.
func (g *Generator) genPrintCall(x *ast.Call) {
	if len(x.Args) != 1 {
		g.unsupported(x.Tok().Pos, "print takes exactly one argument")
		return
	}

	if interp, ok := x.Args[0].(*ast.Interpolated); ok {
		g.genInterpolatedPrint(interp)
		return
	}

	arg := x.Args[0]
	g.genExpr(arg)
	g.genPrintDispatch(arg.ExprType(), arg.Tok().Pos)
}

func (g *Generator) genInterpolatedPrint(x *ast.Interpolated) {
	for _, part := range x.Parts {
		if lit, ok := part.(*ast.Literal); ok && lit.IsInterpolated {
			if lit.Str == "" {
				continue
			}
			label := g.strs.intern(lit.Str)
			g.emit("    lea rax, [rel %s]", label)
			g.printfReg("fmt_string")
			continue
		}
		g.genExpr(part)
		g.genPrintDispatch(part.ExprType(), part.Tok().Pos)
	}
}

func (g *Generator) genPrintDispatch(t *types.Type, pos token.Position) {
	if t == nil {
		g.internal(pos, "print argument has no resolved type")
		return
	}
	switch t.Kind {
	case types.KindInt, types.KindLong:
		g.printfReg("fmt_long")
	case types.KindChar:
		g.printfReg("fmt_char")
	case types.KindString:
		g.printfReg("fmt_string")
	case types.KindDouble:
		g.printfDouble()
	case types.KindBool:
		g.printfBool()
	default:
		g.unsupported(pos, "print is not supported for type %s", t)
	}
}

// printfReg calls printf(fmtLabel, rax) — rax holds the integer,
// pointer, or char vararg.
func (g *Generator) printfReg(fmtLabel string) {
	g.emit("    mov rsi, rax")
	g.emit("    lea rdi, [rel %s]", fmtLabel)
	g.emit("    xor eax, eax")
	g.emitCall("printf", true)
}

// printfDouble calls printf(fmt_double, xmm0) — rax holds the double's
// raw bit pattern, which System-V varargs requires moved into xmm0
// ahead of the call, with rax set to the vector-register count used.
func (g *Generator) printfDouble() {
	g.emit("    movq xmm0, rax")
	g.emit("    lea rdi, [rel fmt_double]")
	g.emit("    mov rax, 1")
	g.emitCall("printf", true)
}

// printfBool prints "true" or "false" depending on rax, via fmt_string.
func (g *Generator) printfBool() {
	trueLbl := g.nextLabel("bool_true")
	endLbl := g.nextLabel("bool_end")
	g.emit("    test rax, rax")
	g.emit("    jnz %s", trueLbl)
	g.emit("    lea rsi, [rel false_str]")
	g.emit("    jmp %s", endLbl)
	g.emit("%s:", trueLbl)
	g.emit("    lea rsi, [rel true_str]")
	g.emit("%s:", endLbl)
	g.emit("    lea rdi, [rel fmt_string]")
	g.emit("    xor eax, eax")
	g.emitCall("printf", true)
}
