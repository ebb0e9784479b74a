package codegen

import (
	"github.com/sn-lang/snc/internal/ast"
)

// maxCallArgs matches the checker's limit (internal/checker/call.go); a
// call that slipped past a checker bug would otherwise overrun paramRegs.
const maxCallArgs = 6

func (g *Generator) genCall(x *ast.Call) {
	callee, ok := x.Callee.(*ast.Variable)
	if !ok {
		g.unsupported(x.Tok().Pos, "unsupported call target")
		g.emit("    xor rax, rax")
		return
	}

	switch callee.Name {
	case "print":
		g.genPrintCall(x)
		return
	case "to_string":
		// Always flagged unsupported by the checker; emit a harmless
		// placeholder so codegen can still walk the rest of the tree.
		g.emit("    xor rax, rax")
		return
	}

	if len(x.Args) > maxCallArgs {
		g.unsupported(x.Tok().Pos, "call to %q has more than %d arguments", callee.Name, maxCallArgs)
		g.emit("    xor rax, rax")
		return
	}

	for i := len(x.Args) - 1; i >= 0; i-- {
		g.genExpr(x.Args[i])
		g.emit("    mov %s, rax", paramRegs[i])
	}
	g.emitCall(callee.Name, false)
}
