package codegen

import (
	"github.com/sn-lang/snc/internal/ast"
)

// paramRegs is the System-V integer/pointer argument register order.
var paramRegs = [...]string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// genFunction renders one function's prologue, spilled parameters, body,
// and epilogue under the given label (normally fn.Name; see genEntry for
// when it differs).
func (g *Generator) genFunction(fn *ast.Function, frameSize int, label string) {
	isMain := label == "main"
	g.returnLbl = fn.Name + "_return"
	g.voidReturn = fn.ReturnType.Name == "void"

	g.emit("%s:", label)
	g.emit("    push rbp")
	g.emit("    mov rbp, rsp")
	g.emit("    sub rsp, %d", frameSize)

	syms := g.paramSymbols[fn]
	for i := range fn.Params {
		if i >= len(paramRegs) || i >= len(syms) {
			break
		}
		g.emit("    mov [rbp-%d], %s", syms[i].Offset, paramRegs[i])
	}

	g.genBlock(fn.Body)

	g.emit("%s:", g.returnLbl)
	if isMain {
		g.emit("    xor rax, rax")
	}
	g.emit("    mov rsp, rbp")
	g.emit("    pop rbp")
	g.emit("    ret")
	g.emit("")
}

// genTopLevelInit renders the implicit routine that runs bare top-level
// variable declarations and expression statements, since the grammar
// admits them at module scope but the calling convention has no frame of
// its own for "module code". The main synthesized by genEntry (see
// entry.go) calls this routine first, then calls the user's own main
// function when the module defines one.
func (g *Generator) genTopLevelInit(stmts []ast.Stmt, frameSize int) {
	g.returnLbl = "__top_level_init_return"
	g.voidReturn = true

	g.emit("__top_level_init:")
	g.emit("    push rbp")
	g.emit("    mov rbp, rsp")
	g.emit("    sub rsp, %d", frameSize)

	for _, s := range stmts {
		g.genStmt(s)
	}

	g.emit("%s:", g.returnLbl)
	g.emit("    mov rsp, rbp")
	g.emit("    pop rbp")
	g.emit("    ret")
	g.emit("")
}
