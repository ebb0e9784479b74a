package codegen

// emitCall renders a call to target, self-aligning rsp to 16 bytes first
// via a saved r10 scratch offset so the call sequence is correct
// regardless of how many scratch values are currently live on the
// stack — the generator never tracks push/pop parity by hand.
func (g *Generator) emitCall(target string, isExtern bool) {
	g.emit("    mov r10, rsp")
	g.emit("    and r10, 15")
	g.emit("    sub rsp, r10")
	if isExtern {
		g.emit("    call %s wrt ..plt", target)
	} else {
		g.emit("    call %s", target)
	}
	g.emit("    add rsp, r10")
}

// genStringConcat implements binary "+" on two strings: strlen both
// operands, malloc left+right+1 bytes, strcpy then strcat. Entry: rbx
// holds the left pointer, rcx the right pointer (genBinary's usual
// operand registers). r12-r15 are used as scratch across the libc
// calls — none of Sn's generated functions keep long-lived values in
// them, so nothing relies on them surviving a call.
func (g *Generator) genStringConcat() {
	g.emit("    mov r12, rbx")
	g.emit("    mov r13, rcx")

	g.emit("    mov rdi, r12")
	g.emitCall("strlen", true)
	g.emit("    mov r14, rax")

	g.emit("    mov rdi, r13")
	g.emitCall("strlen", true)

	g.emit("    lea rdi, [r14+rax+1]")
	g.emitCall("malloc", true)
	g.emit("    mov r15, rax")

	g.emit("    mov rdi, r15")
	g.emit("    mov rsi, r12")
	g.emitCall("strcpy", true)

	g.emit("    mov rdi, r15")
	g.emit("    mov rsi, r13")
	g.emitCall("strcat", true)

	g.emit("    mov rax, r15")
}
