package codegen

// genEntry renders the process entry point used whenever the module has
// bare top-level statements. In that case the user's own "fn main" (if
// any) is emitted under the label "sn_main_impl" instead of "main", and
// this synthesizes the real "main" that runs the implicit top-level init
// routine first, then hands off to it. Each routine keeps its own
// independently-sized frame, so there is no offset collision between
// top-level locals and the user main's locals.
func (g *Generator) genEntry(hasUserMain bool) {
	g.emit("main:")
	g.emit("    push rbp")
	g.emit("    mov rbp, rsp")
	g.emit("    sub rsp, 16")
	g.emit("    call __top_level_init")
	if hasUserMain {
		g.emit("    call sn_main_impl")
	}
	g.emit("    xor rax, rax")
	g.emit("    mov rsp, rbp")
	g.emit("    pop rbp")
	g.emit("    ret")
	g.emit("")
}
