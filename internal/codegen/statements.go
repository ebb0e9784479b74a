package codegen

import "github.com/sn-lang/snc/internal/ast"

func (g *Generator) genBlock(b *ast.Block) {
	for _, s := range b.Statements {
		g.genStmt(s)
	}
}

func (g *Generator) genStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.VarDecl:
		g.genVarDecl(st)
	case *ast.ExprStmt:
		g.genExpr(st.X)
	case *ast.Return:
		g.genReturn(st)
	case *ast.If:
		g.genIf(st)
	case *ast.While:
		g.genWhile(st)
	case *ast.For:
		g.genFor(st)
	case *ast.Block:
		g.genBlock(st)
	}
}

func (g *Generator) genVarDecl(s *ast.VarDecl) {
	if s.Initializer != nil {
		g.genExpr(s.Initializer)
	} else {
		g.emit("    xor rax, rax")
	}

	sym := g.symbolOf(s)
	if sym == nil {
		g.internal(s.Tok().Pos, "no frame slot assigned to %q", s.Name)
		return
	}
	g.emit("    mov [rbp-%d], rax", sym.Offset)
}

func (g *Generator) genReturn(s *ast.Return) {
	if s.Value != nil {
		g.genExpr(s.Value)
	} else {
		g.emit("    xor rax, rax")
	}
	g.emit("    jmp %s", g.returnLbl)
}

func (g *Generator) genIf(s *ast.If) {
	elseLbl := g.nextLabel("else")
	endLbl := g.nextLabel("endif")

	g.genExpr(s.Condition)
	g.emit("    test rax, rax")
	g.emit("    jz %s", elseLbl)
	g.genBlock(s.Then)
	g.emit("    jmp %s", endLbl)
	g.emit("%s:", elseLbl)
	if s.Else != nil {
		g.genBlock(s.Else)
	}
	g.emit("%s:", endLbl)
}

func (g *Generator) genWhile(s *ast.While) {
	startLbl := g.nextLabel("while_start")
	endLbl := g.nextLabel("while_end")

	g.emit("%s:", startLbl)
	g.genExpr(s.Condition)
	g.emit("    test rax, rax")
	g.emit("    jz %s", endLbl)
	g.genBlock(s.Body)
	g.emit("    jmp %s", startLbl)
	g.emit("%s:", endLbl)
}

func (g *Generator) genFor(s *ast.For) {
	startLbl := g.nextLabel("for_start")
	endLbl := g.nextLabel("for_end")

	if s.Init != nil {
		g.genStmt(s.Init)
	}
	g.emit("%s:", startLbl)
	if s.Condition != nil {
		g.genExpr(s.Condition)
		g.emit("    test rax, rax")
		g.emit("    jz %s", endLbl)
	}
	g.genBlock(s.Body)
	if s.Increment != nil {
		g.genExpr(s.Increment)
	}
	g.emit("    jmp %s", startLbl)
	g.emit("%s:", endLbl)
}
