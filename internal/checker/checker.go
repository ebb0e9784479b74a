// Package checker implements Sn's semantic pass: it resolves every name
// through a lexical symbol table, assigns a Type to every expression, and
// validates statements against the enclosing function's declared return
// type. Diagnostics accumulate into a shared diag.Bag; the checker keeps
// going after a failure at one site to maximize the diagnostics a single
// compilation surfaces.
package checker

import (
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/diag"
	"github.com/sn-lang/snc/internal/symtab"
	"github.com/sn-lang/snc/internal/token"
	"github.com/sn-lang/snc/internal/types"
)

// Result is everything the code generator needs from a checked module: the
// resolved function set, frame sizes per activation, and the symbol each
// name-bearing expression resolved to.
type Result struct {
	Module *ast.Module

	// Functions holds every top-level function declaration, in source
	// order.
	Functions []*ast.Function

	// TopLevel holds non-function, non-import top-level statements (bare
	// variable declarations and expression statements), in source order.
	// The code generator folds these into an implicit init routine run
	// before the user's own main, since the grammar admits them at module
	// scope but the calling convention has no frame for "module code".
	TopLevel []ast.Stmt

	// FrameSizes maps each function to its prologue's reserved stack
	// space, per the offset policy's max_offset+8-rounded-to-16 rule.
	FrameSizes map[*ast.Function]int

	// TopFrameSize is the reserved frame size for TopLevel's implicit
	// init routine.
	TopFrameSize int

	// Symbols resolves every Variable and Assign expression, and every
	// VarDecl statement, to the Symbol it names. An Increment/Decrement
	// resolves through its Variable operand.
	Symbols map[ast.Node]*symtab.Symbol

	// ParamSymbols holds each function's parameter symbols, parallel to
	// its ast.Function.Params, since a bare Param has no Node identity of
	// its own to key Symbols by.
	ParamSymbols map[*ast.Function][]*symtab.Symbol
}

// Checker walks one Module and builds a Result, reporting diagnostics into
// bag.
type Checker struct {
	bag *diag.Bag

	global  *symtab.Scope
	funcSig map[string]*types.Type
	funcDef map[string]*ast.Function

	scope      *symtab.Scope
	frame      *symtab.FrameBuilder
	returnType *types.Type // nil outside any function body

	result *Result
}

// Check type-checks mod, reporting diagnostics into bag, and returns the
// information the code generator needs. The caller must check bag.HadError
// before trusting or using the Result for code generation.
func Check(mod *ast.Module, bag *diag.Bag) *Result {
	c := &Checker{
		bag:     bag,
		global:  symtab.NewScope(),
		funcSig: make(map[string]*types.Type),
		funcDef: make(map[string]*ast.Function),
	}
	c.result = &Result{
		Module:       mod,
		FrameSizes:   make(map[*ast.Function]int),
		Symbols:      make(map[ast.Node]*symtab.Symbol),
		ParamSymbols: make(map[*ast.Function][]*symtab.Symbol),
	}
	c.registerBuiltins()

	c.declareTopLevel(mod)
	c.checkTopLevel(mod)

	return c.result
}

// registerBuiltins records the signatures of print and to_string so that
// calls to them resolve, even though neither has a user-visible
// declaration or (for to_string) a codegen body.
func (c *Checker) registerBuiltins() {
	c.funcSig["print"] = types.Function(types.Void, types.Void)
	c.funcSig["to_string"] = types.Function(types.String, types.String)
}

// declareTopLevel is the first pass: it registers every function's
// signature before any body is checked, so mutual and forward recursive
// calls (including self-recursion) resolve.
func (c *Checker) declareTopLevel(mod *ast.Module) {
	for _, stmt := range mod.Statements {
		fn, ok := stmt.(*ast.Function)
		if !ok {
			continue
		}
		if _, exists := c.funcSig[fn.Name]; exists {
			c.error(fn.Tok().Pos, "function %q is already declared", fn.Name)
			continue
		}
		ret := c.resolveTypeExpr(fn.ReturnType)
		params := make([]*types.Type, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = c.resolveTypeExpr(p.Type)
		}
		c.funcSig[fn.Name] = types.Function(ret, params...)
		c.funcDef[fn.Name] = fn
	}
}

// checkTopLevel is the second pass: it checks every function body and
// every bare top-level statement in source order.
func (c *Checker) checkTopLevel(mod *ast.Module) {
	top := symtab.NewFrameBuilder()

	for _, stmt := range mod.Statements {
		switch s := stmt.(type) {
		case *ast.Import:
			// Accepted and semantically a no-op.
		case *ast.Function:
			c.checkFunction(s)
			c.result.Functions = append(c.result.Functions, s)
		default:
			c.scope = c.global
			c.frame = top
			c.returnType = nil
			c.checkStmt(s)
			c.result.TopLevel = append(c.result.TopLevel, s)
		}
	}
	c.result.TopFrameSize = top.FrameSize()
}

func (c *Checker) checkFunction(fn *ast.Function) {
	sig := c.funcSig[fn.Name]

	if len(fn.Params) > maxCallArgs {
		c.unsupported(fn.Tok().Pos, "function %q declares more than %d parameters", fn.Name, maxCallArgs)
	}

	c.scope = c.global.Push()
	c.frame = symtab.NewFrameBuilder()
	c.returnType = sig.Return

	params := make([]*symtab.Symbol, len(fn.Params))
	for i, p := range fn.Params {
		off := c.frame.AddParam()
		sym := &symtab.Symbol{Name: p.Name, Type: sig.Params[i], Kind: symtab.Param, Offset: off}
		c.scope.Add(sym)
		params[i] = sym
	}
	c.result.ParamSymbols[fn] = params

	c.checkBlockIn(fn.Body)

	c.result.FrameSizes[fn] = c.frame.FrameSize()
	c.scope = nil
	c.frame = nil
	c.returnType = nil
}

// checkBlockIn checks block's statements in the current scope, without
// pushing a new one (used for a function's outermost body, where the
// parameter scope already serves that role).
func (c *Checker) checkBlockIn(block *ast.Block) {
	for _, stmt := range block.Statements {
		c.checkStmt(stmt)
	}
}

// checkBlock pushes a fresh scope before checking block, for a nested
// body (if/while/for) that may shadow outer names.
func (c *Checker) checkBlock(block *ast.Block) {
	c.scope = c.scope.Push()
	c.checkBlockIn(block)
	c.scope = c.scope.Pop()
}

func (c *Checker) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(s)
	case *ast.ExprStmt:
		c.checkExpr(s.X)
	case *ast.Return:
		c.checkReturn(s)
	case *ast.If:
		c.checkIf(s)
	case *ast.While:
		c.checkWhile(s)
	case *ast.For:
		c.checkFor(s)
	case *ast.Block:
		c.checkBlock(s)
	}
}

func (c *Checker) checkVarDecl(s *ast.VarDecl) {
	declType := c.resolveTypeExpr(s.Type)

	if s.Initializer != nil {
		initType := c.checkExpr(s.Initializer)
		if initType != nil && declType != nil && !types.Equal(initType, declType) {
			c.error(s.Tok().Pos, "cannot initialize %q of type %s with a value of type %s", s.Name, declType, initType)
		}
	}

	if _, exists := c.scope.LookupLocal(s.Name); exists {
		c.error(s.Tok().Pos, "%q is already declared in this scope", s.Name)
	}

	off := c.frame.AddLocal()
	sym := &symtab.Symbol{Name: s.Name, Type: declType, Kind: symtab.Local, Offset: off}
	c.scope.Add(sym)
	c.result.Symbols[s] = sym
}

func (c *Checker) checkReturn(s *ast.Return) {
	if c.returnType == nil {
		c.error(s.Tok().Pos, "return statement outside of a function")
	}

	if s.Value == nil {
		if c.returnType != nil && c.returnType.Kind != types.KindVoid {
			c.error(s.Tok().Pos, "missing return value in function returning %s", c.returnType)
		}
		return
	}

	valType := c.checkExpr(s.Value)
	if valType != nil && c.returnType != nil && !types.Equal(valType, c.returnType) {
		c.error(s.Tok().Pos, "return value has type %s, expected %s", valType, c.returnType)
	}
}

func (c *Checker) checkIf(s *ast.If) {
	c.checkCondition(s.Condition)
	c.checkBlock(s.Then)
	if s.Else != nil {
		c.checkBlock(s.Else)
	}
}

func (c *Checker) checkWhile(s *ast.While) {
	c.checkCondition(s.Condition)
	c.checkBlock(s.Body)
}

func (c *Checker) checkFor(s *ast.For) {
	c.scope = c.scope.Push()
	if s.Init != nil {
		c.checkStmt(s.Init)
	}
	if s.Condition != nil {
		c.checkCondition(s.Condition)
	}
	if s.Increment != nil {
		c.checkExpr(s.Increment)
	}
	c.checkBlockIn(s.Body)
	c.scope = c.scope.Pop()
}

func (c *Checker) checkCondition(cond ast.Expr) {
	t := c.checkExpr(cond)
	if t != nil && t.Kind != types.KindBool {
		c.error(cond.Tok().Pos, "condition must be bool, found %s", t)
	}
}

// resolveTypeExpr maps a parsed type annotation to its Type, reporting an
// unrecognized type keyword as a semantic error.
func (c *Checker) resolveTypeExpr(te *ast.TypeExpr) *types.Type {
	base, ok := types.FromKeyword(te.Name)
	if !ok {
		c.error(te.Token.Pos, "unknown type %q", te.Name)
		base = types.Void
	}
	if te.IsArray {
		return types.Array(base)
	}
	return base
}

func (c *Checker) error(pos token.Position, format string, args ...interface{}) {
	c.bag.Add(diag.Semantic, pos, format, args...)
}

func (c *Checker) unsupported(pos token.Position, format string, args ...interface{}) {
	c.bag.Add(diag.Unsupported, pos, format, args...)
}
