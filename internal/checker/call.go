package checker

import (
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/types"
)

const maxCallArgs = 6

// checkCall resolves and validates a call expression. Only a bare
// identifier callee is supported; anything else is reported as
// Unsupported per the error taxonomy.
func (c *Checker) checkCall(x *ast.Call) *types.Type {
	callee, ok := x.Callee.(*ast.Variable)
	if !ok {
		c.unsupported(x.Tok().Pos, "call target must be a plain function name")
		for _, a := range x.Args {
			c.checkExpr(a)
		}
		ast.SetExprType(x, nil)
		return nil
	}

	switch callee.Name {
	case "print":
		return c.checkPrintCall(x, callee)
	case "to_string":
		return c.checkToStringCall(x, callee)
	}

	sig, ok := c.funcSig[callee.Name]
	if !ok {
		c.error(x.Tok().Pos, "call to undefined function %q", callee.Name)
		ast.SetExprType(callee, nil)
		for _, a := range x.Args {
			c.checkExpr(a)
		}
		ast.SetExprType(x, nil)
		return nil
	}
	ast.SetExprType(callee, sig)

	if len(x.Args) > maxCallArgs {
		c.unsupported(x.Tok().Pos, "call to %q has more than %d arguments", callee.Name, maxCallArgs)
	}
	if len(x.Args) != len(sig.Params) {
		c.error(x.Tok().Pos, "function %q expects %d argument(s), got %d", callee.Name, len(sig.Params), len(x.Args))
	}

	for i, a := range x.Args {
		at := c.checkExpr(a)
		if at == nil || i >= len(sig.Params) {
			continue
		}
		if !types.Equal(at, sig.Params[i]) {
			c.error(a.Tok().Pos, "argument %d to %q has type %s, expected %s", i+1, callee.Name, at, sig.Params[i])
		}
	}

	ast.SetExprType(x, sig.Return)
	return sig.Return
}

// checkPrintCall special-cases the built-in print: exactly one argument of
// any printable primitive type, yielding void.
func (c *Checker) checkPrintCall(x *ast.Call, callee *ast.Variable) *types.Type {
	if len(x.Args) != 1 {
		c.error(x.Tok().Pos, "print expects exactly 1 argument, got %d", len(x.Args))
		for _, a := range x.Args {
			c.checkExpr(a)
		}
		ast.SetExprType(callee, types.Function(types.Void, types.Void))
		ast.SetExprType(x, types.Void)
		return types.Void
	}

	argType := c.checkExpr(x.Args[0])
	if argType != nil && !types.IsPrintablePrimitive(argType) {
		c.error(x.Args[0].Tok().Pos, "print argument must be a printable primitive, found %s", argType)
	}

	ast.SetExprType(callee, types.Function(types.Void, argType))
	ast.SetExprType(x, types.Void)
	return types.Void
}

// checkToStringCall matches the resolved open question: to_string is
// registered as a one-argument string->string builtin with no codegen
// body, so a call to it is reported as an unsupported builtin rather than
// silently accepted.
func (c *Checker) checkToStringCall(x *ast.Call, callee *ast.Variable) *types.Type {
	if len(x.Args) != 1 {
		c.error(x.Tok().Pos, "to_string expects exactly 1 argument, got %d", len(x.Args))
	} else if at := c.checkExpr(x.Args[0]); at != nil && !types.Equal(at, types.String) {
		c.error(x.Args[0].Tok().Pos, "to_string expects a str argument, found %s", at)
	}

	ast.SetExprType(callee, types.Function(types.String, types.String))
	c.error(x.Tok().Pos, "to_string is an unsupported builtin")
	ast.SetExprType(x, types.String)
	return types.String
}
