package checker

import (
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/token"
	"github.com/sn-lang/snc/internal/types"
)

// checkExpr assigns e's Type and returns it. It returns nil when e's type
// cannot be determined (an undefined name or function, an unsupported
// call target, arithmetic operands that fail the rules), which callers use
// to suppress cascading mismatch diagnostics one level up without stopping
// the walk. Where the result type is fixed despite an error at e's own
// site (comparisons, and/or, assignment, unary, increment/decrement,
// interpolation, to_string), that type is still returned.
func (c *Checker) checkExpr(e ast.Expr) *types.Type {
	switch x := e.(type) {
	case *ast.Literal:
		return c.checkLiteral(x)
	case *ast.Variable:
		return c.checkVariable(x)
	case *ast.Assign:
		return c.checkAssign(x)
	case *ast.Binary:
		return c.checkBinary(x)
	case *ast.Unary:
		return c.checkUnary(x)
	case *ast.Increment:
		return c.checkIncDec(x, x.Operand)
	case *ast.Decrement:
		return c.checkIncDec(x, x.Operand)
	case *ast.Call:
		return c.checkCall(x)
	case *ast.Array:
		return c.checkArray(x)
	case *ast.ArrayAccess:
		return c.checkArrayAccess(x)
	case *ast.Interpolated:
		return c.checkInterpolated(x)
	default:
		return nil
	}
}

func (c *Checker) checkLiteral(x *ast.Literal) *types.Type {
	var t *types.Type
	switch x.Kind {
	case ast.LitInt:
		t = types.Int
	case ast.LitLong:
		t = types.Long
	case ast.LitDouble:
		t = types.Double
	case ast.LitChar:
		t = types.Char
	case ast.LitString:
		t = types.String
	case ast.LitBool:
		t = types.Bool
	case ast.LitNil:
		t = types.Nil
	}
	ast.SetExprType(x, t)
	return t
}

func (c *Checker) checkVariable(x *ast.Variable) *types.Type {
	sym, ok := c.scope.Lookup(x.Name)
	if !ok {
		c.error(x.Tok().Pos, "undefined variable %q", x.Name)
		ast.SetExprType(x, nil)
		return nil
	}
	c.result.Symbols[x] = sym
	ast.SetExprType(x, sym.Type)
	return sym.Type
}

func (c *Checker) checkAssign(x *ast.Assign) *types.Type {
	valType := c.checkExpr(x.Value)

	sym, ok := c.scope.Lookup(x.Name)
	if !ok {
		c.error(x.Tok().Pos, "undefined variable %q", x.Name)
		ast.SetExprType(x, nil)
		return nil
	}
	c.result.Symbols[x] = sym

	if valType != nil && !types.Equal(valType, sym.Type) {
		c.error(x.Tok().Pos, "cannot assign value of type %s to %q of type %s", valType, x.Name, sym.Type)
	}
	ast.SetExprType(x, sym.Type)
	return sym.Type
}

func (c *Checker) checkBinary(x *ast.Binary) *types.Type {
	lt := c.checkExpr(x.Left)
	rt := c.checkExpr(x.Right)

	var result *types.Type
	switch x.Op {
	case token.PLUS:
		result = c.checkAdditive(x, lt, rt)
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		result = c.checkArithmetic(x, lt, rt)
	case token.EQ, token.NOT_EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		if lt != nil && rt != nil && !types.Equal(lt, rt) {
			c.error(x.Tok().Pos, "cannot compare %s with %s", lt, rt)
		}
		result = types.Bool
	case token.AND, token.OR:
		if lt != nil && lt.Kind != types.KindBool {
			c.error(x.Left.Tok().Pos, "left operand of %q must be bool, found %s", x.Op, lt)
		}
		if rt != nil && rt.Kind != types.KindBool {
			c.error(x.Right.Tok().Pos, "right operand of %q must be bool, found %s", x.Op, rt)
		}
		result = types.Bool
	}

	ast.SetExprType(x, result)
	return result
}

// checkAdditive handles "+", which also accepts two strings as
// concatenation.
func (c *Checker) checkAdditive(x *ast.Binary, lt, rt *types.Type) *types.Type {
	if lt == nil || rt == nil {
		return nil
	}
	if lt.Kind == types.KindString && rt.Kind == types.KindString {
		return types.String
	}
	if types.IsNumeric(lt) && types.Equal(lt, rt) {
		return lt
	}
	c.error(x.Tok().Pos, "operands of '+' must both be numeric of the same type or both str, found %s and %s", lt, rt)
	return nil
}

func (c *Checker) checkArithmetic(x *ast.Binary, lt, rt *types.Type) *types.Type {
	if lt == nil || rt == nil {
		return nil
	}
	if types.IsNumeric(lt) && types.Equal(lt, rt) {
		return lt
	}
	c.error(x.Tok().Pos, "operands of %q must be numeric of the same type, found %s and %s", x.Op, lt, rt)
	return nil
}

func (c *Checker) checkUnary(x *ast.Unary) *types.Type {
	operandType := c.checkExpr(x.Operand)

	switch x.Op {
	case token.MINUS:
		if operandType != nil && !types.IsNumeric(operandType) {
			c.error(x.Tok().Pos, "operand of unary '-' must be numeric, found %s", operandType)
		}
	case token.BANG:
		if operandType != nil && operandType.Kind != types.KindBool {
			c.error(x.Tok().Pos, "operand of '!' must be bool, found %s", operandType)
		}
	}

	ast.SetExprType(x, operandType)
	return operandType
}

func (c *Checker) checkIncDec(x ast.Expr, operand ast.Expr) *types.Type {
	t := c.checkExpr(operand)
	if t != nil && !types.IsNumeric(t) {
		c.error(x.Tok().Pos, "increment/decrement requires a numeric operand, found %s", t)
	}
	ast.SetExprType(x, t)
	return t
}

func (c *Checker) checkArray(x *ast.Array) *types.Type {
	var elemType *types.Type
	for _, el := range x.Elements {
		et := c.checkExpr(el)
		if et == nil {
			continue
		}
		if elemType == nil {
			elemType = et
		} else if !types.Equal(elemType, et) {
			c.error(el.Tok().Pos, "array elements must share one type, found %s and %s", elemType, et)
		}
	}

	var arrType *types.Type
	if elemType != nil {
		arrType = types.Array(elemType)
	}
	ast.SetExprType(x, arrType)
	return arrType
}

func (c *Checker) checkArrayAccess(x *ast.ArrayAccess) *types.Type {
	arrType := c.checkExpr(x.Array)
	idxType := c.checkExpr(x.Index)

	if idxType != nil && !types.IsNumeric(idxType) {
		c.error(x.Index.Tok().Pos, "array index must be numeric, found %s", idxType)
	}

	var elemType *types.Type
	if arrType != nil {
		if arrType.Kind != types.KindArray {
			c.error(x.Array.Tok().Pos, "cannot index non-array type %s", arrType)
		} else {
			elemType = arrType.Elem
		}
	}
	ast.SetExprType(x, elemType)
	return elemType
}

func (c *Checker) checkInterpolated(x *ast.Interpolated) *types.Type {
	for _, part := range x.Parts {
		if lit, ok := part.(*ast.Literal); ok && lit.IsInterpolated {
			ast.SetExprType(lit, types.String)
			continue
		}
		pt := c.checkExpr(part)
		if pt != nil && !types.IsPrintablePrimitive(pt) {
			c.error(part.Tok().Pos, "interpolated expression has non-printable type %s", pt)
		}
	}
	ast.SetExprType(x, types.String)
	return types.String
}
