package ast

import (
	"bytes"
	"strings"

	"github.com/sn-lang/snc/internal/token"
)

// Binary represents a two-operand operator expression: left Op right.
type Binary struct {
	exprBase
	Left  Expr
	Op    token.Kind
	Right Expr
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// Unary represents a prefix operator expression: Op operand.
type Unary struct {
	exprBase
	Op      token.Kind
	Operand Expr
}

func (u *Unary) String() string {
	return "(" + u.Op.String() + u.Operand.String() + ")"
}

// LiteralKind tags which payload field of Literal is meaningful.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitLong
	LitDouble
	LitChar
	LitString
	LitBool
	LitNil
)

// Literal is a constant value appearing directly in source: a number,
// character, string, boolean, or nil.
type Literal struct {
	exprBase
	Kind          LiteralKind
	Int           int64
	Float         float64
	Char          byte
	Str           string
	Bool          bool
	IsInterpolated bool // true only for the raw fragments of an Interpolated string
}

func (l *Literal) String() string {
	switch l.Kind {
	case LitString:
		return `"` + l.Str + `"`
	case LitChar:
		return "'" + string(rune(l.Char)) + "'"
	case LitBool:
		if l.Bool {
			return "true"
		}
		return "false"
	case LitNil:
		return "nil"
	default:
		return l.Token.Lexeme
	}
}

// Variable is a reference to a named value: a local, parameter, or
// function name used as a call target.
type Variable struct {
	exprBase
	Name string
}

func (v *Variable) String() string { return v.Name }

// Assign represents `name = value`. Only a bare variable target is
// grammatical; anything else is a parse error.
type Assign struct {
	exprBase
	Name  string
	Value Expr
}

func (a *Assign) String() string { return a.Name + " = " + a.Value.String() }

// Call represents `callee(args...)`.
type Call struct {
	exprBase
	Callee Expr
	Args   []Expr
}

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Array represents an array literal `[e1, e2, ...]`. Grammar-only: the
// code generator rejects it (see internal/codegen).
type Array struct {
	exprBase
	Elements []Expr
}

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ArrayAccess represents `array[index]`. Grammar-only, same as Array.
type ArrayAccess struct {
	exprBase
	Array Expr
	Index Expr
}

func (a *ArrayAccess) String() string {
	return a.Array.String() + "[" + a.Index.String() + "]"
}

// Increment represents postfix `operand++`.
type Increment struct {
	exprBase
	Operand Expr
}

func (i *Increment) String() string { return i.Operand.String() + "++" }

// Decrement represents postfix `operand--`.
type Decrement struct {
	exprBase
	Operand Expr
}

func (d *Decrement) String() string { return d.Operand.String() + "--" }

// Interpolated represents a `$"...{expr}..."` string. Parts holds
// string-literal fragments (as *Literal with IsInterpolated set) and
// embedded expressions in source order; it always starts and ends with a
// fragment (possibly empty). Two adjacent embedded expressions have no
// fragment between them.
type Interpolated struct {
	exprBase
	Parts []Expr
}

func (i *Interpolated) String() string {
	var out bytes.Buffer
	out.WriteString(`$"`)
	for _, p := range i.Parts {
		if lit, ok := p.(*Literal); ok && lit.IsInterpolated {
			out.WriteString(lit.Str)
			continue
		}
		out.WriteString("{" + p.String() + "}")
	}
	out.WriteString(`"`)
	return out.String()
}
