// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the checker and code generator.
package ast

import (
	"github.com/sn-lang/snc/internal/token"
	"github.com/sn-lang/snc/internal/types"
)

// Node is implemented by every AST node.
type Node interface {
	// Tok returns the token this node is anchored to, for diagnostics.
	Tok() token.Token
	String() string
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
	// ExprType returns the type the checker assigned, or nil before
	// type-checking has run.
	ExprType() *types.Type
	setExprType(*types.Type)
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	stmtNode()
}

// exprBase factors the common Token/ExprType bookkeeping every Expr
// implementation needs.
type exprBase struct {
	Token    token.Token
	exprType *types.Type
}

func (e *exprBase) Tok() token.Token          { return e.Token }
func (e *exprBase) exprNode()                 {}
func (e *exprBase) ExprType() *types.Type     { return e.exprType }
func (e *exprBase) setExprType(t *types.Type) { e.exprType = t }

// SetExprType is the checker's single entry point for recording an
// expression's type. It must be called exactly once per expression.
func SetExprType(e Expr, t *types.Type) { e.setExprType(t) }

// stmtBase factors the common Token bookkeeping every Stmt needs.
type stmtBase struct {
	Token token.Token
}

func (s *stmtBase) Tok() token.Token { return s.Token }
func (s *stmtBase) stmtNode()        {}

// TypeExpr is the parsed form of a type annotation: a type keyword, or
// "T[]" for an array of T.
type TypeExpr struct {
	Name    string // "int", "long", "double", "char", "str", "bool", "void"
	IsArray bool
	Token   token.Token
}

func (t *TypeExpr) String() string {
	if t.IsArray {
		return t.Name + "[]"
	}
	return t.Name
}

// Module is the parsed form of one source file: an ordered sequence of
// top-level statements.
type Module struct {
	Filename   string
	Statements []Stmt
}
