// Package types defines Sn's small set of value and function types, and
// the equality/printing rules the checker and code generator rely on.
package types

import "strings"

// Kind tags which variant of Type a value holds.
type Kind int

const (
	KindInt Kind = iota
	KindLong
	KindDouble
	KindChar
	KindString
	KindBool
	KindVoid
	KindNil
	KindArray
	KindFunction
)

// Type is a tagged-variant value: primitive, array-of, or function.
// Two Types are Equal iff they carry the same Kind and recursively equal
// payloads (Elem for arrays, Return+Params for functions).
type Type struct {
	Kind   Kind
	Elem   *Type   // meaningful when Kind == KindArray
	Return *Type   // meaningful when Kind == KindFunction
	Params []*Type // meaningful when Kind == KindFunction
}

// Primitive type singletons.
var (
	Int    = &Type{Kind: KindInt}
	Long   = &Type{Kind: KindLong}
	Double = &Type{Kind: KindDouble}
	Char   = &Type{Kind: KindChar}
	String = &Type{Kind: KindString}
	Bool   = &Type{Kind: KindBool}
	Void   = &Type{Kind: KindVoid}
	Nil    = &Type{Kind: KindNil}
)

// Array returns a new array-of-elem type. Array types are not interned;
// they compare by value through Equal, not by pointer.
func Array(elem *Type) *Type {
	return &Type{Kind: KindArray, Elem: elem}
}

// Function returns a function type with the given parameter types and
// return type.
func Function(ret *Type, params ...*Type) *Type {
	return &Type{Kind: KindFunction, Return: ret, Params: params}
}

// Equal reports whether t and other describe the same type.
func Equal(t, other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindArray:
		return Equal(t.Elem, other.Elem)
	case KindFunction:
		if !Equal(t.Return, other.Return) || len(t.Params) != len(other.Params) {
			return false
		}
		for i := range t.Params {
			if !Equal(t.Params[i], other.Params[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// IsNumeric reports whether t is one of int, long, double.
func IsNumeric(t *Type) bool {
	if t == nil {
		return false
	}
	return t.Kind == KindInt || t.Kind == KindLong || t.Kind == KindDouble
}

// IsPrintablePrimitive reports whether t can be passed to print() or
// embedded in an interpolated string.
func IsPrintablePrimitive(t *Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindInt, KindLong, KindDouble, KindChar, KindString, KindBool:
		return true
	default:
		return false
	}
}

// String renders t the way diagnostics and debug dumps show it:
// "int", "double", "array<T>", "fn(T1,T2) -> R".
func (t *Type) String() string {
	if t == nil {
		return "<unknown>"
	}
	switch t.Kind {
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindChar:
		return "char"
	case KindString:
		return "str"
	case KindBool:
		return "bool"
	case KindVoid:
		return "void"
	case KindNil:
		return "nil"
	case KindArray:
		return "array<" + t.Elem.String() + ">"
	case KindFunction:
		var params []string
		for _, p := range t.Params {
			params = append(params, p.String())
		}
		return "fn(" + strings.Join(params, ",") + ") -> " + t.Return.String()
	default:
		return "<unknown>"
	}
}

// FromKeyword maps a type-keyword token lexeme ("int", "double", ...) to
// its Type. ok is false for anything that isn't a scalar type keyword
// (callers handle "T[]" array syntax themselves).
func FromKeyword(lexeme string) (t *Type, ok bool) {
	switch lexeme {
	case "int":
		return Int, true
	case "long":
		return Long, true
	case "double":
		return Double, true
	case "char":
		return Char, true
	case "str":
		return String, true
	case "bool":
		return Bool, true
	case "void":
		return Void, true
	default:
		return nil, false
	}
}
