// Package arena provides a scoped region allocator for the heterogeneous
// AST, token, and symbol-table storage produced during one compilation.
//
// Everything allocated through an Arena is owned by it: nodes are never
// freed individually, and the whole region is released as one unit when
// the compilation finishes (or, in this Go port, simply dropped and left
// to the garbage collector — see DESIGN.md for why no finalizer is
// needed). The type exists to make that ownership explicit in the code,
// the way the source's per-node C allocator did, rather than to work
// around Go's memory model.
package arena

// Arena owns every value allocated through it for the compilation's
// lifetime. The zero value is ready to use.
type Arena struct {
	bytes [][]byte
}

// New returns an empty, ready-to-use Arena.
func New() *Arena {
	return &Arena{}
}

// CopyString copies s into arena-owned storage and returns the copy. Used
// for token lexemes so that tokens remain valid independent of the
// lifetime of the original source buffer.
func (a *Arena) CopyString(s string) string {
	buf := make([]byte, len(s))
	copy(buf, s)
	a.bytes = append(a.bytes, buf)
	return string(buf)
}

// Alloc[T] returns a pointer to a fresh, zeroed T owned by the arena.
// Plain Go heap allocation already gives per-node lifetime management
// for free; this wrapper exists so every AST/token/symbol allocation site
// reads as "this belongs to the arena" rather than an ad-hoc `new(T)`.
func Alloc[T any](a *Arena) *T {
	return new(T)
}

// AllocSlice[T] returns a fresh slice of n zeroed T, owned by the arena.
func AllocSlice[T any](a *Arena, n int) []T {
	return make([]T, n)
}
