// Package codegen renders a checked Module as System-V AMD64 NASM-
// compatible text assembly: function prologues/epilogues, the
// accumulator-discipline expression evaluator, control-flow labels, and a
// deduplicated-by-label string-literal table emitted in a trailing .data
// section.
package codegen

import (
	"fmt"
	"strings"

	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/checker"
	"github.com/sn-lang/snc/internal/diag"
	"github.com/sn-lang/snc/internal/symtab"
	"github.com/sn-lang/snc/internal/token"
)

// externs are the libc entry points every generated program may call.
var externs = []string{"printf", "malloc", "strlen", "strcpy", "strcat"}

// Generator accumulates function bodies and the string-literal table for
// one compilation, then renders them into a single assembly text.
type Generator struct {
	bag *diag.Bag

	body   strings.Builder
	strs   *stringTable
	labels int

	symbols      map[ast.Node]*symtab.Symbol
	paramSymbols map[*ast.Function][]*symtab.Symbol

	// Per-function state, reset by genFunction/genTopLevelInit.
	returnLbl  string
	voidReturn bool
}

// New returns a Generator that reports diagnostics (unsupported
// constructs, internal errors) into bag.
func New(bag *diag.Bag) *Generator {
	return &Generator{bag: bag, strs: newStringTable()}
}

// Generate renders result as a complete assembly file. The caller must
// check bag.HadError() afterward — codegen keeps emitting best-effort
// output after an Unsupported diagnostic so further problems can surface
// in the same run, but that output must not be written out on failure.
func Generate(result *checker.Result, bag *diag.Bag) string {
	g := New(bag)
	return g.generate(result)
}

func (g *Generator) generate(result *checker.Result) string {
	g.symbols = result.Symbols
	g.paramSymbols = result.ParamSymbols

	hasTop := len(result.TopLevel) > 0
	hasUserMain := false
	for _, fn := range result.Functions {
		if fn.Name == "main" {
			hasUserMain = true
		}
	}

	if hasTop {
		g.genTopLevelInit(result.TopLevel, result.TopFrameSize)
	}
	for _, fn := range result.Functions {
		label := fn.Name
		if hasTop && fn.Name == "main" {
			label = "sn_main_impl"
		}
		g.genFunction(fn, result.FrameSizes[fn], label)
	}
	if hasTop {
		g.genEntry(hasUserMain)
	}

	var out strings.Builder
	out.WriteString(".text\n")
	out.WriteString("global main\n")
	for _, ext := range externs {
		fmt.Fprintf(&out, "extern %s\n", ext)
	}
	out.WriteString("\n")
	out.WriteString(g.body.String())
	out.WriteString("\n.data\n")
	out.WriteString(dataHeader)
	out.WriteString(g.strs.render())
	out.WriteString("\nsection .note.GNU-stack noalloc noexec nowrite progbits\n")
	return out.String()
}

// dataHeader is the fixed set of printf format strings and boolean labels
// every program may reference, rendered ahead of interned string literals.
const dataHeader = `fmt_int: db "%d", 0
fmt_long: db "%ld", 0
fmt_double: db "%.5f", 0
fmt_char: db "%c", 0
fmt_string: db "%s", 0
fmt_newline: db 10, 0
true_str: db "true", 0
false_str: db "false", 0
true_str_nl: db "true", 10, 0
false_str_nl: db "false", 10, 0
`

// nextLabel returns a fresh, monotonically numbered label with the given
// prefix, unique within this generation run.
func (g *Generator) nextLabel(prefix string) string {
	n := g.labels
	g.labels++
	return fmt.Sprintf(".L_%s_%d", prefix, n)
}

func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(&g.body, format, args...)
	g.body.WriteString("\n")
}

func (g *Generator) emitRaw(s string) {
	g.body.WriteString(s)
}

func (g *Generator) symbolOf(n ast.Node) *symtab.Symbol {
	return g.symbols[n]
}

func (g *Generator) internal(pos token.Position, format string, args ...interface{}) {
	g.bag.Add(diag.Internal, pos, format, args...)
}

func (g *Generator) unsupported(pos token.Position, format string, args ...interface{}) {
	g.bag.Add(diag.Unsupported, pos, format, args...)
}
