// Package compile drives the full pipeline — lex, parse, check,
// generate — reporting diagnostics through a shared diag.Bag and
// stopping before a stage whose input is already known bad.
package compile

import (
	"github.com/sn-lang/snc/internal/arena"
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/checker"
	"github.com/sn-lang/snc/internal/codegen"
	"github.com/sn-lang/snc/internal/diag"
	"github.com/sn-lang/snc/internal/lexer"
	"github.com/sn-lang/snc/internal/parser"
	"github.com/sn-lang/snc/internal/trace"
)

// Result holds every stage's output that a caller (the CLI, or a test)
// might want to inspect, alongside the diagnostics bag.
type Result struct {
	Module   *ast.Module
	Checked  *checker.Result
	Assembly string
	Bag      *diag.Bag
}

// Source compiles src (attributed to filename for diagnostics) through
// every stage, recording phase output into rec when rec is non-nil and
// enabled. The caller checks Result.Bag.HadError(); Assembly is only
// populated when every stage up to code generation succeeded.
func Source(src, filename string, rec *trace.Recorder) *Result {
	bag := diag.NewBag(src)
	a := arena.New()

	lx := lexer.New(src, filename, a)
	p := parser.New(lx, filename, bag, a)
	mod := p.ParseModule()

	if rec != nil {
		rec.Set(trace.PhaseParse, "filename", filename)
		rec.Set(trace.PhaseParse, "statementCount", len(mod.Statements))
	}

	res := &Result{Module: mod, Bag: bag}
	if bag.HadError() {
		return res
	}

	checked := checker.Check(mod, bag)
	res.Checked = checked
	if rec != nil {
		rec.Set(trace.PhaseCheck, "functionCount", len(checked.Functions))
		rec.Set(trace.PhaseCheck, "topLevelStatementCount", len(checked.TopLevel))
	}
	if bag.HadError() {
		return res
	}

	asm := codegen.Generate(checked, bag)
	if rec != nil {
		rec.Set(trace.PhaseCodegen, "bytes", len(asm))
	}
	if bag.HadError() {
		return res
	}
	res.Assembly = asm
	return res
}
