// Package trace records one JSON object per compiler phase (lex, parse,
// check, codegen) for -d/--debug introspection and the root command's
// --query flag. Each phase's document is built incrementally with
// sjson.Set rather than marshaled from a Go struct, since the fields
// recorded per phase vary.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Phase names the compiler stage a record belongs to.
type Phase string

const (
	PhaseLex    Phase = "lex"
	PhaseParse  Phase = "parse"
	PhaseCheck  Phase = "check"
	PhaseCodegen Phase = "codegen"
)

// Recorder accumulates one JSON document per phase and flushes them as
// newline-delimited JSON.
type Recorder struct {
	enabled bool
	docs    map[Phase]string
	order   []Phase
}

// New returns a Recorder. When enabled is false every method is a no-op,
// so call sites don't need to guard on -d themselves.
func New(enabled bool) *Recorder {
	return &Recorder{enabled: enabled, docs: make(map[Phase]string)}
}

// Enabled reports whether this recorder accumulates records.
func (r *Recorder) Enabled() bool { return r.enabled }

func (r *Recorder) ensure(phase Phase) string {
	doc, ok := r.docs[phase]
	if !ok {
		r.order = append(r.order, phase)
		doc = "{}"
	}
	return doc
}

// Set records one field under phase's document. It silently no-ops
// (aside from a best-effort panic-free fallback) when the recorder is
// disabled or the path is malformed — tracing must never fail a
// compile.
func (r *Recorder) Set(phase Phase, path string, value interface{}) {
	if !r.enabled {
		return
	}
	doc := r.ensure(phase)
	updated, err := sjson.Set(doc, path, value)
	if err != nil {
		return
	}
	r.docs[phase] = updated
}

// SetRaw records a pre-rendered JSON fragment (used for nested token/AST
// dumps already produced as JSON text) under phase's document.
func (r *Recorder) SetRaw(phase Phase, path string, rawJSON string) {
	if !r.enabled {
		return
	}
	doc := r.ensure(phase)
	updated, err := sjson.SetRaw(doc, path, rawJSON)
	if err != nil {
		return
	}
	r.docs[phase] = updated
}

// Flush writes every recorded phase document, one per line, to w in
// phase-recorded order.
func (r *Recorder) Flush(w io.Writer) error {
	if !r.enabled {
		return nil
	}
	for _, phase := range r.order {
		if _, err := fmt.Fprintln(w, r.docs[phase]); err != nil {
			return err
		}
	}
	return nil
}

// Document returns phase's accumulated JSON document, or "{}" if nothing
// was recorded for it (including when the recorder is disabled).
func (r *Recorder) Document(phase Phase) string {
	if doc, ok := r.docs[phase]; ok {
		return doc
	}
	return "{}"
}

// Query reads one field back out of phase's accumulated document — the
// read-side counterpart to Set, used by the root command's --query flag
// and by tests that only care about one field rather than the whole
// document.
func (r *Recorder) Query(phase Phase, path string) gjson.Result {
	return gjson.Get(r.Document(phase), path)
}

// String renders every recorded document newline-joined, for tests and
// quick inspection without an io.Writer.
func (r *Recorder) String() string {
	var b strings.Builder
	_ = r.Flush(&b)
	return b.String()
}
