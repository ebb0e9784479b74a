// Package diag renders compiler diagnostics with source context: a
// file:line header, a severity, a message, and the offending source
// line.
package diag

import (
	"fmt"
	"strings"

	"github.com/sn-lang/snc/internal/token"
)

// Severity classifies one Diagnostic.
type Severity int

const (
	Lexical Severity = iota
	Syntactic
	Semantic
	Unsupported
	Internal
)

func (s Severity) String() string {
	switch s {
	case Lexical:
		return "lexical error"
	case Syntactic:
		return "syntax error"
	case Semantic:
		return "semantic error"
	case Unsupported:
		return "unsupported"
	case Internal:
		return "internal error"
	default:
		return "error"
	}
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      token.Position
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Format renders d with the offending source line, when source text is
// available. There is no caret: token.Position carries only a line and
// filename, never a column.
func (d Diagnostic) Format(source string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s: %s\n", d.Pos, d.Severity, d.Message)

	line := sourceLine(source, d.Pos.Line)
	if line != "" {
		fmt.Fprintf(&sb, "  %4d | %s\n", d.Pos.Line, line)
	}
	return sb.String()
}

func sourceLine(source string, n int) string {
	if source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// Bag accumulates diagnostics across a compilation. Each stage appends to
// the same bag and keeps processing after an error to maximize diagnostic
// yield; the driver checks HadError before invoking the next stage.
type Bag struct {
	Diagnostics []Diagnostic
	Source      string
}

// NewBag returns an empty Bag attributed to the given source text (used
// to render source-line context).
func NewBag(source string) *Bag {
	return &Bag{Source: source}
}

// Add appends one diagnostic.
func (b *Bag) Add(sev Severity, pos token.Position, format string, args ...interface{}) {
	b.Diagnostics = append(b.Diagnostics, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	})
}

// HadError reports whether any diagnostic has been recorded.
func (b *Bag) HadError() bool {
	return len(b.Diagnostics) > 0
}

// String renders every diagnostic in order, each with source context.
func (b *Bag) String() string {
	var sb strings.Builder
	for _, d := range b.Diagnostics {
		sb.WriteString(d.Format(b.Source))
	}
	return sb.String()
}
