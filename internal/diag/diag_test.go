package diag

import (
	"strings"
	"testing"

	"github.com/sn-lang/snc/internal/token"
)

func TestBagHadErrorAndAdd(t *testing.T) {
	b := NewBag("var x: int = 1\n")
	if b.HadError() {
		t.Fatalf("expected a fresh bag to have no errors")
	}
	b.Add(Semantic, token.Position{Filename: "f.sn", Line: 1}, "undefined name %q", "y")
	if !b.HadError() {
		t.Fatalf("expected HadError after Add")
	}
	if b.Diagnostics[0].Severity != Semantic {
		t.Fatalf("expected Semantic severity, got %s", b.Diagnostics[0].Severity)
	}
	if !strings.Contains(b.Diagnostics[0].Message, `"y"`) {
		t.Fatalf("expected formatted message, got %q", b.Diagnostics[0].Message)
	}
}

func TestFormatIncludesSourceLine(t *testing.T) {
	src := "fn f() : void =>\n    bogus()\n"
	d := Diagnostic{Severity: Semantic, Message: "undefined function bogus", Pos: token.Position{Filename: "f.sn", Line: 2}}
	out := d.Format(src)
	if !strings.Contains(out, "f.sn:2") {
		t.Fatalf("expected file:line header, got %q", out)
	}
	if !strings.Contains(out, "bogus()") {
		t.Fatalf("expected the offending source line rendered, got %q", out)
	}
}

func TestFormatWithoutSourceOmitsLine(t *testing.T) {
	d := Diagnostic{Severity: Internal, Message: "boom", Pos: token.Position{Filename: "f.sn", Line: 5}}
	out := d.Format("")
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected only the header line when no source is available, got %q", out)
	}
}

func TestSeverityStrings(t *testing.T) {
	cases := map[Severity]string{
		Lexical:     "lexical error",
		Syntactic:   "syntax error",
		Semantic:    "semantic error",
		Unsupported: "unsupported",
		Internal:    "internal error",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestBagStringConcatenatesInOrder(t *testing.T) {
	b := NewBag("a\nb\n")
	b.Add(Lexical, token.Position{Filename: "f.sn", Line: 1}, "first")
	b.Add(Syntactic, token.Position{Filename: "f.sn", Line: 2}, "second")
	out := b.String()
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Fatalf("expected diagnostics rendered in insertion order, got %q", out)
	}
}
