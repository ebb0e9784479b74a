package compile

import (
	"strings"
	"testing"

	"github.com/sn-lang/snc/internal/trace"
)

func TestSourceEndToEndSuccess(t *testing.T) {
	src := "fn main() : void =>\n    print(1)\n"
	res := Source(src, "test.sn", nil)
	if res.Bag.HadError() {
		t.Fatalf("unexpected errors: %s", res.Bag.String())
	}
	if res.Assembly == "" {
		t.Fatalf("expected non-empty assembly")
	}
	if !strings.Contains(res.Assembly, "global main") {
		t.Fatalf("expected assembly to declare main, got %q", res.Assembly)
	}
}

func TestSourceStopsAtParseError(t *testing.T) {
	res := Source("fn f( : void =>\n    return\n", "test.sn", nil)
	if !res.Bag.HadError() {
		t.Fatalf("expected a parse error")
	}
	if res.Checked != nil {
		t.Fatalf("expected checking to be skipped after a parse error")
	}
	if res.Assembly != "" {
		t.Fatalf("expected no assembly after a parse error")
	}
}

func TestSourceStopsAtCheckError(t *testing.T) {
	res := Source("fn f() : void =>\n    bogus()\n", "test.sn", nil)
	if !res.Bag.HadError() {
		t.Fatalf("expected a check error")
	}
	if res.Checked == nil {
		t.Fatalf("expected Checked to be populated even though it has errors")
	}
	if res.Assembly != "" {
		t.Fatalf("expected no assembly after a check error")
	}
}

func TestSourceRecordsTrace(t *testing.T) {
	rec := trace.New(true)
	res := Source("fn main() : void =>\n    print(1)\n", "test.sn", rec)
	if res.Bag.HadError() {
		t.Fatalf("unexpected errors: %s", res.Bag.String())
	}
	if !strings.Contains(rec.Document(trace.PhaseParse), "test.sn") {
		t.Fatalf("expected filename recorded in parse phase, got %q", rec.Document(trace.PhaseParse))
	}
	if !strings.Contains(rec.Document(trace.PhaseCodegen), "bytes") {
		t.Fatalf("expected codegen phase to record output size, got %q", rec.Document(trace.PhaseCodegen))
	}
}
