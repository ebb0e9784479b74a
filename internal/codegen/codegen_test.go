package codegen

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/sn-lang/snc/internal/arena"
	"github.com/sn-lang/snc/internal/checker"
	"github.com/sn-lang/snc/internal/diag"
	"github.com/sn-lang/snc/internal/lexer"
	"github.com/sn-lang/snc/internal/parser"
)

func generate(t *testing.T, src string) (string, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(src)
	a := arena.New()
	lx := lexer.New(src, "test.sn", a)
	p := parser.New(lx, "test.sn", bag, a)
	mod := p.ParseModule()
	if bag.HadError() {
		t.Fatalf("unexpected parse errors: %s", bag.String())
	}
	res := checker.Check(mod, bag)
	if bag.HadError() {
		t.Fatalf("unexpected check errors: %s", bag.String())
	}
	return Generate(res, bag), bag
}

func TestFactorialAssemblyShape(t *testing.T) {
	src := "fn factorial(n: int) : int =>\n" +
		"    if n <= 1 =>\n" +
		"        return 1\n" +
		"    else =>\n" +
		"        return n * factorial(n - 1)\n" +
		"fn main() : void =>\n" +
		"    print(factorial(5))\n"

	asm, bag := generate(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected codegen errors: %s", bag.String())
	}
	for _, want := range []string{"global main", "extern printf", ".data", "section .note.GNU-stack", "main:", "factorial:"} {
		if !strings.Contains(asm, want) {
			t.Fatalf("expected assembly to contain %q", want)
		}
	}
	snaps.MatchSnapshot(t, "factorial", asm)
}

func TestWhileLoopLabelsPaired(t *testing.T) {
	src := "fn is_prime(n: int) : bool =>\n" +
		"    var i: int = 2\n" +
		"    while i < n =>\n" +
		"        if n % i == 0 =>\n" +
		"            return false\n" +
		"        i++\n" +
		"    return true\n"
	asm, bag := generate(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected codegen errors: %s", bag.String())
	}
	if strings.Count(asm, "while_start") != strings.Count(asm, "while_end") {
		t.Fatalf("expected matched while_start/while_end label counts")
	}
}

func TestStringConcatEmitsLibcSequence(t *testing.T) {
	src := `fn f() : void =>
    var a: str = "x" + "y"
    print(a)
`
	asm, bag := generate(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected codegen errors: %s", bag.String())
	}
	for _, want := range []string{"call strlen", "call malloc", "call strcpy", "call strcat"} {
		if !strings.Contains(asm, want) {
			t.Fatalf("expected assembly to contain %q", want)
		}
	}
}

func TestInterpolatedPrintEmitsOneCallPerPart(t *testing.T) {
	src := `fn main() : void =>
    var i: int = 1
    var d: double = 2.5
    var c: char = 'x'
    var b: bool = true
    var s: str = "hi"
    print($"i={i} d={d} c={c} b={b} s={s}")
`
	asm, bag := generate(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected codegen errors: %s", bag.String())
	}
	if got := strings.Count(asm, "call printf"); got != 10 {
		t.Fatalf("expected 10 printf calls (5 values + 5 non-empty literal fragments), got %d", got)
	}
}

func TestArrayIsUnsupportedInCodegen(t *testing.T) {
	src := "fn f() : void =>\n    var a: int[] = [1, 2, 3]\n"
	_, bag := generate(t, src)
	if !bag.HadError() {
		t.Fatalf("expected array literal to be flagged as unsupported by codegen")
	}
	found := false
	for _, d := range bag.Diagnostics {
		if d.Severity == diag.Unsupported {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an Unsupported diagnostic, got %v", bag.Diagnostics)
	}
}

func TestStringTableDuplicatesGetDistinctLabels(t *testing.T) {
	tbl := newStringTable()
	l1 := tbl.intern("same")
	l2 := tbl.intern("same")
	if l1 == l2 {
		t.Fatalf("expected distinct labels for duplicate values, got %q twice", l1)
	}
}

func TestNasmEscapeSplitsControlBytes(t *testing.T) {
	got := nasmEscape("a\nb")
	want := `"a", 10, "b"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
