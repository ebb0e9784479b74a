package parser

import (
	"testing"

	"github.com/sn-lang/snc/internal/arena"
	"github.com/sn-lang/snc/internal/ast"
	"github.com/sn-lang/snc/internal/diag"
	"github.com/sn-lang/snc/internal/lexer"
)

func parseModule(t *testing.T, src string) (*ast.Module, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(src)
	a := arena.New()
	lx := lexer.New(src, "test.sn", a)
	p := New(lx, "test.sn", bag, a)
	return p.ParseModule(), bag
}

// TestFactorial exercises seed scenario 1: a recursive function with an
// if/else and a return in each arm.
func TestFactorial(t *testing.T) {
	src := "fn factorial(n: int) : int =>\n" +
		"    if n <= 1 =>\n" +
		"        return 1\n" +
		"    else =>\n" +
		"        return n * factorial(n - 1)\n"

	mod, bag := parseModule(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected errors: %s", bag.String())
	}
	if len(mod.Statements) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(mod.Statements))
	}
	fn, ok := mod.Statements[0].(*ast.Function)
	if !ok {
		t.Fatalf("expected *ast.Function, got %T", mod.Statements[0])
	}
	if fn.Name != "factorial" || len(fn.Params) != 1 {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected a single if statement in the body, got %d", len(fn.Body.Statements))
	}
	ifStmt, ok := fn.Body.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", fn.Body.Statements[0])
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected an else branch")
	}
}

// TestWhilePrimeCheck exercises seed scenario 2.
func TestWhilePrimeCheck(t *testing.T) {
	src := "fn is_prime(n: int) : bool =>\n" +
		"    var i: int = 2\n" +
		"    while i < n =>\n" +
		"        if n % i == 0 =>\n" +
		"            return false\n" +
		"        i++\n" +
		"    return true\n"

	mod, bag := parseModule(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected errors: %s", bag.String())
	}
	fn := mod.Statements[0].(*ast.Function)
	found := false
	for _, s := range fn.Body.Statements {
		if _, ok := s.(*ast.While); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a while statement in the body")
	}
}

// TestForLoopStringRepeat exercises seed scenario 3.
func TestForLoopStringRepeat(t *testing.T) {
	src := "fn repeat(s: str, n: int) : void =>\n" +
		"    for var i: int = 0; i < n; i++ =>\n" +
		"        print(s)\n"

	mod, bag := parseModule(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected errors: %s", bag.String())
	}
	fn := mod.Statements[0].(*ast.Function)
	forStmt, ok := fn.Body.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("expected *ast.For, got %T", fn.Body.Statements[0])
	}
	if forStmt.Init == nil || forStmt.Condition == nil || forStmt.Increment == nil {
		t.Fatalf("expected all three for-clauses present, got %+v", forStmt)
	}
}

// TestInterpolationFiveTypes exercises seed scenario 4.
func TestInterpolationFiveTypes(t *testing.T) {
	src := `fn main() : void =>
    print($"i={1} d={2.5} c={'x'} b={true} s={\"hi\"}")
`
	mod, bag := parseModule(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected errors: %s", bag.String())
	}
	fn := mod.Statements[0].(*ast.Function)
	call := fn.Body.Statements[0].(*ast.ExprStmt).X.(*ast.Call)
	interp, ok := call.Args[0].(*ast.Interpolated)
	if !ok {
		t.Fatalf("expected *ast.Interpolated argument, got %T", call.Args[0])
	}
	if len(interp.Parts) == 0 {
		t.Fatalf("expected interpolation parts")
	}
	// Parts must start and end with a (possibly empty) literal fragment.
	first, ok := interp.Parts[0].(*ast.Literal)
	if !ok || !first.IsInterpolated {
		t.Fatalf("expected a leading literal fragment, got %T", interp.Parts[0])
	}
	last, ok := interp.Parts[len(interp.Parts)-1].(*ast.Literal)
	if !ok || !last.IsInterpolated {
		t.Fatalf("expected a trailing literal fragment, got %T", interp.Parts[len(interp.Parts)-1])
	}
}

func TestPrecedence(t *testing.T) {
	mod, bag := parseModule(t, "fn f() : int =>\n    return 1 + 2 * 3\n")
	if bag.HadError() {
		t.Fatalf("unexpected errors: %s", bag.String())
	}
	fn := mod.Statements[0].(*ast.Function)
	ret := fn.Body.Statements[0].(*ast.Return)
	bin := ret.Value.(*ast.Binary)
	if bin.String() != "(1 + (2 * 3))" {
		t.Fatalf("unexpected precedence grouping: %s", bin.String())
	}
}

func TestAssignRightAssociative(t *testing.T) {
	src := "fn f() : void =>\n" +
		"    var a: int = 0\n" +
		"    var b: int = 0\n" +
		"    a = b = 1\n"
	mod, bag := parseModule(t, src)
	if bag.HadError() {
		t.Fatalf("unexpected errors: %s", bag.String())
	}
	fn := mod.Statements[0].(*ast.Function)
	stmt := fn.Body.Statements[2].(*ast.ExprStmt)
	assign, ok := stmt.X.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt.X)
	}
	if assign.Name != "a" {
		t.Fatalf("expected outer assign target 'a', got %q", assign.Name)
	}
	if _, ok := assign.Value.(*ast.Assign); !ok {
		t.Fatalf("expected nested assign as value, got %T", assign.Value)
	}
}
