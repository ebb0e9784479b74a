package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sn-lang/snc/internal/trace"
)

func traceRecorderForTest(t *testing.T) *trace.Recorder {
	t.Helper()
	rec := trace.New(true)
	rec.Set(trace.PhaseCheck, "functionCount", 1)
	return rec
}

func TestDefaultOutputPath(t *testing.T) {
	cases := []struct{ file, ext, want string }{
		{"prog.sn", ".o", "prog.o"},
		{"dir/prog.sn", ".asm", "dir/prog.asm"},
		{"noext", ".o", "noext.o"},
	}
	for _, c := range cases {
		if got := defaultOutputPath(c.file, c.ext); got != c.want {
			t.Fatalf("defaultOutputPath(%q, %q) = %q, want %q", c.file, c.ext, got, c.want)
		}
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestRunLexPrintsTokenStream(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sn")
	if err := os.WriteFile(path, []byte("var x: int = 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lexJSON = false
	out := captureStdout(t, func() {
		if err := runLex(nil, []string{path}); err != nil {
			t.Fatalf("runLex: %v", err)
		}
	})
	if !strings.Contains(out, "var") {
		t.Fatalf("expected var token in output, got %q", out)
	}
	if !strings.Contains(out, "EOF") {
		t.Fatalf("expected a trailing EOF token, got %q", out)
	}
}

func TestRunLexJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sn")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lexJSON = true
	defer func() { lexJSON = false }()
	out := captureStdout(t, func() {
		if err := runLex(nil, []string{path}); err != nil {
			t.Fatalf("runLex: %v", err)
		}
	})
	if !strings.Contains(out, `"kind"`) {
		t.Fatalf("expected JSON token objects, got %q", out)
	}
}

func TestRunLexMissingFile(t *testing.T) {
	if err := runLex(nil, []string{filepath.Join(t.TempDir(), "nope.sn")}); err == nil {
		t.Fatalf("expected an error reading a nonexistent file")
	}
}

func TestRunParsePrintsStatements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sn")
	src := "fn f() : void =>\n    return\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	parseJSON = false
	out := captureStdout(t, func() {
		if err := runParse(nil, []string{path}); err != nil {
			t.Fatalf("runParse: %v", err)
		}
	})
	if !strings.Contains(out, "f") {
		t.Fatalf("expected function name in parsed output, got %q", out)
	}
}

func TestRunParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sn")
	src := "fn f() : void =>\n    return\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	parseJSON = true
	defer func() { parseJSON = false }()
	out := captureStdout(t, func() {
		if err := runParse(nil, []string{path}); err != nil {
			t.Fatalf("runParse: %v", err)
		}
	})
	if !strings.Contains(out, `"statementCount":1`) {
		t.Fatalf("expected a statementCount field, got %q", out)
	}
}

func TestRunParseSyntaxErrorFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.sn")
	if err := os.WriteFile(path, []byte("fn f( : void =>\n    return\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	parseJSON = false
	if err := runParse(nil, []string{path}); err == nil {
		t.Fatalf("expected a parse error for malformed source")
	}
}

func TestRunCompileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.sn")
	if err := os.WriteFile(src, []byte("fn main() : void =>\n    print(1)\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	outputFlag = filepath.Join(dir, "prog.o")
	runFlag = false
	debugFlag = false
	configFlag = ""
	traceFile = ""
	defer func() { outputFlag = "" }()

	captureStdout(t, func() {
		if err := runCompile(nil, []string{src}); err != nil {
			t.Fatalf("runCompile: %v", err)
		}
	})

	content, err := os.ReadFile(outputFlag)
	if err != nil {
		t.Fatalf("expected output file written: %v", err)
	}
	if !strings.Contains(string(content), "global main") {
		t.Fatalf("expected emitted assembly, got %q", string(content))
	}
}

func TestRunCompileWithQueryFlag(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.sn")
	if err := os.WriteFile(src, []byte("fn f(a: int) : int =>\n    return a\nfn main() : void =>\n    print(f(1))\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	outputFlag = filepath.Join(dir, "prog.o")
	runFlag = false
	debugFlag = false
	configFlag = ""
	traceFile = ""
	queryFlag = "check.functionCount"
	defer func() { outputFlag = ""; queryFlag = "" }()

	out := captureStdout(t, func() {
		if err := runCompile(nil, []string{src}); err != nil {
			t.Fatalf("runCompile: %v", err)
		}
	})
	if !strings.Contains(out, "2") {
		t.Fatalf("expected functionCount 2 printed, got %q", out)
	}
}

func TestRunQueryRejectsMalformedPath(t *testing.T) {
	rec := traceRecorderForTest(t)
	if err := runQuery(rec, "nodot"); err == nil {
		t.Fatalf("expected an error for a query without a dot separator")
	}
}

func TestRunQueryRejectsMissingField(t *testing.T) {
	rec := traceRecorderForTest(t)
	if err := runQuery(rec, "check.doesNotExist"); err == nil {
		t.Fatalf("expected an error for a missing field")
	}
}

func TestRunCompileReportsCompileErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.sn")
	if err := os.WriteFile(src, []byte("fn f() : void =>\n    bogus()\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	outputFlag = filepath.Join(dir, "bad.o")
	runFlag = false
	debugFlag = false
	configFlag = ""
	traceFile = ""
	defer func() { outputFlag = "" }()

	if err := runCompile(nil, []string{src}); err == nil {
		t.Fatalf("expected a compile error for an undefined function call")
	}
	if _, err := os.Stat(outputFlag); err == nil {
		t.Fatalf("expected no output file to be written on compile failure")
	}
}
