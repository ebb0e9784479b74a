package lexer

import (
	"testing"

	"github.com/sn-lang/snc/internal/arena"
	"github.com/sn-lang/snc/internal/token"
)

func tokenKinds(t *testing.T, input string) []token.Kind {
	t.Helper()
	l := New(input, "test.sn", arena.New())
	var kinds []token.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	return kinds
}

func TestSimpleTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"plus_plus", "x++", []token.Kind{token.IDENT, token.PLUS_PLUS, token.NEWLINE, token.EOF}},
		{"minus_minus", "x--", []token.Kind{token.IDENT, token.MINUS_MINUS, token.NEWLINE, token.EOF}},
		{"arrow_dash", "a -> b", []token.Kind{token.IDENT, token.ARROW, token.IDENT, token.NEWLINE, token.EOF}},
		{"arrow_fat", "a => b", []token.Kind{token.IDENT, token.ARROW, token.IDENT, token.NEWLINE, token.EOF}},
		{"comparisons", "a <= b >= c == d != e", []token.Kind{
			token.IDENT, token.LT_EQ, token.IDENT, token.GT_EQ, token.IDENT,
			token.EQ, token.IDENT, token.NOT_EQ, token.IDENT, token.NEWLINE, token.EOF,
		}},
		{"keywords", "fn var return if else for while import nil and or", []token.Kind{
			token.FN, token.VAR, token.RETURN, token.IF, token.ELSE, token.FOR,
			token.WHILE, token.IMPORT, token.NIL, token.AND, token.OR, token.NEWLINE, token.EOF,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenKinds(t, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d: got %s, want %s (full: %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestNumberLiterals(t *testing.T) {
	l := New("42 42l 3.14 3.14d", "test.sn", arena.New())

	tok := l.NextToken()
	if tok.Kind != token.INT || tok.Literal.Int != 42 {
		t.Fatalf("expected INT 42, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Kind != token.LONG || tok.Literal.Int != 42 {
		t.Fatalf("expected LONG 42, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Kind != token.DOUBLE || tok.Literal.Float != 3.14 {
		t.Fatalf("expected DOUBLE 3.14, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Kind != token.DOUBLE || tok.Literal.Float != 3.14 {
		t.Fatalf("expected DOUBLE 3.14d, got %v", tok)
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	l := New(`"hi\n" 'a' $"x{1}y"`, "test.sn", arena.New())

	tok := l.NextToken()
	if tok.Kind != token.STRING || tok.Literal.Str != "hi\n" {
		t.Fatalf("expected STRING hi\\n, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Kind != token.CHAR || tok.Literal.Char != 'a' {
		t.Fatalf("expected CHAR a, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Kind != token.INTERP_STRING || tok.Literal.Str != "x{1}y" {
		t.Fatalf("expected INTERP_STRING x{1}y, got %v", tok)
	}
}

// TestIndentationInconsistent exercises seed scenario 5: a dedent to a
// width that matches no enclosing level is reported as an ILLEGAL token
// rather than silently accepted.
func TestIndentationInconsistent(t *testing.T) {
	src := "fn f() : void =>\n    var x: int = 1\n  var y: int = 2\n"
	kinds := tokenKinds(t, src)

	sawIllegal := false
	for _, k := range kinds {
		if k == token.ILLEGAL {
			sawIllegal = true
		}
	}
	if !sawIllegal {
		t.Fatalf("expected an ILLEGAL token for inconsistent dedent, got %v", kinds)
	}
}

// TestIndentationDedentAtEOF exercises seed scenario 6: a file ending
// mid-indentation still drains every pending DEDENT before EOF.
func TestIndentationDedentAtEOF(t *testing.T) {
	src := "fn f() : void =>\n    var x: int = 1"
	l := New(src, "test.sn", arena.New())

	var kinds []token.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}

	n := len(kinds)
	if n < 2 || kinds[n-2] != token.DEDENT || kinds[n-1] != token.EOF {
		t.Fatalf("expected a trailing DEDENT then EOF, got %v", kinds)
	}
}

func TestCommentsAreLayoutIrrelevant(t *testing.T) {
	src := "// a comment\nvar x: int = 1 // trailing\n"
	kinds := tokenKinds(t, src)
	want := []token.Kind{token.VAR, token.IDENT, token.COLON, token.TYPE_INT, token.ASSIGN, token.INT, token.NEWLINE, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range kinds {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}
