// Package lexer turns Sn source text into a stream of tokens, synthesizing
// INDENT/DEDENT/NEWLINE layout markers the way a Python-style indentation
// grammar requires.
package lexer

import (
	"strings"

	"github.com/sn-lang/snc/internal/arena"
	"github.com/sn-lang/snc/internal/token"
)

// Lexer holds the scanning state for one source file. Construct with New
// and pull tokens with NextToken until it returns an EOF token.
type Lexer struct {
	characters []rune
	position   int
	readPos    int
	ch         rune
	line       int
	filename   string
	arena      *arena.Arena

	indentStack []int
	indentUnit  int // 0 until the first INDENT fixes it

	atLineStart  bool
	pendingDedent bool
	dedentTarget  int
}

// New creates a Lexer over input, attributing diagnostics to filename.
// a may be nil, in which case lexemes are not arena-copied.
func New(input, filename string, a *arena.Arena) *Lexer {
	l := &Lexer{
		characters:  []rune(input),
		line:        1,
		filename:    filename,
		arena:       a,
		indentStack: []int{0},
		atLineStart: true,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.characters) {
		l.ch = 0
	} else {
		l.ch = l.characters[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.characters) {
		return 0
	}
	return l.characters[l.readPos]
}

// NextToken returns the next token in the stream. Once it returns a token
// of Kind token.EOF, every subsequent call returns the same EOF token.
func (l *Lexer) NextToken() token.Token {
	if l.pendingDedent {
		return l.continueDedent()
	}
	if l.atLineStart {
		return l.scanLineStart()
	}
	return l.scanToken()
}

// continueDedent emits the next DEDENT in a chain started by scanLineStart,
// or an indentation error if the stack never lands on the target.
func (l *Lexer) continueDedent() token.Token {
	top := l.indentStack[len(l.indentStack)-1]
	switch {
	case top == l.dedentTarget:
		l.pendingDedent = false
		l.atLineStart = false
		return l.scanToken()
	case top < l.dedentTarget:
		l.pendingDedent = false
		return l.errorToken("Inconsistent indentation: dedent does not match any enclosing level")
	default:
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		return l.emptyToken(token.DEDENT)
	}
}

// scanLineStart implements the indentation algorithm from one or more
// layout-irrelevant lines up to the first INDENT/DEDENT/real token.
func (l *Lexer) scanLineStart() token.Token {
	for {
		n := l.measureIndent()

		if l.isLayoutIrrelevant() {
			if l.ch == 0 {
				return l.drainOrEOF()
			}
			l.consumeLineRemainder()
			continue
		}

		top := l.indentStack[len(l.indentStack)-1]
		switch {
		case n == top:
			l.atLineStart = false
			return l.scanToken()

		case n > top:
			if l.indentUnit == 0 {
				l.indentUnit = n - top
			} else if n-top != l.indentUnit {
				l.atLineStart = false
				return l.errorToken("Inconsistent indentation")
			}
			l.indentStack = append(l.indentStack, n)
			l.atLineStart = false
			return l.emptyToken(token.INDENT)

		default: // n < top
			l.dedentTarget = n
			l.pendingDedent = true
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			return l.emptyToken(token.DEDENT)
		}
	}
}

// drainOrEOF pops one level of the indent stack per call once end-of-input
// is reached mid-layout-scan, finally settling on EOF.
func (l *Lexer) drainOrEOF() token.Token {
	if len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		return l.emptyToken(token.DEDENT)
	}
	return l.emptyToken(token.EOF)
}

func (l *Lexer) measureIndent() int {
	n := 0
	for l.ch == ' ' || l.ch == '\t' {
		n++
		l.readChar()
	}
	return n
}

func (l *Lexer) isLayoutIrrelevant() bool {
	if l.ch == 0 || l.ch == '\n' {
		return true
	}
	return l.ch == '/' && l.peekChar() == '/'
}

// consumeLineRemainder skips a trailing comment (if any) and the newline
// that terminates a layout-irrelevant line.
func (l *Lexer) consumeLineRemainder() {
	if l.ch == '/' && l.peekChar() == '/' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}
	if l.ch == '\n' {
		l.line++
		l.readChar()
	}
}

// skipIntraline consumes spaces/tabs/CR and a trailing "// ..." comment
// within a logical line, stopping at NEWLINE or EOF or real content.
func (l *Lexer) skipIntraline() {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
				continue
			}
			return
		default:
			return
		}
	}
}

// scanToken scans one real token from within a logical line, or the
// NEWLINE that ends it.
func (l *Lexer) scanToken() token.Token {
	l.skipIntraline()

	switch {
	case l.ch == '\n':
		l.line++
		l.readChar()
		l.atLineStart = true
		return l.emptyToken(token.NEWLINE)

	case l.ch == 0:
		l.atLineStart = true
		return l.emptyToken(token.NEWLINE)
	}

	switch l.ch {
	case '+':
		if l.peekChar() == '+' {
			l.readChar()
			return l.simple(token.PLUS_PLUS, "++")
		}
		return l.simple(token.PLUS, "+")
	case '-':
		if l.peekChar() == '-' {
			l.readChar()
			return l.simple(token.MINUS_MINUS, "--")
		}
		if l.peekChar() == '>' {
			l.readChar()
			return l.simple(token.ARROW, "->")
		}
		return l.simple(token.MINUS, "-")
	case '*':
		return l.simple(token.STAR, "*")
	case '/':
		return l.simple(token.SLASH, "/")
	case '%':
		return l.simple(token.PERCENT, "%")
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.EQ, "==")
		}
		if l.peekChar() == '>' {
			l.readChar()
			return l.simple(token.ARROW, "=>")
		}
		return l.simple(token.ASSIGN, "=")
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.NOT_EQ, "!=")
		}
		return l.simple(token.BANG, "!")
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.LT_EQ, "<=")
		}
		return l.simple(token.LT, "<")
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.GT_EQ, ">=")
		}
		return l.simple(token.GT, ">")
	case '(':
		return l.simple(token.LPAREN, "(")
	case ')':
		return l.simple(token.RPAREN, ")")
	case '{':
		return l.simple(token.LBRACE, "{")
	case '}':
		return l.simple(token.RBRACE, "}")
	case '[':
		return l.simple(token.LBRACKET, "[")
	case ']':
		return l.simple(token.RBRACKET, "]")
	case ',':
		return l.simple(token.COMMA, ",")
	case '.':
		return l.simple(token.DOT, ".")
	case ':':
		return l.simple(token.COLON, ":")
	case ';':
		return l.simple(token.SEMICOLON, ";")
	case '"':
		return l.readStringToken(false)
	case '\'':
		return l.readCharToken()
	case '$':
		if l.peekChar() == '"' {
			l.readChar()
			return l.readStringToken(true)
		}
		return l.errorToken("Unexpected character '$'")
	}

	if isDigit(l.ch) {
		return l.readNumber()
	}
	if isIdentStart(l.ch) {
		return l.readIdentifier()
	}

	ch := l.ch
	l.readChar()
	return l.errorTokenf("Unexpected character %q", ch)
}

func (l *Lexer) simple(kind token.Kind, lexeme string) token.Token {
	tok := l.tokenAt(kind, lexeme)
	l.readChar()
	return tok
}

func (l *Lexer) tokenAt(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: l.own(lexeme), Pos: l.pos()}
}

func (l *Lexer) emptyToken(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Pos: l.pos()}
}

func (l *Lexer) errorToken(msg string) token.Token {
	return token.Token{Kind: token.ILLEGAL, Lexeme: l.own(msg), Pos: l.pos()}
}

func (l *Lexer) errorTokenf(format string, args ...interface{}) token.Token {
	return l.errorToken(sprintf(format, args...))
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.line, Filename: l.filename}
}

func (l *Lexer) own(s string) string {
	if l.arena == nil {
		return s
	}
	return l.arena.CopyString(s)
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func (l *Lexer) readIdentifier() token.Token {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lit := string(l.characters[start:l.position])
	kind := token.LookupIdentifier(lit)
	tok := token.Token{Kind: kind, Lexeme: l.own(lit), Pos: l.pos()}
	if kind == token.TRUE {
		tok.Literal.Bool = true
	}
	return tok
}

// readNumber reads an integer, long (trailing 'l'), or double (decimal
// point, optional trailing 'd') literal.
func (l *Lexer) readNumber() token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}

	isDouble := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isDouble = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lit := string(l.characters[start:l.position])
	pos := l.pos()

	if isDouble {
		if l.ch == 'd' {
			l.readChar()
		}
		f := parseFloat(lit)
		return token.Token{Kind: token.DOUBLE, Lexeme: l.own(lit), Literal: token.Literal{Float: f}, Pos: pos}
	}

	if l.ch == 'l' {
		l.readChar()
		n := parseInt(lit)
		return token.Token{Kind: token.LONG, Lexeme: l.own(lit), Literal: token.Literal{Int: n}, Pos: pos}
	}

	n := parseInt(lit)
	return token.Token{Kind: token.INT, Lexeme: l.own(lit), Literal: token.Literal{Int: n}, Pos: pos}
}

// readStringToken reads a "..." or (when interpolated) $"..." literal,
// decoding backslash escapes but leaving any "{"/"}" content untouched for
// the parser's interpolation sub-parser.
func (l *Lexer) readStringToken(interpolated bool) token.Token {
	pos := l.pos()
	l.readChar() // consume opening quote

	var sb strings.Builder
	for {
		if l.ch == 0 {
			return l.errorToken("Unterminated string literal")
		}
		if l.ch == '"' {
			l.readChar()
			break
		}
		if l.ch == '\\' {
			esc, ok := l.readEscape('"')
			if !ok {
				return l.errorTokenf("Invalid escape sequence in string literal")
			}
			sb.WriteByte(esc)
			continue
		}
		if l.ch == '\n' {
			return l.errorToken("Unterminated string literal")
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}

	kind := token.STRING
	if interpolated {
		kind = token.INTERP_STRING
	}
	content := sb.String()
	return token.Token{Kind: kind, Lexeme: l.own(content), Literal: token.Literal{Str: l.own(content)}, Pos: pos}
}

func (l *Lexer) readCharToken() token.Token {
	pos := l.pos()
	l.readChar() // consume opening quote

	if l.ch == '\'' {
		return l.errorToken("Empty character literal")
	}
	if l.ch == 0 {
		return l.errorToken("Unterminated character literal")
	}

	var value byte
	if l.ch == '\\' {
		esc, ok := l.readEscape('\'')
		if !ok {
			return l.errorToken("Invalid escape sequence in character literal")
		}
		value = esc
	} else {
		value = byte(l.ch)
		l.readChar()
	}

	if l.ch != '\'' {
		return l.errorToken("Unterminated character literal")
	}
	l.readChar()

	return token.Token{Kind: token.CHAR, Lexeme: l.own(string(rune(value))), Literal: token.Literal{Char: value, IsChar: true}, Pos: pos}
}

// readEscape decodes the character following a backslash. quoteChar is the
// delimiter in effect ('"' or '\'') so that \" and \' are only accepted in
// their own literal kind.
func (l *Lexer) readEscape(quoteChar rune) (byte, bool) {
	l.readChar() // consume backslash
	ch := l.ch
	switch ch {
	case '\\':
		l.readChar()
		return '\\', true
	case 'n':
		l.readChar()
		return '\n', true
	case 'r':
		l.readChar()
		return '\r', true
	case 't':
		l.readChar()
		return '\t', true
	case '"':
		if quoteChar == '"' {
			l.readChar()
			return '"', true
		}
	case '\'':
		if quoteChar == '\'' {
			l.readChar()
			return '\'', true
		}
	}
	return 0, false
}
