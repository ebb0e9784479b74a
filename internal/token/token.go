// Package token defines the lexical tokens produced by the Sn lexer and
// consumed by the parser.
package token

import "fmt"

// Kind identifies the syntactic category of a Token.
type Kind int

// Token kinds, grouped the way the lexer recognizes them.
const (
	ILLEGAL Kind = iota // lexical error; Lexeme carries the message
	EOF

	// Layout, synthesized from indentation.
	INDENT
	DEDENT
	NEWLINE

	// Literals and names.
	IDENT
	INT
	LONG
	DOUBLE
	CHAR
	STRING
	INTERP_STRING // $"...{expr}..." — raw content only, not yet parsed
	TRUE
	FALSE

	// Keywords.
	FN
	VAR
	RETURN
	IF
	ELSE
	FOR
	WHILE
	IMPORT
	NIL
	AND
	OR

	// Type keywords.
	TYPE_INT
	TYPE_LONG
	TYPE_DOUBLE
	TYPE_CHAR
	TYPE_STR
	TYPE_BOOL
	TYPE_VOID

	// Punctuation.
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	DOT
	COLON
	SEMICOLON

	// Operators.
	PLUS
	PLUS_PLUS
	MINUS
	MINUS_MINUS
	STAR
	SLASH
	PERCENT
	ASSIGN
	EQ
	BANG
	NOT_EQ
	LT
	LT_EQ
	GT
	GT_EQ
	ARROW // "->" or "=>", both yielded as ARROW
)

var names = map[Kind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	INDENT: "INDENT", DEDENT: "DEDENT", NEWLINE: "NEWLINE",
	IDENT: "IDENT", INT: "INT", LONG: "LONG", DOUBLE: "DOUBLE",
	CHAR: "CHAR", STRING: "STRING", INTERP_STRING: "INTERP_STRING",
	TRUE: "true", FALSE: "false",
	FN: "fn", VAR: "var", RETURN: "return", IF: "if", ELSE: "else",
	FOR: "for", WHILE: "while", IMPORT: "import", NIL: "nil",
	AND: "and", OR: "or",
	TYPE_INT: "int", TYPE_LONG: "long", TYPE_DOUBLE: "double",
	TYPE_CHAR: "char", TYPE_STR: "str", TYPE_BOOL: "bool", TYPE_VOID: "void",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]", COMMA: ",", DOT: ".", COLON: ":", SEMICOLON: ";",
	PLUS: "+", PLUS_PLUS: "++", MINUS: "-", MINUS_MINUS: "--",
	STAR: "*", SLASH: "/", PERCENT: "%",
	ASSIGN: "=", EQ: "==", BANG: "!", NOT_EQ: "!=",
	LT: "<", LT_EQ: "<=", GT: ">", GT_EQ: ">=", ARROW: "=>",
}

// String renders the token kind's canonical name, for diagnostics and
// token dumps.
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps identifier spellings to their reserved kind. Resolved via
// a small map rather than the trie the original implementation used —
// Go's map literal is the idiomatic equivalent and the lexer consults it
// exactly once per identifier.
var keywords = map[string]Kind{
	"fn": FN, "var": VAR, "return": RETURN, "if": IF, "else": ELSE,
	"for": FOR, "while": WHILE, "import": IMPORT, "nil": NIL,
	"and": AND, "or": OR, "true": TRUE, "false": FALSE,
	"int": TYPE_INT, "long": TYPE_LONG, "double": TYPE_DOUBLE,
	"char": TYPE_CHAR, "str": TYPE_STR, "bool": TYPE_BOOL, "void": TYPE_VOID,
}

// LookupIdentifier returns the keyword Kind for name, or IDENT if name is
// not reserved.
func LookupIdentifier(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return IDENT
}

// Literal is the decoded payload carried by literal tokens. Exactly one
// field is meaningful, selected by the owning Token's Kind.
type Literal struct {
	Int    int64
	Float  float64
	Char   byte
	Str    string // string/interpolated-string bytes, not null-terminated in memory
	Bool   bool
	IsChar bool
}

// Position locates a token within a source file.
type Position struct {
	Line     int
	Filename string
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// Token is an immutable record of one lexeme.
type Token struct {
	Kind    Kind
	Lexeme  string // arena-owned copy of the source bytes for this token
	Literal Literal
	Pos     Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Pos)
}
