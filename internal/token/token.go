// Package token defines the lexical token kinds produced by the scanner
// and consumed by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// single-character punctuation
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two character punctuation
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	StringLit
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	Eof
)

var names = [...]string{
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	LeftBrace:     "LeftBrace",
	RightBrace:    "RightBrace",
	Comma:         "Comma",
	Dot:           "Dot",
	Minus:         "Minus",
	Plus:          "Plus",
	Semicolon:     "Semicolon",
	Slash:         "Slash",
	Star:          "Star",
	Bang:          "Bang",
	BangEqual:     "BangEqual",
	Equal:         "Equal",
	EqualEqual:    "EqualEqual",
	Greater:       "Greater",
	GreaterEqual:  "GreaterEqual",
	Less:          "Less",
	LessEqual:     "LessEqual",
	Identifier:    "Identifier",
	StringLit:     "StringLit",
	Number:        "Number",
	And:           "And",
	Class:         "Class",
	Else:          "Else",
	False:         "False",
	Fun:           "Fun",
	For:           "For",
	If:            "If",
	Nil:           "Nil",
	Or:            "Or",
	Print:         "Print",
	Return:        "Return",
	Super:         "Super",
	This:          "This",
	True:          "True",
	Var:           "Var",
	While:         "While",
	Eof:           "Eof",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// Keywords maps reserved identifiers to their Kind.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is an immutable lexeme produced by the scanner. NumberLiteral is
// only meaningful when Kind == Number; StringLiteral only when
// Kind == StringLit.
type Token struct {
	Kind          Kind
	Lexeme        string
	NumberLiteral float64
	StringLiteral string
	Line          int
}

// Equal compares tokens by kind and lexeme.
func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind && t.Lexeme == o.Lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (line %d)", t.Kind, t.Lexeme, t.Line)
}
