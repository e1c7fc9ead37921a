package internal

import "fmt"

// TokenType identifies the kind of a token
type TokenType int

const (
	EOF TokenType = iota - 1

	// Literals.
	// number, *variable*
	NUMBER
	IDENTIFIER

	// Keywords.
	// let, const, fn, if, else
	LET
	CONST
	FN
	IF
	ELSE

	// Single-character tokens.
	// =, ',', ., :, ;, (, ), {, }, [, ]
	EQUAL
	COMMA
	DOT
	COLON
	SEMICOLON
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_CURLY_BRACE
	RIGHT_CURLY_BRACE
	LEFT_BRACE
	RIGHT_BRACE

	// Operators.
	// +, -, *, /, %
	PLUS
	MINUS
	STAR
	SLASH
	MOD
)

var tokenNames = map[TokenType]string{
	EOF:               "EOF",
	NUMBER:            "Number",
	IDENTIFIER:        "Identifier",
	LET:               "Let",
	CONST:             "Const",
	FN:                "Fn",
	IF:                "If",
	ELSE:              "Else",
	EQUAL:             "Equals",
	COMMA:             "Comma",
	DOT:               "Dot",
	COLON:             "Colon",
	SEMICOLON:         "Semicolon",
	LEFT_PAREN:        "OpenParen",
	RIGHT_PAREN:       "CloseParen",
	LEFT_CURLY_BRACE:  "OpenBrace",
	RIGHT_CURLY_BRACE: "CloseBrace",
	LEFT_BRACE:        "OpenBracket",
	RIGHT_BRACE:       "CloseBracket",
	PLUS:              "Plus",
	MINUS:             "Minus",
	STAR:              "Star",
	SLASH:             "Slash",
	MOD:               "Mod",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexeme produced by the lexer
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}
