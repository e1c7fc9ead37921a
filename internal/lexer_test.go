package internal

import (
	"errors"
	"testing"
)

func checkTokens(t *testing.T, source string, expected ...TokenType) {
	t.Helper()
	tokens, err := Tokenize(source)
	if err != nil {
		t.Errorf("Error on: %q\n\tunexpected error %v", source, err)
		return
	}
	expected = append(expected, EOF)
	if len(tokens) != len(expected) {
		t.Errorf("Error on: %q\n\texpected %v tokens instead of %v", source, expected, tokens)
		return
	}
	for i := range tokens {
		if tokens[i].Type != expected[i] {
			t.Errorf("Error on: %q\n\ttoken %d should be %s instead of %s", source, i, expected[i], tokens[i].Type)
		}
	}
}

func TestTokenKinds(t *testing.T) {
	// Literals
	{
		checkTokens(t, "0", NUMBER)
		checkTokens(t, "1234567890", NUMBER)
		checkTokens(t, "foo", IDENTIFIER)
		checkTokens(t, "_foo_Bar9", IDENTIFIER)
		checkTokens(t, "café", IDENTIFIER)
		checkTokens(t, "Ω1 é", IDENTIFIER, IDENTIFIER)
	}

	// Keywords
	{
		checkTokens(t, "let", LET)
		checkTokens(t, "const", CONST)
		checkTokens(t, "fn", FN)
		checkTokens(t, "if", IF)
		checkTokens(t, "else", ELSE)

		// Maximal munch keeps keyword prefixes as identifiers
		checkTokens(t, "letter", IDENTIFIER)
		checkTokens(t, "constant", IDENTIFIER)
		checkTokens(t, "fns", IDENTIFIER)
	}

	// Punctuation and operators
	{
		checkTokens(t, "(", LEFT_PAREN)
		checkTokens(t, ")", RIGHT_PAREN)
		checkTokens(t, "{", LEFT_CURLY_BRACE)
		checkTokens(t, "}", RIGHT_CURLY_BRACE)
		checkTokens(t, "[", LEFT_BRACE)
		checkTokens(t, "]", RIGHT_BRACE)
		checkTokens(t, ".", DOT)
		checkTokens(t, ",", COMMA)
		checkTokens(t, ":", COLON)
		checkTokens(t, ";", SEMICOLON)
		checkTokens(t, "=", EQUAL)
		checkTokens(t, "+", PLUS)
		checkTokens(t, "-", MINUS)
		checkTokens(t, "*", STAR)
		checkTokens(t, "/", SLASH)
		checkTokens(t, "%", MOD)
	}

	// Whitespace is never emitted
	{
		checkTokens(t, "")
		checkTokens(t, " \t\r\n")
		checkTokens(t, "a\tb\nc", IDENTIFIER, IDENTIFIER, IDENTIFIER)
	}

	// Combinations
	{
		checkTokens(t, "let x = 45;", LET, IDENTIFIER, EQUAL, NUMBER, SEMICOLON)
		checkTokens(t, "1.5", NUMBER, DOT, NUMBER)
		checkTokens(t, "-12", MINUS, NUMBER)
		checkTokens(t, "12ab", NUMBER, IDENTIFIER)
		checkTokens(t, "a1", IDENTIFIER)
		checkTokens(t, "obj[key].prop(1, 2)",
			IDENTIFIER, LEFT_BRACE, IDENTIFIER, RIGHT_BRACE, DOT, IDENTIFIER,
			LEFT_PAREN, NUMBER, COMMA, NUMBER, RIGHT_PAREN)
		checkTokens(t, "{ a: 1, b }", LEFT_CURLY_BRACE, IDENTIFIER, COLON, NUMBER, COMMA, IDENTIFIER, RIGHT_CURLY_BRACE)
	}
}

func TestTokenText(t *testing.T) {
	tokens, err := Tokenize("const answer = 42;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"const", "answer", "=", "42", ";", ""}
	for i, lexeme := range expected {
		if tokens[i].Lexeme != lexeme {
			t.Errorf("token %d should be %q instead of %q", i, lexeme, tokens[i].Lexeme)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	tokens, err := Tokenize("let x\n  = 10\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []struct {
		line, col int
	}{
		{1, 1}, {1, 5}, {2, 3}, {2, 5}, {3, 1},
	}
	for i, pos := range expected {
		if tokens[i].Line != pos.line || tokens[i].Col != pos.col {
			t.Errorf(
				"token %s should be at %d:%d instead of %d:%d",
				tokens[i], pos.line, pos.col, tokens[i].Line, tokens[i].Col,
			)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		source string
		char   rune
		line   int
		col    int
	}{
		{"1 @ 2", '@', 1, 3},
		{"let a = 1;\nlet b = \"x\";", '"', 2, 9},
		{"€", '€', 1, 1},
		{"x$", '$', 1, 2},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.source)
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("Error on: %q\n\texpected a *LexError instead of %v", tt.source, err)
			continue
		}
		if !errors.Is(err, ErrUnrecognizedChar) {
			t.Errorf("Error on: %q\n\terror should wrap ErrUnrecognizedChar", tt.source)
		}
		if lexErr.Char != tt.char || lexErr.Line != tt.line || lexErr.Col != tt.col {
			t.Errorf(
				"Error on: %q\n\texpected %q at %d:%d instead of %q at %d:%d",
				tt.source, tt.char, tt.line, tt.col, lexErr.Char, lexErr.Line, lexErr.Col,
			)
		}
	}

	_, err := Tokenize("1 @")
	if err == nil || err.Error() != `Unrecognized character '@' on line 1, column 3` {
		t.Errorf("unexpected message %v", err)
	}
}
