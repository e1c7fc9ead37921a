package internal

import (
	"unicode"
)

type lexer struct {
	source  []rune
	start   int
	current int
	line    int
	col     int

	startLine int
	startCol  int

	tokens []Token
}

var keywords = map[string]TokenType{
	"let":   LET,
	"const": CONST,
	"fn":    FN,
	"if":    IF,
	"else":  ELSE,
}

// Tokenize splits source into tokens, always ending with a single EOF token
func Tokenize(source string) (tokens []Token, err error) {
	defer func() {
		recoverError(recover(), &err)
	}()
	l := &lexer{
		source: []rune(source),
		line:   1,
		col:    1,
	}
	return l.scan(), nil
}

func (l *lexer) scan() []Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.startCol = l.col
		l.scanToken()
	}
	l.start = l.current
	l.startLine = l.line
	l.startCol = l.col
	l.emit(EOF)
	return l.tokens
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(LEFT_PAREN)
	case ')':
		l.emit(RIGHT_PAREN)
	case '{':
		l.emit(LEFT_CURLY_BRACE)
	case '}':
		l.emit(RIGHT_CURLY_BRACE)
	case '[':
		l.emit(LEFT_BRACE)
	case ']':
		l.emit(RIGHT_BRACE)
	case '.':
		l.emit(DOT)
	case ',':
		l.emit(COMMA)
	case ':':
		l.emit(COLON)
	case ';':
		l.emit(SEMICOLON)
	case '=':
		l.emit(EQUAL)
	case '+':
		l.emit(PLUS)
	case '-':
		l.emit(MINUS)
	case '*':
		l.emit(STAR)
	case '/':
		l.emit(SLASH)
	case '%':
		l.emit(MOD)

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++
		l.col = 1

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			panic(&LexError{Char: c, Line: l.startLine, Col: l.startCol})
		}
	}
}

func (l *lexer) number() {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	l.emit(NUMBER)
}

func (l *lexer) identifier() {
	for !l.isAtEnd() && (isAlpha(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}

	tokenType, ok := keywords[string(l.source[l.start:l.current])]
	if !ok {
		tokenType = IDENTIFIER
	}

	l.emit(tokenType)
}

func (l *lexer) advance() rune {
	current := l.source[l.current]
	l.current++
	l.col++
	return current
}

func (l *lexer) peek() rune {
	return l.source[l.current]
}

func (l *lexer) emit(token TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:   token,
		Lexeme: string(l.source[l.start:l.current]),
		Line:   l.startLine,
		Col:    l.startCol,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
