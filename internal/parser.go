package internal

import (
	"strconv"
)

const maxFunctionParams = 255

// parser stores parser data
type parser struct {
	tokens  []Token
	current int
}

// Parse turns source into a Program. The first lexical or syntax error
// aborts parsing.
func Parse(source string) (program *Program, err error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens builds a Program from an EOF terminated token stream
func ParseTokens(tokens []Token) (program *Program, err error) {
	defer func() {
		recoverError(recover(), &err)
	}()
	p := &parser{tokens: tokens}
	return p.parse(), nil
}

func (p *parser) parse() *Program {
	program := &Program{Body: make([]Stmt, 0)}
	for !p.isAtEnd() {
		program.Body = append(program.Body, p.statement())
	}
	return program
}

func (p *parser) statement() Stmt {
	if p.match(LET, CONST) {
		return p.varDeclaration()
	}
	if p.match(FN) {
		return p.fnDeclaration()
	}
	if p.match(IF) {
		return p.ifStmt()
	}
	return p.expressionStmt()
}

func (p *parser) varDeclaration() Stmt {
	constant := p.previous().Type == CONST
	name := p.consume(IDENTIFIER, "identifier")

	if p.match(SEMICOLON) {
		if constant {
			p.fatalError(ErrConstWithoutValue, "'='", p.previous())
		}
		return &VarDeclaration{
			Identifier: name.Lexeme,
			Constant:   false,
		}
	}

	p.consume(EQUAL, "'=' or ';'")
	value := p.expression()
	p.consume(SEMICOLON, "';'")

	return &VarDeclaration{
		Identifier: name.Lexeme,
		Constant:   constant,
		Value:      value,
	}
}

func (p *parser) fnDeclaration() Stmt {
	name := p.consume(IDENTIFIER, "function name")
	p.consume(LEFT_PAREN, "'('")

	params := make([]string, 0)
	if !p.check(RIGHT_PAREN) {
		for {
			if len(params) >= maxFunctionParams {
				p.fatalError(ErrTooManyArguments, "", p.peek())
			}
			start := p.peek()
			param, ok := p.assignment().(*Identifier)
			if !ok {
				p.fatalError(ErrInvalidParameter, "identifier", start)
			}
			params = append(params, param.Symbol)
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_PAREN, "')'")

	p.consume(LEFT_CURLY_BRACE, "'{'")
	body := p.statementsUntilBrace()

	return &FunctionDeclaration{
		Name:       name.Lexeme,
		Parameters: params,
		Body:       body,
	}
}

func (p *parser) ifStmt() Stmt {
	p.consume(LEFT_PAREN, "'('")
	cond := p.expression()
	p.consume(RIGHT_PAREN, "')'")

	st := &IfExpr{
		Cond: cond,
		Then: p.block(),
	}

	if p.match(ELSE) {
		if p.match(IF) {
			st.Else = p.ifStmt()
		} else {
			st.Else = p.block()
		}
	}

	return st
}

func (p *parser) block() *BlockStmt {
	p.consume(LEFT_CURLY_BRACE, "'{'")
	return &BlockStmt{Body: p.statementsUntilBrace()}
}

// statementsUntilBrace parses statements up to and including the closing '}'
func (p *parser) statementsUntilBrace() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.check(RIGHT_CURLY_BRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.statement())
	}
	p.consume(RIGHT_CURLY_BRACE, "'}'")
	return stmts
}

func (p *parser) expressionStmt() Stmt {
	expr := p.expression()
	// A trailing ';' is optional after expressions
	p.match(SEMICOLON)
	return expr
}

func (p *parser) expression() Expr {
	return p.assignment()
}

func (p *parser) assignment() Expr {
	target := p.object()
	if p.match(EQUAL) {
		value := p.assignment()
		return &AssignmentExpr{
			Target: target,
			Value:  value,
		}
	}
	return target
}

func (p *parser) object() Expr {
	if !p.match(LEFT_CURLY_BRACE) {
		return p.addition()
	}

	properties := make([]Property, 0)
	for !p.check(RIGHT_CURLY_BRACE) && !p.isAtEnd() {
		key := p.consume(IDENTIFIER, "object key")

		// Shorthand { key, } or { key }
		if p.match(COMMA) {
			properties = append(properties, Property{Key: key.Lexeme})
			continue
		}
		if p.check(RIGHT_CURLY_BRACE) {
			properties = append(properties, Property{Key: key.Lexeme})
			continue
		}

		p.consume(COLON, "':'")
		value := p.expression()
		properties = append(properties, Property{Key: key.Lexeme, Value: value})

		if !p.check(RIGHT_CURLY_BRACE) {
			p.consume(COMMA, "',' or '}'")
		}
	}
	p.consume(RIGHT_CURLY_BRACE, "'}'")

	return &ObjectLiteral{Properties: properties}
}

func (p *parser) addition() Expr {
	expr := p.multiplication()
	for p.match(PLUS, MINUS) {
		operator := p.previous()
		right := p.multiplication()
		expr = &BinaryExpr{
			Left:     expr,
			Right:    right,
			Operator: operator.Lexeme,
		}
	}
	return expr
}

func (p *parser) multiplication() Expr {
	expr := p.call()
	for p.match(STAR, SLASH, MOD) {
		operator := p.previous()
		right := p.call()
		expr = &BinaryExpr{
			Left:     expr,
			Right:    right,
			Operator: operator.Lexeme,
		}
	}
	return expr
}

func (p *parser) call() Expr {
	expr := p.member()
	for p.match(LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *parser) finishCall(callee Expr) Expr {
	arguments := make([]Expr, 0)
	if !p.check(RIGHT_PAREN) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.fatalError(ErrTooManyArguments, "", p.peek())
			}
			arguments = append(arguments, p.assignment())
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_PAREN, "')'")
	return &CallExpr{
		Callee: callee,
		Args:   arguments,
	}
}

func (p *parser) member() Expr {
	expr := p.primary()
	for {
		if p.match(DOT) {
			if !p.check(IDENTIFIER) {
				p.fatalError(ErrInvalidProperty, "identifier", p.peek())
			}
			name := p.advance()
			expr = &MemberExpr{
				Object:   expr,
				Property: &Identifier{Symbol: name.Lexeme},
				Computed: false,
			}
		} else if p.match(LEFT_BRACE) {
			property := p.expression()
			p.consume(RIGHT_BRACE, "']'")
			expr = &MemberExpr{
				Object:   expr,
				Property: property,
				Computed: true,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) primary() Expr {
	if p.match(IDENTIFIER) {
		return &Identifier{Symbol: p.previous().Lexeme}
	}
	if p.match(NUMBER) {
		// Out of range literals become +Inf
		value, _ := strconv.ParseFloat(p.previous().Lexeme, 64)
		return &NumericLiteral{Value: value}
	}
	if p.match(LEFT_PAREN) {
		expr := p.expression()
		p.consume(RIGHT_PAREN, "')'")
		return expr
	}

	p.fatalError(ErrUnexpectedToken, "expression", p.peek())
	return nil
}

func (p *parser) fatalError(err error, expected string, found Token) {
	panic(&ParseError{
		Err:      err,
		Expected: expected,
		Found:    found,
	})
}

func (p *parser) consume(tk TokenType, expected string) Token {
	if p.check(tk) {
		return p.advance()
	}
	p.fatalError(ErrUnexpectedToken, expected, p.peek())
	return Token{}
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	return p.peek().Type == token
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == EOF
}
