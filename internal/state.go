package internal

import (
	"errors"
	"fmt"
)

// Lexer errors
var ErrUnrecognizedChar = errors.New("Unrecognized character")

// Parser errors
var ErrUnexpectedToken = errors.New("Unexpected token")
var ErrConstWithoutValue = errors.New("Constant declared without a value")
var ErrInvalidParameter = errors.New("Function parameters must be identifiers")
var ErrInvalidProperty = errors.New("Expected property name after '.'")
var ErrTooManyArguments = errors.New("Max number of arguments is 255")

// Runtime errors
var ErrUndefinedVar = errors.New("Undefined variable")
var ErrRedeclared = errors.New("Variable already declared in this scope")
var ErrConstAssign = errors.New("Cannot reassign constant")
var ErrInvalidAssignTarget = errors.New("Invalid assignment target")
var ErrNotCallable = errors.New("Only functions can be called")
var ErrNotObject = errors.New("Only objects have properties")
var ErrUndefinedOp = errors.New("Undefined operator")
var ErrCallDepth = errors.New("Maximum call depth exceeded")
var ErrNative = errors.New("Native function failed")

// LexError reports a character the lexer cannot place in any token
type LexError struct {
	Char rune
	Line int
	Col  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %q on line %d, column %d", ErrUnrecognizedChar, e.Char, e.Line, e.Col)
}

func (e *LexError) Unwrap() error {
	return ErrUnrecognizedChar
}

// ParseError reports a token that does not fit the grammar
type ParseError struct {
	Err      error
	Expected string
	Found    Token
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	return fmt.Sprintf("%s, found %s on line %d, column %d", msg, e.Found, e.Found.Line, e.Found.Col)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsIncomplete reports whether err comes from source that ended before a
// construct was closed, so more input could make it parse
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr) && parseErr.Found.Type == EOF
}

// EvalError reports a failure while evaluating a node
type EvalError struct {
	Err     error
	Subject string
}

func (e *EvalError) Error() string {
	if e.Subject == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Subject
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func runtimeErr(err error, subject string) {
	panic(&EvalError{Err: err, Subject: subject})
}

func runtimeErrf(err error, format string, a ...interface{}) {
	runtimeErr(err, fmt.Sprintf(format, a...))
}

// recoverError converts a rill error raised by panic into a returned error.
// Any other panic keeps unwinding.
func recoverError(r interface{}, err *error) {
	switch e := r.(type) {
	case nil:
	case *LexError:
		*err = e
	case *ParseError:
		*err = e
	case *EvalError:
		*err = e
	default:
		panic(r)
	}
}
