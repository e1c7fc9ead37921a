package internal

import (
	"os"
)

// RunSource parses source and evaluates it in env. env is kept between
// calls, which is what a REPL needs.
func RunSource(source string, env *Env, opts ...Option) (Value, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return NewInterpreter(opts...).Evaluate(program, env)
}

// RunSourceWithPrinter runs source code on a fresh global scope. Errors
// are reported through p.
func RunSourceWithPrinter(source string, p IPrinter, opts ...Option) bool {
	env := NewGlobalEnv(p)
	if _, err := RunSource(source, env, opts...); err != nil {
		p.Fprintln(os.Stderr, err)
		return false
	}
	return true
}
