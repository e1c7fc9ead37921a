package internal

import (
	"fmt"
	"io"
	"time"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// StdPrinter prints to standard output
type StdPrinter struct{}

func (s StdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s StdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s StdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// NewGlobalEnv creates a root scope holding the literals true, false and
// null plus the native functions print and time
func NewGlobalEnv(p IPrinter) *Env {
	e := NewEnv(nil)
	defineGlobals(e, p)
	return e
}

func defineGlobals(e *Env, p IPrinter) {
	e.DeclareVar("true", Boolean(true), true)
	e.DeclareVar("false", Boolean(false), true)
	e.DeclareVar("null", Null{}, true)
	defineIo(e, p)
	defineTime(e)
}

func defineIo(e *Env, p IPrinter) {
	e.DeclareVar("print", NewNativeFunction("print", func(args []Value, env *Env) (Value, error) {
		arguments := make([]interface{}, len(args))
		for i, arg := range args {
			arguments[i] = arg
		}
		if _, err := p.Println(arguments...); err != nil {
			return nil, err
		}
		return Null{}, nil
	}), true)
}

var now = time.Now

func defineTime(e *Env) {
	e.DeclareVar("time", NewNativeFunction("time", func(args []Value, env *Env) (Value, error) {
		return Number(now().UnixNano() / int64(time.Millisecond)), nil
	}), true)
}
