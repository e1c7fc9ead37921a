package internal

import (
	"math"
	"strconv"
	"strings"
)

// ValueType names a runtime value variant
type ValueType string

const (
	NumberType         ValueType = "number"
	BooleanType        ValueType = "boolean"
	NullType           ValueType = "null"
	ObjectType         ValueType = "object"
	FunctionType       ValueType = "function"
	NativeFunctionType ValueType = "native-fn"
)

// Value is a runtime value. The set of variants is closed.
type Value interface {
	Type() ValueType
	String() string
	value()
}

type Number float64

func (n Number) Type() ValueType { return NumberType }
func (n Number) String() string  { return formatNumber(float64(n)) }
func (n Number) value()          {}

type Boolean bool

func (b Boolean) Type() ValueType { return BooleanType }
func (b Boolean) String() string  { return strconv.FormatBool(bool(b)) }
func (b Boolean) value()          {}

type Null struct{}

func (Null) Type() ValueType { return NullType }
func (Null) String() string  { return "null" }
func (Null) value()          {}

// Object maps property names to values. Keys remember insertion order
// so printing is stable.
type Object struct {
	keys       []string
	properties map[string]Value
}

func NewObject() *Object {
	return &Object{properties: make(map[string]Value)}
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.properties[key]
	return v, ok
}

func (o *Object) Set(key string, v Value) {
	if _, ok := o.properties[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.properties[key] = v
}

func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Type() ValueType { return ObjectType }
func (o *Object) value()          {}

func (o *Object) String() string {
	if len(o.keys) == 0 {
		return "{}"
	}
	entries := make([]string, len(o.keys))
	for i, k := range o.keys {
		entries[i] = k + ": " + o.properties[k].String()
	}
	return "{ " + strings.Join(entries, ", ") + " }"
}

// Function is a user declared function together with the environment it
// was declared in
type Function struct {
	Name       string
	Parameters []string
	Body       []Stmt
	Closure    *Env
}

func (f *Function) Type() ValueType { return FunctionType }
func (f *Function) String() string  { return "<fn " + f.Name + ">" }
func (f *Function) value()          {}

// NativeFn is a host callable exposed to scripts
type NativeFn func(args []Value, env *Env) (Value, error)

type NativeFunction struct {
	Name   string
	callFn NativeFn
}

func NewNativeFunction(name string, fn NativeFn) *NativeFunction {
	return &NativeFunction{Name: name, callFn: fn}
}

func (n *NativeFunction) Call(args []Value, env *Env) (Value, error) {
	return n.callFn(args, env)
}

func (n *NativeFunction) Type() ValueType { return NativeFunctionType }
func (n *NativeFunction) String() string  { return "<fn native " + n.Name + ">" }
func (n *NativeFunction) value()          {}

func truthy(v Value) bool {
	switch v := v.(type) {
	case Null:
		return false
	case Boolean:
		return bool(v)
	}
	return true
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
