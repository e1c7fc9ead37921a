package internal

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// DefaultMaxCallDepth bounds nested function calls
const DefaultMaxCallDepth = 10000

// Interpreter evaluates AST nodes. It keeps the current scope and call
// depth so it must not be shared between goroutines.
type Interpreter struct {
	log          *logrus.Entry
	maxCallDepth int

	env   *Env
	depth int
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger routes evaluation tracing to logger
func WithLogger(logger *logrus.Logger) Option {
	return func(e *Interpreter) {
		e.log = logger.WithField("component", "exec")
	}
}

// WithMaxCallDepth overrides DefaultMaxCallDepth, n <= 0 keeps the default
func WithMaxCallDepth(n int) Option {
	return func(e *Interpreter) {
		if n > 0 {
			e.maxCallDepth = n
		}
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	e := &Interpreter{
		log:          logrus.StandardLogger().WithField("component", "exec"),
		maxCallDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate reduces node to a value using a default Interpreter
func Evaluate(node Node, env *Env) (Value, error) {
	return NewInterpreter().Evaluate(node, env)
}

// Evaluate reduces node to a value in env. Any failure aborts the whole
// evaluation and is returned as an *EvalError.
func (e *Interpreter) Evaluate(node Node, env *Env) (result Value, err error) {
	if env == nil {
		env = NewEnv(nil)
	}
	defer func() {
		recoverError(recover(), &err)
		if err != nil {
			result = nil
		}
	}()
	return e.execute(node, env), nil
}

func (e *Interpreter) execute(node Node, env *Env) Value {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	return e.eval(node)
}

func (e *Interpreter) executeBlock(stmts []Stmt, env *Env) Value {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	var result Value = Null{}
	for _, s := range stmts {
		result = e.eval(s)
	}
	return result
}

func (e *Interpreter) eval(node Node) Value {
	if e.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		e.log.WithField("kind", node.Kind()).Trace("eval")
	}
	return node.accept(e).(Value)
}

func (e *Interpreter) visitProgram(node *Program) R {
	var result Value = Null{}
	for _, s := range node.Body {
		result = e.eval(s)
	}
	return result
}

func (e *Interpreter) visitVarDeclaration(node *VarDeclaration) R {
	var value Value = Null{}
	if node.Value != nil {
		value = e.eval(node.Value)
	}
	e.log.WithFields(logrus.Fields{
		"name":     node.Identifier,
		"constant": node.Constant,
	}).Debug("declare")
	return e.env.DeclareVar(node.Identifier, value, node.Constant)
}

func (e *Interpreter) visitFunctionDeclaration(node *FunctionDeclaration) R {
	fn := &Function{
		Name:       node.Name,
		Parameters: node.Parameters,
		Body:       node.Body,
		Closure:    e.env,
	}
	e.log.WithField("name", node.Name).Debug("declare function")
	return e.env.DeclareVar(node.Name, fn, true)
}

func (e *Interpreter) visitBlockStmt(node *BlockStmt) R {
	return e.executeBlock(node.Body, NewEnv(e.env))
}

func (e *Interpreter) visitIfExpr(node *IfExpr) R {
	if truthy(e.eval(node.Cond)) {
		return e.eval(node.Then)
	}
	if node.Else != nil {
		return e.eval(node.Else)
	}
	return Null{}
}

func (e *Interpreter) visitAssignmentExpr(node *AssignmentExpr) R {
	target, ok := node.Target.(*Identifier)
	if !ok {
		runtimeErr(ErrInvalidAssignTarget, PrintTree(node.Target))
	}
	value := e.eval(node.Value)
	return e.env.AssignVar(target.Symbol, value)
}

func (e *Interpreter) visitBinaryExpr(node *BinaryExpr) R {
	left := e.eval(node.Left)
	right := e.eval(node.Right)

	leftNum, ok := left.(Number)
	if !ok {
		return Null{}
	}
	rightNum, ok := right.(Number)
	if !ok {
		return Null{}
	}

	switch node.Operator {
	case "+":
		return leftNum + rightNum
	case "-":
		return leftNum - rightNum
	case "*":
		return leftNum * rightNum
	case "/":
		return leftNum / rightNum
	case "%":
		return Number(math.Mod(float64(leftNum), float64(rightNum)))
	}
	runtimeErr(ErrUndefinedOp, node.Operator)
	return nil
}

func (e *Interpreter) visitCallExpr(node *CallExpr) R {
	callee := e.eval(node.Callee)
	arguments := make([]Value, len(node.Args))
	for i, arg := range node.Args {
		arguments[i] = e.eval(arg)
	}

	switch fn := callee.(type) {
	case *NativeFunction:
		e.log.WithField("name", fn.Name).Debug("call native")
		result, err := fn.Call(arguments, e.env)
		if err != nil {
			panic(&EvalError{
				Err:     fmt.Errorf("%w: %w", ErrNative, err),
				Subject: fn.Name,
			})
		}
		if result == nil {
			return Null{}
		}
		return result
	case *Function:
		return e.call(fn, arguments)
	}

	runtimeErrf(ErrNotCallable, "%s is %s", PrintTree(node.Callee), callee.Type())
	return nil
}

func (e *Interpreter) call(fn *Function, arguments []Value) Value {
	if e.depth >= e.maxCallDepth {
		runtimeErrf(ErrCallDepth, "%d calls deep in %s", e.depth, fn.Name)
	}
	e.depth++
	defer func() {
		e.depth--
	}()

	e.log.WithFields(logrus.Fields{
		"name":  fn.Name,
		"depth": e.depth,
	}).Debug("call")

	scope := NewEnv(fn.Closure)
	for i, param := range fn.Parameters {
		// Missing arguments are null
		var arg Value = Null{}
		if i < len(arguments) {
			arg = arguments[i]
		}
		scope.DeclareVar(param, arg, false)
	}

	return e.executeBlock(fn.Body, scope)
}

func (e *Interpreter) visitMemberExpr(node *MemberExpr) R {
	value := e.eval(node.Object)
	object, ok := value.(*Object)
	if !ok {
		runtimeErrf(ErrNotObject, "%s is %s", PrintTree(node.Object), value.Type())
	}

	var key string
	if node.Computed {
		key = e.eval(node.Property).String()
	} else {
		property, ok := node.Property.(*Identifier)
		if !ok {
			runtimeErr(ErrInvalidProperty, PrintTree(node.Property))
		}
		key = property.Symbol
	}

	if v, ok := object.Get(key); ok {
		return v
	}
	return Null{}
}

func (e *Interpreter) visitObjectLiteral(node *ObjectLiteral) R {
	object := NewObject()
	for _, prop := range node.Properties {
		var value Value
		if prop.Value == nil {
			value = e.env.LookupVar(prop.Key)
		} else {
			value = e.eval(prop.Value)
		}
		object.Set(prop.Key, value)
	}
	return object
}

func (e *Interpreter) visitIdentifier(node *Identifier) R {
	return e.env.LookupVar(node.Symbol)
}

func (e *Interpreter) visitNumericLiteral(node *NumericLiteral) R {
	return Number(node.Value)
}
