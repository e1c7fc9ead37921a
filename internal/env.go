package internal

// Env is a lexical scope. Lookups and assignments walk the enclosing chain;
// declarations only touch this scope.
type Env struct {
	enclosing *Env
	values    map[string]Value
	constants map[string]struct{}
}

// NewEnv creates a scope nested in enclosing, nil creates a root scope
func NewEnv(enclosing *Env) *Env {
	return &Env{
		enclosing: enclosing,
		values:    make(map[string]Value),
		constants: make(map[string]struct{}),
	}
}

// Enclosing returns the parent scope, nil for a root scope
func (e *Env) Enclosing() *Env {
	return e.enclosing
}

// Declare binds name in this scope
func (e *Env) Declare(name string, value Value, constant bool) (v Value, err error) {
	defer func() {
		recoverError(recover(), &err)
	}()
	return e.DeclareVar(name, value, constant), nil
}

// Assign rebinds the nearest visible name
func (e *Env) Assign(name string, value Value) (v Value, err error) {
	defer func() {
		recoverError(recover(), &err)
	}()
	return e.AssignVar(name, value), nil
}

// Lookup returns the value of the nearest visible name
func (e *Env) Lookup(name string) (v Value, err error) {
	defer func() {
		recoverError(recover(), &err)
	}()
	return e.LookupVar(name), nil
}

// DeclareVar is Declare raising an *EvalError by panic, for use inside
// evaluation
func (e *Env) DeclareVar(name string, value Value, constant bool) Value {
	if _, ok := e.values[name]; ok {
		runtimeErr(ErrRedeclared, name)
	}
	if value == nil {
		value = Null{}
	}
	e.values[name] = value
	if constant {
		e.constants[name] = struct{}{}
	}
	return value
}

func (e *Env) AssignVar(name string, value Value) Value {
	env := e.resolve(name)
	if value == nil {
		value = Null{}
	}
	if _, ok := env.constants[name]; ok {
		runtimeErr(ErrConstAssign, name)
	}
	env.values[name] = value
	return value
}

func (e *Env) LookupVar(name string) Value {
	return e.resolve(name).values[name]
}

func (e *Env) resolve(name string) *Env {
	if _, ok := e.values[name]; ok {
		return e
	}
	if e.enclosing != nil {
		return e.enclosing.resolve(name)
	}
	runtimeErr(ErrUndefinedVar, name)
	return nil
}
