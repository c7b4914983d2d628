package vm

import "fmt"

// Method is a built-in implementation bound to a (kind, selector) pair.
type Method interface {
	Invoke(rt *Runtime, receiver Value, args []Value) (Value, error)
	Name() string
	// Arity is the number of arguments the method takes, -1 if variable.
	Arity() int
}

// PrimitiveFunc is a built-in taking any number of arguments.
type PrimitiveFunc func(rt *Runtime, receiver Value, args []Value) (Value, error)

// Method0Func is a built-in taking no arguments.
type Method0Func func(rt *Runtime, receiver Value) (Value, error)

// Method1Func is a built-in taking one argument.
type Method1Func func(rt *Runtime, receiver Value, arg1 Value) (Value, error)

// Method2Func is a built-in taking two arguments.
type Method2Func func(rt *Runtime, receiver Value, arg1, arg2 Value) (Value, error)

// ---------------------------------------------------------------------------
// Arity-specialized method wrappers
// ---------------------------------------------------------------------------

// PrimitiveMethod wraps a PrimitiveFunc as a Method.
type PrimitiveMethod struct {
	name string
	fn   PrimitiveFunc
}

func (m *PrimitiveMethod) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	return m.fn(rt, receiver, args)
}

func (m *PrimitiveMethod) Name() string { return m.name }
func (m *PrimitiveMethod) Arity() int   { return -1 }

// Method0 wraps a zero-argument built-in.
type Method0 struct {
	name string
	fn   Method0Func
}

func (m *Method0) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	if err := checkArity(m, args); err != nil {
		return Nil, err
	}
	return m.fn(rt, receiver)
}

func (m *Method0) Name() string { return m.name }
func (m *Method0) Arity() int   { return 0 }

// Method1 wraps a one-argument built-in.
type Method1 struct {
	name string
	fn   Method1Func
}

func (m *Method1) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	if err := checkArity(m, args); err != nil {
		return Nil, err
	}
	return m.fn(rt, receiver, args[0])
}

func (m *Method1) Name() string { return m.name }
func (m *Method1) Arity() int   { return 1 }

// Method2 wraps a two-argument built-in.
type Method2 struct {
	name string
	fn   Method2Func
}

func (m *Method2) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	if err := checkArity(m, args); err != nil {
		return Nil, err
	}
	return m.fn(rt, receiver, args[0], args[1])
}

func (m *Method2) Name() string { return m.name }
func (m *Method2) Arity() int   { return 2 }

// checkArity guards the wrappers against indexing past args. Arity belongs
// to each method's contract; Send itself never looks at it.
func checkArity(m Method, args []Value) error {
	if len(args) != m.Arity() {
		return fmt.Errorf("%s expects %d argument(s), got %d: %w",
			m.Name(), m.Arity(), len(args), ErrInvalidArgument)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Factory functions
// ---------------------------------------------------------------------------

// NewPrimitiveMethod creates a new built-in with variable arity.
func NewPrimitiveMethod(name string, fn PrimitiveFunc) Method {
	return &PrimitiveMethod{name: name, fn: fn}
}

// NewMethod0 creates a new zero-argument built-in.
func NewMethod0(name string, fn Method0Func) Method {
	return &Method0{name: name, fn: fn}
}

// NewMethod1 creates a new one-argument built-in.
func NewMethod1(name string, fn Method1Func) Method {
	return &Method1{name: name, fn: fn}
}

// NewMethod2 creates a new two-argument built-in.
func NewMethod2(name string, fn Method2Func) Method {
	return &Method2{name: name, fn: fn}
}
