package vm

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"
)

// ---------------------------------------------------------------------------
// Runtime: the per-session context
// ---------------------------------------------------------------------------

// Options tune a Runtime at construction.
type Options struct {
	// SymbolCapacity pre-sizes the symbol table.
	SymbolCapacity int

	// TraceDispatch logs every send at debug level.
	TraceDispatch bool

	// Logger receives runtime log lines. Defaults to the "ember.vm" logger.
	Logger commonlog.Logger
}

// DefaultOptions returns the options NewRuntime uses.
func DefaultOptions() Options {
	return Options{SymbolCapacity: 256}
}

// Runtime owns the symbol table and the per-kind method tables for one VM
// session. It holds no package-level state, so independent Runtimes can
// coexist; a single Runtime must not be used from two goroutines at once.
type Runtime struct {
	// ID identifies the session in log output.
	ID uuid.UUID

	Symbols *SymbolTable

	tables        [numKinds]*MethodTable
	log           commonlog.Logger
	traceDispatch bool
}

// NewRuntime creates and bootstraps a Runtime with default options.
func NewRuntime() *Runtime {
	return NewRuntimeWithOptions(DefaultOptions())
}

// NewRuntimeWithOptions creates and bootstraps a Runtime.
func NewRuntimeWithOptions(opts Options) *Runtime {
	log := opts.Logger
	if log == nil {
		log = commonlog.GetLogger("ember.vm")
	}

	rt := &Runtime{
		ID:            uuid.New(),
		Symbols:       NewSymbolTableWithCapacity(opts.SymbolCapacity),
		log:           log,
		traceDispatch: opts.TraceDispatch,
	}
	for k := range rt.tables {
		rt.tables[k] = NewMethodTable(Kind(k))
	}

	rt.bootstrap()
	return rt
}

// ---------------------------------------------------------------------------
// Bootstrap: register built-ins
// ---------------------------------------------------------------------------

func (rt *Runtime) bootstrap() {
	rt.registerNilPrimitives()
	rt.registerBoolPrimitives()
	rt.registerFixnumPrimitives()
	rt.registerStringPrimitives()

	methods := 0
	for _, t := range rt.tables {
		t.Seal()
		methods += t.Len()
	}
	rt.log.Infof("runtime %s ready: %d built-in methods, %d symbols",
		rt.ID, methods, rt.Symbols.Len())
}

func (rt *Runtime) define0(kind Kind, name string, fn Method0Func) {
	rt.tables[kind].Define(rt.Intern(name), NewMethod0(name, fn))
}

func (rt *Runtime) define1(kind Kind, name string, fn Method1Func) {
	rt.tables[kind].Define(rt.Intern(name), NewMethod1(name, fn))
}

func (rt *Runtime) define2(kind Kind, name string, fn Method2Func) {
	rt.tables[kind].Define(rt.Intern(name), NewMethod2(name, fn))
}

// ---------------------------------------------------------------------------
// Value construction
// ---------------------------------------------------------------------------

// NewString creates a String holding a copy of b. It never fails; an
// empty or nil b yields an empty String.
func (rt *Runtime) NewString(b []byte) Value {
	return newStringValue(b)
}

// NewStringFromGo creates a String holding the bytes of s.
func (rt *Runtime) NewStringFromGo(s string) Value {
	return adoptStringValue([]byte(s))
}

// NewFixnum creates a Fixnum.
func (rt *Runtime) NewFixnum(n int64) Value {
	return FromFixnum(n)
}

// ---------------------------------------------------------------------------
// Symbols
// ---------------------------------------------------------------------------

// Intern returns the symbol for name.
func (rt *Runtime) Intern(name string) Symbol {
	return rt.Symbols.Intern(name)
}

// SymbolName returns the name for a symbol.
func (rt *Runtime) SymbolName(sym Symbol) string {
	return rt.Symbols.Name(sym)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

// Send invokes the built-in registered for (receiver's kind, selector).
//
// There is no coercion and no fallback to another kind's table. An
// unregistered pair fails with a *DispatchError wrapping ErrNoMethod.
// Errors from the method come back as *DispatchError too; one that
// already is a *DispatchError (from a nested send) is returned as is.
func (rt *Runtime) Send(receiver Value, selector Symbol, args []Value) (Value, error) {
	kind := receiver.Kind()
	if rt.traceDispatch {
		rt.log.Debugf("[%s] send %s#%s argc=%d",
			rt.ID, kind, rt.SymbolName(selector), len(args))
	}

	method := rt.tables[kind].Lookup(selector)
	if method == nil {
		err := &DispatchError{Kind: kind, Selector: rt.SymbolName(selector), Err: ErrNoMethod}
		rt.log.Debugf("[%s] %v", rt.ID, err)
		return Nil, err
	}

	result, err := method.Invoke(rt, receiver, args)
	if err != nil {
		var de *DispatchError
		if errors.As(err, &de) {
			return Nil, err
		}
		return Nil, &DispatchError{Kind: kind, Selector: method.Name(), Err: err}
	}
	return result, nil
}

// SendName interns name and sends it.
func (rt *Runtime) SendName(receiver Value, name string, args []Value) (Value, error) {
	return rt.Send(receiver, rt.Intern(name), args)
}

// RespondsTo reports whether kind has a built-in for selector.
func (rt *Runtime) RespondsTo(kind Kind, selector Symbol) bool {
	if kind >= numKinds {
		return false
	}
	return rt.tables[kind].Has(selector)
}

// MethodTable returns the table for kind, or nil for an invalid kind.
// The table is sealed.
func (rt *Runtime) MethodTable(kind Kind) *MethodTable {
	if kind >= numKinds {
		return nil
	}
	return rt.tables[kind]
}

// Selectors returns the names of kind's built-ins in symbol order.
func (rt *Runtime) Selectors(kind Kind) []string {
	mt := rt.MethodTable(kind)
	if mt == nil {
		return nil
	}
	syms := mt.Selectors()
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = rt.SymbolName(s)
	}
	return names
}
