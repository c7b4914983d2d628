package vm

import (
	"errors"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// SymbolTable tests
// ---------------------------------------------------------------------------

func TestSymbolTableIntern(t *testing.T) {
	st := NewSymbolTable()

	// First intern should get ID 0
	id1 := st.Intern("+")
	if id1 != 0 {
		t.Errorf("first Intern got ID %d, want 0", id1)
	}

	// Second intern of same name should get same ID
	if id2 := st.Intern("+"); id2 != id1 {
		t.Errorf("re-Intern got ID %d, want %d", id2, id1)
	}

	// Different name should get different ID
	id3 := st.Intern("[]")
	if id3 == id1 {
		t.Error("different name should get different ID")
	}
	if id3 != 1 {
		t.Errorf("second unique Intern got ID %d, want 1", id3)
	}
}

func TestSymbolTableLookup(t *testing.T) {
	st := NewSymbolTable()
	st.Intern("foo")
	st.Intern("bar")

	if id, ok := st.Lookup("bar"); !ok || id != 1 {
		t.Errorf("Lookup(bar) = %d, %v, want 1, true", id, ok)
	}
	if _, ok := st.Lookup("baz"); ok {
		t.Error("Lookup(baz) should not find anything")
	}
	if st.Len() != 2 {
		t.Errorf("Lookup must not insert: Len() = %d, want 2", st.Len())
	}
}

func TestSymbolTableName(t *testing.T) {
	st := NewSymbolTable()
	hello := st.Intern("hello")
	world := st.Intern("world")

	if st.Name(hello) != "hello" || st.Name(world) != "world" {
		t.Errorf("Name mismatch: %q %q", st.Name(hello), st.Name(world))
	}
	if st.Name(Symbol(99)) != "" {
		t.Error("Name of unknown symbol should be empty")
	}
}

func TestSymbolTableGrowsOnly(t *testing.T) {
	st := NewSymbolTableWithCapacity(2)
	names := []string{"a", "b", "c", "d", "a", "c"}
	for _, n := range names {
		st.Intern(n)
	}
	if got := st.All(); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("All() = %v", got)
	}
}

func TestSymbolTableEmptyName(t *testing.T) {
	st := NewSymbolTable()
	a := st.Intern("")
	b := st.Intern("")
	if a != b {
		t.Error("empty name should intern to a stable symbol")
	}
}

// ---------------------------------------------------------------------------
// MethodTable tests
// ---------------------------------------------------------------------------

func TestMethodTableDefineLookup(t *testing.T) {
	mt := NewMethodTable(KindFixnum)
	m := NewMethod0("zero", func(_ *Runtime, _ Value) (Value, error) {
		return FromFixnum(0), nil
	})

	mt.Define(Symbol(40), m)
	if mt.Lookup(Symbol(40)) != m {
		t.Error("Lookup did not return defined method")
	}
	if mt.Lookup(Symbol(3)) != nil || mt.Lookup(Symbol(1000)) != nil {
		t.Error("Lookup of undefined selector should be nil")
	}
	if mt.Len() != 1 {
		t.Errorf("Len() = %d, want 1", mt.Len())
	}

	// Redefinition replaces without changing the count
	mt.Define(Symbol(40), m)
	if mt.Len() != 1 {
		t.Errorf("Len() after redefinition = %d, want 1", mt.Len())
	}
	if got := mt.Selectors(); !slices.Equal(got, []Symbol{40}) {
		t.Errorf("Selectors() = %v", got)
	}
}

func TestMethodTableSealed(t *testing.T) {
	mt := NewMethodTable(KindString)
	mt.Seal()
	if !mt.Sealed() {
		t.Fatal("Sealed() = false after Seal")
	}

	defer func() {
		if recover() == nil {
			t.Error("Define on sealed table should panic")
		}
	}()
	mt.Define(Symbol(0), NewMethod0("x", func(_ *Runtime, v Value) (Value, error) { return v, nil }))
}

func TestRuntimeTablesSealedAfterBootstrap(t *testing.T) {
	rt := NewRuntime()
	for k := KindNil; k < numKinds; k++ {
		mt := rt.MethodTable(k)
		if mt == nil || !mt.Sealed() {
			t.Errorf("%s table not sealed", k)
		}
		if mt.Kind() != k {
			t.Errorf("table for %s reports kind %s", k, mt.Kind())
		}
	}
	if rt.MethodTable(numKinds) != nil {
		t.Error("MethodTable of invalid kind should be nil")
	}
}

// ---------------------------------------------------------------------------
// Method arity tests
// ---------------------------------------------------------------------------

func TestMethodArity(t *testing.T) {
	tests := []struct {
		m    Method
		want int
	}{
		{NewMethod0("a", nil), 0},
		{NewMethod1("b", nil), 1},
		{NewMethod2("c", nil), 2},
		{NewPrimitiveMethod("d", nil), -1},
	}
	for _, tt := range tests {
		if got := tt.m.Arity(); got != tt.want {
			t.Errorf("%s.Arity() = %d, want %d", tt.m.Name(), got, tt.want)
		}
	}
}

func TestMethodWrongArgCount(t *testing.T) {
	rt := NewRuntime()
	s := rt.NewStringFromGo("ohaie")

	_, err := rt.SendName(s, "[]", []Value{FromFixnum(1)})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("[] with one arg: err = %v, want ErrInvalidArgument", err)
	}
	_, err = rt.SendName(s, "+", nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("+ with no args: err = %v, want ErrInvalidArgument", err)
	}
}

func TestPrimitiveMethodPassesArgs(t *testing.T) {
	m := NewPrimitiveMethod("count", func(_ *Runtime, _ Value, args []Value) (Value, error) {
		return FromFixnum(int64(len(args))), nil
	})
	got, err := m.Invoke(nil, Nil, []Value{Nil, Nil, Nil})
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := got.Fixnum(); n != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

// ---------------------------------------------------------------------------
// Send tests
// ---------------------------------------------------------------------------

func TestSendNoMethod(t *testing.T) {
	rt := NewRuntime()
	sel := rt.Intern("frobnicate")

	receivers := []Value{Nil, True, FromFixnum(1), rt.NewStringFromGo("x")}
	for _, recv := range receivers {
		got, err := rt.Send(recv, sel, nil)
		if err == nil {
			t.Errorf("send to %s returned %v without error", recv.Kind(), got)
			continue
		}
		if !errors.Is(err, ErrNoMethod) {
			t.Errorf("send to %s: err = %v, want ErrNoMethod", recv.Kind(), err)
		}
		var de *DispatchError
		if !errors.As(err, &de) {
			t.Fatalf("err is %T, want *DispatchError", err)
		}
		if de.Kind != recv.Kind() || de.Selector != "frobnicate" {
			t.Errorf("DispatchError = %+v", de)
		}
		if got != Nil {
			t.Errorf("failed send returned %v", got)
		}
	}
}

func TestSendNoInheritanceAcrossKinds(t *testing.T) {
	rt := NewRuntime()

	// nil? is defined on nil only
	if _, err := rt.SendName(FromFixnum(1), "nil?", nil); !errors.Is(err, ErrNoMethod) {
		t.Errorf("fixnum nil?: err = %v, want ErrNoMethod", err)
	}
	// size is defined on String only
	if _, err := rt.SendName(Nil, "size", nil); !errors.Is(err, ErrNoMethod) {
		t.Errorf("nil size: err = %v, want ErrNoMethod", err)
	}
}

func TestSendUnknownSymbol(t *testing.T) {
	rt := NewRuntime()
	_, err := rt.Send(Nil, Symbol(1<<20), nil)
	if !errors.Is(err, ErrNoMethod) {
		t.Errorf("err = %v, want ErrNoMethod", err)
	}
}

func TestSendWrapsMethodErrors(t *testing.T) {
	rt := NewRuntime()
	_, err := rt.SendName(rt.NewStringFromGo("a"), "+", []Value{FromFixnum(1)})

	var de *DispatchError
	if !errors.As(err, &de) {
		t.Fatalf("err is %T, want *DispatchError", err)
	}
	if de.Kind != KindString || de.Selector != "+" {
		t.Errorf("DispatchError = %+v", de)
	}
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrTypeMismatch", err)
	}
}

func TestDispatchErrorMessage(t *testing.T) {
	err := &DispatchError{Kind: KindFixnum, Selector: "nil?", Err: ErrNoMethod}
	if got := err.Error(); got != "fixnum#nil?: no method" {
		t.Errorf("Error() = %q", got)
	}
}

func TestRespondsTo(t *testing.T) {
	rt := NewRuntime()
	plus := rt.Intern("+")

	if !rt.RespondsTo(KindString, plus) || !rt.RespondsTo(KindFixnum, plus) {
		t.Error("String and Fixnum should respond to +")
	}
	if rt.RespondsTo(KindNil, plus) {
		t.Error("nil should not respond to +")
	}
	if rt.RespondsTo(numKinds, plus) {
		t.Error("invalid kind should not respond to anything")
	}
}

func TestSelectors(t *testing.T) {
	rt := NewRuntime()
	got := rt.Selectors(KindString)
	for _, want := range []string{"+", "[]", "==", "size", "to_s", "empty?"} {
		if !slices.Contains(got, want) {
			t.Errorf("String selectors %v missing %q", got, want)
		}
	}
	if rt.Selectors(numKinds) != nil {
		t.Error("Selectors of invalid kind should be nil")
	}
}

func TestTraceDispatchOption(t *testing.T) {
	opts := DefaultOptions()
	opts.TraceDispatch = true
	rt := NewRuntimeWithOptions(opts)

	got, err := rt.SendName(FromFixnum(2), "+", []Value{FromFixnum(3)})
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := got.Fixnum(); n != 5 {
		t.Errorf("2 + 3 = %v", got)
	}
}
