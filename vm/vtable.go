package vm

import "fmt"

// MethodTable holds the built-in methods for one receiver kind.
//
// Methods are stored in a slice indexed by Symbol ID, so lookup is a
// bounds check and an index. There is no parent table: a selector missing
// here is missing for the kind.
//
// A table is filled during Runtime bootstrap and then sealed; after that
// it is read-only.
type MethodTable struct {
	kind    Kind
	methods []Method // indexed by Symbol
	count   int
	sealed  bool
}

// NewMethodTable creates an empty table for kind.
func NewMethodTable(kind Kind) *MethodTable {
	return &MethodTable{
		kind:    kind,
		methods: make([]Method, 0, 32),
	}
}

// Kind returns the receiver kind this table serves.
func (mt *MethodTable) Kind() Kind {
	return mt.kind
}

// Lookup returns the method for sel, or nil if there is none.
func (mt *MethodTable) Lookup(sel Symbol) Method {
	if int(sel) < len(mt.methods) {
		return mt.methods[sel]
	}
	return nil
}

// Has returns true if the table has a method for sel.
func (mt *MethodTable) Has(sel Symbol) bool {
	return mt.Lookup(sel) != nil
}

// Define binds method to sel, growing the slice as needed.
// Panics if the table has been sealed.
func (mt *MethodTable) Define(sel Symbol, method Method) {
	if mt.sealed {
		panic(fmt.Sprintf("MethodTable.Define: %s table is sealed", mt.kind))
	}
	if int(sel) >= len(mt.methods) {
		grown := make([]Method, int(sel)+1)
		copy(grown, mt.methods)
		mt.methods = grown
	}
	if mt.methods[sel] == nil {
		mt.count++
	}
	mt.methods[sel] = method
}

// Seal makes the table read-only.
func (mt *MethodTable) Seal() {
	mt.sealed = true
}

// Sealed reports whether Seal has been called.
func (mt *MethodTable) Sealed() bool {
	return mt.sealed
}

// Len returns the number of defined methods.
func (mt *MethodTable) Len() int {
	return mt.count
}

// Selectors returns the symbols that have methods, in ID order.
func (mt *MethodTable) Selectors() []Symbol {
	result := make([]Symbol, 0, mt.count)
	for i, m := range mt.methods {
		if m != nil {
			result = append(result, Symbol(i))
		}
	}
	return result
}
