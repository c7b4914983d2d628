package vm

// ---------------------------------------------------------------------------
// SymbolTable: Interned selector and method names
// ---------------------------------------------------------------------------

// Symbol is an interned name. Two symbols from the same table are equal
// exactly when their names are equal, so dispatch compares integers
// instead of strings.
type Symbol uint32

// SymbolTable interns names to dense, stable Symbol IDs.
//
// The table is append-only: IDs are handed out in first-intern order and
// are never removed or reused. It does no locking; a table belongs to a
// single Runtime and is used from one goroutine at a time.
type SymbolTable struct {
	byName map[string]Symbol // name -> ID
	byID   []string          // ID -> name
}

// NewSymbolTable creates a new empty symbol table.
func NewSymbolTable() *SymbolTable {
	return NewSymbolTableWithCapacity(256)
}

// NewSymbolTableWithCapacity creates an empty table pre-sized for
// capacity names.
func NewSymbolTableWithCapacity(capacity int) *SymbolTable {
	if capacity < 0 {
		capacity = 0
	}
	return &SymbolTable{
		byName: make(map[string]Symbol, capacity),
		byID:   make([]string, 0, capacity),
	}
}

// Intern returns the symbol for name, registering it if needed.
func (st *SymbolTable) Intern(name string) Symbol {
	if id, ok := st.byName[name]; ok {
		return id
	}
	id := Symbol(len(st.byID))
	st.byName[name] = id
	st.byID = append(st.byID, name)
	return id
}

// Lookup returns the symbol for name without registering it.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	id, ok := st.byName[name]
	return id, ok
}

// Name returns the name of sym, or "" if sym was not issued by this table.
func (st *SymbolTable) Name(sym Symbol) string {
	if int(sym) >= len(st.byID) {
		return ""
	}
	return st.byID[sym]
}

// Len returns the number of interned symbols.
func (st *SymbolTable) Len() int {
	return len(st.byID)
}

// All returns all symbol names in ID order.
func (st *SymbolTable) All() []string {
	result := make([]string, len(st.byID))
	copy(result, st.byID)
	return result
}
