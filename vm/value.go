package vm

import (
	"bytes"
	"cmp"
)

// Kind is the discriminant of a Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindFixnum
	KindString

	numKinds
)

var kindNames = [numKinds]string{
	KindNil:    "nil",
	KindBool:   "bool",
	KindFixnum: "fixnum",
	KindString: "string",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "invalid"
}

// Value is the uniform representation of every runtime datum.
//
// Encoding:
//   - Nil: the zero Value
//   - Bool: n is 0 or 1
//   - Fixnum: n holds the integer inline
//   - String: str points at storage owned by this value
//
// Values are comparable with ==. For Nil, True and False that is an
// identity test; for Strings it compares storage identity, use Equal
// for content.
type Value struct {
	kind Kind
	n    int64
	str  *stringStorage
}

// stringStorage is length-prefixed; no terminator is stored or assumed.
// The bytes are never written after construction.
type stringStorage struct {
	data []byte
}

// Canonical singletons.
var (
	Nil   = Value{}
	True  = Value{kind: KindBool, n: 1}
	False = Value{kind: KindBool, n: 0}
)

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// FromFixnum creates a Fixnum value. Nothing is allocated.
func FromFixnum(n int64) Value {
	return Value{kind: KindFixnum, n: n}
}

// FromBool returns True or False.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// newStringValue copies b into storage sized exactly to len(b).
// The caller's buffer is never retained.
func newStringValue(b []byte) Value {
	data := make([]byte, len(b))
	copy(data, b)
	return Value{kind: KindString, str: &stringStorage{data: data}}
}

// adoptStringValue wraps a buffer the runtime has just allocated and
// nobody else references.
func adoptStringValue(data []byte) Value {
	return Value{kind: KindString, str: &stringStorage{data: data}}
}

// ---------------------------------------------------------------------------
// Type checking
// ---------------------------------------------------------------------------

// Kind returns the discriminant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNil returns true if v is the nil value.
func (v Value) IsNil() bool { return v == Nil }

// IsBool returns true if v is true or false.
func (v Value) IsBool() bool { return v.kind == KindBool }

// IsFixnum returns true if v is a fixed-width integer.
func (v Value) IsFixnum() bool { return v.kind == KindFixnum }

// IsString returns true if v is a String.
func (v Value) IsString() bool { return v.kind == KindString }

// IsTruthy reports whether v counts as true in a conditional.
// Only nil and false are falsy.
func (v Value) IsTruthy() bool {
	return v != Nil && v != False
}

// ---------------------------------------------------------------------------
// Payload access
// ---------------------------------------------------------------------------

// Fixnum returns the integer held by v, or false if v is not a Fixnum.
func (v Value) Fixnum() (int64, bool) {
	if v.kind != KindFixnum {
		return 0, false
	}
	return v.n, true
}

// Bool returns the boolean held by v, or false if v is not a Bool.
func (v Value) Bool() (b, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.n != 0, true
}

// Len returns the number of bytes stored in a String, 0 for other kinds.
func (v Value) Len() int {
	if v.kind != KindString {
		return 0
	}
	return len(v.str.data)
}

// ByteAt returns the byte at index i of a String.
// Panics if v is not a String or i is out of range.
func (v Value) ByteAt(i int) byte {
	if v.kind != KindString {
		panic("Value.ByteAt: not a string")
	}
	return v.str.data[i]
}

// Bytes returns a copy of a String's bytes, or nil for other kinds.
func (v Value) Bytes() []byte {
	if v.kind != KindString {
		return nil
	}
	return bytes.Clone(v.str.data)
}

// AppendBytes appends a String's bytes to dst. Other kinds append nothing.
func (v Value) AppendBytes(dst []byte) []byte {
	if v.kind != KindString {
		return dst
	}
	return append(dst, v.str.data...)
}

// Text returns a String's content as a Go string, "" for other kinds.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return string(v.str.data)
}

// view exposes the stored bytes to built-ins in this package, which
// only read them.
func (v Value) view() []byte {
	return v.str.data
}

// String implements fmt.Stringer using the inspect rendering.
func (v Value) String() string {
	return Inspect(v)
}

// ---------------------------------------------------------------------------
// Equality and ordering
// ---------------------------------------------------------------------------

// Equal reports whether a and b hold the same datum: same kind, then
// same integer, or for Strings same length and same bytes.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool, KindFixnum:
		return a.n == b.n
	case KindString:
		if a.str == b.str {
			return true
		}
		if len(a.str.data) != len(b.str.data) {
			return false
		}
		return bytes.Equal(a.str.data, b.str.data)
	}
	return false
}

// Compare orders values by kind tag, then by payload. Strings order by
// length first and then bytewise, matching Equal.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	switch a.kind {
	case KindBool, KindFixnum:
		return cmp.Compare(a.n, b.n)
	case KindString:
		if c := cmp.Compare(len(a.str.data), len(b.str.data)); c != 0 {
			return c
		}
		return bytes.Compare(a.str.data, b.str.data)
	}
	return 0
}
