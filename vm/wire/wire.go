// Package wire encodes ember values as CBOR so a host can move them
// across a process boundary. Decoding always goes through a Runtime,
// so decoded Strings own fresh storage.
package wire

import (
	"errors"
	"fmt"

	"github.com/chazu/ember/vm"
	"github.com/fxamacker/cbor/v2"
)

var (
	ErrUnknownKind = errors.New("unknown value kind")
	ErrCorrupt     = errors.New("corrupt value encoding")
)

// envelope is the encoded form of a single Value.
type envelope struct {
	Kind  uint8  `cbor:"1,keyasint"`
	Int   int64  `cbor:"2,keyasint,omitempty"` // fixnum, or 1 for true
	Bytes []byte `cbor:"3,keyasint,omitempty"` // string content
}

// cborEncMode uses canonical mode so equal values encode identically.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

func toEnvelope(v vm.Value) envelope {
	e := envelope{Kind: uint8(v.Kind())}
	switch v.Kind() {
	case vm.KindBool:
		if v == vm.True {
			e.Int = 1
		}
	case vm.KindFixnum:
		e.Int, _ = v.Fixnum()
	case vm.KindString:
		e.Bytes = v.Bytes()
	}
	return e
}

func fromEnvelope(rt *vm.Runtime, e envelope) (vm.Value, error) {
	switch vm.Kind(e.Kind) {
	case vm.KindNil:
		return vm.Nil, nil
	case vm.KindBool:
		switch e.Int {
		case 0:
			return vm.False, nil
		case 1:
			return vm.True, nil
		}
		return vm.Nil, fmt.Errorf("wire: bool payload %d: %w", e.Int, ErrCorrupt)
	case vm.KindFixnum:
		return rt.NewFixnum(e.Int), nil
	case vm.KindString:
		return rt.NewString(e.Bytes), nil
	}
	return vm.Nil, fmt.Errorf("wire: kind %d: %w", e.Kind, ErrUnknownKind)
}

// Marshal serializes a Value to CBOR bytes.
func Marshal(v vm.Value) ([]byte, error) {
	return cborEncMode.Marshal(toEnvelope(v))
}

// Unmarshal deserializes a Value, allocating Strings in rt.
func Unmarshal(rt *vm.Runtime, data []byte) (vm.Value, error) {
	var e envelope
	if err := cbor.Unmarshal(data, &e); err != nil {
		return vm.Nil, fmt.Errorf("wire: unmarshal value: %w", err)
	}
	return fromEnvelope(rt, e)
}

// MarshalSlice serializes an argument vector.
func MarshalSlice(vs []vm.Value) ([]byte, error) {
	es := make([]envelope, len(vs))
	for i, v := range vs {
		es[i] = toEnvelope(v)
	}
	return cborEncMode.Marshal(es)
}

// UnmarshalSlice deserializes an argument vector.
func UnmarshalSlice(rt *vm.Runtime, data []byte) ([]vm.Value, error) {
	var es []envelope
	if err := cbor.Unmarshal(data, &es); err != nil {
		return nil, fmt.Errorf("wire: unmarshal values: %w", err)
	}
	vs := make([]vm.Value, len(es))
	for i, e := range es {
		v, err := fromEnvelope(rt, e)
		if err != nil {
			return nil, fmt.Errorf("wire: value %d: %w", i, err)
		}
		vs[i] = v
	}
	return vs, nil
}
