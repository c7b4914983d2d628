package vm

import (
	"math"
	"strconv"
)

// registerFixnumPrimitives registers the Fixnum built-ins.
// Arithmetic stays within int64; overflow is reported, never wrapped.
func (rt *Runtime) registerFixnumPrimitives() {
	rt.define1(KindFixnum, "+", func(_ *Runtime, recv Value, arg Value) (Value, error) {
		a, _ := recv.Fixnum()
		b, ok := arg.Fixnum()
		if !ok {
			return Nil, typeMismatch("+", KindFixnum, arg)
		}
		sum := a + b
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return Nil, invalidArgument("+", "fixnum overflow")
		}
		return FromFixnum(sum), nil
	})

	rt.define1(KindFixnum, "-", func(_ *Runtime, recv Value, arg Value) (Value, error) {
		a, _ := recv.Fixnum()
		b, ok := arg.Fixnum()
		if !ok {
			return Nil, typeMismatch("-", KindFixnum, arg)
		}
		diff := a - b
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return Nil, invalidArgument("-", "fixnum overflow")
		}
		return FromFixnum(diff), nil
	})

	rt.define1(KindFixnum, "<", func(_ *Runtime, recv Value, arg Value) (Value, error) {
		a, _ := recv.Fixnum()
		b, ok := arg.Fixnum()
		if !ok {
			return Nil, typeMismatch("<", KindFixnum, arg)
		}
		return FromBool(a < b), nil
	})

	// -@ - unary minus
	rt.define0(KindFixnum, "-@", func(_ *Runtime, recv Value) (Value, error) {
		a, _ := recv.Fixnum()
		if a == math.MinInt64 {
			return Nil, invalidArgument("-@", "fixnum overflow")
		}
		return FromFixnum(-a), nil
	})

	rt.define1(KindFixnum, "==", func(_ *Runtime, recv Value, arg Value) (Value, error) {
		return FromBool(Equal(recv, arg)), nil
	})

	rt.define0(KindFixnum, "to_s", func(_ *Runtime, recv Value) (Value, error) {
		a, _ := recv.Fixnum()
		return adoptStringValue(strconv.AppendInt(nil, a, 10)), nil
	})
}
