package vm

// ---------------------------------------------------------------------------
// String Primitives Implementation
// ---------------------------------------------------------------------------

// registerStringPrimitives registers the String built-ins.
//
// None of them write to the receiver's storage. Results that carry bytes
// are fresh Strings with their own buffers.
func (rt *Runtime) registerStringPrimitives() {
	// + - concatenate the receiver and a String argument
	rt.define1(KindString, "+", func(_ *Runtime, recv Value, other Value) (Value, error) {
		if !other.IsString() {
			return Nil, typeMismatch("+", KindString, other)
		}
		a, b := recv.view(), other.view()
		data := make([]byte, len(a)+len(b))
		copy(data, a)
		copy(data[len(a):], b)
		return adoptStringValue(data), nil
	})

	// [] - substring of count bytes starting at start (0-based).
	// A start past the end is nil; start == size is the empty tail.
	rt.define2(KindString, "[]", func(_ *Runtime, recv Value, start, count Value) (Value, error) {
		startIdx, ok := start.Fixnum()
		if !ok {
			return Nil, typeMismatch("[]", KindFixnum, start)
		}
		n, ok := count.Fixnum()
		if !ok {
			return Nil, typeMismatch("[]", KindFixnum, count)
		}
		if n < 0 {
			return Nil, invalidArgument("[]", "negative count")
		}

		s := recv.view()
		size := int64(len(s))
		if startIdx < 0 || startIdx > size {
			return Nil, nil
		}
		n = min(n, size-startIdx)

		data := make([]byte, n)
		copy(data, s[startIdx:startIdx+n])
		return adoptStringValue(data), nil
	})

	// == - content equality; any non-String argument is unequal
	rt.define1(KindString, "==", func(_ *Runtime, recv Value, other Value) (Value, error) {
		return FromBool(Equal(recv, other)), nil
	})

	// size - byte length
	rt.define0(KindString, "size", func(_ *Runtime, recv Value) (Value, error) {
		return FromFixnum(int64(recv.Len())), nil
	})

	// empty?
	rt.define0(KindString, "empty?", func(_ *Runtime, recv Value) (Value, error) {
		return FromBool(recv.Len() == 0), nil
	})

	// to_s - Strings are immutable, so the receiver is its own conversion
	rt.define0(KindString, "to_s", func(_ *Runtime, recv Value) (Value, error) {
		return recv, nil
	})
}
