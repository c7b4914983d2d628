package vm

// registerNilPrimitives registers the built-ins of the nil kind.
func (rt *Runtime) registerNilPrimitives() {
	rt.define0(KindNil, "to_s", func(_ *Runtime, _ Value) (Value, error) {
		return adoptStringValue([]byte{}), nil
	})

	rt.define0(KindNil, "nil?", func(_ *Runtime, _ Value) (Value, error) {
		return True, nil
	})

	rt.define1(KindNil, "==", func(_ *Runtime, _ Value, other Value) (Value, error) {
		return FromBool(other == Nil), nil
	})
}

// registerBoolPrimitives registers the built-ins shared by true and false.
func (rt *Runtime) registerBoolPrimitives() {
	rt.define0(KindBool, "to_s", func(_ *Runtime, recv Value) (Value, error) {
		if recv == True {
			return adoptStringValue([]byte("true")), nil
		}
		return adoptStringValue([]byte("false")), nil
	})

	rt.define0(KindBool, "!", func(_ *Runtime, recv Value) (Value, error) {
		return FromBool(recv == False), nil
	})

	rt.define1(KindBool, "==", func(_ *Runtime, recv Value, other Value) (Value, error) {
		return FromBool(recv == other), nil
	})
}
