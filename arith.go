package num

// arith is the single absorption point for every fallible operation:
// poison on either operand short-circuits the primitive (left operand
// first), a detected failure poisons the result with its failure class,
// and every result is marked unexamined until validity is checked.
func arith[T Integer](x, y Safe[T], op func(a, b T) (T, Errc)) Safe[T] {
	if x.errc != ErrcSuccess {
		return Safe[T]{errc: x.errc, unchecked: true}
	}
	if y.errc != ErrcSuccess {
		return Safe[T]{errc: y.errc, unchecked: true}
	}
	v, ec := op(x.val, y.val)
	if ec != ErrcSuccess {
		return Safe[T]{errc: ec, unchecked: true}
	}
	return Safe[T]{val: v, unchecked: true}
}

// Add returns x + y, poisoned with ErrcSignedOverflow or ErrcUnsignedWrap
// on overflow.
func (x Safe[T]) Add(y Safe[T]) Safe[T] {
	return arith(x, y, addChecked[T])
}

// AddVal returns x + v for a raw operand.
func (x Safe[T]) AddVal(v T) Safe[T] {
	return arith(x, New(v), addChecked[T])
}

// Sub returns x - y, poisoned on overflow or unsigned underflow.
func (x Safe[T]) Sub(y Safe[T]) Safe[T] {
	return arith(x, y, subChecked[T])
}

// SubVal returns x - v for a raw operand.
func (x Safe[T]) SubVal(v T) Safe[T] {
	return arith(x, New(v), subChecked[T])
}

// Mul returns x * y, poisoned on overflow.
func (x Safe[T]) Mul(y Safe[T]) Safe[T] {
	return arith(x, y, mulChecked[T])
}

// MulVal returns x * v for a raw operand.
func (x Safe[T]) MulVal(v T) Safe[T] {
	return arith(x, New(v), mulChecked[T])
}

// Div returns x / y, poisoned with ErrcDivideByZero when y is zero and
// with ErrcSignedOverflow for MinValue / -1.
func (x Safe[T]) Div(y Safe[T]) Safe[T] {
	return arith(x, y, divChecked[T])
}

// DivVal returns x / v for a raw operand.
func (x Safe[T]) DivVal(v T) Safe[T] {
	return arith(x, New(v), divChecked[T])
}

// Mod returns x % y with the same failure conditions as Div.
func (x Safe[T]) Mod(y Safe[T]) Safe[T] {
	return arith(x, y, modChecked[T])
}

// ModVal returns x % v for a raw operand.
func (x Safe[T]) ModVal(v T) Safe[T] {
	return arith(x, New(v), modChecked[T])
}

// Inc returns x + 1 with the same overflow and poison rules as Add.
func (x Safe[T]) Inc() Safe[T] {
	return x.AddVal(1)
}

// Dec returns x - 1 with the same overflow and poison rules as Sub.
func (x Safe[T]) Dec() Safe[T] {
	return x.SubVal(1)
}

// Neg returns -x for signed types, poisoned with ErrcSignedOverflow when
// x is the minimum value. Unsigned types have no negation; the constraint
// rejects them at compile time.
func Neg[T Signed](x Safe[T]) Safe[T] {
	if x.errc != ErrcSuccess {
		return Safe[T]{errc: x.errc, unchecked: true}
	}
	v, ec := negChecked(x.val)
	if ec != ErrcSuccess {
		return Safe[T]{errc: ec, unchecked: true}
	}
	return Safe[T]{val: v, unchecked: true}
}
