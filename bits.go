package num

// Bitwise operations are defined only for unsigned types; the constraints
// reject signed instantiations at compile time. And, Or, Xor, and Not
// cannot fail numerically, so their results do not require a validity
// check, but poison on either operand still absorbs. Shifts can fail:
// amounts at or beyond the bit width of T poison the result rather than
// relying on wrapping shift semantics.

// bitop applies an infallible bitwise primitive, absorbing poison.
func bitop[T Unsigned](x, y Safe[T], op func(a, b T) T) Safe[T] {
	if x.errc != ErrcSuccess {
		return Safe[T]{errc: x.errc, unchecked: true}
	}
	if y.errc != ErrcSuccess {
		return Safe[T]{errc: y.errc, unchecked: true}
	}
	return Safe[T]{val: op(x.val, y.val)}
}

// And returns x & y.
func And[T Unsigned](x, y Safe[T]) Safe[T] {
	return bitop(x, y, func(a, b T) T { return a & b })
}

// AndVal returns x & v for a raw operand.
func AndVal[T Unsigned](x Safe[T], v T) Safe[T] {
	return And(x, New(v))
}

// Or returns x | y.
func Or[T Unsigned](x, y Safe[T]) Safe[T] {
	return bitop(x, y, func(a, b T) T { return a | b })
}

// OrVal returns x | v for a raw operand.
func OrVal[T Unsigned](x Safe[T], v T) Safe[T] {
	return Or(x, New(v))
}

// Xor returns x ^ y.
func Xor[T Unsigned](x, y Safe[T]) Safe[T] {
	return bitop(x, y, func(a, b T) T { return a ^ b })
}

// XorVal returns x ^ v for a raw operand.
func XorVal[T Unsigned](x Safe[T], v T) Safe[T] {
	return Xor(x, New(v))
}

// Not returns the bitwise complement of x.
func Not[T Unsigned](x Safe[T]) Safe[T] {
	if x.errc != ErrcSuccess {
		return Safe[T]{errc: x.errc, unchecked: true}
	}
	return Safe[T]{val: ^x.val}
}

// Shl returns x << n, poisoned with ErrcInvalidArgument when n is at or
// beyond the bit width of T.
func Shl[T Unsigned](x, n Safe[T]) Safe[T] {
	return arith(x, n, shlChecked[T])
}

// ShlVal returns x << v for a raw shift amount.
func ShlVal[T Unsigned](x Safe[T], v T) Safe[T] {
	return arith(x, New(v), shlChecked[T])
}

// Shr returns x >> n, poisoned with ErrcInvalidArgument when n is at or
// beyond the bit width of T.
func Shr[T Unsigned](x, n Safe[T]) Safe[T] {
	return arith(x, n, shrChecked[T])
}

// ShrVal returns x >> v for a raw shift amount.
func ShrVal[T Unsigned](x Safe[T], v T) Safe[T] {
	return arith(x, New(v), shrChecked[T])
}
