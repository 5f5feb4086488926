package num

// Safe wraps a primitive integer with a sticky poison state.
//
// A Safe value is either valid, in which case the payload is the exact
// result of an overflow-free computation, or poisoned, in which case the
// payload is meaningless and the carried Errc identifies the failure
// class. Poison absorbs: every operation with a poisoned operand yields a
// poisoned result without performing the underlying computation. The only
// way back to a valid state is assignment of a fresh value.
//
// Safe additionally tracks whether a fallible result has been examined
// for validity. Reading an unexamined or poisoned value through Get
// invokes the process-wide ViolationHandler when one is installed; with
// no handler installed the read simply returns the stored bit pattern.
//
// The zero value is a valid zero.
type Safe[T Integer] struct {
	val       T
	errc      Errc
	unchecked bool
}

// New returns a valid Safe holding v.
func New[T Integer](v T) Safe[T] {
	return Safe[T]{val: v}
}

// Poison returns a poisoned Safe carrying the given code. A zero code is
// coerced to ErrcFailure so that the result is always poisoned. Reserved
// codes mark contract-violation ("unchecked") poison; application-defined
// codes mark expected ("checked") poison.
func Poison[T Integer](code Errc) Safe[T] {
	if code == ErrcSuccess {
		code = ErrcFailure
	}
	return Safe[T]{errc: code, unchecked: true}
}

// MaxValue returns the largest valid value of T.
func MaxValue[T Integer]() Safe[T] {
	return New(maxOf[T]())
}

// MinValue returns the smallest valid value of T.
func MinValue[T Integer]() Safe[T] {
	return New(minOf[T]())
}

// Magic0 returns the constant 0.
func Magic0[T Integer]() Safe[T] { return New(T(0)) }

// Magic1 returns the constant 1.
func Magic1[T Integer]() Safe[T] { return New(T(1)) }

// Magic2 returns the constant 2.
func Magic2[T Integer]() Safe[T] { return New(T(2)) }

// Magic3 returns the constant 3.
func Magic3[T Integer]() Safe[T] { return New(T(3)) }

// MagicNeg1 returns the constant -1 for signed types.
func MagicNeg1[T Signed]() Safe[T] { return New(T(-1)) }

// MagicNeg2 returns the constant -2 for signed types.
func MagicNeg2[T Signed]() Safe[T] { return New(T(-2)) }

// MagicNeg3 returns the constant -3 for signed types.
func MagicNeg3[T Signed]() Safe[T] { return New(T(-3)) }

// Get returns the stored payload. It is defined even when the value is
// poisoned, in which case it returns the last stored bit pattern; callers
// are expected to check validity first. When a ViolationHandler is
// installed, reading a poisoned value or an unexamined fallible result
// reports a violation.
func (x Safe[T]) Get() T {
	if x.errc != ErrcSuccess {
		violate(x.errc, "poisoned value read")
	} else if x.unchecked {
		violate(ErrcAssertion, "fallible result read before being checked")
	}
	return x.val
}

// GetUnsafe returns the stored payload without consulting the
// ViolationHandler. Intended for diagnostics and tests.
func (x Safe[T]) GetUnsafe() T {
	return x.val
}

// IsValid returns true when the value is not poisoned.
func (x Safe[T]) IsValid() bool {
	return x.errc == ErrcSuccess
}

// IsInvalid returns true when the value is poisoned.
func (x Safe[T]) IsInvalid() bool {
	return x.errc != ErrcSuccess
}

// IsPoisoned returns IsInvalid and records that validity has been
// examined, satisfying the check that Get enforces through the
// ViolationHandler.
func (x *Safe[T]) IsPoisoned() bool {
	x.unchecked = x.errc != ErrcSuccess
	return x.errc != ErrcSuccess
}

// Checked returns a copy with the examined state recorded. Calling it on
// a poisoned value reports a violation; the poison itself is preserved.
func (x Safe[T]) Checked() Safe[T] {
	if x.errc != ErrcSuccess {
		violate(x.errc, "checked called on a poisoned value")
		return x
	}
	x.unchecked = false
	return x
}

// IsUnchecked returns true when the value is a fallible result whose
// validity has not yet been examined.
func (x Safe[T]) IsUnchecked() bool {
	return x.unchecked
}

// IsChecked returns true when validity has been examined (or was never in
// question).
func (x Safe[T]) IsChecked() bool {
	return !x.unchecked
}

// IsValidAndChecked returns true when the value is valid and its validity
// has been examined.
func (x Safe[T]) IsValidAndChecked() bool {
	return x.errc == ErrcSuccess && !x.unchecked
}

// Errc returns the carried status code: ErrcSuccess for a valid value,
// the originating failure class otherwise.
func (x Safe[T]) Errc() Errc {
	return x.errc
}

// IsZero returns true when the value is valid and zero. A poisoned
// receiver reports a violation and returns false.
func (x Safe[T]) IsZero() bool {
	if x.errc != ErrcSuccess {
		violate(x.errc, "poisoned value read")
		return false
	}
	return x.val == 0
}

// IsPos returns true when the value is valid and greater than zero. A
// poisoned receiver reports a violation and returns false.
func (x Safe[T]) IsPos() bool {
	if x.errc != ErrcSuccess {
		violate(x.errc, "poisoned value read")
		return false
	}
	return x.val > 0
}

// IsNeg returns true when the value is valid and less than zero. Always
// false for unsigned types. A poisoned receiver reports a violation and
// returns false.
func (x Safe[T]) IsNeg() bool {
	if x.errc != ErrcSuccess {
		violate(x.errc, "poisoned value read")
		return false
	}
	return x.val < 0
}

// IsZeroOrInvalid returns true when the value is poisoned or zero. Useful
// as a divisor guard.
func (x Safe[T]) IsZeroOrInvalid() bool {
	if x.errc != ErrcSuccess {
		return true
	}
	return x.val == 0
}

// IsSignedType returns true when T has a signed representation.
func (x Safe[T]) IsSignedType() bool {
	return isSigned[T]()
}

// IsUnsignedType returns true when T has an unsigned representation.
func (x Safe[T]) IsUnsignedType() bool {
	return !isSigned[T]()
}

// Max returns the larger of x and y, or a poisoned value if either is
// poisoned.
func (x Safe[T]) Max(y Safe[T]) Safe[T] {
	if x.errc != ErrcSuccess {
		return Safe[T]{errc: x.errc, unchecked: true}
	}
	if y.errc != ErrcSuccess {
		return Safe[T]{errc: y.errc, unchecked: true}
	}
	if x.val > y.val {
		return x
	}
	return y
}

// MaxVal returns the larger of x and the raw value v, or a poisoned
// value if x is poisoned.
func (x Safe[T]) MaxVal(v T) Safe[T] {
	return x.Max(New(v))
}

// Min returns the smaller of x and y, or a poisoned value if either is
// poisoned.
func (x Safe[T]) Min(y Safe[T]) Safe[T] {
	if x.errc != ErrcSuccess {
		return Safe[T]{errc: x.errc, unchecked: true}
	}
	if y.errc != ErrcSuccess {
		return Safe[T]{errc: y.errc, unchecked: true}
	}
	if x.val < y.val {
		return x
	}
	return y
}

// MinVal returns the smaller of x and the raw value v, or a poisoned
// value if x is poisoned.
func (x Safe[T]) MinVal(v T) Safe[T] {
	return x.Min(New(v))
}
