package num

// Integer is the set of primitive integer types Safe can wrap: every
// fixed-width signed and unsigned type plus the machine word types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the subset of Integer with signed representations.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the subset of Integer with unsigned representations.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// isSigned reports whether T has a signed representation. For signed
// types ^0 is -1, which sorts below 0; for unsigned types it is the
// maximum value.
func isSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// bitWidth returns the number of bits in T.
func bitWidth[T Integer]() uint {
	var n uint
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n
}

// maxOf returns the largest value representable in T.
func maxOf[T Integer]() T {
	var zero T
	if !isSigned[T]() {
		return ^zero
	}
	return ^(T(1) << (bitWidth[T]() - 1))
}

// minOf returns the smallest value representable in T.
func minOf[T Integer]() T {
	if !isSigned[T]() {
		return 0
	}
	return T(1) << (bitWidth[T]() - 1)
}

// The checked primitives below detect every failure condition before the
// wrapping computation would matter, and report the failure class as an
// Errc. They never panic. Go defines two's-complement wrapping for all
// integer arithmetic, so the wrapped intermediate results used for
// detection are well-defined.

func addChecked[T Integer](a, b T) (T, Errc) {
	sum := a + b
	if isSigned[T]() {
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return 0, ErrcSignedOverflow
		}
		return sum, ErrcSuccess
	}
	if sum < a {
		return 0, ErrcUnsignedWrap
	}
	return sum, ErrcSuccess
}

func subChecked[T Integer](a, b T) (T, Errc) {
	diff := a - b
	if isSigned[T]() {
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return 0, ErrcSignedOverflow
		}
		return diff, ErrcSuccess
	}
	if b > a {
		return 0, ErrcUnsignedWrap
	}
	return diff, ErrcSuccess
}

func mulChecked[T Integer](a, b T) (T, Errc) {
	if a == 0 || b == 0 {
		return 0, ErrcSuccess
	}
	if isSigned[T]() {
		// MinT * -1 wraps to MinT, so p/b == a holds and the division
		// check below misses it. ^T(0) is -1 for every signed T.
		min := minOf[T]()
		if (a == min && b == ^T(0)) || (b == min && a == ^T(0)) {
			return 0, ErrcSignedOverflow
		}
	}
	p := a * b
	if p/b != a {
		if isSigned[T]() {
			return 0, ErrcSignedOverflow
		}
		return 0, ErrcUnsignedWrap
	}
	return p, ErrcSuccess
}

func divChecked[T Integer](a, b T) (T, Errc) {
	if b == 0 {
		return 0, ErrcDivideByZero
	}
	if isSigned[T]() && a == minOf[T]() && b == ^T(0) {
		return 0, ErrcSignedOverflow
	}
	return a / b, ErrcSuccess
}

func modChecked[T Integer](a, b T) (T, Errc) {
	if b == 0 {
		return 0, ErrcDivideByZero
	}
	if isSigned[T]() && a == minOf[T]() && b == ^T(0) {
		return 0, ErrcSignedOverflow
	}
	return a % b, ErrcSuccess
}

func negChecked[T Signed](a T) (T, Errc) {
	if a == minOf[T]() {
		return 0, ErrcSignedOverflow
	}
	return -a, ErrcSuccess
}

func shlChecked[T Unsigned](a, n T) (T, Errc) {
	if uint64(n) >= uint64(bitWidth[T]()) {
		return 0, ErrcInvalidArgument
	}
	return a << n, ErrcSuccess
}

func shrChecked[T Unsigned](a, n T) (T, Errc) {
	if uint64(n) >= uint64(bitWidth[T]()) {
		return 0, ErrcInvalidArgument
	}
	return a >> n, ErrcSuccess
}
