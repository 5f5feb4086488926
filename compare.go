package num

import "cmp"

// Comparisons never poison further state and never report violations. A
// poisoned operand on either side makes every comparison false, for all
// six operators; validity must be checked independently of comparison
// results.

// Eq returns true when both operands are valid and equal.
func (x Safe[T]) Eq(y Safe[T]) bool {
	if x.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return x.val == y.val
}

// EqVal returns true when x is valid and equal to the raw value v.
func (x Safe[T]) EqVal(v T) bool {
	return x.errc == ErrcSuccess && x.val == v
}

// Ne returns true when both operands are valid and unequal.
func (x Safe[T]) Ne(y Safe[T]) bool {
	if x.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return x.val != y.val
}

// NeVal returns true when x is valid and unequal to the raw value v.
func (x Safe[T]) NeVal(v T) bool {
	return x.errc == ErrcSuccess && x.val != v
}

// Lt returns true when both operands are valid and x < y.
func (x Safe[T]) Lt(y Safe[T]) bool {
	if x.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return x.val < y.val
}

// LtVal returns true when x is valid and less than the raw value v.
func (x Safe[T]) LtVal(v T) bool {
	return x.errc == ErrcSuccess && x.val < v
}

// Le returns true when both operands are valid and x <= y.
func (x Safe[T]) Le(y Safe[T]) bool {
	if x.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return x.val <= y.val
}

// LeVal returns true when x is valid and at most the raw value v.
func (x Safe[T]) LeVal(v T) bool {
	return x.errc == ErrcSuccess && x.val <= v
}

// Gt returns true when both operands are valid and x > y.
func (x Safe[T]) Gt(y Safe[T]) bool {
	if x.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return x.val > y.val
}

// GtVal returns true when x is valid and greater than the raw value v.
func (x Safe[T]) GtVal(v T) bool {
	return x.errc == ErrcSuccess && x.val > v
}

// Ge returns true when both operands are valid and x >= y.
func (x Safe[T]) Ge(y Safe[T]) bool {
	if x.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return x.val >= y.val
}

// GeVal returns true when x is valid and at least the raw value v.
func (x Safe[T]) GeVal(v T) bool {
	return x.errc == ErrcSuccess && x.val >= v
}

// cmpPromoted compares two raw integers of arbitrary widths and
// signedness without implicit conversions. The rule table:
//
//	negative vs. non-negative  ->  the negative value is smaller
//	both negative              ->  both are signed; compare as int64
//	both non-negative          ->  compare as uint64
//
// Every value of every Integer type falls into exactly one row, and the
// widening conversion in each row is exact for the values that reach it.
func cmpPromoted[A, B Integer](a A, b B) int {
	aNeg := a < 0
	bNeg := b < 0
	switch {
	case aNeg && !bNeg:
		return -1
	case bNeg && !aNeg:
		return 1
	case aNeg:
		return cmp.Compare(int64(a), int64(b))
	default:
		return cmp.Compare(uint64(a), uint64(b))
	}
}

// Compare orders two Safe values of possibly different widths and
// signedness. It returns -1, 0, or 1 and true when both operands are
// valid, and 0 and false when either is poisoned.
func Compare[A, B Integer](x Safe[A], y Safe[B]) (int, bool) {
	if x.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return 0, false
	}
	return cmpPromoted(x.val, y.val), true
}

// Equal returns true when both operands are valid and numerically equal,
// regardless of width or signedness.
func Equal[A, B Integer](x Safe[A], y Safe[B]) bool {
	c, ok := Compare(x, y)
	return ok && c == 0
}

// NotEqual returns true when both operands are valid and numerically
// unequal.
func NotEqual[A, B Integer](x Safe[A], y Safe[B]) bool {
	c, ok := Compare(x, y)
	return ok && c != 0
}

// Less returns true when both operands are valid and x < y numerically.
func Less[A, B Integer](x Safe[A], y Safe[B]) bool {
	c, ok := Compare(x, y)
	return ok && c < 0
}

// LessOrEqual returns true when both operands are valid and x <= y
// numerically.
func LessOrEqual[A, B Integer](x Safe[A], y Safe[B]) bool {
	c, ok := Compare(x, y)
	return ok && c <= 0
}

// Greater returns true when both operands are valid and x > y
// numerically.
func Greater[A, B Integer](x Safe[A], y Safe[B]) bool {
	c, ok := Compare(x, y)
	return ok && c > 0
}

// GreaterOrEqual returns true when both operands are valid and x >= y
// numerically.
func GreaterOrEqual[A, B Integer](x Safe[A], y Safe[B]) bool {
	c, ok := Compare(x, y)
	return ok && c >= 0
}
