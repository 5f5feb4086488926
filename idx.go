package num

// Idx is a restricted checked value for container offsets and sizes:
// non-negative, machine-word sized, and limited to addition, subtraction,
// and comparison. Multiplication, division, modulo, bitwise operations,
// and signed interpretation do not exist on the type, so the misuse
// categories they enable (negative or scaled indices) cannot compile.
//
// Poison follows the same absorbing rules as Safe: a poisoned Idx means
// "no valid position" and must never be dereferenced through. The zero
// value is a valid zero. Idx does not track the examined state that Safe
// does; only reads of poisoned indices report violations.
type Idx struct {
	val  uint
	errc Errc
}

// NewIdx returns a valid index holding v.
func NewIdx(v uint) Idx {
	return Idx{val: v}
}

// PoisonIdx returns a poisoned index carrying the given code. A zero code
// is coerced to ErrcFailure.
func PoisonIdx(code Errc) Idx {
	if code == ErrcSuccess {
		code = ErrcFailure
	}
	return Idx{errc: code}
}

// ToIdx converts a general unsigned word value to an index, carrying
// poison through. Converting a poisoned value reports a violation.
func ToIdx(x Safe[uint]) Idx {
	if x.errc != ErrcSuccess {
		violate(x.errc, "poisoned value converted to an index")
		return Idx{errc: x.errc}
	}
	return Idx{val: x.val}
}

// FromIdx converts an index back to a general unsigned word value,
// carrying poison through.
func FromIdx(i Idx) Safe[uint] {
	if i.errc != ErrcSuccess {
		return Safe[uint]{errc: i.errc, unchecked: true}
	}
	return Safe[uint]{val: i.val}
}

// MaxIdx returns the largest valid index.
func MaxIdx() Idx {
	return NewIdx(maxOf[uint]())
}

// MinIdx returns the smallest valid index (zero).
func MinIdx() Idx {
	return NewIdx(0)
}

// Idx0 returns the index constant 0.
func Idx0() Idx { return NewIdx(0) }

// Idx1 returns the index constant 1.
func Idx1() Idx { return NewIdx(1) }

// Idx2 returns the index constant 2.
func Idx2() Idx { return NewIdx(2) }

// Idx3 returns the index constant 3.
func Idx3() Idx { return NewIdx(3) }

// Get returns the stored offset. It is defined even when the index is
// poisoned; reading a poisoned index reports a violation.
func (i Idx) Get() uint {
	if i.errc != ErrcSuccess {
		violate(i.errc, "poisoned index read")
	}
	return i.val
}

// GetUnsafe returns the stored offset without consulting the
// ViolationHandler.
func (i Idx) GetUnsafe() uint {
	return i.val
}

// IsValid returns true when the index is not poisoned.
func (i Idx) IsValid() bool {
	return i.errc == ErrcSuccess
}

// IsInvalid returns true when the index is poisoned.
func (i Idx) IsInvalid() bool {
	return i.errc != ErrcSuccess
}

// Errc returns the carried status code.
func (i Idx) Errc() Errc {
	return i.errc
}

// IsZero returns true when the index is valid and zero.
func (i Idx) IsZero() bool {
	if i.errc != ErrcSuccess {
		violate(i.errc, "poisoned index read")
		return false
	}
	return i.val == 0
}

// IsPos returns true when the index is valid and greater than zero.
func (i Idx) IsPos() bool {
	if i.errc != ErrcSuccess {
		violate(i.errc, "poisoned index read")
		return false
	}
	return i.val > 0
}

// idxArith mirrors arith for the index type.
func idxArith(x, y Idx, op func(a, b uint) (uint, Errc)) Idx {
	if x.errc != ErrcSuccess {
		return Idx{errc: x.errc}
	}
	if y.errc != ErrcSuccess {
		return Idx{errc: y.errc}
	}
	v, ec := op(x.val, y.val)
	if ec != ErrcSuccess {
		return Idx{errc: ec}
	}
	return Idx{val: v}
}

// Add returns i + j, poisoned with ErrcUnsignedWrap on wrap.
func (i Idx) Add(j Idx) Idx {
	return idxArith(i, j, addChecked[uint])
}

// AddVal returns i + v for a raw offset.
func (i Idx) AddVal(v uint) Idx {
	return idxArith(i, NewIdx(v), addChecked[uint])
}

// Sub returns i - j, poisoned with ErrcUnsignedWrap on underflow.
func (i Idx) Sub(j Idx) Idx {
	return idxArith(i, j, subChecked[uint])
}

// SubVal returns i - v for a raw offset.
func (i Idx) SubVal(v uint) Idx {
	return idxArith(i, NewIdx(v), subChecked[uint])
}

// Inc returns i + 1.
func (i Idx) Inc() Idx {
	return i.AddVal(1)
}

// Dec returns i - 1, poisoned at zero.
func (i Idx) Dec() Idx {
	return i.SubVal(1)
}

// Eq returns true when both indices are valid and equal.
func (i Idx) Eq(j Idx) bool {
	if i.errc != ErrcSuccess || j.errc != ErrcSuccess {
		return false
	}
	return i.val == j.val
}

// EqVal returns true when i is valid and equal to the raw offset v.
func (i Idx) EqVal(v uint) bool {
	return i.errc == ErrcSuccess && i.val == v
}

// Ne returns true when both indices are valid and unequal.
func (i Idx) Ne(j Idx) bool {
	if i.errc != ErrcSuccess || j.errc != ErrcSuccess {
		return false
	}
	return i.val != j.val
}

// NeVal returns true when i is valid and unequal to the raw offset v.
func (i Idx) NeVal(v uint) bool {
	return i.errc == ErrcSuccess && i.val != v
}

// Lt returns true when both indices are valid and i < j.
func (i Idx) Lt(j Idx) bool {
	if i.errc != ErrcSuccess || j.errc != ErrcSuccess {
		return false
	}
	return i.val < j.val
}

// LtVal returns true when i is valid and less than the raw offset v.
func (i Idx) LtVal(v uint) bool {
	return i.errc == ErrcSuccess && i.val < v
}

// Le returns true when both indices are valid and i <= j.
func (i Idx) Le(j Idx) bool {
	if i.errc != ErrcSuccess || j.errc != ErrcSuccess {
		return false
	}
	return i.val <= j.val
}

// LeVal returns true when i is valid and at most the raw offset v.
func (i Idx) LeVal(v uint) bool {
	return i.errc == ErrcSuccess && i.val <= v
}

// Gt returns true when both indices are valid and i > j.
func (i Idx) Gt(j Idx) bool {
	if i.errc != ErrcSuccess || j.errc != ErrcSuccess {
		return false
	}
	return i.val > j.val
}

// GtVal returns true when i is valid and greater than the raw offset v.
func (i Idx) GtVal(v uint) bool {
	return i.errc == ErrcSuccess && i.val > v
}

// Ge returns true when both indices are valid and i >= j.
func (i Idx) Ge(j Idx) bool {
	if i.errc != ErrcSuccess || j.errc != ErrcSuccess {
		return false
	}
	return i.val >= j.val
}

// GeVal returns true when i is valid and at least the raw offset v.
func (i Idx) GeVal(v uint) bool {
	return i.errc == ErrcSuccess && i.val >= v
}

// EqSafe returns true when the index and the general unsigned value are
// both valid and equal.
func (i Idx) EqSafe(y Safe[uint]) bool {
	if i.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return i.val == y.val
}

// NeSafe returns true when both operands are valid and unequal.
func (i Idx) NeSafe(y Safe[uint]) bool {
	if i.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return i.val != y.val
}

// LtSafe returns true when both operands are valid and i < y.
func (i Idx) LtSafe(y Safe[uint]) bool {
	if i.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return i.val < y.val
}

// LeSafe returns true when both operands are valid and i <= y.
func (i Idx) LeSafe(y Safe[uint]) bool {
	if i.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return i.val <= y.val
}

// GtSafe returns true when both operands are valid and i > y.
func (i Idx) GtSafe(y Safe[uint]) bool {
	if i.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return i.val > y.val
}

// GeSafe returns true when both operands are valid and i >= y.
func (i Idx) GeSafe(y Safe[uint]) bool {
	if i.errc != ErrcSuccess || y.errc != ErrcSuccess {
		return false
	}
	return i.val >= y.val
}
