package num

// Conversions between widths and signedness are exact or poisoned: a
// value that cannot be represented in the destination type yields a
// poisoned result carrying ErrcNarrowOverflow. Poison and the examined
// state carry through from the source.

// narrow converts a Safe[T] to a Safe[U], poisoning on any value change.
func narrow[T, U Integer](x Safe[T]) Safe[U] {
	if x.errc != ErrcSuccess {
		return Safe[U]{errc: x.errc, unchecked: true}
	}
	v := U(x.val)
	if T(v) != x.val || (v < 0) != (x.val < 0) {
		return Safe[U]{errc: ErrcNarrowOverflow, unchecked: true}
	}
	return Safe[U]{val: v, unchecked: x.unchecked}
}

// ToI8 converts to Safe[int8], poisoning on loss.
func ToI8[T Integer](x Safe[T]) Safe[int8] { return narrow[T, int8](x) }

// ToI16 converts to Safe[int16], poisoning on loss.
func ToI16[T Integer](x Safe[T]) Safe[int16] { return narrow[T, int16](x) }

// ToI32 converts to Safe[int32], poisoning on loss.
func ToI32[T Integer](x Safe[T]) Safe[int32] { return narrow[T, int32](x) }

// ToI64 converts to Safe[int64], poisoning on loss.
func ToI64[T Integer](x Safe[T]) Safe[int64] { return narrow[T, int64](x) }

// ToInt converts to Safe[int], poisoning on loss.
func ToInt[T Integer](x Safe[T]) Safe[int] { return narrow[T, int](x) }

// ToU8 converts to Safe[uint8], poisoning on loss.
func ToU8[T Integer](x Safe[T]) Safe[uint8] { return narrow[T, uint8](x) }

// ToU16 converts to Safe[uint16], poisoning on loss.
func ToU16[T Integer](x Safe[T]) Safe[uint16] { return narrow[T, uint16](x) }

// ToU32 converts to Safe[uint32], poisoning on loss.
func ToU32[T Integer](x Safe[T]) Safe[uint32] { return narrow[T, uint32](x) }

// ToU64 converts to Safe[uint64], poisoning on loss.
func ToU64[T Integer](x Safe[T]) Safe[uint64] { return narrow[T, uint64](x) }

// ToUint converts to the machine word type Safe[uint], poisoning on loss.
func ToUint[T Integer](x Safe[T]) Safe[uint] { return narrow[T, uint](x) }
