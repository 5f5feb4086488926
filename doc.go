// Package num provides checked-arithmetic numeric value types.
//
// This package wraps Go's primitive integer types with overflow, underflow,
// narrowing, division-by-zero, and shift-bounds detection. Instead of
// wrapping silently or panicking, every failed operation produces a
// "poisoned" value that absorbs through all further operations, so a long
// chain of arithmetic can be validated with a single check at the end.
//
// # Features
//
//   - Checked add, subtract, multiply, divide, and modulo for all widths
//   - Poison propagation (a poisoned operand always yields a poisoned result)
//   - Two-tier status codes: reserved contract-violation codes vs. application codes
//   - Bitwise and shift operations for unsigned types with shift-bounds checks
//   - Cross-width, cross-signedness comparisons with explicit promotion rules
//   - A restricted index type for container offsets and sizes
//   - Exact narrowing and widening conversions between all widths
//   - Zero dependencies (Layer 0 library)
//
// # Design Principles
//
//   - Value semantics (plain copyable structs, no heap allocation, no sharing)
//   - No panics and no error returns (failure is a state of the value)
//   - Type safety (signed-only and unsigned-only operations are compile-time enforced)
//   - Simplicity (one way to check validity, one absorbing failure state)
//
// # Quick Start
//
// Checked arithmetic:
//
//	total := num.New(int32(2147483647)).AddVal(1)
//	if total.IsInvalid() {
//	    // overflow detected, total carries num.ErrcSignedOverflow
//	}
//
// Chained operations need only one check:
//
//	v := num.New(uint64(base)).AddVal(offset).MulVal(stride)
//	if !v.IsPoisoned() {
//	    use(v.Get())
//	}
//
// Container indices:
//
//	i := num.NewIdx(5).SubVal(1) // 4
//	j := num.Idx0().SubVal(1)    // poisoned: unsigned wrap
//
// Status codes:
//
//	num.Errc(0).Success()                // true
//	num.ErrcDivideByZero.IsUnchecked()   // true: contract violation
//	num.Errc(42).IsChecked()             // true: application-defined
//
// # Validity Checking
//
// A poisoned value never panics; Get returns the last stored bit pattern
// and callers are expected to check IsValid (or IsPoisoned, or Checked)
// first. An optional process-wide ViolationHandler can be installed during
// development to catch reads of unchecked or poisoned values.
package num
