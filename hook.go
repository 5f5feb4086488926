package num

import "sync/atomic"

// ViolationHandler receives reads of poisoned or unexamined values. The
// code identifies the failure class that poisoned the value (or
// ErrcAssertion for an unexamined read) and msg describes the violation.
//
// Installing a handler that panics or aborts turns silently-ignored
// failures into fast failures during development. No handler is installed
// by default, which is the production configuration: every read is then a
// plain, non-aborting read of the stored bit pattern.
type ViolationHandler func(code Errc, msg string)

var violationHandler atomic.Pointer[ViolationHandler]

// SetViolationHandler installs h as the process-wide violation handler and
// returns the previously installed handler (nil if none). Passing nil
// removes the handler. Safe for concurrent use.
func SetViolationHandler(h ViolationHandler) ViolationHandler {
	var prev *ViolationHandler
	if h == nil {
		prev = violationHandler.Swap(nil)
	} else {
		prev = violationHandler.Swap(&h)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

// violate reports a violation to the installed handler, if any. Every
// read-side check in the package funnels through here.
func violate(code Errc, msg string) {
	if h := violationHandler.Load(); h != nil {
		(*h)(code, msg)
	}
}
