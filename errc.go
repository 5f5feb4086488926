package num

import "strconv"

// Errc represents a status code that fits in a single 32-bit register.
//
// A code of zero is success. The reserved negative codes below identify
// contract violations (bugs) and are classified as "unchecked". Every other
// non-zero value is an application-defined, expected failure and is
// classified as "checked". The library attaches no meaning to application
// codes; it only reports them back.
type Errc int32

const (
	// ErrcSuccess indicates no error.
	ErrcSuccess Errc = 0

	// ErrcFailure indicates a general, unclassified failure.
	ErrcFailure Errc = -1

	// ErrcPrecondition indicates a precondition was violated.
	ErrcPrecondition Errc = -2

	// ErrcPostcondition indicates a postcondition was violated.
	ErrcPostcondition Errc = -3

	// ErrcAssertion indicates an assertion failed.
	ErrcAssertion Errc = -4

	// ErrcInvalidArgument indicates an argument was invalid.
	ErrcInvalidArgument Errc = -10

	// ErrcIndexOutOfBounds indicates an index was outside its container.
	ErrcIndexOutOfBounds Errc = -11

	// ErrcBadFunction indicates an invalid function object was invoked.
	ErrcBadFunction Errc = -12

	// ErrcUnsignedWrap indicates unsigned arithmetic wrapped.
	ErrcUnsignedWrap Errc = -30

	// ErrcNarrowOverflow indicates a narrowing conversion lost information.
	ErrcNarrowOverflow Errc = -31

	// ErrcSignedOverflow indicates signed arithmetic overflowed.
	ErrcSignedOverflow Errc = -32

	// ErrcDivideByZero indicates a division or modulo by zero.
	ErrcDivideByZero Errc = -33

	// ErrcNullDereference indicates a nil pointer was dereferenced.
	ErrcNullDereference Errc = -34

	// ErrcBusy indicates a resource was busy.
	ErrcBusy Errc = -50

	// ErrcAlreadyExists indicates a resource already exists.
	ErrcAlreadyExists Errc = -51

	// ErrcUnsupported indicates the operation is not supported.
	ErrcUnsupported Errc = -52
)

// errcMessages holds the descriptions for success and the reserved codes.
// Application-defined codes are deliberately absent; the library has no
// knowledge of their meaning.
var errcMessages = map[Errc]string{
	ErrcSuccess:          "success",
	ErrcFailure:          "general failure",
	ErrcPrecondition:     "precondition violation",
	ErrcPostcondition:    "postcondition violation",
	ErrcAssertion:        "assertion violation",
	ErrcInvalidArgument:  "invalid argument",
	ErrcIndexOutOfBounds: "index out of bounds",
	ErrcBadFunction:      "bad function call",
	ErrcUnsignedWrap:     "unsigned wrap",
	ErrcNarrowOverflow:   "narrowing overflow",
	ErrcSignedOverflow:   "signed overflow",
	ErrcDivideByZero:     "divide by zero",
	ErrcNullDereference:  "null dereference",
	ErrcBusy:             "busy",
	ErrcAlreadyExists:    "already exists",
	ErrcUnsupported:      "unsupported",
}

// Success returns true only for the zero code.
func (e Errc) Success() bool {
	return e == ErrcSuccess
}

// Failure returns true for every non-zero code.
func (e Errc) Failure() bool {
	return e != ErrcSuccess
}

// IsUnchecked returns true only for the reserved contract-violation codes.
// It returns false for success and for application-defined codes.
func (e Errc) IsUnchecked() bool {
	if e == ErrcSuccess {
		return false
	}
	_, ok := errcMessages[e]
	return ok
}

// IsChecked returns true for non-zero codes outside the reserved set.
// These are application-defined, expected, recoverable conditions.
func (e Errc) IsChecked() bool {
	return e.Failure() && !e.IsUnchecked()
}

// Message returns a description for success and every reserved code.
// It returns the empty string for application-defined codes.
func (e Errc) Message() string {
	return errcMessages[e]
}

// String returns the code's message when one is known, otherwise the
// decimal value of the code.
func (e Errc) String() string {
	if msg, ok := errcMessages[e]; ok {
		return msg
	}
	return strconv.FormatInt(int64(e), 10)
}
