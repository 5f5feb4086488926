package num

import (
	"fmt"
	"io"
	"strconv"
)

// Poisoned values always render as the literal marker below, never as an
// accidental numeric value, for every verb.
const invalidMarker = "[error]"

// formatValue renders a valid payload for the requested verb, preserving
// the alternate flag and width.
func formatValue(f fmt.State, verb rune, v any) {
	switch verb {
	case 's', 'v':
		fmt.Fprintf(f, "%d", v)
		return
	}
	spec := "%"
	if f.Flag('#') {
		spec += "#"
	}
	if w, ok := f.Width(); ok {
		spec += strconv.Itoa(w)
	}
	fmt.Fprintf(f, spec+string(verb), v)
}

// String renders the value in decimal, or the invalid marker when
// poisoned.
func (x Safe[T]) String() string {
	if x.errc != ErrcSuccess {
		return invalidMarker
	}
	return fmt.Sprintf("%d", x.val)
}

// Format implements fmt.Formatter. Valid values support the numeric
// verbs (%d, %b, %o, %x, %X) as well as %v and %s; poisoned values
// render as the invalid marker for every verb.
func (x Safe[T]) Format(f fmt.State, verb rune) {
	if x.errc != ErrcSuccess {
		io.WriteString(f, invalidMarker)
		return
	}
	formatValue(f, verb, x.val)
}

// String renders the index in decimal, or the invalid marker when
// poisoned.
func (i Idx) String() string {
	if i.errc != ErrcSuccess {
		return invalidMarker
	}
	return strconv.FormatUint(uint64(i.val), 10)
}

// Format implements fmt.Formatter with the same rules as Safe.Format.
func (i Idx) Format(f fmt.State, verb rune) {
	if i.errc != ErrcSuccess {
		io.WriteString(f, invalidMarker)
		return
	}
	formatValue(f, verb, i.val)
}
