package bigfloat

import (
	"fmt"
	"strings"
)

// Flags is a bitmask of sticky exception flags raised by operations
// performed through an Env. For example, dividing a finite nonzero value
// by zero raises the DivisionByZero flag on the calling Env. Once raised,
// a flag stays set until cleared explicitly; operations only ever add
// flags, never remove them.
type Flags uint8

const (
	// Inexact is raised when a result differs from the value that would
	// have been obtained with unbounded precision and exponent range.
	Inexact Flags = 1 << iota
	// Overflow is raised when a result's magnitude, after rounding to the
	// working precision, reaches or exceeds 2**emax for the effective
	// exponent bound emax. (Inexact is also raised.)
	Overflow
	// Underflow is raised when a nonzero result's magnitude lies below
	// the smallest normal value 2**(emin-1) for the effective exponent
	// bound emin.
	Underflow
	// NaNFlag is raised when an operation produces a NaN, for example
	// subtracting infinities of equal sign or taking the square root of a
	// negative value.
	NaNFlag
	// DivisionByZero is raised when an operation on finite operands
	// produces an exact infinity, such as dividing a nonzero value by
	// zero or taking the logarithm of zero.
	DivisionByZero
)

// All is the union of every flag known to this package.
const All = Inexact | Overflow | Underflow | NaNFlag | DivisionByZero

func (f Flags) String() string {
	if f == 0 {
		return ""
	}

	var b strings.Builder
	for i := Flags(1); f != 0; i <<= 1 {
		if f&i == 0 {
			continue
		}
		switch f ^= i; i {
		case Inexact:
			b.WriteString("inexact, ")
		case Overflow:
			b.WriteString("overflow, ")
		case Underflow:
			b.WriteString("underflow, ")
		case NaNFlag:
			b.WriteString("nan, ")
		case DivisionByZero:
			b.WriteString("division by zero, ")
		default:
			fmt.Fprintf(&b, "unknown(%d), ", i)
		}
	}
	// Omit trailing comma and space.
	return b.String()[:b.Len()-2]
}
