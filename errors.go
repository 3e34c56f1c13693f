package bigfloat

import "errors"

var (
	// ErrInvalidAttr is returned, wrapped with the offending attribute,
	// by NewContext, IEEEContext and ParseExact when an attribute lies
	// outside its legal range.
	ErrInvalidAttr = errors.New("bigfloat: invalid context attribute")

	// ErrNonFinite is returned by conversions that require a finite
	// value, such as Num.Rat, when the operand is an infinity or a NaN.
	ErrNonFinite = errors.New("bigfloat: non-finite value")
)
