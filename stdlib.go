// This file mirrors types and constants from math/big.

package bigfloat

import (
	"math"
	"math/big"
)

// Exponent and precision limits. The exponent limits double as the
// saturation bounds of the underlying engine: a context whose bounds are
// left at MinExp/MaxExp behaves as if the exponent range were unbounded.
const (
	MaxExp  = math.MaxInt32  // largest supported exponent
	MinExp  = math.MinInt32  // smallest supported exponent
	MaxPrec = math.MaxUint32 // largest (theoretically) supported precision; likely memory-limited
	MinPrec = 2              // smallest supported precision
)

// RoundingMode determines how a result is rounded to its working
// precision. Rounding may change the value; the rounding error is
// described by the result's Accuracy.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

//go:generate stringer -type=RoundingMode

// big returns the math/big equivalent of mode.
func (mode RoundingMode) big() big.RoundingMode {
	switch mode {
	case ToNearestEven:
		return big.ToNearestEven
	case ToZero:
		return big.ToZero
	case AwayFromZero:
		return big.AwayFromZero
	case ToNegativeInf:
		return big.ToNegativeInf
	case ToPositiveInf:
		return big.ToPositiveInf
	}
	panic("unknown rounding mode")
}

// Accuracy describes the rounding error produced by the most recent
// operation that generated a Num value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a Num.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate stringer -type=Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// An ErrNaN panic is raised by an operation that would lead to a NaN
// under IEEE-754 rules outside of an Env, such as comparing against a
// NaN operand. An ErrNaN implements the error interface.
//
// Operations performed through an Env never panic with ErrNaN; they
// return a NaN result and raise the NaNFlag flag instead.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}
