// Package engine provides the correctly-rounded arithmetic primitives
// underlying package bigfloat. It adapts math/big.Float to a uniform
// calling convention: every operation fills a result value whose
// precision and rounding mode the caller has already configured, and
// returns the ternary rounding direction (-1, 0 or +1) of the result
// relative to the exact mathematical value.
//
// The exponent range is the engine's own, effectively unbounded range;
// bounded exponent ranges and subnormalization are the caller's concern.
// Operations whose mathematical result is undefined panic with an ErrNaN
// (the package's own or math/big's); the caller recovers.
package engine

import (
	"math/big"
)

// guard is the extra working precision, in bits, used by operations that
// cannot round in one step. One word of guard bits keeps the final
// rounding faithful without noticeably growing the temporaries.
const guard = 64

// An ErrNaN panic is raised by an operation whose mathematical result
// would be a NaN, mirroring math/big's convention.
type ErrNaN struct {
	Msg string
}

func (err ErrNaN) Error() string {
	return err.Msg
}

// ternary converts the accuracy of z's most recent rounding.
func ternary(z *big.Float) int {
	return int(z.Acc())
}

// cmpAbs compares |x| and |y| and returns -1, 0 or +1 like Cmp.
// big.Float has no CmpAbs of its own; only big.Int does.
func cmpAbs(x, y *big.Float) int {
	if x.Signbit() == y.Signbit() {
		c := x.Cmp(y)
		if x.Signbit() {
			return -c
		}
		return c
	}
	t := getFloat(0)
	defer putFloat(t)
	if x.Signbit() {
		return t.Neg(x).Cmp(y)
	}
	return x.Cmp(t.Neg(y))
}

// Add sets z to the rounded sum x+y.
// Add panics with ErrNaN when adding infinities of opposite signs.
func Add(z, x, y *big.Float) int {
	z.Add(x, y)
	return ternary(z)
}

// Sub sets z to the rounded difference x-y.
// Sub panics with ErrNaN when subtracting infinities of equal signs.
func Sub(z, x, y *big.Float) int {
	z.Sub(x, y)
	return ternary(z)
}

// Mul sets z to the rounded product x*y.
// Mul panics with ErrNaN when multiplying a zero by an infinity.
func Mul(z, x, y *big.Float) int {
	z.Mul(x, y)
	return ternary(z)
}

// Quo sets z to the rounded quotient x/y. Division of a finite nonzero
// value by zero yields an exact infinity.
// Quo panics with ErrNaN when both operands are zero or both infinite.
func Quo(z, x, y *big.Float) int {
	z.Quo(x, y)
	return ternary(z)
}

// Neg sets z to the rounded value of x with its sign negated.
func Neg(z, x *big.Float) int {
	z.Neg(x)
	return ternary(z)
}

// Abs sets z to the rounded absolute value of x.
func Abs(z, x *big.Float) int {
	z.Abs(x)
	return ternary(z)
}

// Sqrt sets z to the rounded square root of x. big.Float.Sqrt leaves
// the accuracy of its result undefined, so the rounding direction is
// derived by squaring the result exactly and comparing against x.
// Sqrt panics with ErrNaN if x is negative.
func Sqrt(z, x *big.Float) int {
	z.Sqrt(x)
	if z.Sign() == 0 || z.IsInf() {
		return 0
	}
	t := getFloat(2 * z.Prec())
	defer putFloat(t)
	t.Mul(z, z)
	return t.Cmp(x)
}

// Set sets z to the rounded value of x.
func Set(z, x *big.Float) int {
	z.Set(x)
	return ternary(z)
}

// SetFloat64 sets z to the rounded value of x.
// The caller must not pass a NaN; math/big panics on one.
func SetFloat64(z *big.Float, x float64) int {
	z.SetFloat64(x)
	return ternary(z)
}

// SetInt64 sets z to the rounded value of x.
func SetInt64(z *big.Float, x int64) int {
	z.SetInt64(x)
	return ternary(z)
}

// SetUint64 sets z to the rounded value of x.
func SetUint64(z *big.Float, x uint64) int {
	z.SetUint64(x)
	return ternary(z)
}

// SetInt sets z to the rounded value of x.
func SetInt(z *big.Float, x *big.Int) int {
	z.SetInt(x)
	return ternary(z)
}

// SetRat sets z to the rounded value of x.
func SetRat(z *big.Float, x *big.Rat) int {
	z.SetRat(x)
	return ternary(z)
}

// FMA sets z to x*y + u with a single rounding: the product is formed
// exactly at full precision and only the final sum is rounded.
// FMA panics with ErrNaN under the combined special-value rules of Mul
// and Add.
func FMA(z, x, y, u *big.Float) int {
	// The exact product needs at most the sum of the operand precisions.
	p := x.Prec() + y.Prec()
	if p < guard {
		p = guard
	}
	t := getFloat(p)
	defer putFloat(t)
	t.Mul(x, y)
	z.Add(t, u)
	return ternary(z)
}
