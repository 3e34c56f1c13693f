package engine

import (
	"math/big"
)

// Mod sets z to the remainder x - q×y with q = trunc(x/y), so that the
// result carries the sign of x and a magnitude below |y|. The remainder
// is computed exactly before the single final rounding.
// Mod panics with ErrNaN if y is zero or x is infinite.
func Mod(z, x, y *big.Float) int {
	if y.Sign() == 0 {
		panic(ErrNaN{"remainder with a zero modulus"})
	}
	if x.IsInf() {
		panic(ErrNaN{"remainder of an infinity"})
	}
	if x.Sign() == 0 {
		z.Set(x) // ±0
		return 0
	}
	if y.IsInf() {
		return Set(z, x)
	}

	ex, ey := x.MantExp(nil), y.MantExp(nil)
	if ex < ey {
		// |x| < |y| already
		return Set(z, x)
	}

	// decompose |x| = mx × 2^ax and |y| = my × 2^ay with mx, my odd
	var (
		ax = int64(ex) - int64(x.MinPrec())
		ay = int64(ey) - int64(y.MinPrec())
		mx = mantInt(x)
		my = mantInt(y)

		r     big.Int
		scale int64
	)
	if d := ax - ay; d >= 0 {
		// |x| mod |y| = (mx × 2^d mod my) × 2^ay. Reducing 2^d first
		// keeps the cost logarithmic in d, which spans the whole
		// exponent range.
		r.Exp(big.NewInt(2), big.NewInt(d), my)
		r.Mul(&r, mx)
		r.Mod(&r, my)
		scale = ay
	} else {
		// -d is at most the mantissa width of x
		r.Mod(mx, my.Lsh(my, uint(-d)))
		scale = ax
	}

	if r.Sign() == 0 {
		z.SetInt64(0)
		if x.Signbit() {
			z.Neg(z)
		}
		return 0
	}

	w := getFloat(uint(r.BitLen()))
	defer putFloat(w)
	w.SetInt(&r)
	w.SetMantExp(w, int(scale))
	if w.Sign() == 0 {
		// the exact remainder fell below the engine exponent range
		z.SetInt64(0)
		if x.Signbit() {
			z.Neg(z)
			return 1
		}
		return -1
	}
	if x.Signbit() {
		w.Neg(w)
	}
	z.Set(w)
	return ternary(z)
}

// mantInt returns the integer mantissa m of a nonzero finite x, so
// that |x| = m × 2^(exp-minprec) with m odd.
func mantInt(x *big.Float) *big.Int {
	u := int(x.MinPrec())
	t := getFloat(uint(u))
	defer putFloat(t)
	t.Abs(x)
	t.SetMantExp(t, u-x.MantExp(nil))
	m, _ := t.Int(nil)
	return m
}
