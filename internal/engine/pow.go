package engine

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// Pow sets z to the rounded value of x**y.
//
// Integer exponents with manageable mantissa growth are computed
// exactly before a single rounding; everything else goes through
// e**(y×ln|x|). The special cases follow IEEE 754-2019 §9.2.1: among
// others, pow(x, ±0) = 1 and pow(1, y) = 1 for every x and y.
// Pow panics with ErrNaN if x is negative and y is not an integer.
func Pow(z, x, y *big.Float) int {
	if y.Sign() == 0 {
		z.SetInt64(1)
		return 0
	}
	if x.Cmp(one) == 0 {
		z.SetInt64(1)
		return 0
	}
	if y.Cmp(one) == 0 {
		return Set(z, x)
	}

	yInt := y.IsInt()
	// an integer y is odd iff its mantissa, which always ends in a 1
	// bit, is scaled by 2^0
	yOdd := yInt && y.MantExp(nil) == int(y.MinPrec())
	neg := x.Signbit() && yOdd

	if x.Sign() == 0 {
		if y.Signbit() {
			// pow(±0, y<0): an exact infinity
			z.SetInf(neg)
		} else {
			z.SetInt64(0)
			if neg {
				z.Neg(z)
			}
		}
		return 0
	}
	if x.IsInf() {
		if y.Signbit() {
			z.SetInt64(0)
			if neg {
				z.Neg(z)
			}
		} else {
			z.SetInf(neg)
		}
		return 0
	}
	if y.IsInf() {
		if cmpAbs(x, one) == 0 {
			// pow(-1, ±Inf) = 1
			z.SetInt64(1)
			return 0
		}
		if (cmpAbs(x, one) > 0) != y.Signbit() {
			z.SetInf(false)
		} else {
			z.SetInt64(0)
		}
		return 0
	}
	if x.Signbit() && !yInt {
		panic(ErrNaN{"power of a negative number with a non-integer exponent"})
	}
	if cmpAbs(x, one) == 0 {
		// x = -1 with an integer exponent
		z.SetInt64(1)
		if neg {
			z.Neg(z)
		}
		return 0
	}

	if yi, acc := y.Int64(); acc == big.Exact {
		un := uint64(yi)
		if yi < 0 {
			un = -un
		}
		ae := int64(x.MantExp(nil))
		if ae < 0 {
			ae = -ae
		}
		// bound the exact mantissa and exponent growth so that the
		// result cannot saturate either; un is capped first so that
		// neither product can wrap
		if un <= 1<<20 && uint64(x.MinPrec())*un <= 1<<20 && ae*int64(un) <= 1<<30 {
			return powExact(z, x, un, yi < 0, neg)
		}
	}

	// z = e**(y × ln|x|)
	p := z.Prec() + guard
	ax := getFloat(x.Prec())
	lx := getFloat(p)
	t := getFloat(p)
	defer putFloat(ax)
	defer putFloat(lx)
	defer putFloat(t)

	ax.Abs(x)
	logPositive(lx, ax)
	t.Mul(y, lx)
	Exp(lx, t)
	if lx.IsInf() {
		z.SetInf(neg)
		if neg {
			return -1
		}
		return 1
	}
	if lx.Sign() == 0 {
		z.SetInt64(0)
		if neg {
			z.Neg(z)
			return 1
		}
		return -1
	}
	if neg {
		lx.Neg(lx)
	}
	z.Set(lx)
	return ternary(z)
}

// powExact sets z to x**n, or its reciprocal when invert is set, with
// the power computed exactly before a single rounding. The caller
// bounds the growth of both the mantissa and the exponent, and passes
// the sign of the result.
func powExact(z, x *big.Float, n uint64, invert, neg bool) int {
	u := int(x.MinPrec())
	e := x.MantExp(nil)
	m := mantInt(x)

	var pw big.Int
	powInt(&pw, m, n)

	w := getFloat(uint(pw.BitLen()))
	defer putFloat(w)
	w.SetInt(&pw)
	w.SetMantExp(w, (e-u)*int(n))
	if neg {
		w.Neg(w)
	}
	if invert {
		z.Quo(one, w)
	} else {
		z.Set(w)
	}
	return ternary(z)
}

// powInt sets z to b**n using binary exponentiation. z and b must be
// distinct; b is not preserved. Products go through bigfft, which
// falls back to the schoolbook algorithm below its size threshold.
func powInt(z, b *big.Int, n uint64) *big.Int {
	z.SetInt64(1)
	for n > 0 {
		if n&1 != 0 {
			z.Set(bigfft.Mul(z, b))
		}
		n >>= 1
		if n > 0 {
			b.Set(bigfft.Mul(b, b))
		}
	}
	return z
}
