package engine

import (
	"math/big"
)

// Floor sets z to the largest integer not above x, rounded to z's
// precision.
func Floor(z, x *big.Float) int {
	return roundInt(z, x, big.ToNegativeInf)
}

// Ceil sets z to the smallest integer not below x, rounded to z's
// precision.
func Ceil(z, x *big.Float) int {
	return roundInt(z, x, big.ToPositiveInf)
}

// Trunc sets z to x with its fractional part discarded, rounded to
// z's precision.
func Trunc(z, x *big.Float) int {
	return roundInt(z, x, big.ToZero)
}

// Rint sets z to x rounded to an integer in z's own rounding mode,
// the result again rounded to z's precision.
func Rint(z, x *big.Float) int {
	return roundInt(z, x, z.Mode())
}

// roundInt sets z to x rounded to an integer in the direction of mode.
// The ternary tracks the round-to-integer function, not x: an integer
// that fits z's precision is an exact result whatever its distance
// from x.
func roundInt(z, x *big.Float, mode big.RoundingMode) int {
	if x.IsInf() || x.Sign() == 0 || x.IsInt() {
		return Set(z, x)
	}

	// decompose |x| = m × 2^(ex-u); a non-integer x has s = u-ex >= 1
	// fractional bits
	var (
		u  = int64(x.MinPrec())
		ex = int64(x.MantExp(nil))
		s  = uint(u - ex)
		m  = mantInt(x)

		i  = new(big.Int).Rsh(m, s) // integer part of |x|
		up bool
	)
	switch mode {
	case big.ToZero:
		// discard
	case big.ToNegativeInf:
		up = x.Signbit()
	case big.ToPositiveInf:
		up = !x.Signbit()
	case big.AwayFromZero:
		up = true
	default: // to nearest
		if ex >= 0 {
			// compare the discarded fraction against 1/2
			f := new(big.Int).Lsh(i, s)
			f.Sub(m, f)
			h := new(big.Int).Lsh(big.NewInt(1), s-1)
			switch c := f.Cmp(h); {
			case c > 0:
				up = true
			case c == 0:
				if mode == big.ToNearestAway {
					up = true
				} else {
					up = i.Bit(0) == 1
				}
			}
		}
		// ex < 0 means |x| < 1/2, which rounds to zero
	}
	if up {
		i.Add(i, big.NewInt(1))
	}

	if i.Sign() == 0 {
		// the integer part vanished: keep the sign of x on the zero
		z.SetInt64(0)
		if x.Signbit() {
			z.Neg(z)
		}
		return 0
	}
	if x.Signbit() {
		i.Neg(i)
	}
	return SetInt(z, i)
}
