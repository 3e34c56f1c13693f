package engine

import (
	"math/big"
)

// Exp sets z to the rounded value of e**x.
//
// The argument is reduced with x = k×ln(2) + r, |r| ≤ ln(2)/2, so that
// e**x = 2**k × e**r with the Taylor series converging quickly on r.
// Results beyond the exponent range saturate to an infinity or a zero.
func Exp(z, x *big.Float) int {
	if x.Sign() == 0 {
		z.SetInt64(1)
		return 0
	}
	if x.IsInf() {
		if x.Signbit() {
			z.SetInt64(0)
		} else {
			z.SetInf(false)
		}
		return 0
	}
	// e**x has exponent x/ln(2), past either end of the exponent range
	// well before |x| reaches 2^39
	if e := x.MantExp(nil); e >= 40 {
		if x.Signbit() {
			z.SetInt64(0)
			return -1
		}
		z.SetInf(false)
		return 1
	}

	p := z.Prec() + guard

	t := getFloat(p)
	l2 := getFloat(p)
	r := getFloat(p)
	defer putFloat(t)
	defer putFloat(l2)
	defer putFloat(r)

	// reduce: r = x - k×ln(2) with k = round(x/ln(2))
	ln2(l2)
	t.Quo(x, l2)
	k := roundToInt64(t)
	r.SetInt64(k)
	r.Mul(r, l2)
	r.Sub(x, r)

	trunc := expm1T(t, r)
	t.Add(t, one) // e**r

	// scale by 2**k, saturating past the exponent range
	finalExp := k + int64(t.MantExp(nil))
	if finalExp > int64(big.MaxExp) {
		z.SetInf(false)
		return 1
	}
	if finalExp < int64(big.MinExp) {
		z.SetInt64(0)
		return -1
	}
	t.SetMantExp(t, int(k))
	z.Set(t)
	if tern := ternary(z); tern != 0 {
		return tern
	}
	// e**x is irrational for any finite nonzero x, so a rounding that
	// came out exact only means the guard bits vanished; report the
	// series truncation direction instead.
	if trunc != 0 {
		return trunc
	}
	return -1
}

// Expm1 sets z to the rounded value of e**x - 1, computed without the
// cancellation a literal e**x - 1 incurs for small x.
func Expm1(z, x *big.Float) int {
	if x.Sign() == 0 {
		z.Set(x) // ±0
		return 0
	}
	if x.IsInf() {
		if x.Signbit() {
			z.SetInt64(-1)
		} else {
			z.SetInf(false)
		}
		return 0
	}
	if e := x.MantExp(nil); e >= 40 {
		if x.Signbit() {
			// e**x - 1 is just above -1
			z.SetInt64(-1)
			return -1
		}
		z.SetInf(false)
		return 1
	}

	t := getFloat(z.Prec() + guard)
	defer putFloat(t)
	var trunc int
	if x.MantExp(nil) <= -1 {
		// |x| < 1/2: the series keeps full relative precision
		trunc = expm1T(t, x)
	} else {
		// elsewhere e**x dominates and the subtraction cannot cancel
		trunc = Exp(t, x)
		if t.IsInf() {
			z.SetInf(false)
			return 1
		}
		if t.Sign() == 0 {
			z.SetInt64(-1)
			return -1
		}
		t.Sub(t, one)
	}
	z.Set(t)
	if tern := ternary(z); tern != 0 {
		return tern
	}
	// e**x - 1 is irrational whenever e**x is; see Exp
	if trunc != 0 {
		return trunc
	}
	return -1
}

// expm1T sets z to e**x - 1 using the Taylor series of the
// exponential. The series converges for any finite x; the callers
// reduce their arguments so that it converges fast. The returned value
// is the direction of z relative to the exact sum, for the callers to
// fall back on when their final rounding alone looks exact.
func expm1T(z, x *big.Float) int {
	var (
		p       = z.Prec()
		q       = getFloat(p).SetInt64(1)
		fact    = getFloat(p).SetInt64(1)
		t       = getFloat(p)
		xe      = getFloat(p).Set(x)
		s       = getFloat(p).Set(x) // first term
		epsilon = new(big.Float).SetMantExp(one, -int(p))
	)
	defer putFloat(q)
	defer putFloat(fact)
	defer putFloat(t)
	defer putFloat(xe)
	defer putFloat(s)

	for {
		xe.Set(t.Mul(xe, x))
		fact.Set(t.Mul(fact, q.Add(q, one)))
		z.Set(s)
		s.Add(z, t.Quo(xe, fact))
		if cmpAbs(t.Sub(z, s), epsilon) <= 0 {
			// the dropped term dominates the remaining tail, so t's
			// sign is also the sign of z minus the exact sum
			return t.Sign()
		}
	}
}

// roundToInt64 returns x rounded to the nearest integer. The callers
// guarantee |x| is far below the int64 range.
func roundToInt64(x *big.Float) int64 {
	t := getFloat(64)
	defer putFloat(t)
	if x.Signbit() {
		t.Sub(x, half)
	} else {
		t.Add(x, half)
	}
	k, _ := t.Int64()
	return k
}
