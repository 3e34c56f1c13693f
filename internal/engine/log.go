package engine

import (
	"math/big"
	"sync"
)

// Log sets z to the rounded natural logarithm of x.
// Log panics with ErrNaN if x is negative.
func Log(z, x *big.Float) int {
	switch x.Sign() {
	case -1:
		panic(ErrNaN{"natural logarithm of a negative number"})
	case 0: // log(0) = -inf
		z.SetInf(true)
		return 0
	}
	if x.IsInf() {
		z.SetInf(false)
		return 0
	}
	if x.Cmp(one) == 0 {
		z.SetInt64(0)
		return 0
	}

	t := getFloat(z.Prec() + guard)
	defer putFloat(t)
	logPositive(t, x)
	z.Set(t)
	return ternary(z)
}

// Log2 sets z to the rounded base-2 logarithm of x. Powers of two have
// exact integer logarithms.
// Log2 panics with ErrNaN if x is negative.
func Log2(z, x *big.Float) int {
	switch x.Sign() {
	case -1:
		panic(ErrNaN{"base-2 logarithm of a negative number"})
	case 0:
		z.SetInf(true)
		return 0
	}
	if x.IsInf() {
		z.SetInf(false)
		return 0
	}
	if x.MinPrec() == 1 {
		// x = 2^(e-1) exactly
		return SetInt64(z, int64(x.MantExp(nil))-1)
	}

	p := z.Prec() + guard
	t := getFloat(p)
	u := getFloat(p)
	defer putFloat(t)
	defer putFloat(u)
	logPositive(t, x)
	ln2(u)
	t.Quo(t, u)
	z.Set(t)
	return ternary(z)
}

// Log10 sets z to the rounded base-10 logarithm of x. Powers of ten
// have exact integer logarithms.
// Log10 panics with ErrNaN if x is negative.
func Log10(z, x *big.Float) int {
	switch x.Sign() {
	case -1:
		panic(ErrNaN{"base-10 logarithm of a negative number"})
	case 0:
		z.SetInf(true)
		return 0
	}
	if x.IsInf() {
		z.SetInf(false)
		return 0
	}
	if x.Cmp(one) == 0 {
		z.SetInt64(0)
		return 0
	}
	if k, ok := pow10Exp(x); ok {
		return SetInt64(z, k)
	}

	p := z.Prec() + guard
	t := getFloat(p)
	u := getFloat(p)
	defer putFloat(t)
	defer putFloat(u)
	logPositive(t, x)
	ln10(u)
	t.Quo(t, u)
	z.Set(t)
	return ternary(z)
}

// pow10Exp reports whether x is 10^k for some k >= 1, and that k.
// Exponents beyond 2^10 are not checked; the callers only need the
// common, humanly sized powers to come out exact.
func pow10Exp(x *big.Float) (int64, bool) {
	if !x.IsInt() || x.MantExp(nil) > 1<<10 {
		return 0, false
	}
	i, _ := x.Int(nil)
	var (
		k   int64
		r   big.Int
		ten = big.NewInt(10)
	)
	for i.Cmp(ten) >= 0 {
		i.QuoRem(i, ten, &r)
		if r.Sign() != 0 {
			return 0, false
		}
		k++
	}
	if k == 0 || i.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	return k, true
}

// logPositive sets z to ln(x) for finite x > 0, x != 1, computed to
// z's precision with nearest-even rounding.
//
// It uses the Salamin identity ln(x) ≈ π/(2·AGM(1, 4/x)), whose error
// term drops below 2^-p once x has been scaled above 2^((p+1)/2+1).
// Described in Beeler, Gosper, Schroeppel, HAKMEM, Artificial
// Intelligence Memo No. 239, Item 143.
func logPositive(z, x *big.Float) {
	prec := z.Prec()
	p := prec + guard

	// The de-scaling subtraction below cancels about -exp(x-1) leading
	// bits when x is close to 1; widen the working precision to cover.
	if x.Cmp(half) > 0 && x.Cmp(two) < 0 {
		t := getFloat(x.Prec() + 2)
		t.Sub(x, one)
		if e := t.MantExp(nil); e < 0 {
			p += uint(-e)
		}
		putFloat(t)
	}

	s := getFloat(p)
	t := getFloat(p)
	u := getFloat(p)
	defer putFloat(s)
	defer putFloat(t)
	defer putFloat(u)

	neg := false
	if x.Cmp(one) < 0 {
		// ln(x) = -ln(1/x)
		neg = true
		s.Quo(one, x)
	} else {
		s.Set(x)
	}

	// scale s by 2^m so that s×2^m > 2/sqrt(epsilon),
	// with epsilon = 2^-p and 2/sqrt(epsilon) = 2^(p/2+1)
	m := (int(p)+1)/2 - s.MantExp(nil) + 2
	if m > 0 {
		s.SetMantExp(s, m)
	}

	t.SetInt64(1)
	u.Quo(four, s)
	agm(s, t, u)
	pi(u)
	s.Quo(u, t.Mul(s, two))
	if m > 0 {
		// scale back: ln(x) = ln(x×2^m) - m×ln(2)
		ln2(t)
		u.SetInt64(int64(m))
		s.Sub(s, u.Mul(u, t))
	}
	if neg {
		s.Neg(s)
	}
	z.Set(s)
}

// agm sets z to the arithmetic-geometric mean of a and b and returns
// z. a, b and z must be distinct values; a and b are not preserved.
func agm(z, a, b *big.Float) *big.Float {
	var (
		prec    = z.Prec()
		t       = getFloat(prec)
		epsilon = new(big.Float).SetMantExp(one, -int(prec))
	)
	defer putFloat(t)

	for {
		t.Set(a)
		a.Mul(z.Add(a, b), half) // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(t, b))      // b_n+1 = sqrt(a_n × b_n)
		if cmpAbs(z.Sub(a, b), epsilon) <= 0 {
			break
		}
	}
	return z.Set(a)
}

var (
	ln2Mu sync.Mutex
	_ln2  = new(big.Float)
)

// Ln2 sets z to the rounded value of ln(2).
func Ln2(z *big.Float) int {
	t := getFloat(z.Prec() + guard)
	defer putFloat(t)
	ln2(t)
	z.Set(t)
	return ternary(z)
}

// ln2 sets z to ln(2) with at least z.Prec() significant bits.
// Computed values stay cached; the cache only ever grows.
func ln2(z *big.Float) {
	ln2Mu.Lock()
	if _ln2.Prec() < z.Prec() {
		computeLn2(_ln2.SetPrec(z.Prec()))
	}
	z.Set(_ln2)
	ln2Mu.Unlock()
}

// computeLn2 computes ln(2) to z.Prec() bits of precision.
//
// This is a special case of logPositive where no value for ln(2) is
// needed to scale back: with x = 2^(2^k) the scaling is built into x,
// and ln(x)/2^k is a pure exponent shift.
func computeLn2(z *big.Float) {
	prec := z.Prec()
	p := prec + guard

	// scale so that x = 2^exp > 2^((p+1)/2+1), with exp = 2^k
	k := 0
	exp := 1
	for eps := (int(p)+1)/2 + 1; exp <= eps; exp *= 2 {
		k++
	}

	x := getFloat(p)
	t := getFloat(p)
	u := getFloat(p)
	defer putFloat(x)
	defer putFloat(t)
	defer putFloat(u)

	// SetMantExp adopts the precision of its mant argument; x doubles
	// as mant to keep the working precision
	x.SetMantExp(x.SetInt64(1), exp)
	t.SetInt64(1)
	u.Quo(four, x)
	agm(x, t, u)
	pi(u)
	x.Quo(u, t.Mul(x, two))

	// reverse scaling: ln(2) = ln(2^(2^k)) / 2^k
	z.Set(x.SetMantExp(x, -k))
}

var (
	ln10Mu sync.Mutex
	_ln10  = new(big.Float)
)

// ln10 sets z to ln(10) with at least z.Prec() significant bits.
// Computed values stay cached; the cache only ever grows.
func ln10(z *big.Float) {
	ln10Mu.Lock()
	if _ln10.Prec() < z.Prec() {
		logPositive(_ln10.SetPrec(z.Prec()), ten)
	}
	z.Set(_ln10)
	ln10Mu.Unlock()
}
