package engine

import (
	"math/big"
	"sync"
)

// shared small constants; operands only, never operation targets
var (
	one     = big.NewFloat(1)
	two     = big.NewFloat(2)
	four    = big.NewFloat(4)
	ten     = big.NewFloat(10)
	half    = big.NewFloat(0.5)
	quarter = big.NewFloat(0.25)
)

var (
	piMu sync.Mutex
	_pi  = new(big.Float)
)

// Pi sets z to the rounded value of π.
func Pi(z *big.Float) int {
	t := getFloat(z.Prec() + guard)
	defer putFloat(t)
	pi(t)
	z.Set(t)
	return ternary(z)
}

// pi sets z to π with at least z.Prec() significant bits. Computed
// values stay cached; the cache only ever grows.
func pi(z *big.Float) {
	piMu.Lock()
	if _pi.Prec() < z.Prec() {
		gaussLegendre(_pi.SetPrec(z.Prec()))
	}
	z.Set(_pi)
	piMu.Unlock()
}

// gaussLegendre computes π to z.Prec() bits of precision with the
// Gauss-Legendre algorithm.
func gaussLegendre(z *big.Float) {
	prec := z.Prec()
	p := prec + guard

	var (
		a = getFloat(p).SetInt64(1)
		u = getFloat(p)
		b = getFloat(p)
		t = getFloat(p).Set(quarter)
		q = getFloat(p).SetInt64(1)
		w = getFloat(p)

		epsilon = new(big.Float).SetMantExp(one, -int(p))
	)
	defer putFloat(a)
	defer putFloat(u)
	defer putFloat(b)
	defer putFloat(t)
	defer putFloat(q)
	defer putFloat(w)

	u.Sqrt(two)
	b.Quo(one, u)

	for {
		u.Set(a)                 // a_n
		a.Mul(w.Add(a, b), half) // a_n+1
		b.Sqrt(w.Mul(u, b))      // b_n+1

		// t = t - q×(a_n - a_n+1)^2, shuffling temps so that no
		// argument is also the target of its operation
		t.Set(u.Sub(t, w.Mul(u.Mul(w.Sub(u, a), w), q)))

		if cmpAbs(w.Sub(a, b), epsilon) <= 0 {
			break
		}

		q.Set(w.Mul(q, two))
	}

	// π = (a+b)^2 / (4t)
	w.Add(a, b)
	a.Mul(w, w)
	t.Mul(t, four)
	z.Set(w.Quo(a, t))
}
