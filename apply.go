package bigfloat

import (
	"errors"
	"math/big"

	"github.com/mdickinson/bigfloat/internal/engine"
)

// This file is the single path between the caller-facing operations and
// the engine. Every operation resolves its effective context here, runs
// the engine primitive under a NaN recovery, and post-processes the raw
// result against the effective exponent bounds.

// resolve computes the effective context for one operation: the current
// context with the overrides merged on, left to right. The result always
// has all five attributes set.
func (e *Env) resolve(over []Context) Context {
	e.init()
	eff := e.ctx
	for _, c := range over {
		eff = eff.Merge(c)
	}
	return eff
}

// apply0 dispatches an operation without Num operands (a constant or a
// conversion from a non-Num type). finiteIn reports whether the
// mathematical input is finite; conversions of an infinite input must
// not be mistaken for an operation that produced an exact infinity.
func (e *Env) apply0(over []Context, finiteIn bool, op func(z *big.Float) int) Num {
	eff := e.resolve(over)
	return e.run(eff, finiteIn, op)
}

// apply1 dispatches a unary operation.
func (e *Env) apply1(x Num, over []Context, op func(z, x *big.Float) int) Num {
	eff := e.resolve(over)
	if x.nan {
		return e.nan(eff)
	}
	return e.run(eff, x.IsFinite(), func(z *big.Float) int {
		return op(z, &x.f)
	})
}

// apply2 dispatches a binary operation.
func (e *Env) apply2(x, y Num, over []Context, op func(z, x, y *big.Float) int) Num {
	eff := e.resolve(over)
	if x.nan || y.nan {
		return e.nan(eff)
	}
	return e.run(eff, x.IsFinite() && y.IsFinite(), func(z *big.Float) int {
		return op(z, &x.f, &y.f)
	})
}

// apply3 dispatches a ternary operation.
func (e *Env) apply3(x, y, u Num, over []Context, op func(z, x, y, u *big.Float) int) Num {
	eff := e.resolve(over)
	if x.nan || y.nan || u.nan {
		return e.nan(eff)
	}
	return e.run(eff, x.IsFinite() && y.IsFinite() && u.IsFinite(), func(z *big.Float) int {
		return op(z, &x.f, &y.f, &u.f)
	})
}

// run allocates the result at the effective precision and rounding mode,
// invokes the engine, and post-processes.
func (e *Env) run(eff Context, finiteIn bool, op func(z *big.Float) int) Num {
	prec, _ := eff.Prec()
	mode, _ := eff.Rounding()

	z := new(big.Float).SetPrec(prec).SetMode(mode.big())
	tern, nan := runEngine(z, op)
	if nan {
		return e.nan(eff)
	}
	return e.post(eff, z, tern, finiteIn)
}

// runEngine invokes op, converting ErrNaN panics from the engine into a
// NaN signal. Any other panic propagates.
func runEngine(z *big.Float, op func(*big.Float) int) (tern int, nan bool) {
	defer func() {
		if p := recover(); p != nil {
			err, ok := p.(error)
			if !ok || !isNaNPanic(err) {
				panic(p)
			}
			nan = true
		}
	}()
	tern = op(z)
	return tern, false
}

func isNaNPanic(err error) bool {
	var (
		e1 big.ErrNaN
		e2 engine.ErrNaN
		e3 ErrNaN
	)
	return errors.As(err, &e1) || errors.As(err, &e2) || errors.As(err, &e3)
}

// nan raises NaNFlag and returns a NaN at the effective precision.
func (e *Env) nan(eff Context) Num {
	e.flags |= NaNFlag
	prec, _ := eff.Prec()
	return makeNaN(prec)
}

// post applies the effective exponent bounds to the raw engine result z,
// raising flags on e, and wraps the final value:
//
//   - an infinite raw result with a nonzero ternary hit the engine's own
//     exponent limits: Overflow. With a zero ternary and finite inputs it
//     is a true exact infinity: DivisionByZero.
//   - a zero raw result with a nonzero ternary likewise collapsed at the
//     engine's limits: Underflow.
//   - a finite nonzero result with exponent above emax is forced to the
//     signed infinity: Overflow. Below emin: Underflow. Within the
//     gradual underflow range under subnormalize, the result is rounded
//     a second time to a multiple of 2**(emin-1).
//   - any surviving nonzero ternary raises Inexact.
func (e *Env) post(eff Context, z *big.Float, tern int, finiteIn bool) Num {
	prec, _ := eff.Prec()
	emin, _ := eff.Emin()
	emax, _ := eff.Emax()
	subnorm, _ := eff.Subnormalize()
	mode, _ := eff.Rounding()

	if z.IsInf() {
		if tern != 0 {
			e.flags |= Overflow | Inexact
		} else if finiteIn {
			e.flags |= DivisionByZero
		}
		return makeNum(z, accOf(tern))
	}
	if z.Sign() == 0 {
		if tern != 0 {
			e.flags |= Underflow | Inexact
		}
		return makeNum(z, accOf(tern))
	}

	// Finite nonzero: z = m * 2**exp, 0.5 <= |m| < 1.
	exp := z.MantExp(nil)
	if exp > emax {
		// Overflow forces the signed infinity in every rounding mode.
		z.SetInf(z.Signbit())
		e.flags |= Overflow | Inexact
		return makeNum(z, makeAcc(!z.Signbit()))
	}
	inSubnormalRange := subnorm && exp < emin+int(prec)-1
	if exp < emin || inSubnormalRange {
		e.flags |= Underflow
	}
	if inSubnormalRange {
		tern = secondRound(z, tern, emin, mode)
	}
	if tern != 0 {
		e.flags |= Inexact
	}
	return makeNum(z, accOf(tern))
}

func accOf(tern int) Accuracy {
	switch {
	case tern < 0:
		return Below
	case tern > 0:
		return Above
	}
	return Exact
}

// secondRound rounds the subnormal value z, in place, to a multiple of
// the subnormal step 2**(emin-1), in the given mode. tern is the ternary
// of the first rounding; an apparent tie at z's precision is resolved
// with it, since the true value then lies on the side tern points away
// from. The result is the ternary of the combined rounding relative to
// the exact value.
//
// z must be finite, nonzero, and have exponent below emin+prec-1, which
// guarantees that the quotient z / 2**(emin-1) has fewer than prec bits
// before the point.
func secondRound(z *big.Float, tern int, emin int, mode RoundingMode) int {
	// Decompose |z| = m * 2**(exp-u) with m an integer of u bits, so that
	// |z| / 2**(emin-1) = m * 2**-shift for shift as below.
	exp := z.MantExp(nil)
	u := z.MinPrec()
	shift := int64(u) + int64(emin) - 1 - int64(exp)
	if shift <= 0 {
		// z is already a multiple of the step.
		return tern
	}

	var mf big.Float
	z.MantExp(&mf)
	mf.Abs(&mf)
	mf.SetMantExp(&mf, int(u))
	m, _ := mf.Int(nil)

	// Split m * 2**-shift into integer part i and fractional part, and
	// compare the fraction against 1/2. The fraction is never zero: m is
	// odd and shift >= 1. A shift beyond m's width means the whole
	// quotient is a fraction below 1/2.
	var i big.Int
	cmpHalf := -1
	if shift <= int64(m.BitLen()) {
		s := uint(shift)
		i.Rsh(m, s)
		var rem, half big.Int
		rem.Sub(m, new(big.Int).Lsh(&i, s))
		half.Lsh(big.NewInt(1), s-1)
		cmpHalf = rem.Cmp(&half)
	}

	// Pick the rounded magnitude: i (down) or i+1 (up).
	neg := z.Signbit()
	var up bool
	switch mode {
	case ToNearestEven:
		switch {
		case cmpHalf < 0:
			up = false
		case cmpHalf > 0:
			up = true
		case tern != 0:
			// The stored value sits on the tie, the true value does not:
			// tern tells us which side it is on.
			if neg {
				up = tern > 0
			} else {
				up = tern < 0
			}
		default:
			up = i.Bit(0) != 0 // ties to even
		}
	case ToZero:
		up = false
	case AwayFromZero:
		up = true
	case ToNegativeInf:
		up = neg
	case ToPositiveInf:
		up = !neg
	}

	prec := z.Prec()
	if up {
		i.Add(&i, big.NewInt(1))
	}
	if i.Sign() == 0 {
		z.SetInt64(0)
	} else {
		z.SetInt(&i)
		z.SetMantExp(z, emin-1)
	}
	if neg {
		z.Neg(z)
	}
	if debugNum && z.Prec() != prec {
		panic("second rounding changed precision")
	}

	if up {
		tern = +1
	} else {
		tern = -1
	}
	if neg {
		tern = -tern
	}
	return tern
}
