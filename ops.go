package bigfloat

import (
	"math"
	"math/big"

	"github.com/mdickinson/bigfloat/internal/engine"
)

// Operations evaluate under the environment's current context with the
// optional context arguments merged on top, left to right. Each result
// is rounded to the effective precision and rounding mode and checked
// against the effective exponent range; conditions met on the way raise
// the environment's sticky flags.

// NewFloat64 returns x rounded to the effective context.
// A NaN argument yields a NaN and raises NaNFlag.
func (e *Env) NewFloat64(x float64, over ...Context) Num {
	if math.IsNaN(x) {
		return e.nan(e.resolve(over))
	}
	return e.apply0(over, !math.IsInf(x, 0), func(z *big.Float) int {
		return engine.SetFloat64(z, x)
	})
}

// NewInt64 returns x rounded to the effective context.
func (e *Env) NewInt64(x int64, over ...Context) Num {
	return e.apply0(over, true, func(z *big.Float) int {
		return engine.SetInt64(z, x)
	})
}

// NewUint64 returns x rounded to the effective context.
func (e *Env) NewUint64(x uint64, over ...Context) Num {
	return e.apply0(over, true, func(z *big.Float) int {
		return engine.SetUint64(z, x)
	})
}

// NewInt returns x rounded to the effective context.
func (e *Env) NewInt(x *big.Int, over ...Context) Num {
	return e.apply0(over, true, func(z *big.Float) int {
		return engine.SetInt(z, x)
	})
}

// NewRat returns x rounded to the effective context.
func (e *Env) NewRat(x *big.Rat, over ...Context) Num {
	return e.apply0(over, true, func(z *big.Float) int {
		return engine.SetRat(z, x)
	})
}

// Round returns x rounded to the effective context. Re-rounding an
// already coarser value is exact and raises nothing.
func (e *Env) Round(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Set)
}

// Add returns the rounded sum x+y.
func (e *Env) Add(x, y Num, over ...Context) Num {
	return e.apply2(x, y, over, engine.Add)
}

// Sub returns the rounded difference x-y.
func (e *Env) Sub(x, y Num, over ...Context) Num {
	return e.apply2(x, y, over, engine.Sub)
}

// Mul returns the rounded product x×y.
func (e *Env) Mul(x, y Num, over ...Context) Num {
	return e.apply2(x, y, over, engine.Mul)
}

// Quo returns the rounded quotient x/y. A finite nonzero x divided by
// zero yields the signed infinity and raises DivisionByZero.
func (e *Env) Quo(x, y Num, over ...Context) Num {
	return e.apply2(x, y, over, engine.Quo)
}

// FMA returns x×y+u with a single rounding of the exact product-sum.
func (e *Env) FMA(x, y, u Num, over ...Context) Num {
	return e.apply3(x, y, u, over, engine.FMA)
}

// Mod returns the rounded remainder x - q×y with q = trunc(x/y). The
// result carries the sign of x and has magnitude below |y|; Mod(-5, 3)
// is -2, not 1.
func (e *Env) Mod(x, y Num, over ...Context) Num {
	return e.apply2(x, y, over, engine.Mod)
}

// Sqrt returns the rounded square root of x. A negative x yields a NaN
// and raises NaNFlag.
func (e *Env) Sqrt(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Sqrt)
}

// Neg returns x with its sign negated, rounded to the effective
// context.
func (e *Env) Neg(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Neg)
}

// Abs returns the absolute value of x, rounded to the effective
// context.
func (e *Env) Abs(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Abs)
}

// Min returns the smaller of x and y, rounded to the effective
// context. A single NaN operand is ignored and raises nothing; the
// result is then the other operand. Both operands NaN yield a NaN and
// raise NaNFlag. A negative zero is smaller than a positive one.
func (e *Env) Min(x, y Num, over ...Context) Num {
	if x.nan || y.nan {
		if x.nan && y.nan {
			return e.nan(e.resolve(over))
		}
		if x.nan {
			x = y
		}
		return e.apply1(x, over, engine.Set)
	}
	pick := x
	switch c := x.f.Cmp(&y.f); {
	case c > 0:
		pick = y
	case c == 0:
		if y.f.Signbit() {
			pick = y
		}
	}
	return e.apply1(pick, over, engine.Set)
}

// Max returns the larger of x and y, rounded to the effective context.
// A single NaN operand is ignored and raises nothing; the result is
// then the other operand. Both operands NaN yield a NaN and raise
// NaNFlag. A positive zero is larger than a negative one.
func (e *Env) Max(x, y Num, over ...Context) Num {
	if x.nan || y.nan {
		if x.nan && y.nan {
			return e.nan(e.resolve(over))
		}
		if x.nan {
			x = y
		}
		return e.apply1(x, over, engine.Set)
	}
	pick := x
	switch c := x.f.Cmp(&y.f); {
	case c < 0:
		pick = y
	case c == 0:
		if !y.f.Signbit() {
			pick = y
		}
	}
	return e.apply1(pick, over, engine.Set)
}

// Exp returns the rounded value of e**x.
func (e *Env) Exp(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Exp)
}

// Expm1 returns the rounded value of e**x - 1, keeping full relative
// precision for small x.
func (e *Env) Expm1(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Expm1)
}

// Log returns the rounded natural logarithm of x. Log of zero yields
// the negative infinity and raises DivisionByZero; a negative x yields
// a NaN and raises NaNFlag.
func (e *Env) Log(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Log)
}

// Log2 returns the rounded base-2 logarithm of x, with the edge
// behavior of Log.
func (e *Env) Log2(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Log2)
}

// Log10 returns the rounded base-10 logarithm of x, with the edge
// behavior of Log.
func (e *Env) Log10(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Log10)
}

// Pow returns the rounded value of x**y. A negative x with a
// non-integer y yields a NaN and raises NaNFlag.
//
// Non-integer exponents are computed through e**(y×log x), and the
// Inexact flag reflects that computation even when the mathematical
// result happens to be representable, as in Pow(4, 0.5).
func (e *Env) Pow(x, y Num, over ...Context) Num {
	return e.apply2(x, y, over, engine.Pow)
}

// Floor returns the largest integer not above x, rounded to the
// effective context.
func (e *Env) Floor(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Floor)
}

// Ceil returns the smallest integer not below x, rounded to the
// effective context.
func (e *Env) Ceil(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Ceil)
}

// Trunc returns x with its fractional part discarded, rounded to the
// effective context.
func (e *Env) Trunc(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Trunc)
}

// RInt returns x rounded to an integer in the effective rounding mode,
// the result again rounded to the effective context.
func (e *Env) RInt(x Num, over ...Context) Num {
	return e.apply1(x, over, engine.Rint)
}

// Pi returns π rounded to the effective context.
func (e *Env) Pi(over ...Context) Num {
	return e.apply0(over, true, engine.Pi)
}

// Ln2 returns ln(2) rounded to the effective context.
func (e *Env) Ln2(over ...Context) Num {
	return e.apply0(over, true, engine.Ln2)
}
