package bigfloat

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

const debugNum = true

// A Num is an immutable arbitrary-precision binary floating-point value.
// Its value is one of: signed finite nonzero, signed zero, signed
// infinity, or NaN. A finite nonzero Num of precision p is exactly
//
//	(-1)**s * m * 2**e
//
// with mantissa m a p-bit binary fraction in [0.5, 1.0).
//
// A Num owns its precision: once constructed, it is independent of the
// Env and Context that produced it. Nums are plain values; they may be
// copied freely and shared between goroutines. No operation ever
// modifies an existing Num.
//
// The zero value for a Num is a plain 0 of precision 0.
type Num struct {
	f   big.Float
	acc Accuracy
	nan bool
}

// makeNum wraps a freshly computed engine value. The caller must not use
// f afterwards.
func makeNum(f *big.Float, acc Accuracy) Num {
	n := Num{f: *f, acc: acc}
	if debugNum {
		n.validate()
	}
	return n
}

// makeNaN returns a NaN of the given precision. NaNs are unsigned.
func makeNaN(prec uint) Num {
	var n Num
	n.nan = true
	n.f.SetPrec(prec)
	n.acc = Exact
	if debugNum {
		n.validate()
	}
	return n
}

func (x *Num) validate() {
	if x.acc < Below || x.acc > Above {
		panic(fmt.Sprintf("invalid accuracy %d", x.acc))
	}
	if x.nan && x.f.Sign() != 0 {
		panic("NaN carrying a nonzero payload")
	}
}

// ExactFloat64 converts x to a Num without loss: the result has
// precision 53 and converting it back with Float64 recovers x exactly.
// A NaN input yields a NaN Num. ExactFloat64 is independent of any Env
// and never raises flags.
func ExactFloat64(x float64) Num {
	if math.IsNaN(x) {
		return makeNaN(53)
	}
	var f big.Float
	f.SetPrec(53).SetFloat64(x)
	return makeNum(&f, Exact)
}

// ExactInt64 converts x to a Num without loss. The result's precision is
// the number of bits needed to represent x, at least MinPrec.
// ExactInt64 is independent of any Env and never raises flags.
func ExactInt64(x int64) Num {
	ux := uint64(x)
	if x < 0 {
		ux = -ux
	}
	prec := max(bits.Len64(ux), MinPrec)
	var f big.Float
	f.SetPrec(uint(prec)).SetInt64(x)
	return makeNum(&f, Exact)
}

// ExactUint64 is like ExactInt64 for unsigned inputs.
func ExactUint64(x uint64) Num {
	prec := max(bits.Len64(x), MinPrec)
	var f big.Float
	f.SetPrec(uint(prec)).SetUint64(x)
	return makeNum(&f, Exact)
}

// ExactInt converts x to a Num without loss. The result's precision is
// x.BitLen(), at least MinPrec.
func ExactInt(x *big.Int) Num {
	prec := max(x.BitLen(), MinPrec)
	var f big.Float
	f.SetPrec(uint(prec)).SetInt(x)
	return makeNum(&f, Exact)
}

// ExactNum returns a Num equal to x. The result's precision is x's,
// raised to MinPrec if needed, so that exact construction from an
// already representable value is the identity.
func ExactNum(x Num) Num {
	prec := max(x.f.Prec(), MinPrec)
	if x.nan {
		return makeNaN(prec)
	}
	var f big.Float
	f.SetPrec(prec).Set(&x.f)
	return makeNum(&f, Exact)
}

// Prec returns the mantissa precision of x in bits.
// The result is 0 for the zero value of Num.
func (x Num) Prec() uint {
	return x.f.Prec()
}

// MinPrec returns the minimum precision required to represent x exactly,
// independent of the actual precision of x.
// The result is 0 for |x| == 0, |x| == Inf, and NaN.
func (x Num) MinPrec() uint {
	if x.nan {
		return 0
	}
	return x.f.MinPrec()
}

// Acc returns the accuracy of x: the direction in which x was rounded,
// relative to the exact result, by the operation that produced it.
func (x Num) Acc() Accuracy {
	return x.acc
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x Num) Sign() int {
	if x.nan {
		return 0
	}
	return x.f.Sign()
}

// Signbit reports whether x is negative or negative zero.
// NaNs are unsigned; their sign bit is unset.
func (x Num) Signbit() bool {
	if x.nan {
		return false
	}
	return x.f.Signbit()
}

// IsNaN reports whether x is a NaN.
func (x Num) IsNaN() bool {
	return x.nan
}

// IsInf reports whether x is +Inf or -Inf.
func (x Num) IsInf() bool {
	return !x.nan && x.f.IsInf()
}

// IsZero reports whether x is +0 or -0.
func (x Num) IsZero() bool {
	return !x.nan && x.f.Sign() == 0
}

// IsFinite reports whether x is neither an infinity nor a NaN.
func (x Num) IsFinite() bool {
	return !x.nan && !x.f.IsInf()
}

// IsInt reports whether x is an integer. ±Inf and NaN are not integers.
func (x Num) IsInt() bool {
	return !x.nan && x.f.IsInt()
}

// MantExp breaks x into its mantissa and exponent components, such that
// x == mant * 2**exp with 0.5 <= |mant| < 1.0. The mantissa keeps x's
// precision and sign.
//
// Special cases are:
//
//	( ±0).MantExp() = ±0, 0
//	(±Inf).MantExp() = ±Inf, 0
//	( NaN).MantExp() = NaN, 0
func (x Num) MantExp() (mant Num, exp int) {
	if x.nan {
		return x, 0
	}
	var m big.Float
	exp = x.f.MantExp(&m)
	return makeNum(&m, Exact), exp
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, +Inf == +Inf)
//	+1 if x >  y
//
// Cmp panics with ErrNaN if x or y is a NaN; NaNs are unordered.
// Operations performed through an Env never panic, so callers that may
// hold NaNs should test with IsNaN first.
func (x Num) Cmp(y Num) int {
	if x.nan || y.nan {
		panic(ErrNaN{"comparison with NaN operand"})
	}
	return x.f.Cmp(&y.f)
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1 like Cmp.
// CmpAbs panics with ErrNaN if x or y is a NaN.
func (x Num) CmpAbs(y Num) int {
	if x.nan || y.nan {
		panic(ErrNaN{"comparison with NaN operand"})
	}
	var xa, ya big.Float
	xa.Copy(&x.f)
	ya.Copy(&y.f)
	return xa.Abs(&xa).Cmp(ya.Abs(&ya))
}

// Float64 returns the float64 value nearest to x, and an Accuracy
// describing the direction of the rounding error. Values too large or
// too small for a float64 become an infinity or a signed zero.
// A NaN converts to a float64 NaN.
func (x Num) Float64() (float64, Accuracy) {
	if x.nan {
		return math.NaN(), Exact
	}
	v, acc := x.f.Float64()
	return v, Accuracy(acc)
}

// Float32 is like Float64 for float32.
func (x Num) Float32() (float32, Accuracy) {
	if x.nan {
		return float32(math.NaN()), Exact
	}
	v, acc := x.f.Float32()
	return v, Accuracy(acc)
}

// Int64 returns the integer resulting from truncating x toward zero, and
// an Accuracy. The result saturates at the int64 range bounds, with the
// Accuracy indicating the direction. Int64 panics with ErrNaN if x is a
// NaN.
func (x Num) Int64() (int64, Accuracy) {
	if x.nan {
		panic(ErrNaN{"integer conversion of NaN"})
	}
	v, acc := x.f.Int64()
	return v, Accuracy(acc)
}

// Uint64 is like Int64 for unsigned integers.
func (x Num) Uint64() (uint64, Accuracy) {
	if x.nan {
		panic(ErrNaN{"integer conversion of NaN"})
	}
	v, acc := x.f.Uint64()
	return v, Accuracy(acc)
}

// Int returns the integer resulting from truncating x toward zero, using
// z as storage if non-nil. If x is an infinity the result is nil, with
// the Accuracy indicating the cut direction. Int panics with ErrNaN if x
// is a NaN.
func (x Num) Int(z *big.Int) (*big.Int, Accuracy) {
	if x.nan {
		panic(ErrNaN{"integer conversion of NaN"})
	}
	r, acc := x.f.Int(z)
	return r, Accuracy(acc)
}

// Rat returns the exact rational number corresponding to x, using z as
// storage if non-nil. If x is an infinity or a NaN, Rat returns nil and
// ErrNonFinite: no finite ratio exists.
func (x Num) Rat(z *big.Rat) (*big.Rat, error) {
	if x.nan || x.f.IsInf() {
		return nil, ErrNonFinite
	}
	r, _ := x.f.Rat(z)
	return r, nil
}

// Float copies x into z, or into a new big.Float if z is nil. The copy
// is exact and has x's precision. If x is a NaN, Float returns nil and
// ErrNonFinite: the engine type cannot represent a NaN.
func (x Num) Float(z *big.Float) (*big.Float, error) {
	if x.nan {
		return nil, ErrNonFinite
	}
	if z == nil {
		z = new(big.Float)
	}
	return z.Copy(&x.f), nil
}
