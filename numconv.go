package bigfloat

import (
	"fmt"
	"math/big"

	"github.com/mdickinson/bigfloat/internal/engine"
)

var numZero Num

// Parse parses s as a floating-point number and returns it rounded to
// the effective context. The mantissa may be decimal, binary ("0b"),
// octal ("0o") or hexadecimal ("0x"), with the exponent syntax of
// big.Float.Parse; "inf" and "Inf" with an optional sign are the
// infinities, and "nan" in any case is a NaN.
//
// A NaN result raises NaNFlag; rounding raises flags like any other
// operation. A syntax error leaves the flags alone and returns the
// zero Num along with the error.
func (e *Env) Parse(s string, over ...Context) (Num, error) {
	if isNaNString(s) {
		return e.nan(e.resolve(over)), nil
	}
	var err error
	n := e.apply0(over, !isInfString(s), func(z *big.Float) int {
		tern, perr := engine.Parse(z, s)
		if perr != nil {
			// a partial parse may have left a value in z; clear it so
			// that no range flags are raised for a rejected string
			err = perr
			z.SetInt64(0)
			return 0
		}
		return tern
	})
	if err != nil {
		return Num{}, err
	}
	return n, nil
}

// ParseExact parses s like Parse but outside any environment: the
// result has exactly the given precision, rounding is to nearest even,
// and no flags exist to raise. The rounding direction is recorded in
// the result's Acc.
func ParseExact(s string, prec uint) (Num, error) {
	if prec < MinPrec || prec > MaxPrec {
		return Num{}, fmt.Errorf("%w: precision %d out of range [%d, %d]", ErrInvalidAttr, prec, MinPrec, uint(MaxPrec))
	}
	if isNaNString(s) {
		return makeNaN(prec), nil
	}
	z := new(big.Float).SetPrec(prec)
	tern, err := engine.Parse(z, s)
	if err != nil {
		return Num{}, err
	}
	return makeNum(z, accOf(tern)), nil
}

// isNaNString reports whether s spells a NaN: "nan" in any case, with
// an optional leading sign. The sign is immaterial, NaNs are unsigned.
func isNaNString(s string) bool {
	if len(s) == 4 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) == 3 &&
		(s[0] == 'n' || s[0] == 'N') &&
		(s[1] == 'a' || s[1] == 'A') &&
		(s[2] == 'n' || s[2] == 'N')
}

// isNaNString's counterpart for the two infinity spellings the number
// syntax admits.
func isInfString(s string) bool {
	if len(s) == 4 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) == 3 && (s == "Inf" || s == "inf")
}

// Text converts x to a string under the given format and digit count,
// with the formats of big.Float.Text. In particular format 'x' prints
// a hexadecimal mantissa with a decimal power of two, and a negative
// number of digits selects the shortest round-tripping output. A NaN
// renders as "NaN" in every format.
func (x Num) Text(format byte, prec int) string {
	if x.nan {
		return "NaN"
	}
	return x.f.Text(format, prec)
}

// Append appends to buf the textual form of x as produced by Text, and
// returns the extended buffer.
func (x Num) Append(buf []byte, format byte, prec int) []byte {
	if x.nan {
		return append(buf, "NaN"...)
	}
	return x.f.Append(buf, format, prec)
}

// String formats x like x.Text('g', 10).
func (x Num) String() string {
	return x.Text('g', 10)
}

var _ fmt.Formatter = numZero // Num must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts all the verbs and flags
// of big.Float.Format; a NaN renders as "NaN" under every verb.
func (x Num) Format(s fmt.State, format rune) {
	if x.nan {
		fmt.Fprint(s, "NaN")
		return
	}
	x.f.Format(s, format)
}

var _ fmt.Scanner = &numZero // *Num must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner. It reads a number into z
// at z's previous precision, or 64 bits when scanning into a zero Num,
// rounding to nearest even with the direction recorded in Acc. Like
// big.Float.Scan it does not handle ±Inf or NaN.
func (z *Num) Scan(s fmt.ScanState, ch rune) error {
	prec := z.Prec()
	if prec == 0 {
		prec = 64
	}
	f := new(big.Float).SetPrec(prec)
	if err := f.Scan(s, ch); err != nil {
		return err
	}
	*z = makeNum(f, Accuracy(f.Acc()))
	return nil
}
