package engine

import (
	"math/big"

	"github.com/pkg/errors"
)

// Parse sets z to the rounded value of the number s and reports the
// rounding direction. It accepts the syntax of math/big.Float.Parse
// with base detection: an optional sign, a decimal, binary ("0b"),
// octal ("0o") or hexadecimal ("0x") mantissa, an optional exponent,
// and "inf"/"Inf". NaN is not part of the syntax; the caller screens
// for it.
func Parse(z *big.Float, s string) (int, error) {
	_, _, err := z.Parse(s, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", s)
	}
	return ternary(z), nil
}
