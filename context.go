package bigfloat

import (
	"fmt"
	"math/big"
	"strings"
)

// Bits of Context.has, one per attribute.
const (
	hasPrec = 1 << iota
	hasEmin
	hasEmax
	hasSubnorm
	hasMode
)

// A Context is an immutable set of attributes controlling precision,
// exponent range, subnormalization and rounding for operations performed
// through an Env. Each attribute is independently optional: an unset
// attribute means "inherit from the surrounding context".
//
// Contexts are plain values. They may be compared with ==, copied freely,
// and shared between goroutines. The zero value is EmptyContext, the
// context with no attribute set, which is the identity for Merge.
type Context struct {
	prec    uint32
	emin    int32
	emax    int32
	mode    RoundingMode
	subnorm bool
	has     uint8
}

// An Attr sets a single attribute on a Context under construction.
// Attrs are created by Prec, Emin, Emax, Subnormalize and Rounding.
type Attr func(*Context) error

// Prec sets the precision attribute, in mantissa bits.
// The legal range is [MinPrec, MaxPrec].
func Prec(prec uint) Attr {
	return func(c *Context) error {
		if prec < MinPrec || prec > MaxPrec {
			return fmt.Errorf("%w: precision %d out of range [%d, %d]", ErrInvalidAttr, prec, MinPrec, uint(MaxPrec))
		}
		c.prec = uint32(prec)
		c.has |= hasPrec
		return nil
	}
}

// Emin sets the minimum exponent attribute. The smallest positive value
// representable under a context with minimum exponent emin is
// 2**(emin-1). The legal range is [MinExp, MaxExp].
func Emin(emin int) Attr {
	return func(c *Context) error {
		if emin < MinExp || emin > MaxExp {
			return fmt.Errorf("%w: emin %d out of range [%d, %d]", ErrInvalidAttr, emin, MinExp, MaxExp)
		}
		c.emin = int32(emin)
		c.has |= hasEmin
		return nil
	}
}

// Emax sets the maximum exponent attribute. The largest finite value
// representable under a context with maximum exponent emax is just below
// 2**emax. The legal range is [MinExp, MaxExp].
func Emax(emax int) Attr {
	return func(c *Context) error {
		if emax < MinExp || emax > MaxExp {
			return fmt.Errorf("%w: emax %d out of range [%d, %d]", ErrInvalidAttr, emax, MinExp, MaxExp)
		}
		c.emax = int32(emax)
		c.has |= hasEmax
		return nil
	}
}

// Subnormalize sets the subnormalization attribute. When true, results
// close to the bottom of the exponent range undergo gradual underflow:
// magnitudes below 2**(emin+prec-2) are rounded a second time to a
// multiple of 2**(emin-1), emulating IEEE-754 subnormals.
func Subnormalize(on bool) Attr {
	return func(c *Context) error {
		c.subnorm = on
		c.has |= hasSubnorm
		return nil
	}
}

// Rounding sets the rounding mode attribute.
func Rounding(mode RoundingMode) Attr {
	return func(c *Context) error {
		if mode > ToPositiveInf {
			return fmt.Errorf("%w: unknown rounding mode %d", ErrInvalidAttr, byte(mode))
		}
		c.mode = mode
		c.has |= hasMode
		return nil
	}
}

// NewContext returns a Context with the given attributes set. Attributes
// not mentioned remain unset. Each attribute is validated against its own
// legal range; an out-of-range attribute yields an error wrapping
// ErrInvalidAttr.
//
// Cross-attribute invariants are deliberately not validated: a sparse
// Context may set only one exponent bound, and two individually sensible
// Contexts may merge into one with emin > emax. Operations remain well
// defined in that case; the overflow check takes precedence over the
// underflow check.
func NewContext(attrs ...Attr) (Context, error) {
	var c Context
	for _, attr := range attrs {
		if err := attr(&c); err != nil {
			return Context{}, err
		}
	}
	return c, nil
}

// MustContext is like NewContext but panics on invalid attributes.
// It simplifies initialization of package-level Contexts.
func MustContext(attrs ...Attr) Context {
	c, err := NewContext(attrs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Merge combines c and o: for each attribute, o's value wins if set,
// otherwise c's value is kept, otherwise the attribute remains unset.
// Merge is associative but not commutative, and EmptyContext is its
// identity.
func (c Context) Merge(o Context) Context {
	if o.has&hasPrec != 0 {
		c.prec = o.prec
		c.has |= hasPrec
	}
	if o.has&hasEmin != 0 {
		c.emin = o.emin
		c.has |= hasEmin
	}
	if o.has&hasEmax != 0 {
		c.emax = o.emax
		c.has |= hasEmax
	}
	if o.has&hasSubnorm != 0 {
		c.subnorm = o.subnorm
		c.has |= hasSubnorm
	}
	if o.has&hasMode != 0 {
		c.mode = o.mode
		c.has |= hasMode
	}
	return c
}

// Prec reports the precision attribute and whether it is set.
func (c Context) Prec() (prec uint, ok bool) {
	return uint(c.prec), c.has&hasPrec != 0
}

// Emin reports the minimum exponent attribute and whether it is set.
func (c Context) Emin() (emin int, ok bool) {
	return int(c.emin), c.has&hasEmin != 0
}

// Emax reports the maximum exponent attribute and whether it is set.
func (c Context) Emax() (emax int, ok bool) {
	return int(c.emax), c.has&hasEmax != 0
}

// Subnormalize reports the subnormalization attribute and whether it is
// set.
func (c Context) Subnormalize() (on bool, ok bool) {
	return c.subnorm, c.has&hasSubnorm != 0
}

// Rounding reports the rounding mode attribute and whether it is set.
func (c Context) Rounding() (mode RoundingMode, ok bool) {
	return c.mode, c.has&hasMode != 0
}

// String returns a description of c listing its set attributes, in the
// form "Context(prec: 24, rounding: ToNearestEven)".
func (c Context) String() string {
	var b strings.Builder
	b.WriteString("Context(")
	sep := ""
	if c.has&hasPrec != 0 {
		fmt.Fprintf(&b, "prec: %d", c.prec)
		sep = ", "
	}
	if c.has&hasEmin != 0 {
		fmt.Fprintf(&b, "%semin: %d", sep, c.emin)
		sep = ", "
	}
	if c.has&hasEmax != 0 {
		fmt.Fprintf(&b, "%semax: %d", sep, c.emax)
		sep = ", "
	}
	if c.has&hasSubnorm != 0 {
		fmt.Fprintf(&b, "%ssubnormalize: %t", sep, c.subnorm)
		sep = ", "
	}
	if c.has&hasMode != 0 {
		fmt.Fprintf(&b, "%srounding: %s", sep, c.mode)
	}
	b.WriteString(")")
	return b.String()
}

// EmptyContext is the Context with no attribute set, the Merge identity.
var EmptyContext Context

// DefaultContext is the context every Env starts from: 53 bits of
// precision, round to nearest with ties to even, no subnormalization, and
// the full exponent range of the engine. It corresponds to IEEE-754
// binary64 arithmetic without bounds on the exponent.
var DefaultContext = MustContext(
	Prec(53),
	Emin(MinExp),
	Emax(MaxExp),
	Subnormalize(false),
	Rounding(ToNearestEven),
)

// Contexts for the 16, 32, 64 and 128 bit IEEE-754 binary interchange
// formats. See IEEEContext.
var (
	Binary16  = must(IEEEContext(16))
	Binary32  = must(IEEEContext(32))
	Binary64  = must(IEEEContext(64))
	Binary128 = must(IEEEContext(128))
)

func must(c Context, err error) Context {
	if err != nil {
		panic(err)
	}
	return c
}

// IEEEContext returns the Context corresponding to the IEEE-754 binary
// interchange format of the given width in bits. Width must be 16, 32,
// 64, 128, or a multiple of 32 greater than 128. All five attributes are
// set: precision and exponent bounds follow the interchange format
// formulas, subnormalization is on, and rounding is to nearest.
//
// Widths whose exponent range exceeds the limits of this package yield
// an error wrapping ErrInvalidAttr.
func IEEEContext(width int) (Context, error) {
	var prec int
	switch width {
	case 16:
		prec = 11
	case 32:
		prec = 24
	case 64:
		prec = 53
	case 128:
		prec = 113
	default:
		if width < 128 || width%32 != 0 {
			return Context{}, fmt.Errorf("%w: nonstandard width %d: want 16, 32, 64, 128, or k*32 with k >= 4", ErrInvalidAttr, width)
		}
		// The precision for large formats is width - round(4*log2(width)) + 13.
		// Since 8*log2(width) is never an odd integer for integral widths,
		// round(4*log2(width)) == bitlen(width**8) / 2 exactly.
		w8 := new(big.Int).Exp(big.NewInt(int64(width)), big.NewInt(8), nil)
		prec = width - w8.BitLen()/2 + 13
	}

	shift := width - prec - 1
	if shift >= 31 {
		return Context{}, fmt.Errorf("%w: width %d: exponent bound 2**%d out of range", ErrInvalidAttr, width, shift)
	}
	emax := 1 << shift
	return NewContext(
		Prec(uint(prec)),
		Emin(4-emax-prec),
		Emax(emax),
		Subnormalize(true),
		Rounding(ToNearestEven),
	)
}
