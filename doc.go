/*
Package bigfloat implements arbitrary-precision binary floating-point
arithmetic under IEEE 754 style contexts, with sticky condition flags.

The arithmetic itself is performed by math/big.Float, which gives every
operation a correctly rounded result and a rounding direction. This
package supplies the layer that math/big leaves out: bounded exponent
ranges with overflow, underflow and gradual (subnormal) underflow,
quiet NaNs, sticky flags recording the conditions met along a
computation, and a context mechanism to scope all of those choices.

The three central types are Context, Env and Num.

A Context is an immutable, possibly partial set of arithmetic
attributes: precision, minimum and maximum exponent, subnormalization,
and rounding mode. Contexts are built once from attribute functions and
then merged, with attributes of the right operand winning:

	ctx := bigfloat.MustContext(bigfloat.Prec(24), bigfloat.Rounding(bigfloat.ToZero))
	eff := bigfloat.DefaultContext.Merge(ctx)

The package provides ready-made contexts for the IEEE 754 interchange
formats: Binary16, Binary32, Binary64, Binary128, and IEEEContext for
any width that is a multiple of 32.

An Env holds the current context and the sticky flags of one goroutine;
environments must not be shared. The zero Env is ready to use and
evaluates under DefaultContext. Operations are methods on *Env; each
resolves its effective context by merging any context arguments onto
the current one, rounds its result accordingly, and raises flags:

	var env bigfloat.Env
	x := env.NewFloat64(2)
	y := env.Sqrt(x, bigfloat.MustContext(bigfloat.Prec(100)))

The current context changes either permanently with SetContext or for a
scope with Push/Pop, conventionally on one line:

	defer env.Push(ctx).Pop()

Flags accumulate until cleared: after a sequence of operations,
env.Flags() tells whether anything was inexact, overflowed,
underflowed, divided by zero, or produced a NaN along the way.

A Num is an immutable floating-point value: a sign, a mantissa of a
fixed precision of at least 2 bits, and an exponent, or an infinity, or
an unsigned quiet NaN. A Num remembers the precision it was created
with and the direction its creating operation rounded in (Acc). Being a
value, a Num is copied freely and never mutated; there are no in-place
operations.

Nums enter the system through two distinct paths. The environment
factories (NewFloat64, Parse, ...) round to the effective context and
raise flags like any operation. The exact constructors (ExactFloat64,
ExactInt64, ExactInt, ExactNum, ParseExact) are free functions
independent of any Env: they pick the minimal precision that represents
the input exactly, never raise flags, and so can be used to build
constants before any environment exists.

NaNs are quiet and contagious: any operation with a NaN operand yields
a NaN and raises NaNFlag. Only Cmp and the integer conversions refuse
NaNs, panicking with ErrNaN the way big.Float does for undefined
operations.

Finally, Num satisfies the fmt package's Formatter interface for
formatted printing, *Num its Scanner interface for scanning, and both
directions of the encoding interfaces for gob and text marshalling.
*/
package bigfloat
