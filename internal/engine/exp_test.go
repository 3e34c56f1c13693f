package engine

import (
	"math/big"
	"strconv"
	"testing"
)

const eDigits = "2.7182818284590452353602874713526624977572470936999595749669676277240766303535475945713821785251664274274"

func Test_Exp(t *testing.T) {
	x := mkfloat(53, "1")
	for _, prec := range []uint{24, 53, 100, 200, 320} {
		z := new(big.Float).SetPrec(prec)
		tern := Exp(z, x)
		if ref := mkfloat(prec, eDigits); z.Cmp(ref) != 0 {
			t.Fatalf("e at %d bits\ngot : %g\nwant: %g", prec, z, ref)
		}
		if tern == 0 {
			t.Errorf("e at %d bits reported exact", prec)
		}
	}
}

func Test_Exp_Specials(t *testing.T) {
	z := new(big.Float).SetPrec(53)
	if tern := Exp(z, mkfloat(53, "0")); z.Cmp(mkfloat(53, "1")) != 0 || tern != 0 {
		t.Errorf("exp(0) = %g (%d), want exact 1", z, tern)
	}
	if tern := Exp(z, mkfloat(53, "Inf")); !z.IsInf() || z.Signbit() || tern != 0 {
		t.Errorf("exp(+Inf) = %g (%d)", z, tern)
	}
	if tern := Exp(z, mkfloat(53, "-Inf")); z.Sign() != 0 || tern != 0 {
		t.Errorf("exp(-Inf) = %g (%d), want exact 0", z, tern)
	}
}

func Test_Exp_Saturation(t *testing.T) {
	z := new(big.Float).SetPrec(53)
	if tern := Exp(z, mkfloat(53, "0x1p45")); !z.IsInf() || tern != 1 {
		t.Errorf("exp(2**45) = %g (%d), want +Inf (1)", z, tern)
	}
	if tern := Exp(z, mkfloat(53, "-0x1p45")); z.Sign() != 0 || tern != -1 {
		t.Errorf("exp(-2**45) = %g (%d), want 0 (-1)", z, tern)
	}
}

func Test_Exp_Reduction(t *testing.T) {
	// exp(10×ln(2)) must come back to 1024 through the k×ln(2) reduction
	u := new(big.Float).SetPrec(300)
	ln2(u)
	x := new(big.Float).SetPrec(300)
	x.Mul(u, mkfloat(53, "10"))

	z := new(big.Float).SetPrec(200)
	Exp(z, x)

	diff := new(big.Float).SetPrec(300)
	diff.Sub(z, mkfloat(53, "1024"))
	if cmpAbs(diff, mkfloat(24, "0x1p-175")) > 0 {
		t.Errorf("exp(10 ln 2) = %g, off 1024 by %g", z, diff)
	}
}

func Test_Expm1_Tiny(t *testing.T) {
	// far below the working precision the series collapses to x itself;
	// the ternary still reports the dropped tail
	z := new(big.Float).SetPrec(24)
	x := mkfloat(24, "0x1p-80")
	tern := Expm1(z, x)
	if z.Cmp(x) != 0 || tern != -1 {
		t.Errorf("expm1(2**-80) = %g (%d), want 2**-80 (-1)", z, tern)
	}

	// negative arguments sit below the true value as well
	nx := mkfloat(24, "-0x1p-80")
	tern = Expm1(z, nx)
	if z.Cmp(nx) != 0 || tern != -1 {
		t.Errorf("expm1(-2**-80) = %g (%d), want -2**-80 (-1)", z, tern)
	}
}

func Test_Expm1_Range(t *testing.T) {
	z := new(big.Float).SetPrec(53)

	// large branch: exp(-5)-1 lands in (-1, -0.99)
	Expm1(z, mkfloat(53, "-5"))
	if z.Cmp(mkfloat(53, "-1")) <= 0 || z.Cmp(mkfloat(53, "-0.99")) >= 0 {
		t.Errorf("expm1(-5) = %g, want it in (-1, -0.99)", z)
	}

	if tern := Expm1(z, mkfloat(53, "0x1p45")); !z.IsInf() || tern != 1 {
		t.Errorf("expm1(2**45) = %g (%d)", z, tern)
	}
	if tern := Expm1(z, mkfloat(53, "-0x1p45")); z.Cmp(mkfloat(53, "-1")) != 0 || tern != -1 {
		t.Errorf("expm1(-2**45) = %g (%d), want -1 (-1)", z, tern)
	}
}

func Benchmark_Exp(b *testing.B) {
	for _, prec := range []uint{53, 100, 200, 500} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			z := new(big.Float).SetPrec(prec)
			x := mkfloat(53, "3.73")
			for i := 0; i < b.N; i++ {
				Exp(z, x)
			}
		})
	}
}
