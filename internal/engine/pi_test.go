package engine

import (
	"math/big"
	"testing"
)

const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

func Test_pi(t *testing.T) {
	// mixed order: the first call grows the cache, later ones serve from it
	for _, prec := range []uint{24, 332, 53, 200, 100} {
		z := new(big.Float).SetPrec(prec)
		tern := Pi(z)
		if ref := mkfloat(prec, piDigits); z.Cmp(ref) != 0 {
			t.Fatalf("pi at %d bits\ngot : %g\nwant: %g", prec, z, ref)
		}
		if tern == 0 {
			t.Errorf("pi at %d bits reported exact", prec)
		}
	}

	// the cache holds at least the guard bits beyond the largest request
	if _pi.Prec() < 332+guard {
		t.Errorf("cached pi has %d bits, want at least %d", _pi.Prec(), 332+guard)
	}

	// repeated calls serve the identical value
	a := new(big.Float).SetPrec(150)
	b := new(big.Float).SetPrec(150)
	Pi(a)
	Pi(b)
	if a.Cmp(b) != 0 {
		t.Errorf("two pi calls at 150 bits disagree: %g vs %g", a, b)
	}
}

func Benchmark_pi(b *testing.B) {
	z := new(big.Float).SetPrec(500)
	for i := 0; i < b.N; i++ {
		pi(z)
	}
}
