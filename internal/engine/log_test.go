package engine

import (
	"math/big"
	"testing"
)

const (
	ln2Digits  = "0.6931471805599453094172321214581765680755001343602552541206800094933936219696947156058633269964186875"
	ln10Digits = "2.30258509299404568401799145468436420760110148862877"
)

func Test_Log(t *testing.T) {
	z := new(big.Float).SetPrec(53)
	if tern := Log(z, mkfloat(53, "1")); z.Sign() != 0 || z.Signbit() || tern != 0 {
		t.Errorf("log(1) = %g (%d), want exact +0", z, tern)
	}
	if tern := Log(z, mkfloat(53, "0")); !z.IsInf() || !z.Signbit() || tern != 0 {
		t.Errorf("log(0) = %g (%d), want -Inf", z, tern)
	}
	if tern := Log(z, mkfloat(53, "Inf")); !z.IsInf() || z.Signbit() || tern != 0 {
		t.Errorf("log(+Inf) = %g (%d)", z, tern)
	}
}

func Test_Log_vs_Ln2(t *testing.T) {
	// the AGM route through Log and the dedicated Ln2 cache must agree
	// bit for bit
	for _, prec := range []uint{24, 53, 200} {
		a := new(big.Float).SetPrec(prec)
		b := new(big.Float).SetPrec(prec)
		Log(a, mkfloat(53, "2"))
		Ln2(b)
		if a.Cmp(b) != 0 {
			t.Errorf("at %d bits: log(2) = %g, ln2 = %g", prec, a, b)
		}
		if b.Cmp(mkfloat(prec, ln2Digits)) != 0 {
			t.Errorf("ln2 at %d bits = %g, want %s", prec, b, ln2Digits)
		}
	}
}

func Test_Log_Reciprocal(t *testing.T) {
	// ln(1/4) rides the 1/x reduction and lands on -2×ln(2)
	z := new(big.Float).SetPrec(100)
	Log(z, mkfloat(53, "0.25"))
	want := new(big.Float).SetPrec(100)
	Ln2(want)
	want.Mul(want, mkfloat(53, "-2"))

	diff := new(big.Float).SetPrec(200)
	diff.Sub(z, want)
	if cmpAbs(diff, mkfloat(24, "0x1p-98")) > 0 {
		t.Errorf("log(0.25) = %g, want %g", z, want)
	}
}

func Test_Log2(t *testing.T) {
	td := []struct {
		x    string
		want int64
	}{
		{"1", 0},
		{"2", 1},
		{"8", 3},
		{"1024", 10},
		{"0x1p-10", -10},
		{"0x1p100", 100},
	}
	for _, d := range td {
		z := new(big.Float).SetPrec(53)
		tern := Log2(z, mkfloat(53, d.x))
		if w := new(big.Float).SetInt64(d.want); z.Cmp(w) != 0 || tern != 0 {
			t.Errorf("log2(%s) = %g (%d), want exact %d", d.x, z, tern, d.want)
		}
	}

	z := new(big.Float).SetPrec(53)
	if tern := Log2(z, mkfloat(53, "10")); tern == 0 {
		t.Error("log2(10) reported exact")
	}
}

func Test_Log10(t *testing.T) {
	td := []struct {
		x    string
		want int64
	}{
		{"1", 0},
		{"10", 1},
		{"100", 2},
		{"1e10", 10},
	}
	for _, d := range td {
		z := new(big.Float).SetPrec(53)
		tern := Log10(z, mkfloat(53, d.x))
		if w := new(big.Float).SetInt64(d.want); z.Cmp(w) != 0 || tern != 0 {
			t.Errorf("log10(%s) = %g (%d), want exact %d", d.x, z, tern, d.want)
		}
	}
}

func Test_computeLn2(t *testing.T) {
	// recomputed straight at 200 bits, bypassing the cache; the shared
	// 53-bit constants must never set the working precision
	z := new(big.Float).SetPrec(200)
	computeLn2(z)
	if ref := mkfloat(200, ln2Digits); z.Cmp(ref) != 0 {
		t.Errorf("computeLn2 at 200 bits\ngot : %g\nwant: %g", z, ref)
	}
}

func Test_ln10(t *testing.T) {
	z := new(big.Float).SetPrec(150)
	ln10(z)
	if ref := mkfloat(150, ln10Digits); z.Cmp(ref) != 0 {
		t.Errorf("ln(10) at 150 bits = %g, want %g", z, ref)
	}
}

func Test_pow10Exp(t *testing.T) {
	td := []struct {
		x  string
		k  int64
		ok bool
	}{
		{"10", 1, true},
		{"100", 2, true},
		{"1e10", 10, true},
		{"2", 0, false},
		{"50", 0, false},
		{"0.1", 0, false},
		{"1", 0, false},
		{"1e400", 0, false},
	}
	for _, d := range td {
		k, ok := pow10Exp(mkfloat(2048, d.x))
		if k != d.k || ok != d.ok {
			t.Errorf("pow10Exp(%s) = %d, %t; want %d, %t", d.x, k, ok, d.k, d.ok)
		}
	}
}

func Test_agm(t *testing.T) {
	// equal operands are a fixed point
	p := uint(200)
	z := new(big.Float).SetPrec(p)
	agm(z, mkfloat(p, "3"), mkfloat(p, "3"))
	if z.Cmp(mkfloat(p, "3")) != 0 {
		t.Errorf("agm(3, 3) = %g, want 3", z)
	}

	// the mean is homogeneous: agm(2, 4) = 2×agm(1, 2)
	a := new(big.Float).SetPrec(p)
	agm(a, mkfloat(p, "1"), mkfloat(p, "2"))
	b := new(big.Float).SetPrec(p)
	agm(b, mkfloat(p, "2"), mkfloat(p, "4"))

	diff := new(big.Float).SetPrec(300)
	diff.Sub(b, new(big.Float).SetPrec(p).SetMantExp(a, 1))
	if cmpAbs(diff, mkfloat(24, "0x1p-185")) > 0 {
		t.Errorf("agm(2, 4) = %g, want twice agm(1, 2) = %g", b, a)
	}
}
