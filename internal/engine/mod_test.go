package engine

import (
	"math/big"
	"testing"
)

func Test_Mod(t *testing.T) {
	td := []struct {
		x, y string
		want string
	}{
		{"5", "3", "2"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"-5", "-3", "-2"},
		{"6", "3", "0"},
		{"-6", "3", "-0"},
		{"5.5", "2", "1.5"},
		{"-5.5", "2", "-1.5"},
		{"0.5", "0x1p-100", "0"},
		{"0x1p-10", "3", "0x1p-10"},
		{"3", "Inf", "3"},
		{"-3", "Inf", "-3"},
		{"0", "3", "0"},
		{"-0", "3", "-0"},
		{"0x1p100", "3", "1"},
		{"0x1p1000", "7", "2"},
	}
	for _, d := range td {
		z := new(big.Float).SetPrec(53)
		tern := Mod(z, mkfloat(53, d.x), mkfloat(53, d.y))
		want := mkfloat(53, d.want)
		if z.Cmp(want) != 0 || z.Signbit() != want.Signbit() || tern != 0 {
			t.Errorf("mod(%s, %s) = %g (%d), want exact %s", d.x, d.y, z, tern, d.want)
		}
	}
}

func Test_Mod_ExponentGap(t *testing.T) {
	// x = 2**102 + 2**20 spans more bits than either operand mantissa;
	// the reduction must work on the scaled mantissas, not the values.
	x := new(big.Float).SetPrec(104)
	x.Add(mkfloat(104, "0x1p102"), mkfloat(104, "0x1p20"))

	z := new(big.Float).SetPrec(53)
	if tern := Mod(z, x, mkfloat(53, "0x1p50")); z.Cmp(mkfloat(53, "0x1p20")) != 0 || tern != 0 {
		t.Errorf("(2**102+2**20) mod 2**50 = %g (%d), want 2**20", z, tern)
	}

	// and with the modulus below x's scale
	if tern := Mod(z, x, mkfloat(53, "3")); tern != 0 {
		t.Errorf("(2**102+2**20) mod 3 ternary = %d", tern)
	}
	// 2**102 mod 3 = 1, 2**20 mod 3 = 1
	if z.Cmp(mkfloat(53, "2")) != 0 {
		t.Errorf("(2**102+2**20) mod 3 = %g, want 2", z)
	}
}

func Test_Mod_Rounding(t *testing.T) {
	// exact remainder 1.25 has three significant bits; at prec 2 the tie
	// rounds to even
	z := new(big.Float).SetPrec(2)
	tern := Mod(z, mkfloat(53, "5.25"), mkfloat(53, "2"))
	if z.Cmp(mkfloat(53, "1")) != 0 || tern != -1 {
		t.Errorf("5.25 mod 2 at prec 2 = %g (%d), want 1 (-1)", z, tern)
	}
}

func Test_Mod_Panics(t *testing.T) {
	z := new(big.Float).SetPrec(53)
	for name, f := range map[string]func(){
		"zero modulus": func() { Mod(z, mkfloat(53, "1"), mkfloat(53, "0")) },
		"infinite x":   func() { Mod(z, mkfloat(53, "Inf"), mkfloat(53, "2")) },
	} {
		func() {
			defer func() {
				if _, ok := recover().(ErrNaN); !ok {
					t.Errorf("%s: no ErrNaN panic", name)
				}
			}()
			f()
		}()
	}
}

func Test_mantInt(t *testing.T) {
	td := []struct {
		x    string
		want int64
	}{
		{"1", 1},
		{"6", 3},
		{"0.75", 3},
		{"-20", 5},
		{"0x1p60", 1},
	}
	for _, d := range td {
		if m := mantInt(mkfloat(53, d.x)); m.Int64() != d.want {
			t.Errorf("mantInt(%s) = %v, want %d", d.x, m, d.want)
		}
	}
}
