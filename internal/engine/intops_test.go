package engine

import (
	"math/big"
	"testing"
)

func Test_roundInt(t *testing.T) {
	td := []struct {
		x                        string
		floor, ceil, trunc, rint string
	}{
		{"0", "0", "0", "0", "0"},
		{"-0", "-0", "-0", "-0", "-0"},
		{"1", "1", "1", "1", "1"},
		{"2.5", "2", "3", "2", "2"},
		{"-2.5", "-3", "-2", "-2", "-2"},
		{"3.5", "3", "4", "3", "4"},
		{"0.5", "0", "1", "0", "0"},
		{"-0.5", "-1", "-0", "-0", "-0"},
		{"0.2", "0", "1", "0", "0"},
		{"-0.2", "-1", "-0", "-0", "-0"},
		{"0.75", "0", "1", "0", "1"},
		{"-12.125", "-13", "-12", "-12", "-12"},
		{"0x1p100", "0x1p100", "0x1p100", "0x1p100", "0x1p100"},
		{"Inf", "Inf", "Inf", "Inf", "Inf"},
		{"-Inf", "-Inf", "-Inf", "-Inf", "-Inf"},
	}
	for _, d := range td {
		x := mkfloat(53, d.x)
		for _, op := range []struct {
			name string
			f    func(z, x *big.Float) int
			want string
		}{
			{"floor", Floor, d.floor},
			{"ceil", Ceil, d.ceil},
			{"trunc", Trunc, d.trunc},
			{"rint", Rint, d.rint},
		} {
			z := new(big.Float).SetPrec(53)
			op.f(z, x)
			want := mkfloat(53, op.want)
			if z.Cmp(want) != 0 || z.Signbit() != want.Signbit() {
				t.Errorf("%s(%s) = %g, want %s", op.name, d.x, z, op.want)
			}
		}
	}
}

func Test_Rint_Modes(t *testing.T) {
	td := []struct {
		x    string
		mode big.RoundingMode
		want string
	}{
		{"2.5", big.ToNearestEven, "2"},
		{"2.5", big.ToNearestAway, "3"},
		{"2.5", big.ToZero, "2"},
		{"2.5", big.AwayFromZero, "3"},
		{"2.5", big.ToNegativeInf, "2"},
		{"2.5", big.ToPositiveInf, "3"},
		{"-2.5", big.ToNearestEven, "-2"},
		{"-2.5", big.ToNearestAway, "-3"},
		{"-2.5", big.ToZero, "-2"},
		{"-2.5", big.AwayFromZero, "-3"},
		{"-2.5", big.ToNegativeInf, "-3"},
		{"-2.5", big.ToPositiveInf, "-2"},
		{"0.2", big.AwayFromZero, "1"},
		{"-0.7", big.ToNearestEven, "-1"},
	}
	for _, d := range td {
		z := new(big.Float).SetPrec(53).SetMode(d.mode)
		x := mkfloat(53, d.x)
		Rint(z, x)
		if z.Cmp(mkfloat(53, d.want)) != 0 {
			t.Errorf("rint(%s, %v) = %g, want %s", d.x, d.mode, z, d.want)
		}
	}
}

func Test_roundInt_Ternary(t *testing.T) {
	// The ternary tracks the rounding of the integer into z's precision,
	// not the distance from x.
	z := new(big.Float).SetPrec(53)
	if tern := Floor(z, mkfloat(53, "2.9")); tern != 0 {
		t.Errorf("floor(2.9) ternary = %d, want exact", tern)
	}

	// 1193046.7: the integer part needs 21 bits and must round at 8
	z = new(big.Float).SetPrec(8)
	x := mkfloat(53, "0x123456.b333333333333p0")
	tern := Floor(z, x)
	if tern == 0 {
		t.Error("floor into 8 bits reported exact")
	}
	if z.Cmp(mkfloat(8, "0x123456p0")) != 0 {
		t.Errorf("floor(1193046.7) at 8 bits = %g", z)
	}
}
