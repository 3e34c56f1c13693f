package engine

import (
	"math/big"
	"strings"
	"testing"
)

func Test_Parse(t *testing.T) {
	td := []struct {
		s    string
		want string
		tern int
	}{
		{"1.5", "1.5", 0},
		{"-12", "-12", 0},
		{"1.5e3", "1500", 0},
		{"0x1p-3", "0.125", 0},
		{"0b101", "5", 0},
		{"0o17", "15", 0},
		{"inf", "Inf", 0},
		{"+Inf", "Inf", 0},
		{"-inf", "-Inf", 0},
	}
	for _, d := range td {
		z := new(big.Float).SetPrec(53)
		tern, err := Parse(z, d.s)
		if err != nil {
			t.Errorf("Parse(%q): %v", d.s, err)
			continue
		}
		if z.Cmp(mkfloat(53, d.want)) != 0 || tern != d.tern {
			t.Errorf("Parse(%q) = %g (%d), want %s (%d)", d.s, z, tern, d.want, d.tern)
		}
	}
}

func Test_Parse_Inexact(t *testing.T) {
	z := new(big.Float).SetPrec(24)
	tern, err := Parse(z, "0.1")
	if err != nil {
		t.Fatal(err)
	}
	if tern == 0 {
		t.Error("0.1 at 24 bits reported exact")
	}
	want := new(big.Float).SetPrec(24).SetFloat64(0.1)
	if z.Cmp(want) != 0 {
		t.Errorf("Parse(0.1) = %g, want %g", z, want)
	}
}

func Test_Parse_Errors(t *testing.T) {
	for _, s := range []string{"", "abc", "1..2", "0x", "nan", "infinity", "1.5 "} {
		z := new(big.Float).SetPrec(53)
		if _, err := Parse(z, s); err == nil {
			t.Errorf("Parse(%q) did not fail", s)
		} else if !strings.Contains(err.Error(), "parsing") {
			t.Errorf("Parse(%q) error %q lacks context", s, err)
		}
	}
}
