package bigfloat

import "testing"

func TestFlagsString(t *testing.T) {
	tests := []struct {
		f    Flags
		want string
	}{
		{0, ""},
		{Inexact, "inexact"},
		{Overflow, "overflow"},
		{Underflow, "underflow"},
		{NaNFlag, "nan"},
		{DivisionByZero, "division by zero"},
		{Inexact | Overflow, "inexact, overflow"},
		{Underflow | NaNFlag, "underflow, nan"},
		{All, "inexact, overflow, underflow, nan, division by zero"},
		{1 << 7, "unknown(128)"},
		{Inexact | 1<<6, "inexact, unknown(64)"},
	}
	for _, tc := range tests {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("Flags(%#b).String() = %q, want %q", uint8(tc.f), got, tc.want)
		}
	}
}
