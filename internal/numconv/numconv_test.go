package numconv

import (
	"math"
	"testing"
)

func TestStringToDouble(t *testing.T) {
	allFlags := AllowHex | AllowOctal | AllowBinary | AllowImplicitOctal

	tests := []struct {
		input string
		flags Flags
		want  float64
	}{
		{"", NoFlags, 0},
		{"0", NoFlags, 0},
		{"123", NoFlags, 123},
		{"3.14", NoFlags, 3.14},
		{".5", NoFlags, 0.5},
		{"1e3", NoFlags, 1000},
		{"2.5e-3", NoFlags, 2.5e-3},
		{"123.45e2", NoFlags, 12345},
		{"0xFF", allFlags, 255},
		{"0X10", allFlags, 16},
		{"0o17", allFlags, 15},
		{"0b101", allFlags, 5},
		{"017", allFlags, 15},
		{"089", allFlags, 89}, // 8/9 falls back to decimal
		{"017", NoFlags, 17},  // without the flag a leading zero is decimal
	}
	for _, tt := range tests {
		if got := StringToDouble(tt.input, tt.flags); got != tt.want {
			t.Errorf("StringToDouble(%q, %b): got %v, want %v", tt.input, tt.flags, got, tt.want)
		}
	}
}

func TestStringToDoubleInvalid(t *testing.T) {
	tests := []struct {
		input string
		flags Flags
	}{
		{"abc", NoFlags},
		{"0x", AllowHex},
		{"0xG", AllowHex},
		{"0xFF", NoFlags}, // prefix without its flag
		{"0b", AllowBinary},
		{"0b2", AllowBinary},
	}
	for _, tt := range tests {
		if got := StringToDouble(tt.input, tt.flags); !math.IsNaN(got) {
			t.Errorf("StringToDouble(%q): got %v, want NaN", tt.input, got)
		}
	}
}

func TestStringToDoubleOverflow(t *testing.T) {
	if got := StringToDouble("1e5000", NoFlags); !math.IsInf(got, 1) {
		t.Errorf("got %v, want +Inf", got)
	}
	if got := StringToDouble("-1e5000", NoFlags); !math.IsInf(got, -1) {
		t.Errorf("got %v, want -Inf", got)
	}
}

func TestDoubleToString(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{123, "123"},
		{0.5, "0.5"},
		{-0.5, "-0.5"},
		{3.14, "3.14"},
		{0.1, "0.1"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e21, "1.5e+21"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{2.5e-8, "2.5e-8"},
		{12345, "12345"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := DoubleToString(tt.input); got != tt.want {
			t.Errorf("DoubleToString(%v): got %q, want %q", tt.input, got, tt.want)
		}
	}
}

// 两个方向必须配套：解析后再渲染得到规范拼写
func TestRoundTripCanonicalization(t *testing.T) {
	allFlags := AllowHex | AllowOctal | AllowBinary | AllowImplicitOctal

	tests := []struct {
		literal   string
		canonical string
	}{
		{"1.0", "1"},
		{"1.50", "1.5"},
		{"0x1", "1"},
		{"0o17", "15"},
		{"0b101", "5"},
		{"1e2", "100"},
		{".5", "0.5"},
	}
	for _, tt := range tests {
		v := StringToDouble(tt.literal, allFlags)
		if got := DoubleToString(v); got != tt.canonical {
			t.Errorf("%q: got %q, want %q", tt.literal, got, tt.canonical)
		}
	}
}
