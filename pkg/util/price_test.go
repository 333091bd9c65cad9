package util

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2,500,000", 2500000},
		{"1200000", 1200000},
		{" 3,000,000 ", 3000000},
		{"1,234.56", 1234.56},
		{"", 0},
		{"abc", 0},
		{"-500", 0},
	}
	for _, tt := range tests {
		if got := ParsePrice(tt.in); got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2500000, "2,500,000"},
		{1234.5, "1,234.5"},
		{999, "999"},
		{0, "0"},
		{1000, "1,000"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
