package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAUD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"75", "$75.00"},
		{"387.5", "$387.50"},
		{"456.045", "$456.05"},
		{"1234.5", "$1234.50"},
		{"0.004", "$0.00"},
		{"-12.3", "-$12.30"},
	}
	for _, tt := range tests {
		if got := FormatAUD(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatAUD(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDiscount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"25.5", "-$25.50"},
		{"0", "-$0.00"},
		{"-10", "-$10.00"},
	}
	for _, tt := range tests {
		if got := FormatDiscount(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatDiscount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestYesNo(t *testing.T) {
	if YesNo(true) != "Yes" || YesNo(false) != "No" {
		t.Errorf("YesNo = %q/%q", YesNo(true), YesNo(false))
	}
}
