package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "R$ 0,00"},
		{"13.50", "R$ 13,50"},
		{"13.5", "R$ 13,50"},
		{"6.50", "R$ 6,50"},
		{"1234.50", "R$ 1.234,50"},
	}
	for _, tt := range tests {
		if got := FormatBRL(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
