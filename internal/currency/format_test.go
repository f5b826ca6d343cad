package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupees(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero renders bare", 0, "0"},
		{"small amount", 500, "₹500"},
		{"three digits exactly", 999, "₹999"},
		{"four digits grouped", 5000, "₹5,000"},
		{"five digits grouped", 56789, "₹56,789"},
		{"just below one lakh", 99999, "₹99,999"},
		{"one lakh exactly", 100000, "₹1.0 L"},
		{"one and a half lakh", 150000, "₹1.5 L"},
		{"lakh takes precedence over grouping", 1234567, "₹12.3 L"},
		{"just below one crore", 9999999, "₹100.0 L"},
		{"one crore exactly", 10000000, "₹1.0 Cr"},
		{"crore rounding", 12000000, "₹1.2 Cr"},
		{"large crore value", 250000000, "₹25.0 Cr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rupees(tt.amount))
		})
	}
}

func TestRupeesNegative(t *testing.T) {
	// Behavior for negative input is not part of the contract; it must at
	// least stay stable and readable.
	assert.Equal(t, "-₹5,000", Rupees(-5000))
}

func TestGroup(t *testing.T) {
	assert.Equal(t, "1,234", group(1234))
	assert.Equal(t, "12,34,567", group(1234567))
	assert.Equal(t, "1,23,45,678", group(12345678))
	assert.Equal(t, "123", group(123))
}
