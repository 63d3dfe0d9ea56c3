package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name       string
		value      decimal.Decimal
		hideValues bool
		expected   string
	}{
		{"thousands grouping", decimal.NewFromFloat(1234.5), false, "R$ 1.234,50"},
		{"two fraction digits always", decimal.NewFromInt(5000), false, "R$ 5.000,00"},
		{"millions", decimal.NewFromInt(1234567), false, "R$ 1.234.567,00"},
		{"no grouping under a thousand", decimal.NewFromFloat(999.99), false, "R$ 999,99"},
		{"zero", decimal.Zero, false, "R$ 0,00"},
		{"negative", decimal.NewFromFloat(-1234.5), false, "R$ -1.234,50"},
		{"rounds to cents", decimal.NewFromFloat(10.456), false, "R$ 10,46"},
		{"masked", decimal.NewFromFloat(1234.5), true, "R$ ******"},
		{"masked ignores value", decimal.NewFromInt(-99999), true, "R$ ******"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value, tt.hideValues))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      decimal.Decimal
		hideValues bool
		expected   string
	}{
		{"positive gets explicit plus", decimal.NewFromInt(268), false, "+268%"},
		{"zero counts as non-negative", decimal.Zero, false, "+0%"},
		{"negative keeps its sign", decimal.NewFromInt(-5), false, "-5%"},
		{"fractional", decimal.NewFromFloat(2.5), false, "+2.5%"},
		{"masked", decimal.NewFromInt(268), true, "***%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercentage(tt.value, tt.hideValues))
		})
	}
}
