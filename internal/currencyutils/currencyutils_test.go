package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Empty string", "", decimal.Zero, false},
		{"Simple decimal", "123.45", decimal.RequireFromString("123.45"), false},
		{"Negative decimal", "-123.45", decimal.RequireFromString("-123.45"), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"Comma decimal separator", "123,45", decimal.RequireFromString("123.45"), false},
		{"Argentine format", "1.234,56", decimal.RequireFromString("1234.56"), false},
		{"English format", "1,234.56", decimal.RequireFromString("1234.56"), false},
		{"Several thousands dots", "1.234.567", decimal.NewFromInt(1234567), false},
		{"With peso sign", "$ 1.234,56", decimal.RequireFromString("1234.56"), false},
		{"With currency code", "ARS 99,90", decimal.RequireFromString("99.90"), false},
		{"With spaces", "  123.45  ", decimal.RequireFromString("123.45"), false},
		{"Non-numeric", "abc", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestFormatARS(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "$ 0,00"},
		{"5", "$ 5,00"},
		{"999.999", "$ 1.000,00"},
		{"1234.56", "$ 1.234,56"},
		{"1234567.8", "$ 1.234.567,80"},
		{"-50", "-$ 50,00"},
		{"100000", "$ 100.000,00"},
	}

	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatARS(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.True(t, decimal.RequireFromString("33.3").Equal(Percentage(decimal.NewFromInt(1), decimal.NewFromInt(3))))
	assert.True(t, decimal.RequireFromString("12.5").Equal(Percentage(decimal.NewFromInt(125), decimal.NewFromInt(1000))))
	assert.True(t, decimal.RequireFromString("150").Equal(Percentage(decimal.NewFromInt(150), decimal.NewFromInt(100))))
	assert.True(t, Percentage(decimal.NewFromInt(10), decimal.Zero).IsZero())
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(decimal.RequireFromString("12.5")))
	assert.Equal(t, "0.0%", FormatPercent(decimal.Zero))
}
