package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditCard_AvailableCredit(t *testing.T) {
	tests := []struct {
		name     string
		card     *CreditCard
		expected string
	}{
		{"NilCard", nil, "0"},
		{"NoLimit", &CreditCard{Balance: decimal.NewNullDecimal(decimal.NewFromInt(100))}, "-100"},
		{"NoBalance", &CreditCard{LimitAmount: decimal.NewNullDecimal(decimal.NewFromInt(1000))}, "1000"},
		{
			"OverLimit",
			&CreditCard{
				LimitAmount: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
				Balance:     decimal.NewNullDecimal(decimal.NewFromInt(1200)),
			},
			"-200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.card.AvailableCredit().String())
		})
	}
}

func TestCreditCard_UnmarshalJSON(t *testing.T) {
	payload := `{"id":3,"bank_id":1,"name":"Gold","brand":"VISA","limit_amount":"500000","balance":null,"expiration_date":"2027-05-31","last_four":4242}`

	var c CreditCard
	require.NoError(t, json.Unmarshal([]byte(payload), &c))

	assert.Equal(t, BrandVisa, c.Brand)
	assert.True(t, c.LimitAmount.Valid)
	assert.False(t, c.Balance.Valid)
	assert.Equal(t, "500000", c.Limit().String())
	assert.True(t, c.CurrentBalance().IsZero())
	assert.Equal(t, 4242, c.LastFour)
}
