package models

import "github.com/shopspring/decimal"

// Card brands accepted by the API
const (
	BrandVisa       = "VISA"
	BrandMasterCard = "MasterCard"
)

// CreditCard is a card whose billing cycles produce statements
type CreditCard struct {
	ID             int64               `json:"id,omitempty"`
	UserID         int64               `json:"user_id"`
	BankID         int64               `json:"bank_id"`
	Name           string              `json:"name"`
	Brand          string              `json:"brand"`
	LimitAmount    decimal.NullDecimal `json:"limit_amount"`
	Balance        decimal.NullDecimal `json:"balance"`
	ExpirationDate Date                `json:"expiration_date"`
	IsActive       bool                `json:"is_active"`
	Color          string              `json:"color,omitempty"`
	LastFour       int                 `json:"last_four,omitempty"`
}

// Limit returns the credit limit, zero when unset
func (c *CreditCard) Limit() decimal.Decimal {
	if c == nil || !c.LimitAmount.Valid {
		return decimal.Zero
	}
	return c.LimitAmount.Decimal
}

// CurrentBalance returns the card balance, zero when unset
func (c *CreditCard) CurrentBalance() decimal.Decimal {
	if c == nil || !c.Balance.Valid {
		return decimal.Zero
	}
	return c.Balance.Decimal
}

// AvailableCredit is limit minus balance. It is not floored, so a card over
// its limit reports a negative value.
func (c *CreditCard) AvailableCredit() decimal.Decimal {
	return c.Limit().Sub(c.CurrentBalance())
}

// CreditCardInput is the body sent when creating or updating a card
type CreditCardInput struct {
	BankID         int64            `json:"bank_id,omitempty"`
	Name           string           `json:"name,omitempty"`
	Brand          string           `json:"brand,omitempty"`
	LimitAmount    *decimal.Decimal `json:"limit_amount,omitempty"`
	ExpirationDate *Date            `json:"expiration_date,omitempty"`
	Color          string           `json:"color,omitempty"`
	LastFour       int              `json:"last_four,omitempty"`
}
