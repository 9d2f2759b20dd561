package models

import "github.com/shopspring/decimal"

// Account is a bank account that transactions may be booked against
type Account struct {
	ID            int64               `json:"id,omitempty"`
	UserID        int64               `json:"user_id"`
	BankID        int64               `json:"bank_id,omitempty"`
	AccountNumber string              `json:"account_number,omitempty"`
	Type          string              `json:"type,omitempty"`
	Balance       decimal.NullDecimal `json:"balance"`
	Currency      string              `json:"currency,omitempty"`
	IsActive      bool                `json:"is_active"`
}
