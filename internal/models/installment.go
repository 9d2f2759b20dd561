package models

import "github.com/shopspring/decimal"

// Installment is one scheduled payment of a multi-installment purchase
type Installment struct {
	ID                     int64           `json:"id,omitempty"`
	TransactionID          int64           `json:"transaction_id"`
	StatementID            *int64          `json:"statement_id,omitempty"`
	InstallmentNumber      int             `json:"installment_number"`
	Amount                 decimal.Decimal `json:"amount"`
	DueDate                Date            `json:"due_date"`
	Paid                   bool            `json:"paid"`
	IsActive               bool            `json:"is_active"`
	TransactionDescription string          `json:"transaction_description,omitempty"`
}
