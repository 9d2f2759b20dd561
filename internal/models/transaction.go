package models

import "github.com/shopspring/decimal"

// TransactionType is the direction of a transaction
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a movement booked against an account or a credit card.
// A card purchase with more than one installment is split by the API into
// Installment records.
type Transaction struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	Date             Date            `json:"date"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	ReimbursedAmount decimal.Decimal `json:"reimbursed_amount"`
	Installments     *int            `json:"installments,omitempty"`
	Type             TransactionType `json:"type"`
	CategoryID       *int64          `json:"category_id,omitempty"`
	CategoryName     string          `json:"category_name,omitempty"`
	AccountID        *int64          `json:"account_id,omitempty"`
	AccountName      string          `json:"account_name,omitempty"`
	CreditCardID     *int64          `json:"credit_card_id,omitempty"`
	CreditCardName   string          `json:"credit_card_name,omitempty"`
	Shared           bool            `json:"shared"`
	IsActive         bool            `json:"is_active"`
}

// InstallmentCount returns the number of installments, 1 when the API omitted it
func (t Transaction) InstallmentCount() int {
	if t.Installments == nil {
		return 1
	}
	return *t.Installments
}

// IsSinglePayment reports whether the transaction is billed in one go
func (t Transaction) IsSinglePayment() bool {
	return t.InstallmentCount() <= 1
}

// TransactionInput is the body sent when creating or updating a transaction
type TransactionInput struct {
	Date         *Date           `json:"date,omitempty"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments,omitempty"`
	Type         TransactionType `json:"type,omitempty"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	AccountID    *int64          `json:"account_id,omitempty"`
	CreditCardID *int64          `json:"credit_card_id,omitempty"`
	Shared       bool            `json:"shared"`
}
