package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// StatementStatus is the billing state of a statement
type StatementStatus string

const (
	StatusOpen    StatementStatus = "open"
	StatusClosed  StatementStatus = "closed"
	StatusPaid    StatementStatus = "paid"
	StatusPartial StatementStatus = "partial"
	// StatusUnknown stands for any value the API sent outside the closed set.
	// The raw value is kept on Statement.RawStatus.
	StatusUnknown StatementStatus = "unknown"
)

// ParseStatementStatus maps the wire value onto a StatementStatus.
// An empty value means open.
func ParseStatementStatus(s string) StatementStatus {
	switch StatementStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusOpen:
		return StatusOpen
	case StatusClosed:
		return StatusClosed
	case StatusPaid:
		return StatusPaid
	case StatusPartial:
		return StatusPartial
	default:
		return StatusUnknown
	}
}

// IsValid reports whether s is one of the four statuses the API defines
func (s StatementStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusPaid, StatusPartial:
		return true
	}
	return false
}

// Statement is a credit card billing cycle
type Statement struct {
	ID           int64               `json:"id,omitempty"`
	CreditCardID int64               `json:"credit_card_id"`
	PeriodStart  Date                `json:"period_start"`
	PeriodEnd    Date                `json:"period_end"`
	DueDate      Date                `json:"due_date"`
	TotalAmount  decimal.NullDecimal `json:"total_amount"`
	PaidAmount   decimal.NullDecimal `json:"paid_amount"`
	Status       StatementStatus     `json:"status"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    Date                `json:"created_at"`

	// RawStatus holds the wire value when Status is StatusUnknown
	RawStatus string `json:"-"`
}

// UnmarshalJSON validates status at the decoding boundary
func (s *Statement) UnmarshalJSON(data []byte) error {
	type alias Statement
	aux := struct {
		*alias
		Status string `json:"status"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.Status = ParseStatementStatus(aux.Status)
	s.RawStatus = ""
	if s.Status == StatusUnknown {
		s.RawStatus = aux.Status
	}
	return nil
}

// StoredPaidAmount returns paid_amount, zero when the API left it unset
func (s *Statement) StoredPaidAmount() decimal.Decimal {
	if !s.PaidAmount.Valid {
		return decimal.Zero
	}
	return s.PaidAmount.Decimal
}

// StatementInput is the body sent when creating or updating a statement
type StatementInput struct {
	CreditCardID int64            `json:"credit_card_id,omitempty"`
	PeriodStart  *Date            `json:"period_start,omitempty"`
	PeriodEnd    *Date            `json:"period_end,omitempty"`
	DueDate      *Date            `json:"due_date,omitempty"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty"`
	PaidAmount   *decimal.Decimal `json:"paid_amount,omitempty"`
	Status       StatementStatus  `json:"status,omitempty"`
}
