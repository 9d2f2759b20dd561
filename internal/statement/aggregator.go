// Package statement turns a statement and its related records into the
// figures shown on the statement detail view.
package statement

import (
	"time"

	"fjacquet/finance-cli/internal/currencyutils"
	"fjacquet/finance-cli/internal/dateutils"
	"fjacquet/finance-cli/internal/models"

	"github.com/shopspring/decimal"
)

// Input is the snapshot a Summary is computed from. Aggregate never mutates it.
type Input struct {
	Statement    models.Statement
	Card         *models.CreditCard
	Transactions []models.Transaction
	Installments []models.Installment
}

// Summary holds every derived figure of a statement
type Summary struct {
	Statement models.Statement
	Card      *models.CreditCard

	// SingleTransactions are the transactions billed in one payment.
	// Purchases split into installments only show up in Installments.
	SingleTransactions []models.Transaction
	Installments       []models.Installment

	TotalFromSingleTransactions decimal.Decimal
	TotalFromInstallments       decimal.Decimal
	TotalAmount                 decimal.Decimal
	PaidAmount                  decimal.Decimal
	RemainingAmount             decimal.Decimal

	// StoredTotal is the total_amount persisted on the statement. It does not
	// feed TotalAmount.
	StoredTotal         decimal.NullDecimal
	StoredTotalMismatch bool

	InstallmentsPaid  int
	InstallmentsTotal int

	DaysUntilEnd    int
	DaysUntilDue    int
	PeriodEndPassed bool
	DueDatePassed   bool

	AvailableCredit       decimal.Decimal
	UtilizationPercentage decimal.Decimal

	Display StatusDisplay
}

// Aggregate computes the statement summary as of now
func Aggregate(in Input, now time.Time) Summary {
	s := Summary{
		Statement:   in.Statement,
		Card:        in.Card,
		StoredTotal: in.Statement.TotalAmount,
		Display:     DisplayFor(in.Statement.Status),
	}

	s.SingleTransactions = SinglePayments(in.Transactions)
	s.Installments = append([]models.Installment(nil), in.Installments...)

	s.TotalFromSingleTransactions = sumTransactions(s.SingleTransactions)
	s.TotalFromInstallments = sumInstallments(s.Installments)
	s.TotalAmount = s.TotalFromSingleTransactions.Add(s.TotalFromInstallments)
	s.PaidAmount = in.Statement.StoredPaidAmount()
	s.RemainingAmount = s.TotalAmount.Sub(s.PaidAmount)
	s.StoredTotalMismatch = s.StoredTotal.Valid && !s.StoredTotal.Decimal.Equal(s.TotalAmount)

	s.InstallmentsTotal = len(s.Installments)
	for _, inst := range s.Installments {
		if inst.Paid {
			s.InstallmentsPaid++
		}
	}

	paid := in.Statement.Status == models.StatusPaid
	s.DaysUntilEnd, s.PeriodEndPassed = dateFigures(in.Statement.PeriodEnd, now, paid)
	s.DaysUntilDue, s.DueDatePassed = dateFigures(in.Statement.DueDate, now, paid)

	s.AvailableCredit = decimal.Zero
	s.UtilizationPercentage = decimal.Zero
	if in.Card != nil {
		s.AvailableCredit = in.Card.AvailableCredit()
		s.UtilizationPercentage = currencyutils.Percentage(s.TotalAmount, in.Card.Limit())
	}

	return s
}

// SinglePayments returns the transactions with at most one installment, in input order
func SinglePayments(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsSinglePayment() {
			out = append(out, tx)
		}
	}
	return out
}

// dateFigures returns the days left until d and whether d has passed on an
// unpaid statement. A missing date yields zero days and never counts as passed.
func dateFigures(d models.Date, now time.Time, paid bool) (int, bool) {
	if d.IsZero() {
		return 0, false
	}
	return dateutils.DaysUntil(d.Time, now), d.Before(now) && !paid
}

func sumTransactions(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

func sumInstallments(insts []models.Installment) decimal.Decimal {
	total := decimal.Zero
	for _, inst := range insts {
		total = total.Add(inst.Amount)
	}
	return total
}
