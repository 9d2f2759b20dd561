package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/finance-cli/internal/currencyutils"
	"fjacquet/finance-cli/internal/dateutils"
	"fjacquet/finance-cli/internal/models"
)

// CardRow is a credit card in a listing
type CardRow struct {
	ID              int64  `json:"id" yaml:"id" csv:"id"`
	Name            string `json:"name" yaml:"name" csv:"name"`
	Brand           string `json:"brand" yaml:"brand" csv:"brand"`
	LastFour        string `json:"last_four" yaml:"last_four" csv:"last_four"`
	Limit           string `json:"limit" yaml:"limit" csv:"limit"`
	Balance         string `json:"balance" yaml:"balance" csv:"balance"`
	AvailableCredit string `json:"available_credit" yaml:"available_credit" csv:"available_credit"`
	Utilization     string `json:"utilization_percentage" yaml:"utilization_percentage" csv:"utilization_percentage"`
	Expiration      string `json:"expiration_date" yaml:"expiration_date" csv:"expiration_date"`
	Active          bool   `json:"is_active" yaml:"is_active" csv:"is_active"`
}

// StatementRow is a statement in a listing
type StatementRow struct {
	ID           int64  `json:"id" yaml:"id" csv:"id"`
	CreditCardID int64  `json:"credit_card_id" yaml:"credit_card_id" csv:"credit_card_id"`
	PeriodStart  string `json:"period_start" yaml:"period_start" csv:"period_start"`
	PeriodEnd    string `json:"period_end" yaml:"period_end" csv:"period_end"`
	DueDate      string `json:"due_date" yaml:"due_date" csv:"due_date"`
	TotalAmount  string `json:"total_amount" yaml:"total_amount" csv:"total_amount"`
	PaidAmount   string `json:"paid_amount" yaml:"paid_amount" csv:"paid_amount"`
	Status       string `json:"status" yaml:"status" csv:"status"`
	StatusLabel  string `json:"status_label" yaml:"status_label" csv:"status_label"`
}

// BankRow is a bank in a listing
type BankRow struct {
	ID      int64  `json:"id" yaml:"id" csv:"id"`
	Name    string `json:"name" yaml:"name" csv:"name"`
	Country string `json:"country" yaml:"country" csv:"country"`
	Active  bool   `json:"is_active" yaml:"is_active" csv:"is_active"`
}

// CategoryRow is a category in a listing
type CategoryRow struct {
	ID     int64  `json:"id" yaml:"id" csv:"id"`
	Name   string `json:"name" yaml:"name" csv:"name"`
	Type   string `json:"type" yaml:"type" csv:"type"`
	Color  string `json:"color" yaml:"color" csv:"color"`
	Active bool   `json:"is_active" yaml:"is_active" csv:"is_active"`
}

// TransactionRow is a transaction in a listing
type TransactionRow struct {
	ID           int64  `json:"id" yaml:"id" csv:"id"`
	Date         string `json:"date" yaml:"date" csv:"date"`
	Description  string `json:"description" yaml:"description" csv:"description"`
	Type         string `json:"type" yaml:"type" csv:"type"`
	Category     string `json:"category" yaml:"category" csv:"category"`
	Source       string `json:"source" yaml:"source" csv:"source"`
	Installments int    `json:"installments" yaml:"installments" csv:"installments"`
	Amount       string `json:"amount" yaml:"amount" csv:"amount"`
	Shared       bool   `json:"shared" yaml:"shared" csv:"shared"`
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func optionalAmount(valid bool, s string) string {
	if !valid {
		return ""
	}
	return s
}

// GenerateCards renders a credit card listing
func (g *Generator) GenerateCards(cards []models.CreditCard, format string) ([]byte, error) {
	rows := make([]CardRow, 0, len(cards))
	for i := range cards {
		c := &cards[i]
		row := CardRow{
			ID:              c.ID,
			Name:            c.Name,
			Brand:           c.Brand,
			Limit:           optionalAmount(c.LimitAmount.Valid, amount(c.Limit())),
			Balance:         optionalAmount(c.Balance.Valid, amount(c.CurrentBalance())),
			AvailableCredit: amount(c.AvailableCredit()),
			Utilization:     currencyutils.Percentage(c.CurrentBalance(), c.Limit()).StringFixed(1),
			Expiration:      isoDate(c.ExpirationDate),
			Active:          c.IsActive,
			LastFour:        lastFour(c.LastFour),
		}
		rows = append(rows, row)
	}

	return render(g, format, rows, rows, func(out io.Writer) error {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTARJETA\tMARCA\tTERMINA EN\tLÍMITE\tSALDO\tDISPONIBLE\tUSO\tVENCE")
		for _, c := range cards {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				c.ID,
				c.Name,
				orDash(c.Brand),
				orDash(lastFour(c.LastFour)),
				currencyutils.FormatARS(c.Limit()),
				currencyutils.FormatARS(c.CurrentBalance()),
				currencyutils.FormatARS(c.AvailableCredit()),
				currencyutils.FormatPercent(currencyutils.Percentage(c.CurrentBalance(), c.Limit())),
				dateutils.FormatDate(c.ExpirationDate.Time, "01/06"))
		}
		return w.Flush()
	})
}

func lastFour(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%04d", n)
}

// GenerateStatements renders a statement listing
func (g *Generator) GenerateStatements(statements []models.Statement, format string) ([]byte, error) {
	rows := make([]StatementRow, 0, len(statements))
	for i := range statements {
		s := &statements[i]
		rows = append(rows, StatementRow{
			ID:           s.ID,
			CreditCardID: s.CreditCardID,
			PeriodStart:  isoDate(s.PeriodStart),
			PeriodEnd:    isoDate(s.PeriodEnd),
			DueDate:      isoDate(s.DueDate),
			TotalAmount:  optionalAmount(s.TotalAmount.Valid, amount(s.TotalAmount.Decimal)),
			PaidAmount:   amount(s.StoredPaidAmount()),
			Status:       string(s.Status),
			StatusLabel:  statusLabel(s.Status),
		})
	}

	return render(g, format, rows, rows, func(out io.Writer) error {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPERÍODO\tVENCE\tTOTAL\tPAGADO\tESTADO")
		for _, s := range statements {
			total := "-"
			if s.TotalAmount.Valid {
				total = currencyutils.FormatARS(s.TotalAmount.Decimal)
			}
			fmt.Fprintf(w, "%d\t%s - %s\t%s\t%s\t%s\t%s\n",
				s.ID,
				dateutils.FormatDate(s.PeriodStart.Time, ""),
				dateutils.FormatDate(s.PeriodEnd.Time, ""),
				dateutils.FormatDate(s.DueDate.Time, ""),
				total,
				currencyutils.FormatARS(s.StoredPaidAmount()),
				statusLabel(s.Status))
		}
		return w.Flush()
	})
}

// GenerateBanks renders a bank listing
func (g *Generator) GenerateBanks(banks []models.Bank, format string) ([]byte, error) {
	rows := make([]BankRow, 0, len(banks))
	for _, b := range banks {
		rows = append(rows, BankRow{ID: b.ID, Name: b.Name, Country: b.Country, Active: b.IsActive})
	}

	return render(g, format, rows, rows, func(out io.Writer) error {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tBANCO\tPAÍS\tACTIVO")
		for _, b := range banks {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, b.Name, orDash(b.Country), yesNo(b.IsActive))
		}
		return w.Flush()
	})
}

// GenerateCategories renders a category listing
func (g *Generator) GenerateCategories(categories []models.Category, format string) ([]byte, error) {
	rows := make([]CategoryRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, CategoryRow{ID: c.ID, Name: c.Name, Type: string(c.Type), Color: c.Color, Active: c.IsActive})
	}

	return render(g, format, rows, rows, func(out io.Writer) error {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORÍA\tTIPO\tACTIVA")
		for _, c := range categories {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, categoryTypeLabel(c.Type), yesNo(c.IsActive))
		}
		return w.Flush()
	})
}

// GenerateTransactions renders a transaction listing
func (g *Generator) GenerateTransactions(txs []models.Transaction, format string) ([]byte, error) {
	rows := make([]TransactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, TransactionRow{
			ID:           tx.ID,
			Date:         isoDate(tx.Date),
			Description:  tx.Description,
			Type:         string(tx.Type),
			Category:     tx.CategoryName,
			Source:       transactionSource(tx),
			Installments: tx.InstallmentCount(),
			Amount:       amount(tx.Amount),
			Shared:       tx.Shared,
		})
	}

	return render(g, format, rows, rows, func(out io.Writer) error {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFECHA\tDESCRIPCIÓN\tCATEGORÍA\tORIGEN\tCUOTAS\tMONTO")
		for _, tx := range txs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
				tx.ID,
				dateutils.FormatDate(tx.Date.Time, ""),
				orDash(tx.Description),
				orDash(tx.CategoryName),
				orDash(transactionSource(tx)),
				tx.InstallmentCount(),
				currencyutils.FormatARS(tx.Amount))
		}
		return w.Flush()
	})
}

func transactionSource(tx models.Transaction) string {
	if tx.CreditCardName != "" {
		return tx.CreditCardName
	}
	return tx.AccountName
}

func categoryTypeLabel(t models.CategoryType) string {
	switch t {
	case models.CategoryIncome:
		return "Ingreso"
	case models.CategoryExpense:
		return "Gasto"
	default:
		return orDash(string(t))
	}
}
