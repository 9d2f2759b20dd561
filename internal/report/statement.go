package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/finance-cli/internal/currencyutils"
	"fjacquet/finance-cli/internal/dateutils"
	"fjacquet/finance-cli/internal/models"
	"fjacquet/finance-cli/internal/statement"

	"github.com/shopspring/decimal"
)

// Line kinds in a statement report
const (
	LineInstallment = "installment"
	LineTransaction = "transaction"
)

// StatementLine is one billed item of a statement. It is also the CSV row.
type StatementLine struct {
	Kind              string `json:"kind" yaml:"kind" csv:"kind"`
	ID                int64  `json:"id" yaml:"id" csv:"id"`
	Date              string `json:"date" yaml:"date" csv:"date"`
	Description       string `json:"description" yaml:"description" csv:"description"`
	Category          string `json:"category,omitempty" yaml:"category,omitempty" csv:"category"`
	InstallmentNumber int    `json:"installment_number,omitempty" yaml:"installment_number,omitempty" csv:"installment_number"`
	Amount            string `json:"amount" yaml:"amount" csv:"amount"`
	Paid              bool   `json:"paid" yaml:"paid" csv:"paid"`
}

// CardSummary is the card block of a statement report
type CardSummary struct {
	ID              int64  `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Brand           string `json:"brand" yaml:"brand"`
	LastFour        string `json:"last_four,omitempty" yaml:"last_four,omitempty"`
	Limit           string `json:"limit" yaml:"limit"`
	Balance         string `json:"balance" yaml:"balance"`
	AvailableCredit string `json:"available_credit" yaml:"available_credit"`
}

// StatementReport is the serializable form of a statement summary
type StatementReport struct {
	StatementID   int64        `json:"statement_id" yaml:"statement_id"`
	CreditCardID  int64        `json:"credit_card_id" yaml:"credit_card_id"`
	Status        string       `json:"status" yaml:"status"`
	RawStatus     string       `json:"raw_status,omitempty" yaml:"raw_status,omitempty"`
	StatusLabel   string       `json:"status_label" yaml:"status_label"`
	StatusVariant string       `json:"status_variant" yaml:"status_variant"`
	Card          *CardSummary `json:"card,omitempty" yaml:"card,omitempty"`

	PeriodStart     string `json:"period_start" yaml:"period_start"`
	PeriodEnd       string `json:"period_end" yaml:"period_end"`
	DueDate         string `json:"due_date" yaml:"due_date"`
	DaysUntilEnd    int    `json:"days_until_end" yaml:"days_until_end"`
	DaysUntilDue    int    `json:"days_until_due" yaml:"days_until_due"`
	PeriodEndPassed bool   `json:"period_end_passed" yaml:"period_end_passed"`
	DueDatePassed   bool   `json:"due_date_passed" yaml:"due_date_passed"`

	TotalFromSingleTransactions string `json:"total_from_single_transactions" yaml:"total_from_single_transactions"`
	TotalFromInstallments       string `json:"total_from_installments" yaml:"total_from_installments"`
	TotalAmount                 string `json:"total_amount" yaml:"total_amount"`
	PaidAmount                  string `json:"paid_amount" yaml:"paid_amount"`
	RemainingAmount             string `json:"remaining_amount" yaml:"remaining_amount"`
	StoredTotalAmount           string `json:"stored_total_amount,omitempty" yaml:"stored_total_amount,omitempty"`
	StoredTotalMismatch         bool   `json:"stored_total_mismatch" yaml:"stored_total_mismatch"`
	InstallmentsPaid            int    `json:"installments_paid" yaml:"installments_paid"`
	InstallmentsTotal           int    `json:"installments_total" yaml:"installments_total"`
	AvailableCredit             string `json:"available_credit" yaml:"available_credit"`
	UtilizationPercentage       string `json:"utilization_percentage" yaml:"utilization_percentage"`

	Installments []StatementLine `json:"installments" yaml:"installments"`
	Transactions []StatementLine `json:"transactions" yaml:"transactions"`
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func isoDate(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return dateutils.ToISODate(d.UTC())
}

// NewStatementReport converts a summary into its report form
func NewStatementReport(s *statement.Summary) StatementReport {
	st := s.Statement
	r := StatementReport{
		StatementID:   st.ID,
		CreditCardID:  st.CreditCardID,
		Status:        string(st.Status),
		RawStatus:     st.RawStatus,
		StatusLabel:   s.Display.Label,
		StatusVariant: string(s.Display.Variant),

		PeriodStart:     isoDate(st.PeriodStart),
		PeriodEnd:       isoDate(st.PeriodEnd),
		DueDate:         isoDate(st.DueDate),
		DaysUntilEnd:    s.DaysUntilEnd,
		DaysUntilDue:    s.DaysUntilDue,
		PeriodEndPassed: s.PeriodEndPassed,
		DueDatePassed:   s.DueDatePassed,

		TotalFromSingleTransactions: amount(s.TotalFromSingleTransactions),
		TotalFromInstallments:       amount(s.TotalFromInstallments),
		TotalAmount:                 amount(s.TotalAmount),
		PaidAmount:                  amount(s.PaidAmount),
		RemainingAmount:             amount(s.RemainingAmount),
		StoredTotalMismatch:         s.StoredTotalMismatch,
		InstallmentsPaid:            s.InstallmentsPaid,
		InstallmentsTotal:           s.InstallmentsTotal,
		AvailableCredit:             amount(s.AvailableCredit),
		UtilizationPercentage:       s.UtilizationPercentage.StringFixed(1),

		Installments: make([]StatementLine, 0, len(s.Installments)),
		Transactions: make([]StatementLine, 0, len(s.SingleTransactions)),
	}
	if s.StoredTotal.Valid {
		r.StoredTotalAmount = amount(s.StoredTotal.Decimal)
	}
	if s.Card != nil {
		r.Card = &CardSummary{
			ID:              s.Card.ID,
			Name:            s.Card.Name,
			Brand:           s.Card.Brand,
			Limit:           amount(s.Card.Limit()),
			Balance:         amount(s.Card.CurrentBalance()),
			AvailableCredit: amount(s.Card.AvailableCredit()),
		}
		if s.Card.LastFour > 0 {
			r.Card.LastFour = fmt.Sprintf("%04d", s.Card.LastFour)
		}
	}

	for _, inst := range s.Installments {
		r.Installments = append(r.Installments, StatementLine{
			Kind:              LineInstallment,
			ID:                inst.ID,
			Date:              isoDate(inst.DueDate),
			Description:       inst.TransactionDescription,
			InstallmentNumber: inst.InstallmentNumber,
			Amount:            amount(inst.Amount),
			Paid:              inst.Paid,
		})
	}
	for _, tx := range s.SingleTransactions {
		r.Transactions = append(r.Transactions, StatementLine{
			Kind:        LineTransaction,
			ID:          tx.ID,
			Date:        isoDate(tx.Date),
			Description: tx.Description,
			Category:    tx.CategoryName,
			Amount:      amount(tx.Amount),
		})
	}
	return r
}

// Lines returns installments followed by single-payment transactions
func (r StatementReport) Lines() []StatementLine {
	lines := make([]StatementLine, 0, len(r.Installments)+len(r.Transactions))
	lines = append(lines, r.Installments...)
	return append(lines, r.Transactions...)
}

// GenerateStatement renders a statement summary in the given format
func (g *Generator) GenerateStatement(s *statement.Summary, format string) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot render a nil statement summary")
	}
	doc := NewStatementReport(s)
	return render(g, format, doc, doc.Lines(), func(w io.Writer) error {
		return writeStatementText(w, s)
	})
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// daysPhrase describes a day count relative to today
func daysPhrase(days int, verb string) string {
	switch {
	case days == 0:
		return "hoy"
	case days == -1:
		return "hace 1 día"
	case days < 0:
		return fmt.Sprintf("hace %d días", -days)
	case days == 1:
		return verb + " mañana"
	default:
		return fmt.Sprintf("%s en %d días", verb, days)
	}
}

func writeStatementText(out io.Writer, s *statement.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	st := s.Statement

	title := fmt.Sprintf("Resumen #%d", st.ID)
	if s.Card != nil {
		title += fmt.Sprintf(" - %s %s", s.Card.Brand, s.Card.Name)
		if s.Card.LastFour > 0 {
			title += fmt.Sprintf(" **** %04d", s.Card.LastFour)
		}
	}
	fmt.Fprintln(w, title)

	status := s.Display.Label
	if st.Status == models.StatusUnknown && st.RawStatus != "" {
		status += fmt.Sprintf(" (%q)", st.RawStatus)
	}
	fmt.Fprintf(w, "Estado:\t%s\n", status)
	fmt.Fprintf(w, "Período:\t%s - %s\n",
		dateutils.FormatDate(st.PeriodStart.Time, ""), dateutils.FormatDate(st.PeriodEnd.Time, ""))

	closing := "Cierre:\t" + dateutils.FormatShort(st.PeriodEnd.Time)
	if !st.PeriodEnd.IsZero() {
		closing += " (" + daysPhrase(s.DaysUntilEnd, "cierra") + ")"
	}
	if s.PeriodEndPassed {
		closing += "  CERRADO"
	}
	fmt.Fprintln(w, closing)

	due := "Vencimiento:\t" + dateutils.FormatShort(st.DueDate.Time)
	if !st.DueDate.IsZero() {
		due += " (" + daysPhrase(s.DaysUntilDue, "vence") + ")"
	}
	if s.DueDatePassed {
		due += "  VENCIDO"
	}
	fmt.Fprintln(w, due)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total:\t%s\n", currencyutils.FormatARS(s.TotalAmount))
	fmt.Fprintf(w, "  Pagos únicos:\t%s\n", currencyutils.FormatARS(s.TotalFromSingleTransactions))
	fmt.Fprintf(w, "  Cuotas:\t%s\n", currencyutils.FormatARS(s.TotalFromInstallments))
	fmt.Fprintf(w, "Pagado:\t%s\n", currencyutils.FormatARS(s.PaidAmount))
	fmt.Fprintf(w, "Restante:\t%s\n", currencyutils.FormatARS(s.RemainingAmount))
	if s.StoredTotalMismatch {
		fmt.Fprintf(w, "Total registrado:\t%s (no coincide)\n", currencyutils.FormatARS(s.StoredTotal.Decimal))
	}
	fmt.Fprintf(w, "Cuotas pagadas:\t%d/%d\n", s.InstallmentsPaid, s.InstallmentsTotal)

	if s.Card != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Límite:\t%s\n", currencyutils.FormatARS(s.Card.Limit()))
		fmt.Fprintf(w, "Saldo:\t%s\n", currencyutils.FormatARS(s.Card.CurrentBalance()))
		fmt.Fprintf(w, "Disponible:\t%s\n", currencyutils.FormatARS(s.AvailableCredit))
		fmt.Fprintf(w, "Utilización:\t%s\n", currencyutils.FormatPercent(s.UtilizationPercentage))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(s.Installments) > 0 {
		fmt.Fprintf(out, "\nCuotas (%d)\n", len(s.Installments))
		t := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(t, "ID\tCUOTA\tDESCRIPCIÓN\tVENCE\tMONTO\tPAGADA")
		for _, inst := range s.Installments {
			fmt.Fprintf(t, "%d\t%d\t%s\t%s\t%s\t%s\n",
				inst.ID,
				inst.InstallmentNumber,
				inst.TransactionDescription,
				dateutils.FormatDate(inst.DueDate.Time, ""),
				currencyutils.FormatARS(inst.Amount),
				yesNo(inst.Paid))
		}
		if err := t.Flush(); err != nil {
			return err
		}
	}

	if len(s.SingleTransactions) > 0 {
		fmt.Fprintf(out, "\nTransacciones (%d)\n", len(s.SingleTransactions))
		t := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(t, "ID\tFECHA\tDESCRIPCIÓN\tCATEGORÍA\tMONTO")
		for _, tx := range s.SingleTransactions {
			category := tx.CategoryName
			if category == "" {
				category = "-"
			}
			fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%s\n",
				tx.ID,
				dateutils.FormatDate(tx.Date.Time, ""),
				tx.Description,
				category,
				currencyutils.FormatARS(tx.Amount))
		}
		if err := t.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func statusLabel(status models.StatementStatus) string {
	return statement.DisplayFor(status).Label
}
