// Package transaction implements the transaction commands
package transaction

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/finance-cli/cmd/common"
	"fjacquet/finance-cli/cmd/root"
	"fjacquet/finance-cli/internal/apierror"
	filecommon "fjacquet/finance-cli/internal/common"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/models"
	"fjacquet/finance-cli/internal/validation"

	"github.com/spf13/cobra"
)

var (
	statementID string
	cardID      string
	accountID   string
	dryRun      bool
)

// ImportRow is one line of a transaction import file
type ImportRow struct {
	Date         string `csv:"date"`
	Description  string `csv:"description"`
	Amount       string `csv:"amount"`
	Installments string `csv:"installments"`
	Type         string `csv:"type"`
	CategoryID   string `csv:"category_id"`
	Shared       string `csv:"shared"`
}

// Cmd groups the transaction commands
var Cmd = &cobra.Command{
	Use:     "transaction",
	Aliases: []string{"transactions", "tx"},
	Short:   "List, import and delete transactions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, optionally only those of one statement",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		ctx := common.Context(cmd)

		var txs []models.Transaction
		if statementID != "" {
			id, err := validation.ParseID("statement", statementID)
			if err != nil {
				return err
			}
			txs, err = c.GetAPI().ListStatementTransactions(ctx, id)
			if err != nil {
				return err
			}
		} else {
			txs, err = c.GetAPI().ListTransactions(ctx)
			if err != nil {
				return err
			}
		}

		data, err := c.GetReportGenerator().GenerateTransactions(txs, root.OutputFormat())
		if err != nil {
			return err
		}
		return common.Emit(cmd, data)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Create transactions from a CSV file",
	Long: `Create transactions from a CSV file with the columns
date, description, amount, installments, type, category_id and shared.
Every row is charged to the card given by --card or the account given
by --account.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := validation.IsValidInputFile(path); err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		logger := c.GetLogger()

		rows, err := filecommon.ReadCSVFile[ImportRow](path, logger)
		if err != nil {
			return err
		}
		inputs := make([]models.TransactionInput, 0, len(rows))
		for i, row := range rows {
			in, err := row.toInput()
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			if err := chargeTo(&in); err != nil {
				return err
			}
			inputs = append(inputs, in)
		}

		if dryRun {
			common.Done(cmd, "%d transactions are valid", len(inputs))
			return nil
		}

		ctx := common.Context(cmd)
		created, failed := 0, 0
		for i, in := range inputs {
			tx, err := c.GetAPI().CreateTransaction(ctx, in)
			if err != nil {
				failed++
				logger.WithError(err).Warn("Failed to import transaction",
					logging.F("row", i+2),
					logging.F(logging.FieldOperation, logging.OpImport))
				continue
			}
			created++
			logger.Debug("Transaction imported", logging.F(logging.FieldTransactionID, tx.ID))
		}

		common.Done(cmd, "Imported %d of %d transactions", created, len(inputs))
		if failed > 0 {
			return fmt.Errorf("%d transactions could not be imported", failed)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "transaction")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		if err := c.GetAPI().DeleteTransaction(common.Context(cmd), id); err != nil {
			return err
		}
		common.Done(cmd, "Transaction %d deleted", id)
		return nil
	},
}

func (r ImportRow) toInput() (models.TransactionInput, error) {
	date, err := validation.ParseDate("date", r.Date)
	if err != nil {
		return models.TransactionInput{}, err
	}
	amount, err := validation.ParseAmount("amount", r.Amount)
	if err != nil {
		return models.TransactionInput{}, err
	}

	in := models.TransactionInput{
		Date:         &date,
		Description:  strings.TrimSpace(r.Description),
		Amount:       amount,
		Installments: 1,
		Type:         models.TransactionExpense,
	}

	if s := strings.TrimSpace(r.Installments); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return models.TransactionInput{}, &apierror.ValidationError{Field: "installments", Value: r.Installments, Reason: "must be a positive number"}
		}
		in.Installments = n
	}
	if s := strings.ToLower(strings.TrimSpace(r.Type)); s != "" {
		switch models.TransactionType(s) {
		case models.TransactionIncome, models.TransactionExpense, models.TransactionTransfer:
			in.Type = models.TransactionType(s)
		default:
			return models.TransactionInput{}, &apierror.ValidationError{Field: "type", Value: r.Type, Reason: "must be income, expense or transfer"}
		}
	}
	if s := strings.TrimSpace(r.CategoryID); s != "" {
		id, err := validation.ParseID("category_id", s)
		if err != nil {
			return models.TransactionInput{}, err
		}
		in.CategoryID = &id
	}
	if s := strings.TrimSpace(r.Shared); s != "" {
		shared, err := strconv.ParseBool(s)
		if err != nil {
			return models.TransactionInput{}, &apierror.ValidationError{Field: "shared", Value: r.Shared, Reason: "must be true or false"}
		}
		in.Shared = shared
	}
	return in, nil
}

// chargeTo sets the card or account from the command flags. Exactly one
// of them must be given.
func chargeTo(in *models.TransactionInput) error {
	switch {
	case cardID != "" && accountID != "":
		return fmt.Errorf("use either --card or --account, not both")
	case cardID != "":
		id, err := validation.ParseID("card", cardID)
		if err != nil {
			return err
		}
		in.CreditCardID = &id
	case accountID != "":
		id, err := validation.ParseID("account", accountID)
		if err != nil {
			return err
		}
		in.AccountID = &id
	default:
		return fmt.Errorf("one of --card or --account is required")
	}
	return nil
}

func init() {
	listCmd.Flags().StringVar(&statementID, "statement", "", "Only list the transactions of this statement")

	importCmd.Flags().StringVar(&cardID, "card", "", "Credit card to charge the transactions to")
	importCmd.Flags().StringVar(&accountID, "account", "", "Account to charge the transactions to")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without creating anything")

	Cmd.AddCommand(listCmd, importCmd, deleteCmd)
}
