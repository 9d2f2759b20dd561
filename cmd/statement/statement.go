// Package statement implements the statement commands
package statement

import (
	"errors"
	"fmt"

	"fjacquet/finance-cli/cmd/common"
	"fjacquet/finance-cli/cmd/root"
	"fjacquet/finance-cli/internal/container"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/models"
	"fjacquet/finance-cli/internal/statement"
	"fjacquet/finance-cli/internal/validation"

	"github.com/spf13/cobra"
)

var (
	cardID    string
	startDate string
	endDate   string
	dueDate   string
	total     string
	paid      string
)

// Cmd groups the statement commands
var Cmd = &cobra.Command{
	Use:     "statement",
	Aliases: []string{"statements"},
	Short:   "Show and manage credit card statements",
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a statement with its totals, installments and transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "statement")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		tracker := c.NewStatementTracker(id)
		view, _ := tracker.Refresh(common.Context(cmd))
		if view.Err != nil {
			return view.Err
		}
		return Render(cmd, c, view.Summary)
	},
}

var payCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark a statement as paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "statement")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		ctx := common.Context(cmd)
		tracker := c.NewStatementTracker(id)
		view, _ := tracker.Refresh(ctx)
		if view.Err != nil {
			return view.Err
		}
		if view.Summary.Statement.Status == models.StatusPaid {
			root.Log.Info("Statement is already paid", logging.F(logging.FieldStatementID, id))
			return Render(cmd, c, view.Summary)
		}
		if err := tracker.MarkPaid(ctx); err != nil {
			if errors.Is(err, statement.ErrReloadFailed) {
				return fmt.Errorf("statement %d was marked as paid but could not be reloaded: %w", id, err)
			}
			return fmt.Errorf("failed to mark statement %d as paid: %w", id, err)
		}
		return Render(cmd, c, tracker.View().Summary)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the statements of a credit card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := validation.ParseID("card", cardID)
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		statements, err := c.GetAPI().ListStatements(common.Context(cmd), id)
		if err != nil {
			return err
		}
		data, err := c.GetReportGenerator().GenerateStatements(statements, root.OutputFormat())
		if err != nil {
			return err
		}
		return common.Emit(cmd, data)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a statement for a credit card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := statementInput()
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		created, err := c.GetAPI().CreateStatement(common.Context(cmd), in)
		if err != nil {
			return err
		}
		root.Log.Info("Statement created",
			logging.F(logging.FieldStatementID, created.ID),
			logging.F(logging.FieldCardID, created.CreditCardID))
		data, err := c.GetReportGenerator().GenerateStatements([]models.Statement{*created}, root.OutputFormat())
		if err != nil {
			return err
		}
		return common.Emit(cmd, data)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a statement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "statement")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		if err := c.GetAPI().DeleteStatement(common.Context(cmd), id); err != nil {
			return err
		}
		common.Done(cmd, "Statement %d deleted", id)
		return nil
	},
}

func statementInput() (models.StatementInput, error) {
	id, err := validation.ParseID("card", cardID)
	if err != nil {
		return models.StatementInput{}, err
	}
	start, err := validation.ParseDate("start", startDate)
	if err != nil {
		return models.StatementInput{}, err
	}
	end, err := validation.ParseDate("end", endDate)
	if err != nil {
		return models.StatementInput{}, err
	}
	due, err := validation.ParseDate("due", dueDate)
	if err != nil {
		return models.StatementInput{}, err
	}
	if err := validation.ValidatePeriod(start, end, due); err != nil {
		return models.StatementInput{}, err
	}

	in := models.StatementInput{
		CreditCardID: id,
		PeriodStart:  &start,
		PeriodEnd:    &end,
		DueDate:      &due,
		Status:       models.StatusOpen,
	}
	if total != "" {
		d, err := validation.ParseAmount("total", total)
		if err != nil {
			return models.StatementInput{}, err
		}
		in.TotalAmount = &d
	}
	if paid != "" {
		d, err := validation.ParseAmount("paid", paid)
		if err != nil {
			return models.StatementInput{}, err
		}
		in.PaidAmount = &d
	}
	return in, nil
}

// Render writes a statement summary in the requested output format
func Render(cmd *cobra.Command, c *container.Container, s *statement.Summary) error {
	data, err := c.GetReportGenerator().GenerateStatement(s, root.OutputFormat())
	if err != nil {
		return err
	}
	return common.Emit(cmd, data)
}

func init() {
	listCmd.Flags().StringVar(&cardID, "card", "", "Credit card id")
	_ = listCmd.MarkFlagRequired("card")

	createCmd.Flags().StringVar(&cardID, "card", "", "Credit card id")
	createCmd.Flags().StringVar(&startDate, "start", "", "Period start (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&endDate, "end", "", "Period end, the closing date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&dueDate, "due", "", "Payment due date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&total, "total", "", "Total amount printed on the statement")
	createCmd.Flags().StringVar(&paid, "paid", "", "Amount already paid")
	for _, name := range []string{"card", "start", "end", "due"} {
		_ = createCmd.MarkFlagRequired(name)
	}

	Cmd.AddCommand(showCmd, payCmd, listCmd, createCmd, deleteCmd)
}
