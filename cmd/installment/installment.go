// Package installment implements the installment commands
package installment

import (
	"errors"
	"fmt"

	"fjacquet/finance-cli/cmd/common"
	"fjacquet/finance-cli/cmd/statement"
	stmt "fjacquet/finance-cli/internal/statement"
	"fjacquet/finance-cli/internal/validation"

	"github.com/spf13/cobra"
)

var statementID string

// Cmd groups the installment commands
var Cmd = &cobra.Command{
	Use:     "installment",
	Aliases: []string{"installments", "cuota"},
	Short:   "Manage statement installments",
}

var payCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark an installment as paid and show its statement again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "installment")
		if err != nil {
			return err
		}
		sid, err := validation.ParseID("statement", statementID)
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}

		tracker := c.NewStatementTracker(sid)
		if err := tracker.MarkInstallmentPaid(common.Context(cmd), id); err != nil {
			if errors.Is(err, stmt.ErrReloadFailed) {
				return fmt.Errorf("installment %d was marked as paid but statement %d could not be reloaded: %w", id, sid, err)
			}
			return fmt.Errorf("failed to mark installment %d as paid: %w", id, err)
		}
		return statement.Render(cmd, c, tracker.View().Summary)
	},
}

func init() {
	payCmd.Flags().StringVar(&statementID, "statement", "", "Statement the installment belongs to")
	_ = payCmd.MarkFlagRequired("statement")
	Cmd.AddCommand(payCmd)
}
