// Package bank implements the bank commands
package bank

import (
	"strings"

	"fjacquet/finance-cli/cmd/common"
	"fjacquet/finance-cli/cmd/root"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/models"

	"github.com/spf13/cobra"
)

var country string

// Cmd groups the bank commands
var Cmd = &cobra.Command{
	Use:     "bank",
	Aliases: []string{"banks"},
	Short:   "Manage banks",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List banks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		banks, err := c.GetAPI().ListBanks(common.Context(cmd))
		if err != nil {
			return err
		}
		data, err := c.GetReportGenerator().GenerateBanks(banks, root.OutputFormat())
		if err != nil {
			return err
		}
		return common.Emit(cmd, data)
	},
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		in := models.BankInput{Name: strings.TrimSpace(args[0]), Country: strings.TrimSpace(country)}
		bank, err := c.GetAPI().CreateBank(common.Context(cmd), in)
		if err != nil {
			return err
		}
		root.Log.Info("Bank created", logging.F("bank_id", bank.ID))
		data, err := c.GetReportGenerator().GenerateBanks([]models.Bank{*bank}, root.OutputFormat())
		if err != nil {
			return err
		}
		return common.Emit(cmd, data)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deactivate a bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "bank")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		if err := c.GetAPI().DeleteBank(common.Context(cmd), id); err != nil {
			return err
		}
		common.Done(cmd, "Bank %d deleted", id)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Reactivate a deleted bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "bank")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		if err := c.GetAPI().RestoreBank(common.Context(cmd), id); err != nil {
			return err
		}
		common.Done(cmd, "Bank %d restored", id)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&country, "country", "", "Country of the bank")
	Cmd.AddCommand(listCmd, createCmd, deleteCmd, restoreCmd)
}
