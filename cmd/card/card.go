// Package card implements the credit card commands
package card

import (
	"fjacquet/finance-cli/cmd/common"
	"fjacquet/finance-cli/cmd/root"
	"fjacquet/finance-cli/internal/models"

	"github.com/spf13/cobra"
)

// Cmd groups the credit card commands
var Cmd = &cobra.Command{
	Use:     "card",
	Aliases: []string{"cards"},
	Short:   "Show and manage credit cards",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List credit cards with their available credit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		cards, err := c.GetAPI().ListCards(common.Context(cmd))
		if err != nil {
			return err
		}
		return emitCards(cmd, cards)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one credit card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "card")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		card, err := c.GetAPI().GetCard(common.Context(cmd), id)
		if err != nil {
			return err
		}
		return emitCards(cmd, []models.CreditCard{*card})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deactivate a credit card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "card")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		if err := c.GetAPI().DeleteCard(common.Context(cmd), id); err != nil {
			return err
		}
		common.Done(cmd, "Card %d deleted", id)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Reactivate a deleted credit card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "card")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		if err := c.GetAPI().RestoreCard(common.Context(cmd), id); err != nil {
			return err
		}
		common.Done(cmd, "Card %d restored", id)
		return nil
	},
}

func emitCards(cmd *cobra.Command, cards []models.CreditCard) error {
	c, err := common.GetContainer()
	if err != nil {
		return err
	}
	data, err := c.GetReportGenerator().GenerateCards(cards, root.OutputFormat())
	if err != nil {
		return err
	}
	return common.Emit(cmd, data)
}

func init() {
	Cmd.AddCommand(listCmd, showCmd, deleteCmd, restoreCmd)
}
