// Package category implements the category commands
package category

import (
	"strings"

	"fjacquet/finance-cli/cmd/common"
	"fjacquet/finance-cli/cmd/root"
	"fjacquet/finance-cli/internal/apierror"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/models"

	"github.com/spf13/cobra"
)

var (
	categoryType string
	color        string
)

// Cmd groups the category commands
var Cmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Manage transaction categories",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		categories, err := c.GetAPI().ListCategories(common.Context(cmd))
		if err != nil {
			return err
		}
		return emit(cmd, categories)
	},
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := models.CategoryType(strings.ToLower(strings.TrimSpace(categoryType)))
		if t != models.CategoryIncome && t != models.CategoryExpense {
			return &apierror.ValidationError{Field: "type", Value: categoryType, Reason: "must be income or expense"}
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		created, err := c.GetAPI().CreateCategory(common.Context(cmd), models.CategoryInput{
			Name:  strings.TrimSpace(args[0]),
			Type:  t,
			Color: color,
		})
		if err != nil {
			return err
		}
		root.Log.Info("Category created", logging.F("category_id", created.ID))
		return emit(cmd, []models.Category{*created})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deactivate a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "category")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		if err := c.GetAPI().DeleteCategory(common.Context(cmd), id); err != nil {
			return err
		}
		common.Done(cmd, "Category %d deleted", id)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Reactivate a deleted category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseIDArg(args, 0, "category")
		if err != nil {
			return err
		}
		c, err := common.GetContainer()
		if err != nil {
			return err
		}
		if err := c.GetAPI().RestoreCategory(common.Context(cmd), id); err != nil {
			return err
		}
		common.Done(cmd, "Category %d restored", id)
		return nil
	},
}

func emit(cmd *cobra.Command, categories []models.Category) error {
	c, err := common.GetContainer()
	if err != nil {
		return err
	}
	data, err := c.GetReportGenerator().GenerateCategories(categories, root.OutputFormat())
	if err != nil {
		return err
	}
	return common.Emit(cmd, data)
}

func init() {
	createCmd.Flags().StringVarP(&categoryType, "type", "t", string(models.CategoryExpense), "Category type: income or expense")
	createCmd.Flags().StringVar(&color, "color", "", "Display color, e.g. #ff8800")
	Cmd.AddCommand(listCmd, createCmd, deleteCmd, restoreCmd)
}
