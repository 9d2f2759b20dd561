package main

import (
	"fmt"
	"os"

	"fjacquet/finance-cli/cmd/bank"
	"fjacquet/finance-cli/cmd/card"
	"fjacquet/finance-cli/cmd/category"
	"fjacquet/finance-cli/cmd/installment"
	"fjacquet/finance-cli/cmd/root"
	"fjacquet/finance-cli/cmd/statement"
	"fjacquet/finance-cli/cmd/transaction"
	"fjacquet/finance-cli/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first so LOG_LEVEL and FINANCE_* from .env are visible
	config.LoadEnv()

	logrus.SetLevel(config.LevelFromEnv())

	root.Init()

	root.Cmd.AddCommand(statement.Cmd)
	root.Cmd.AddCommand(installment.Cmd)
	root.Cmd.AddCommand(card.Cmd)
	root.Cmd.AddCommand(bank.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(transaction.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
