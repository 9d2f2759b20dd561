// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"

	"fjacquet/finance-cli/internal/config"
	"fjacquet/finance-cli/internal/container"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/validation"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	APIURL     string
	Format     string
	Output     string
	ConfigFile string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies. Setup fills it unless a
	// caller already provided one.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-cli",
		Short: "A CLI client for the personal finance API.",
		Long: `finance-cli talks to the personal finance REST API.
It shows credit card statements with their totals, installments and
utilization, marks statements and installments as paid, and manages
banks, cards, categories and transactions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				_ = AppContainer.Close()
			}
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.APIURL, "api-url", "", "Base URL of the finance API (overrides api.base_url)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: text, json, yaml or csv")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Write output to this file instead of stdout")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default $HOME/.finance-cli/config.yaml)")
}

// Setup loads the configuration and builds AppContainer
func Setup() error {
	if SharedFlags.Format != "" {
		if err := validation.IsValidOutputFormat(SharedFlags.Format); err != nil {
			return err
		}
	}
	if AppContainer != nil {
		Log = AppContainer.GetLogger()
		return nil
	}

	cfg, err := config.InitializeConfigFile(SharedFlags.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if SharedFlags.APIURL != "" {
		cfg.API.BaseURL = SharedFlags.APIURL
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// OutputFormat returns the format requested by flag or configuration
func OutputFormat() string {
	if SharedFlags.Format != "" {
		return strings.ToLower(SharedFlags.Format)
	}
	if AppContainer != nil && AppContainer.GetConfig().Output.Format != "" {
		return AppContainer.GetConfig().Output.Format
	}
	return "text"
}
