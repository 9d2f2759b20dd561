// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"

	"fjacquet/finance-cli/cmd/root"
	filecommon "fjacquet/finance-cli/internal/common"
	"fjacquet/finance-cli/internal/container"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/validation"

	"github.com/spf13/cobra"
)

// GetContainer returns the application container or an error when the root
// command has not been set up.
func GetContainer() (*container.Container, error) {
	if root.AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return root.AppContainer, nil
}

// Context returns the command's context, falling back to a background one.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// ParseIDArg parses the positional argument at index i as a resource id.
func ParseIDArg(args []string, i int, field string) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing %s argument", field)
	}
	return validation.ParseID(field, args[i])
}

// Emit writes a rendered report to the --output file, or to the command's
// standard output when no file was requested.
func Emit(cmd *cobra.Command, data []byte) error {
	path := root.SharedFlags.Output
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := filecommon.WriteFile(path, data); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	root.Log.Info("Report written", logging.F(logging.FieldOutputFile, path), logging.F(logging.FieldCount, len(data)))
	return nil
}

// Done prints a short confirmation for commands that do not render a report.
func Done(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
