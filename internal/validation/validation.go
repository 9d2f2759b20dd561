// Package validation checks and converts command line input.
package validation

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fjacquet/finance-cli/internal/apierror"
	"fjacquet/finance-cli/internal/currencyutils"
	"fjacquet/finance-cli/internal/dateutils"
	"fjacquet/finance-cli/internal/models"

	"github.com/shopspring/decimal"
)

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "text", "json", "yaml", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'yaml', 'csv'", format)
	}
}

// ParseID parses a positive resource identifier.
func ParseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &apierror.ValidationError{Field: field, Value: value, Reason: "must be a number"}
	}
	if id <= 0 {
		return 0, &apierror.ValidationError{Field: field, Value: value, Reason: "must be positive"}
	}
	return id, nil
}

// ParseDate parses a date typed on the command line.
func ParseDate(field, value string) (models.Date, error) {
	t, _, err := dateutils.ParseDate(value)
	if err != nil {
		return models.Date{}, &apierror.ValidationError{Field: field, Value: value, Reason: "unrecognized date, use YYYY-MM-DD or DD/MM/YYYY"}
	}
	return models.Date{Time: t}, nil
}

// ParseAmount parses an amount typed on the command line. Both "1234.56"
// and "1.234,56" are accepted.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	d, err := currencyutils.ParseAmount(value)
	if err != nil {
		return decimal.Zero, &apierror.ValidationError{Field: field, Value: value, Reason: "must be an amount"}
	}
	return d, nil
}

// ValidatePeriod checks that start <= end and that due is not before end.
func ValidatePeriod(start, end, due models.Date) error {
	if end.Before(start.Time) {
		return &apierror.ValidationError{Field: "end", Value: dateutils.ToISODate(end.Time), Reason: "is before the period start"}
	}
	if !due.IsZero() && due.Before(end.Time) {
		return &apierror.ValidationError{Field: "due", Value: dateutils.ToISODate(due.Time), Reason: "is before the period end"}
	}
	return nil
}
