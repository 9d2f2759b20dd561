// Package common provides shared file and CSV helpers.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/finance-cli/internal/logging"

	"github.com/gocarina/gocsv"
)

// Delimiter is the field separator used for CSV input and output
var Delimiter rune = ','

// SetDelimiter changes the CSV delimiter
func SetDelimiter(delim rune) {
	if delim == 0 {
		return
	}
	Delimiter = delim
}

func newReader(in io.Reader) gocsv.CSVReader {
	r := csv.NewReader(in)
	r.Comma = Delimiter
	r.TrimLeadingSpace = true
	return r
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	log := logger.WithField("file", filePath)
	log.Debug("Reading CSV file")

	file, err := os.Open(filePath) // #nosec G304 -- path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(newReader(file), &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Debug("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// WriteCSV marshals rows to w with the configured delimiter
func WriteCSV[TCSVRow any](w io.Writer, rows []TCSVRow) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// MarshalCSV returns rows rendered as CSV
func MarshalCSV[TCSVRow any](rows []TCSVRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes data to path, creating the parent directory when needed
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}
