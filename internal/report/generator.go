// Package report renders statements and resource listings as text, JSON,
// YAML or CSV.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/finance-cli/internal/common"
	"fjacquet/finance-cli/internal/logging"

	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Formats lists every supported output format
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatCSV}

// IsSupportedFormat reports whether format can be rendered
func IsSupportedFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Generator renders reports in the supported formats
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new report Generator
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger.WithField("component", "ReportGenerator")}
}

// render encodes doc in the requested format. rows feeds the CSV encoder and
// text draws the human readable layout.
func render[TRow any](g *Generator, format string, doc interface{}, rows []TRow, text func(io.Writer) error) ([]byte, error) {
	format = strings.ToLower(format)
	log := g.logger.WithFields(
		logging.F(logging.FieldOperation, logging.OpRender),
		logging.F(logging.FieldFormat, format))

	var (
		out []byte
		err error
	)
	switch format {
	case FormatText, "":
		var buf bytes.Buffer
		err = text(&buf)
		out = buf.Bytes()
	case FormatJSON:
		out, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = yaml.Marshal(doc)
	case FormatCSV:
		out, err = common.MarshalCSV(rows)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}

	if err != nil {
		log.WithError(err).Error("Failed to render report")
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}
	log.Debug("Report rendered", logging.F(logging.FieldCount, len(rows)))
	return out, nil
}
