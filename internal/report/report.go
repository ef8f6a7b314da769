// Package report writes the scan result as a spreadsheet file. The format
// is chosen by output extension: .xlsx produces a workbook, anything else
// a CSV file. Both carry the same fixed columns and overwrite any existing
// file at the target path.
package report

import (
	"path/filepath"
	"strings"

	"fjacquet/invoice-scan/internal/logging"
	"fjacquet/invoice-scan/internal/models"
)

// SheetName is the single sheet of an .xlsx report.
const SheetName = "Invoices"

// Header is the fixed column set of every report.
var Header = []string{"Date", "Sender", "Subject", "HasPDF", "AmountGuess", "ML Risk Score", "ML Top Tokens"}

// Row is one spreadsheet row. The csv tags define the CSV header and must
// stay aligned with Header.
type Row struct {
	Date        string `csv:"Date"`
	Sender      string `csv:"Sender"`
	Subject     string `csv:"Subject"`
	HasPDF      bool   `csv:"HasPDF"`
	AmountGuess string `csv:"AmountGuess"`
	RiskScore   int    `csv:"ML Risk Score"`
	TopTokens   string `csv:"ML Top Tokens"`
}

// Writer writes accumulated invoice records to a spreadsheet file.
type Writer struct {
	// Delimiter is the CSV column separator. Ignored for .xlsx output.
	Delimiter rune

	logger logging.Logger
}

// NewWriter creates a Writer with the default comma delimiter.
func NewWriter(logger logging.Logger) *Writer {
	return &Writer{Delimiter: ',', logger: logger}
}

// Write renders the records to path in input order. Zero records produce a
// file holding only the header row. Failure to write yields a
// *scanerror.IOError, which is fatal for a run.
func (w *Writer) Write(records []models.InvoiceRecord, path string) error {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{
			Date:        r.FormattedDate(),
			Sender:      r.Sender,
			Subject:     r.Subject,
			HasPDF:      r.HasPDF,
			AmountGuess: r.FormattedAmount(),
			RiskScore:   r.RiskScore,
			TopTokens:   r.JoinedTokens(),
		})
	}

	w.logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Writing report")

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return w.writeXLSX(rows, path)
	}
	return w.writeCSV(rows, path)
}
