package report

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/invoice-scan/internal/scanerror"

	"github.com/xuri/excelize/v2"
)

func (w *Writer) writeXLSX(rows []Row, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &scanerror.IOError{Path: path, Err: err}
		}
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return &scanerror.IOError{Path: path, Err: err}
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return &scanerror.IOError{Path: path, Err: err}
	}

	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{r.Date, r.Sender, r.Subject, r.HasPDF, r.AmountGuess, r.RiskScore, r.TopTokens}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return &scanerror.IOError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &scanerror.IOError{Path: path, Err: err}
	}

	return nil
}
