package report

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"fjacquet/invoice-scan/internal/scanerror"

	"github.com/gocarina/gocsv"
)

func (w *Writer) writeCSV(rows []Row, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &scanerror.IOError{Path: path, Err: err}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return &scanerror.IOError{Path: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close report file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = w.Delimiter

	// gocsv emits the header row even for an empty slice.
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return &scanerror.IOError{Path: path, Err: err}
	}

	return nil
}
