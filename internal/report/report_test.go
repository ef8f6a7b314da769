package report

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/invoice-scan/internal/logging"
	"fjacquet/invoice-scan/internal/models"
	"fjacquet/invoice-scan/internal/scanerror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestWriter() *Writer {
	return NewWriter(&logging.MockLogger{})
}

func sampleRecords() []models.InvoiceRecord {
	amount := decimal.NewFromFloat(45.0)
	return []models.InvoiceRecord{
		{
			Date:        time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
			Sender:      "Acme Billing <billing@acme.com>",
			Subject:     "Invoice #1042",
			HasPDF:      true,
			AmountGuess: &amount,
			RiskScore:   62,
			TopTokens:   []string{"wire", "urgent"},
		},
		{
			Sender:    "shop@example.org",
			Subject:   "Your receipt",
			RiskScore: 50,
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWrite_CSVZeroRecordsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.csv")

	require.NoError(t, newTestWriter().Write(nil, path))

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestWrite_CSVRecordsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.csv")

	require.NoError(t, newTestWriter().Write(sampleRecords(), path))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{
		"2024-03-15 09:30:00",
		"Acme Billing <billing@acme.com>",
		"Invoice #1042",
		"true",
		"45.00",
		"62",
		"wire, urgent",
	}, rows[1])
	assert.Equal(t, []string{"", "shop@example.org", "Your receipt", "false", "", "50", ""}, rows[2])
}

func TestWrite_CSVOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0600))

	require.NoError(t, newTestWriter().Write(nil, path))

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestWrite_CSVCustomDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.csv")
	w := newTestWriter()
	w.Delimiter = ';'

	require.NoError(t, w.Write(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date;Sender;Subject")
}

func TestWrite_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.xlsx")

	require.NoError(t, newTestWriter().Write(sampleRecords(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "Invoice #1042", rows[1][2])
	assert.Equal(t, "62", rows[1][5])
	assert.Equal(t, "wire, urgent", rows[1][6])
	assert.Equal(t, "Your receipt", rows[2][2])
}

func TestWrite_XLSXZeroRecordsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.xlsx")

	require.NoError(t, newTestWriter().Write(nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestWrite_UnwritablePath(t *testing.T) {
	// A path below a regular file cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	for _, name := range []string{"out.csv", "out.xlsx"} {
		err := newTestWriter().Write(nil, filepath.Join(blocker, name))
		require.Error(t, err)

		var ioErr *scanerror.IOError
		assert.True(t, errors.As(err, &ioErr))
	}
}
