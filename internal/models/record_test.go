package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceRecord_FormattedDate(t *testing.T) {
	assert.Equal(t, "", InvoiceRecord{}.FormattedDate())

	date := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15 09:30:00", InvoiceRecord{Date: date}.FormattedDate())
}

func TestInvoiceRecord_FormattedAmount(t *testing.T) {
	assert.Equal(t, "", InvoiceRecord{}.FormattedAmount())

	amount := decimal.NewFromFloat(45.0)
	assert.Equal(t, "45.00", InvoiceRecord{AmountGuess: &amount}.FormattedAmount())

	cents := decimal.NewFromFloat(0.5)
	assert.Equal(t, "0.50", InvoiceRecord{AmountGuess: &cents}.FormattedAmount())
}

func TestInvoiceRecord_JoinedTokens(t *testing.T) {
	assert.Equal(t, "", InvoiceRecord{}.JoinedTokens())
	assert.Equal(t, "pdf, gmail, high, amount",
		InvoiceRecord{TopTokens: []string{"pdf", "gmail", "high", "amount"}}.JoinedTokens())
}
