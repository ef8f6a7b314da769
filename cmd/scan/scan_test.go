package scan

import (
	"strings"
	"testing"

	"fjacquet/invoice-scan/internal/logging"
	"fjacquet/invoice-scan/internal/models"
	"fjacquet/invoice-scan/internal/vocab"

	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(seq uint32, subject, body string) models.RawMessage {
	lines := []string{
		"From: sender@example.com",
		"Subject: " + subject,
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}
	return models.RawMessage{SeqNum: seq, Body: []byte(strings.Join(lines, "\r\n"))}
}

func TestProcessMessages(t *testing.T) {
	logger := &logging.MockLogger{}
	rawMessages := []models.RawMessage{
		message(5, "Invoice #1042", "Total due: $45.00, ref 1999"),
		message(4, "Lunch on Friday?", "Let me know if noon works."),
		{SeqNum: 3, Body: []byte("completely broken\r\n\r\nnot mime")},
		message(2, "Your receipt", "urgent wire the amount"),
	}

	records := processMessages(rawMessages, false, "", vocab.Default(), logger)

	// The malformed message and the non-invoice are skipped; the scan
	// completes with the two classified messages in input order.
	require.Len(t, records, 2)

	assert.Equal(t, "Invoice #1042", records[0].Subject)
	require.NotNil(t, records[0].AmountGuess)
	assert.Equal(t, "45.00", records[0].AmountGuess.StringFixed(2))

	assert.Equal(t, "Your receipt", records[1].Subject)
	assert.Nil(t, records[1].AmountGuess)
	// urgent +12, wire +15, amount +2 over the baseline
	assert.Equal(t, 79, records[1].RiskScore)
	assert.Equal(t, []string{"wire", "urgent", "amount"}, records[1].TopTokens)

	for _, r := range records {
		assert.GreaterOrEqual(t, r.RiskScore, 0)
		assert.LessOrEqual(t, r.RiskScore, 100)
	}
}

func TestProcessMessages_SavedInvoiceLogCarriesSender(t *testing.T) {
	logrusLogger, hook := logrustest.NewNullLogger()
	logger := logging.NewLogrusAdapterFromLogger(logrusLogger)

	processMessages([]models.RawMessage{
		message(1, "Invoice #7", "Total due: $9.00"),
	}, false, "", vocab.Default(), logger)

	var found bool
	for _, entry := range hook.Entries {
		if entry.Message != "Saved invoice" {
			continue
		}
		found = true
		assert.Equal(t, "sender@example.com", entry.Data[logging.FieldSender])
	}
	assert.True(t, found, "expected a Saved invoice log entry")
}

func TestProcessMessages_EmptyInput(t *testing.T) {
	records := processMessages(nil, false, "", vocab.Default(), &logging.MockLogger{})
	assert.Empty(t, records)
}

func TestCredentials_RejectsMissingPasswordWithoutTerminal(t *testing.T) {
	// Stdin is not a terminal under go test, so a missing password fails
	// instead of prompting.
	_, _, err := credentials("user@example.com", "")
	assert.Error(t, err)
}

func TestCredentials_PassThrough(t *testing.T) {
	user, secret, err := credentials("user@example.com", "app-password")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user)
	assert.Equal(t, "app-password", secret)
}
