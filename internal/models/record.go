package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TokenJoinSeparator joins the top risk tokens into a single report cell.
const TokenJoinSeparator = ", "

// DateFormat is the timestamp layout used in report rows.
const DateFormat = "2006-01-02 15:04:05"

// InvoiceRecord is one report row: a message the classifier accepted,
// enriched with the amount guess and risk score. Records are appended in
// scan order and written out once at the end of the run.
type InvoiceRecord struct {
	Date        time.Time
	Sender      string
	Subject     string
	HasPDF      bool
	AmountGuess *decimal.Decimal
	RiskScore   int
	TopTokens   []string
}

// FormattedDate returns the message date in report layout, or "" for the
// zero time (messages without a parseable Date header).
func (r InvoiceRecord) FormattedDate() string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format(DateFormat)
}

// FormattedAmount returns the amount guess with two decimal places, or ""
// when no amount was found.
func (r InvoiceRecord) FormattedAmount() string {
	if r.AmountGuess == nil {
		return ""
	}
	return r.AmountGuess.StringFixed(2)
}

// JoinedTokens returns the top tokens joined for a single report cell.
func (r InvoiceRecord) JoinedTokens() string {
	return strings.Join(r.TopTokens, TokenJoinSeparator)
}
