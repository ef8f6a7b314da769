// Package extract pulls a best-effort monetary amount out of message text.
package extract

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// amountPattern matches a numeric token with an optional decimal part,
// optionally preceded by a currency symbol. Deliberately naive: no currency
// normalization and no multi-amount reconciliation, only a single guess.
var amountPattern = regexp.MustCompile(`(?:[$€£]\s*)?([0-9]+(?:\.[0-9]{1,2})?)`)

// Amount returns the leftmost amount-looking token of body as a decimal.
// "Leftmost" is by character position, top to bottom. The boolean is false
// when body contains no numeric token.
func Amount(body string) (decimal.Decimal, bool) {
	if body == "" {
		return decimal.Decimal{}, false
	}

	m := amountPattern.FindStringSubmatch(body)
	if m == nil {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
