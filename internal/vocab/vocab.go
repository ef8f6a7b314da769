// Package vocab holds the fixed vocabularies driving classification and
// risk scoring: the invoice keyword set and the weighted risk token table.
// Both ship with compiled-in defaults and can be overridden from a YAML
// file found in the usual config locations.
package vocab

// WeightedToken maps one lowercase token to its risk weight. Positive
// weights push the score up, negative weights pull it down.
type WeightedToken struct {
	Token  string  `yaml:"token"`
	Weight float64 `yaml:"weight"`
}

// Vocabulary bundles everything the heuristics need. Ordered slices, not
// maps: tie-breaks are defined by table order, so ordering must be stable.
type Vocabulary struct {
	// InvoiceKeywords classify a message as invoice-related when any of
	// them appears in subject or body (case-insensitive).
	InvoiceKeywords []string `yaml:"invoice_keywords"`

	// RiskBaseline is the score of a message matching no risk token.
	RiskBaseline float64 `yaml:"risk_baseline"`

	// RiskTopN caps the number of reported top tokens.
	RiskTopN int `yaml:"risk_top_n"`

	// RiskWeights is the fixed weighted token table.
	RiskWeights []WeightedToken `yaml:"risk_weights"`
}

// Default returns the compiled-in vocabulary. The weight table is a small
// curated set tuned by hand, not a trained model.
func Default() Vocabulary {
	return Vocabulary{
		InvoiceKeywords: []string{
			"invoice",
			"receipt",
			"payment",
			"bill",
			"statement",
			"due",
			"amount due",
			"balance",
			"order confirmation",
			"paid",
			"unpaid",
		},
		RiskBaseline: 50,
		RiskTopN:     4,
		RiskWeights: []WeightedToken{
			{Token: "wire", Weight: 15},
			{Token: "password", Weight: 13},
			{Token: "urgent", Weight: 12},
			{Token: "suspended", Weight: 11},
			{Token: "verify", Weight: 9},
			{Token: "gmail", Weight: 8},
			{Token: "immediately", Weight: 7},
			{Token: "click", Weight: 6},
			{Token: "overdue", Weight: 5},
			{Token: "high", Weight: 4},
			{Token: "transfer", Weight: 3},
			{Token: "amount", Weight: 2},
			{Token: "attached", Weight: -3},
			{Token: "thanks", Weight: -4},
			{Token: "regards", Weight: -5},
			{Token: "unsubscribe", Weight: -6},
			{Token: "pdf", Weight: -14},
		},
	}
}
