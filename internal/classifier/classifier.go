// Package classifier decides whether a message is invoice-related.
package classifier

import (
	"strings"

	"fjacquet/invoice-scan/internal/logging"
	"fjacquet/invoice-scan/internal/vocab"
)

// Classifier matches messages against a fixed keyword set. It is a pure
// heuristic: case-insensitive substring matching over subject and body,
// deterministic, no failure mode.
type Classifier struct {
	keywords []string
	logger   logging.Logger
}

// New creates a Classifier from the vocabulary's invoice keyword list.
func New(v vocab.Vocabulary, logger logging.Logger) *Classifier {
	return &Classifier{
		keywords: v.InvoiceKeywords,
		logger:   logger,
	}
}

// Match reports whether subject or body contains any invoice keyword and
// returns the first matching keyword as the reason. Empty text never
// matches. Keywords are tried in table order, so the reason is stable.
func (c *Classifier) Match(subject, body string) (bool, string) {
	text := strings.ToLower(subject + "\n" + body)
	if strings.TrimSpace(text) == "" {
		return false, ""
	}

	for _, keyword := range c.keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			if c.logger != nil {
				c.logger.WithFields(
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldSubject, Value: subject},
				).Debug("Message classified as invoice")
			}
			return true, keyword
		}
	}

	return false, ""
}
