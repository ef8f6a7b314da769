// Package risk computes the heuristic risk score of a message.
//
// The score is a fixed weighted-keyword lookup, not a trained model:
// distinct matched tokens contribute their table weight once, the sum is
// added to a baseline and the result is clamped to [0,100]. Deterministic,
// no failure mode.
package risk

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"fjacquet/invoice-scan/internal/vocab"
)

// MinScore and MaxScore bound every score the scorer can produce.
const (
	MinScore = 0
	MaxScore = 100
)

var tokenPattern = regexp.MustCompile(`[a-z0-9']+`)

// Scorer scores messages against a weighted token table.
type Scorer struct {
	weights  map[string]float64
	baseline float64
	topN     int
}

// NewScorer creates a Scorer from the vocabulary's weight table.
func NewScorer(v vocab.Vocabulary) *Scorer {
	weights := make(map[string]float64, len(v.RiskWeights))
	for _, wt := range v.RiskWeights {
		weights[strings.ToLower(wt.Token)] = wt.Weight
	}
	topN := v.RiskTopN
	if topN <= 0 {
		topN = 4
	}
	return &Scorer{
		weights:  weights,
		baseline: v.RiskBaseline,
		topN:     topN,
	}
}

type match struct {
	token    string
	weight   float64
	firstPos int
}

// Score tokenizes subject and body into lowercase word tokens, sums the
// weights of the distinct tokens found in the table and returns the
// clamped, rounded score together with the top contributing tokens.
//
// Top tokens are ordered by descending absolute weight; equal weights keep
// the order of first appearance in the text. Tokens outside the table
// contribute zero and are never reported. A message matching nothing gets
// the baseline score and an empty token list.
func (s *Scorer) Score(subject, body string) (int, []string) {
	text := strings.ToLower(subject + "\n" + body)

	var matches []match
	seen := make(map[string]bool)
	sum := 0.0
	for pos, token := range tokenPattern.FindAllString(text, -1) {
		weight, ok := s.weights[token]
		if !ok || seen[token] {
			continue
		}
		seen[token] = true
		sum += weight
		matches = append(matches, match{token: token, weight: weight, firstPos: pos})
	}

	// Rounding is half away from zero; clamping happens after rounding.
	score := int(math.Round(s.baseline + sum))
	if score < MinScore {
		score = MinScore
	}
	if score > MaxScore {
		score = MaxScore
	}

	sort.SliceStable(matches, func(i, j int) bool {
		ai, aj := math.Abs(matches[i].weight), math.Abs(matches[j].weight)
		if ai != aj {
			return ai > aj
		}
		return matches[i].firstPos < matches[j].firstPos
	})

	var top []string
	for _, m := range matches {
		if len(top) == s.topN {
			break
		}
		top = append(top, m.token)
	}

	return score, top
}
