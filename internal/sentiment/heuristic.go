package sentiment

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"finance-assistant/internal/domain"
)

// SourceLocal names results produced by the keyword heuristic.
const SourceLocal = "local"

var positiveWords = []string{
	"growth", "profit", "increase", "gain", "positive", "up", "bullish", "opportunity",
	"succeed", "success", "strong", "strengthen", "improved", "improving", "outperform",
}

var negativeWords = []string{
	"decline", "decrease", "loss", "debt", "risk", "bearish", "down", "fail", "weak",
	"negative", "problem", "issue", "challenge", "underperform", "concern",
}

const maxEvidence = 2

// Heuristic scores statements by counting sentiment keywords. It needs no
// network and never fails.
type Heuristic struct {
	// jitter returns a value in [0, 1); it spreads tie scores around 0.5.
	jitter func() float64
}

// NewHeuristic returns a heuristic drawing tie jitter from math/rand/v2.
func NewHeuristic() *Heuristic {
	return &Heuristic{jitter: rand.Float64}
}

// Score classifies statement. A keyword counts once however often it
// appears; containment is checked on the lower-cased statement.
func (h *Heuristic) Score(statement string) domain.SentimentResult {
	lower := strings.ToLower(statement)
	pos := countContained(lower, positiveWords)
	neg := countContained(lower, negativeWords)

	res := domain.SentimentResult{Source: SourceLocal}
	switch {
	case pos > neg:
		res.Label = domain.SentimentPositive
		res.Score = decidedScore(pos - neg)
		res.Evidence = evidence(statement, positiveWords)
	case neg > pos:
		res.Label = domain.SentimentNegative
		res.Score = decidedScore(neg - pos)
		res.Evidence = evidence(statement, negativeWords)
	default:
		res.Label = domain.SentimentNeutral
		res.Score = 0.5 + (h.jitter()*0.2 - 0.1)
	}
	return res
}

func decidedScore(diff int) float64 {
	return math.Min(0.5+0.1*float64(diff), 0.95)
}

func countContained(s string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(s, w) {
			n++
		}
	}
	return n
}

// evidence returns up to two windows of two words either side of each word
// that belongs to the given set, in order of appearance.
func evidence(statement string, set []string) []string {
	words := strings.Fields(statement)
	var phrases []string
	for i, w := range words {
		if !slices.Contains(set, strings.ToLower(strings.Trim(w, ".,!?;:"))) {
			continue
		}
		start := max(0, i-2)
		end := min(len(words), i+3)
		phrases = append(phrases, strings.Join(words[start:end], " "))
		if len(phrases) == maxEvidence {
			break
		}
	}
	return phrases
}
