package domain

import "strings"

// Sentiment is a three-way sentiment label.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment normalises an external label. It reports false for labels
// outside the three known values.
func ParseSentiment(label string) (Sentiment, bool) {
	s := Sentiment(strings.ToLower(strings.TrimSpace(label)))
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return s, true
	}
	return "", false
}

// SentimentResult is the outcome of scoring one statement.
type SentimentResult struct {
	Label    Sentiment
	Score    float64
	Evidence []string
	// Source names the strategy that produced the result, e.g. "local".
	Source string
}
