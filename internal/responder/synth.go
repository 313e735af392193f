package responder

import (
	"finance-assistant/internal/domain"
	"finance-assistant/internal/knowledge"
)

// Trends derived from a sentiment label.
const (
	TrendUp     = "up"
	TrendSteady = "steady"
	TrendDown   = "down"
)

var reasonPools = map[domain.Sentiment][]string{
	domain.SentimentPositive: {
		"strong quarterly results",
		"new product announcements",
		"expanded market share",
		"strategic partnerships",
		"analyst upgrades",
	},
	domain.SentimentNeutral: {
		"mixed earnings results",
		"pending regulatory decisions",
		"competitive market conditions",
		"sector rotation",
		"waiting for upcoming announcements",
	},
	domain.SentimentNegative: {
		"missed earnings expectations",
		"regulatory challenges",
		"increased competition",
		"management changes",
		"sector weakness",
	},
}

var scoreRanges = map[domain.Sentiment][2]float64{
	domain.SentimentPositive: {0.65, 0.95},
	domain.SentimentNeutral:  {0.45, 0.65},
	domain.SentimentNegative: {0.15, 0.45},
}

// Signal is a generated sentiment reading. It is illustrative, not market
// data.
type Signal struct {
	Label     domain.Sentiment
	Score     float64
	Trend     string
	NewsCount int
	Reasons   []string
}

// SecuritySignal is a Signal for one security.
type SecuritySignal struct {
	Signal
	Symbol string
	Name   string
}

// SectorSignal is a Signal for one sector.
type SectorSignal struct {
	Signal
	Sector        string
	TopPerformers []string
}

// NewSignal draws a label (positive 50%, neutral 30%, negative 20%), a score
// from the label's range, the matching trend, a news count in [3, 25] and one
// or two distinct reasons.
func NewSignal(r Rand) Signal {
	var label domain.Sentiment
	switch f := r.Float64(); {
	case f < 0.5:
		label = domain.SentimentPositive
	case f < 0.8:
		label = domain.SentimentNeutral
	default:
		label = domain.SentimentNegative
	}

	bounds := scoreRanges[label]
	return Signal{
		Label:     label,
		Score:     round2(uniform(r, bounds[0], bounds[1])),
		Trend:     trendFor(label),
		NewsCount: 3 + r.IntN(23),
		Reasons:   sample(r, reasonPools[label], 1+r.IntN(2)),
	}
}

func trendFor(label domain.Sentiment) string {
	switch label {
	case domain.SentimentPositive:
		return TrendUp
	case domain.SentimentNegative:
		return TrendDown
	default:
		return TrendSteady
	}
}

// NewSecuritySignal generates a signal for symbol. Unknown symbols keep the
// symbol as their name.
func NewSecuritySignal(r Rand, symbol string) SecuritySignal {
	name := symbol
	if sec, ok := knowledge.LookupSecurity(symbol); ok {
		name = sec.Name
	}
	return SecuritySignal{Signal: NewSignal(r), Symbol: symbol, Name: name}
}

// NewMarketSignals generates a signal for every sector, in catalog order,
// each with two randomly chosen top performers.
func NewMarketSignals(r Rand) []SectorSignal {
	sectors := knowledge.Sectors()
	out := make([]SectorSignal, 0, len(sectors))
	for _, s := range sectors {
		var symbols []string
		for _, sec := range knowledge.SecuritiesIn(s) {
			symbols = append(symbols, sec.Symbol)
		}
		out = append(out, SectorSignal{
			Signal:        NewSignal(r),
			Sector:        s,
			TopPerformers: sample(r, symbols, 2),
		})
	}
	return out
}
