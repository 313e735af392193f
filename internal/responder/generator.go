// Package responder turns a classified intent into a natural-language reply.
package responder

import (
	"context"
	"errors"
	"slices"

	"finance-assistant/internal/domain"
)

// Reporter produces the financial sentiment report for a statement.
type Reporter interface {
	Report(ctx context.Context, statement string) string
}

// Snapshot is the conversation state a reply is generated against.
type Snapshot struct {
	// History counts the stored messages, including the one being answered.
	History int
	// Topics were discussed before the message being answered.
	Topics []string
}

func (s Snapshot) discussed(topic string) bool {
	return slices.Contains(s.Topics, topic)
}

type Generator struct {
	reporter Reporter
	rand     Rand
}

type Option func(*Generator)

// WithRand replaces the default math/rand/v2 source.
func WithRand(r Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

func NewGenerator(reporter Reporter, opts ...Option) (*Generator, error) {
	if reporter == nil {
		return nil, errors.New("responder: sentiment reporter must not be nil")
	}
	g := &Generator{reporter: reporter, rand: globalRand{}}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate never fails: every intent, including ones whose entities name
// nothing the catalog knows, produces a reply.
func (g *Generator) Generate(ctx context.Context, in domain.Intent, raw string, snap Snapshot) string {
	switch in.Kind {
	case domain.IntentGreeting:
		if snap.History <= 1 {
			return pick(g.rand, firstGreetings)
		}
		return pick(g.rand, returningGreetings)
	case domain.IntentHowAreYou:
		return pick(g.rand, howAreYouReplies)
	case domain.IntentGoodbye:
		return pick(g.rand, goodbyeReplies)
	case domain.IntentThanks:
		return pick(g.rand, thanksReplies)
	case domain.IntentJoke:
		return pick(g.rand, jokes)
	case domain.IntentAnalyzeSentiment:
		statement := in.Entities.Statement
		if statement == "" {
			statement = raw
		}
		return g.reporter.Report(ctx, statement)
	case domain.IntentMarketSentiment:
		return g.marketSentiment(in.Entities.Sectors)
	case domain.IntentStockSentiment:
		return g.stockSentiment(in.Entities.Stocks)
	case domain.IntentProductInformation:
		return g.productInformation(in.Entities)
	case domain.IntentInvestmentRecommendation:
		return investmentRecommendation(in.Entities)
	case domain.IntentEducational:
		return educational(in.Entities)
	default:
		return g.generalQuery(in, raw, snap)
	}
}
