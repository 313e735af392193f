// Package intent turns a free-text message into a structured intent with
// extracted entities.
//
// Classification is a fixed cascade of rules evaluated in RuleOrder; the
// first rule that matches decides the intent and anything unmatched becomes
// a general query. The classifier holds no mutable state, so one instance can
// be shared by any number of goroutines.
package intent

import (
	"regexp"
	"strings"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/knowledge"
)

// RuleOrder is the priority of the classification rules. Earlier rules win
// when a message matches several.
var RuleOrder = []domain.IntentKind{
	domain.IntentGreeting,
	domain.IntentHowAreYou,
	domain.IntentGoodbye,
	domain.IntentThanks,
	domain.IntentJoke,
	domain.IntentAnalyzeSentiment,
	domain.IntentMarketSentiment,
	domain.IntentStockSentiment,
	domain.IntentProductInformation,
	domain.IntentInvestmentRecommendation,
	domain.IntentEducational,
}

// message is the per-call view of the input shared by all rules.
type message struct {
	raw        string
	lower      string
	tokens     map[string]bool
	isQuestion bool
}

type rule struct {
	kind    domain.IntentKind
	matches func(c *Classifier, m *message) bool
	// extract fills entities; nil for rules without entities.
	extract func(c *Classifier, m *message, e *domain.Entities)
}

// Classifier maps messages to intents using the knowledge base catalog.
type Classifier struct {
	sectors    []string
	securities []knowledge.Security
	concepts   []knowledge.Concept
	rules      []rule
}

// NewClassifier builds a classifier over the current knowledge base.
func NewClassifier() *Classifier {
	c := &Classifier{
		sectors:    knowledge.Sectors(),
		securities: knowledge.Securities(),
		concepts:   knowledge.Concepts(),
	}

	byKind := map[domain.IntentKind]rule{
		domain.IntentGreeting:  {matches: matchRe(greetingRe)},
		domain.IntentHowAreYou: {matches: matchRe(howAreYouRe)},
		domain.IntentGoodbye:   {matches: matchRe(goodbyeRe)},
		domain.IntentThanks:    {matches: matchRe(thanksRe)},
		domain.IntentJoke:      {matches: matchRe(jokeRe)},
		domain.IntentAnalyzeSentiment: {
			matches: matchRe(analyzeRe),
			extract: (*Classifier).extractStatement,
		},
		domain.IntentMarketSentiment: {
			matches: func(_ *Classifier, m *message) bool {
				return opinionRe.MatchString(m.lower) && marketWordRe.MatchString(m.lower)
			},
			extract: (*Classifier).extractSectors,
		},
		domain.IntentStockSentiment: {
			matches: (*Classifier).matchStockSentiment,
			extract: (*Classifier).extractStocks,
		},
		domain.IntentProductInformation: {
			matches: matchRe(productWordRe),
			extract: func(_ *Classifier, m *message, e *domain.Entities) {
				e.ProductType = firstGroup(m.lower, productGroups)
				e.IsRecommendation = recommendRe.MatchString(m.lower)
			},
		},
		domain.IntentInvestmentRecommendation: {
			matches: matchRe(adviceRe),
			extract: func(_ *Classifier, m *message, e *domain.Entities) {
				e.InvestmentType = firstGroup(m.lower, investmentGroups)
				e.RiskPreference = firstGroup(m.lower, riskGroups)
			},
		},
		domain.IntentEducational: {
			matches: matchRe(educationRe),
			extract: (*Classifier).extractEducation,
		},
	}
	for _, kind := range RuleOrder {
		r := byKind[kind]
		r.kind = kind
		c.rules = append(c.rules, r)
	}
	return c
}

// Classify returns the intent of text. It never fails: text that matches no
// rule is a general query without entities.
func (c *Classifier) Classify(text string) domain.Intent {
	m := newMessage(text)
	in := domain.Intent{
		Kind:           domain.IntentGeneralQuery,
		IsQuestion:     m.isQuestion,
		QuerySentiment: querySentiment(m.lower),
	}
	for _, r := range c.rules {
		if !r.matches(c, m) {
			continue
		}
		in.Kind = r.kind
		if r.extract != nil {
			r.extract(c, m, &in.Entities)
		}
		break
	}
	return in
}

func newMessage(text string) *message {
	raw := strings.TrimSpace(text)
	lower := strings.ToLower(raw)
	tokens := make(map[string]bool)
	for _, tok := range tokenRe.FindAllString(lower, -1) {
		tokens[tok] = true
	}
	return &message{
		raw:        raw,
		lower:      lower,
		tokens:     tokens,
		isQuestion: questionRe.MatchString(lower),
	}
}

func querySentiment(lower string) domain.Sentiment {
	switch {
	case positiveQueryRe.MatchString(lower):
		return domain.SentimentPositive
	case negativeQueryRe.MatchString(lower):
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func matchRe(re *regexp.Regexp) func(*Classifier, *message) bool {
	return func(_ *Classifier, m *message) bool {
		return re.MatchString(m.lower)
	}
}

// matchStockSentiment accepts opinion wording about stocks, and also a
// question that names a catalog ticker next to a stock word ("Should I buy
// AAPL stock?").
func (c *Classifier) matchStockSentiment(m *message) bool {
	if !stockWordRe.MatchString(m.lower) {
		return false
	}
	if opinionRe.MatchString(m.lower) {
		return true
	}
	return m.isQuestion && len(c.symbolsIn(m)) > 0
}

func (c *Classifier) extractStatement(m *message, e *domain.Entities) {
	match := statementRe.FindStringSubmatch(m.raw)
	if len(match) < 2 {
		return
	}
	e.Statement = strings.TrimSpace(match[1])
}

func (c *Classifier) extractSectors(m *message, e *domain.Entities) {
	for _, s := range c.sectors {
		if strings.Contains(m.lower, s) {
			e.Sectors = append(e.Sectors, s)
		}
	}
}

func (c *Classifier) extractStocks(m *message, e *domain.Entities) {
	e.Stocks = c.symbolsIn(m)
}

func (c *Classifier) symbolsIn(m *message) []string {
	var out []string
	for _, sec := range c.securities {
		if m.tokens[strings.ToLower(sec.Symbol)] {
			out = append(out, sec.Symbol)
		}
	}
	return out
}

func (c *Classifier) extractEducation(m *message, e *domain.Entities) {
	normalized := strings.NewReplacer("/", " ", "-", " ").Replace(m.lower)
	for _, concept := range c.concepts {
		if strings.Contains(normalized, strings.ReplaceAll(concept.Key, "_", " ")) {
			e.Concept = concept.Key
			return
		}
	}
	e.Topic = firstGroup(m.lower, topicGroups)
}
