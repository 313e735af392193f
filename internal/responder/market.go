package responder

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/knowledge"
)

const stockSuggestions = 3

func (g *Generator) marketSentiment(sectors []string) string {
	signals := NewMarketSignals(g.rand)
	title := cases.Title(language.English)

	if len(sectors) == 0 {
		return marketOverview(signals, title)
	}

	bySector := make(map[string]SectorSignal, len(signals))
	for _, s := range signals {
		bySector[s.Sector] = s
	}
	var insights []string
	for _, sector := range sectors {
		s, ok := bySector[sector]
		if !ok {
			continue
		}
		insights = append(insights, fmt.Sprintf(
			"%s sector shows %s sentiment (score: %.2f) and is trending %s. Top performers include %s.",
			title.String(sector), s.Label, s.Score, s.Trend, strings.Join(s.TopPerformers, ", ")))
	}
	if len(insights) == 0 {
		return "I don't have specific sentiment data for those sectors. I can provide information about technology, healthcare, finance, energy, and consumer sectors. Which would you like to learn about?"
	}
	return "Here's the latest sentiment analysis for your requested sectors:\n\n" +
		strings.Join(insights, " ") +
		"\n\nThis analysis is based on recent news articles, social media sentiment, and trading patterns. Would you like more specific information about any of these sectors or their top-performing stocks?"
}

func marketOverview(signals []SectorSignal, title cases.Caser) string {
	grouped := make(map[domain.Sentiment][]string)
	for _, s := range signals {
		grouped[s.Label] = append(grouped[s.Label], title.String(s.Sector))
	}
	positive := grouped[domain.SentimentPositive]
	negative := grouped[domain.SentimentNegative]

	overall := "mixed"
	switch {
	case len(positive) > len(negative):
		overall = "positive"
	case len(positive) < len(negative):
		overall = "cautious"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The overall market sentiment is currently %s. ", overall)
	for _, part := range []struct {
		label    domain.Sentiment
		phrasing string
	}{
		{domain.SentimentPositive, "showing positive sentiment"},
		{domain.SentimentNegative, "facing challenges with negative sentiment"},
		{domain.SentimentNeutral, "showing neutral sentiment"},
	} {
		names := grouped[part.label]
		if len(names) == 0 {
			continue
		}
		verb := "sector is"
		if len(names) > 1 {
			verb = "sectors are"
		}
		fmt.Fprintf(&b, "The %s %s %s. ", strings.Join(names, ", "), verb, part.phrasing)
	}
	b.WriteString("\nWould you like more specific information about any particular sector or stock?")
	return b.String()
}

func (g *Generator) stockSentiment(symbols []string) string {
	if len(symbols) == 0 {
		var suggested []string
		for _, sector := range knowledge.Sectors() {
			if secs := knowledge.SecuritiesIn(sector); len(secs) > 0 {
				suggested = append(suggested, pick(g.rand, secs).Symbol)
			}
			if len(suggested) == stockSuggestions {
				break
			}
		}
		return fmt.Sprintf("I'd be happy to analyze stock sentiment for you. Which stocks are you interested in? "+
			"Some popular stocks to analyze include %s. Just let me know which one(s) you'd like sentiment information for.",
			strings.Join(suggested, ", "))
	}

	insights := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		s := NewSecuritySignal(g.rand, symbol)
		insight := fmt.Sprintf("%s (%s) shows %s sentiment with a score of %.2f based on %d recent news articles. The stock is trending %s",
			s.Name, s.Symbol, s.Label, s.Score, s.NewsCount, s.Trend)
		if len(s.Reasons) > 0 {
			insight += ", influenced by " + strings.Join(s.Reasons, " and ")
		}
		insights = append(insights, insight+".")
	}
	return strings.Join(insights, "\n\n") +
		"\n\nWould you like more details about any of these stocks or information about other stocks?"
}
