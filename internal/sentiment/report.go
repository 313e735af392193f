package sentiment

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"finance-assistant/internal/domain"
)

var labelDescriptions = map[domain.Sentiment]string{
	domain.SentimentPositive: "optimistic, which suggests potential upside",
	domain.SentimentNeutral:  "balanced, without strong positive or negative indicators",
	domain.SentimentNegative: "cautious or concerned, which suggests potential challenges",
}

// Report analyzes statement and renders the result for the user.
func (a *Analyzer) Report(ctx context.Context, statement string) string {
	return FormatReport(statement, a.Analyze(ctx, statement))
}

// FormatReport renders a result. The statement is always quoted verbatim.
func FormatReport(statement string, res domain.SentimentResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I analyzed the financial sentiment of: \"%s\"\n\n", statement)
	fmt.Fprintf(&b, "Financial sentiment: **%s** (%.1f%% confidence)\n\n",
		cases.Title(language.English).String(string(res.Label)), res.Score*100)
	fmt.Fprintf(&b, "This statement appears %s from a financial perspective. ", labelDescriptions[res.Label])
	fmt.Fprintf(&b, "Financial markets and investors would likely interpret this as %s.\n", res.Label)

	if len(res.Evidence) > 0 {
		b.WriteString("\nKey phrases that influenced this analysis:\n- ")
		b.WriteString(strings.Join(res.Evidence, "\n- "))
		b.WriteString("\n")
	}

	b.WriteString("\nWould you like me to explain what other aspects of the statement might contribute to this sentiment analysis?")
	return b.String()
}
