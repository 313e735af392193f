package sentiment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finance-assistant/internal/domain"
)

type fakeScorer struct {
	scores []LabelScore
	err    error
	block  bool
	calls  int
}

func (f *fakeScorer) Score(ctx context.Context, _ string) ([]LabelScore, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.scores, f.err
}

func TestAnalyzer_LocalByDefault(t *testing.T) {
	a := NewAnalyzer()
	require.Equal(t, SourceLocal, a.Provider())

	res := a.Analyze(context.Background(), "Strong growth this quarter")
	require.Equal(t, domain.SentimentPositive, res.Label)
	require.Equal(t, SourceLocal, res.Source)
}

func TestAnalyzer_UsesHighestExternalLabel(t *testing.T) {
	s := &fakeScorer{scores: []LabelScore{
		{Label: "positive", Score: 0.1},
		{Label: "Negative", Score: 0.85},
		{Label: "neutral", Score: 0.05},
	}}
	a := NewAnalyzer(WithScorer("finbert", s))
	require.Equal(t, "finbert", a.Provider())

	res := a.Analyze(context.Background(), "Strong growth this quarter")
	require.Equal(t, domain.SentimentNegative, res.Label)
	require.InDelta(t, 0.85, res.Score, 1e-9)
	require.Equal(t, "finbert", res.Source)
	require.Empty(t, res.Evidence)
}

func TestAnalyzer_FallsBackOnFailures(t *testing.T) {
	cases := map[string]*fakeScorer{
		"error":         {err: errors.New("connection refused")},
		"empty":         {scores: []LabelScore{}},
		"unknown label": {scores: []LabelScore{{Label: "LABEL_0", Score: 0.9}}},
		"bad score":     {scores: []LabelScore{{Label: "positive", Score: 7}}},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			a := NewAnalyzer(WithScorer("finbert", s))
			res := a.Analyze(context.Background(), "Strong growth this quarter")
			require.Equal(t, SourceLocal, res.Source)
			require.Equal(t, domain.SentimentPositive, res.Label)
			require.InDelta(t, 0.70, res.Score, 1e-9)
			require.Equal(t, 1, s.calls)
		})
	}
}

func TestAnalyzer_TimeoutFallsBack(t *testing.T) {
	s := &fakeScorer{block: true}
	a := NewAnalyzer(WithScorer("finbert", s), WithTimeout(10*time.Millisecond))

	start := time.Now()
	res := a.Analyze(context.Background(), "debt problem")
	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, SourceLocal, res.Source)
	require.Equal(t, domain.SentimentNegative, res.Label)
}

func TestAnalyzer_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	s := &fakeScorer{err: errors.New("503")}
	a := NewAnalyzer(WithScorer("finbert", s), WithBreaker(2, time.Minute))

	for i := 0; i < 5; i++ {
		res := a.Analyze(context.Background(), "growth")
		require.Equal(t, SourceLocal, res.Source)
	}
	require.Equal(t, 2, s.calls)
}

func TestAnalyzer_RateLimitFallsBack(t *testing.T) {
	s := &fakeScorer{scores: []LabelScore{{Label: "neutral", Score: 0.9}}}
	a := NewAnalyzer(WithScorer("finbert", s), WithRateLimit(0.001, 1))

	first := a.Analyze(context.Background(), "growth")
	second := a.Analyze(context.Background(), "growth")
	require.Equal(t, "finbert", first.Source)
	require.Equal(t, SourceLocal, second.Source)
	require.Equal(t, 1, s.calls)
}

func TestAnalyzer_WithJitter(t *testing.T) {
	a := NewAnalyzer(WithJitter(func() float64 { return 1 }))
	res := a.Analyze(context.Background(), "nothing to see")
	require.InDelta(t, 0.6, res.Score, 1e-9)
}

func TestReport_Positive(t *testing.T) {
	out := NewAnalyzer().Report(context.Background(), "Strong growth this quarter")
	require.True(t, strings.HasPrefix(out, `I analyzed the financial sentiment of: "Strong growth this quarter"`))
	require.Contains(t, out, "Financial sentiment: **Positive** (70.0% confidence)")
	require.Contains(t, out, "optimistic, which suggests potential upside")
	require.Contains(t, out, "Key phrases that influenced this analysis:\n- Strong growth this\n- Strong growth this quarter")
}

func TestReport_NeutralHasNoEvidence(t *testing.T) {
	out := FormatReport("The meeting is on Tuesday", domain.SentimentResult{Label: domain.SentimentNeutral, Score: 0.512})
	require.Contains(t, out, "**Neutral** (51.2% confidence)")
	require.Contains(t, out, "balanced, without strong positive or negative indicators")
	require.NotContains(t, out, "Key phrases")
}

func TestReport_QuotesStatementVerbatim(t *testing.T) {
	statement := `Revenue "beat" estimates by €5m`
	out := FormatReport(statement, domain.SentimentResult{Label: domain.SentimentNegative, Score: 0.6})
	require.Contains(t, out, `"`+statement+`"`)
	require.Contains(t, out, "**Negative**")
}
