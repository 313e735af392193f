package responder

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/knowledge"
)

func TestNewSignal_Scripted(t *testing.T) {
	s := NewSignal(&scriptRand{floats: []float64{0.1, 0.5}, ints: []int{10, 0, 2}})
	require.Equal(t, domain.SentimentPositive, s.Label)
	require.InDelta(t, 0.80, s.Score, 1e-9)
	require.Equal(t, TrendUp, s.Trend)
	require.Equal(t, 13, s.NewsCount)
	require.Equal(t, []string{"expanded market share"}, s.Reasons)

	s = NewSignal(&scriptRand{floats: []float64{0.9, 0}, ints: []int{0, 1, 4, 0}})
	require.Equal(t, domain.SentimentNegative, s.Label)
	require.InDelta(t, 0.15, s.Score, 1e-9)
	require.Equal(t, TrendDown, s.Trend)
	require.Equal(t, 3, s.NewsCount)
	require.Equal(t, []string{"sector weakness", "missed earnings expectations"}, s.Reasons)

	s = NewSignal(&scriptRand{floats: []float64{0.5, 1}})
	require.Equal(t, domain.SentimentNeutral, s.Label)
	require.Equal(t, TrendSteady, s.Trend)
}

func TestNewSignal_Bounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := map[domain.Sentiment]int{}
	for range 500 {
		s := NewSignal(r)
		seen[s.Label]++

		bounds := scoreRanges[s.Label]
		require.GreaterOrEqual(t, s.Score, bounds[0])
		require.LessOrEqual(t, s.Score, bounds[1])
		require.InDelta(t, s.Score, round2(s.Score), 1e-12)
		require.Equal(t, trendFor(s.Label), s.Trend)
		require.GreaterOrEqual(t, s.NewsCount, 3)
		require.LessOrEqual(t, s.NewsCount, 25)

		require.NotEmpty(t, s.Reasons)
		require.LessOrEqual(t, len(s.Reasons), 2)
		for _, reason := range s.Reasons {
			require.Contains(t, reasonPools[s.Label], reason)
		}
		require.Len(t, slices.Compact(slices.Clone(s.Reasons)), len(s.Reasons))
	}
	require.Len(t, seen, 3)
	require.Greater(t, seen[domain.SentimentPositive], seen[domain.SentimentNegative])
}

func TestNewSecuritySignal(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	require.Equal(t, "Microsoft Corporation", NewSecuritySignal(r, "MSFT").Name)
	require.Equal(t, "ZZZZ", NewSecuritySignal(r, "ZZZZ").Name)
}

func TestNewMarketSignals(t *testing.T) {
	signals := NewMarketSignals(rand.New(rand.NewPCG(5, 6)))
	require.Len(t, signals, len(knowledge.Sectors()))
	for i, s := range signals {
		require.Equal(t, knowledge.Sectors()[i], s.Sector)
		require.Len(t, s.TopPerformers, 2)
		require.NotEqual(t, s.TopPerformers[0], s.TopPerformers[1])
		for _, symbol := range s.TopPerformers {
			sec, ok := knowledge.LookupSecurity(symbol)
			require.True(t, ok)
			require.Equal(t, s.Sector, sec.Sector)
		}
	}
}

func TestSample_WithoutReplacement(t *testing.T) {
	items := []string{"a", "b", "c"}
	got := sample(&scriptRand{ints: []int{1, 1}}, items, 2)
	require.Equal(t, []string{"b", "c"}, got)
	require.Equal(t, []string{"a", "b", "c"}, items)
	require.Len(t, sample(&scriptRand{}, items, 5), 3)
}
