package knowledge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"finance-assistant/internal/domain"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
	require.NotPanics(t, MustValidate)
}

func TestSectors_CatalogOrder(t *testing.T) {
	require.Equal(t, []string{"tech", "healthcare", "finance", "energy", "consumer"}, Sectors())
}

func TestLookupSecurity(t *testing.T) {
	sec, ok := LookupSecurity("aapl")
	require.True(t, ok)
	require.Equal(t, "Apple Inc.", sec.Name)
	require.Equal(t, SectorTech, sec.Sector)

	_, ok = LookupSecurity("TSLA")
	require.False(t, ok)
}

func TestSecuritiesIn(t *testing.T) {
	secs := SecuritiesIn(SectorFinance)
	require.Len(t, secs, 5)
	require.Equal(t, "JPM", secs[0].Symbol)
	for _, s := range secs {
		require.Equal(t, SectorFinance, s.Sector)
	}
	require.Nil(t, SecuritiesIn("crypto"))
}

func TestSecurities_ReturnsCopies(t *testing.T) {
	all := Securities()
	require.Len(t, all, 25)
	all[0].Name = "mutated"

	sec, _ := LookupSecurity(all[0].Symbol)
	require.Equal(t, "Apple Inc.", sec.Name)
}

func TestLookupConceptAndTopic(t *testing.T) {
	c, ok := LookupConcept("compound_interest")
	require.True(t, ok)
	require.Contains(t, c.Detailed, "interest on interest")

	topic, ok := LookupTopic(TopicRetirementPlanning)
	require.True(t, ok)
	require.Equal(t, "Retirement Planning", topic.Title)
	require.Len(t, topic.Resources, 3)

	_, ok = LookupTopic("retirement")
	require.False(t, ok)
}

func TestProductForType(t *testing.T) {
	cases := map[string]string{
		domain.ProductMutualFund:   "mutual_funds",
		domain.ProductETF:          "etfs",
		domain.ProductULIP:         "ulip",
		domain.ProductFixedDeposit: "fixed_deposits",
		domain.ProductInsurance:    "term_insurance",
	}
	for productType, key := range cases {
		p, ok := ProductForType(productType)
		require.True(t, ok, productType)
		require.Equal(t, key, p.Key)
	}

	_, ok := ProductForType("annuity")
	require.False(t, ok)
}

func TestStrategiesForRisk(t *testing.T) {
	names := func(ss []Strategy) []string {
		var out []string
		for _, s := range ss {
			out = append(out, s.Key)
		}
		return out
	}
	require.Equal(t, []string{"growth_investing"}, names(StrategiesForRisk(domain.RiskAggressive)))
	require.Equal(t, []string{"dividend_investing"}, names(StrategiesForRisk(domain.RiskConservative)))
	require.Equal(t, []string{"value_investing", "dividend_investing", "index_investing"}, names(StrategiesForRisk(domain.RiskModerate)))
	require.Nil(t, StrategiesForRisk("reckless"))
}

func TestRecommendations(t *testing.T) {
	recs := Recommendations("How do I plan my retirement?")
	require.Len(t, recs, 2)
	require.Equal(t, TopicPersonalFinance, recs[0].Key)
	require.Equal(t, TopicRetirementPlanning, recs[1].Key)

	recs = Recommendations("tell me about stocks")
	require.Equal(t, TopicStockMarket, recs[1].Key)

	recs = Recommendations("nothing relevant")
	require.Len(t, recs, 2)
	require.Equal(t, TopicInvestingBasics, recs[1].Key)
}

func TestLookupPersona(t *testing.T) {
	p, ok := LookupPersona("retiree")
	require.True(t, ok)
	require.Equal(t, "practical", p.Depth)

	_, ok = LookupPersona("wizard")
	require.False(t, ok)
}
