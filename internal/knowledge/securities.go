// Package knowledge holds the static reference data the assistant answers
// from. All tables are built at package initialisation and never mutated;
// accessors return copies so callers cannot alter them.
package knowledge

import "strings"

// Sector keys, in catalog order.
const (
	SectorTech       = "tech"
	SectorHealthcare = "healthcare"
	SectorFinance    = "finance"
	SectorEnergy     = "energy"
	SectorConsumer   = "consumer"
)

// Security is a listed company in the catalog.
type Security struct {
	Symbol      string
	Sector      string
	Name        string
	Description string
}

type sector struct {
	key        string
	securities []Security
}

var catalog = []sector{
	{key: SectorTech, securities: []Security{
		{Symbol: "AAPL", Name: "Apple Inc.", Description: "Consumer electronics, software, and services"},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Description: "Software, cloud computing, hardware"},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Description: "Internet services, software, hardware"},
		{Symbol: "AMZN", Name: "Amazon.com Inc.", Description: "E-commerce, cloud computing, digital streaming"},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Description: "Graphics processing units, AI computing"},
	}},
	{key: SectorHealthcare, securities: []Security{
		{Symbol: "JNJ", Name: "Johnson & Johnson", Description: "Pharmaceuticals, medical devices, consumer goods"},
		{Symbol: "PFE", Name: "Pfizer Inc.", Description: "Pharmaceuticals and biotechnology"},
		{Symbol: "UNH", Name: "UnitedHealth Group", Description: "Health insurance and healthcare services"},
		{Symbol: "ABBV", Name: "AbbVie Inc.", Description: "Biopharmaceuticals"},
		{Symbol: "MRK", Name: "Merck & Co.", Description: "Pharmaceuticals and vaccines"},
	}},
	{key: SectorFinance, securities: []Security{
		{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Description: "Banking and financial services"},
		{Symbol: "BAC", Name: "Bank of America Corp.", Description: "Banking and financial services"},
		{Symbol: "WFC", Name: "Wells Fargo & Company", Description: "Banking and financial services"},
		{Symbol: "GS", Name: "Goldman Sachs Group", Description: "Investment banking and financial services"},
		{Symbol: "MS", Name: "Morgan Stanley", Description: "Investment banking and financial services"},
	}},
	{key: SectorEnergy, securities: []Security{
		{Symbol: "XOM", Name: "Exxon Mobil Corporation", Description: "Oil and gas exploration, production, refining"},
		{Symbol: "CVX", Name: "Chevron Corporation", Description: "Oil and gas exploration, production, refining"},
		{Symbol: "COP", Name: "ConocoPhillips", Description: "Oil and gas exploration and production"},
		{Symbol: "SLB", Name: "Schlumberger Limited", Description: "Oilfield services and equipment"},
		{Symbol: "EOG", Name: "EOG Resources", Description: "Oil and gas exploration and production"},
	}},
	{key: SectorConsumer, securities: []Security{
		{Symbol: "PG", Name: "Procter & Gamble", Description: "Consumer goods, personal care products"},
		{Symbol: "KO", Name: "Coca-Cola Company", Description: "Beverages"},
		{Symbol: "PEP", Name: "PepsiCo, Inc.", Description: "Beverages and snack foods"},
		{Symbol: "WMT", Name: "Walmart Inc.", Description: "Retail, wholesale, and other services"},
		{Symbol: "MCD", Name: "McDonald's Corporation", Description: "Fast food restaurants"},
	}},
}

var bySymbol = func() map[string]Security {
	m := make(map[string]Security)
	for _, s := range catalog {
		for _, sec := range s.securities {
			sec.Sector = s.key
			m[sec.Symbol] = sec
		}
	}
	return m
}()

// Sectors returns the sector keys in catalog order.
func Sectors() []string {
	keys := make([]string, 0, len(catalog))
	for _, s := range catalog {
		keys = append(keys, s.key)
	}
	return keys
}

// SecuritiesIn returns the securities of a sector in catalog order, or nil
// for an unknown sector.
func SecuritiesIn(sectorKey string) []Security {
	for _, s := range catalog {
		if s.key != sectorKey {
			continue
		}
		out := make([]Security, 0, len(s.securities))
		for _, sec := range s.securities {
			sec.Sector = s.key
			out = append(out, sec)
		}
		return out
	}
	return nil
}

// Securities returns the whole catalog, sector by sector.
func Securities() []Security {
	var out []Security
	for _, s := range catalog {
		out = append(out, SecuritiesIn(s.key)...)
	}
	return out
}

// LookupSecurity finds a security by symbol, case-insensitively.
func LookupSecurity(symbol string) (Security, bool) {
	sec, ok := bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return sec, ok
}
