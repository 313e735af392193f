package knowledge

import (
	"strings"

	"finance-assistant/internal/domain"
)

// Product describes a financial product offered in the market.
type Product struct {
	Key            string
	Category       string
	Description    string
	Benefits       []string
	Considerations []string
	IdealFor       string
}

// Strategy is a well-known investment approach.
type Strategy struct {
	Key         string
	Name        string
	Description string
	KeyMetrics  []string
	Proponents  []string
	IdealFor    string
	RiskLevel   string
}

// Persona is a coarse user-sophistication profile.
type Persona struct {
	Key            string
	KnowledgeLevel string
	Terminology    string
	Depth          string
	Focus          []string
}

// DefaultPersona is assigned to every new conversation.
const DefaultPersona = "beginner"

var products = []Product{
	{
		Key:            "term_insurance",
		Category:       "Insurance",
		Description:    "Pure life insurance coverage for a specific period",
		Benefits:       []string{"High coverage at affordable premiums", "Tax benefits on premiums", "Financial security for dependents"},
		Considerations: []string{"No maturity benefits", "Coverage ends with term", "Premiums increase with age"},
		IdealFor:       "Primary breadwinners with dependents",
	},
	{
		Key:            "ulip",
		Category:       "Insurance + Investment",
		Description:    "Unit Linked Insurance Plan combining insurance and investment",
		Benefits:       []string{"Life coverage", "Market-linked returns", "Tax benefits", "Fund switching options"},
		Considerations: []string{"Higher charges than pure investments", "Lock-in period", "Market risk"},
		IdealFor:       "Those looking for insurance with investment potential",
	},
	{
		Key:            "mutual_funds",
		Category:       "Investment",
		Description:    "Professionally managed investment funds pooling money from many investors",
		Benefits:       []string{"Professional management", "Diversification", "Liquidity", "Variety of options"},
		Considerations: []string{"Expense ratios", "Market risk", "No guaranteed returns"},
		IdealFor:       "Most investors seeking market exposure with professional management",
	},
	{
		Key:            "fixed_deposits",
		Category:       "Investment",
		Description:    "Time deposits with banks offering fixed interest rates",
		Benefits:       []string{"Guaranteed returns", "Safety of principal", "Predictable income", "Various tenure options"},
		Considerations: []string{"Lower returns than market investments", "Interest rate risk", "Premature withdrawal penalties"},
		IdealFor:       "Conservative investors seeking capital preservation",
	},
	{
		Key:            "etfs",
		Category:       "Investment",
		Description:    "Exchange-traded funds that track indices, sectors, commodities, or other assets",
		Benefits:       []string{"Low expense ratios", "Trading flexibility", "Tax efficiency", "Diversification"},
		Considerations: []string{"Brokerage fees", "Market risk", "Tracking errors"},
		IdealFor:       "Both beginner and sophisticated investors seeking specific market exposure",
	},
}

// productKeys maps classifier product types to product records.
var productKeys = map[string]string{
	domain.ProductMutualFund:   "mutual_funds",
	domain.ProductETF:          "etfs",
	domain.ProductULIP:         "ulip",
	domain.ProductFixedDeposit: "fixed_deposits",
	domain.ProductInsurance:    "term_insurance",
}

var strategies = []Strategy{
	{
		Key:         "value_investing",
		Name:        "Value Investing",
		Description: "Buying stocks that appear underpriced relative to their intrinsic value",
		KeyMetrics:  []string{"P/E Ratio", "P/B Ratio", "Dividend Yield"},
		Proponents:  []string{"Warren Buffett", "Benjamin Graham"},
		IdealFor:    "Patient investors focused on long-term growth",
		RiskLevel:   "Moderate",
	},
	{
		Key:         "growth_investing",
		Name:        "Growth Investing",
		Description: "Focusing on companies with strong growth potential, often in expanding sectors",
		KeyMetrics:  []string{"Revenue Growth Rate", "Earnings Growth Rate", "Market Share Trends"},
		Proponents:  []string{"Peter Lynch", "Philip Fisher"},
		IdealFor:    "Investors seeking capital appreciation over dividends",
		RiskLevel:   "High",
	},
	{
		Key:         "dividend_investing",
		Name:        "Dividend Investing",
		Description: "Investing in stable companies that regularly distribute earnings to shareholders",
		KeyMetrics:  []string{"Dividend Yield", "Dividend Growth Rate", "Payout Ratio"},
		Proponents:  []string{"John Bogle", "Jeremy Siegel"},
		IdealFor:    "Income-focused investors, particularly retirees",
		RiskLevel:   "Low to Moderate",
	},
	{
		Key:         "index_investing",
		Name:        "Index Investing",
		Description: "Buying funds that track market indices to match market returns",
		KeyMetrics:  []string{"Expense Ratio", "Tracking Error", "Fund Size"},
		Proponents:  []string{"John Bogle", "Burton Malkiel"},
		IdealFor:    "Passive investors seeking market returns with minimal research",
		RiskLevel:   "Varies with index (generally Moderate)",
	},
}

var personas = []Persona{
	{Key: "beginner", KnowledgeLevel: "basic", Terminology: "simplified", Depth: "introductory", Focus: []string{"education", "fundamentals", "risk management"}},
	{Key: "intermediate", KnowledgeLevel: "moderate", Terminology: "standard", Depth: "balanced", Focus: []string{"strategies", "portfolio management", "market analysis"}},
	{Key: "advanced", KnowledgeLevel: "sophisticated", Terminology: "technical", Depth: "detailed", Focus: []string{"advanced strategies", "technical analysis", "macroeconomic impacts"}},
	{Key: "retiree", KnowledgeLevel: "varies", Terminology: "standard", Depth: "practical", Focus: []string{"income generation", "wealth preservation", "estate planning"}},
	{Key: "student", KnowledgeLevel: "developing", Terminology: "educational", Depth: "foundational", Focus: []string{"basics", "learning resources", "gradual introduction"}},
}

// LookupProduct finds a product by record key.
func LookupProduct(key string) (Product, bool) {
	for _, p := range products {
		if p.Key == key {
			return p, true
		}
	}
	return Product{}, false
}

// ProductForType resolves a classifier product type to its record.
func ProductForType(productType string) (Product, bool) {
	key, ok := productKeys[productType]
	if !ok {
		return Product{}, false
	}
	return LookupProduct(key)
}

// Strategies returns the investment strategies in definition order.
func Strategies() []Strategy {
	out := make([]Strategy, len(strategies))
	copy(out, strategies)
	return out
}

// LookupStrategy finds a strategy by key.
func LookupStrategy(key string) (Strategy, bool) {
	for _, s := range strategies {
		if s.Key == key {
			return s, true
		}
	}
	return Strategy{}, false
}

var riskLevelWords = map[string]string{
	domain.RiskConservative: "low",
	domain.RiskModerate:     "moderate",
	domain.RiskAggressive:   "high",
}

// StrategiesForRisk returns the strategies whose risk level fits the given
// risk tier.
func StrategiesForRisk(tier string) []Strategy {
	word, ok := riskLevelWords[tier]
	if !ok {
		return nil
	}
	var out []Strategy
	for _, s := range strategies {
		if strings.Contains(strings.ToLower(s.RiskLevel), word) {
			out = append(out, s)
		}
	}
	return out
}

// LookupPersona finds a persona by key.
func LookupPersona(key string) (Persona, bool) {
	for _, p := range personas {
		if p.Key == key {
			return p, true
		}
	}
	return Persona{}, false
}
