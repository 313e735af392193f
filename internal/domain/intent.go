package domain

// IntentKind selects the response template family for a message.
type IntentKind string

const (
	IntentGreeting                 IntentKind = "greeting"
	IntentHowAreYou                IntentKind = "how_are_you"
	IntentGoodbye                  IntentKind = "goodbye"
	IntentThanks                   IntentKind = "thanks"
	IntentJoke                     IntentKind = "joke"
	IntentAnalyzeSentiment         IntentKind = "analyze_sentiment"
	IntentMarketSentiment          IntentKind = "market_sentiment"
	IntentStockSentiment           IntentKind = "stock_sentiment"
	IntentProductInformation       IntentKind = "product_information"
	IntentInvestmentRecommendation IntentKind = "investment_recommendation"
	IntentEducational              IntentKind = "educational"
	IntentGeneralQuery             IntentKind = "general_query"
)

// Risk tiers shared by entity extraction and the user profile.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// Product types recognised by the classifier.
const (
	ProductFixedDeposit = "fixed_deposit"
	ProductInsurance    = "insurance"
	ProductMutualFund   = "mutual_fund"
	ProductETF          = "etf"
	ProductULIP         = "ulip"
)

// Investment types recognised by the classifier.
const (
	InvestmentStock      = "stock"
	InvestmentMutualFund = "mutual_fund"
	InvestmentETF        = "etf"
	InvestmentBond       = "bond"
	InvestmentRealEstate = "real_estate"
	InvestmentCrypto     = "crypto"
)

// Entities holds the values extracted from a message. Every field is
// optional; the zero value means the entity was not found.
type Entities struct {
	Statement        string   `json:"statement,omitempty"`
	Sectors          []string `json:"sectors,omitempty"`
	Stocks           []string `json:"stocks,omitempty"`
	ProductType      string   `json:"productType,omitempty"`
	IsRecommendation bool     `json:"isRecommendation,omitempty"`
	InvestmentType   string   `json:"investmentType,omitempty"`
	RiskPreference   string   `json:"riskPreference,omitempty"`
	Concept          string   `json:"concept,omitempty"`
	Topic            string   `json:"topic,omitempty"`
}

// Intent is the classified purpose of a message.
type Intent struct {
	Kind       IntentKind `json:"kind"`
	Entities   Entities   `json:"entities"`
	IsQuestion bool       `json:"isQuestion"`
	// QuerySentiment is the affect of the message itself, independent of any
	// financial sentiment analysis.
	QuerySentiment Sentiment `json:"querySentiment"`
}
