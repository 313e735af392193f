package knowledge

// Education topic keys.
const (
	TopicInvestingBasics    = "investing_basics"
	TopicStockMarket        = "stock_market"
	TopicPersonalFinance    = "personal_finance"
	TopicRetirementPlanning = "retirement_planning"
)

// Resource is a reading suggestion attached to an education topic.
type Resource struct {
	Name string
	Type string
}

// EducationTopic is a short explainer on a broad subject.
type EducationTopic struct {
	Key       string
	Title     string
	Content   string
	Resources []Resource
}

// Concept is a glossary entry with a one-line and a longer explanation.
type Concept struct {
	Key      string
	Short    string
	Detailed string
}

var topics = []EducationTopic{
	{
		Key:     TopicInvestingBasics,
		Title:   "Investing Basics",
		Content: "Investing involves allocating resources (usually money) with the expectation of generating income or profit. The main investment types include stocks, bonds, mutual funds, ETFs, real estate, and commodities.",
		Resources: []Resource{
			{Name: "Investment Fundamentals", Type: "guide"},
			{Name: "Risk vs. Return", Type: "concept"},
			{Name: "Asset Allocation", Type: "strategy"},
		},
	},
	{
		Key:     TopicStockMarket,
		Title:   "Understanding the Stock Market",
		Content: "The stock market is where shares of publicly traded companies are bought and sold. It provides companies with capital while giving investors the opportunity to share in the profits of businesses.",
		Resources: []Resource{
			{Name: "How Stock Markets Work", Type: "guide"},
			{Name: "Bull vs. Bear Markets", Type: "concept"},
			{Name: "Market Indices Explained", Type: "concept"},
		},
	},
	{
		Key:     TopicPersonalFinance,
		Title:   "Personal Finance Management",
		Content: "Personal finance covers budgeting, saving, investing, debt management, and retirement planning. It's about making informed decisions to achieve your financial goals.",
		Resources: []Resource{
			{Name: "Budgeting Strategies", Type: "guide"},
			{Name: "Emergency Fund Planning", Type: "strategy"},
			{Name: "Debt Reduction Methods", Type: "strategy"},
		},
	},
	{
		Key:     TopicRetirementPlanning,
		Title:   "Retirement Planning",
		Content: "Retirement planning involves defining retirement income goals and the actions needed to achieve those goals. It includes identifying sources of income, estimating expenses, and implementing a savings program.",
		Resources: []Resource{
			{Name: "Retirement Accounts Explained", Type: "guide"},
			{Name: "The 4% Withdrawal Rule", Type: "concept"},
			{Name: "Social Security Benefits", Type: "guide"},
		},
	},
}

var concepts = []Concept{
	{
		Key:      "inflation",
		Short:    "The rate at which the general level of prices for goods and services rises, causing purchasing power to fall.",
		Detailed: "Inflation is the gradual increase in prices and fall in the purchasing value of money. It affects everything from your grocery bill to investment returns. Central banks like the Federal Reserve typically target a moderate inflation rate of about 2% annually. Investments need to outpace inflation to generate real returns.",
	},
	{
		Key:      "compound_interest",
		Short:    "Interest calculated on the initial principal and also on the accumulated interest over previous periods.",
		Detailed: "Compound interest is essentially 'interest on interest' and is the reason why investing early is so powerful. For example, $1,000 invested at 5% annually will be worth $1,050 after one year. The next year, you earn interest on $1,050, not just the original $1,000. Over time, this effect snowballs dramatically.",
	},
	{
		Key:      "diversification",
		Short:    "Spreading investments across different assets to reduce risk.",
		Detailed: "Diversification means not putting all your eggs in one basket. By spreading investments across various asset classes (stocks, bonds, real estate), sectors, and geographic regions, you can reduce overall portfolio risk. When one investment performs poorly, others might perform well, helping stabilize your returns.",
	},
	{
		Key:      "etf",
		Short:    "Exchange-Traded Fund, an investment fund traded on stock exchanges that holds assets like stocks, bonds, or commodities.",
		Detailed: "ETFs combine features of individual stocks (they trade on exchanges) and mutual funds (they represent a basket of securities). They typically have lower expense ratios than mutual funds and offer liquidity, tax efficiency, and exposure to specific indices, sectors, or investing strategies.",
	},
	{
		Key:      "p_e_ratio",
		Short:    "Price-to-Earnings ratio, a valuation ratio of a company's current share price compared to its per-share earnings.",
		Detailed: "The P/E ratio helps investors evaluate if a stock is overvalued or undervalued. It's calculated by dividing the market price per share by the earnings per share. A high P/E might suggest investors expect higher growth in the future, while a low P/E might indicate an undervalued stock or concerns about future performance.",
	},
	{
		Key:      "dollar_cost_averaging",
		Short:    "Investing a fixed amount at regular intervals regardless of market conditions.",
		Detailed: "Dollar-cost averaging reduces the impact of volatility by spreading purchases over time. When prices are high, your fixed investment buys fewer shares; when prices are low, it buys more. This strategy removes the pressure of trying to time the market and can be particularly effective for long-term investors.",
	},
	{
		Key:      "liquidity",
		Short:    "The ease with which an asset can be converted to cash without affecting its market price.",
		Detailed: "Liquidity refers to how quickly you can sell an investment without losing value. Cash is the most liquid asset, while real estate is relatively illiquid. Stocks of large companies traded on major exchanges are quite liquid, while stocks of small companies or those traded on over-the-counter markets may be less liquid.",
	},
	{
		Key:      "rebalancing",
		Short:    "The process of realigning the weightings of a portfolio of assets to maintain the original desired level of asset allocation.",
		Detailed: "Rebalancing involves periodically buying or selling assets to maintain your target allocation. For example, if your strategy calls for 60% stocks and 40% bonds, but stock growth has pushed the ratio to 70/30, rebalancing would involve selling some stocks and buying bonds to return to 60/40.",
	},
}

// Topics returns the education topics in definition order.
func Topics() []EducationTopic {
	out := make([]EducationTopic, len(topics))
	copy(out, topics)
	return out
}

// LookupTopic finds an education topic by key.
func LookupTopic(key string) (EducationTopic, bool) {
	for _, t := range topics {
		if t.Key == key {
			return t, true
		}
	}
	return EducationTopic{}, false
}

// Concepts returns the glossary in definition order. The order is the
// priority used when a message names more than one concept.
func Concepts() []Concept {
	out := make([]Concept, len(concepts))
	copy(out, concepts)
	return out
}

// LookupConcept finds a concept by key.
func LookupConcept(key string) (Concept, bool) {
	for _, c := range concepts {
		if c.Key == key {
			return c, true
		}
	}
	return Concept{}, false
}
