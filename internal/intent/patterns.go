package intent

import (
	"regexp"
	"strings"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/knowledge"
)

var (
	questionRe = regexp.MustCompile(`\?$|^(what|how|why|when|where|who|can|could|would|will|should|is|are|do|does)\b`)

	positiveQueryRe = regexp.MustCompile(`\b(happy|excited|pleased|good|great)\b`)
	negativeQueryRe = regexp.MustCompile(`\b(sad|unhappy|disappointed|frustrated|bad|awful)\b`)

	greetingRe  = regexp.MustCompile(`^(hi|hello|hey|greetings|good morning|good afternoon|good evening)( there)?[.!]?$`)
	howAreYouRe = regexp.MustCompile(`^(how are you( doing)?( today)?|how('s| is)? it going|how have you been|what('s| is)? up)[?.!]*$`)
	goodbyeRe   = regexp.MustCompile(`^(bye|goodbye|farewell|see you|see you later|talk to you later)[.!]?$`)
	thanksRe    = regexp.MustCompile(`^(thanks|thank you|thanks a lot|thank you so much|appreciate it|thx)[.!]?$`)
	jokeRe      = regexp.MustCompile(`\bjoke\b|\bfunny\b|\bmake me laugh\b`)

	analyzeRe   = regexp.MustCompile(`analy[sz]e (this|the|my|following) (statement|sentence|text|news)`)
	statementRe = regexp.MustCompile(`(?i)analy[sz]e (?:this|the|my|following).*?[:\-] *(.*)`)

	opinionRe     = regexp.MustCompile(`\b(sentiment|feeling|opinion|mood)\b`)
	marketWordRe  = regexp.MustCompile(`\b(market|markets|sector|sectors|industry|industries)\b`)
	stockWordRe   = regexp.MustCompile(`\b(stock|stocks|ticker|company|symbol)\b`)
	productWordRe = regexp.MustCompile(`\b(fd|fds|fixed deposits?|deposits|deposit rates|insurance|policy|policies|plan|plans|protection|mutual funds?|etfs?|ulips?)\b`)
	recommendRe   = regexp.MustCompile(`\b(recommend|suggest|best|top|good|should i|which one|better|compare)\b`)
	adviceRe      = regexp.MustCompile(`\b(recommend|recommendations?|suggest|suggestions?|buy|invest|investments?|good stock|pick|picks|advice|strategy|strategies|approach)\b`)
	educationRe   = regexp.MustCompile(`\b(how to|get into|start|begin|learn about|explain|what is|what are)\b`)

	tokenRe = regexp.MustCompile(`[a-z0-9]+`)
)

type keywordGroup struct {
	key      string
	keywords []string
}

// Keyword groups are scanned in slice order and the first group with a hit
// wins. Tests pin these priorities. Keywords match only at the start of a
// word, unlike a raw substring search: "mf" does not fire inside
// "comfortable".
var (
	productGroups = []keywordGroup{
		{domain.ProductFixedDeposit, []string{"fd", "fixed deposit", "deposits", "deposit rates"}},
		{domain.ProductInsurance, []string{"insurance", "policy", "protection", "coverage"}},
		{domain.ProductMutualFund, []string{"mutual fund", "mf", "fund"}},
		{domain.ProductETF, []string{"etf", "exchange traded fund", "exchange-traded fund"}},
		{domain.ProductULIP, []string{"ulip", "unit linked", "unit-linked"}},
	}

	investmentGroups = []keywordGroup{
		{domain.InvestmentStock, []string{"stock", "share", "equity"}},
		{domain.InvestmentMutualFund, []string{"mutual fund", "fund"}},
		{domain.InvestmentETF, []string{"etf", "exchange traded"}},
		{domain.InvestmentBond, []string{"bond", "fixed income"}},
		{domain.InvestmentRealEstate, []string{"real estate", "property", "reit"}},
		{domain.InvestmentCrypto, []string{"crypto", "bitcoin", "ethereum", "digital currency"}},
	}

	riskGroups = []keywordGroup{
		{domain.RiskConservative, []string{"safe", "low risk", "conservative", "secure"}},
		{domain.RiskModerate, []string{"balanced", "moderate", "medium risk"}},
		{domain.RiskAggressive, []string{"aggressive", "high risk", "growth"}},
	}

	topicGroups = []keywordGroup{
		{knowledge.TopicInvestingBasics, []string{"investing basics", "start investing", "begin investing"}},
		{knowledge.TopicStockMarket, []string{"stock market", "how stocks work", "buying stocks"}},
		{knowledge.TopicRetirementPlanning, []string{"retirement", "retirement planning", "retirement account"}},
		{knowledge.TopicPersonalFinance, []string{"personal finance", "budgeting", "saving money"}},
	}
)

// firstGroup returns the key of the first group with a keyword in s.
func firstGroup(s string, groups []keywordGroup) string {
	for _, g := range groups {
		for _, kw := range g.keywords {
			if hasWordPrefix(s, kw) {
				return g.key
			}
		}
	}
	return ""
}

// hasWordPrefix reports whether kw occurs in s starting at a word boundary.
// "fund" matches "funds" but "mf" does not match "comfortable".
func hasWordPrefix(s, kw string) bool {
	for i := 0; i <= len(s)-len(kw); {
		j := strings.Index(s[i:], kw)
		if j < 0 {
			return false
		}
		at := i + j
		if at == 0 || !isWordByte(s[at-1]) {
			return true
		}
		i = at + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}
