package responder

import (
	"fmt"
	"strings"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/knowledge"
)

type depositOption struct {
	tenure, rate, benefits, idealFor string
}

var depositOptions = []depositOption{
	{"Short-term (6-12 months)", "4.5-5.5%", "Liquidity, guaranteed returns", "Emergency funds, short-term goals"},
	{"Medium-term (1-3 years)", "5.5-6.5%", "Better interest rates than short-term", "Planned expenses in 1-3 years"},
	{"Long-term (3-5+ years)", "6.5-7.5%", "Higher interest, possible tax benefits", "Long-term wealth building, retirement planning"},
}

type coverOption struct {
	kind, features, idealFor, benefits string
}

var coverOptions = []coverOption{
	{"Term Insurance", "Pure life coverage, no maturity benefits", "Primary income earners with dependents", "Maximum coverage at minimum premium"},
	{"Health Insurance", "Coverage for medical expenses", "Everyone, regardless of age", "Financial protection against healthcare costs"},
	{"ULIP", "Insurance + Investment", "Those seeking both protection and investment", "Tax benefits, market-linked returns"},
}

var stockPicks = map[string][]string{
	domain.RiskConservative: {"PG", "JNJ", "KO"},
	domain.RiskModerate:     {"MSFT", "AAPL", "JPM"},
	domain.RiskAggressive:   {"NVDA", "AMZN", "GOOGL"},
}

var fundPicks = map[string][]string{
	domain.RiskConservative: {"Bond funds", "Dividend funds", "Value funds"},
	domain.RiskModerate:     {"Balanced funds", "Index funds", "Blue-chip funds"},
	domain.RiskAggressive:   {"Growth funds", "Sector-specific funds", "Small-cap funds"},
}

type allocation struct {
	split, focus, products string
}

var allocations = map[string]allocation{
	domain.RiskConservative: {"60-70% bonds, 30-40% stocks", "Income generation and capital preservation", "Bond funds, dividend stocks, CDs, fixed deposits"},
	domain.RiskModerate:     {"40-60% bonds, 40-60% stocks", "Balance between growth and income", "Index funds, blue-chip stocks, balanced mutual funds"},
	domain.RiskAggressive:   {"20-30% bonds, 70-80% stocks", "Long-term growth and capital appreciation", "Growth stocks, sector-specific ETFs, emerging markets"},
}

var fundKinds = map[string]string{
	domain.InvestmentMutualFund: "mutual funds",
	domain.InvestmentETF:        "ETFs",
}

func (g *Generator) productInformation(e domain.Entities) string {
	switch e.ProductType {
	case domain.ProductFixedDeposit:
		if !e.IsRecommendation {
			return "Fixed Deposits (FDs) are secure investments offered by banks where you deposit money for a fixed period at a guaranteed interest rate. " +
				"They're low-risk and provide predictable returns, making them popular for conservative investors. " +
				"FDs come in various tenures from a few months to several years, with longer terms generally offering higher interest rates. " +
				"Most banks allow premature withdrawals with a small penalty. Are you considering investing in FDs or would you like to know about specific FD options?"
		}
		opt := pick(g.rand, depositOptions)
		return fmt.Sprintf("Based on general market conditions, %s fixed deposits might be worth considering. "+
			"They typically offer rates around %s and are particularly good for %s. "+
			"Key benefits include %s.\n\n"+
			"Remember that actual rates vary by bank and economic conditions. What's your timeline for this investment?",
			opt.tenure, opt.rate, opt.idealFor, opt.benefits)

	case domain.ProductInsurance:
		if !e.IsRecommendation {
			return "Insurance policies provide financial protection against various risks. Common types include term insurance (pure protection), " +
				"health insurance (medical coverage), ULIPs (insurance + investment), endowment plans (insurance + savings), " +
				"and general insurance for assets like homes and vehicles.\n\n" +
				"Each type serves different needs and has unique features. What specific aspect of insurance would you like to explore further?"
		}
		opt := pick(g.rand, coverOptions)
		return fmt.Sprintf("Many people in similar situations consider %s options. "+
			"These provide %s and are ideal for %s. "+
			"Key benefits include %s.\n\n"+
			"Insurance needs are highly personal and depend on your specific situation. Would you like to know more about different insurance types or discuss specific protection needs?",
			opt.kind, opt.features, opt.idealFor, opt.benefits)

	case domain.ProductMutualFund, domain.ProductETF, domain.ProductULIP:
		p, ok := knowledge.ProductForType(e.ProductType)
		if !ok {
			return fmt.Sprintf("I'd be happy to provide information about %sS. "+
				"Could you tell me more specifically what you'd like to know about them? For example, their benefits, risks, or how they work?",
				strings.ToUpper(strings.ReplaceAll(e.ProductType, "_", " ")))
		}
		reply := fmt.Sprintf("%s. Key benefits include %s. Important considerations include %s. This product is typically suitable for %s.",
			p.Description,
			strings.Join(p.Benefits[:min(3, len(p.Benefits))], ", "),
			strings.Join(p.Considerations[:min(2, len(p.Considerations))], ", "),
			p.IdealFor)
		if e.IsRecommendation {
			reply += "\n\nWould you like me to suggest some specific strategies for investing in this product based on your goals?"
		}
		return reply
	}

	return "I can provide information on various financial products including fixed deposits, insurance policies, mutual funds, ETFs, and ULIPs. " +
		"Each serves different financial needs and goals. Which specific product would you like to learn more about?"
}

func investmentRecommendation(e domain.Entities) string {
	risk := e.RiskPreference
	if _, ok := allocations[risk]; !ok {
		risk = domain.RiskModerate
	}

	switch e.InvestmentType {
	case domain.InvestmentStock:
		var picks []string
		for _, symbol := range stockPicks[risk] {
			if sec, ok := knowledge.LookupSecurity(symbol); ok {
				picks = append(picks, fmt.Sprintf("%s (%s)", sec.Symbol, sec.Name))
			}
		}
		return fmt.Sprintf("While I can't provide personalized investment advice, investors with a %s risk profile often consider stocks like %s. "+
			"These suggestions are based on general market information, not personalized advice.\n\n"+
			"Always research thoroughly and consider consulting with a financial advisor before investing. "+
			"Would you like to know more about any of these companies or learn about investment strategies for stocks?",
			risk, strings.Join(picks, ", "))

	case domain.InvestmentMutualFund, domain.InvestmentETF:
		return fmt.Sprintf("For %s investors interested in %s, these types are commonly considered: %s. "+
			"Each type has different risk-return characteristics that align with a %s approach.\n\n"+
			"Would you like more specific information about any of these fund types and their typical performance characteristics?",
			risk, fundKinds[e.InvestmentType], strings.Join(fundPicks[risk], ", "), risk)
	}

	a := allocations[risk]
	var b strings.Builder
	fmt.Fprintf(&b, "For investors with a %s risk profile, a common approach includes:\n\n", risk)
	fmt.Fprintf(&b, "- Asset allocation: Approximately %s\n", a.split)
	fmt.Fprintf(&b, "- Focus: %s\n", a.focus)
	fmt.Fprintf(&b, "- Financial products to consider: %s\n", a.products)
	if strategies := knowledge.StrategiesForRisk(risk); len(strategies) > 0 {
		names := make([]string, 0, len(strategies))
		for _, s := range strategies {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "- Strategies that fit this profile: %s\n", strings.Join(names, ", "))
	}
	b.WriteString("\nRemember that investment decisions should be based on your specific financial goals, time horizon, and personal circumstances. ")
	b.WriteString("What's your primary investment goal and timeline?")
	return b.String()
}
