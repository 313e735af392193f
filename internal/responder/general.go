package responder

import (
	"fmt"
	"strings"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/knowledge"
	"finance-assistant/internal/memory"
)

const resourceChance = 0.3

// financialTerms are scanned in order; the first one contained in the
// message wins.
var financialTerms = []string{
	"stocks", "bonds", "invest", "market", "finance", "money", "saving",
	"retirement", "budget", "debt", "credit", "loan", "mortgage", "bank",
	"interest", "dividend", "portfolio", "fund",
}

// termTopics maps a financial term to the memory topic it belongs to.
var termTopics = map[string]string{
	"stocks":     memory.TopicStocks,
	"invest":     memory.TopicInvesting,
	"portfolio":  memory.TopicInvesting,
	"retirement": memory.TopicRetirement,
	"budget":     memory.TopicBudgeting,
}

func (g *Generator) generalQuery(in domain.Intent, raw string, snap Snapshot) string {
	lower := strings.ToLower(raw)
	for _, term := range financialTerms {
		if !strings.Contains(lower, term) {
			continue
		}
		replies := newTopicReplies(term)
		if snap.discussed(termTopics[term]) {
			replies = continuingReplies(term)
		}
		reply := pick(g.rand, replies)
		if g.rand.Float64() < resourceChance {
			if recs := knowledge.Recommendations(raw); len(recs) > 0 {
				reply += fmt.Sprintf(" By the way, many people interested in %s also find '%s' helpful to understand.", term, recs[0].Title)
			}
		}
		return reply
	}

	switch {
	case in.IsQuestion:
		return "That's an interesting question! While I specialize in financial topics, I'd be happy to chat about this. To help focus our conversation, would you like to know how this relates to personal finance or investments?"
	case len(strings.Fields(raw)) <= 3:
		return "I see! I'm here to chat about financial topics like investing, saving, budgeting, or market trends. What aspect of personal finance or investing would you like to explore today?"
	default:
		return "Thanks for sharing that. I'm primarily focused on financial topics, so I'd be happy to discuss anything related to personal finance, investing, or markets. Is there a specific financial topic you'd like to explore today?"
	}
}

func continuingReplies(term string) []string {
	return []string{
		fmt.Sprintf("To continue our discussion about %s, what specific aspect interests you most?", term),
		fmt.Sprintf("I'd be happy to explore %s further. Is there a particular element you'd like to focus on?", term),
		fmt.Sprintf("Let's dive deeper into %s. What questions do you have about this topic?", term),
	}
}

func newTopicReplies(term string) []string {
	return []string{
		fmt.Sprintf("That's an interesting question about %s. To provide the most helpful information, could you share what you're looking to achieve with %s?", term, term),
		fmt.Sprintf("When it comes to %s, there are several approaches to consider. What's your main goal regarding this topic?", term),
		fmt.Sprintf("I'd be happy to discuss %s. To better assist you, could you share your experience level with this topic?", term),
	}
}

func educational(e domain.Entities) string {
	if c, ok := knowledge.LookupConcept(e.Concept); ok {
		return c.Detailed + "\n\nWould you like to know more about how this concept applies to specific financial situations or learn about related concepts?"
	}
	if t, ok := knowledge.LookupTopic(e.Topic); ok {
		return fmt.Sprintf("%s: %s\n\nWould you like to explore any specific aspect of this topic in more detail?", t.Title, t.Content)
	}
	return "I'm happy to help with financial education! I can explain concepts like compound interest, diversification, or P/E ratios. " +
		"I can also provide information about investing basics, the stock market, personal finance, or retirement planning. " +
		"What specific financial topic or concept would you like to learn about?"
}
