package knowledge

import (
	"fmt"
	"strings"
)

// topicResources maps query words to the education topics worth reading.
// Order matters: matched topics are suggested in this order.
var topicResources = []struct {
	word   string
	topics []string
}{
	{"stocks", []string{TopicStockMarket, TopicInvestingBasics}},
	{"investing", []string{TopicInvestingBasics, TopicStockMarket}},
	{"retirement", []string{TopicRetirementPlanning, TopicPersonalFinance}},
	{"budget", []string{TopicPersonalFinance}},
	{"saving", []string{TopicPersonalFinance}},
	{"finance", []string{TopicPersonalFinance, TopicInvestingBasics}},
}

// Recommendations suggests up to two education topics for a query. The
// general personal-finance topic always leads, followed by topic matches and
// then general fallbacks.
func Recommendations(query string) []EducationTopic {
	query = strings.ToLower(query)

	keys := []string{TopicPersonalFinance}
	for _, tr := range topicResources {
		if strings.Contains(query, tr.word) {
			keys = append(keys, tr.topics...)
		}
	}
	keys = append(keys, TopicInvestingBasics, TopicStockMarket, TopicRetirementPlanning)

	seen := make(map[string]bool)
	var out []EducationTopic
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if t, ok := LookupTopic(k); ok {
			out = append(out, t)
		}
		if len(out) == 2 {
			break
		}
	}
	return out
}

// Validate reports the first structural problem with the tables. An error
// means the binary was built with broken reference data.
func Validate() error {
	if len(catalog) == 0 {
		return fmt.Errorf("knowledge: empty security catalog")
	}
	for _, s := range catalog {
		if len(s.securities) == 0 {
			return fmt.Errorf("knowledge: sector %q has no securities", s.key)
		}
	}
	if n := len(Securities()); n != len(bySymbol) {
		return fmt.Errorf("knowledge: duplicate symbols in catalog (%d listed, %d unique)", n, len(bySymbol))
	}
	if len(concepts) == 0 || len(topics) == 0 || len(products) == 0 {
		return fmt.Errorf("knowledge: empty reference table")
	}
	for productType, key := range productKeys {
		if _, ok := LookupProduct(key); !ok {
			return fmt.Errorf("knowledge: product type %q points at missing record %q", productType, key)
		}
	}
	if _, ok := LookupPersona(DefaultPersona); !ok {
		return fmt.Errorf("knowledge: default persona %q missing", DefaultPersona)
	}
	return nil
}

// MustValidate panics if Validate fails.
func MustValidate() {
	if err := Validate(); err != nil {
		panic(err)
	}
}
