package matching

import (
	"sort"
	"strings"

	"scopeworks/internal/model"
)

// minTextScore is the raw-score floor applied before capping.
const minTextScore = 20

// CatalogTextMatcher is the plain-text catalog search strategy. Scores
// accumulate additively across name, SKU, keyword, description, category,
// and phase checks; confidence is the raw score capped at 100.
type CatalogTextMatcher struct{}

func NewCatalogTextMatcher() *CatalogTextMatcher {
	return &CatalogTextMatcher{}
}

// Match returns matches with raw score >= 20, confidence descending,
// capped to the top 8. Ties keep catalog order.
func (m *CatalogTextMatcher) Match(text string, catalog []model.Service) []model.ServiceMatch {
	input := strings.ToLower(strings.TrimSpace(text))
	tokens := inputTokens(text)

	matches := []model.ServiceMatch{}
	for _, svc := range catalog {
		score, keywords := scoreTextMatch(input, tokens, svc)
		if score < minTextScore {
			continue
		}

		confidence := score
		if confidence > 100 {
			confidence = 100
		}
		matches = append(matches, model.ServiceMatch{
			Service:         svc,
			Confidence:      confidence,
			MatchedKeywords: keywords,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}

func scoreTextMatch(input string, tokens []string, svc model.Service) (int, []string) {
	score := 0
	matched := newKeywordSet()

	name := strings.ToLower(svc.Name)
	if name != "" && strings.Contains(input, name) {
		score += 100
		matched.add("exact-name")
	}

	for _, token := range tokens {
		if strings.Contains(name, token) {
			score += 50
		}
	}

	if svc.SKU != "" {
		sku := strings.ToLower(svc.SKU)
		for _, token := range tokens {
			if strings.Contains(sku, token) {
				score += 40
				matched.add("sku-match")
				break
			}
		}
	}

	for _, token := range tokens {
		for _, kw := range svc.Keywords {
			if strings.Contains(strings.ToLower(kw), token) {
				score += 30
				matched.add(kw)
			}
		}
	}

	if desc := strings.ToLower(svc.Description); desc != "" {
		for _, token := range tokens {
			if strings.Contains(desc, token) {
				score += 20
			}
		}
	}

	if category := strings.ToLower(svc.Category); category != "" {
		hit := false
		for _, token := range tokens {
			if strings.Contains(category, token) {
				score += 25
				hit = true
			}
		}
		if hit {
			matched.add("category")
		}
	}

	if phase := strings.ToLower(svc.PhaseName); phase != "" {
		for _, token := range tokens {
			if strings.Contains(phase, token) {
				score += 25
				matched.add("phase-name")
				break
			}
		}
	}

	return score, matched.list()
}
