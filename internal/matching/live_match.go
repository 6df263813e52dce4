package matching

import (
	"sort"
	"strings"

	"scopeworks/internal/analysis"
	"scopeworks/internal/model"
	"scopeworks/internal/textkit"
)

// liveTechKeywords is the fixed cross-check list: a keyword scores only
// when it appears in both the input and the service's own fields.
var liveTechKeywords = []string{
	"firewall", "network", "server", "cloud", "backup", "security",
	"migration", "microsoft", "vmware", "azure", "aws", "office 365",
	"email", "wireless", "storage",
}

// LiveCatalogMatcher scores services fetched from the live scoping API.
// Weights differ from CatalogTextMatcher and the inclusion threshold is
// strictly greater than 20; raw scores are not capped before ranking,
// only the displayed confidence is.
type LiveCatalogMatcher struct{}

func NewLiveCatalogMatcher() *LiveCatalogMatcher {
	return &LiveCatalogMatcher{}
}

func (m *LiveCatalogMatcher) Match(text string, catalog []model.Service) []model.ServiceMatch {
	input := strings.ToLower(strings.TrimSpace(text))
	inputWords := wordSet(input)
	inputComplexity := analysis.ClassifyComplexity(text, textkit.Classify(text))
	industry := analysis.ClassifyIndustry(text)

	type scored struct {
		match model.ServiceMatch
		raw   int
	}
	var results []scored

	for _, svc := range catalog {
		score, keywords := scoreLiveMatch(input, inputWords, inputComplexity, industry, svc)
		if score <= 20 {
			continue
		}

		confidence := score
		if confidence > 100 {
			confidence = 100
		}
		results = append(results, scored{
			match: model.ServiceMatch{Service: svc, Confidence: confidence, MatchedKeywords: keywords},
			raw:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].raw > results[j].raw
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	matches := make([]model.ServiceMatch, len(results))
	for i, r := range results {
		matches[i] = r.match
	}
	return matches
}

func scoreLiveMatch(input string, inputWords map[string]bool, inputComplexity, industry string, svc model.Service) (int, []string) {
	score := 0
	matched := newKeywordSet()

	name := strings.ToLower(svc.Name)
	if name != "" && strings.Contains(input, name) {
		score += 40
		matched.add("name")
	}

	if svc.ServiceType != "" && strings.Contains(input, strings.ToLower(svc.ServiceType)) {
		score += 30
		matched.add("service-type")
	}

	for _, word := range strings.Fields(strings.ToLower(svc.Description)) {
		if len(word) > 3 && inputWords[word] {
			score += 10
		}
	}

	for _, tag := range svc.Tags {
		if strings.Contains(input, strings.ToLower(tag)) {
			score += 15
			matched.add(tag)
		}
	}

	serviceText := strings.ToLower(strings.Join([]string{
		svc.Name, svc.Description, svc.ServiceType, strings.Join(svc.Tags, " "),
	}, " "))
	for _, kw := range liveTechKeywords {
		if strings.Contains(input, kw) && strings.Contains(serviceText, kw) {
			score += 25
			matched.add(kw)
		}
	}

	if svc.Complexity != "" && svc.Complexity == inputComplexity {
		score += 20
		matched.add("complexity")
	}

	if industry != analysis.IndustryGeneral && svc.Category != "" {
		category := strings.ToLower(svc.Category)
		ind := strings.ToLower(industry)
		if strings.Contains(category, ind) || strings.Contains(ind, category) {
			score += 15
			matched.add("industry")
		}
	}

	return score, matched.list()
}

func wordSet(input string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(input) {
		set[w] = true
	}
	return set
}
