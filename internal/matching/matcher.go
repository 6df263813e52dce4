// Package matching scores free-text project descriptions against a
// service catalog. Two independently tuned strategies exist behind the
// Matcher interface: CatalogTextMatcher for plain-text catalog search and
// LiveCatalogMatcher for catalogs fetched from the live scoping API. Their
// weightings differ on purpose; they are not to be unified.
package matching

import (
	"strings"

	"scopeworks/internal/model"
)

// MaxResults caps every result list.
const MaxResults = 8

// Matcher scores a catalog against free text and returns ranked matches.
type Matcher interface {
	Match(text string, catalog []model.Service) []model.ServiceMatch
}

// inputTokens lowercases and splits the input, keeping tokens longer than
// two characters.
func inputTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// keywordSet accumulates matched-keyword provenance without duplicates,
// preserving first-seen order.
type keywordSet struct {
	seen  map[string]bool
	order []string
}

func newKeywordSet() *keywordSet {
	return &keywordSet{seen: map[string]bool{}}
}

func (s *keywordSet) add(kw string) {
	if s.seen[kw] {
		return
	}
	s.seen[kw] = true
	s.order = append(s.order, kw)
}

func (s *keywordSet) list() []string {
	if s.order == nil {
		return []string{}
	}
	return s.order
}
