// Package textkit holds the lexical helpers the scoping pipeline is built
// on: tokenization with stop-word filtering, and keyword-based technology
// classification. Everything here is pure and total.
package textkit

import "strings"

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "have": true, "with": true, "this": true, "that": true,
	"from": true, "they": true, "will": true, "would": true, "there": true,
	"their": true, "what": true, "about": true, "which": true, "when": true,
	"need": true, "want": true, "some": true, "into": true, "more": true,
	"your": true, "them": true, "then": true, "than": true, "also": true,
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Normalize lowercases the input, splits it on non-alphanumeric runs, and
// drops tokens of length <= 2 as well as stop words.
func Normalize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isAlphanumeric(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 2 {
			continue
		}
		if stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Tokens splits on whitespace without filtering. Used where the vagueness
// policy counts raw words rather than meaningful tokens.
func Tokens(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the raw whitespace-separated word count.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ContainsAny reports whether the lowercased text contains any of the
// given keywords as a substring.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
