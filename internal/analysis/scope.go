// Package analysis grades free-text project descriptions: scope
// completeness, discrete risk factors, and the combined project analysis.
// All functions are pure and never fail; thin input just scores lower.
package analysis

import (
	"scopeworks/internal/model"
	"scopeworks/internal/textkit"
)

var specificsKeywords = []string{
	"server", "network", "cloud", "database", "email", "firewall", "backup",
	"migration", "infrastructure", "application", "wifi", "wireless",
	"active directory", "office 365", "storage", "virtualization", "phone",
}

var quantifierKeywords = []string{
	"users", "seats", "devices", "locations", "offices", "sites",
	"endpoints", "workstations", "entire", "multiple", "all of",
}

var timelineKeywords = []string{
	"urgent", "asap", "immediately", "deadline", "timeline", "week",
	"month", "quarter", "year", "soon", "by end", "q1", "q2", "q3", "q4",
}

var budgetKeywords = []string{
	"budget", "cost", "price", "$", "spend", "afford", "quote", "investment",
}

func hasDigits(text string) bool {
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// HasSpecifics reports whether the text names a concrete system.
func HasSpecifics(text string) bool {
	return textkit.ContainsAny(text, specificsKeywords)
}

// HasQuantifiers reports whether the text carries numbers or scale words.
func HasQuantifiers(text string) bool {
	return hasDigits(text) || textkit.ContainsAny(text, quantifierKeywords)
}

// HasTimeline reports whether the text mentions urgency or dates.
func HasTimeline(text string) bool {
	return textkit.ContainsAny(text, timelineKeywords)
}

// HasBudget reports whether the text mentions cost.
func HasBudget(text string) bool {
	return textkit.ContainsAny(text, budgetKeywords)
}

// AnalyzeScopeCompleteness scores the text along the four completeness
// axes and returns the full review. The summary is chosen by score band,
// not re-derived from the tiers; the same tier combination can read
// differently at different scores.
func AnalyzeScopeCompleteness(text string, requirements []string) model.ScopeReview {
	specifics := HasSpecifics(text)
	quantifiers := HasQuantifiers(text)
	timeline := HasTimeline(text)
	budget := HasBudget(text)

	score := 30
	review := model.ScopeReview{
		Completeness:    model.CompletenessIncomplete,
		Clarity:         model.ClarityUnclear,
		Feasibility:     model.FeasibilityLow,
		MissingElements: []string{},
		ScopeGaps:       []string{},
	}

	switch {
	case specifics && quantifiers && timeline:
		score += 40
		review.Completeness = model.CompletenessComplete
	case specifics && (quantifiers || timeline):
		score += 25
		review.Completeness = model.CompletenessPartial
	}

	switch {
	case len(text) > 100 && specifics:
		score += 20
		review.Clarity = model.ClarityClear
	case len(text) > 50:
		score += 10
		review.Clarity = model.ClarityModerate
	}

	switch {
	case len(requirements) > 0 && specifics:
		score += 10
		review.Feasibility = model.FeasibilityHigh
	case specifics:
		review.Feasibility = model.FeasibilityMedium
	}

	if !timeline {
		review.MissingElements = append(review.MissingElements, "Timeline or deadline")
	}
	if !budget {
		review.MissingElements = append(review.MissingElements, "Budget expectations")
	}
	if !quantifiers {
		review.MissingElements = append(review.MissingElements, "Scale or quantity details")
	}

	if !specifics {
		review.ScopeGaps = append(review.ScopeGaps, "No specific systems identified")
	}
	if review.Completeness == model.CompletenessIncomplete {
		review.ScopeGaps = append(review.ScopeGaps, "Scope boundaries undefined")
	}

	review.Score = score

	switch {
	case score >= 80:
		review.Summary = "Well-defined scope with clear requirements"
	case score >= 60:
		review.Summary = "Good scope definition with some details to confirm"
	case score >= 40:
		review.Summary = "Scope needs clarification in several areas"
	default:
		review.Summary = "Scope is too vague to estimate reliably"
	}

	return review
}
