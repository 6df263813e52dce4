package analysis

import (
	"fmt"
	"strings"

	"scopeworks/internal/model"
	"scopeworks/internal/textkit"
)

var enterpriseScaleKeywords = []string{"enterprise", "company-wide", "organization", "all offices", "every location"}

var industryKeywords = map[string][]string{
	IndustryHealthcare: {"healthcare", "hipaa", "clinic", "patient", "hospital", "medical"},
	IndustryFinancial:  {"bank", "financial", "finance", "sox", "trading", "insurance"},
	IndustryEducation:  {"school", "university", "campus", "student", "education"},
}

var areaRequirements = map[string]string{
	textkit.AreaNetworking: "Network infrastructure changes",
	textkit.AreaSecurity:   "Security hardening and policy review",
	textkit.AreaCloud:      "Cloud platform provisioning",
	textkit.AreaServer:     "Server and directory services work",
	textkit.AreaDatabase:   "Database platform changes",
	textkit.AreaEmail:      "Email platform changes",
	textkit.AreaBackup:     "Backup and recovery coverage",
}

// ClassifyIndustry maps the text to an industry label by keyword containment.
func ClassifyIndustry(text string) string {
	for _, industry := range []string{IndustryHealthcare, IndustryFinancial, IndustryEducation} {
		if textkit.ContainsAny(text, industryKeywords[industry]) {
			return industry
		}
	}
	return IndustryGeneral
}

// ClassifyComplexity derives a complexity tier from the breadth of
// technology areas touched and the presence of migration or scale signals.
func ClassifyComplexity(text string, areas []string) string {
	lower := strings.ToLower(text)
	migrationWithScale := (strings.Contains(lower, "migrat") || strings.Contains(lower, "integrat")) &&
		HasQuantifiers(text)

	switch {
	case len(areas) >= 3 || migrationWithScale:
		return model.ComplexityHigh
	case len(areas) == 2 || textkit.ContainsAny(text, enterpriseScaleKeywords):
		return model.ComplexityMedium
	default:
		return model.ComplexityLow
	}
}

func estimatedTimeline(complexity string) string {
	switch complexity {
	case model.ComplexityHigh:
		return "3-6 months"
	case model.ComplexityMedium:
		return "1-3 months"
	default:
		return "2-4 weeks"
	}
}

// AnalyzeProject builds the full ephemeral analysis for a free-text
// description: complexity, industry, timeline, requirements, scope review,
// risk assessment, and per-area recommendations.
func AnalyzeProject(text string, requirements []string) model.ProjectAnalysis {
	areas := textkit.Classify(text)
	complexity := ClassifyComplexity(text, areas)
	industry := ClassifyIndustry(text)

	keyRequirements := make([]string, 0, len(areas))
	recommendations := make([]model.Recommendation, 0, len(areas))
	for _, area := range areas {
		keyRequirements = append(keyRequirements, areaRequirements[area])
		recommendations = append(recommendations, model.Recommendation{
			Area:        area,
			Description: fmt.Sprintf("Review current %s footprint before finalizing scope", area),
			Priority:    model.PriorityMedium,
		})
	}

	return model.ProjectAnalysis{
		Complexity:        complexity,
		Industry:          industry,
		EstimatedTimeline: estimatedTimeline(complexity),
		KeyRequirements:   keyRequirements,
		ScopeReview:       AnalyzeScopeCompleteness(text, requirements),
		RiskAssessment:    AssessProjectRisks(text, complexity, industry),
		Recommendations:   recommendations,
	}
}
