package analysis

import (
	"strings"

	"scopeworks/internal/model"
	"scopeworks/internal/textkit"
)

// Industry labels produced by classifyIndustry.
const (
	IndustryHealthcare = "Healthcare"
	IndustryFinancial  = "Financial Services"
	IndustryEducation  = "Education"
	IndustryGeneral    = "General"
)

var legacyKeywords = []string{"legacy", "outdated", "migration", "migrate", "end of life", "eol"}
var integrationKeywords = []string{"integration", "integrate", "api", "sync", "interface with"}

// Fixed strategy list, returned with every assessment regardless of the
// factors present.
var mitigationStrategies = []string{
	"Conduct thorough discovery and assessment before implementation",
	"Establish clear communication channels and escalation paths",
	"Implement phased rollout with validation at each stage",
	"Maintain rollback procedures for all major changes",
}

// AssessProjectRisks derives the discrete risk taxonomy from keyword
// presence and project complexity.
func AssessProjectRisks(text, complexity, industry string) model.RiskAssessment {
	lower := strings.ToLower(text)
	factors := []model.RiskFactor{}

	if textkit.ContainsAny(text, legacyKeywords) {
		factors = append(factors, model.RiskFactor{
			Category:    "Technical",
			Description: "Legacy system dependencies and migration complexity",
			Impact:      model.RiskHigh,
			Probability: model.RiskMedium,
			Mitigation:  "Plan a phased migration with rollback points",
		})
	}

	if textkit.ContainsAny(text, integrationKeywords) {
		factors = append(factors, model.RiskFactor{
			Category:    "Integration",
			Description: "Third-party integration points",
			Impact:      model.RiskMedium,
			Probability: model.RiskMedium,
			Mitigation:  "Validate integrations early in a test environment",
		})
	}

	if industry == IndustryHealthcare || strings.Contains(lower, "hipaa") {
		factors = append(factors, model.RiskFactor{
			Category:    "Compliance",
			Description: "HIPAA compliance requirements",
			Impact:      model.RiskHigh,
			Probability: model.RiskHigh,
			Mitigation:  "Engage compliance review before implementation begins",
		})
	}

	if industry == IndustryFinancial || strings.Contains(lower, "sox") {
		factors = append(factors, model.RiskFactor{
			Category:    "Compliance",
			Description: "SOX regulatory controls",
			Impact:      model.RiskHigh,
			Probability: model.RiskHigh,
			Mitigation:  "Document control changes and retain audit evidence",
		})
	}

	if complexity == model.ComplexityHigh {
		factors = append(factors, model.RiskFactor{
			Category:    "Timeline",
			Description: "Aggressive timeline relative to project complexity",
			Impact:      model.RiskMedium,
			Probability: model.RiskHigh,
			Mitigation:  "Build schedule buffers into high-complexity phases",
		})
	}

	assessment := model.RiskAssessment{
		OverallRisk:          calculateOverallRisk(complexity, factors),
		RiskFactors:          factors,
		MitigationStrategies: mitigationStrategies,
		BudgetRisk:           complexity,
		TimelineRisk:         model.RiskMedium,
		TechnicalRisk:        model.RiskLow,
	}

	for _, f := range factors {
		if f.Category == "Timeline" {
			assessment.TimelineRisk = model.RiskHigh
		}
		if f.Category == "Technical" {
			assessment.TechnicalRisk = model.RiskHigh
		}
	}

	return assessment
}

func calculateOverallRisk(complexity string, factors []model.RiskFactor) string {
	highImpact := 0
	highProbability := 0
	for _, f := range factors {
		if f.Impact == model.RiskHigh {
			highImpact++
		}
		if f.Probability == model.RiskHigh {
			highProbability++
		}
	}

	switch {
	case complexity == model.ComplexityHigh && (highImpact >= 2 || highProbability >= 3):
		return model.RiskCritical
	case complexity == model.ComplexityHigh || highImpact >= 1:
		return model.RiskHigh
	case complexity == model.ComplexityMedium || len(factors) >= 2:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
