package model

// Tier labels shared by the scope analyzer and risk assessor.
const (
	CompletenessComplete   = "Complete"
	CompletenessPartial    = "Partial"
	CompletenessIncomplete = "Incomplete"

	ClarityClear    = "Clear"
	ClarityModerate = "Moderate"
	ClarityUnclear  = "Unclear"

	FeasibilityHigh   = "High"
	FeasibilityMedium = "Medium"
	FeasibilityLow    = "Low"
)

// Risk tiers. Critical only appears as an overall rating.
const (
	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// ScopeReview grades a free-text project description along the
// completeness/clarity/feasibility axes.
type ScopeReview struct {
	Completeness    string   `json:"completeness"`
	Clarity         string   `json:"clarity"`
	Feasibility     string   `json:"feasibility"`
	MissingElements []string `json:"missingElements"`
	ScopeGaps       []string `json:"scopeGaps"`
	Score           int      `json:"score"`
	Summary         string   `json:"summary"`
}

// RiskFactor is one discrete risk with its impact/probability/mitigation triple.
type RiskFactor struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Probability string `json:"probability"`
	Mitigation  string `json:"mitigation"`
}

// RiskAssessment aggregates the factor list with an overall tier and
// three secondary tiers.
type RiskAssessment struct {
	OverallRisk          string       `json:"overallRisk"`
	RiskFactors          []RiskFactor `json:"riskFactors"`
	MitigationStrategies []string     `json:"mitigationStrategies"`
	BudgetRisk           string       `json:"budgetRisk"`
	TimelineRisk         string       `json:"timelineRisk"`
	TechnicalRisk        string       `json:"technicalRisk"`
}

// Recommendation is a suggested action derived from a detected technology area.
type Recommendation struct {
	Area        string `json:"area"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// ProjectAnalysis is the ephemeral aggregate produced from input text alone.
type ProjectAnalysis struct {
	Complexity        string           `json:"complexity"`
	Industry          string           `json:"industry"`
	EstimatedTimeline string           `json:"estimatedTimeline"`
	KeyRequirements   []string         `json:"keyRequirements"`
	ScopeReview       ScopeReview      `json:"scopeReview"`
	RiskAssessment    RiskAssessment   `json:"riskAssessment"`
	Recommendations   []Recommendation `json:"recommendations"`
}
