package model

// Question priorities and categories used by the clarifying-question generator.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	QuestionCategoryTechnical   = "technical"
	QuestionCategoryScale       = "scale"
	QuestionCategoryEnvironment = "environment"
	QuestionCategoryTimeline    = "timeline"
	QuestionCategoryBudget      = "budget"
	QuestionCategoryCompliance  = "compliance"
)

// Question is a single clarifying follow-up.
type Question struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// QuestionSet is the generator's structured recommendation. The
// conversation-management layer decides whether to interrupt the user;
// the generator only recommends.
type QuestionSet struct {
	NeedsQuestioning bool       `json:"needsQuestioning"`
	Reasoning        string     `json:"reasoning"`
	Questions        []Question `json:"questions"`
	Confidence       float64    `json:"confidence"`
}
