package model

import "time"

// Resource types are billing-rate categories.
const (
	ResourceTechnical         = "Technical"
	ResourceProjectManagement = "Project Management"
	ResourceSpecialist        = "Specialist"
)

// HourlyRates maps a resource type to its billing rate. Unknown resource
// types bill at the Technical rate.
var HourlyRates = map[string]float64{
	ResourceTechnical:         150,
	ResourceProjectManagement: 175,
	ResourceSpecialist:        200,
}

// RateFor returns the hourly rate for a resource type, defaulting to the
// Technical rate for unrecognized values.
func RateFor(resourceType string) float64 {
	if rate, ok := HourlyRates[resourceType]; ok {
		return rate
	}
	return HourlyRates[ResourceTechnical]
}

// WBSDeliverable is the smallest costed unit in a plan.
type WBSDeliverable struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	EstimatedHours float64  `json:"estimatedHours"`
	Dependencies   []string `json:"dependencies"`
	RiskLevel      string   `json:"riskLevel"`
}

// WBSSubService groups deliverables under a service.
type WBSSubService struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	EstimatedHours float64          `json:"estimatedHours"`
	Deliverables   []WBSDeliverable `json:"deliverables"`
	ResourceType   string           `json:"resourceType"`
	Complexity     string           `json:"complexity"`
}

// WBSService is one service placed into a phase, with its cost computed
// from hours and resource rates.
type WBSService struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	EstimatedHours float64         `json:"estimatedHours"`
	TotalCost      float64         `json:"totalCost"`
	Subservices    []WBSSubService `json:"subservices"`
	ResourceType   string          `json:"resourceType"`
	Complexity     string          `json:"complexity"`
	RiskLevel      string          `json:"riskLevel"`
}

// WBSPhase is a top-level grouping of services within a plan.
type WBSPhase struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	StartWeek     int          `json:"startWeek"`
	DurationWeeks int          `json:"durationWeeks"`
	Services      []WBSService `json:"services"`
	TotalHours    float64      `json:"totalHours"`
	TotalCost     float64      `json:"totalCost"`
	RiskLevel     string       `json:"riskLevel"`
	Dependencies  []string     `json:"dependencies"`
	Milestones    []string     `json:"milestones"`
}

// WBSRiskSummary is the whole-project risk rollup.
type WBSRiskSummary struct {
	Overall string   `json:"overall"`
	Factors []string `json:"factors"`
}

// WorkBreakdownStructure is the terminal artifact of the scoping pipeline.
// Immutable after creation; consumers overlay transient edit state keyed
// by node id without mutating the document itself.
type WorkBreakdownStructure struct {
	ID          string         `json:"id"`
	ProjectName string         `json:"projectName"`
	Phases      []WBSPhase     `json:"phases"`
	TotalHours  float64        `json:"totalHours"`
	TotalCost   float64        `json:"totalCost"`
	TotalWeeks  int            `json:"totalWeeks"`
	TeamSize    int            `json:"teamSize"`
	Risk        WBSRiskSummary `json:"risk"`
	Assumptions []string       `json:"assumptions"`
	CreatedAt   time.Time      `json:"createdAt"`
}
