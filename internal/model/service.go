package model

// Complexity tiers used by the catalog and the WBS generator.
const (
	ComplexityLow    = "Low"
	ComplexityMedium = "Medium"
	ComplexityHigh   = "High"
)

// Service provenance: fetched from the live catalog or the compiled-in fallback.
const (
	SourceCatalog = "catalog"
	SourceLocal   = "local"
)

// DefaultEstimatedHours is substituted when a catalog entry carries no estimate.
const DefaultEstimatedHours = 40

// Service is one catalog entry. Immutable once fetched; owned by the
// catalog snapshot for the duration of one matching operation.
type Service struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Category       string       `json:"category,omitempty"`
	Description    string       `json:"description,omitempty"`
	Keywords       []string     `json:"keywords"`
	EstimatedHours int          `json:"estimatedHours"`
	Complexity     string       `json:"complexity"`
	Source         string       `json:"source"`
	SKU            string       `json:"sku,omitempty"`
	ServiceType    string       `json:"serviceType,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	Subservices    []SubService `json:"subservices,omitempty"`
	PhaseName      string       `json:"phaseName,omitempty"`
}

// SubService is a child unit of a Service, independently estimable.
type SubService struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Description            string  `json:"description,omitempty"`
	EstimatedHours         float64 `json:"estimatedHours"`
	ResourceType           string  `json:"resourceType,omitempty"`
	Quantity               int     `json:"quantity"`
	MinimumQuantity        int     `json:"minimumQuantity"`
	Position               int     `json:"position"`
	State                  string  `json:"state,omitempty"`
	Active                 bool    `json:"active"`
	OutOfScope             string  `json:"outOfScope,omitempty"`
	CustomerResponsibility string  `json:"customerResponsibility,omitempty"`
}

// ServiceMatch is one scored catalog entry. Created fresh per matching
// call; never persisted.
type ServiceMatch struct {
	Service         Service  `json:"service"`
	Confidence      int      `json:"confidence"`
	MatchedKeywords []string `json:"matchedKeywords"`
}
