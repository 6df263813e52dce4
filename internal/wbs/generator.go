// Package wbs expands selected service matches into a costed, phased work
// breakdown structure. Generation is a pure single-pass transformation;
// every call allocates a fresh document.
package wbs

import (
	"fmt"
	"math"
	"time"

	"scopeworks/internal/model"
)

// PM overhead is always 15% of the pre-overhead total, billed at the
// Project Management rate.
const pmOverheadRatio = 0.15

const pmPhaseName = "Project Management & Coordination"

var pmMilestones = []string{"Project Kickoff", "Mid-Project Review", "Project Closure"}

var assumptions = []string{
	"Client will provide timely access to systems, staff, and facilities",
	"Work is performed during standard business hours unless noted",
	"Hardware and software licensing costs are not included in labor estimates",
}

// Generator expands matches using an injectable template table for
// well-known services and a general-case expansion for everything else.
type Generator struct {
	templates map[string]Template
	now       func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{templates: DefaultTemplates(), now: time.Now}
}

// NewGeneratorWithTemplates lets callers swap the predefined breakdown table.
func NewGeneratorWithTemplates(templates map[string]Template) *Generator {
	return &Generator{templates: templates, now: time.Now}
}

// Generate builds the full WBS for the selected matches. Matches with a
// missing service id or name are dropped silently; with nothing valid
// left a well-formed empty document is returned.
func (g *Generator) Generate(matches []model.ServiceMatch, projectName string) model.WorkBreakdownStructure {
	valid := make([]model.ServiceMatch, 0, len(matches))
	for _, m := range matches {
		if m.Service.ID == "" || m.Service.Name == "" {
			continue
		}
		valid = append(valid, m)
	}

	if len(valid) == 0 {
		return model.WorkBreakdownStructure{
			ID:          "empty-wbs",
			ProjectName: projectName,
			Phases:      []model.WBSPhase{},
			TeamSize:    1,
			Risk:        model.WBSRiskSummary{Overall: model.RiskLow, Factors: []string{}},
			Assumptions: []string{},
			CreatedAt:   g.now(),
		}
	}

	// Group expanded services under phase keys, preserving first-seen
	// order. Synthetic phase names depend on input position, so the same
	// services in a different order can name phases differently.
	var phaseOrder []string
	phaseServices := map[string][]model.WBSService{}

	for i, m := range valid {
		var node model.WBSService
		phaseKey := m.Service.PhaseName

		if tpl, ok := g.templates[m.Service.ID]; ok {
			node = cloneTemplateService(tpl.Service)
			if phaseKey == "" {
				phaseKey = tpl.PhaseName
			}
		} else {
			node = expandService(m.Service)
		}
		if phaseKey == "" {
			phaseKey = fmt.Sprintf("Phase %d: %s", i+1, m.Service.Name)
		}

		if _, seen := phaseServices[phaseKey]; !seen {
			phaseOrder = append(phaseOrder, phaseKey)
		}
		phaseServices[phaseKey] = append(phaseServices[phaseKey], node)
	}

	var phases []model.WBSPhase
	var totalHours, totalCost float64
	startWeek := 1
	for i, key := range phaseOrder {
		services := phaseServices[key]

		var phaseHours, phaseCost float64
		for _, svc := range services {
			phaseHours += svc.EstimatedHours
			phaseCost += svc.TotalCost
		}

		duration := weeks(phaseHours)
		phase := model.WBSPhase{
			ID:            fmt.Sprintf("phase-%d", i+1),
			Name:          key,
			StartWeek:     startWeek,
			DurationWeeks: duration,
			Services:      services,
			TotalHours:    phaseHours,
			TotalCost:     phaseCost,
			RiskLevel:     phaseRisk(services),
			Dependencies:  []string{},
			Milestones:    []string{},
		}
		if i > 0 {
			phase.Dependencies = []string{fmt.Sprintf("phase-%d", i)}
		}
		phases = append(phases, phase)

		totalHours += phaseHours
		totalCost += phaseCost
		startWeek += duration
	}

	// PM overhead is computed from the pre-overhead total and added to
	// the grand totals exactly once.
	pmHours := math.Round(pmOverheadRatio * totalHours)
	pmCost := pmHours * model.RateFor(model.ResourceProjectManagement)
	totalHours += pmHours
	totalCost += pmCost

	totalWeeks := weeks(totalHours)

	if len(phases) > 0 {
		phases = append([]model.WBSPhase{buildPMPhase(pmHours, pmCost, totalWeeks)}, phases...)
	}

	teamSize := int(math.Ceil(totalHours / (160 * float64(totalWeeks))))
	if teamSize < 1 {
		teamSize = 1
	}

	return model.WorkBreakdownStructure{
		ID:          fmt.Sprintf("wbs-%d", g.now().Unix()),
		ProjectName: projectName,
		Phases:      phases,
		TotalHours:  totalHours,
		TotalCost:   totalCost,
		TotalWeeks:  totalWeeks,
		TeamSize:    teamSize,
		Risk:        summarizeRisk(phases, totalHours, valid),
		Assumptions: assumptions,
		CreatedAt:   g.now(),
	}
}

// expandService is the general-case expansion for services without a
// predefined template.
func expandService(svc model.Service) model.WBSService {
	hours := float64(svc.EstimatedHours)
	if hours == 0 {
		hours = model.DefaultEstimatedHours
	}

	complexity := svc.Complexity
	if complexity == "" {
		complexity = model.ComplexityMedium
	}

	resourceType := model.ResourceTechnical
	if complexity == model.ComplexityHigh {
		resourceType = model.ResourceSpecialist
	}

	var subs []model.WBSSubService
	if len(svc.Subservices) > 0 {
		subs = convertSubservices(svc, hours, resourceType, complexity)
	} else {
		subs = syntheticSubservices(svc.ID, hours, resourceType, complexity)
	}

	// Service hours track the subservice sum so rollups stay exact even
	// when catalog subservices carry their own estimates.
	var cost, sumHours float64
	for _, sub := range subs {
		cost += sub.EstimatedHours * model.RateFor(sub.ResourceType)
		sumHours += sub.EstimatedHours
	}

	return model.WBSService{
		ID:             svc.ID,
		Name:           svc.Name,
		Description:    svc.Description,
		EstimatedHours: sumHours,
		TotalCost:      cost,
		Subservices:    subs,
		ResourceType:   resourceType,
		Complexity:     complexity,
		RiskLevel:      complexity,
	}
}

// convertSubservices maps real catalog subservices 1:1 onto WBS nodes.
// Subservices without their own estimate get an even split of the parent
// hours; each one carries a synthetic deliverable worth 20% of its hours.
func convertSubservices(svc model.Service, parentHours float64, resourceType, complexity string) []model.WBSSubService {
	split := parentHours / float64(len(svc.Subservices))

	subs := make([]model.WBSSubService, 0, len(svc.Subservices))
	for i, cs := range svc.Subservices {
		hours := cs.EstimatedHours
		if hours == 0 {
			hours = split
		}
		rt := cs.ResourceType
		if rt == "" {
			rt = resourceType
		}

		subID := cs.ID
		if subID == "" {
			subID = fmt.Sprintf("%s-sub-%d", svc.ID, i+1)
		}

		subs = append(subs, model.WBSSubService{
			ID:             subID,
			Name:           cs.Name,
			Description:    cs.Description,
			EstimatedHours: hours,
			ResourceType:   rt,
			Complexity:     complexity,
			Deliverables: []model.WBSDeliverable{{
				ID:             subID + "-del",
				Name:           cs.Name + " Deliverables",
				EstimatedHours: math.Round(0.2 * hours),
				Dependencies:   []string{},
				RiskLevel:      model.RiskMedium,
			}},
		})
	}
	return subs
}

// syntheticSubservices is the fixed 20/70/10 fallback with its
// planning -> implementation -> testing dependency chain.
func syntheticSubservices(serviceID string, hours float64, resourceType, complexity string) []model.WBSSubService {
	planningHours := math.Round(0.2 * hours)
	implHours := math.Round(0.7 * hours)
	testingHours := hours - planningHours - implHours

	planningDelID := serviceID + "-del-planning"
	implDelID := serviceID + "-del-implementation"

	implRisk := model.RiskMedium
	if complexity == model.ComplexityHigh {
		implRisk = model.RiskHigh
	}

	return []model.WBSSubService{
		{
			ID:             serviceID + "-planning",
			Name:           "Planning",
			Description:    "Requirements confirmation and implementation planning",
			EstimatedHours: planningHours,
			ResourceType:   model.ResourceProjectManagement,
			Complexity:     model.ComplexityMedium,
			Deliverables: []model.WBSDeliverable{{
				ID:             planningDelID,
				Name:           "Implementation Plan",
				EstimatedHours: planningHours,
				Dependencies:   []string{},
				RiskLevel:      model.RiskLow,
			}},
		},
		{
			ID:             serviceID + "-implementation",
			Name:           "Implementation",
			Description:    "Core implementation work",
			EstimatedHours: implHours,
			ResourceType:   resourceType,
			Complexity:     complexity,
			Deliverables: []model.WBSDeliverable{{
				ID:             implDelID,
				Name:           "Implemented Solution",
				EstimatedHours: implHours,
				Dependencies:   []string{planningDelID},
				RiskLevel:      implRisk,
			}},
		},
		{
			ID:             serviceID + "-testing",
			Name:           "Testing & Documentation",
			Description:    "Validation, knowledge transfer, and documentation",
			EstimatedHours: testingHours,
			ResourceType:   model.ResourceTechnical,
			Complexity:     model.ComplexityLow,
			Deliverables: []model.WBSDeliverable{{
				ID:             serviceID + "-del-testing",
				Name:           "Test Results & Documentation",
				EstimatedHours: testingHours,
				Dependencies:   []string{implDelID},
				RiskLevel:      model.RiskLow,
			}},
		},
	}
}

// buildPMPhase assembles the synthetic overhead phase: status reports 30%,
// risk management 20%, quality assurance 50% of the PM hours.
func buildPMPhase(pmHours, pmCost float64, totalWeeks int) model.WBSPhase {
	statusHours := math.Round(0.3 * pmHours)
	riskHours := math.Round(0.2 * pmHours)
	qaHours := pmHours - statusHours - riskHours

	sub := func(id, name string, hours float64) model.WBSSubService {
		return model.WBSSubService{
			ID:             id,
			Name:           name,
			EstimatedHours: hours,
			ResourceType:   model.ResourceProjectManagement,
			Complexity:     model.ComplexityMedium,
			Deliverables: []model.WBSDeliverable{{
				ID:             id + "-del",
				Name:           name + " Deliverables",
				EstimatedHours: hours,
				Dependencies:   []string{},
				RiskLevel:      model.RiskLow,
			}},
		}
	}

	return model.WBSPhase{
		ID:          "phase-pm",
		Name:        pmPhaseName,
		Description: "Ongoing project coordination and governance",
		StartWeek:   1,
		// The PM phase spans the whole engagement.
		DurationWeeks: totalWeeks,
		Services: []model.WBSService{{
			ID:             "project-management",
			Name:           "Project Management",
			EstimatedHours: pmHours,
			TotalCost:      pmCost,
			ResourceType:   model.ResourceProjectManagement,
			Complexity:     model.ComplexityMedium,
			RiskLevel:      model.RiskLow,
			Subservices: []model.WBSSubService{
				sub("pm-status", "Status Reports & Communication", statusHours),
				sub("pm-risk", "Risk Management", riskHours),
				sub("pm-qa", "Quality Assurance", qaHours),
			},
		}},
		TotalHours:   pmHours,
		TotalCost:    pmCost,
		RiskLevel:    model.RiskLow,
		Dependencies: []string{},
		Milestones:   pmMilestones,
	}
}

func phaseRisk(services []model.WBSService) string {
	risk := model.RiskLow
	for _, svc := range services {
		if svc.RiskLevel == model.RiskHigh {
			return model.RiskHigh
		}
		if svc.RiskLevel == model.RiskMedium {
			risk = model.RiskMedium
		}
	}
	return risk
}

// summarizeRisk rolls phase risk up to the project level. The synthetic
// PM phase is excluded from the majority rule.
func summarizeRisk(phases []model.WBSPhase, totalHours float64, matches []model.ServiceMatch) model.WBSRiskSummary {
	highCount, mediumCount, serviceCount := 0, 0, 0
	for _, p := range phases {
		if p.ID == "phase-pm" {
			continue
		}
		serviceCount++
		switch p.RiskLevel {
		case model.RiskHigh:
			highCount++
		case model.RiskMedium:
			mediumCount++
		}
	}

	overall := model.RiskLow
	switch {
	case highCount > 0:
		overall = model.RiskHigh
	case serviceCount > 0 && mediumCount*2 > serviceCount:
		overall = model.RiskMedium
	}

	factors := []string{}
	if totalHours > 200 {
		factors = append(factors, "Large project scope")
	}
	if len(phases) > 4 {
		factors = append(factors, "Multiple complex phases")
	}
	if highCount > 0 {
		factors = append(factors, "High-risk technical components")
	}
	for _, m := range matches {
		if hasKeyword(m.Service.Keywords, "migration") {
			factors = append(factors, "Data migration complexity")
			break
		}
	}

	return model.WBSRiskSummary{Overall: overall, Factors: factors}
}

func hasKeyword(keywords []string, want string) bool {
	for _, kw := range keywords {
		if kw == want {
			return true
		}
	}
	return false
}

func weeks(hours float64) int {
	w := int(math.Ceil(hours / 40))
	if w < 1 {
		return 1
	}
	return w
}
