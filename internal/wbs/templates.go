package wbs

import "scopeworks/internal/model"

// Template is a predefined expansion for a well-known catalog service.
// Templates are injected into the Generator so the set can be extended or
// swapped without touching the general-case expansion.
type Template struct {
	PhaseName string
	Service   model.WBSService
}

// cloneTemplateService deep-copies a template tree and prices it
// bottom-up from the hourly rates, so generated documents never alias
// template storage.
func cloneTemplateService(tpl model.WBSService) model.WBSService {
	svc := tpl
	svc.Subservices = make([]model.WBSSubService, len(tpl.Subservices))

	var cost float64
	for i, sub := range tpl.Subservices {
		copied := sub
		copied.Deliverables = make([]model.WBSDeliverable, len(sub.Deliverables))
		for j, del := range sub.Deliverables {
			d := del
			d.Dependencies = append([]string{}, del.Dependencies...)
			copied.Deliverables[j] = d
		}
		svc.Subservices[i] = copied
		cost += sub.EstimatedHours * model.RateFor(sub.ResourceType)
	}

	svc.TotalCost = cost
	return svc
}

// DefaultTemplates returns the built-in breakdown table. Hours are fixed;
// costs are recomputed bottom-up from the hourly rates at generation time.
func DefaultTemplates() map[string]Template {
	return map[string]Template{
		"network-assessment": {
			PhaseName: "Phase 1: Discovery & Assessment",
			Service: model.WBSService{
				ID:             "network-assessment",
				Name:           "Network Assessment",
				Description:    "Complete discovery and health review of the network environment",
				EstimatedHours: 40,
				ResourceType:   model.ResourceTechnical,
				Complexity:     model.ComplexityMedium,
				RiskLevel:      model.RiskMedium,
				Subservices: []model.WBSSubService{
					{
						ID:             "network-assessment-discovery",
						Name:           "Network Discovery",
						Description:    "Inventory of devices, links, and addressing",
						EstimatedHours: 16,
						ResourceType:   model.ResourceTechnical,
						Complexity:     model.ComplexityMedium,
						Deliverables: []model.WBSDeliverable{
							{ID: "network-assessment-del-1", Name: "Network Topology Map", EstimatedHours: 8, Dependencies: []string{}, RiskLevel: model.RiskLow},
							{ID: "network-assessment-del-2", Name: "Device Inventory", EstimatedHours: 8, Dependencies: []string{}, RiskLevel: model.RiskLow},
						},
					},
					{
						ID:             "network-assessment-performance",
						Name:           "Performance Analysis",
						Description:    "Utilization and bottleneck review",
						EstimatedHours: 16,
						ResourceType:   model.ResourceTechnical,
						Complexity:     model.ComplexityMedium,
						Deliverables: []model.WBSDeliverable{
							{ID: "network-assessment-del-3", Name: "Bandwidth Utilization Report", EstimatedHours: 8, Dependencies: []string{"network-assessment-del-1"}, RiskLevel: model.RiskMedium},
							{ID: "network-assessment-del-4", Name: "Bottleneck Analysis", EstimatedHours: 8, Dependencies: []string{"network-assessment-del-3"}, RiskLevel: model.RiskMedium},
						},
					},
					{
						ID:             "network-assessment-report",
						Name:           "Assessment Report",
						Description:    "Findings and remediation roadmap",
						EstimatedHours: 8,
						ResourceType:   model.ResourceProjectManagement,
						Complexity:     model.ComplexityLow,
						Deliverables: []model.WBSDeliverable{
							{ID: "network-assessment-del-5", Name: "Findings & Recommendations", EstimatedHours: 8, Dependencies: []string{"network-assessment-del-4"}, RiskLevel: model.RiskLow},
						},
					},
				},
			},
		},
		"firewall-installation": {
			PhaseName: "Phase 2: Security Implementation",
			Service: model.WBSService{
				ID:             "firewall-installation",
				Name:           "Firewall Installation",
				Description:    "Deploy and harden perimeter firewall",
				EstimatedHours: 32,
				ResourceType:   model.ResourceSpecialist,
				Complexity:     model.ComplexityHigh,
				RiskLevel:      model.RiskHigh,
				Subservices: []model.WBSSubService{
					{
						ID:             "firewall-installation-design",
						Name:           "Rule Design & Planning",
						Description:    "Policy design from traffic requirements",
						EstimatedHours: 8,
						ResourceType:   model.ResourceSpecialist,
						Complexity:     model.ComplexityHigh,
						Deliverables: []model.WBSDeliverable{
							{ID: "firewall-installation-del-1", Name: "Firewall Policy Document", EstimatedHours: 8, Dependencies: []string{}, RiskLevel: model.RiskMedium},
						},
					},
					{
						ID:             "firewall-installation-deploy",
						Name:           "Hardware Deployment",
						Description:    "Rack, cable, and base configuration",
						EstimatedHours: 16,
						ResourceType:   model.ResourceSpecialist,
						Complexity:     model.ComplexityHigh,
						Deliverables: []model.WBSDeliverable{
							{ID: "firewall-installation-del-2", Name: "Configured Firewall Pair", EstimatedHours: 16, Dependencies: []string{"firewall-installation-del-1"}, RiskLevel: model.RiskHigh},
						},
					},
					{
						ID:             "firewall-installation-cutover",
						Name:           "Cutover & Validation",
						Description:    "Production cutover with rollback window",
						EstimatedHours: 8,
						ResourceType:   model.ResourceTechnical,
						Complexity:     model.ComplexityMedium,
						Deliverables: []model.WBSDeliverable{
							{ID: "firewall-installation-del-3", Name: "Cutover Runbook & Validation Results", EstimatedHours: 8, Dependencies: []string{"firewall-installation-del-2"}, RiskLevel: model.RiskMedium},
						},
					},
				},
			},
		},
		"active-directory": {
			PhaseName: "Phase 3: Directory Services",
			Service: model.WBSService{
				ID:             "active-directory",
				Name:           "Active Directory Implementation",
				Description:    "Domain services design, deployment, and migration",
				EstimatedHours: 48,
				ResourceType:   model.ResourceSpecialist,
				Complexity:     model.ComplexityHigh,
				RiskLevel:      model.RiskHigh,
				Subservices: []model.WBSSubService{
					{
						ID:             "active-directory-design",
						Name:           "Directory Design",
						Description:    "Forest, domain, and OU structure",
						EstimatedHours: 12,
						ResourceType:   model.ResourceSpecialist,
						Complexity:     model.ComplexityHigh,
						Deliverables: []model.WBSDeliverable{
							{ID: "active-directory-del-1", Name: "Directory Design Document", EstimatedHours: 12, Dependencies: []string{}, RiskLevel: model.RiskMedium},
						},
					},
					{
						ID:             "active-directory-deploy",
						Name:           "Domain Controller Deployment",
						Description:    "DC builds, replication, DNS integration",
						EstimatedHours: 24,
						ResourceType:   model.ResourceSpecialist,
						Complexity:     model.ComplexityHigh,
						Deliverables: []model.WBSDeliverable{
							{ID: "active-directory-del-2", Name: "Production Domain Controllers", EstimatedHours: 16, Dependencies: []string{"active-directory-del-1"}, RiskLevel: model.RiskHigh},
							{ID: "active-directory-del-3", Name: "Group Policy Baseline", EstimatedHours: 8, Dependencies: []string{"active-directory-del-2"}, RiskLevel: model.RiskMedium},
						},
					},
					{
						ID:             "active-directory-migration",
						Name:           "Account Migration & Handover",
						Description:    "User and computer migration, documentation",
						EstimatedHours: 12,
						ResourceType:   model.ResourceTechnical,
						Complexity:     model.ComplexityMedium,
						Deliverables: []model.WBSDeliverable{
							{ID: "active-directory-del-4", Name: "Migrated Accounts & Runbook", EstimatedHours: 12, Dependencies: []string{"active-directory-del-3"}, RiskLevel: model.RiskMedium},
						},
					},
				},
			},
		},
	}
}
