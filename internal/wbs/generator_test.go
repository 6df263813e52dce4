package wbs

import (
	"math"
	"testing"

	"scopeworks/internal/model"
)

func matchFor(svc model.Service) model.ServiceMatch {
	return model.ServiceMatch{Service: svc, Confidence: 80, MatchedKeywords: []string{}}
}

func TestGenerateEmpty(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate(nil, "X")

	if got.ID != "empty-wbs" {
		t.Errorf("ID = %s, want empty-wbs", got.ID)
	}
	if len(got.Phases) != 0 {
		t.Errorf("Phases = %d, want 0", len(got.Phases))
	}
	if got.TotalHours != 0 || got.TotalCost != 0 {
		t.Errorf("totals = %v hours / %v cost, want 0/0", got.TotalHours, got.TotalCost)
	}
	if got.TeamSize != 1 {
		t.Errorf("TeamSize = %d, want 1", got.TeamSize)
	}
	if got.Risk.Overall != model.RiskLow {
		t.Errorf("Risk.Overall = %s, want Low", got.Risk.Overall)
	}
	if len(got.Assumptions) != 0 {
		t.Errorf("Assumptions = %v, want empty", got.Assumptions)
	}
}

func TestGenerateDropsInvalidMatches(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate([]model.ServiceMatch{
		{Service: model.Service{ID: "", Name: "No ID"}},
		{Service: model.Service{ID: "no-name", Name: ""}},
	}, "X")

	if got.ID != "empty-wbs" {
		t.Errorf("ID = %s, want empty-wbs after dropping invalid matches", got.ID)
	}
}

func TestGenerateSyntheticSplit(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate([]model.ServiceMatch{matchFor(model.Service{
		ID:             "custom-1",
		Name:           "Datacenter Relocation",
		EstimatedHours: 100,
		Complexity:     model.ComplexityHigh,
	})}, "Relocation")

	if len(got.Phases) != 2 {
		t.Fatalf("got %d phases, want 2 (PM + service phase)", len(got.Phases))
	}

	svc := got.Phases[1].Services[0]
	if svc.ResourceType != model.ResourceSpecialist {
		t.Errorf("ResourceType = %s, want Specialist", svc.ResourceType)
	}
	if len(svc.Subservices) != 3 {
		t.Fatalf("got %d subservices, want 3", len(svc.Subservices))
	}

	planning, impl, testing := svc.Subservices[0], svc.Subservices[1], svc.Subservices[2]
	if planning.EstimatedHours != 20 {
		t.Errorf("planning hours = %v, want 20", planning.EstimatedHours)
	}
	if impl.EstimatedHours != 70 {
		t.Errorf("implementation hours = %v, want 70", impl.EstimatedHours)
	}
	if testing.EstimatedHours != 10 {
		t.Errorf("testing hours = %v, want 10", testing.EstimatedHours)
	}
	if planning.ResourceType != model.ResourceProjectManagement {
		t.Errorf("planning resource = %s, want Project Management", planning.ResourceType)
	}
	if impl.ResourceType != model.ResourceSpecialist {
		t.Errorf("implementation resource = %s, want Specialist", impl.ResourceType)
	}
	if testing.ResourceType != model.ResourceTechnical {
		t.Errorf("testing resource = %s, want Technical", testing.ResourceType)
	}

	implDel := impl.Deliverables[0]
	if implDel.RiskLevel != model.RiskHigh {
		t.Errorf("implementation deliverable risk = %s, want High", implDel.RiskLevel)
	}
	planDelID := planning.Deliverables[0].ID
	hasDep := false
	for _, dep := range implDel.Dependencies {
		if dep == planDelID {
			hasDep = true
		}
	}
	if !hasDep {
		t.Errorf("implementation deliverable deps %v missing planning deliverable %s",
			implDel.Dependencies, planDelID)
	}

	testDel := testing.Deliverables[0]
	if len(testDel.Dependencies) != 1 || testDel.Dependencies[0] != implDel.ID {
		t.Errorf("testing deliverable deps = %v, want [%s]", testDel.Dependencies, implDel.ID)
	}
}

func TestGenerateSplitSumsToParent(t *testing.T) {
	t.Parallel()

	// Odd totals must still sum exactly: the last share takes the
	// rounding remainder.
	for _, hours := range []int{1, 7, 33, 55, 99, 101} {
		g := NewGenerator()
		got := g.Generate([]model.ServiceMatch{matchFor(model.Service{
			ID: "svc", Name: "Anything", EstimatedHours: hours,
		})}, "P")

		svc := got.Phases[1].Services[0]
		var sum float64
		for _, sub := range svc.Subservices {
			sum += sub.EstimatedHours
		}
		if sum != float64(hours) {
			t.Errorf("hours=%d: subservice sum = %v, want %d", hours, sum, hours)
		}
		if svc.EstimatedHours != float64(hours) {
			t.Errorf("hours=%d: service hours = %v, want %d", hours, svc.EstimatedHours, hours)
		}
	}
}

func TestGeneratePMOverhead(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate([]model.ServiceMatch{
		matchFor(model.Service{ID: "a", Name: "Service A", EstimatedHours: 100}),
		matchFor(model.Service{ID: "b", Name: "Service B", EstimatedHours: 60}),
	}, "P")

	if got.Phases[0].Name != "Project Management & Coordination" {
		t.Fatalf("phases[0] = %s, want PM phase first", got.Phases[0].Name)
	}

	var otherHours float64
	for _, p := range got.Phases[1:] {
		otherHours += p.TotalHours
	}
	wantPM := math.Round(0.15 * otherHours)
	if got.Phases[0].TotalHours != wantPM {
		t.Errorf("PM hours = %v, want %v", got.Phases[0].TotalHours, wantPM)
	}
	if got.TotalHours != otherHours+wantPM {
		t.Errorf("TotalHours = %v, want %v", got.TotalHours, otherHours+wantPM)
	}

	wantPMCost := wantPM * 175
	if got.Phases[0].TotalCost != wantPMCost {
		t.Errorf("PM cost = %v, want %v", got.Phases[0].TotalCost, wantPMCost)
	}

	// 30/20/50 split of PM hours.
	pmSubs := got.Phases[0].Services[0].Subservices
	if len(pmSubs) != 3 {
		t.Fatalf("PM subservices = %d, want 3", len(pmSubs))
	}
	var pmSum float64
	for _, s := range pmSubs {
		pmSum += s.EstimatedHours
	}
	if pmSum != wantPM {
		t.Errorf("PM subservice sum = %v, want %v", pmSum, wantPM)
	}

	wantMilestones := []string{"Project Kickoff", "Mid-Project Review", "Project Closure"}
	if len(got.Phases[0].Milestones) != len(wantMilestones) {
		t.Fatalf("milestones = %v", got.Phases[0].Milestones)
	}
	for i, m := range wantMilestones {
		if got.Phases[0].Milestones[i] != m {
			t.Errorf("milestone[%d] = %s, want %s", i, got.Phases[0].Milestones[i], m)
		}
	}
}

func TestGeneratePhaseInvariants(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate([]model.ServiceMatch{
		matchFor(model.Service{ID: "network-assessment", Name: "Network Assessment"}),
		matchFor(model.Service{ID: "firewall-installation", Name: "Firewall Installation"}),
		matchFor(model.Service{ID: "custom", Name: "Custom Work", EstimatedHours: 50}),
	}, "Multi")

	for _, phase := range got.Phases {
		var svcSum float64
		for _, svc := range phase.Services {
			svcSum += svc.EstimatedHours

			var subSum float64
			for _, sub := range svc.Subservices {
				subSum += sub.EstimatedHours
			}
			if len(svc.Subservices) > 0 && subSum != svc.EstimatedHours {
				t.Errorf("service %s: subservice sum %v != service hours %v",
					svc.ID, subSum, svc.EstimatedHours)
			}
		}
		if svcSum != phase.TotalHours {
			t.Errorf("phase %s: service sum %v != phase hours %v",
				phase.ID, svcSum, phase.TotalHours)
		}
	}
}

func TestGenerateTemplateExpansion(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate([]model.ServiceMatch{
		matchFor(model.Service{ID: "network-assessment", Name: "Network Assessment"}),
	}, "Assessment")

	if len(got.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(got.Phases))
	}
	if got.Phases[1].Name != "Phase 1: Discovery & Assessment" {
		t.Errorf("phase name = %s, want template phase name", got.Phases[1].Name)
	}
	svc := got.Phases[1].Services[0]
	if len(svc.Subservices) != 3 {
		t.Errorf("template subservices = %d, want 3", len(svc.Subservices))
	}
	// 16h + 16h Technical, 8h Project Management.
	wantCost := 16*150.0 + 16*150.0 + 8*175.0
	if svc.TotalCost != wantCost {
		t.Errorf("template cost = %v, want %v", svc.TotalCost, wantCost)
	}
}

func TestGenerateSyntheticPhaseNamesFollowInputOrder(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate([]model.ServiceMatch{
		matchFor(model.Service{ID: "a", Name: "Alpha", EstimatedHours: 10}),
		matchFor(model.Service{ID: "b", Name: "Beta", EstimatedHours: 10}),
	}, "P")

	if got.Phases[1].Name != "Phase 1: Alpha" {
		t.Errorf("phases[1] = %s, want Phase 1: Alpha", got.Phases[1].Name)
	}
	if got.Phases[2].Name != "Phase 2: Beta" {
		t.Errorf("phases[2] = %s, want Phase 2: Beta", got.Phases[2].Name)
	}
}

func TestGenerateRiskFactors(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate([]model.ServiceMatch{
		matchFor(model.Service{ID: "m", Name: "Email Migration", EstimatedHours: 300,
			Complexity: model.ComplexityHigh, Keywords: []string{"email", "migration"}}),
	}, "Big Migration")

	if got.Risk.Overall != model.RiskHigh {
		t.Errorf("Overall = %s, want High", got.Risk.Overall)
	}

	want := map[string]bool{
		"Large project scope":          false,
		"High-risk technical components": false,
		"Data migration complexity":    false,
	}
	for _, f := range got.Risk.Factors {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, found := range want {
		if !found {
			t.Errorf("risk factors %v missing %q", got.Risk.Factors, f)
		}
	}
}

func TestGenerateTimelineAndTeamSize(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	got := g.Generate([]model.ServiceMatch{
		matchFor(model.Service{ID: "a", Name: "A", EstimatedHours: 100}),
	}, "P")

	// 100h + 15h PM = 115h -> ceil(115/40) = 3 weeks.
	if got.TotalWeeks != 3 {
		t.Errorf("TotalWeeks = %d, want 3", got.TotalWeeks)
	}
	// ceil(115 / (160*3)) = 1.
	if got.TeamSize != 1 {
		t.Errorf("TeamSize = %d, want 1", got.TeamSize)
	}
	if len(got.Assumptions) != 3 {
		t.Errorf("Assumptions = %d entries, want 3", len(got.Assumptions))
	}
}
