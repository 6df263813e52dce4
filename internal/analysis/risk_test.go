package analysis

import (
	"testing"

	"scopeworks/internal/model"
)

func TestAssessProjectRisks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		text           string
		complexity     string
		industry       string
		wantOverall    string
		wantCategories []string
		wantTechnical  string
		wantTimeline   string
	}{
		{
			name:           "simple low-risk project",
			text:           "install wifi access points",
			complexity:     model.ComplexityLow,
			industry:       IndustryGeneral,
			wantOverall:    model.RiskLow,
			wantCategories: []string{},
			wantTechnical:  model.RiskLow,
			wantTimeline:   model.RiskMedium,
		},
		{
			name:           "legacy migration",
			text:           "migrate the legacy ERP to new servers",
			complexity:     model.ComplexityMedium,
			industry:       IndustryGeneral,
			wantOverall:    model.RiskHigh,
			wantCategories: []string{"Technical"},
			wantTechnical:  model.RiskHigh,
			wantTimeline:   model.RiskMedium,
		},
		{
			name:           "healthcare compliance",
			text:           "new patient portal",
			complexity:     model.ComplexityLow,
			industry:       IndustryHealthcare,
			wantOverall:    model.RiskHigh,
			wantCategories: []string{"Compliance"},
			wantTechnical:  model.RiskLow,
			wantTimeline:   model.RiskMedium,
		},
		{
			name:           "critical pileup",
			text:           "migrate legacy systems with hipaa data and sox controls",
			complexity:     model.ComplexityHigh,
			industry:       IndustryHealthcare,
			wantOverall:    model.RiskCritical,
			wantCategories: []string{"Technical", "Compliance", "Compliance", "Timeline"},
			wantTechnical:  model.RiskHigh,
			wantTimeline:   model.RiskHigh,
		},
		{
			name:           "high complexity alone",
			text:           "full office move",
			complexity:     model.ComplexityHigh,
			industry:       IndustryGeneral,
			wantOverall:    model.RiskHigh,
			wantCategories: []string{"Timeline"},
			wantTechnical:  model.RiskLow,
			wantTimeline:   model.RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessProjectRisks(tt.text, tt.complexity, tt.industry)
			if got.OverallRisk != tt.wantOverall {
				t.Errorf("OverallRisk = %s, want %s", got.OverallRisk, tt.wantOverall)
			}
			if len(got.RiskFactors) != len(tt.wantCategories) {
				t.Fatalf("got %d factors, want %d: %+v", len(got.RiskFactors), len(tt.wantCategories), got.RiskFactors)
			}
			for i, cat := range tt.wantCategories {
				if got.RiskFactors[i].Category != cat {
					t.Errorf("factor[%d].Category = %s, want %s", i, got.RiskFactors[i].Category, cat)
				}
			}
			if got.TechnicalRisk != tt.wantTechnical {
				t.Errorf("TechnicalRisk = %s, want %s", got.TechnicalRisk, tt.wantTechnical)
			}
			if got.TimelineRisk != tt.wantTimeline {
				t.Errorf("TimelineRisk = %s, want %s", got.TimelineRisk, tt.wantTimeline)
			}
			if got.BudgetRisk != tt.complexity {
				t.Errorf("BudgetRisk = %s, want %s", got.BudgetRisk, tt.complexity)
			}
			if len(got.MitigationStrategies) != 4 {
				t.Errorf("got %d mitigation strategies, want 4", len(got.MitigationStrategies))
			}
		})
	}
}

func TestAnalyzeProject(t *testing.T) {
	t.Parallel()

	got := AnalyzeProject("migrate email to the cloud with new backup for 120 users at our clinic", nil)

	if got.Complexity != model.ComplexityHigh {
		t.Errorf("Complexity = %s, want High", got.Complexity)
	}
	if got.Industry != IndustryHealthcare {
		t.Errorf("Industry = %s, want %s", got.Industry, IndustryHealthcare)
	}
	if got.EstimatedTimeline != "3-6 months" {
		t.Errorf("EstimatedTimeline = %s, want 3-6 months", got.EstimatedTimeline)
	}
	if len(got.KeyRequirements) != 3 {
		t.Errorf("KeyRequirements = %v, want 3 entries", got.KeyRequirements)
	}
	if len(got.Recommendations) != len(got.KeyRequirements) {
		t.Errorf("Recommendations count %d != KeyRequirements count %d",
			len(got.Recommendations), len(got.KeyRequirements))
	}
}
