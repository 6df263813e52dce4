package analysis

import (
	"testing"

	"scopeworks/internal/model"
)

func TestAnalyzeScopeCompleteness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		text             string
		requirements     []string
		wantCompleteness string
		wantClarity      string
		wantFeasibility  string
		wantScore        int
	}{
		{
			name:             "network upgrade with scale",
			text:             "upgrade network for 50 users across 3 offices",
			wantCompleteness: model.CompletenessPartial,
			wantClarity:      model.ClarityUnclear,
			wantFeasibility:  model.FeasibilityMedium,
			wantScore:        55,
		},
		{
			name:             "vague one-liner",
			text:             "help",
			wantCompleteness: model.CompletenessIncomplete,
			wantClarity:      model.ClarityUnclear,
			wantFeasibility:  model.FeasibilityLow,
			wantScore:        30,
		},
		{
			name: "complete description",
			text: "migrate our email server to the cloud for 200 users across 4 sites, " +
				"deadline is end of the quarter and budget is approved",
			requirements:     []string{"email migration"},
			wantCompleteness: model.CompletenessComplete,
			wantClarity:      model.ClarityClear,
			wantFeasibility:  model.FeasibilityHigh,
			wantScore:        100,
		},
		{
			name:             "specifics and timeline only",
			text:             "we want a new firewall installed urgently",
			wantCompleteness: model.CompletenessPartial,
			wantClarity:      model.ClarityUnclear,
			wantFeasibility:  model.FeasibilityMedium,
			wantScore:        55,
		},
		{
			name: "long but unspecific",
			text: "we have been thinking about doing something to improve how things run " +
				"here because everything feels slow",
			wantCompleteness: model.CompletenessIncomplete,
			wantClarity:      model.ClarityModerate,
			wantFeasibility:  model.FeasibilityLow,
			wantScore:        40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeScopeCompleteness(tt.text, tt.requirements)
			if got.Completeness != tt.wantCompleteness {
				t.Errorf("Completeness = %s, want %s", got.Completeness, tt.wantCompleteness)
			}
			if got.Clarity != tt.wantClarity {
				t.Errorf("Clarity = %s, want %s", got.Clarity, tt.wantClarity)
			}
			if got.Feasibility != tt.wantFeasibility {
				t.Errorf("Feasibility = %s, want %s", got.Feasibility, tt.wantFeasibility)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Summary == "" {
				t.Error("Summary is empty")
			}
		})
	}
}

func TestScopeSignals(t *testing.T) {
	t.Parallel()

	text := "upgrade network for 50 users across 3 offices"
	if !HasSpecifics(text) {
		t.Error("HasSpecifics = false, want true")
	}
	if !HasQuantifiers(text) {
		t.Error("HasQuantifiers = false, want true")
	}
	if HasTimeline(text) {
		t.Error("HasTimeline = true, want false")
	}
	if HasBudget(text) {
		t.Error("HasBudget = true, want false")
	}
}

func TestMissingElements(t *testing.T) {
	t.Parallel()

	review := AnalyzeScopeCompleteness("install a firewall", nil)
	want := []string{"Timeline or deadline", "Budget expectations", "Scale or quantity details"}
	if len(review.MissingElements) != len(want) {
		t.Fatalf("MissingElements = %v, want %v", review.MissingElements, want)
	}
	for i := range want {
		if review.MissingElements[i] != want[i] {
			t.Errorf("MissingElements[%d] = %q, want %q", i, review.MissingElements[i], want[i])
		}
	}
}
