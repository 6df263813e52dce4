package matching

import (
	"testing"

	"scopeworks/internal/model"
)

func liveCatalog() []model.Service {
	return []model.Service{
		{
			ID:          "live-1",
			Name:        "Managed Firewall",
			ServiceType: "Security",
			Description: "Deploy and manage perimeter firewall appliances",
			Tags:        []string{"firewall", "perimeter"},
			Complexity:  model.ComplexityMedium,
			Category:    "Security Services",
		},
		{
			ID:          "live-2",
			Name:        "Cloud Readiness Review",
			ServiceType: "Advisory",
			Description: "Assess workloads for azure migration readiness",
			Tags:        []string{"cloud", "azure"},
			Complexity:  model.ComplexityLow,
		},
		{
			ID:          "live-3",
			Name:        "Healthcare IT Compliance",
			Description: "Security controls for clinical environments",
			Complexity:  model.ComplexityLow,
			Category:    "Healthcare",
		},
	}
}

func TestLiveCatalogMatcherThresholdStrict(t *testing.T) {
	t.Parallel()

	// A service whose only signal is complexity equality scores exactly
	// 20, which fails the strictly-greater threshold.
	catalog := []model.Service{{
		ID:         "only-complexity",
		Name:       "Unrelated Offering",
		Complexity: model.ComplexityLow,
	}}
	m := NewLiveCatalogMatcher()
	got := m.Match("replace the printers", catalog)
	if len(got) != 0 {
		t.Errorf("got %d matches, want 0 (score 20 must be excluded)", len(got))
	}
}

func TestLiveCatalogMatcherScoring(t *testing.T) {
	t.Parallel()

	m := NewLiveCatalogMatcher()
	got := m.Match("we want a managed firewall for the office perimeter", liveCatalog())

	if len(got) == 0 {
		t.Fatal("no matches returned")
	}
	top := got[0]
	if top.Service.ID != "live-1" {
		t.Fatalf("top match = %s, want live-1", top.Service.ID)
	}
	if top.Confidence > 100 {
		t.Errorf("Confidence = %d, want capped at 100", top.Confidence)
	}

	wantKeywords := map[string]bool{"name": false, "firewall": false, "perimeter": false}
	for _, kw := range top.MatchedKeywords {
		if _, ok := wantKeywords[kw]; ok {
			wantKeywords[kw] = true
		}
	}
	for kw, found := range wantKeywords {
		if !found {
			t.Errorf("matchedKeywords %v missing %q", top.MatchedKeywords, kw)
		}
	}
}

func TestLiveCatalogMatcherIndustryOverlap(t *testing.T) {
	t.Parallel()

	m := NewLiveCatalogMatcher()
	got := m.Match("security review for our clinic with patient data", liveCatalog())

	var compliance *model.ServiceMatch
	for i := range got {
		if got[i].Service.ID == "live-3" {
			compliance = &got[i]
		}
	}
	if compliance == nil {
		t.Fatalf("live-3 not matched: %+v", got)
	}

	foundIndustry := false
	for _, kw := range compliance.MatchedKeywords {
		if kw == "industry" {
			foundIndustry = true
		}
	}
	if !foundIndustry {
		t.Errorf("matchedKeywords %v missing industry", compliance.MatchedKeywords)
	}
}

func TestLiveCatalogMatcherSortedDescending(t *testing.T) {
	t.Parallel()

	m := NewLiveCatalogMatcher()
	got := m.Match("azure cloud migration for 40 servers", liveCatalog())

	if len(got) > MaxResults {
		t.Fatalf("got %d matches, want at most %d", len(got), MaxResults)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Confidence > got[i-1].Confidence {
			t.Errorf("matches not sorted descending at %d", i)
		}
	}
}
