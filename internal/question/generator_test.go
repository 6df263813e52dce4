package question

import (
	"testing"

	"scopeworks/internal/model"
)

func TestGenerateVagueInput(t *testing.T) {
	t.Parallel()

	got := Generate("help")

	if !got.NeedsQuestioning {
		t.Fatal("NeedsQuestioning = false, want true")
	}
	if got.Confidence > 40 {
		t.Errorf("Confidence = %v, want <= 40", got.Confidence)
	}
	if len(got.Questions) == 0 || len(got.Questions) > 3 {
		t.Fatalf("got %d questions, want 1..3", len(got.Questions))
	}

	foundTechnical := false
	for _, q := range got.Questions {
		if q.Category == model.QuestionCategoryTechnical {
			foundTechnical = true
		}
	}
	if !foundTechnical {
		t.Errorf("no technical-category question in %+v", got.Questions)
	}
}

func TestGenerateShortCircuit(t *testing.T) {
	t.Parallel()

	// Specific tech, quantifiers, and not vague: the pipeline should
	// proceed straight to matching.
	got := Generate("upgrade the network switches and wifi for 50 users across 3 offices")

	if got.NeedsQuestioning {
		t.Fatalf("NeedsQuestioning = true, want false (questions: %+v)", got.Questions)
	}
	if len(got.Questions) != 0 {
		t.Errorf("got %d questions, want 0", len(got.Questions))
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
}

func TestGenerateSecurityNeedsCompliance(t *testing.T) {
	t.Parallel()

	// Security project with scale but no compliance signal still needs
	// questioning.
	got := Generate("roll out new antivirus and firewall policies for 200 endpoints")

	if !got.NeedsQuestioning {
		t.Fatal("NeedsQuestioning = false, want true")
	}

	foundCompliance := false
	for _, q := range got.Questions {
		if q.Category == model.QuestionCategoryCompliance {
			foundCompliance = true
		}
	}
	if !foundCompliance {
		t.Errorf("no compliance question in %+v", got.Questions)
	}
}

func TestGeneratePrioritySortAndCap(t *testing.T) {
	t.Parallel()

	got := Generate("we need something better")
	if len(got.Questions) > 3 {
		t.Fatalf("got %d questions, want at most 3", len(got.Questions))
	}
	lastRank := -1
	for _, q := range got.Questions {
		r := priorityRank(q.Priority)
		if r < lastRank {
			t.Errorf("questions not sorted by priority: %+v", got.Questions)
		}
		lastRank = r
	}
}

func TestDetectProjectType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"migrate mailboxes to exchange online", typeMigration},
		{"set up azure virtual desktops", typeCloud},
		{"firewall replacement", typeSecurity},
		{"new office network build-out", typeInfrastructure},
		{"help", typeSimple},
	}
	for _, tt := range tests {
		if got := detectProjectType(tt.in); got != tt.want {
			t.Errorf("detectProjectType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
