// Package question decides whether a project description is clear enough
// to match against the catalog, and if not, which follow-ups to ask.
package question

import (
	"sort"
	"strings"

	"scopeworks/internal/analysis"
	"scopeworks/internal/model"
	"scopeworks/internal/textkit"
)

// Project types detected from the input text.
const (
	typeSimple         = "simple"
	typeInfrastructure = "infrastructure"
	typeSecurity       = "security"
	typeCloud          = "cloud"
	typeMigration      = "migration"
)

var specificTechKeywords = []string{
	"firewall", "server", "network", "vpn", "wifi", "switch", "router",
	"office 365", "o365", "microsoft 365", "azure", "aws", "vmware",
	"exchange", "sql", "active directory", "backup", "sharepoint", "voip",
}

var actionVerbs = []string{
	"install", "upgrade", "migrate", "replace", "deploy", "configure",
	"setup", "set up", "implement", "move", "build", "fix",
}

var genericHelpPhrases = []string{"help", "assist", "support us", "can you"}
var opinionPhrases = []string{"what do you think", "thoughts", "recommend", "suggestion", "advice"}
var vagueNeedPhrases = []string{"we need", "i need", "looking for", "need something"}

var environmentKeywords = []string{
	"on-prem", "on premise", "environment", "existing", "current",
	"hybrid", "datacenter", "data center", "azure", "aws",
}

var complianceKeywords = []string{"hipaa", "pci", "sox", "compliance", "audit", "regulat"}

var healthcareKeywords = []string{"healthcare", "hipaa", "clinic", "patient", "hospital", "medical"}
var financialKeywords = []string{"bank", "financial", "finance", "sox", "trading", "insurance"}
var educationKeywords = []string{"school", "university", "campus", "student"}

func detectProjectType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "migrat") || strings.Contains(lower, "move to"):
		return typeMigration
	case textkit.ContainsAny(text, []string{"cloud", "azure", "aws", "office 365", "o365", "saas"}):
		return typeCloud
	case textkit.ContainsAny(text, []string{"security", "firewall", "breach", "threat", "antivirus"}):
		return typeSecurity
	case textkit.ContainsAny(text, []string{"network", "server", "infrastructure", "hardware", "wifi"}):
		return typeInfrastructure
	default:
		return typeSimple
	}
}

// Generate runs the vagueness policy and the question decision tree over
// the input and returns the structured recommendation. The caller decides
// whether to actually interrupt the user.
func Generate(text string) model.QuestionSet {
	wc := textkit.WordCount(text)
	projectType := detectProjectType(text)

	hasTech := textkit.ContainsAny(text, specificTechKeywords)
	hasAction := textkit.ContainsAny(text, actionVerbs)
	hasQuantifiers := analysis.HasQuantifiers(text)
	hasTimeline := analysis.HasTimeline(text)
	hasBudget := analysis.HasBudget(text)
	hasEnvironment := textkit.ContainsAny(text, environmentKeywords)
	hasCompliance := textkit.ContainsAny(text, complianceKeywords)
	hasIntegration := textkit.ContainsAny(text, []string{"integration", "integrate"})

	vague := wc < 5 ||
		(!hasTech && !hasAction && wc < 8) ||
		(textkit.ContainsAny(text, genericHelpPhrases) && wc < 10) ||
		(textkit.ContainsAny(text, opinionPhrases) && wc < 10) ||
		(textkit.ContainsAny(text, vagueNeedPhrases) && wc < 8 && !hasTech)

	needsMoreInfo := vague ||
		(!hasTech && !hasQuantifiers) ||
		(projectType == typeCloud && !hasEnvironment) ||
		(projectType == typeSecurity && !hasCompliance)

	if !needsMoreInfo {
		return model.QuestionSet{
			NeedsQuestioning: false,
			Reasoning:        "Input has enough detail to proceed with service matching",
			Questions:        []model.Question{},
			Confidence:       0.9,
		}
	}

	var questions []model.Question
	add := func(q, category, priority string) {
		for _, existing := range questions {
			if existing.Question == q {
				return
			}
		}
		questions = append(questions, model.Question{Question: q, Category: category, Priority: priority})
	}

	if vague {
		switch projectType {
		case typeInfrastructure:
			add("What specific systems or equipment does this involve (servers, network hardware, workstations)?",
				model.QuestionCategoryTechnical, model.PriorityHigh)
		case typeSecurity:
			add("What security concerns are driving this project (incident, audit finding, policy requirement)?",
				model.QuestionCategoryTechnical, model.PriorityHigh)
		case typeCloud:
			add("Which cloud platform or services are you considering (Azure, AWS, Microsoft 365)?",
				model.QuestionCategoryTechnical, model.PriorityHigh)
		default:
			add("What technology area does this project involve (network, servers, cloud, security)?",
				model.QuestionCategoryTechnical, model.PriorityHigh)
		}
	}

	if !hasQuantifiers {
		add("How many users, devices, or locations are in scope?",
			model.QuestionCategoryScale, model.PriorityHigh)
	}
	if !hasEnvironment {
		add("What does the current environment look like (on-premises, cloud, hybrid)?",
			model.QuestionCategoryEnvironment, model.PriorityMedium)
	}

	switch projectType {
	case typeInfrastructure:
		add("Is existing hardware being replaced or expanded?",
			model.QuestionCategoryTechnical, model.PriorityMedium)
	case typeSecurity:
		add("Are there compliance requirements in play (HIPAA, PCI, SOX)?",
			model.QuestionCategoryCompliance, model.PriorityHigh)
	case typeCloud:
		add("Is this a new deployment or a migration of existing workloads?",
			model.QuestionCategoryTechnical, model.PriorityMedium)
	case typeMigration:
		add("What is the source platform and what is the target platform?",
			model.QuestionCategoryTechnical, model.PriorityHigh)
	}

	if !hasTimeline {
		add("Is there a target completion date or a hard deadline?",
			model.QuestionCategoryTimeline, model.PriorityMedium)
	}
	if !hasBudget {
		add("Is there a budget range approved for this work?",
			model.QuestionCategoryBudget, model.PriorityLow)
	}

	if textkit.ContainsAny(text, healthcareKeywords) {
		add("Will this system store or transmit patient health information?",
			model.QuestionCategoryCompliance, model.PriorityHigh)
	}
	if textkit.ContainsAny(text, financialKeywords) {
		add("Are there audit or regulatory controls this must satisfy?",
			model.QuestionCategoryCompliance, model.PriorityHigh)
	}
	if textkit.ContainsAny(text, educationKeywords) {
		add("Does this need to fit an academic calendar window?",
			model.QuestionCategoryTimeline, model.PriorityMedium)
	}

	highCount := 0
	for _, q := range questions {
		if q.Priority == model.PriorityHigh {
			highCount++
		}
	}

	needsQuestioning := vague ||
		highCount >= 2 ||
		len(questions) >= 4 ||
		(projectType != typeSimple && wc < 15)

	sort.SliceStable(questions, func(i, j int) bool {
		return priorityRank(questions[i].Priority) < priorityRank(questions[j].Priority)
	})
	if len(questions) > 3 {
		questions = questions[:3]
	}

	return model.QuestionSet{
		NeedsQuestioning: needsQuestioning,
		Reasoning:        buildReasoning(vague, hasTech, hasQuantifiers),
		Questions:        questions,
		Confidence:       confidence(hasTech, hasQuantifiers, hasEnvironment, hasTimeline, hasAction, hasIntegration, projectType, wc),
	}
}

func priorityRank(p string) int {
	switch p {
	case model.PriorityHigh:
		return 0
	case model.PriorityMedium:
		return 1
	default:
		return 2
	}
}

func buildReasoning(vague, hasTech, hasQuantifiers bool) string {
	switch {
	case vague:
		return "Input is too vague to scope against the service catalog"
	case !hasTech && !hasQuantifiers:
		return "Missing both a specific technology and scale details"
	default:
		return "Key details are missing for this project type"
	}
}

// confidence is a weighted sum of signal presence on a base of 30,
// capped at 95.
func confidence(hasTech, hasQuantifiers, hasEnvironment, hasTimeline, hasAction, hasIntegration bool, projectType string, wc int) float64 {
	score := 30.0
	if hasTech {
		score += 25
	}
	if hasQuantifiers {
		score += 20
	}
	if hasEnvironment {
		score += 15
	}
	if hasTimeline {
		score += 10
	}
	if hasAction {
		score += 10
	}
	if projectType != typeSimple {
		score += 5
	}
	if wc > 20 {
		score += 10
	}
	if hasIntegration {
		score += 5
	}
	if score > 95 {
		score = 95
	}
	return score
}
