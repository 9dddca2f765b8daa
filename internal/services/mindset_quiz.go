package services

import (
	"strings"

	"github.com/quellskin/quell/internal/models"
)

type MindsetQuizResult struct {
	Persona  string `json:"persona"`
	ModuleID string `json:"module_id"`
}

// AnalyzeMindsetQuiz maps quiz answers to one of the five personas. The
// cascade is priority-ordered: the first matching archetype wins even when a
// later one would also match. Containment checks are case-sensitive against
// the fixed option vocabulary of the quiz.
func AnalyzeMindsetQuiz(answers map[string]string) MindsetQuizResult {
	feeling := answers["feeling"]
	thought := answers["thought"]
	control := answers["control"]
	soothing := answers["soothing"]
	mirror := answers["mirror"]
	social := answers["social"]

	switch {
	// Anger, control struggles, aggressive soothing.
	case feeling == "Angry" ||
		strings.Contains(thought, "control") ||
		strings.Contains(soothing, "Scratching") ||
		strings.Contains(soothing, "Hot water") ||
		strings.Contains(control, "fighting"):
		return MindsetQuizResult{Persona: models.PersonaFighter, ModuleID: "rewire-itch"}

	// Shame, avoiding mirrors, hiding socially.
	case feeling == "Ashamed" ||
		strings.Contains(thought, "Hate") ||
		strings.Contains(mirror, "avoid") ||
		strings.Contains(social, "hide"):
		return MindsetQuizResult{Persona: models.PersonaHider, ModuleID: "rebuild-identity"}

	// Hopelessness and lack of belief.
	case strings.Contains(thought, "Never") ||
		answers["belief"] == "No" ||
		strings.Contains(control, "controls me"):
		return MindsetQuizResult{Persona: models.PersonaHopeless, ModuleID: "attract-healed"}

	// Disconnection and withdrawn intimacy.
	case feeling == "Disconnected" ||
		answers["inner_voice"] == "Lost" ||
		strings.Contains(answers["intimacy"], "pull away"):
		return MindsetQuizResult{Persona: models.PersonaWoundedChild, ModuleID: "release-battle"}
	}

	// Anxiety, sleep worry, and overthinking land here.
	return MindsetQuizResult{Persona: models.PersonaOverthinker, ModuleID: "stress-safety"}
}
