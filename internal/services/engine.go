package services

import "github.com/quellskin/quell/internal/models"

// RunLogicEngine derives the full computed profile from a questionnaire.
// The pipeline order is fixed: scores, then classifications, then the
// text/protocol/roadmap builders that depend on them. The function is pure;
// the same questionnaire always yields the same profile.
func RunLogicEngine(data models.QuestionnaireData) models.ComputedProfile {
	scores := CalculateClinicalScores(data)

	severityClass := ClassifySeverity(scores.PoScorad)
	psychodermProfile := ClassifyPsychoderm(data)
	inflammationLevel := ClassifyInflammation(data, scores.PoScorad)

	return models.ComputedProfile{
		SeverityClass:        severityClass,
		PoScorad:             scores.PoScorad,
		EasiScore:            scores.EasiScore,
		PsychodermProfile:    psychodermProfile,
		InflammationLevel:    inflammationLevel,
		RootCauseSummary:     SummarizeRootCause(data),
		SupplementProtocol:   BuildProtocol(data, inflammationLevel, psychodermProfile),
		MindsetRoadmap:       SelectMindsetRoadmap(data, psychodermProfile),
		NutritionSuggestions: BuildNutritionSuggestions(data),
		LifestyleTips:        BuildLifestyleTips(data),
	}
}
