package services

import "github.com/quellskin/quell/internal/models"

// activeSigns are the visual tags that count as active inflammation.
var activeSigns = []string{"Red", "Weeping", "Crusting", "Swelling"}

// ClassifySeverity maps a PO-SCORAD score to a severity class. Thresholds are
// exclusive lower bounds checked in descending order.
func ClassifySeverity(poScorad float64) string {
	switch {
	case poScorad > 50:
		return models.SeverityHighRisk
	case poScorad > 28:
		return models.SeveritySevere
	case poScorad > 15:
		return models.SeverityModerate
	}
	return models.SeverityMild
}

// ClassifyPsychoderm assigns the psychodermatology profile. Shame markers
// take priority over social anxiety, which takes priority over stress.
func ClassifyPsychoderm(data models.QuestionnaireData) string {
	switch {
	case models.Contains(data.MentalImpact, "Shame"):
		return models.PsychoShameProne
	case models.Contains(data.MentalImpact, "Social Anxiety"):
		return models.PsychoAvoidant
	case models.EqualsBucket(data.PerceivedStress, models.StressHigh),
		models.EqualsBucket(data.PerceivedStress, models.StressOverwhelmed):
		return models.PsychoStressReactive
	}
	return models.PsychoResilient
}

// ClassifyInflammation grades current inflammation from visual signs, itch
// and the severity score. Branches are ordered; the first match wins.
func ClassifyInflammation(data models.QuestionnaireData, poScorad float64) string {
	activeSignCount := 0
	for _, sign := range activeSigns {
		if models.Contains(data.VisualAppearance, sign) {
			activeSignCount++
		}
	}

	switch {
	case activeSignCount >= 2 || data.ItchScore > 6 || poScorad > 40:
		return models.InflammationHigh
	case activeSignCount == 1 || data.ItchScore > 4 || models.Contains(data.VisualAppearance, "Dry"):
		return models.InflammationModerate
	}
	return models.InflammationLow
}
