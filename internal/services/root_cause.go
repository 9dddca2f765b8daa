package services

import (
	"fmt"
	"strings"

	"github.com/quellskin/quell/internal/models"
)

// SummarizeRootCause composes the root-cause explanation from matched trigger
// predicates. Predicate order fixes phrase order, which keeps the generated
// text reproducible for identical questionnaires.
func SummarizeRootCause(data models.QuestionnaireData) string {
	var triggers []string

	if data.EczemaOnset == "Childhood" {
		triggers = append(triggers, "genetic filaggrin deficiency")
	}
	if data.MedicationUsage == "TSW (Withdrawal)" || data.MedicationUsage == "Withdrawal" {
		triggers = append(triggers, "vascular dilation (TSW)")
	}
	if models.EqualsBucket(data.PerceivedStress, models.StressHigh) ||
		models.EqualsBucket(data.PerceivedStress, models.StressOverwhelmed) {
		triggers = append(triggers, "chronic cortisol spikes")
	}
	if !models.EqualsBucket(data.GutHealth, models.GutHealthGood) {
		triggers = append(triggers, "gut microbiome dysbiosis")
	}
	if data.DietStyle == "Standard" && len(data.SuspectedTriggers) > 0 {
		triggers = append(triggers, "dietary inflammation")
	}
	if data.Hydration == "<1L" {
		triggers = append(triggers, "cellular dehydration")
	}
	if data.Smoking != "Never" && data.Smoking != "" {
		triggers = append(triggers, "oxidative stress from smoking")
	}
	if len(data.Pets) > 0 {
		triggers = append(triggers, "household protein allergens")
	}
	if data.ShowerTemp == "Hot (Steaming)" {
		triggers = append(triggers, "thermal barrier stripping")
	}
	if data.ExerciseLevel == "Active" || data.ExerciseLevel == "Athlete" {
		if models.Contains(data.EczemaLocations, "Arms") || models.Contains(data.EczemaLocations, "Legs") {
			triggers = append(triggers, "sweat-induced alkalization")
		}
	}

	if len(triggers) > 0 {
		return fmt.Sprintf(
			"Your profile suggests a complex flare loop driven by %s. Addressing these internal triggers is your priority.",
			strings.Join(triggers, ", "),
		)
	}
	return `Your eczema appears primarily "Barrier-Defective," meaning your skin struggles to retain lipids and water, making it hyper-reactive to environmental triggers.`
}
