package services

import (
	"strings"

	"github.com/quellskin/quell/internal/models"
)

// BuildNutritionSuggestions derives targeted diet adjustments from the
// questionnaire. Predicate order fixes output order.
func BuildNutritionSuggestions(data models.QuestionnaireData) []string {
	var suggestions []string
	if !models.EqualsBucket(data.GutHealth, models.GutHealthGood) {
		suggestions = append(suggestions, "Strict 4-week elimination of gluten & dairy.")
	}
	if models.Contains(data.VisualAppearance, "Dry") {
		suggestions = append(suggestions, "Add 2 tbsp of flaxseed or chia to breakfast.")
	}
	if strings.Contains(data.MedicationUsage, "Steroids") {
		suggestions = append(suggestions, "Increase Vitamin C rich foods to support skin thickness.")
	}
	if data.Smoking != "Never" && data.Smoking != "" {
		suggestions = append(suggestions, "Double your Vitamin C intake to counter smoke-induced oxidation.")
	}
	return suggestions
}

// BuildLifestyleTips derives environmental and behavioral adjustments.
func BuildLifestyleTips(data models.QuestionnaireData) []string {
	var tips []string
	if data.PerceivedStress == models.StressHigh {
		tips = append(tips, "Mandatory 10min vagus nerve stimulation (humming/cold water).")
	}
	if data.ExerciseLevel == "Active" {
		tips = append(tips, "Rinse sweat immediately with cool water to prevent alkalization.")
	}
	if models.Contains(data.PrimaryGoal, "Sleep Better") {
		tips = append(tips, "Keep room temperature below 19°C (66°F) to reduce itch.")
	}
	if data.ShowerTemp == "Hot (Steaming)" {
		tips = append(tips, "Switch to lukewarm showers immediately. Hot water strips lipids.")
	}
	if models.Contains(data.ClothingFabrics, "Wool") || models.Contains(data.ClothingFabrics, "Synthetic/Polyester") {
		tips = append(tips, "Switch to 100% cotton or bamboo layers to reduce micro-friction.")
	}
	if data.LaundryDetergent == "Scented/Regular" {
		tips = append(tips, "Switch to 'Free & Clear' detergent. Fragrance is a top contact allergen.")
	}
	if len(data.Pets) > 0 {
		tips = append(tips, "Keep pets out of the bedroom to create a dander-free sleep sanctuary.")
	}
	if data.SweatTrigger == "Yes (Stings)" {
		tips = append(tips, "Carry a thermal water spray to neutralize sweat pH instantly.")
	}
	return tips
}
