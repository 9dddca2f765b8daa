package services

import (
	"strings"

	"github.com/quellskin/quell/internal/models"
)

// Ingredient names used by the protocol rules. The names are the contract
// surface shared with the blend catalog and the storefront.
const (
	IngredientZinc        = "Zinc A.A.C."
	IngredientCollagen    = "Collagen Peptides"
	IngredientQuercetin   = "Quercetin"
	IngredientVitaminC    = "Vitamin C"
	IngredientElectrolyte = "Electrolyte Blend"
	IngredientMilkThistle = "Milk Thistle"
	IngredientB12         = "Vitamin B12 (Methylcobalamin)"
	IngredientIron        = "Iron A.A.C."
	IngredientGlutamine   = "L-Glutamine"
	IngredientDigeZyme    = "DigeZyme®"
	IngredientProbiotic   = "Probiotic"
	IngredientMagnesium   = "Magnesium Glycinate"
	IngredientAshwagandha = "Ashwagandha"
	IngredientMCT         = "MCT Powder"
	IngredientVitaminD3   = "Vitamin D3"
	IngredientVitaminK2   = "Vitamin K2"
	IngredientCalcium     = "Calcium Lactate"
	IngredientNAC         = "N-Acetyl-L-Cysteine"
)

// BuildProtocol assigns ingredients into the three protocol phases. Every
// rule is evaluated unconditionally; rules contribute independent evidence
// and the ordered sets absorb repeated additions. The only deliberate
// exclusivity is the stress adaptogen, which lands in phase 1 or phase 3
// depending on stress level, never both.
func BuildProtocol(data models.QuestionnaireData, inflammationLevel string, psychodermProfile string) models.SupplementProtocol {
	phase1 := newOrderedSet()
	phase2 := newOrderedSet()
	phase3 := newOrderedSet()

	// Core foundation.
	phase1.Add(IngredientZinc)

	// Skin structure. Steroid users and smokers need collagen support
	// immediately to counter thinning; otherwise it waits for phase 2.
	structuralSkinType := data.SkinType == models.SkinTypeDry ||
		data.SkinType == models.SkinTypeCombination ||
		data.SkinType == models.SkinTypeWeeping
	if structuralSkinType ||
		strings.Contains(data.MedicationUsage, "Steroids") ||
		strings.Contains(data.MedicationUsage, "TSW") ||
		data.SteroidUsageHistory == ">5 years" ||
		data.Smoking == "Regular" {
		phase1.Add(IngredientCollagen)
	} else {
		phase2.Add(IngredientCollagen)
	}

	// Inflammation and itch.
	hasVisibleInflammation := false
	for _, sign := range activeSigns {
		if models.Contains(data.VisualAppearance, sign) {
			hasVisibleInflammation = true
			break
		}
	}
	if data.ItchScore > 4 || hasVisibleInflammation ||
		inflammationLevel != models.InflammationLow ||
		models.Contains(data.PrimaryGoal, "Stop Itch") ||
		data.SweatTrigger == "Yes (Stings)" {
		phase1.Add(IngredientQuercetin)
	}

	// Weeping skin, slow healing, or smoking all call for vitamin C.
	if data.ItchScore > 6 || models.Contains(data.VisualAppearance, "Weeping") || data.Smoking != "Never" {
		phase1.Add(IngredientVitaminC)
	}

	// Sweat management for active users.
	if data.ExerciseLevel == "Active" || data.ExerciseLevel == "Athlete" || data.SweatTrigger == "Yes (Stings)" {
		phase1.Add(IngredientElectrolyte)
	}

	// Liver support for alcohol.
	if data.Alcohol == "Moderate (4-10)" || data.Alcohol == "High (>10)" {
		phase2.Add(IngredientMilkThistle)
	}

	// Vegan support.
	if data.DietStyle == "Vegan" || data.DietStyle == "Vegetarian" {
		phase1.Add(IngredientB12)
		phase2.Add(IngredientIron)
	}

	// Gut-skin axis.
	if !models.EqualsBucket(data.GutHealth, models.GutHealthGood) || len(data.SuspectedTriggers) > 0 {
		phase1.Add(IngredientGlutamine)
		phase2.Add(IngredientDigeZyme)
		phase2.Add(IngredientProbiotic)
	} else {
		phase2.Add(IngredientProbiotic)
	}

	// Stress and nervous system. Magnesium leads whenever sleep or stress
	// registers at all.
	if !models.EqualsBucket(data.PerceivedStress, models.StressLow) ||
		!models.EqualsBucket(data.SleepImpact, models.SleepImpactNone) ||
		psychodermProfile == models.PsychoStressReactive ||
		models.Contains(data.PrimaryGoal, "Sleep Better") {
		phase1.Add(IngredientMagnesium)
	}

	// Adaptogen placement is exclusive: high stress puts it in phase 1,
	// moderate stress defers it to phase 3. Pregnancy excludes it entirely.
	if models.EqualsBucket(data.PerceivedStress, models.StressHigh) ||
		models.EqualsBucket(data.PerceivedStress, models.StressOverwhelmed) {
		if data.PregnancyStatus == models.PregnancyNone {
			phase1.Add(IngredientAshwagandha)
		}
	} else if models.EqualsBucket(data.PerceivedStress, models.StressModerate) {
		if data.PregnancyStatus == models.PregnancyNone {
			phase3.Add(IngredientAshwagandha)
		}
	}

	// Lipid barrier.
	if models.Contains(data.VisualAppearance, "Dry") ||
		models.Contains(data.VisualAppearance, "Lichenified") ||
		data.SkinType == models.SkinTypeDry ||
		data.Climate == "Dry/Cold" {
		phase1.Add(IngredientMCT)
	} else {
		phase3.Add(IngredientMCT)
	}

	// Micronutrients and bone health. Calcium only joins when osteoporosis
	// or steroid use raises the stakes.
	if models.Contains(data.BoneJointHealth, "Osteoporosis") || strings.Contains(data.MedicationUsage, "Steroids") {
		phase1.Add(IngredientVitaminD3)
		phase1.Add(IngredientVitaminK2)
		phase1.Add(IngredientCalcium)
	} else {
		phase1.Add(IngredientVitaminD3)
		phase1.Add(IngredientVitaminK2)
	}

	// Photosensitive skin needs antioxidant cover.
	if data.SunEffect == "Worsens" {
		phase1.Add(IngredientNAC)
	}

	// Phase 3 never repeats a phase 1 ingredient; the adaptogen and MCT
	// placements rely on the phases staying disjoint.
	maintenance := make([]string, 0, len(phase3.Values()))
	for _, name := range phase3.Values() {
		if !phase1.Contains(name) {
			maintenance = append(maintenance, name)
		}
	}

	return models.SupplementProtocol{
		Phase1: phase1.Values(),
		Phase2: phase2.Values(),
		Phase3: maintenance,
	}
}
