package models

import "strings"

// Skin types offered during onboarding.
const (
	SkinTypeDry         = "Dry/Cracked"
	SkinTypeWeeping     = "Weeping"
	SkinTypeInflamed    = "Red/Inflamed"
	SkinTypeMaintenance = "Maintenance"
	SkinTypeCombination = "Combination"
	SkinTypeOily        = "Oily"
)

// Bucket values referenced by the engine. Producers are inconsistently cased,
// so comparisons against these go through EqualsBucket.
const (
	StressLow         = "Low"
	StressModerate    = "Moderate"
	StressHigh        = "High"
	StressOverwhelmed = "Overwhelmed"

	SleepImpactNone     = "None"
	SleepImpactMild     = "Mild"
	SleepImpactModerate = "Moderate"
	SleepImpactSevere   = "Severe"

	GutHealthGood = "Good"

	PregnancyNone = "None"
)

// QuestionnaireData is the immutable snapshot collected during onboarding.
// Set-valued fields are stored as ordered slices; only membership is ever
// tested, so slice order carries no meaning.
type QuestionnaireData struct {
	ScanImages []string `json:"scan_images,omitempty"`

	// Phase 1: clinical calibration
	FullName        string  `json:"full_name"`
	Age             int     `json:"age"`
	BiologicalSex   string  `json:"biological_sex"`
	PregnancyStatus string  `json:"pregnancy_status"`
	HeightCm        float64 `json:"height_cm"`
	WeightKg        float64 `json:"weight_kg"`

	// Phase 2: skin profile
	SkinType         string   `json:"skin_type"`
	EczemaOnset      string   `json:"eczema_onset"`
	EczemaLocations  []string `json:"eczema_locations"`
	VisualAppearance []string `json:"visual_appearance"`
	AtopicHistory    []string `json:"atopic_history"`
	ScratchTiming    []string `json:"scratch_timing"`

	// Phase 3: environment and lifestyle
	ShowerTemp         string   `json:"shower_temp"`
	MoisturizerTexture string   `json:"moisturizer_texture"`
	ClothingFabrics    []string `json:"clothing_fabrics"`
	LaundryDetergent   string   `json:"laundry_detergent"`
	Pets               []string `json:"pets"`
	Climate            string   `json:"climate"`
	SunEffect          string   `json:"sun_effect"`
	SweatTrigger       string   `json:"sweat_trigger"`

	// Phase 4: internal triggers
	DietStyle         string   `json:"diet_style"`
	SuspectedTriggers []string `json:"suspected_triggers"`
	GutHealth         string   `json:"gut_health"`
	AntibioticUse     bool     `json:"antibiotic_use"`
	Hydration         string   `json:"hydration"`
	Smoking           string   `json:"smoking"`
	Alcohol           string   `json:"alcohol"`

	// Phase 5: psychodermatology
	PerceivedStress string   `json:"perceived_stress"`
	ItchScore       int      `json:"itch_score"`
	SleepImpact     string   `json:"sleep_impact"`
	MentalImpact    []string `json:"mental_impact"`

	// Phase 6: safety and goals
	MedicationUsage     string   `json:"medication_usage"`
	SteroidUsageHistory string   `json:"steroid_usage_history"`
	ExerciseLevel       string   `json:"exercise_level"`
	BoneJointHealth     []string `json:"bone_joint_health"`
	PrimaryGoal         []string `json:"primary_goal"`
}

// EqualsBucket compares a bucket-valued field against a canonical value.
// Both "High" and "high" appear in stored questionnaires, and both must keep
// matching: the tolerance is part of the contract, not a defect to fix.
func EqualsBucket(value string, canonical string) bool {
	return strings.EqualFold(strings.TrimSpace(value), canonical)
}

// Contains reports whether a set-valued field includes the given option.
func Contains(values []string, option string) bool {
	for _, value := range values {
		if value == option {
			return true
		}
	}
	return false
}
