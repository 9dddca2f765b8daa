package models

// Severity classes derived from the PO-SCORAD score.
const (
	SeverityMild     = "Mild"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"
	SeverityHighRisk = "High-Risk"
)

// Psychodermatology profiles.
const (
	PsychoResilient      = "Resilient"
	PsychoStressReactive = "Stress-Reactive"
	PsychoAvoidant       = "Avoidant"
	PsychoShameProne     = "Shame-Prone"
)

// Inflammation levels.
const (
	InflammationLow      = "Low"
	InflammationModerate = "Moderate"
	InflammationHigh     = "High"
)

type SupplementProtocol struct {
	Phase1 []string `json:"phase1"`
	Phase2 []string `json:"phase2"`
	Phase3 []string `json:"phase3"`
}

type MindsetRoadmap struct {
	SOS          string `json:"sos"`
	SleepSupport string `json:"sleep_support"`
	CBTPathway   string `json:"cbt_pathway"`
}

// ComputedProfile is the full derived result of running the logic engine
// over a questionnaire. It is replaced wholesale whenever the questionnaire
// changes, never patched field by field.
type ComputedProfile struct {
	SeverityClass        string             `json:"severity_class"`
	PoScorad             float64            `json:"po_scorad"`
	EasiScore            float64            `json:"easi_score"`
	PsychodermProfile    string             `json:"psychoderm_profile"`
	InflammationLevel    string             `json:"inflammation_level"`
	RootCauseSummary     string             `json:"root_cause_summary"`
	SupplementProtocol   SupplementProtocol `json:"supplement_protocol"`
	MindsetRoadmap       MindsetRoadmap     `json:"mindset_roadmap"`
	NutritionSuggestions []string           `json:"nutrition_suggestions"`
	LifestyleTips        []string           `json:"lifestyle_tips"`
}
