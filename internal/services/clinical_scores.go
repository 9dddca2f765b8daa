package services

import (
	"math"

	"github.com/quellskin/quell/internal/models"
)

type ClinicalScores struct {
	PoScorad  float64 `json:"po_scorad"`
	EasiScore float64 `json:"easi_score"`
}

// Body-surface weights per affected location, a rule-of-nines approximation.
var areaWeights = map[string]float64{
	"Face":  4.5,
	"Neck":  1,
	"Hands": 2.5,
	"Arms":  9,
	"Torso": 18,
	"Legs":  18,
}

// Sign-intensity weights per visual appearance tag. Weeping carries the
// highest weight.
var intensityWeights = map[string]float64{
	"Dry":         2,
	"Red":         2,
	"Weeping":     3,
	"Crusting":    2,
	"Swelling":    2,
	"Lichenified": 2,
}

const (
	maxAreaScore      = 100
	maxIntensityScore = 18
)

// CalculateClinicalScores computes the PO-SCORAD severity index and its EASI
// approximation from a questionnaire. Absent fields contribute zero; rounding
// happens only on the final outputs.
func CalculateClinicalScores(data models.QuestionnaireData) ClinicalScores {
	var areaScore float64
	for location, weight := range areaWeights {
		if models.Contains(data.EczemaLocations, location) {
			areaScore += weight
		}
	}
	areaScore = clampAreaScore(areaScore)

	var intensityScore float64
	for tag, weight := range intensityWeights {
		if models.Contains(data.VisualAppearance, tag) {
			intensityScore += weight
		}
	}
	intensityScore = clampIntensityScore(intensityScore)

	subjectiveScore := float64(data.ItchScore) + sleepSubScore(data.SleepImpact)

	poScorad := areaScore/5 + 7*(intensityScore/2) + subjectiveScore
	easiScore := poScorad / 2.5

	return ClinicalScores{
		PoScorad:  roundToOneDecimal(poScorad),
		EasiScore: roundToOneDecimal(easiScore),
	}
}

// The weight tables currently sum below both ceilings, so the clamps only
// engage if the tables ever grow. They stay to bound the score domains.
func clampAreaScore(value float64) float64 {
	return math.Min(value, maxAreaScore)
}

func clampIntensityScore(value float64) float64 {
	return math.Min(value, maxIntensityScore)
}

func sleepSubScore(sleepImpact string) float64 {
	switch {
	case models.EqualsBucket(sleepImpact, models.SleepImpactMild):
		return 2
	case models.EqualsBucket(sleepImpact, models.SleepImpactModerate):
		return 5
	case models.EqualsBucket(sleepImpact, models.SleepImpactSevere):
		return 8
	}
	return 0
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
