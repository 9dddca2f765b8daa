package services

import (
	"strings"

	"github.com/quellskin/quell/internal/models"
)

// NormalizeQuestionnaire sanitizes a submitted questionnaire once at
// ingestion: scores are clamped into range and free-text fields trimmed.
// Bucket values keep their submitted casing; the engine compares them
// case-insensitively, and both spellings are part of the stored contract.
func NormalizeQuestionnaire(data models.QuestionnaireData) models.QuestionnaireData {
	data.FullName = strings.TrimSpace(data.FullName)
	data.ItchScore = ClampScore(data.ItchScore)
	if data.Age < 0 {
		data.Age = 0
	}
	if data.HeightCm < 0 {
		data.HeightCm = 0
	}
	if data.WeightKg < 0 {
		data.WeightKg = 0
	}
	return data
}

// ClampScore forces a self-reported 1-10 score into range.
func ClampScore(value int) int {
	if value < 1 {
		return 1
	}
	if value > 10 {
		return 10
	}
	return value
}
