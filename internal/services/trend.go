package services

import "github.com/quellskin/quell/internal/models"

// Trend statuses.
const (
	TrendCalibrating = "Calibrating"
	TrendImproving   = "Improving"
	TrendWorsening   = "Worsening"
	TrendPlateau     = "Plateau"
)

const (
	trendMinLogs     = 3
	trendWindowSize  = 7
	trendSlopeBounds = 0.15
)

type TrendResult struct {
	Status string `json:"status"`
	Advice string `json:"advice"`
	Action string `json:"action"`
}

// AnalyzeSymptomTrend fits an ordinary-least-squares line over a composite
// clinical score for the most recent logs and classifies the direction.
// Symptom scores falling over time produce a negative slope, so a slope
// below the threshold means the skin is improving. Logs must be in
// chronological order.
func AnalyzeSymptomTrend(logs []models.DailyLog) TrendResult {
	if len(logs) < trendMinLogs {
		return TrendResult{
			Status: TrendCalibrating,
			Advice: "Keep logging. We need a few more days to learn your flare patterns.",
			Action: "Track Daily",
		}
	}

	recent := logs
	if len(recent) > trendWindowSize {
		recent = recent[len(recent)-trendWindowSize:]
	}

	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(recent))
	for index, log := range recent {
		score := compositeClinicalScore(log)
		x := float64(index)
		sumX += x
		sumY += score
		sumXY += x * score
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)

	switch {
	case slope < -trendSlopeBounds:
		return TrendResult{
			Status: TrendImproving,
			Advice: "The protocol is working. Inflammation velocity is dropping.",
			Action: "Continue Phase 1",
		}
	case slope > trendSlopeBounds:
		return TrendResult{
			Status: TrendWorsening,
			Advice: "Inflammation is accelerating. Check food triggers.",
			Action: "Use SOS Audio",
		}
	}
	return TrendResult{
		Status: TrendPlateau,
		Advice: "Healing has stabilized. Stick to the routine.",
		Action: "Check Adherence",
	}
}

// compositeClinicalScore blends the AI redness reading with self-reported
// itch when a photo analysis is present; otherwise itch stands alone.
func compositeClinicalScore(log models.DailyLog) float64 {
	if log.AIRednessScore > 0 {
		return (log.AIRednessScore/10)*0.6 + float64(log.ItchScore)*0.4
	}
	return float64(log.ItchScore)
}
