package ai

import (
	"context"

	"github.com/quellskin/quell/internal/models"
)

// CoachMessage is one turn of the coach conversation.
type CoachMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SkinAnalysis is the structured result of a photo analysis.
type SkinAnalysis struct {
	RednessScore float64  `json:"redness_score"`
	Locations    []string `json:"locations"`
	Symptoms     []string `json:"symptoms"`
	Summary      string   `json:"summary"`
}

// CoachClient generates chat replies grounded in the user's computed profile
// and recent check-in history.
type CoachClient interface {
	GenerateCoachResponse(ctx context.Context, history []CoachMessage, message string, profile *models.ComputedProfile, logs []models.DailyLog) (string, error)
}

// VisionClient analyzes skin photos. AnalyzeSkinCondition runs the full
// onboarding scan; AnalyzeDailyInflammation scores a daily check-in photo.
type VisionClient interface {
	AnalyzeSkinCondition(ctx context.Context, images []string) (SkinAnalysis, error)
	AnalyzeDailyInflammation(ctx context.Context, images []string) (SkinAnalysis, error)
}

// SpeechClient renders coach text as spoken audio.
type SpeechClient interface {
	GenerateSpeech(ctx context.Context, text string, voice string) ([]byte, error)
}

// Clients bundles the three collaborators the API layer consumes.
type Clients struct {
	Coach  CoachClient
	Vision VisionClient
	Speech SpeechClient
}
