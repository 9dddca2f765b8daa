package services

import (
	"time"

	"github.com/quellskin/quell/internal/content"
	"github.com/quellskin/quell/internal/models"
)

const isoDayFormat = "2006-01-02"

// NewMindsetProfile builds a fresh profile from a finished quiz. Retaking
// the quiz replaces the previous profile wholesale, progress included.
func NewMindsetProfile(result MindsetQuizResult, answers map[string]string, now time.Time) models.MindsetProfile {
	copied := make(map[string]string, len(answers))
	for key, value := range answers {
		copied[key] = value
	}
	return models.MindsetProfile{
		Persona:          result.Persona,
		AssignedModuleID: result.ModuleID,
		StartDate:        now.Format(time.RFC3339),
		CurrentDay:       1,
		CompletedDays:    []string{},
		QuizAnswers:      copied,
		Streak:           0,
	}
}

// CompleteDailyTask records today's task completion: at most one completion
// per calendar day, streak incremented, day counter advanced but clamped to
// the module's length. Returns the updated profile and whether anything
// changed.
func CompleteDailyTask(profile models.MindsetProfile, now time.Time) (models.MindsetProfile, bool) {
	today := now.Format(isoDayFormat)
	for _, day := range profile.CompletedDays {
		if day == today {
			return profile, false
		}
	}

	updated := profile
	updated.CompletedDays = append(append([]string{}, profile.CompletedDays...), today)
	updated.Streak = profile.Streak + 1

	nextDay := profile.CurrentDay + 1
	if nextDay < 1 {
		nextDay = 1
	}
	maxDay := content.ModuleDayCount(profile.AssignedModuleID)
	if nextDay > maxDay {
		nextDay = maxDay
	}
	updated.CurrentDay = nextDay

	return updated, true
}

// SwitchModule reassigns the active module without touching quiz answers or
// completion history.
func SwitchModule(profile models.MindsetProfile, moduleID string) (models.MindsetProfile, bool) {
	if _, ok := content.ModuleByID(moduleID); !ok {
		return profile, false
	}
	updated := profile
	updated.AssignedModuleID = moduleID
	return updated, true
}
