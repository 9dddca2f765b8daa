package services

import (
	"errors"
	"time"

	"github.com/quellskin/quell/internal/models"
)

var (
	ErrMindsetNotStarted    = errors.New("mindset quiz not taken")
	ErrMindsetModuleUnknown = errors.New("mindset module unknown")
)

type MindsetService struct {
	profiles ProfileRecordRepository
}

func NewMindsetService(profiles ProfileRecordRepository) *MindsetService {
	return &MindsetService{profiles: profiles}
}

// FinishQuiz classifies the answers and replaces the stored mindset profile
// wholesale. Retakes reset progress by design.
func (service *MindsetService) FinishQuiz(userID uint, answers map[string]string, now time.Time) (models.MindsetProfile, error) {
	record, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.MindsetProfile{}, err
	}

	result := AnalyzeMindsetQuiz(answers)
	profile := NewMindsetProfile(result, answers, now)

	record.UserID = userID
	record.Mindset = &profile
	if record.BlendStatus == "" {
		record.BlendStatus = models.BlendActive
	}

	if found {
		err = service.profiles.Save(&record)
	} else {
		err = service.profiles.Create(&record)
	}
	if err != nil {
		return models.MindsetProfile{}, err
	}
	return profile, nil
}

func (service *MindsetService) GetMindset(userID uint) (models.MindsetProfile, error) {
	record, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.MindsetProfile{}, err
	}
	if !found || record.Mindset == nil {
		return models.MindsetProfile{}, ErrMindsetNotStarted
	}
	return *record.Mindset, nil
}

// CompleteDay records today's task. The bool reports whether the completion
// counted; repeating a day is a no-op, not an error.
func (service *MindsetService) CompleteDay(userID uint, now time.Time) (models.MindsetProfile, bool, error) {
	record, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.MindsetProfile{}, false, err
	}
	if !found || record.Mindset == nil {
		return models.MindsetProfile{}, false, ErrMindsetNotStarted
	}

	updated, changed := CompleteDailyTask(*record.Mindset, now)
	if !changed {
		return updated, false, nil
	}

	record.Mindset = &updated
	if err := service.profiles.Save(&record); err != nil {
		return models.MindsetProfile{}, false, err
	}
	return updated, true, nil
}

// SelectModule reassigns the active module, keeping quiz answers and streak.
func (service *MindsetService) SelectModule(userID uint, moduleID string) (models.MindsetProfile, error) {
	record, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.MindsetProfile{}, err
	}
	if !found || record.Mindset == nil {
		return models.MindsetProfile{}, ErrMindsetNotStarted
	}

	updated, ok := SwitchModule(*record.Mindset, moduleID)
	if !ok {
		return models.MindsetProfile{}, ErrMindsetModuleUnknown
	}

	record.Mindset = &updated
	if err := service.profiles.Save(&record); err != nil {
		return models.MindsetProfile{}, err
	}
	return updated, nil
}
