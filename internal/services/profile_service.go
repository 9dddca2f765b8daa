package services

import (
	"errors"

	"github.com/quellskin/quell/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRecordRepository interface {
	FindByUserID(userID uint) (models.ProfileRecord, bool, error)
	Create(record *models.ProfileRecord) error
	Save(record *models.ProfileRecord) error
}

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type ProfileService struct {
	profiles ProfileRecordRepository
	users    ProfileUserRepository
}

func NewProfileService(profiles ProfileRecordRepository, users ProfileUserRepository) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		users:    users,
	}
}

// SubmitQuestionnaire stores the questionnaire snapshot and replaces every
// derived document: the engine re-runs and the previous computed profile and
// blend formula are discarded wholesale. First submission completes
// onboarding.
func (service *ProfileService) SubmitQuestionnaire(userID uint, data models.QuestionnaireData) (models.ProfileRecord, error) {
	normalized := NormalizeQuestionnaire(data)
	computed := RunLogicEngine(normalized)
	formula := BuildBlendFormula(computed.SupplementProtocol)

	record, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.ProfileRecord{}, err
	}

	record.UserID = userID
	record.Questionnaire = &normalized
	record.Computed = &computed
	record.BlendFormula = &formula
	if record.BlendStatus == "" {
		record.BlendStatus = models.BlendActive
	}

	if found {
		err = service.profiles.Save(&record)
	} else {
		err = service.profiles.Create(&record)
	}
	if err != nil {
		return models.ProfileRecord{}, err
	}

	if err := service.users.UpdateByID(userID, map[string]any{"onboarding_completed": true}); err != nil {
		return models.ProfileRecord{}, err
	}
	return record, nil
}

func (service *ProfileService) GetProfile(userID uint) (models.ProfileRecord, error) {
	record, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.ProfileRecord{}, err
	}
	if !found {
		return models.ProfileRecord{}, ErrProfileNotFound
	}
	return record, nil
}
