package services

import (
	"errors"

	"github.com/quellskin/quell/internal/content"
	"github.com/quellskin/quell/internal/models"
)

var ErrBlendStatusInvalid = errors.New("blend status invalid")

// BuildBlendFormula derives the orderable blend from the phase 1 protocol:
// every immediate-phase ingredient becomes an additive with its catalog dose.
func BuildBlendFormula(protocol models.SupplementProtocol) models.BlendFormula {
	additives := make([]models.BlendAdditive, 0, len(protocol.Phase1))
	for _, name := range protocol.Phase1 {
		additives = append(additives, models.BlendAdditive{
			Name: name,
			Dose: content.IngredientDose(name),
		})
	}
	return models.BlendFormula{
		Base:      content.BlendBase,
		Additives: additives,
		Flavor:    content.BlendFlavors()[0],
	}
}

type BlendService struct {
	profiles ProfileRecordRepository
}

func NewBlendService(profiles ProfileRecordRepository) *BlendService {
	return &BlendService{profiles: profiles}
}

// PlaceOrder marks the current blend as ordered, optionally renaming it and
// switching the flavor.
func (service *BlendService) PlaceOrder(userID uint, blendName string, flavor string) (models.ProfileRecord, error) {
	record, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.ProfileRecord{}, err
	}
	if !found {
		return models.ProfileRecord{}, ErrProfileNotFound
	}

	if blendName != "" {
		record.BlendName = blendName
		if record.BlendFormula != nil {
			record.BlendFormula.Name = blendName
		}
	}
	if flavor != "" && record.BlendFormula != nil {
		record.BlendFormula.Flavor = flavor
	}
	record.BlendStatus = models.BlendOrdered

	if err := service.profiles.Save(&record); err != nil {
		return models.ProfileRecord{}, err
	}
	return record, nil
}

// UpdateStatus moves the blend through its fulfillment states.
func (service *BlendService) UpdateStatus(userID uint, status string) (models.ProfileRecord, error) {
	if !IsValidBlendStatus(status) {
		return models.ProfileRecord{}, ErrBlendStatusInvalid
	}

	record, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.ProfileRecord{}, err
	}
	if !found {
		return models.ProfileRecord{}, ErrProfileNotFound
	}

	record.BlendStatus = status
	if err := service.profiles.Save(&record); err != nil {
		return models.ProfileRecord{}, err
	}
	return record, nil
}

func IsValidBlendStatus(status string) bool {
	switch status {
	case models.BlendActive, models.BlendOrdered, models.BlendShipped:
		return true
	default:
		return false
	}
}
