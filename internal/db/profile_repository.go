package db

import (
	"github.com/quellskin/quell/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// FindByUserID loads the user's profile record. The second return reports
// whether a record exists; absence is not an error.
func (repo *ProfileRepository) FindByUserID(userID uint) (models.ProfileRecord, bool, error) {
	record := models.ProfileRecord{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.ProfileRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ProfileRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *ProfileRepository) Create(record *models.ProfileRecord) error {
	return repo.database.Create(record).Error
}

func (repo *ProfileRepository) Save(record *models.ProfileRecord) error {
	return repo.database.Save(record).Error
}
