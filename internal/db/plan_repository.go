package db

import (
	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) ListByUser(userID string) ([]models.PlannedActivity, error) {
	entries := make([]models.PlannedActivity, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("created_at DESC, id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *PlanRepository) FindByIDForUser(entryID string, userID string) (models.PlannedActivity, error) {
	var entry models.PlannedActivity
	if err := repo.database.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return models.PlannedActivity{}, err
	}
	return entry, nil
}

func (repo *PlanRepository) Create(entry *models.PlannedActivity) error {
	return repo.database.Create(entry).Error
}

func (repo *PlanRepository) Save(entry *models.PlannedActivity) error {
	return repo.database.Save(entry).Error
}

func (repo *PlanRepository) DeleteByIDForUser(entryID string, userID string) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.PlannedActivity{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
