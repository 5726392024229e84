package db

import (
	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type BodyLogRepository struct {
	database *gorm.DB
}

func NewBodyLogRepository(database *gorm.DB) *BodyLogRepository {
	return &BodyLogRepository{database: database}
}

func (repo *BodyLogRepository) ListByUser(userID string) ([]models.BodyLog, error) {
	logs := make([]models.BodyLog, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("date DESC, id").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByBranchAscending returns every log of a branch ordered oldest
// first, the order fat-loss deltas are computed in.
func (repo *BodyLogRepository) ListByBranchAscending(branchID string) ([]models.BodyLog, error) {
	logs := make([]models.BodyLog, 0)
	if err := repo.database.Where("branch_id = ?", branchID).
		Order("date, id").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *BodyLogRepository) Create(bodyLog *models.BodyLog) error {
	return repo.database.Create(bodyLog).Error
}
