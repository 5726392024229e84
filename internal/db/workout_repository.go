package db

import (
	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) List() ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	if err := repo.database.Order("date DESC, id").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *WorkoutRepository) ListByBranch(branchID string) ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	if err := repo.database.Where("branch_id = ?", branchID).
		Order("date DESC, id").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *WorkoutRepository) ListByUser(userID string) ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("date DESC, id").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateWithReward inserts the session and applies its XP to the owner
// in one transaction. The points/streak bump is a single statement, so
// concurrent writers cannot lose each other's increments.
func (repo *WorkoutRepository) CreateWithReward(session *models.WorkoutSession) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", session.UserID).
			Updates(map[string]any{
				"points":      gorm.Expr("points + ?", session.XPEarned),
				"streak_days": gorm.Expr("streak_days + 1"),
				"version":     gorm.Expr("version + 1"),
			}).Error
	})
}
