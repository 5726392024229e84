package db

import (
	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

// ListVisibleToBranch returns the shared default library plus the
// branch's own custom exercises.
func (repo *ExerciseRepository) ListVisibleToBranch(branchID string) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.
		Where("branch_id = ? OR branch_id = ?", branchID, models.GlobalBranchID).
		Order("id").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) FindByID(exerciseID string) (models.Exercise, error) {
	var exercise models.Exercise
	if err := repo.database.First(&exercise, "id = ?", exerciseID).Error; err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *ExerciseRepository) CountExercises() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Exercise{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
