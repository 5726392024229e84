package db

import (
	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type BranchRepository struct {
	database *gorm.DB
}

func NewBranchRepository(database *gorm.DB) *BranchRepository {
	return &BranchRepository{database: database}
}

func (repo *BranchRepository) List() ([]models.Branch, error) {
	branches := make([]models.Branch, 0)
	if err := repo.database.Order("id").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (repo *BranchRepository) FindByID(branchID string) (models.Branch, error) {
	var branch models.Branch
	if err := repo.database.First(&branch, "id = ?", branchID).Error; err != nil {
		return models.Branch{}, err
	}
	return branch, nil
}

func (repo *BranchRepository) CountBranches() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Branch{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
