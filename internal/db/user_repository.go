package db

import (
	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// List returns every user in stored order. Rank ties are broken by this
// order, so it must stay deterministic across reads.
func (repo *UserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("created_at, id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, "id = ?", userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Replace overwrites the full record by identifier, guarded by the
// version counter. Returns the number of rows written: 0 means the id
// does not exist or another writer got there first.
func (repo *UserRepository) Replace(user models.User, expectedVersion int) (int64, error) {
	result := repo.database.Model(&models.User{}).
		Where("id = ? AND version = ?", user.ID, expectedVersion).
		Updates(map[string]any{
			"name":              user.Name,
			"email":             user.Email,
			"role":              user.Role,
			"branch_id":         user.BranchID,
			"assigned_coach_id": user.AssignedCoachID,
			"avatar_url":        user.AvatarURL,
			"points":            user.Points,
			"streak_days":       user.StreakDays,
			"version":           expectedVersion + 1,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (repo *UserRepository) Exists(userID string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).Where("id = ?", userID).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) UpdateAvatarURL(userID string, avatarURL string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"avatar_url": avatarURL,
		"version":    gorm.Expr("version + 1"),
	}).Error
}
