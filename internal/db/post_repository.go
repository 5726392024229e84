package db

import (
	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type PostRepository struct {
	database *gorm.DB
}

func NewPostRepository(database *gorm.DB) *PostRepository {
	return &PostRepository{database: database}
}

func (repo *PostRepository) ListByBranch(branchID string) ([]models.CommunityPost, error) {
	posts := make([]models.CommunityPost, 0)
	if err := repo.database.Where("branch_id = ?", branchID).
		Order("timestamp DESC, id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepository) FindByID(postID string) (models.CommunityPost, error) {
	var post models.CommunityPost
	if err := repo.database.First(&post, "id = ?", postID).Error; err != nil {
		return models.CommunityPost{}, err
	}
	return post, nil
}

func (repo *PostRepository) Create(post *models.CommunityPost) error {
	return repo.database.Create(post).Error
}

// IncrementLikes bumps the like counter in place and reports whether
// the post exists.
func (repo *PostRepository) IncrementLikes(postID string) (bool, error) {
	result := repo.database.Model(&models.CommunityPost{}).
		Where("id = ?", postID).
		Update("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
