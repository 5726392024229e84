package services

import (
	"errors"
	"strings"
	"time"

	"github.com/hypergym/hypergym/internal/models"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrEmptyPostContent = errors.New("post content is empty")
)

type CommunityPostRepository interface {
	ListByBranch(branchID string) ([]models.CommunityPost, error)
	Create(post *models.CommunityPost) error
	IncrementLikes(postID string) (bool, error)
}

type PostService struct {
	posts CommunityPostRepository
}

func NewPostService(posts CommunityPostRepository) *PostService {
	return &PostService{posts: posts}
}

// VisiblePosts returns the requester's branch feed, newest first.
// Branch isolation is absolute: no role sees another branch's posts.
// A degraded store reads as an empty feed.
func (service *PostService) VisiblePosts(requester models.User) ([]models.CommunityPost, error) {
	posts, err := service.posts.ListByBranch(requester.BranchID)
	if err != nil {
		return []models.CommunityPost{}, nil
	}
	return posts, nil
}

func (service *PostService) AddPost(author models.User, content string, imageURL string) (models.CommunityPost, error) {
	if strings.TrimSpace(content) == "" {
		return models.CommunityPost{}, ErrEmptyPostContent
	}

	post := models.CommunityPost{
		ID:        newID("p"),
		AuthorID:  author.ID,
		BranchID:  author.BranchID,
		Content:   content,
		Timestamp: time.Now(),
		ImageURL:  imageURL,
	}
	if err := service.posts.Create(&post); err != nil {
		return models.CommunityPost{}, err
	}
	return post, nil
}

func (service *PostService) LikePost(postID string) error {
	liked, err := service.posts.IncrementLikes(postID)
	if err != nil {
		return err
	}
	if !liked {
		return ErrPostNotFound
	}
	return nil
}
