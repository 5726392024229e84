package services

import (
	"errors"

	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrVersionConflict  = errors.New("user version conflict")
	ErrInvalidUserInput = errors.New("invalid user input")
)

type RosterUserRepository interface {
	List() ([]models.User, error)
	FindByID(userID string) (models.User, error)
	Exists(userID string) (bool, error)
	Replace(user models.User, expectedVersion int) (int64, error)
}

type UserService struct {
	users RosterUserRepository
}

func NewUserService(users RosterUserRepository) *UserService {
	return &UserService{users: users}
}

// VisibleUsers narrows the roster to what the requester's role may see.
// A degraded store reads as an empty roster.
func (service *UserService) VisibleUsers(requester models.User) ([]models.User, error) {
	allUsers, err := service.users.List()
	if err != nil {
		return []models.User{}, nil
	}
	return VisibleUsers(allUsers, requester), nil
}

func (service *UserService) FindByID(userID string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser replaces the stored record wholesale. The write is guarded
// by the record's version: a concurrent update between read and write
// surfaces as ErrVersionConflict instead of silently losing one side.
func (service *UserService) UpdateUser(updated models.User) (models.User, error) {
	if updated.ID == "" || updated.Name == "" || models.NormalizeEmail(updated.Email) == "" {
		return models.User{}, ErrInvalidUserInput
	}
	if !models.ValidRole(updated.Role) {
		return models.User{}, ErrInvalidUserInput
	}

	current, err := service.users.FindByID(updated.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	written, err := service.users.Replace(updated, current.Version)
	if err != nil {
		return models.User{}, err
	}
	if written == 0 {
		stillExists, existsErr := service.users.Exists(updated.ID)
		if existsErr != nil {
			return models.User{}, existsErr
		}
		if !stillExists {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, ErrVersionConflict
	}

	updated.Version = current.Version + 1
	return updated, nil
}
