package services

import (
	"errors"

	"github.com/hypergym/hypergym/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUserRepository interface {
	List() ([]models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate resolves an e-mail (case-insensitively) and checks the
// password. Members come back annotated with their current branch rank,
// so the first post-login render has it without a second round trip.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(models.NormalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if user.Role == models.RoleMember {
		if allUsers, listErr := service.users.List(); listErr == nil {
			user.Rank = BranchRank(allUsers, user)
		}
	}
	return user, nil
}
