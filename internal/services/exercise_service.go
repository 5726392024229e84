package services

import (
	"errors"
	"strings"

	"github.com/hypergym/hypergym/internal/models"
)

var ErrInvalidExercise = errors.New("invalid exercise input")

type ExerciseLibrary interface {
	ListVisibleToBranch(branchID string) ([]models.Exercise, error)
	Create(exercise *models.Exercise) error
}

type ExerciseService struct {
	exercises ExerciseLibrary
}

func NewExerciseService(exercises ExerciseLibrary) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

// ExercisesForBranch returns the default library plus the branch's
// custom entries. A degraded store reads as an empty library.
func (service *ExerciseService) ExercisesForBranch(branchID string) ([]models.Exercise, error) {
	exercises, err := service.exercises.ListVisibleToBranch(branchID)
	if err != nil {
		return []models.Exercise{}, nil
	}
	return exercises, nil
}

type ExerciseInput struct {
	Name                     string
	Description              string
	DefaultCaloriesPerMinute float64
	DefaultDurationMinutes   int
	Level                    string
	Type                     string
	ImageURL                 string
}

// CreateExercise adds a custom entry to the creator's branch library.
// Names are not required to be unique within a branch.
func (service *ExerciseService) CreateExercise(creator models.User, input ExerciseInput) (models.Exercise, error) {
	if strings.TrimSpace(input.Name) == "" {
		return models.Exercise{}, ErrInvalidExercise
	}
	if input.DefaultCaloriesPerMinute <= 0 || input.DefaultDurationMinutes <= 0 {
		return models.Exercise{}, ErrInvalidExercise
	}
	if !models.ValidExerciseLevel(input.Level) || !models.ValidExerciseType(input.Type) {
		return models.Exercise{}, ErrInvalidExercise
	}

	exercise := models.Exercise{
		ID:                       newID("ex"),
		BranchID:                 creator.BranchID,
		Name:                     input.Name,
		Description:              input.Description,
		DefaultCaloriesPerMinute: input.DefaultCaloriesPerMinute,
		DefaultDurationMinutes:   input.DefaultDurationMinutes,
		Level:                    input.Level,
		Type:                     input.Type,
		ImageURL:                 input.ImageURL,
	}
	if err := service.exercises.Create(&exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}
