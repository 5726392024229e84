package services

import (
	"errors"

	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPlanEntryNotFound = errors.New("plan entry not found")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrInvalidPlanUpdate = errors.New("invalid plan update")
)

type PlanEntryRepository interface {
	ListByUser(userID string) ([]models.PlannedActivity, error)
	FindByIDForUser(entryID string, userID string) (models.PlannedActivity, error)
	Create(entry *models.PlannedActivity) error
	Save(entry *models.PlannedActivity) error
	DeleteByIDForUser(entryID string, userID string) (bool, error)
}

type PlanExerciseRepository interface {
	FindByID(exerciseID string) (models.Exercise, error)
}

type PlanService struct {
	plans     PlanEntryRepository
	exercises PlanExerciseRepository
}

func NewPlanService(plans PlanEntryRepository, exercises PlanExerciseRepository) *PlanService {
	return &PlanService{plans: plans, exercises: exercises}
}

// PlanSummary totals a plan for the day header.
type PlanSummary struct {
	TotalCalories        float64 `json:"totalCalories"`
	TotalDurationMinutes int     `json:"totalDurationMinutes"`
}

// PlanForUser returns the plan newest first with its totals.
// A degraded store reads as an empty plan.
func (service *PlanService) PlanForUser(userID string) ([]models.PlannedActivity, PlanSummary, error) {
	entries, err := service.plans.ListByUser(userID)
	if err != nil {
		return []models.PlannedActivity{}, PlanSummary{}, nil
	}

	var summary PlanSummary
	for _, entry := range entries {
		summary.TotalCalories += entry.CalculatedCalories
		summary.TotalDurationMinutes += entry.TargetDurationMinutes
	}
	return entries, summary, nil
}

// AddToPlan slots an exercise into the owner's plan with the library
// defaults: the exercise's duration, three sets of twelve, and calories
// derived from duration times the exercise's calories-per-minute.
func (service *PlanService) AddToPlan(owner models.User, exerciseID string) (models.PlannedActivity, error) {
	exercise, err := service.exercises.FindByID(exerciseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PlannedActivity{}, ErrExerciseNotFound
	}
	if err != nil {
		return models.PlannedActivity{}, err
	}

	entry := models.PlannedActivity{
		ID:                    newID("pl"),
		UserID:                owner.ID,
		ExerciseID:            exercise.ID,
		CustomName:            exercise.Name,
		TargetDurationMinutes: exercise.DefaultDurationMinutes,
		TargetQty:             3,
		TargetReps:            12,
		CalculatedCalories:    float64(exercise.DefaultDurationMinutes) * exercise.DefaultCaloriesPerMinute,
	}
	if err := service.plans.Create(&entry); err != nil {
		return models.PlannedActivity{}, err
	}
	return entry, nil
}

// PlanUpdate carries the fields a member may edit. Nil fields are left
// untouched.
type PlanUpdate struct {
	CustomName            *string
	TargetDurationMinutes *int
	TargetQty             *int
	TargetReps            *int
	Completed             *bool
}

// UpdateEntry applies the edit. Changing the target duration recomputes
// the calorie estimate from the exercise's calories-per-minute; every
// other edit leaves the estimate as it was.
func (service *PlanService) UpdateEntry(owner models.User, entryID string, update PlanUpdate) (models.PlannedActivity, error) {
	entry, err := service.plans.FindByIDForUser(entryID, owner.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PlannedActivity{}, ErrPlanEntryNotFound
	}
	if err != nil {
		return models.PlannedActivity{}, err
	}

	if update.CustomName != nil {
		entry.CustomName = *update.CustomName
	}
	if update.TargetQty != nil {
		entry.TargetQty = *update.TargetQty
	}
	if update.TargetReps != nil {
		entry.TargetReps = *update.TargetReps
	}
	if update.Completed != nil {
		entry.Completed = *update.Completed
	}
	if update.TargetDurationMinutes != nil {
		if *update.TargetDurationMinutes <= 0 {
			return models.PlannedActivity{}, ErrInvalidPlanUpdate
		}
		exercise, err := service.exercises.FindByID(entry.ExerciseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PlannedActivity{}, ErrExerciseNotFound
		}
		if err != nil {
			return models.PlannedActivity{}, err
		}
		entry.TargetDurationMinutes = *update.TargetDurationMinutes
		entry.CalculatedCalories = float64(*update.TargetDurationMinutes) * exercise.DefaultCaloriesPerMinute
	}

	if err := service.plans.Save(&entry); err != nil {
		return models.PlannedActivity{}, err
	}
	return entry, nil
}

func (service *PlanService) RemoveEntry(owner models.User, entryID string) error {
	removed, err := service.plans.DeleteByIDForUser(entryID, owner.ID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrPlanEntryNotFound
	}
	return nil
}
