package services

import (
	"errors"
	"time"

	"github.com/hypergym/hypergym/internal/models"
)

var ErrInvalidWorkout = errors.New("invalid workout input")

type WorkoutSessionRepository interface {
	List() ([]models.WorkoutSession, error)
	CreateWithReward(session *models.WorkoutSession) error
}

type WorkoutService struct {
	workouts WorkoutSessionRepository
}

func NewWorkoutService(workouts WorkoutSessionRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

// VisibleWorkouts applies the role filter to the session history.
// A degraded store reads as an empty history.
func (service *WorkoutService) VisibleWorkouts(requester models.User) ([]models.WorkoutSession, error) {
	allSessions, err := service.workouts.List()
	if err != nil {
		return []models.WorkoutSession{}, nil
	}
	return VisibleWorkouts(allSessions, requester), nil
}

type WorkoutInput struct {
	Date            time.Time
	Type            string
	DurationMinutes int
	CaloriesBurned  int
	Notes           string
}

// LogWorkout records a session for the requester and rewards it: the
// owner's points grow by the session XP and the streak counter by one.
// Every logged workout extends the streak; there is no calendar check.
func (service *WorkoutService) LogWorkout(requester models.User, input WorkoutInput) (models.WorkoutSession, error) {
	if !models.ValidWorkoutType(input.Type) {
		return models.WorkoutSession{}, ErrInvalidWorkout
	}
	if input.DurationMinutes <= 0 || input.CaloriesBurned < 0 {
		return models.WorkoutSession{}, ErrInvalidWorkout
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	session := models.WorkoutSession{
		ID:              newID("w"),
		UserID:          requester.ID,
		BranchID:        requester.BranchID,
		Date:            date,
		Type:            input.Type,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		Notes:           input.Notes,
		XPEarned:        WorkoutXP(input.DurationMinutes, input.CaloriesBurned),
	}

	if err := service.workouts.CreateWithReward(&session); err != nil {
		return models.WorkoutSession{}, err
	}
	return session, nil
}
