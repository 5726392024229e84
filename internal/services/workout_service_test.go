package services

import (
	"errors"
	"testing"
	"time"

	"github.com/hypergym/hypergym/internal/models"
)

type workoutRepositoryStub struct {
	sessions  []models.WorkoutSession
	listErr   error
	createErr error
	created   []models.WorkoutSession
}

func (stub *workoutRepositoryStub) List() ([]models.WorkoutSession, error) {
	return stub.sessions, stub.listErr
}

func (stub *workoutRepositoryStub) CreateWithReward(session *models.WorkoutSession) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.created = append(stub.created, *session)
	return nil
}

func TestLogWorkoutStampsOwnerBranchAndXP(t *testing.T) {
	stub := &workoutRepositoryStub{}
	service := NewWorkoutService(stub)
	member := models.User{ID: "u_mem_1", Role: models.RoleMember, BranchID: "b_nyc_01"}

	session, err := service.LogWorkout(member, WorkoutInput{
		Type:            models.WorkoutStrength,
		DurationMinutes: 60,
		CaloriesBurned:  450,
		Notes:           "leg day",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.UserID != "u_mem_1" || session.BranchID != "b_nyc_01" {
		t.Fatalf("expected owner stamping, got user %s branch %s", session.UserID, session.BranchID)
	}
	if session.XPEarned != 135 {
		t.Fatalf("expected 135 XP, got %d", session.XPEarned)
	}
	if session.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if session.Date.IsZero() {
		t.Fatal("expected a defaulted date")
	}
	if len(stub.created) != 1 {
		t.Fatalf("expected one persisted session, got %d", len(stub.created))
	}
}

func TestLogWorkoutKeepsExplicitDate(t *testing.T) {
	stub := &workoutRepositoryStub{}
	service := NewWorkoutService(stub)
	date := time.Date(2026, 8, 30, 7, 0, 0, 0, time.UTC)

	session, err := service.LogWorkout(models.User{ID: "u_mem_1"}, WorkoutInput{
		Date:            date,
		Type:            models.WorkoutCardio,
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.Date.Equal(date) {
		t.Fatalf("expected date %v, got %v", date, session.Date)
	}
}

func TestLogWorkoutRejectsInvalidInput(t *testing.T) {
	stub := &workoutRepositoryStub{}
	service := NewWorkoutService(stub)
	member := models.User{ID: "u_mem_1"}

	cases := []struct {
		name  string
		input WorkoutInput
	}{
		{name: "unknown type", input: WorkoutInput{Type: "Yoga", DurationMinutes: 30}},
		{name: "zero duration", input: WorkoutInput{Type: models.WorkoutHIIT, DurationMinutes: 0}},
		{name: "negative calories", input: WorkoutInput{Type: models.WorkoutHIIT, DurationMinutes: 30, CaloriesBurned: -1}},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.LogWorkout(member, testCase.input); !errors.Is(err, ErrInvalidWorkout) {
				t.Fatalf("expected ErrInvalidWorkout, got %v", err)
			}
		})
	}

	if len(stub.created) != 0 {
		t.Fatalf("expected no persisted sessions, got %d", len(stub.created))
	}
}

func TestLogWorkoutPropagatesWriteFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	service := NewWorkoutService(&workoutRepositoryStub{createErr: storeErr})

	_, err := service.LogWorkout(models.User{ID: "u_mem_1"}, WorkoutInput{
		Type:            models.WorkoutStrength,
		DurationMinutes: 20,
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected write failure to surface, got %v", err)
	}
}

func TestVisibleWorkoutsDegradesToEmptyOnStoreFailure(t *testing.T) {
	service := NewWorkoutService(&workoutRepositoryStub{listErr: errors.New("store down")})

	sessions, err := service.VisibleWorkouts(models.User{ID: "u_admin_1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("expected read failure to degrade, got error %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected empty list, got %d", len(sessions))
	}
}
