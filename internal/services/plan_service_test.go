package services

import (
	"errors"
	"testing"

	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type planRepositoryStub struct {
	entries map[string]models.PlannedActivity
}

func newPlanRepositoryStub() *planRepositoryStub {
	return &planRepositoryStub{entries: make(map[string]models.PlannedActivity)}
}

func (stub *planRepositoryStub) ListByUser(userID string) ([]models.PlannedActivity, error) {
	owned := make([]models.PlannedActivity, 0)
	for _, entry := range stub.entries {
		if entry.UserID == userID {
			owned = append(owned, entry)
		}
	}
	return owned, nil
}

func (stub *planRepositoryStub) FindByIDForUser(entryID string, userID string) (models.PlannedActivity, error) {
	entry, ok := stub.entries[entryID]
	if !ok || entry.UserID != userID {
		return models.PlannedActivity{}, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (stub *planRepositoryStub) Create(entry *models.PlannedActivity) error {
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *planRepositoryStub) Save(entry *models.PlannedActivity) error {
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *planRepositoryStub) DeleteByIDForUser(entryID string, userID string) (bool, error) {
	entry, ok := stub.entries[entryID]
	if !ok || entry.UserID != userID {
		return false, nil
	}
	delete(stub.entries, entryID)
	return true, nil
}

type exerciseFinderStub struct {
	exercises map[string]models.Exercise
}

func (stub *exerciseFinderStub) FindByID(exerciseID string) (models.Exercise, error) {
	exercise, ok := stub.exercises[exerciseID]
	if !ok {
		return models.Exercise{}, gorm.ErrRecordNotFound
	}
	return exercise, nil
}

func planFixture() (*PlanService, *planRepositoryStub) {
	plans := newPlanRepositoryStub()
	exercises := &exerciseFinderStub{exercises: map[string]models.Exercise{
		"ex_1": {
			ID:                       "ex_1",
			Name:                     "Treadmill Run",
			DefaultCaloriesPerMinute: 10,
			DefaultDurationMinutes:   30,
		},
	}}
	return NewPlanService(plans, exercises), plans
}

func intValue(value int) *int {
	return &value
}

func stringValue(value string) *string {
	return &value
}

func boolValue(value bool) *bool {
	return &value
}

func TestAddToPlanAppliesLibraryDefaults(t *testing.T) {
	service, _ := planFixture()
	owner := models.User{ID: "u_mem_1"}

	entry, err := service.AddToPlan(owner, "ex_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.CustomName != "Treadmill Run" {
		t.Fatalf("expected the exercise name, got %s", entry.CustomName)
	}
	if entry.TargetDurationMinutes != 30 || entry.TargetQty != 3 || entry.TargetReps != 12 {
		t.Fatalf("expected defaults 30/3/12, got %d/%d/%d", entry.TargetDurationMinutes, entry.TargetQty, entry.TargetReps)
	}
	if entry.CalculatedCalories != 300 {
		t.Fatalf("expected 300 calories, got %v", entry.CalculatedCalories)
	}
}

func TestAddToPlanUnknownExercise(t *testing.T) {
	service, _ := planFixture()

	if _, err := service.AddToPlan(models.User{ID: "u_mem_1"}, "ex_ghost"); !errors.Is(err, ErrExerciseNotFound) {
		t.Fatalf("expected ErrExerciseNotFound, got %v", err)
	}
}

func TestUpdateEntryRecalculatesCaloriesOnlyOnDurationChange(t *testing.T) {
	service, _ := planFixture()
	owner := models.User{ID: "u_mem_1"}

	entry, err := service.AddToPlan(owner, "ex_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A rename leaves the estimate alone.
	renamed, err := service.UpdateEntry(owner, entry.ID, PlanUpdate{CustomName: stringValue("Morning Run")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renamed.CalculatedCalories != 300 {
		t.Fatalf("expected calories unchanged at 300, got %v", renamed.CalculatedCalories)
	}

	// Changing the duration recomputes it.
	longer, err := service.UpdateEntry(owner, entry.ID, PlanUpdate{TargetDurationMinutes: intValue(45)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if longer.CalculatedCalories != 450 {
		t.Fatalf("expected recalculated 450 calories, got %v", longer.CalculatedCalories)
	}
	if longer.CustomName != "Morning Run" {
		t.Fatalf("expected earlier rename kept, got %s", longer.CustomName)
	}
}

func TestUpdateEntryRejectsNonPositiveDuration(t *testing.T) {
	service, _ := planFixture()
	owner := models.User{ID: "u_mem_1"}

	entry, err := service.AddToPlan(owner, "ex_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.UpdateEntry(owner, entry.ID, PlanUpdate{TargetDurationMinutes: intValue(0)}); !errors.Is(err, ErrInvalidPlanUpdate) {
		t.Fatalf("expected ErrInvalidPlanUpdate, got %v", err)
	}
}

func TestUpdateEntryScopedToOwner(t *testing.T) {
	service, _ := planFixture()
	owner := models.User{ID: "u_mem_1"}
	other := models.User{ID: "u_mem_2"}

	entry, err := service.AddToPlan(owner, "ex_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.UpdateEntry(other, entry.ID, PlanUpdate{Completed: boolValue(true)}); !errors.Is(err, ErrPlanEntryNotFound) {
		t.Fatalf("expected ErrPlanEntryNotFound for another owner, got %v", err)
	}
}

func TestRemoveEntry(t *testing.T) {
	service, plans := planFixture()
	owner := models.User{ID: "u_mem_1"}

	entry, err := service.AddToPlan(owner, "ex_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.RemoveEntry(owner, entry.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans.entries) != 0 {
		t.Fatalf("expected empty plan, got %d entries", len(plans.entries))
	}

	if err := service.RemoveEntry(owner, entry.ID); !errors.Is(err, ErrPlanEntryNotFound) {
		t.Fatalf("expected ErrPlanEntryNotFound on repeat delete, got %v", err)
	}
}

func TestPlanForUserSumsTotals(t *testing.T) {
	service, _ := planFixture()
	owner := models.User{ID: "u_mem_1"}

	if _, err := service.AddToPlan(owner, "ex_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.AddToPlan(owner, "ex_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, summary, err := service.PlanForUser(owner.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if summary.TotalCalories != 600 || summary.TotalDurationMinutes != 60 {
		t.Fatalf("expected totals 600/60, got %v/%d", summary.TotalCalories, summary.TotalDurationMinutes)
	}
}
