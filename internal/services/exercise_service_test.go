package services

import (
	"errors"
	"testing"

	"github.com/hypergym/hypergym/internal/models"
)

type exerciseLibraryStub struct {
	exercises []models.Exercise
	listErr   error
}

func (stub *exerciseLibraryStub) ListVisibleToBranch(branchID string) ([]models.Exercise, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	visible := make([]models.Exercise, 0)
	for _, exercise := range stub.exercises {
		if exercise.BranchID == models.GlobalBranchID || exercise.BranchID == branchID {
			visible = append(visible, exercise)
		}
	}
	return visible, nil
}

func (stub *exerciseLibraryStub) Create(exercise *models.Exercise) error {
	stub.exercises = append(stub.exercises, *exercise)
	return nil
}

func TestExercisesForBranchMergesGlobalAndCustom(t *testing.T) {
	stub := &exerciseLibraryStub{exercises: []models.Exercise{
		{ID: "ex_1", BranchID: models.GlobalBranchID, Name: "Treadmill Run"},
		{ID: "ex_custom", BranchID: "b_nyc_01", Name: "Rope Circuit"},
		{ID: "ex_other", BranchID: "b_la_01", Name: "Beach Sprint"},
	}}
	service := NewExerciseService(stub)

	exercises, err := service.ExercisesForBranch("b_nyc_01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exercises) != 2 {
		t.Fatalf("expected global plus own custom, got %d exercises", len(exercises))
	}
	for _, exercise := range exercises {
		if exercise.ID == "ex_other" {
			t.Fatal("saw another branch's custom exercise")
		}
	}
}

func TestCreateExerciseStampsCreatorBranch(t *testing.T) {
	stub := &exerciseLibraryStub{}
	service := NewExerciseService(stub)
	coach := models.User{ID: "u_coach_1", Role: models.RoleCoach, BranchID: "b_nyc_01"}

	exercise, err := service.CreateExercise(coach, ExerciseInput{
		Name:                     "Rope Circuit",
		DefaultCaloriesPerMinute: 12,
		DefaultDurationMinutes:   15,
		Level:                    models.ExerciseLevelIntermediate,
		Type:                     models.ExerciseTypeCardio,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exercise.BranchID != "b_nyc_01" {
		t.Fatalf("expected the creator's branch, got %q", exercise.BranchID)
	}
}

func TestCreateExerciseValidation(t *testing.T) {
	service := NewExerciseService(&exerciseLibraryStub{})
	coach := models.User{ID: "u_coach_1", BranchID: "b_nyc_01"}

	valid := ExerciseInput{
		Name:                     "Rope Circuit",
		DefaultCaloriesPerMinute: 12,
		DefaultDurationMinutes:   15,
		Level:                    models.ExerciseLevelIntermediate,
		Type:                     models.ExerciseTypeCardio,
	}

	cases := []struct {
		name string
		edit func(input *ExerciseInput)
	}{
		{name: "blank name", edit: func(input *ExerciseInput) { input.Name = "  " }},
		{name: "zero calories per minute", edit: func(input *ExerciseInput) { input.DefaultCaloriesPerMinute = 0 }},
		{name: "zero duration", edit: func(input *ExerciseInput) { input.DefaultDurationMinutes = 0 }},
		{name: "unknown level", edit: func(input *ExerciseInput) { input.Level = "Legend" }},
		{name: "unknown type", edit: func(input *ExerciseInput) { input.Type = "Swimming" }},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			input := valid
			testCase.edit(&input)
			if _, err := service.CreateExercise(coach, input); !errors.Is(err, ErrInvalidExercise) {
				t.Fatalf("expected ErrInvalidExercise, got %v", err)
			}
		})
	}
}
