package db

import (
	"fmt"
	"time"

	"github.com/hypergym/hypergym/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaults populates every empty collection with its default
// fixtures. Seeding is idempotent: populated tables are never touched,
// so user data survives restarts. demoPassword is the shared password
// of the demo accounts.
func SeedDefaults(database *gorm.DB, demoPassword string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return database.Transaction(func(tx *gorm.DB) error {
		if err := seedTableIfEmpty(tx, &models.Branch{}, defaultBranches()); err != nil {
			return fmt.Errorf("seed branches: %w", err)
		}
		if err := seedTableIfEmpty(tx, &models.User{}, defaultUsers(string(passwordHash))); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if err := seedTableIfEmpty(tx, &models.Exercise{}, defaultExercises()); err != nil {
			return fmt.Errorf("seed exercises: %w", err)
		}
		if err := seedTableIfEmpty(tx, &models.WorkoutSession{}, defaultWorkouts()); err != nil {
			return fmt.Errorf("seed workouts: %w", err)
		}
		if err := seedTableIfEmpty(tx, &models.CommunityPost{}, defaultPosts()); err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		if err := seedTableIfEmpty(tx, &models.BodyLog{}, defaultBodyLogs()); err != nil {
			return fmt.Errorf("seed body logs: %w", err)
		}
		return nil
	})
}

func seedTableIfEmpty[T any](tx *gorm.DB, model *T, defaults []T) error {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if len(defaults) == 0 {
		return nil
	}
	return tx.Create(defaults).Error
}

func defaultBranches() []models.Branch {
	return []models.Branch{
		{ID: "b_nyc_01", Name: "Metro Iron NYC", Location: "New York, NY", ActiveMembers: 1240},
		{ID: "b_la_01", Name: "Venice Beach Prime", Location: "Los Angeles, CA", ActiveMembers: 890},
	}
}

func defaultUsers(passwordHash string) []models.User {
	now := time.Now()
	users := []models.User{
		{ID: "u_admin_1", Name: "Zeus Commander", Email: "admin@hyper.com", Role: models.RoleAdmin, BranchID: "b_nyc_01", AvatarURL: "https://picsum.photos/seed/admin1/150/150"},
		{ID: "u_coach_1", Name: "Jax Briggs", Email: "jax@hyper.com", Role: models.RoleCoach, BranchID: "b_nyc_01", AvatarURL: "https://picsum.photos/seed/coach1/150/150"},
		{ID: "u_coach_2", Name: "Raiden Storm", Email: "raiden@hyper.com", Role: models.RoleCoach, BranchID: "b_la_01", AvatarURL: "https://picsum.photos/seed/coach2/150/150"},
		{ID: "u_mem_1", Name: "Johnny Cage", Email: "johnny@gmail.com", Role: models.RoleMember, BranchID: "b_nyc_01", AssignedCoachID: "u_coach_1", Points: 2450, StreakDays: 12},
		{ID: "u_mem_2", Name: "Liu Kang", Email: "liu@gmail.com", Role: models.RoleMember, BranchID: "b_nyc_01", AssignedCoachID: "u_coach_1", Points: 3100, StreakDays: 24},
		{ID: "u_mem_3", Name: "Kung Lao", Email: "kung@gmail.com", Role: models.RoleMember, BranchID: "b_la_01", AssignedCoachID: "u_coach_2", Points: 1200, StreakDays: 3},
		{ID: "u_mem_4", Name: "Sonya Blade", Email: "sonya@gmail.com", Role: models.RoleMember, BranchID: "b_nyc_01", AssignedCoachID: "u_coach_1", Points: 4100, StreakDays: 45},
	}
	for index := range users {
		users[index].PasswordHash = passwordHash
		users[index].Version = 1
		// Spread creation times so stored order is deterministic.
		users[index].CreatedAt = now.Add(time.Duration(index) * time.Second)
	}
	return users
}

func defaultExercises() []models.Exercise {
	return []models.Exercise{
		{
			ID:                       "ex_1",
			BranchID:                 models.GlobalBranchID,
			Name:                     "Pull Up",
			Description:              "Upper body compound pulling exercise.",
			DefaultCaloriesPerMinute: 8,
			DefaultDurationMinutes:   15,
			Level:                    models.ExerciseLevelBeginner,
			Type:                     models.ExerciseTypeCardio,
		},
		{
			ID:                       "ex_2",
			BranchID:                 models.GlobalBranchID,
			Name:                     "Sit Up",
			Description:              "Abdominal endurance training.",
			DefaultCaloriesPerMinute: 5,
			DefaultDurationMinutes:   30,
			Level:                    models.ExerciseLevelIntermediate,
			Type:                     models.ExerciseTypeMuscle,
		},
		{
			ID:                       "ex_3",
			BranchID:                 models.GlobalBranchID,
			Name:                     "Biceps Curl",
			Description:              "Isolation exercise for the biceps brachii.",
			DefaultCaloriesPerMinute: 4,
			DefaultDurationMinutes:   120,
			Level:                    models.ExerciseLevelPro,
			Type:                     models.ExerciseTypeStrength,
		},
		{
			ID:                       "ex_4",
			BranchID:                 models.GlobalBranchID,
			Name:                     "Treadmill Run",
			Description:              "Steady state cardio.",
			DefaultCaloriesPerMinute: 12,
			DefaultDurationMinutes:   20,
			Level:                    models.ExerciseLevelBeginner,
			Type:                     models.ExerciseTypeCardio,
		},
	}
}

func defaultWorkouts() []models.WorkoutSession {
	now := time.Now()
	return []models.WorkoutSession{
		{ID: "w_1", UserID: "u_mem_1", BranchID: "b_nyc_01", Date: now.Add(-48 * time.Hour), Type: models.WorkoutStrength, DurationMinutes: 60, CaloriesBurned: 450, Notes: "Chest day, PR on bench.", XPEarned: 150},
		{ID: "w_2", UserID: "u_mem_1", BranchID: "b_nyc_01", Date: now.Add(-24 * time.Hour), Type: models.WorkoutHIIT, DurationMinutes: 45, CaloriesBurned: 600, Notes: "Sprints.", XPEarned: 120},
		{ID: "w_3", UserID: "u_mem_2", BranchID: "b_nyc_01", Date: now.Add(-12 * time.Hour), Type: models.WorkoutCardio, DurationMinutes: 30, CaloriesBurned: 300, Notes: "Light jog.", XPEarned: 80},
	}
}

func defaultPosts() []models.CommunityPost {
	now := time.Now()
	return []models.CommunityPost{
		{ID: "p_1", AuthorID: "u_mem_1", BranchID: "b_nyc_01", Content: "Just hit a new PR on deadlift! 405lbs moving easy. #LightWeight", Timestamp: now.Add(-time.Hour), Likes: 24},
		{ID: "p_2", AuthorID: "u_mem_3", BranchID: "b_la_01", Content: "West coast best coast. Morning cardio done.", Timestamp: now, Likes: 12},
		{ID: "p_3", AuthorID: "u_coach_1", BranchID: "b_nyc_01", Content: "Remember folks, hydration is key. Drink your water!", Timestamp: now.Add(-2 * time.Hour), Likes: 45},
	}
}

func defaultBodyLogs() []models.BodyLog {
	now := time.Now()
	fat := func(value float64) *float64 { return &value }
	return []models.BodyLog{
		{ID: "bl_1", UserID: "u_mem_1", BranchID: "b_nyc_01", Date: now.Add(-30 * 24 * time.Hour), Weight: 185, BodyFatPercentage: fat(18)},
		{ID: "bl_2", UserID: "u_mem_1", BranchID: "b_nyc_01", Date: now, Weight: 180, BodyFatPercentage: fat(15)},
		{ID: "bl_3", UserID: "u_mem_4", BranchID: "b_nyc_01", Date: now.Add(-60 * 24 * time.Hour), Weight: 140, BodyFatPercentage: fat(24)},
		{ID: "bl_4", UserID: "u_mem_4", BranchID: "b_nyc_01", Date: now, Weight: 135, BodyFatPercentage: fat(19)},
		{ID: "bl_5", UserID: "u_mem_2", BranchID: "b_nyc_01", Date: now, Weight: 175, BodyFatPercentage: fat(12)},
	}
}
