package models

import "time"

const (
	WorkoutStrength = "Strength"
	WorkoutCardio   = "Cardio"
	WorkoutHIIT     = "HIIT"
	WorkoutRecovery = "Recovery"
)

// WorkoutSession is an append-only record of a completed workout.
// BranchID always equals the owner's branch at creation time.
type WorkoutSession struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"not null;index" json:"userId"`
	BranchID        string    `gorm:"not null;index" json:"branchId"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	Type            string    `gorm:"not null" json:"type"`
	DurationMinutes int       `gorm:"not null" json:"durationMinutes"`
	CaloriesBurned  int       `gorm:"not null;default:0" json:"caloriesBurned"`
	Notes           string    `json:"notes,omitempty"`
	XPEarned        int       `gorm:"not null;default:0" json:"xpEarned"`
	CreatedAt       time.Time `json:"-"`
}

func ValidWorkoutType(workoutType string) bool {
	switch workoutType {
	case WorkoutStrength, WorkoutCardio, WorkoutHIIT, WorkoutRecovery:
		return true
	default:
		return false
	}
}
