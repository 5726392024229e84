package models

import "time"

// PlannedActivity is one slot of a member's daily training plan.
// CalculatedCalories is derived from the target duration and the
// exercise's default calories-per-minute; it is recomputed whenever
// the target duration changes and left alone for every other edit.
type PlannedActivity struct {
	ID                    string    `gorm:"primaryKey" json:"id"`
	UserID                string    `gorm:"not null;index" json:"userId"`
	ExerciseID            string    `gorm:"not null" json:"exerciseId"`
	CustomName            string    `gorm:"not null" json:"customName"`
	TargetDurationMinutes int       `gorm:"not null" json:"targetDurationMinutes"`
	TargetQty             int       `gorm:"not null;default:3" json:"targetQty"`
	TargetReps            int       `gorm:"not null;default:12" json:"targetReps"`
	CalculatedCalories    float64   `gorm:"not null" json:"calculatedCalories"`
	Completed             bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt             time.Time `json:"-"`
}
