package models

import "time"

// BodyLog is an append-only body measurement. BodyFatPercentage is
// optional; a nil value excludes the log from fat-loss calculations.
type BodyLog struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"not null;index" json:"userId"`
	BranchID          string    `gorm:"not null;index" json:"branchId"`
	Date              time.Time `gorm:"not null;index" json:"date"`
	Weight            float64   `gorm:"not null" json:"weight"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
	PhotoURL          string    `json:"photoUrl,omitempty"`
	CreatedAt         time.Time `json:"-"`
}
