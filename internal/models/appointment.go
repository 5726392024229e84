package models

import "time"

const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

const (
	AppointmentTypePT           = "PT"
	AppointmentTypeConsultation = "CONSULTATION"
)

// Appointment is a personal-training or consultation slot between a
// coach and a member of the same branch.
type Appointment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CoachID   string    `gorm:"not null;index" json:"coachId"`
	MemberID  string    `gorm:"not null;index" json:"memberId"`
	BranchID  string    `gorm:"not null;index" json:"branchId"`
	StartTime time.Time `gorm:"not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`
	Status    string    `gorm:"not null;default:SCHEDULED" json:"status"`
	Type      string    `gorm:"not null" json:"type"`
	CreatedAt time.Time `json:"-"`
}

func ValidAppointmentType(appointmentType string) bool {
	switch appointmentType {
	case AppointmentTypePT, AppointmentTypeConsultation:
		return true
	default:
		return false
	}
}
