package services

import (
	"errors"
	"time"

	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointment   = errors.New("invalid appointment input")
	ErrAppointmentForbidden = errors.New("appointment not visible to requester")
)

type AppointmentBook interface {
	List() ([]models.Appointment, error)
	ListByBranch(branchID string) ([]models.Appointment, error)
	ListByParticipant(userID string) ([]models.Appointment, error)
	FindByID(appointmentID string) (models.Appointment, error)
	Create(appointment *models.Appointment) error
	UpdateStatus(appointmentID string, status string) (bool, error)
}

type AppointmentUserRepository interface {
	FindByID(userID string) (models.User, error)
}

type AppointmentService struct {
	appointments AppointmentBook
	users        AppointmentUserRepository
}

func NewAppointmentService(appointments AppointmentBook, users AppointmentUserRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments, users: users}
}

// VisibleAppointments follows the roster scoping: admins see all,
// coaches their branch, members their own bookings. A degraded store
// reads as an empty schedule.
func (service *AppointmentService) VisibleAppointments(requester models.User) ([]models.Appointment, error) {
	var (
		appointments []models.Appointment
		err          error
	)
	switch requester.Role {
	case models.RoleAdmin:
		appointments, err = service.appointments.List()
	case models.RoleCoach:
		appointments, err = service.appointments.ListByBranch(requester.BranchID)
	default:
		appointments, err = service.appointments.ListByParticipant(requester.ID)
	}
	if err != nil {
		return []models.Appointment{}, nil
	}
	return appointments, nil
}

type AppointmentInput struct {
	CoachID   string
	MemberID  string
	StartTime time.Time
	EndTime   time.Time
	Type      string
}

// Schedule books a slot between a coach and a member of the same
// branch. The slot inherits the coach's branch.
func (service *AppointmentService) Schedule(input AppointmentInput) (models.Appointment, error) {
	if !models.ValidAppointmentType(input.Type) {
		return models.Appointment{}, ErrInvalidAppointment
	}
	if input.StartTime.IsZero() || !input.EndTime.After(input.StartTime) {
		return models.Appointment{}, ErrInvalidAppointment
	}

	coach, err := service.users.FindByID(input.CoachID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Appointment{}, ErrUserNotFound
	}
	if err != nil {
		return models.Appointment{}, err
	}
	member, err := service.users.FindByID(input.MemberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Appointment{}, ErrUserNotFound
	}
	if err != nil {
		return models.Appointment{}, err
	}

	if !coach.IsCoach() || !member.IsMember() || coach.BranchID != member.BranchID {
		return models.Appointment{}, ErrInvalidAppointment
	}

	appointment := models.Appointment{
		ID:        newID("ap"),
		CoachID:   coach.ID,
		MemberID:  member.ID,
		BranchID:  coach.BranchID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    models.AppointmentScheduled,
		Type:      input.Type,
	}
	if err := service.appointments.Create(&appointment); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// Cancel marks the slot cancelled. Admins may cancel anything;
// participants may cancel their own slots.
func (service *AppointmentService) Cancel(requester models.User, appointmentID string) error {
	appointment, err := service.appointments.FindByID(appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAppointmentNotFound
	}
	if err != nil {
		return err
	}

	allowed := requester.IsAdmin() ||
		appointment.CoachID == requester.ID ||
		appointment.MemberID == requester.ID
	if !allowed {
		return ErrAppointmentForbidden
	}

	cancelled, err := service.appointments.UpdateStatus(appointmentID, models.AppointmentCancelled)
	if err != nil {
		return err
	}
	if !cancelled {
		return ErrAppointmentNotFound
	}
	return nil
}
