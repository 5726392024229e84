package db

import (
	"github.com/hypergym/hypergym/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

func (repo *AppointmentRepository) List() ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.Order("start_time, id").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) ListByBranch(branchID string) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.Where("branch_id = ?", branchID).
		Order("start_time, id").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) ListByParticipant(userID string) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.Where("coach_id = ? OR member_id = ?", userID, userID).
		Order("start_time, id").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) FindByID(appointmentID string) (models.Appointment, error) {
	var appointment models.Appointment
	if err := repo.database.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (repo *AppointmentRepository) Create(appointment *models.Appointment) error {
	return repo.database.Create(appointment).Error
}

func (repo *AppointmentRepository) UpdateStatus(appointmentID string, status string) (bool, error) {
	result := repo.database.Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
