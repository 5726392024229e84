package services

import (
	"errors"
	"time"

	"github.com/hypergym/hypergym/internal/models"
)

var ErrInvalidBodyLog = errors.New("invalid body log input")

type BodyLogStore interface {
	ListByUser(userID string) ([]models.BodyLog, error)
	Create(bodyLog *models.BodyLog) error
}

type BodyLogService struct {
	bodyLogs BodyLogStore
}

func NewBodyLogService(bodyLogs BodyLogStore) *BodyLogService {
	return &BodyLogService{bodyLogs: bodyLogs}
}

// LogsForUser returns a member's measurements, newest first.
// A degraded store reads as an empty history.
func (service *BodyLogService) LogsForUser(userID string) ([]models.BodyLog, error) {
	logs, err := service.bodyLogs.ListByUser(userID)
	if err != nil {
		return []models.BodyLog{}, nil
	}
	return logs, nil
}

type BodyLogInput struct {
	Date              time.Time
	Weight            float64
	BodyFatPercentage *float64
	PhotoURL          string
}

func (service *BodyLogService) AddBodyLog(owner models.User, input BodyLogInput) (models.BodyLog, error) {
	if input.Weight <= 0 {
		return models.BodyLog{}, ErrInvalidBodyLog
	}
	if input.BodyFatPercentage != nil {
		if *input.BodyFatPercentage <= 0 || *input.BodyFatPercentage > 100 {
			return models.BodyLog{}, ErrInvalidBodyLog
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	bodyLog := models.BodyLog{
		ID:                newID("bl"),
		UserID:            owner.ID,
		BranchID:          owner.BranchID,
		Date:              date,
		Weight:            input.Weight,
		BodyFatPercentage: input.BodyFatPercentage,
		PhotoURL:          input.PhotoURL,
	}
	if err := service.bodyLogs.Create(&bodyLog); err != nil {
		return models.BodyLog{}, err
	}
	return bodyLog, nil
}
