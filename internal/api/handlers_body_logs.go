package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hypergym/hypergym/internal/services"
)

func (handler *Handler) GetBodyLogs(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.bodyLogService.LogsForUser(requester.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(logs)
}

type addBodyLogInput struct {
	Date              *time.Time `json:"date"`
	Weight            float64    `json:"weight"`
	BodyFatPercentage *float64   `json:"bodyFatPercentage"`
	PhotoURL          string     `json:"photoUrl"`
}

func (handler *Handler) AddBodyLog(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := addBodyLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	logInput := services.BodyLogInput{
		Weight:            input.Weight,
		BodyFatPercentage: input.BodyFatPercentage,
		PhotoURL:          input.PhotoURL,
	}
	if input.Date != nil {
		logInput.Date = *input.Date
	}

	bodyLog, err := handler.bodyLogService.AddBodyLog(requester, logInput)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bodyLog)
}
