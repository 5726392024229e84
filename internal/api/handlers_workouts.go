package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hypergym/hypergym/internal/services"
)

func (handler *Handler) GetWorkouts(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessions, err := handler.workoutService.VisibleWorkouts(requester)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(sessions)
}

type logWorkoutInput struct {
	Date            *time.Time `json:"date"`
	Type            string     `json:"type"`
	DurationMinutes int        `json:"durationMinutes"`
	CaloriesBurned  int        `json:"caloriesBurned"`
	Notes           string     `json:"notes"`
}

func (handler *Handler) LogWorkout(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := logWorkoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	workoutInput := services.WorkoutInput{
		Type:            input.Type,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		Notes:           input.Notes,
	}
	if input.Date != nil {
		workoutInput.Date = *input.Date
	}

	session, err := handler.workoutService.LogWorkout(requester, workoutInput)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}
