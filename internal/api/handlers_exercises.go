package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hypergym/hypergym/internal/services"
)

func (handler *Handler) GetExercises(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	exercises, err := handler.exerciseService.ExercisesForBranch(requester.BranchID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(exercises)
}

type createExerciseInput struct {
	Name                     string  `json:"name"`
	Description              string  `json:"description"`
	DefaultCaloriesPerMinute float64 `json:"defaultCaloriesPerMinute"`
	DefaultDurationMinutes   int     `json:"defaultDurationMinutes"`
	Level                    string  `json:"level"`
	Type                     string  `json:"type"`
	ImageURL                 string  `json:"imageUrl"`
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := createExerciseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	exercise, err := handler.exerciseService.CreateExercise(requester, services.ExerciseInput{
		Name:                     input.Name,
		Description:              input.Description,
		DefaultCaloriesPerMinute: input.DefaultCaloriesPerMinute,
		DefaultDurationMinutes:   input.DefaultDurationMinutes,
		Level:                    input.Level,
		Type:                     input.Type,
		ImageURL:                 input.ImageURL,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exercise)
}
