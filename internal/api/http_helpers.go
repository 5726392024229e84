package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hypergym/hypergym/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError translates the service sentinels into HTTP statuses.
// Anything unrecognised is a plain 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrExerciseNotFound),
		errors.Is(err, services.ErrPlanEntryNotFound),
		errors.Is(err, services.ErrAppointmentNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrVersionConflict):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrAppointmentForbidden):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrInvalidUserInput),
		errors.Is(err, services.ErrInvalidWorkout),
		errors.Is(err, services.ErrInvalidBodyLog),
		errors.Is(err, services.ErrEmptyPostContent),
		errors.Is(err, services.ErrInvalidExercise),
		errors.Is(err, services.ErrInvalidPlanUpdate),
		errors.Is(err, services.ErrInvalidAppointment):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
