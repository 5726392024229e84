package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hypergym/hypergym/internal/services"
)

func (handler *Handler) GetPlan(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, summary, err := handler.planService.PlanForUser(requester.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"entries": entries, "summary": summary})
}

type addToPlanInput struct {
	ExerciseID string `json:"exerciseId"`
}

func (handler *Handler) AddToPlan(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := addToPlanInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.planService.AddToPlan(requester, input.ExerciseID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

type updatePlanInput struct {
	CustomName            *string `json:"customName"`
	TargetDurationMinutes *int    `json:"targetDurationMinutes"`
	TargetQty             *int    `json:"targetQty"`
	TargetReps            *int    `json:"targetReps"`
	Completed             *bool   `json:"completed"`
}

func (handler *Handler) UpdatePlanEntry(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := updatePlanInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.planService.UpdateEntry(requester, c.Params("id"), services.PlanUpdate{
		CustomName:            input.CustomName,
		TargetDurationMinutes: input.TargetDurationMinutes,
		TargetQty:             input.TargetQty,
		TargetReps:            input.TargetReps,
		Completed:             input.Completed,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) RemovePlanEntry(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.planService.RemoveEntry(requester, c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
