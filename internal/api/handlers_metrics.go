package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hypergym/hypergym/internal/services"
)

// GetFatLossLeaderboard ranks the requester's branch by body fat lost.
func (handler *Handler) GetFatLossLeaderboard(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.leaderboardService.FatLossLeaderboard(requester.BranchID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) GetProgression(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(services.BuildProgression(requester.Points, requester.StreakDays))
}
