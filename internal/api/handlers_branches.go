package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetBranches(c *fiber.Ctx) error {
	branches, err := handler.branchService.Branches()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(branches)
}
