package api

import "github.com/gofiber/fiber/v2"

type captionInput struct {
	Image string `json:"image"`
}

// GenerateCaption asks the caption service for a motivational line for
// the given base64 image. The service never fails; a missing generator
// or an upstream error comes back as fallback text with a 200.
func (handler *Handler) GenerateCaption(c *fiber.Ctx) error {
	input := captionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	caption := handler.captionService.GenerateMotivationalCaption(c.UserContext(), input.Image)
	return c.JSON(fiber.Map{"caption": caption})
}
