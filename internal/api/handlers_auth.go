package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	token, err := handler.buildToken(user, authTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(fiber.Map{"token": token, "user": user})
}

// Me returns the authenticated user's own record. Members get their
// branch rank annotated the same way login does.
func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	handler.annotateRank(&user)
	return c.JSON(user)
}
