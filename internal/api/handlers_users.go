package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hypergym/hypergym/internal/models"
	"github.com/hypergym/hypergym/internal/services"
)

func (handler *Handler) GetUsers(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	users, err := handler.userService.VisibleUsers(requester)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.userService.FindByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if !canViewUser(requester, user) {
		return apiError(c, fiber.StatusForbidden, "access denied")
	}

	handler.annotateRank(&user)
	return c.JSON(user)
}

type updateUserInput struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Role            *string `json:"role"`
	BranchID        *string `json:"branchId"`
	AssignedCoachID *string `json:"assignedCoachId"`
	AvatarURL       *string `json:"avatarUrl"`
}

// UpdateUser edits a profile. Users may edit themselves; admins may
// edit anyone. Role and branch changes are admin only.
func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	targetID := c.Params("id")
	if !requester.IsAdmin() && requester.ID != targetID {
		return apiError(c, fiber.StatusForbidden, "access denied")
	}

	input := updateUserInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if (input.Role != nil || input.BranchID != nil) && !requester.IsAdmin() {
		return apiError(c, fiber.StatusForbidden, "admin access required")
	}

	target, err := handler.userService.FindByID(targetID)
	if err != nil {
		return serviceError(c, err)
	}

	if input.Name != nil {
		target.Name = *input.Name
	}
	if input.Email != nil {
		target.Email = *input.Email
	}
	if input.Role != nil {
		target.Role = *input.Role
	}
	if input.BranchID != nil {
		target.BranchID = *input.BranchID
	}
	if input.AssignedCoachID != nil {
		target.AssignedCoachID = *input.AssignedCoachID
	}
	if input.AvatarURL != nil {
		target.AvatarURL = *input.AvatarURL
	}

	updated, err := handler.userService.UpdateUser(target)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(updated)
}

func canViewUser(requester models.User, target models.User) bool {
	switch {
	case requester.IsAdmin():
		return true
	case requester.IsCoach():
		return requester.BranchID == target.BranchID
	default:
		return requester.ID == target.ID
	}
}

// annotateRank fills the transient rank field for members. Rank is
// derived from the branch roster at read time and never stored.
func (handler *Handler) annotateRank(user *models.User) {
	if !user.IsMember() {
		return
	}
	allUsers, err := handler.repositories.Users.List()
	if err != nil {
		return
	}
	user.Rank = services.BranchRank(allUsers, *user)
}
