package api

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// UploadAvatar replaces the requester's avatar image and stores the
// resulting URL on their profile.
func (handler *Handler) UploadAvatar(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.uploader == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "uploads are not configured")
	}

	file, err := openUploadedFile(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "image file is required")
	}
	defer file.Close()

	url, err := handler.uploader.UploadAvatar(c.UserContext(), file, requester.ID)
	if err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "upload failed")
	}
	if err := handler.repositories.Users.UpdateAvatarURL(requester.ID, url); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save avatar")
	}

	return c.JSON(fiber.Map{"url": url})
}

// UploadProgressPhoto stores a body-log photo and returns its URL. The
// caller attaches the URL to a body log in a separate request.
func (handler *Handler) UploadProgressPhoto(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.uploader == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "uploads are not configured")
	}

	file, err := openUploadedFile(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "image file is required")
	}
	defer file.Close()

	url, err := handler.uploader.UploadProgressPhoto(c.UserContext(), file, requester.ID)
	if err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "upload failed")
	}
	return c.JSON(fiber.Map{"url": url})
}

func (handler *Handler) UploadPostImage(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.uploader == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "uploads are not configured")
	}

	file, err := openUploadedFile(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "image file is required")
	}
	defer file.Close()

	url, err := handler.uploader.UploadPostImage(c.UserContext(), file, requester.BranchID)
	if err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "upload failed")
	}
	return c.JSON(fiber.Map{"url": url})
}

func openUploadedFile(c *fiber.Ctx) (multipart.File, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}
	return fileHeader.Open()
}
