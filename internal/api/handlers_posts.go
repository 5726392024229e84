package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetPosts(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	posts, err := handler.postService.VisiblePosts(requester)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(posts)
}

type createPostInput struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

func (handler *Handler) CreatePost(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := createPostInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	post, err := handler.postService.AddPost(requester, input.Content, input.ImageURL)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (handler *Handler) LikePost(c *fiber.Ctx) error {
	if err := handler.postService.LikePost(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
