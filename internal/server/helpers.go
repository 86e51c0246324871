package server

import (
	"strconv"

	"yatube/internal/middleware"
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// mustUserID returns the authenticated user id. Handlers behind
// AuthRequired can rely on it being set.
func mustUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// postIDParam parses the post_id path segment. Non-numeric values mean the
// URL does not address any post.
func postIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("post_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError("Post", raw)
	}
	return uint(id), nil
}

// respondFeedError maps feed and repository errors onto HTTP statuses.
func respondFeedError(c *fiber.Ctx, err error) error {
	if models.IsNotFound(err) {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

func logContactMessage(c *fiber.Ctx, name, email, subject string) {
	middleware.Logger.InfoContext(c.UserContext(), "contact message received",
		"name", name,
		"email", email,
		"subject", subject,
	)
}
