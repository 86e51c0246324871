package server

import (
	"fmt"

	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ProfileFollow handles POST /:username/follow. Following yourself is
// silently skipped, and repeating the request never duplicates the edge.
func (s *Server) ProfileFollow(c *fiber.Ctx) error {
	userID := mustUserID(c)

	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondFeedError(c, err)
	}

	if author.ID != userID {
		if err := s.followRepo.Create(c.Context(), userID, author.ID); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
	}

	return c.Redirect(fmt.Sprintf("/%s/", author.Username), fiber.StatusFound)
}

// ProfileUnfollow handles POST /:username/unfollow. Removing an edge that
// does not exist is a no-op.
func (s *Server) ProfileUnfollow(c *fiber.Ctx) error {
	userID := mustUserID(c)

	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondFeedError(c, err)
	}

	if err := s.followRepo.Delete(c.Context(), userID, author.ID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Redirect(fmt.Sprintf("/%s/", author.Username), fiber.StatusFound)
}
