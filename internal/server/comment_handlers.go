package server

import (
	"fmt"

	"yatube/internal/models"
	"yatube/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /:username/:post_id/comment. The comment's author
// and post come from the session and the URL, never from the payload.
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := mustUserID(c)

	postID, err := postIDParam(c)
	if err != nil {
		return respondFeedError(c, err)
	}
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondFeedError(c, err)
	}
	post, err := s.postRepo.GetByAuthorAndID(c.Context(), author.ID, postID)
	if err != nil {
		return respondFeedError(c, err)
	}

	var form validation.CommentForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := form.Validate(); len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	comment := &models.Comment{
		Text:     form.Text,
		AuthorID: userID,
		PostID:   post.ID,
	}
	if err := s.commentRepo.Create(c.Context(), comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Redirect(fmt.Sprintf("/%s/%d/", author.Username, post.ID), fiber.StatusFound)
}
