package server

import (
	"fmt"
	"path/filepath"

	"yatube/internal/models"
	"yatube/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EditPhoto handles POST /:username/photo. Only the profile's owner can
// change it. The new photo replaces the old one atomically, so a failed
// upload never leaves the profile without a photo.
func (s *Server) EditPhoto(c *fiber.Ctx) error {
	userID := mustUserID(c)

	target, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondFeedError(c, err)
	}
	if target.ID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only change your own photo"))
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"photo": "this field is required"}))
	}

	ext, err := validation.ValidateImageUpload(fileHeader.Header.Get("Content-Type"), fileHeader.Size)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"photo": err.Error()}))
	}

	filename := uuid.New().String() + ext
	if err := c.SaveFile(fileHeader, filepath.Join(s.config.MediaDir, filename)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	photo := &models.ProfilePhoto{
		UserID: userID,
		Photo:  filepath.ToSlash(filepath.Join("media", filename)),
	}
	if err := s.photoRepo.Replace(c.Context(), photo); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Redirect(fmt.Sprintf("/%s/", target.Username), fiber.StatusFound)
}
