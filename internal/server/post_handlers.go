package server

import (
	"fmt"
	"path/filepath"

	"yatube/internal/models"
	"yatube/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NewPostForm handles GET /new, returning the form metadata with the
// available groups to publish into.
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{
		"fields": []string{"text", "group"},
		"groups": groups,
	})
}

// CreatePost handles POST /new. The author is always the authenticated
// user; on success the client is sent to their profile.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := mustUserID(c)

	var form validation.PostForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := form.Validate(); len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	groupID, err := s.resolveGroup(c, form.Group)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"group": "unknown group"}))
	}

	image, err := s.savePostImage(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"image": err.Error()}))
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: userID,
		GroupID:  groupID,
		Image:    image,
	}
	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Redirect(fmt.Sprintf("/%s/", user.Username), fiber.StatusFound)
}

// EditPostForm handles GET /:username/:post_id/edit. Someone else's post
// sends the visitor back to the post page instead of the form.
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	post, redirected, err := s.ownedPost(c)
	if redirected {
		return err
	}
	if err != nil {
		return respondFeedError(c, err)
	}

	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{
		"post":   post,
		"groups": groups,
	})
}

// EditPost handles POST /:username/:post_id/edit. Only text and group can
// change; the publication date and author never do.
func (s *Server) EditPost(c *fiber.Ctx) error {
	post, redirected, err := s.ownedPost(c)
	if redirected {
		return err
	}
	if err != nil {
		return respondFeedError(c, err)
	}

	var form validation.PostForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := form.Validate(); len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	groupID, err := s.resolveGroup(c, form.Group)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"group": "unknown group"}))
	}

	image, err := s.savePostImage(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"image": err.Error()}))
	}

	post.Text = form.Text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}
	if err := s.postRepo.Update(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Redirect(fmt.Sprintf("/%s/%d/", c.Params("username"), post.ID), fiber.StatusFound)
}

// DeletePost handles POST /:username/:post_id/delete. A non-owner's attempt
// is silently ignored and sent to the front page. The owner goes back to
// wherever they came from.
func (s *Server) DeletePost(c *fiber.Ctx) error {
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

	if post.AuthorID != userID {
		return c.Redirect("/", fiber.StatusFound)
	}

	if err := s.postRepo.Delete(c.Context(), post.ID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if referer := c.Get(fiber.HeaderReferer); referer != "" {
		return c.Redirect(referer, fiber.StatusFound)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// ownedPost loads the post addressed by the URL and enforces ownership for
// edits. For someone else's post it issues the redirect to the post page
// and reports redirected=true.
func (s *Server) ownedPost(c *fiber.Ctx) (*models.Post, bool, error) {
	userID := mustUserID(c)

	postID, err := postIDParam(c)
	if err != nil {
		return nil, false, err
	}
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return nil, false, err
	}
	post, err := s.postRepo.GetByAuthorAndID(c.Context(), author.ID, postID)
	if err != nil {
		return nil, false, err
	}

	if post.AuthorID != userID {
		redirect := fmt.Sprintf("/%s/%d/", author.Username, post.ID)
		return nil, true, c.Redirect(redirect, fiber.StatusFound)
	}
	return post, false, nil
}

// savePostImage stores the optional "image" upload of the post form and
// returns its media path, or "" when the form carries no image.
func (s *Server) savePostImage(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	ext, err := validation.ValidateImageUpload(fileHeader.Header.Get("Content-Type"), fileHeader.Size)
	if err != nil {
		return "", err
	}

	filename := uuid.New().String() + ext
	if err := c.SaveFile(fileHeader, filepath.Join(s.config.MediaDir, filename)); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("media", filename)), nil
}

// resolveGroup maps a submitted group slug to its id. An empty slug means
// no group.
func (s *Server) resolveGroup(c *fiber.Ctx, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetBySlug(c.Context(), slug)
	if err != nil {
		return nil, err
	}
	return &group.ID, nil
}
