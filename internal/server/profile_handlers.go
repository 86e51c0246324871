package server

import (
	"github.com/gofiber/fiber/v2"
)

// Profile handles GET /:username, the author's page. Anonymous visitors get
// IsFollowing false; authenticated ones get their actual follow state.
func (s *Server) Profile(c *fiber.Ctx) error {
	viewerID, _ := s.currentUserID(c)

	page, err := s.feed.Profile(c.Context(), c.Params("username"), viewerID, c.QueryInt("page", 1))
	if err != nil {
		return respondFeedError(c, err)
	}
	return c.JSON(page)
}

// PostView handles GET /:username/:post_id. The post must belong to the
// named author; a real post id under the wrong username is a 404.
func (s *Server) PostView(c *fiber.Ctx) error {
	postID, err := postIDParam(c)
	if err != nil {
		return respondFeedError(c, err)
	}

	detail, err := s.feed.PostDetail(c.Context(), c.Params("username"), postID)
	if err != nil {
		return respondFeedError(c, err)
	}
	return c.JSON(detail)
}
