package server

import (
	"yatube/internal/cache"
	"yatube/internal/feed"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET /, the global feed. Rendered pages are cached in Redis
// under the raw query string for a short TTL, and writes never invalidate
// the cache, so a fresh post can stay invisible here until the TTL expires.
func (s *Server) Index(c *fiber.Ctx) error {
	query := string(c.Request().URI().QueryString())

	var cached feed.Page
	if s.pageCache.Get(c.UserContext(), cache.IndexPagePrefix, query, &cached) {
		return c.JSON(cached)
	}

	page, err := s.feed.Global(c.Context(), c.QueryInt("page", 1))
	if err != nil {
		return respondFeedError(c, err)
	}

	s.pageCache.Set(c.UserContext(), cache.IndexPagePrefix, query, page)
	return c.JSON(page)
}

// GroupPosts handles GET /group/:slug
func (s *Server) GroupPosts(c *fiber.Ctx) error {
	page, err := s.feed.Group(c.Context(), c.Params("slug"), c.QueryInt("page", 1))
	if err != nil {
		return respondFeedError(c, err)
	}
	return c.JSON(page)
}

// FollowIndex handles GET /follow, the personal feed of followed authors.
func (s *Server) FollowIndex(c *fiber.Ctx) error {
	page, err := s.feed.Following(c.Context(), mustUserID(c), c.QueryInt("page", 1))
	if err != nil {
		return respondFeedError(c, err)
	}
	return c.JSON(page)
}
