package server

import (
	"fmt"

	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetIndexFeed handles GET /api/posts. The global feed, newest first.
func (s *Server) GetIndexFeed(c *fiber.Ctx) error {
	page, err := s.feeds.Index(c.Context(), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetPostDetail handles GET /api/posts/:id.
func (s *Server) GetPostDetail(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.posts.GetPost(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	commentCount, err := s.commentRepo.CountByPost(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":          post,
		"preview":       post.Preview(s.config.PreviewLength),
		"comment_count": commentCount,
		"can_edit":      service.CanEditPost(middleware.UserID(c), post),
	})
}

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text      string `json:"text"`
		GroupSlug string `json:"group"`
		ImageRef  string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.posts.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID:  middleware.UserID(c),
		Text:      req.Text,
		GroupSlug: req.GroupSlug,
		ImageRef:  req.ImageRef,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id. An edit attempt by anyone but the
// author is not an error: the client is sent back to the post detail view.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.posts.GetPost(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !service.CanEditPost(middleware.UserID(c), post) {
		return c.Redirect(fmt.Sprintf("/api/posts/%d", postID), fiber.StatusSeeOther)
	}

	var req struct {
		Text      *string `json:"text"`
		GroupSlug *string `json:"group"`
		ImageRef  *string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.posts.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:    middleware.UserID(c),
		PostID:    postID,
		Text:      req.Text,
		GroupSlug: req.GroupSlug,
		ImageRef:  req.ImageRef,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(updated)
}

// DeletePost handles DELETE /api/posts/:id.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.posts.DeletePost(c.Context(), middleware.UserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// GetFollowingFeed handles GET /api/feed. Posts by authors the requesting
// user follows.
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	page, err := s.feeds.Following(c.Context(), middleware.UserID(c), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}
