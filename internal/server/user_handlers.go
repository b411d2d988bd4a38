package server

import (
	"yatube/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:username. The "following" flag reflects
// the requesting identity and is always false for anonymous viewers.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	postCount, err := s.postRepo.CountByAuthor(c.Context(), author.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	followerCount, err := s.follows.FollowerCount(c.Context(), author.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	following, err := s.follows.IsFollowing(c.Context(), middleware.UserID(c), author.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":           author,
		"post_count":     postCount,
		"follower_count": followerCount,
		"following":      following,
	})
}

// GetProfileFeed handles GET /api/users/:username/posts.
func (s *Server) GetProfileFeed(c *fiber.Ctx) error {
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	page, err := s.feeds.Profile(c.Context(), author.ID, parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(page)
}

// DeleteMyAccount handles DELETE /api/users/me. The identity's posts,
// comments, and follow relations go with it; groups stay.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	if _, err := s.userRepo.GetByID(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	if err := s.userRepo.Delete(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Account deleted"})
}
