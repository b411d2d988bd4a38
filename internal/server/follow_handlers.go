package server

import (
	"yatube/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// FollowAuthor handles POST /api/users/:username/follow. Following an
// already-followed author, or yourself, changes nothing.
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.follows.Follow(c.Context(), middleware.UserID(c), author.ID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Following " + author.Username})
}

// UnfollowAuthor handles DELETE /api/users/:username/follow.
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.follows.Unfollow(c.Context(), middleware.UserID(c), author.ID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed " + author.Username})
}
