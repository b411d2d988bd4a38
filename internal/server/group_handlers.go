package server

import (
	"strings"

	"yatube/internal/models"
	"yatube/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ListGroups handles GET /api/groups.
func (s *Server) ListGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetGroup handles GET /api/groups/:slug.
func (s *Server) GetGroup(c *fiber.Ctx) error {
	group, err := s.groupRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(group)
}

// GetGroupFeed handles GET /api/groups/:slug/posts.
func (s *Server) GetGroupFeed(c *fiber.Ctx) error {
	group, err := s.groupRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}

	page, err := s.feeds.Group(c.Context(), group.ID, parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"group": group,
		"page":  page,
	})
}

// CreateGroup handles POST /api/groups.
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(strings.ToLower(req.Slug))

	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Group title is required"))
	}
	if err := validation.ValidateGroupSlug(req.Slug); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if existing, err := s.groupRepo.GetBySlug(c.Context(), req.Slug); err == nil && existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Group slug already in use"))
	}

	group := &models.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.groupRepo.Create(c.Context(), group); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// DeleteGroup handles DELETE /api/groups/:slug. Posts in the group survive
// with their group reference cleared.
func (s *Server) DeleteGroup(c *fiber.Ctx) error {
	if err := s.groupRepo.Delete(c.Context(), c.Params("slug")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Group deleted"})
}
