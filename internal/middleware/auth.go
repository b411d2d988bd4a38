// Package middleware provides authentication, logging, and tracing middleware.
package middleware

import (
	"strconv"
	"strings"

	"yatube/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired is a middleware that enforces authentication for protected
// routes. It rejects create/edit/comment/follow attempts before they reach
// the data layer; the client is responsible for redirecting to login.
func AuthRequired(c *fiber.Ctx) error {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization required",
		})
	}

	c.Locals("userID", userID)
	return c.Next()
}

// OptionalAuth resolves the requesting identity when a valid token is
// present but never rejects the request. Public feed and profile routes use
// it to personalize responses (e.g. the "following" flag).
func OptionalAuth(c *fiber.Ctx) error {
	if userID, ok := userIDFromHeader(c); ok {
		c.Locals("userID", userID)
	}
	return c.Next()
}

// UserID returns the authenticated user ID from the request context, or 0
// when the request is anonymous.
func UserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

func userIDFromHeader(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	// User ID travels in the "sub" claim (RFC 7519 subject).
	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}

	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint(userIDVal), true
}
