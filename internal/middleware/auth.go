// Package middleware provides HTTP middleware components for the application.
// It includes the authentication middleware guarding the admin routes
// of the fiber app.
package middleware

import (
	"log"
	"strings"

	"insights/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth validates the Bearer token on admin routes and stores the
// claims in the request context.
func AdminAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseAdminToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	if !claims.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
	}

	c.Locals("claims", claims)
	return c.Next()
}
