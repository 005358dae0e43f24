package middleware

import (
	"strings"

	"go-catalog-api/internal/apperror"
	"go-catalog-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Context keys for claims attached by RequireAuth.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// RequireAPIKey checks the x-api-key header against the configured secret.
// An unconfigured secret matches nothing, so the check fails closed.
func RequireAPIKey(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get("x-api-key")
		if apiKey == "" || provided == "" || provided != apiKey {
			return apperror.Unauthorized("invalid or missing API key")
		}
		return c.Next()
	}
}

// RequireAuth validates the Authorization bearer token and attaches the
// decoded claims to the request for downstream role checks and handlers.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperror.Unauthorized("missing authorization token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return apperror.Unauthorized("invalid authorization format, use: Bearer <token>")
		}

		claims, err := jwt.Parse(parts[1], secret)
		if err != nil {
			return apperror.Unauthorized("invalid or expired token")
		}

		c.Locals(LocalUserID, claims.ID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// RequireRole allows the request through only when the authenticated role is
// in the allow-list. Must run after RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok || role == "" {
			return apperror.Forbidden("forbidden")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return apperror.Forbidden("forbidden: requires one of " + strings.Join(roles, ", "))
	}
}
