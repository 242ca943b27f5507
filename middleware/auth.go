package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"Sanle/Models"
	"Sanle/constants"
)

// Chain is the process-wide verifier chain, set up once at boot.
var Chain VerifierChain

// bearerToken extracts the credential from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Verify authenticates the request and, for collaborators, requires the
// given permission id. Admins bypass all permission checks. Pass "" to
// require authentication only.
func Verify(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		identity, err := Chain.Verify(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals("user", identity)

		if permission == "" || identity.Role == Models.RoleAdmin {
			return c.Next()
		}
		for _, p := range identity.Permissions {
			if p == permission || p == constants.PermAll {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	}
}

// AdminOnly gates endpoints reserved for the administrator role, e.g. the
// collaborator directory.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := CurrentUser(c)
		if identity == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		if identity.Role != Models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the identity Verify stored on the request.
func CurrentUser(c *fiber.Ctx) *Identity {
	identity, _ := c.Locals("user").(*Identity)
	return identity
}
