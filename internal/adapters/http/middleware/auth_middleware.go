package middleware

import (
	"pawsitter/internal/core/domain"
	"pawsitter/internal/core/services"
	"pawsitter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// AuthMiddleware resolves the bearer token on every protected route and
// stores the principal in the request context. Absence of the header or
// a malformed prefix is rejected before any token parsing happens.
func AuthMiddleware(identity *services.IdentityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := identity.Resolve(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return response.Unauthorized(c, response.CodeUnauthorized, "Missing or invalid Authorization header")
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// AdminOnly allows only principals holding the ADMIN role
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromCtx(c)
		if !ok {
			return response.Unauthorized(c, response.CodeUnauthorized, "Unauthorized")
		}
		if !principal.IsAdmin() {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}
		return c.Next()
	}
}

// PrincipalFromCtx returns the principal stored by AuthMiddleware
func PrincipalFromCtx(c *fiber.Ctx) (*domain.Principal, bool) {
	principal, ok := c.Locals(principalKey).(*domain.Principal)
	return principal, ok
}
