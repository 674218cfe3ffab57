package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// Authorize reports whether the principal may proceed given the required
// roles: allowed iff the principal's role set intersects them non-emptily.
// Role names compare exactly (case-sensitive) and carry no hierarchy; an
// empty required set denies everyone.
func Authorize(principal *Principal, required ...domain.Role) bool {
	if principal == nil {
		return false
	}
	for _, need := range required {
		for _, have := range principal.Roles {
			if have == need {
				return true
			}
		}
	}
	return false
}

// RequireRoles gates a route on role membership. The bearer middleware must
// run first; an unauthenticated request is rejected with 401, a principal
// without any of the required roles with 403. The required set must be
// non-empty, same as Authorize; routes that only need a valid token use
// RequireAuthenticated.
func RequireRoles(required ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if !Authorize(principal, required...) {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated admits any request carrying a valid principal,
// regardless of its roles.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}
