package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

const principalKey = "auth_principal"

// Middleware validates bearer tokens and attaches the principal to the
// request. Validation is pure; no storage is consulted.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the bearer middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	principal, err := m.tokens.Validate(parts[1])
	if err != nil {
		switch err {
		case ErrTokenExpired:
			return apperrors.NewUnauthorized("token expired")
		case ErrSignatureInvalid:
			return apperrors.NewUnauthorized("token signature invalid")
		default:
			return apperrors.NewUnauthorized("invalid token")
		}
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated principal.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
