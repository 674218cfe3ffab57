package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/domain"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

func newGatedApp(tm *auth.TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fiberErr, ok := err.(*fiber.Error); ok {
				return c.Status(fiberErr.Code).SendString(fiberErr.Message)
			}
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Message)
		},
	})

	mw := auth.NewMiddleware(tm)
	app.Get("/admin", mw.Handle, auth.RequireRoles(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/any", mw.Handle, auth.RequireAuthenticated(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/none", mw.Handle, auth.RequireRoles(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func issue(t *testing.T, tm *auth.TokenManager, roles ...domain.Role) string {
	t.Helper()
	token, _, err := tm.Issue(auth.Principal{ID: "u1", Email: "a@b.c", Roles: roles})
	require.NoError(t, err)
	return token
}

func TestGateRejectsMissingToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newGatedApp(tm)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateRejectsInsufficientRole(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newGatedApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tm, domain.RoleCustomer))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGateAdmitsRequiredRole(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newGatedApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tm, domain.RoleAdmin, domain.RoleCustomer))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthenticatedGateAdmitsAnyRole(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newGatedApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tm, domain.RoleCustomer))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	unauthenticated, err := app.Test(httptest.NewRequest(http.MethodGet, "/any", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, unauthenticated.StatusCode)
}

func TestRoleGateWithEmptySetDeniesEveryone(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newGatedApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/none", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tm, domain.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGateRejectsForeignSignature(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)
	app := newGatedApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, other, domain.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
