package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/http/handlers"
	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Products       *handlers.ProductsHandler
	Categories     *handlers.CategoriesHandler
	Activities     *handlers.ActivitiesHandler
	AuthMiddleware *auth.Middleware
	LoginLimiter   fiber.Handler
}

// RegisterRoutes wires HTTP routes. Reads are open to any authenticated
// role, mutations require Admin, and the audit trail is Admin-only.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	if cfg.LoginLimiter != nil {
		authGroup.Post("/login", cfg.LoginLimiter, cfg.Auth.Login)
	} else {
		authGroup.Post("/login", cfg.Auth.Login)
	}

	anyRole := auth.RequireRoles(domain.RoleAdmin, domain.RoleCustomer)
	adminOnly := auth.RequireRoles(domain.RoleAdmin)

	products := api.Group("/products", cfg.AuthMiddleware.Handle)
	products.Get("/", anyRole, cfg.Products.List)
	products.Get("/search", anyRole, cfg.Products.Search)
	products.Get("/:id", anyRole, cfg.Products.Get)
	products.Post("/", adminOnly, cfg.Products.Create)
	products.Put("/:id", adminOnly, cfg.Products.Update)
	products.Delete("/:id", adminOnly, cfg.Products.Delete)

	categories := api.Group("/categories", cfg.AuthMiddleware.Handle)
	categories.Get("/", anyRole, cfg.Categories.List)
	categories.Get("/search", anyRole, cfg.Categories.Search)
	categories.Get("/:id", anyRole, cfg.Categories.Get)
	categories.Post("/", adminOnly, cfg.Categories.Create)
	categories.Put("/:id", adminOnly, cfg.Categories.Update)
	categories.Delete("/:id", adminOnly, cfg.Categories.Delete)

	api.Get("/activities", cfg.AuthMiddleware.Handle, adminOnly, cfg.Activities.List)
}
