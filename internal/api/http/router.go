package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-api/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-api/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Users   *handlers.UsersHandler
	Tickets *handlers.TicketsHandler
}

// RegisterRoutes wires HTTP routes. Each path shape gets an app.All
// fallback after its supported verbs, so unsupported methods answer 405
// instead of Fiber's default.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/users", cfg.Users.List)
	app.Post("/users", cfg.Users.Create)
	app.All("/users", methodNotAllowed)

	app.Get("/users/:id", cfg.Users.Get)
	app.Put("/users/:id", cfg.Users.Update)
	app.Delete("/users/:id", cfg.Users.Delete)
	app.All("/users/:id", methodNotAllowed)

	app.Get("/tickets", cfg.Tickets.List)
	app.Post("/tickets", cfg.Tickets.Create)
	app.All("/tickets", methodNotAllowed)

	app.Put("/tickets/:id/status", cfg.Tickets.UpdateStatus)
	app.All("/tickets/:id/status", methodNotAllowed)

	app.Get("/tickets/:id", cfg.Tickets.Get)
	app.Delete("/tickets/:id", cfg.Tickets.Delete)
	app.All("/tickets/:id", methodNotAllowed)
}

func methodNotAllowed(c *fiber.Ctx) error {
	return util.NewMethodNotAllowed()
}
