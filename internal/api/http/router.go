package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticketd/ticketd/internal/api/http/handlers"
	"github.com/ticketd/ticketd/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Signup, login and health probes are
// open; everything touching tickets or sessions sits behind the auth gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/signup", cfg.Auth.Signup)
	app.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/logout", cfg.Auth.Logout)

	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets", cfg.Tickets.List)
	protected.Get("/tickets/:id", cfg.Tickets.Get)
	protected.Post("/tickets/:id", cfg.Tickets.Edit)
	protected.Delete("/tickets/:id", cfg.Tickets.Delete)
	protected.Post("/filter", cfg.Tickets.Filter)
}
