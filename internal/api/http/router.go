package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/survey-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Survey    *handlers.SurveyHandler
	Dashboard *handlers.DashboardHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")
	api.Post("/entries", cfg.Survey.SubmitEntry)
	api.Delete("/entries", cfg.Survey.ResetEntries)
	api.Get("/export", cfg.Survey.ExportCSV)
	api.Get("/dashboard", cfg.Dashboard.GetDashboard)

	app.Get("/dashboard", cfg.Dashboard.GetDashboardPage)
}
