package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	AdminAuth       *handlers.AdminAuthHandler
	Contact         *handlers.ContactHandler
	Orders          *handlers.OrdersHandler
	JobApplications *handlers.JobApplicationsHandler
	BankDetails     *handlers.BankDetailsHandler
	Payments        *handlers.PaymentsHandler
	AuthMiddleware  *auth.AuthMiddleware
	Metrics         fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	api := app.Group("/api")
	api.Get("/bank-details", cfg.BankDetails.Get)
	api.Post("/contact", cfg.Contact.Submit)
	api.Post("/job-applications", cfg.JobApplications.Submit)
	api.Post("/orders", cfg.Orders.Create)
	api.Post("/payments/initialize", cfg.Payments.Initialize)
	api.Get("/payments/verify/:reference", cfg.Payments.Verify)

	adminAuth := api.Group("/admin/auth")
	adminAuth.Post("/login", cfg.AdminAuth.Login)
	adminAuth.Post("/logout", cfg.AdminAuth.Logout)
	adminAuth.Get("/verify", cfg.AdminAuth.Verify)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole())
	admin.Put("/bank-details", cfg.BankDetails.Update)

	admin.Get("/orders", cfg.Orders.List)
	admin.Get("/orders/:id", cfg.Orders.Get)
	admin.Patch("/orders/:id", cfg.Orders.UpdateStatus)
	admin.Delete("/orders/:id", cfg.Orders.Delete)

	admin.Get("/job-applications", cfg.JobApplications.List)
	admin.Get("/job-applications/:id", cfg.JobApplications.Get)
	admin.Patch("/job-applications/:id", cfg.JobApplications.UpdateStatus)
	admin.Delete("/job-applications/:id", cfg.JobApplications.Delete)
}
