package http

import (
	"activevacancy/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// Register wires all routes onto the app. Admin routes after the login
// endpoint sit behind the bearer-token middleware.
func Register(app *fiber.App, h *Handler, admin *AdminHandler, tokens *auth.TokenService) {
	app.Get("/health", h.Health)

	app.Get("/visa-jobs", h.ListVisaJobs)
	app.Get("/visa-jobs/:id", h.GetVisaJob)
	app.Post("/visa-job-applications", h.SubmitVisaApplication)
	app.Get("/visa-job-applications/:reference/document", h.DownloadReferral)

	app.Get("/jobs", h.ListJobs)
	app.Post("/applications", h.SubmitJobApplication)

	g := app.Group("/admin")
	g.Post("/login", admin.Login)
	g.Use(RequireAdmin(tokens))
	g.Post("/visa-jobs", admin.CreateVisaJob)
	g.Put("/visa-jobs/:id", admin.UpdateVisaJob)
	g.Delete("/visa-jobs/:id", admin.DeleteVisaJob)
	g.Post("/jobs", admin.CreateJob)
	g.Put("/jobs/:id", admin.UpdateJob)
	g.Delete("/jobs/:id", admin.DeleteJob)
	g.Get("/visa-applications", admin.ListVisaApplications)
	g.Get("/applications", admin.ListJobApplications)
}
