package routes

import (
	"github.com/anjiri1684/mockprep/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	api.Get("/plans", h.GetPlans)
	api.Get("/companies", h.ListCompanies)
	api.Get("/companies/:id", h.GetCompany)
	api.Get("/interviewers", h.ListInterviewers)
	api.Get("/interviewers/:id/availability", h.GetInterviewerAvailability)
	api.Get("/practice", h.ListPractice)
}
