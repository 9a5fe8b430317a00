package routes

import (
	"github.com/anjiri1684/mockprep/handlers"
	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/models"
	"github.com/gofiber/fiber/v2"
)

func AccountRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	api.Get("/capabilities", protected(h, h.GetCapabilities)...)
	api.Put("/subscription", protected(h, middleware.RoleRequired(models.RoleStudent), h.UpdateSubscription)...)

	profile := api.Group("/profile", protected(h)...)
	profile.Get("", h.GetProfile)
	profile.Put("/student", middleware.RoleRequired(models.RoleStudent), h.UpdateStudentProfile)
	profile.Put("/interviewer", middleware.RoleRequired(models.RoleInterviewer), h.UpdateInterviewerProfile)

	uploads := api.Group("/uploads", protected(h)...)
	uploads.Get("/resume-signature", middleware.RoleRequired(models.RoleStudent), h.GetResumeSignature)
}
