package routes

import (
	"github.com/anjiri1684/mockprep/handlers"
	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/models"
	"github.com/gofiber/fiber/v2"
)

func InterviewRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	interviews := api.Group("/interviews", protected(h)...)
	interviews.Post("", middleware.RoleRequired(models.RoleStudent), h.BookInterview)
	interviews.Get("/me", h.GetMyInterviews)
	interviews.Get("/:id", h.GetInterview)
	interviews.Put("/:id/status", h.UpdateInterviewStatus)
	interviews.Get("/:id/analysis", h.GetAnalysis)
	interviews.Post("/:id/analysis", h.ControlAnalysis)

	feedback := api.Group("/feedback", protected(h)...)
	feedback.Get("/me", middleware.RoleRequired(models.RoleStudent), h.GetMyFeedback)
	feedback.Get("/:id", h.GetFeedback)
	feedback.Get("/:id/trainer", middleware.RoleRequired(models.RoleStudent), h.GetFeedbackTrainer)
}

func InterviewerRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	interviewer := api.Group("/interviewer", protected(h, middleware.RoleRequired(models.RoleInterviewer))...)
	interviewer.Post("/availability", h.CreateAvailability)
	interviewer.Get("/availability", h.GetMyAvailability)
	interviewer.Delete("/availability/:slotId", h.DeleteAvailability)
	interviewer.Get("/interviews", h.GetInterviewerInterviews)
	interviewer.Post("/interviews/:id/feedback", h.SubmitFeedback)
	interviewer.Post("/interviews/:id/analyze", h.AnalyzeInterview)

	api.Get("/dashboard/interviewer", protected(h, middleware.RoleRequired(models.RoleInterviewer), h.InterviewerDashboard)...)
}
