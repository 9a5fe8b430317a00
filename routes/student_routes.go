package routes

import (
	"github.com/anjiri1684/mockprep/handlers"
	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/models"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")
	studentOnly := middleware.RoleRequired(models.RoleStudent)

	trainer := api.Group("/trainer", protected(h, studentOnly)...)
	trainer.Get("/messages", h.GetTrainerMessages)
	trainer.Post("/messages", h.SendTrainerMessage)

	assessments := api.Group("/assessments", protected(h, studentOnly)...)
	assessments.Get("/attempts/:attemptId", h.GetAttempt)
	assessments.Put("/attempts/:attemptId", h.UpdateAttempt)
	assessments.Get("/:id", h.GetAssessment)
	assessments.Post("/:id/attempts", h.CreateAttempt)

	api.Get("/training", protected(h, studentOnly, h.ListTraining)...)
	api.Get("/dashboard/student", protected(h, studentOnly, h.StudentDashboard)...)
}
