package routes

import (
	"github.com/anjiri1684/mockprep/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Get("/register/flow", h.RegistrationFlow)
	auth.Post("/login", h.Login)
}
