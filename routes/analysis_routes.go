package routes

import (
	"github.com/anjiri1684/mockprep/handlers"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// AnalysisRoutes serves the live analysis stream. Sockets authenticate with
// their first message, so there is no token middleware here.
func AnalysisRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/interviews/:id/analysis", websocket.New(h.ServeAnalysisWs))
}
