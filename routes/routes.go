package routes

import (
	"github.com/anjiri1684/mockprep/handlers"
	"github.com/anjiri1684/mockprep/middleware"
	"github.com/gofiber/fiber/v2"
)

// Register mounts the whole API. Public routes go first: fiber runs group
// middleware on every path sharing the group prefix, so /interviewers must
// be matched before the protected /interviewer group.
func Register(app *fiber.App, h *handlers.Handler) {
	AuthRoutes(app, h)
	PublicRoutes(app, h)
	AccountRoutes(app, h)
	InterviewRoutes(app, h)
	InterviewerRoutes(app, h)
	StudentRoutes(app, h)
	AnalysisRoutes(app, h)
}

// protected prepends token and tier checks to handlers.
func protected(h *handlers.Handler, next ...fiber.Handler) []fiber.Handler {
	return append([]fiber.Handler{middleware.Protected(h.JWTSecret), middleware.ResolveTier(h.Store)}, next...)
}
