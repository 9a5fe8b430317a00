package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/anjiri1684/mockprep/analysis"
	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/notifications"
	"github.com/anjiri1684/mockprep/services"
	"github.com/anjiri1684/mockprep/store"
	"github.com/anjiri1684/mockprep/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// Handler carries the dependencies every route needs.
type Handler struct {
	Store       store.Store
	Interviews  *services.InterviewService
	Assessments *services.AssessmentService
	Trainer     *services.TrainerService
	Sentiment   *services.SentimentAnalyzer
	Reports     *services.ReportService
	Media       *services.MediaService
	Analysis    *analysis.Runner
	Hub         *websocket.Hub
	Mailer      notifications.Mailer
	JWTSecret   string
	TokenTTL    time.Duration
	Now         func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// ErrorHandler renders every error a handler returns as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	msg := err.Error()
	if code == fiber.StatusInternalServerError && e == nil {
		log.Printf("🔥 %s %s: %v", c.Method(), c.Path(), err)
		msg = "Internal server error"
	}
	return c.Status(code).JSON(fiber.Map{"status": "error", "code": code, "error": msg})
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := middleware.UserID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return id, nil
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// storeError maps a store or service error to an HTTP error.
func storeError(err error, what string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	case errors.Is(err, store.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, what+" already exists")
	case errors.Is(err, store.ErrSlotUnavailable):
		return fiber.NewError(fiber.StatusConflict, "This time slot is no longer available.")
	case errors.Is(err, services.ErrQuotaExceeded),
		errors.Is(err, services.ErrFeatureLocked),
		errors.Is(err, analysis.ErrNotRealtime):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrAssessmentState),
		errors.Is(err, store.ErrStatusChanged):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidScore), errors.Is(err, services.ErrUnknownQuestion):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAnalysisFailed):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
	log.Printf("🔥 Failed to load %s: %v", what, err)
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to load "+what)
}
