package handlers

import (
	"github.com/anjiri1684/mockprep/services"
	"github.com/gofiber/fiber/v2"
)

type AttemptActionRequest struct {
	Action string `json:"action" validate:"required,oneof=start answer next previous submit"`
	Answer string `json:"answer" validate:"max=20000"`
}

func (h *Handler) GetAssessment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.Store.GetAssessment(c.UserContext(), id)
	if err != nil {
		return storeError(err, "Assessment")
	}
	return c.JSON(fiber.Map{
		"id":                 a.ID,
		"title":              a.Title,
		"description":        a.Description,
		"time_limit_minutes": a.TimeLimitMinutes,
		"sections":           a.Sections,
		"questions":          services.PublicQuestions(a),
	})
}

func (h *Handler) CreateAttempt(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.Assessments.CreateAttempt(c.UserContext(), id, studentID)
	if err != nil {
		return storeError(err, "Assessment")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *Handler) GetAttempt(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "attemptId")
	if err != nil {
		return err
	}
	view, err := h.Assessments.GetAttempt(c.UserContext(), id, studentID)
	if err != nil {
		return storeError(err, "Attempt")
	}
	return c.JSON(view)
}

// UpdateAttempt applies one wizard action. A rejected action still returns
// the attempt so the client can resync.
func (h *Handler) UpdateAttempt(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "attemptId")
	if err != nil {
		return err
	}
	var req AttemptActionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	view, err := h.Assessments.Apply(c.UserContext(), id, studentID, req.Action, req.Answer)
	if err != nil {
		if view != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error(), "attempt": view})
		}
		return storeError(err, "Attempt")
	}
	return c.JSON(view)
}
