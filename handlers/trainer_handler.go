package handlers

import (
	"github.com/anjiri1684/mockprep/middleware"
	"github.com/gofiber/fiber/v2"
)

type TrainerMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
}

func (h *Handler) GetTrainerMessages(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	conv, err := h.Trainer.Conversation(c.UserContext(), studentID, middleware.Tier(c))
	if err != nil {
		return storeError(err, "Conversation")
	}
	return c.JSON(conv)
}

func (h *Handler) SendTrainerMessage(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req TrainerMessageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	t := middleware.Tier(c)
	// make sure the greeting is in place before the first question
	if _, err := h.Trainer.Conversation(c.UserContext(), studentID, t); err != nil {
		return storeError(err, "Conversation")
	}
	reply, err := h.Trainer.Send(c.UserContext(), studentID, t, req.Content)
	if err != nil {
		return storeError(err, "Conversation")
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}
