package handlers

import (
	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/services"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) loadFeedback(c *fiber.Ctx) (*models.FeedbackReport, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}
	f, err := h.Store.GetFeedback(c.UserContext(), id)
	if err != nil {
		return nil, storeError(err, "Feedback")
	}
	if f.StudentID != userID && f.InterviewerID != userID && middleware.Role(c) != models.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusNotFound, "Feedback not found")
	}
	return f, nil
}

func (h *Handler) GetFeedback(c *fiber.Ctx) error {
	f, err := h.loadFeedback(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	summary := services.Summarize(*f, middleware.Tier(c))

	resp := fiber.Map{"feedback": summary}
	if interview, err := h.Store.GetInterview(ctx, f.InterviewID); err == nil {
		resp["interview"] = h.describe(ctx, []models.Interview{*interview})[0]
	}
	return c.JSON(resp)
}

func (h *Handler) GetMyFeedback(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	reports, err := h.Store.ListFeedbackByStudent(c.UserContext(), studentID)
	if err != nil {
		return storeError(err, "Feedback")
	}

	t := middleware.Tier(c)
	out := make([]services.FeedbackSummary, 0, len(reports))
	for _, f := range reports {
		out = append(out, services.Summarize(f, t))
	}
	return c.JSON(out)
}

// GetFeedbackTrainer tells the student which areas need work and which
// trainer options their plan offers for them.
func (h *Handler) GetFeedbackTrainer(c *fiber.Ctx) error {
	f, err := h.loadFeedback(c)
	if err != nil {
		return err
	}
	areas := services.AreasFromScores(f.Scores)
	if f.Sentiment.Confidence > 0 {
		// sentiment confidence is a percentage; rated areas use the 1-5 scale
		areas.Confidence = float64(f.Sentiment.Confidence) / 20
	}
	return c.JSON(services.ConnectTrainer(middleware.Tier(c), services.LowRatedAreas(areas)))
}
