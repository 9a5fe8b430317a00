package handlers

import (
	"log"
	"math"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/notifications"
	"github.com/anjiri1684/mockprep/services"
	"github.com/gofiber/fiber/v2"
)

const maxSlotLength = 4 * time.Hour

type CreateAvailabilityRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

func (h *Handler) CreateAvailability(c *fiber.Ctx) error {
	interviewerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req CreateAvailabilityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if !req.EndTime.After(req.StartTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End time must be after start time"})
	}
	if req.EndTime.Sub(req.StartTime) > maxSlotLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A slot can be at most 4 hours long"})
	}
	if !req.StartTime.After(h.now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be in the future"})
	}

	ctx := c.UserContext()
	existing, err := h.Store.ListSlots(ctx, interviewerID)
	if err != nil {
		return storeError(err, "Availability")
	}
	for _, s := range existing {
		if req.StartTime.Before(s.EndTime) && s.StartTime.Before(req.EndTime) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slot overlaps an existing slot"})
		}
	}

	slot := models.AvailabilitySlot{
		InterviewerID: interviewerID,
		StartTime:     req.StartTime.UTC(),
		EndTime:       req.EndTime.UTC(),
	}
	if err := h.Store.CreateSlot(ctx, &slot); err != nil {
		return storeError(err, "Availability slot")
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

func (h *Handler) GetMyAvailability(c *fiber.Ctx) error {
	interviewerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	slots, err := h.Store.ListSlots(c.UserContext(), interviewerID)
	if err != nil {
		return storeError(err, "Availability")
	}
	return c.JSON(slots)
}

func (h *Handler) DeleteAvailability(c *fiber.Ctx) error {
	interviewerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	slotID, err := paramID(c, "slotId")
	if err != nil {
		return err
	}
	if err := h.Store.DeleteSlot(c.UserContext(), interviewerID, slotID); err != nil {
		return storeError(err, "Availability slot")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) GetInterviewerInterviews(c *fiber.Ctx) error {
	interviewerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	interviews, err := h.Store.ListInterviewsByInterviewer(c.UserContext(), interviewerID)
	if err != nil {
		return storeError(err, "Interviews")
	}

	if status := c.Query("status"); status != "" {
		filtered := interviews[:0]
		for _, i := range interviews {
			if i.Status == status {
				filtered = append(filtered, i)
			}
		}
		interviews = filtered
	}
	return c.JSON(h.describe(c.UserContext(), interviews))
}

type SubmitFeedbackRequest struct {
	TechnicalSkills      float64                   `json:"technical_skills" validate:"required,min=1,max=5"`
	CommunicationSkills  float64                   `json:"communication_skills" validate:"required,min=1,max=5"`
	ProblemSolving       float64                   `json:"problem_solving" validate:"required,min=1,max=5"`
	CultureFit           float64                   `json:"culture_fit" validate:"required,min=1,max=5"`
	Strengths            string                    `json:"strengths" validate:"required,min=10"`
	AreasForImprovement  string                    `json:"areas_for_improvement" validate:"required,min=10"`
	AdditionalComments   string                    `json:"additional_comments"`
	Sentiment            *models.SentimentMetrics  `json:"sentiment_analysis"`
	RecommendedResources []models.LearningResource `json:"recommended_resources" validate:"dive"`
	PracticeQuestions    []string                  `json:"practice_questions"`
}

// SubmitFeedback stores the interviewer's report for a completed interview
// and starts rendering the PDF copy.
func (h *Handler) SubmitFeedback(c *fiber.Ctx) error {
	interviewerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req SubmitFeedbackRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ctx := c.UserContext()
	interview, err := h.Store.GetInterview(ctx, id)
	if err != nil {
		return storeError(err, "Interview")
	}
	if interview.InterviewerID != interviewerID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Interview not found"})
	}
	if interview.Status != models.InterviewCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Interview must be completed before feedback is submitted"})
	}

	scores := models.FeedbackScores{
		TechnicalSkills:     req.TechnicalSkills,
		CommunicationSkills: req.CommunicationSkills,
		ProblemSolving:      req.ProblemSolving,
		CultureFit:          req.CultureFit,
	}
	if err := services.ValidateScores(scores); err != nil {
		return storeError(err, "Feedback")
	}
	scores.Overall = services.DeriveOverall(scores)

	report := models.FeedbackReport{
		InterviewID:          interview.ID,
		StudentID:            interview.StudentID,
		InterviewerID:        interviewerID,
		Scores:               scores,
		Strengths:            services.SplitLines(req.Strengths),
		AreasForImprovement:  services.SplitLines(req.AreasForImprovement),
		AdditionalComments:   req.AdditionalComments,
		RecommendedResources: req.RecommendedResources,
		PracticeQuestions:    req.PracticeQuestions,
	}
	if req.Sentiment != nil {
		report.Sentiment = *req.Sentiment
	}
	if report.RecommendedResources == nil {
		report.RecommendedResources = []models.LearningResource{}
	}
	if report.PracticeQuestions == nil {
		report.PracticeQuestions = []string{}
	}

	if err := h.Store.CreateFeedback(ctx, &report); err != nil {
		return storeError(err, "Feedback")
	}
	log.Printf("✅ Feedback %s submitted for interview %s", report.ID, interview.ID)

	h.Reports.GenerateAsync(report.ID)
	if h.Mailer != nil {
		if student, err := h.Store.GetUser(ctx, interview.StudentID); err == nil {
			subject, body := notifications.FeedbackReady(student.FullName, interview.Role)
			go h.Mailer.SendEmail(student.FullName, student.Email, subject, body)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"feedback":      report,
		"average_score": services.AverageScore(report.Scores),
	})
}

type AnalyzeRequest struct {
	Transcript string `json:"transcript"`
}

// AnalyzeInterview runs the transcript analysis and returns scores the
// feedback form can start from.
func (h *Handler) AnalyzeInterview(c *fiber.Ctx) error {
	interviewerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req AnalyzeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	ctx := c.UserContext()
	interview, err := h.Store.GetInterview(ctx, id)
	if err != nil {
		return storeError(err, "Interview")
	}
	if interview.InterviewerID != interviewerID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Interview not found"})
	}

	result, err := h.Sentiment.Analyze(ctx, interview.Role, req.Transcript)
	if err != nil {
		return storeError(err, "Analysis")
	}

	suggested := models.FeedbackScores{
		TechnicalSkills:     math.Round(result.TechnicalScore),
		CommunicationSkills: math.Round(result.CommunicationScore),
		ProblemSolving:      math.Round(result.ProblemSolvingScore),
		CultureFit:          math.Round(result.CultureFitScore),
	}
	suggested.Overall = services.DeriveOverall(suggested)

	return c.JSON(fiber.Map{
		"analysis":         result,
		"suggested_scores": suggested,
	})
}
