package handlers

import (
	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
	"github.com/anjiri1684/mockprep/services"
	"github.com/gofiber/fiber/v2"
)

const recentFeedbackLimit = 3

func (h *Handler) StudentDashboard(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	t := middleware.Tier(c)

	profile, err := h.Store.GetStudentProfile(ctx, studentID)
	if err != nil {
		profile = &models.StudentProfile{UserID: studentID}
	}

	interviews, err := h.Store.ListInterviewsByStudent(ctx, studentID)
	if err != nil {
		return storeError(err, "Interviews")
	}
	now := h.now()
	upcoming := []models.Interview{}
	completed := 0
	for _, i := range interviews {
		switch {
		case i.Status == models.InterviewCompleted:
			completed++
		case (i.Status == models.InterviewConfirmed || i.Status == models.InterviewPending) && i.EndTime.After(now):
			upcoming = append(upcoming, i)
		}
	}

	reports, err := h.Store.ListFeedbackByStudent(ctx, studentID)
	if err != nil {
		return storeError(err, "Feedback")
	}
	recent := make([]services.FeedbackSummary, 0, recentFeedbackLimit)
	for _, f := range reports {
		if len(recent) == recentFeedbackLimit {
			break
		}
		recent = append(recent, services.Summarize(f, t))
	}

	modules, overall, err := h.trainingProgress(ctx, studentID)
	if err != nil {
		return err
	}
	quota, err := h.Interviews.Quota(ctx, studentID, t)
	if err != nil {
		return storeError(err, "Quota")
	}

	caps := policy.Capabilities(t)
	return c.JSON(fiber.Map{
		"user":                 toUserResponse(middleware.Account(c)),
		"tier":                 t,
		"plan_label":           t.Label(),
		"dashboard":            caps.Dashboard,
		"profile":              profile,
		"upcoming_interviews":  h.describe(ctx, upcoming),
		"completed_interviews": completed,
		"recent_feedback":      recent,
		"training":             modules,
		"training_progress":    overall,
		"quota":                quota,
	})
}

func (h *Handler) InterviewerDashboard(c *fiber.Ctx) error {
	interviewerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()

	profile, err := h.Store.GetInterviewerProfile(ctx, interviewerID)
	if err != nil {
		return storeError(err, "Interviewer profile")
	}
	interviews, err := h.Store.ListInterviewsByInterviewer(ctx, interviewerID)
	if err != nil {
		return storeError(err, "Interviews")
	}

	now := h.now()
	var upcoming, requests, awaitingFeedback []models.Interview
	completed := 0
	for _, i := range interviews {
		switch i.Status {
		case models.InterviewPending:
			if i.StartTime.After(now) {
				requests = append(requests, i)
			}
		case models.InterviewConfirmed:
			if i.EndTime.After(now) {
				upcoming = append(upcoming, i)
			}
		case models.InterviewCompleted:
			completed++
			if _, err := h.Store.GetFeedbackByInterview(ctx, i.ID); err != nil {
				awaitingFeedback = append(awaitingFeedback, i)
			}
		}
	}

	open, err := h.Store.ListOpenSlots(ctx, interviewerID, now)
	if err != nil {
		return storeError(err, "Availability")
	}

	return c.JSON(fiber.Map{
		"profile":              profile,
		"upcoming_interviews":  h.describe(ctx, upcoming),
		"pending_requests":     h.describe(ctx, requests),
		"awaiting_feedback":    h.describe(ctx, awaitingFeedback),
		"completed_interviews": completed,
		"open_slots":           len(open),
	})
}
