package handlers

import (
	"context"

	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BookInterviewRequest struct {
	InterviewerID string  `json:"interviewer_id" validate:"required,uuid"`
	SlotID        string  `json:"slot_id" validate:"required,uuid"`
	CompanyID     *string `json:"company_id" validate:"omitempty,uuid"`
	Role          string  `json:"role" validate:"required,min=2,max=255"`
	Notes         string  `json:"notes" validate:"max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

type InterviewDetail struct {
	models.Interview
	StudentName     string `json:"student_name"`
	InterviewerName string `json:"interviewer_name"`
	Company         string `json:"company,omitempty"`
	HasFeedback     bool   `json:"has_feedback"`
}

// describe joins interviews with the names the dashboards show.
func (h *Handler) describe(ctx context.Context, interviews []models.Interview) []InterviewDetail {
	names := map[uuid.UUID]string{}
	companies := map[uuid.UUID]string{}
	name := func(id uuid.UUID) string {
		if n, ok := names[id]; ok {
			return n
		}
		if u, err := h.Store.GetUser(ctx, id); err == nil {
			names[id] = u.FullName
		}
		return names[id]
	}

	out := make([]InterviewDetail, 0, len(interviews))
	for _, i := range interviews {
		d := InterviewDetail{
			Interview:       i,
			StudentName:     name(i.StudentID),
			InterviewerName: name(i.InterviewerID),
		}
		if i.CompanyID != nil {
			if _, ok := companies[*i.CompanyID]; !ok {
				if co, err := h.Store.GetCompany(ctx, *i.CompanyID); err == nil {
					companies[*i.CompanyID] = co.Name
				}
			}
			d.Company = companies[*i.CompanyID]
		}
		if i.Status == models.InterviewCompleted {
			_, err := h.Store.GetFeedbackByInterview(ctx, i.ID)
			d.HasFeedback = err == nil
		}
		out = append(out, d)
	}
	return out
}

func (h *Handler) BookInterview(c *fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req BookInterviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	booking := services.BookingRequest{
		InterviewerID: uuid.MustParse(req.InterviewerID),
		SlotID:        uuid.MustParse(req.SlotID),
		Role:          req.Role,
		Notes:         req.Notes,
	}
	if req.CompanyID != nil {
		id := uuid.MustParse(*req.CompanyID)
		booking.CompanyID = &id
	}

	interview, err := h.Interviews.Book(c.UserContext(), studentID, middleware.Tier(c), booking)
	if err != nil {
		return storeError(err, "Availability slot")
	}
	return c.Status(fiber.StatusCreated).JSON(h.describe(c.UserContext(), []models.Interview{*interview})[0])
}

// GetMyInterviews lists the caller's interviews as student or interviewer,
// with the plan quota for students.
func (h *Handler) GetMyInterviews(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()

	if middleware.Role(c) == models.RoleInterviewer {
		interviews, err := h.Store.ListInterviewsByInterviewer(ctx, userID)
		if err != nil {
			return storeError(err, "Interviews")
		}
		return c.JSON(fiber.Map{"interviews": h.describe(ctx, interviews)})
	}

	interviews, err := h.Store.ListInterviewsByStudent(ctx, userID)
	if err != nil {
		return storeError(err, "Interviews")
	}
	quota, err := h.Interviews.Quota(ctx, userID, middleware.Tier(c))
	if err != nil {
		return storeError(err, "Quota")
	}
	return c.JSON(fiber.Map{"interviews": h.describe(ctx, interviews), "quota": quota})
}

// loadParticipantInterview returns the interview only to its student,
// its interviewer or an admin.
func (h *Handler) loadParticipantInterview(c *fiber.Ctx) (*models.Interview, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}
	interview, err := h.Store.GetInterview(c.UserContext(), id)
	if err != nil {
		return nil, storeError(err, "Interview")
	}
	if interview.StudentID != userID && interview.InterviewerID != userID && middleware.Role(c) != models.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusNotFound, "Interview not found")
	}
	return interview, nil
}

func (h *Handler) GetInterview(c *fiber.Ctx) error {
	interview, err := h.loadParticipantInterview(c)
	if err != nil {
		return err
	}
	return c.JSON(h.describe(c.UserContext(), []models.Interview{*interview})[0])
}

func (h *Handler) UpdateInterviewStatus(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	interview, err := h.Interviews.Transition(c.UserContext(), id, userID, middleware.Role(c), req.Status)
	if err != nil {
		return storeError(err, "Interview")
	}
	if h.Analysis != nil {
		switch interview.Status {
		case models.InterviewCompleted, models.InterviewCancelled:
			h.Analysis.Release(interview.ID)
		case models.InterviewConfirmed:
		default:
			h.Analysis.Stop(interview.ID)
		}
	}
	return c.JSON(interview)
}
