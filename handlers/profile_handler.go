package handlers

import (
	"errors"

	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/store"
	"github.com/gofiber/fiber/v2"
)

type UpdateStudentProfileRequest struct {
	Education     *string  `json:"education" validate:"omitempty,max=2000"`
	Experience    *string  `json:"experience" validate:"omitempty,max=4000"`
	Skills        []string `json:"skills" validate:"omitempty,max=50,dive,min=1,max=100"`
	ResumeURL     *string  `json:"resume_url" validate:"omitempty,url"`
	TargetRole    *string  `json:"target_role" validate:"omitempty,max=255"`
	TargetCompany *string  `json:"target_company" validate:"omitempty,max=255"`
}

type UpdateInterviewerProfileRequest struct {
	Company         *string  `json:"company" validate:"omitempty,min=1,max=255"`
	Title           *string  `json:"title" validate:"omitempty,min=1,max=255"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,min=0,max=60"`
	Specialization  []string `json:"specialization" validate:"omitempty,max=20,dive,min=1,max=100"`
	AvatarURL       *string  `json:"avatar_url" validate:"omitempty,max=255"`
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	user := middleware.Account(c)
	ctx := c.UserContext()
	resp := fiber.Map{"user": toUserResponse(user)}

	switch user.Role {
	case models.RoleStudent:
		if p, err := h.Store.GetStudentProfile(ctx, user.ID); err == nil {
			resp["profile"] = p
		}
	case models.RoleInterviewer:
		if p, err := h.Store.GetInterviewerProfile(ctx, user.ID); err == nil {
			resp["profile"] = p
		}
	}
	return c.JSON(resp)
}

func (h *Handler) UpdateStudentProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req UpdateStudentProfileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ctx := c.UserContext()
	profile, err := h.Store.GetStudentProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		profile = &models.StudentProfile{UserID: userID}
	} else if err != nil {
		return storeError(err, "Profile")
	}

	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.Skills != nil {
		profile.Skills = req.Skills
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = req.ResumeURL
	}
	if req.TargetRole != nil {
		profile.TargetRole = *req.TargetRole
	}
	if req.TargetCompany != nil {
		profile.TargetCompany = *req.TargetCompany
	}

	if err := h.Store.SaveStudentProfile(ctx, profile); err != nil {
		return storeError(err, "Profile")
	}
	return c.JSON(profile)
}

func (h *Handler) UpdateInterviewerProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req UpdateInterviewerProfileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ctx := c.UserContext()
	profile, err := h.Store.GetInterviewerProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		profile = &models.InterviewerProfile{UserID: userID}
	} else if err != nil {
		return storeError(err, "Profile")
	}

	if req.Company != nil {
		profile.Company = *req.Company
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Specialization != nil {
		profile.Specialization = req.Specialization
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}

	if err := h.Store.SaveInterviewerProfile(ctx, profile); err != nil {
		return storeError(err, "Profile")
	}
	return c.JSON(profile)
}
