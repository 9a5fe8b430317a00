package handlers

import (
	"github.com/anjiri1684/mockprep/store"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.Store.ListCompanies(c.UserContext(), c.Query("q"))
	if err != nil {
		return storeError(err, "Companies")
	}
	return c.JSON(companies)
}

func (h *Handler) GetCompany(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	company, err := h.Store.GetCompany(c.UserContext(), id)
	if err != nil {
		return storeError(err, "Company")
	}

	interviewers, err := h.Store.ListInterviewers(c.UserContext(), store.InterviewerFilter{Company: company.Name})
	if err != nil {
		return storeError(err, "Interviewers")
	}
	return c.JSON(fiber.Map{"company": company, "interviewers": interviewers})
}

func (h *Handler) ListInterviewers(c *fiber.Ctx) error {
	interviewers, err := h.Store.ListInterviewers(c.UserContext(), store.InterviewerFilter{
		Query:   c.Query("q"),
		Company: c.Query("company"),
		Role:    c.Query("role"),
	})
	if err != nil {
		return storeError(err, "Interviewers")
	}
	return c.JSON(interviewers)
}

// GetInterviewerAvailability lists the interviewer's future slots that are
// still open for booking.
func (h *Handler) GetInterviewerAvailability(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.Store.GetInterviewerProfile(c.UserContext(), id)
	if err != nil {
		return storeError(err, "Interviewer")
	}
	slots, err := h.Store.ListOpenSlots(c.UserContext(), id, h.now())
	if err != nil {
		return storeError(err, "Availability")
	}
	return c.JSON(fiber.Map{"interviewer": profile, "slots": slots})
}
