package handlers

import (
	"log"

	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/policy"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetPlans(c *fiber.Ctx) error {
	billing := policy.ParseBilling(c.Query("billing"))
	return c.JSON(fiber.Map{"billing": billing, "plans": policy.Plans(billing)})
}

// GetCapabilities tells the front end what the caller's plan unlocks.
func (h *Handler) GetCapabilities(c *fiber.Ctx) error {
	t := middleware.Tier(c)
	return c.JSON(fiber.Map{
		"tier":         t,
		"label":        t.Label(),
		"capabilities": policy.Capabilities(t),
	})
}

type SubscriptionRequest struct {
	Plan    string `json:"plan" validate:"required,oneof=free basic professional enterprise"`
	Billing string `json:"billing" validate:"omitempty,oneof=monthly quarterly"`
}

// UpdateSubscription records a plan change. No payment is taken.
func (h *Handler) UpdateSubscription(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req SubscriptionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	t := policy.Resolve(req.Plan)
	if err := h.Store.UpdateUserPlan(c.UserContext(), userID, string(t)); err != nil {
		return storeError(err, "User")
	}
	log.Printf("✅ User %s moved from %s to %s", userID, middleware.Tier(c), t)

	return c.JSON(fiber.Map{
		"tier":         t,
		"plan":         policy.PlanFor(t, policy.ParseBilling(req.Billing)),
		"capabilities": policy.Capabilities(t),
	})
}
