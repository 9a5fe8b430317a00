package middleware

import (
	"log"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
	"github.com/anjiri1684/mockprep/store"
	"github.com/gofiber/fiber/v2"
)

const (
	tierKey    = "tier"
	accountKey = "account"
)

// ResolveTier loads the caller's user record and stores their plan tier on
// the request. Plans that do not parse resolve to free.
func ResolveTier(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
		}
		u, err := s.GetUser(c.UserContext(), id)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
		}
		if !u.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is disabled"})
		}

		t, ok := policy.ParseTier(u.Plan)
		if !ok {
			if u.Role == models.RoleStudent {
				log.Printf("⚠️ User %s has unknown plan %q, treating as free", u.ID, u.Plan)
			}
			t = policy.TierFree
		}
		c.Locals(tierKey, t)
		c.Locals(accountKey, u)
		return c.Next()
	}
}

// Tier is the caller's resolved tier, free when ResolveTier has not run.
func Tier(c *fiber.Ctx) policy.Tier {
	if t, ok := c.Locals(tierKey).(policy.Tier); ok {
		return t
	}
	return policy.TierFree
}

func Account(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(accountKey).(*models.User)
	return u
}
