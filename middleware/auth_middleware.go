package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.EqualFold(err.Error(), "Missing or malformed JWT") {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

var errNoClaims = errors.New("missing token claims")

func claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errNoClaims
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errNoClaims
	}
	return mc, nil
}

// UserID reads the caller's id from the verified token.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	mc, err := claims(c)
	if err != nil {
		return uuid.Nil, err
	}
	raw, _ := mc["user_id"].(string)
	return uuid.Parse(raw)
}

func Role(c *fiber.Ctx) string {
	mc, err := claims(c)
	if err != nil {
		return ""
	}
	role, _ := mc["role"].(string)
	return role
}

// RoleRequired lets the request through only when the token carries one of
// roles.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: " + roles[0] + " access required",
		})
	}
}
