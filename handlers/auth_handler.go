package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
	"github.com/anjiri1684/mockprep/services"
	"github.com/anjiri1684/mockprep/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=student interviewer"`
	Plan     string `json:"plan" validate:"omitempty,oneof=free basic professional enterprise"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Plan      string    `json:"plan,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Plan:      u.Plan,
		CreatedAt: u.CreatedAt,
	}
}

// RegistrationFlow reports the sign-up wizard state for the ?role=, ?plan=
// and ?step= query parameters, moved one step by ?dir=next|previous.
func (h *Handler) RegistrationFlow(c *fiber.Ctx) error {
	flow := services.NewRegistrationFlow(c.Query("role"), c.Query("plan"))
	switch services.RegistrationStep(c.Query("step")) {
	case services.StepRole, services.StepPlan, services.StepDetails:
		flow.Step = services.RegistrationStep(c.Query("step"))
	}
	if flow.Role == models.RoleInterviewer && flow.Step == services.StepPlan {
		flow.Step = services.StepDetails
	}

	switch c.Query("dir") {
	case "next":
		flow = flow.Next()
	case "previous":
		flow = flow.Previous()
	}

	return c.JSON(fiber.Map{
		"flow":  flow,
		"plans": policy.Plans(policy.ParseBilling(c.Query("billing"))),
	})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	// body values win over the query parameters the sign-up link carried
	role, plan := req.Role, req.Plan
	if role == "" {
		role = c.Query("role")
	}
	if plan == "" {
		plan = c.Query("plan")
	}
	flow := services.NewRegistrationFlow(role, plan)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	newUser := models.User{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashedPassword),
		Role:     flow.Role,
		Plan:     flow.StoredPlan(),
		IsActive: true,
	}
	ctx := c.UserContext()
	if err := h.Store.CreateUser(ctx, &newUser); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		log.Printf("🔥 Failed to create user %s: %v", newUser.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	if newUser.Role == models.RoleInterviewer {
		err = h.Store.SaveInterviewerProfile(ctx, &models.InterviewerProfile{UserID: newUser.ID, Specialization: []string{}})
	} else {
		err = h.Store.SaveStudentProfile(ctx, &models.StudentProfile{UserID: newUser.ID})
	}
	if err != nil {
		log.Printf("⚠️ Failed to create profile for %s: %v", newUser.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(&newUser))
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.Store.GetUserByEmail(c.UserContext(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is disabled"})
	}

	ttl := h.TokenTTL
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     h.now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": t, "user": toUserResponse(user)})
}
