package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/data"
	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func sign(t *testing.T, id uuid.UUID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id.String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return s
}

func newApp(t *testing.T) (*fiber.App, *store.MemoryStore) {
	t.Helper()
	s, err := store.NewSeededMemoryStore(time.Now())
	if err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	app := fiber.New()
	api := app.Group("/", Protected(testSecret), ResolveTier(s))
	api.Get("/tier", func(c *fiber.Ctx) error {
		return c.SendString(string(Tier(c)) + "/" + Account(c).FullName)
	})
	api.Get("/students", RoleRequired(models.RoleStudent), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, s
}

func get(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestResolveTierFromUserRecord(t *testing.T) {
	app, s := newApp(t)

	code, body := get(t, app, "/tier", sign(t, data.AlexID, models.RoleStudent))
	if code != fiber.StatusOK || body != "basic/Alex Johnson" {
		t.Fatalf("got %d %q", code, body)
	}

	if err := s.UpdateUserPlan(context.Background(), data.AlexID, "platinum"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, body := get(t, app, "/tier", sign(t, data.AlexID, models.RoleStudent)); body != "free/Alex Johnson" {
		t.Errorf("unknown plan should fail closed to free, got %q", body)
	}

	if _, body := get(t, app, "/tier", sign(t, data.RahulID, models.RoleInterviewer)); body != "free/Rahul Sharma" {
		t.Errorf("interviewer without plan, got %q", body)
	}
}

func TestProtectedRejects(t *testing.T) {
	app, _ := newApp(t)

	if code, _ := get(t, app, "/tier", ""); code != fiber.StatusBadRequest {
		t.Errorf("missing token: got %d, want 400", code)
	}
	if code, _ := get(t, app, "/tier", "not-a-token"); code != fiber.StatusUnauthorized {
		t.Errorf("bad token: got %d, want 401", code)
	}
	if code, _ := get(t, app, "/tier", sign(t, uuid.New(), models.RoleStudent)); code != fiber.StatusUnauthorized {
		t.Errorf("unknown user: got %d, want 401", code)
	}
}

func TestRoleRequired(t *testing.T) {
	app, _ := newApp(t)

	if code, _ := get(t, app, "/students", sign(t, data.AlexID, models.RoleStudent)); code != fiber.StatusNoContent {
		t.Errorf("student: got %d, want 204", code)
	}
	if code, _ := get(t, app, "/students", sign(t, data.RahulID, models.RoleInterviewer)); code != fiber.StatusForbidden {
		t.Errorf("interviewer: got %d, want 403", code)
	}
}
