package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/anjiri1684/mockprep/middleware"
	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
	"github.com/anjiri1684/mockprep/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type AnalysisRequest struct {
	Action string  `json:"action" validate:"required,oneof=start stop rate"`
	Metric string  `json:"metric" validate:"required_if=Action rate"`
	Value  float64 `json:"value" validate:"min=0,max=100"`
}

// analysisCaps gates live analysis by the plan of the student being
// interviewed, whoever is watching.
func (h *Handler) analysisCaps(ctx context.Context, i *models.Interview) policy.Capability {
	u, err := h.Store.GetUser(ctx, i.StudentID)
	if err != nil {
		return policy.Capabilities(policy.TierFree)
	}
	return policy.Capabilities(policy.Resolve(u.Plan))
}

func (h *Handler) analysisState(ctx context.Context, i *models.Interview) fiber.Map {
	caps := h.analysisCaps(ctx, i)
	return fiber.Map{
		"recording":  h.Analysis.Recording(i.ID),
		"capability": caps.Analysis,
		"snapshot":   h.Analysis.Peek(i.ID).Snapshot(caps),
	}
}

func (h *Handler) GetAnalysis(c *fiber.Ctx) error {
	interview, err := h.loadParticipantInterview(c)
	if err != nil {
		return err
	}
	return c.JSON(h.analysisState(c.UserContext(), interview))
}

// ControlAnalysis starts or stops the live analysis of an interview, or sets
// one metric by hand.
func (h *Handler) ControlAnalysis(c *fiber.Ctx) error {
	interview, err := h.loadParticipantInterview(c)
	if err != nil {
		return err
	}
	var req AnalysisRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ctx := c.UserContext()
	caps := h.analysisCaps(ctx, interview)

	switch req.Action {
	case "start":
		if interview.Status != models.InterviewConfirmed {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only confirmed interviews can be recorded"})
		}
		// the loop outlives this request
		if err := h.Analysis.Start(context.Background(), interview.ID, caps); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  err.Error(),
				"notice": caps.Analysis.Notice,
			})
		}
	case "stop":
		h.Analysis.Stop(interview.ID)
	case "rate":
		if middleware.Role(c) != models.RoleInterviewer {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the interviewer can rate"})
		}
		if !caps.Analysis.Realtime {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Real-time interview analysis is available on Basic plan and above.", "notice": caps.Analysis.Notice})
		}
		if err := h.Analysis.Panel(interview.ID).Rate(req.Metric, req.Value); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if h.Hub != nil {
			h.Hub.Publish(interview.ID, h.Analysis.Panel(interview.ID).Snapshot(caps))
		}
	}

	return c.JSON(h.analysisState(ctx, interview))
}

type wsAuthMessage struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// ServeAnalysisWs streams analysis snapshots for one interview. The first
// message from the client must be {"type":"auth","token":"..."}.
func (h *Handler) ServeAnalysisWs(c *websocketcontrib.Conn) {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid id"})
		c.Close()
		return
	}

	var auth wsAuthMessage
	if err := c.ReadJSON(&auth); err != nil || auth.Type != "auth" {
		log.Printf("WebSocket auth failed: invalid or missing auth message, error: %v", err)
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}
	userID, role, err := h.parseToken(auth.Token)
	if err != nil {
		log.Printf("WebSocket auth failed: %v", err)
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	ctx := context.Background()
	interview, err := h.Store.GetInterview(ctx, interviewID)
	if err != nil || (interview.StudentID != userID && interview.InterviewerID != userID && role != models.RoleAdmin) {
		_ = c.WriteJSON(fiber.Map{"error": "Interview not found"})
		c.Close()
		return
	}

	client := &websocket.Client{InterviewID: interviewID, Conn: c}
	h.Hub.Register(client)
	defer func() {
		h.Hub.Unregister(client)
		c.Close()
	}()
	h.Hub.Publish(interviewID, h.Analysis.Peek(interviewID).Snapshot(h.analysisCaps(ctx, interview)))

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				log.Printf("WebSocket read error on interview %s: %v", interviewID, err)
			}
			return
		}
	}
}

func (h *Handler) parseToken(tokenString string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.JWTSecret), nil
	})
	if err != nil {
		return uuid.Nil, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("invalid token")
	}
	raw, _ := claims["user_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, _ := claims["role"].(string)
	return id, role, nil
}
