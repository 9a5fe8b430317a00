package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Mailer delivers transactional email. Delivery is best effort: failures are
// logged, never returned to the caller.
type Mailer interface {
	SendEmail(toName, toEmail, subject, htmlContent string)
}

type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	Endpoint    string
	Client      *http.Client
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// NewMailer returns a Brevo client, or a LogMailer when any of the Brevo
// settings are missing.
func NewMailer(apiKey, senderEmail, senderName string) Mailer {
	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		return LogMailer{}
	}

	log.Printf("✅ Email service initialized for %s <%s>", senderName, senderEmail)
	return &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		Endpoint:    brevoEndpoint,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *BrevoService) send(toEmail, toName, subject, htmlContent string) error {
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		log.Printf("Brevo API error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return fmt.Errorf("failed to send email via Brevo: %s", string(bodyBytes))
	}
	return nil
}

func (s *BrevoService) SendEmail(toName, toEmail, subject, htmlContent string) {
	if err := s.send(toEmail, toName, subject, htmlContent); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", toEmail, err)
		return
	}
	log.Printf("✅ Email sent successfully to %s", toEmail)
}

// LogMailer stands in when Brevo is not configured.
type LogMailer struct{}

func (LogMailer) SendEmail(toName, toEmail, subject, _ string) {
	log.Printf("Email client not configured, skipping %q to %s <%s>", subject, toName, toEmail)
}
