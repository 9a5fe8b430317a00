package handlers

import (
	"github.com/anjiri1684/mockprep/services"
	"github.com/gofiber/fiber/v2"
)

// GetResumeSignature signs a direct browser upload of the student's resume.
func (h *Handler) GetResumeSignature(c *fiber.Ctx) error {
	if h.Media == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "File uploads are not configured"})
	}
	sig, err := h.Media.SignUpload(services.ResumeFolder, h.now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}
	return c.JSON(sig)
}
