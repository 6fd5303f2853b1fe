package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
)

// ContactHandler accepts storefront contact form submissions.
type ContactHandler struct {
	contact ContactSender
}

// NewContactHandler constructs handler.
func NewContactHandler(contact ContactSender) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := dto.Bind(c, &req); err != nil {
		return err
	}
	if err := h.contact.Submit(c.UserContext(), req.ContactMessage()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully",
	})
}
