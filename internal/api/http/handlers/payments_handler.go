package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// PaymentsHandler starts and confirms gateway checkouts.
type PaymentsHandler struct {
	payments PaymentProcessor
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments PaymentProcessor) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// Initialize handles POST /api/payments/initialize.
func (h *PaymentsHandler) Initialize(c *fiber.Ctx) error {
	var req dto.PaymentInitializeRequest
	if err := dto.Bind(c, &req); err != nil {
		return err
	}
	ref, err := h.payments.Initialize(c.UserContext(), req.OrderID, req.Email, req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":          true,
		"authorizationUrl": ref.AuthorizationURL,
		"reference":        ref.Reference,
	})
}

// Verify handles GET /api/payments/verify/:reference.
func (h *PaymentsHandler) Verify(c *fiber.Ctx) error {
	reference := strings.TrimSpace(c.Params("reference"))
	if reference == "" {
		return apperrors.NewValidationError("reference required", nil)
	}
	res, err := h.payments.Verify(c.UserContext(), reference)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"status":  res.Status,
		"data": fiber.Map{
			"reference":       res.Reference,
			"amount":          res.Amount,
			"currency":        res.Currency,
			"paidAt":          res.PaidAt,
			"gatewayResponse": res.GatewayResponse,
		},
	})
}
