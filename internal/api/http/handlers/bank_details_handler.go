package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// BankDetailsHandler serves the transfer account shown at checkout.
type BankDetailsHandler struct {
	details BankDetailStore
	logger  *zap.Logger
}

// NewBankDetailsHandler constructs handler.
func NewBankDetailsHandler(details BankDetailStore, logger *zap.Logger) *BankDetailsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankDetailsHandler{details: details, logger: logger}
}

// Get handles GET /api/bank-details. The storefront expects a
// {success, message} body on failure rather than the error envelope.
func (h *BankDetailsHandler) Get(c *fiber.Ctx) error {
	detail, err := h.details.Get(c.UserContext())
	if err != nil {
		domainErr := apperrors.ToDomainError(err)
		if domainErr.Code == "NOT_FOUND" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Bank details not found",
			})
		}
		h.logger.Error("bank details lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch bank details",
		})
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"bankDetails": dto.NewBankDetailResponse(detail),
	})
}

// Update handles PUT /api/admin/bank-details.
func (h *BankDetailsHandler) Update(c *fiber.Ctx) error {
	var req dto.BankDetailRequest
	if err := dto.Bind(c, &req); err != nil {
		return err
	}
	detail, err := h.details.Save(c.UserContext(), req.BankName, req.AccountName, req.AccountNumber)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"bankDetails": dto.NewBankDetailResponse(detail),
	})
}
