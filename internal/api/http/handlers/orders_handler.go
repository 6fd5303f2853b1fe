package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
)

// OrdersHandler exposes checkout and admin order endpoints.
type OrdersHandler struct {
	orders OrderManager
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders OrderManager) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderCreateRequest
	if err := dto.Bind(c, &req); err != nil {
		return err
	}
	order, items, err := h.orders.CreateOrder(c.UserContext(), req.Input())
	if err != nil {
		return err
	}
	detail := dto.NewOrderDetailResponse(order, items)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   detail.Order,
		"items":   detail.Items,
	})
}

// List handles GET /api/admin/orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	orders, err := h.orders.ListOrders(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponses(orders)})
}

// Get handles GET /api/admin/orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	order, items, err := h.orders.GetOrder(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderDetailResponse(order, items)})
}

// UpdateStatus handles PATCH /api/admin/orders/:id.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.OrderStatusRequest
	if err := dto.Bind(c, &req); err != nil {
		return err
	}
	order, err := h.orders.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated",
		"data":    dto.NewOrderResponse(order),
	})
}

// Delete handles DELETE /api/admin/orders/:id. Items are removed before the
// order itself.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.orders.DeleteOrder(c.UserContext(), id, actorID(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
