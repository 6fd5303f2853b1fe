package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// OrderService coordinates order workflows.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// OrderItemInput describes one line of a new order.
type OrderItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   int64
}

// OrderCreateInput describes order creation payload.
type OrderCreateInput struct {
	CustomerName    string
	Email           string
	Phone           string
	ShippingAddress string
	Items           []OrderItemInput
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher, logger: loggerOrNop(logger)}
}

// CreateOrder stores a pending order; the total is computed from the items.
func (s *OrderService) CreateOrder(ctx context.Context, input OrderCreateInput) (*domain.Order, []domain.OrderItem, error) {
	if len(input.Items) == 0 {
		return nil, nil, apperrors.NewValidationError("order requires at least one item", nil)
	}
	if len(input.Items) > domain.MaxOrderItems {
		return nil, nil, apperrors.NewValidationError("too many order items", map[string]any{"max": domain.MaxOrderItems})
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	var total int64
	for i, in := range input.Items {
		if in.Quantity < 1 || in.Quantity > domain.MaxItemQuantity || in.UnitPrice < 0 || in.UnitPrice > domain.MaxUnitPrice {
			return nil, nil, apperrors.NewValidationError("order item out of range", map[string]any{"item": i})
		}
		item := domain.OrderItem{
			ID:          uuid.NewString(),
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		}
		total += item.Subtotal()
		items = append(items, item)
	}

	order := &domain.Order{
		CustomerName:    input.CustomerName,
		Email:           input.Email,
		Phone:           input.Phone,
		ShippingAddress: input.ShippingAddress,
		Status:          domain.OrderStatusPending,
		TotalAmount:     total,
	}
	if err := s.orders.Create(ctx, order, items); err != nil {
		return nil, nil, apperrors.StoreError("order", err)
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventOrderCreated,
		EntityID: order.ID,
		Payload: events.OrderCreatedPayload{
			CustomerName: order.CustomerName,
			Email:        order.Email,
			TotalAmount:  order.TotalAmount,
			ItemCount:    len(items),
		},
	})
	return order, items, nil
}

// ListOrders returns newest orders first.
func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.StoreError("order", err)
	}
	return orders, nil
}

// GetOrder returns an order with its items.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, []domain.OrderItem, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperrors.StoreError("order", err)
	}
	items, err := s.orders.ListItems(ctx, id)
	if err != nil {
		return nil, nil, apperrors.StoreError("order items", err)
	}
	return order, items, nil
}

// UpdateStatus moves an order to status.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid order status", map[string]any{"status": status})
	}
	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperrors.StoreError("order", err)
	}
	return order, nil
}

// DeleteOrder removes the order's items and then the order. When the items
// cannot be removed the order is left untouched.
func (s *OrderService) DeleteOrder(ctx context.Context, id string, actorID *string) error {
	if err := s.orders.DeleteItems(ctx, id); err != nil {
		return apperrors.StoreError("order items", err)
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return apperrors.StoreError("order", err)
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{Type: events.EventOrderDeleted, EntityID: id, ActorID: actorID})
	return nil
}
