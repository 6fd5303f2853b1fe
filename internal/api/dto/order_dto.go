package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
)

// OrderItemRequest is one line of a checkout.
type OrderItemRequest struct {
	ProductID   string `json:"productId" validate:"required,max=100"`
	ProductName string `json:"productName" validate:"required,max=200"`
	Quantity    int    `json:"quantity" validate:"min=1,max=1000"`
	UnitPrice   int64  `json:"unitPrice" validate:"gte=0,max=100000000000"`
}

// OrderCreateRequest payload.
type OrderCreateRequest struct {
	CustomerName    string             `json:"customerName" validate:"required,max=200"`
	Email           string             `json:"email" validate:"required,email"`
	Phone           string             `json:"phone" validate:"max=40"`
	ShippingAddress string             `json:"shippingAddress" validate:"required,max=500"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

func (r *OrderCreateRequest) Validate() error {
	trim(&r.CustomerName, &r.Email, &r.Phone, &r.ShippingAddress)
	for i := range r.Items {
		trim(&r.Items[i].ProductID, &r.Items[i].ProductName)
	}
	return validate.Struct(r)
}

// Input converts the request for the order service.
func (r *OrderCreateRequest) Input() service.OrderCreateInput {
	items := make([]service.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.OrderItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return service.OrderCreateInput{
		CustomerName:    r.CustomerName,
		Email:           r.Email,
		Phone:           r.Phone,
		ShippingAddress: r.ShippingAddress,
		Items:           items,
	}
}

// OrderStatusRequest payload for admin status changes.
type OrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required,oneof=pending paid processing shipped delivered cancelled"`
}

func (r *OrderStatusRequest) Validate() error {
	return validate.Struct(r)
}

// OrderResponse shape.
type OrderResponse struct {
	ID               string             `json:"id"`
	CustomerName     string             `json:"customerName"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	ShippingAddress  string             `json:"shippingAddress"`
	Status           domain.OrderStatus `json:"status"`
	TotalAmount      int64              `json:"totalAmount"`
	PaymentReference *string            `json:"paymentReference"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// OrderItemResponse shape.
type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Subtotal    int64  `json:"subtotal"`
}

// OrderDetailResponse pairs an order with its lines.
type OrderDetailResponse struct {
	Order OrderResponse       `json:"order"`
	Items []OrderItemResponse `json:"items"`
}

func NewOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		Email:            o.Email,
		Phone:            o.Phone,
		ShippingAddress:  o.ShippingAddress,
		Status:           o.Status,
		TotalAmount:      o.TotalAmount,
		PaymentReference: o.PaymentReference,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func NewOrderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}

func NewOrderDetailResponse(o *domain.Order, items []domain.OrderItem) OrderDetailResponse {
	lines := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return OrderDetailResponse{Order: NewOrderResponse(o), Items: lines}
}
