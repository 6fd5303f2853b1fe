package domain

import "time"

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is a storefront purchase. Amounts are in minor currency units.
type Order struct {
	ID               string
	CustomerName     string
	Email            string
	Phone            string
	ShippingAddress  string
	Status           OrderStatus
	TotalAmount      int64
	PaymentReference *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItem is a line of an order.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   int64
	CreatedAt   time.Time
}

// Order line bounds. At these limits an order total stays well inside int64.
const (
	MaxOrderItems   = 100
	MaxItemQuantity = 1000
	MaxUnitPrice    = 100_000_000_000
)

// Subtotal returns quantity multiplied by unit price.
func (i OrderItem) Subtotal() int64 {
	return int64(i.Quantity) * i.UnitPrice
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
