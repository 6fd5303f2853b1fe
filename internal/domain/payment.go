package domain

import "time"

// PaymentStatus mirrors the gateway transaction states.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSuccess   PaymentStatus = "success"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusAbandoned PaymentStatus = "abandoned"
)

// PaymentReference links a gateway transaction to an order.
type PaymentReference struct {
	ID               string
	OrderID          string
	Reference        string
	Email            string
	Amount           int64
	Status           PaymentStatus
	AuthorizationURL string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
