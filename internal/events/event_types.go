package events

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated                EventType = "order_created"
	EventOrderDeleted                EventType = "order_deleted"
	EventPaymentVerified             EventType = "payment_verified"
	EventJobApplicationStatusChanged EventType = "job_application_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	ActorID   *string     `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	TotalAmount  int64  `json:"total_amount"`
	ItemCount    int    `json:"item_count"`
}

// PaymentVerifiedPayload payload.
type PaymentVerifiedPayload struct {
	OrderID   string               `json:"order_id"`
	Reference string               `json:"reference"`
	Email     string               `json:"email"`
	Status    domain.PaymentStatus `json:"status"`
	Amount    int64                `json:"amount"`
}

// JobApplicationStatusChangedPayload payload.
type JobApplicationStatusChangedPayload struct {
	FullName  string                      `json:"full_name"`
	Email     string                      `json:"email"`
	Position  string                      `json:"position"`
	OldStatus domain.JobApplicationStatus `json:"old_status"`
	NewStatus domain.JobApplicationStatus `json:"new_status"`
}
