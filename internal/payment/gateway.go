package payment

import (
	"context"
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// InitializeRequest starts a hosted checkout. Amount is in minor units.
type InitializeRequest struct {
	Email       string
	Amount      int64
	Reference   string
	CallbackURL string
	Metadata    map[string]any
}

// InitializeResult is returned by the gateway for a new transaction.
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is the settled state of a transaction.
type VerifyResult struct {
	Reference       string
	Status          domain.PaymentStatus
	Amount          int64
	Currency        string
	PaidAt          *time.Time
	GatewayResponse string
}

// Gateway is the hosted payment provider.
type Gateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
