package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/payment"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// PaymentService passes checkout requests through to the payment gateway and
// records their outcome against orders.
type PaymentService struct {
	payments    repository.PaymentRepository
	orders      repository.OrderRepository
	gateway     payment.Gateway
	dispatcher  events.Dispatcher
	callbackURL string
	logger      *zap.Logger
}

// PaymentDependencies bundles collaborators for payment service.
type PaymentDependencies struct {
	PaymentRepo repository.PaymentRepository
	OrderRepo   repository.OrderRepository
	Gateway     payment.Gateway
	Dispatcher  events.Dispatcher
	CallbackURL string
	Logger      *zap.Logger
}

// NewPaymentService constructs the service.
func NewPaymentService(deps PaymentDependencies) *PaymentService {
	return &PaymentService{
		payments:    deps.PaymentRepo,
		orders:      deps.OrderRepo,
		gateway:     deps.Gateway,
		dispatcher:  deps.Dispatcher,
		callbackURL: deps.CallbackURL,
		logger:      loggerOrNop(deps.Logger),
	}
}

// Initialize opens a gateway transaction for an order. The charge is always
// the order total; a non-zero amount must equal it.
func (s *PaymentService) Initialize(ctx context.Context, orderID, email string, amount int64) (*domain.PaymentReference, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperrors.StoreError("order", err)
	}
	if order.TotalAmount <= 0 {
		return nil, apperrors.NewValidationError("order has nothing to pay", map[string]any{"orderId": orderID})
	}
	if amount != 0 && amount != order.TotalAmount {
		return nil, apperrors.NewValidationError("amount must match order total", map[string]any{
			"amount":     amount,
			"orderTotal": order.TotalAmount,
		})
	}
	amount = order.TotalAmount

	reference := "ord_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	res, err := s.gateway.Initialize(ctx, payment.InitializeRequest{
		Email:       email,
		Amount:      amount,
		Reference:   reference,
		CallbackURL: s.callbackURL,
		Metadata:    map[string]any{"order_id": order.ID},
	})
	if err != nil {
		return nil, apperrors.NewUpstreamError("payment initialization failed", err)
	}

	ref := &domain.PaymentReference{
		OrderID:          order.ID,
		Reference:        reference,
		Email:            email,
		Amount:           amount,
		Status:           domain.PaymentStatusPending,
		AuthorizationURL: res.AuthorizationURL,
	}
	if err := s.payments.Create(ctx, ref); err != nil {
		return nil, apperrors.StoreError("payment reference", err)
	}
	if err := s.orders.SetPaymentReference(ctx, order.ID, reference); err != nil {
		return nil, apperrors.StoreError("order", err)
	}
	return ref, nil
}

// Verify asks the gateway for the transaction state, records it and marks
// the order paid on a success that covers the order total. A short payment
// is recorded as failed.
func (s *PaymentService) Verify(ctx context.Context, reference string) (*payment.VerifyResult, error) {
	res, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, apperrors.NewUpstreamError("payment verification failed", err)
	}

	if res.Status != domain.PaymentStatusSuccess {
		if err := s.payments.UpdateStatus(ctx, reference, res.Status); err != nil {
			return nil, apperrors.StoreError("payment reference", err)
		}
		return res, nil
	}

	ref, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		return nil, apperrors.StoreError("payment reference", err)
	}
	order, err := s.orders.GetByID(ctx, ref.OrderID)
	if err != nil {
		return nil, apperrors.StoreError("order", err)
	}
	if res.Amount < ref.Amount || ref.Amount < order.TotalAmount {
		s.logger.Warn("payment does not cover order total",
			zap.String("reference", reference),
			zap.String("order_id", order.ID),
			zap.Int64("charged", res.Amount),
			zap.Int64("order_total", order.TotalAmount))
		if err := s.payments.UpdateStatus(ctx, reference, domain.PaymentStatusFailed); err != nil {
			return nil, apperrors.StoreError("payment reference", err)
		}
		return nil, apperrors.NewValidationError("payment amount does not cover order total", map[string]any{
			"reference":  reference,
			"charged":    res.Amount,
			"orderTotal": order.TotalAmount,
		})
	}

	if err := s.payments.UpdateStatus(ctx, reference, res.Status); err != nil {
		return nil, apperrors.StoreError("payment reference", err)
	}
	if _, err := s.orders.UpdateStatus(ctx, ref.OrderID, domain.OrderStatusPaid); err != nil {
		return nil, apperrors.StoreError("order", err)
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventPaymentVerified,
		EntityID: ref.ID,
		Payload: events.PaymentVerifiedPayload{
			OrderID:   ref.OrderID,
			Reference: ref.Reference,
			Email:     ref.Email,
			Status:    res.Status,
			Amount:    res.Amount,
		},
	})
	return res, nil
}
