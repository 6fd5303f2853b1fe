package handlers

import (
	"context"
	"time"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/payment"
	"github.com/spec-kit/storefront-service/internal/service"
)

// The interfaces below are the slices of the service layer each handler
// calls. The concrete services in internal/service satisfy them.

// AdminSessions issues, verifies and revokes admin sessions.
type AdminSessions interface {
	Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error)
	Session(ctx context.Context, token string) (*auth.Identity, error)
	Logout(ctx context.Context, token string)
}

// ContactSender forwards contact form messages.
type ContactSender interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

// OrderManager covers storefront checkout and admin order management.
type OrderManager interface {
	CreateOrder(ctx context.Context, input service.OrderCreateInput) (*domain.Order, []domain.OrderItem, error)
	ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, []domain.OrderItem, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string, actorID *string) error
}

// JobApplicationManager covers careers submissions and their review.
type JobApplicationManager interface {
	Submit(ctx context.Context, input service.JobApplicationInput) (*domain.JobApplication, error)
	List(ctx context.Context, status *domain.JobApplicationStatus) ([]domain.JobApplication, error)
	Get(ctx context.Context, id string) (*domain.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.JobApplicationStatus, actorID *string) (*domain.JobApplication, error)
	Delete(ctx context.Context, id string) error
}

// BankDetailStore reads and replaces the payout account.
type BankDetailStore interface {
	Get(ctx context.Context) (*domain.BankDetail, error)
	Save(ctx context.Context, bankName, accountName, accountNumber string) (*domain.BankDetail, error)
}

// PaymentProcessor talks to the payment gateway on behalf of checkout.
type PaymentProcessor interface {
	Initialize(ctx context.Context, orderID, email string, amount int64) (*domain.PaymentReference, error)
	Verify(ctx context.Context, reference string) (*payment.VerifyResult, error)
}

var (
	_ AdminSessions         = (*service.AuthService)(nil)
	_ ContactSender         = (*service.ContactService)(nil)
	_ OrderManager          = (*service.OrderService)(nil)
	_ JobApplicationManager = (*service.JobApplicationService)(nil)
	_ BankDetailStore       = (*service.BankDetailService)(nil)
	_ PaymentProcessor      = (*service.PaymentService)(nil)
)
