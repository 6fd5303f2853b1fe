package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// PaymentRepository tracks gateway transactions per order.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.PaymentReference) error
	GetByReference(ctx context.Context, reference string) (*domain.PaymentReference, error)
	UpdateStatus(ctx context.Context, reference string, status domain.PaymentStatus) error
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository constructs repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.PaymentReference) error {
	const query = `
        INSERT INTO payment_references (order_id, reference, email, amount, status, authorization_url)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		payment.OrderID,
		payment.Reference,
		payment.Email,
		payment.Amount,
		payment.Status,
		payment.AuthorizationURL,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

func (r *paymentRepository) GetByReference(ctx context.Context, reference string) (*domain.PaymentReference, error) {
	const query = `
        SELECT id, order_id, reference, email, amount, status, authorization_url, created_at, updated_at
        FROM payment_references WHERE reference=$1`
	var payment domain.PaymentReference
	if err := r.pool.QueryRow(ctx, query, reference).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Reference,
		&payment.Email,
		&payment.Amount,
		&payment.Status,
		&payment.AuthorizationURL,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, reference string, status domain.PaymentStatus) error {
	const query = `
        UPDATE payment_references SET status=$1, updated_at=NOW()
        WHERE reference=$2`
	_, err := r.pool.Exec(ctx, query, status, reference)
	return err
}
