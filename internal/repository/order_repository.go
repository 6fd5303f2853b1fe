package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// OrderRepository encapsulates order and order item persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	ListItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	SetPaymentReference(ctx context.Context, id, reference string) error
	DeleteItems(ctx context.Context, orderID string) error
	Delete(ctx context.Context, id string) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `id, customer_name, email, phone, shipping_address, status, total_amount, payment_reference, created_at, updated_at`

// Create inserts the order and its items in one transaction. Item IDs and
// OrderID are filled in on success.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const orderQuery = `
            INSERT INTO orders (customer_name, email, phone, shipping_address, status, total_amount)
            VALUES ($1,$2,$3,$4,$5,$6)
            RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, orderQuery,
			order.CustomerName,
			order.Email,
			order.Phone,
			order.ShippingAddress,
			order.Status,
			order.TotalAmount,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		const itemQuery = `
            INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price)
            VALUES ($1,$2,$3,$4,$5,$6)
            RETURNING created_at`
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.QueryRow(ctx, itemQuery,
				items[i].ID,
				items[i].OrderID,
				items[i].ProductID,
				items[i].ProductName,
				items[i].Quantity,
				items[i].UnitPrice,
			).Scan(&items[i].CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) ListItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, product_id, product_name, quantity, unit_price, created_at
        FROM order_items WHERE order_id=$1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	query := `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + orderColumns
	return scanOrder(r.pool.QueryRow(ctx, query, status, id))
}

func (r *orderRepository) SetPaymentReference(ctx context.Context, id, reference string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET payment_reference=$1, updated_at=NOW() WHERE id=$2`, reference, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) DeleteItems(ctx context.Context, orderID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, orderID)
	return err
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.Email,
		&order.Phone,
		&order.ShippingAddress,
		&order.Status,
		&order.TotalAmount,
		&order.PaymentReference,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}
