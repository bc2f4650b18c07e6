package order

import (
	"context"
	"errors"

	"storefront-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, user_id::text, items, shipping_address, payment_method, total_cents, is_paid, paid_at, is_delivered, payment_status, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (id, user_id, items, shipping_address, payment_method, total_cents, is_paid, paid_at, is_delivered, payment_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + orderColumns
	row := r.pool.QueryRow(ctx, q,
		o.ID,
		o.UserID,
		o.Items,
		o.ShippingAddress,
		o.PaymentMethod,
		o.TotalCents,
		o.IsPaid,
		o.PaidAt,
		o.IsDelivered,
		o.PaymentStatus,
	)
	return scanOrder(row)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Items,
		&o.ShippingAddress,
		&o.PaymentMethod,
		&o.TotalCents,
		&o.IsPaid,
		&o.PaidAt,
		&o.IsDelivered,
		&o.PaymentStatus,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}
