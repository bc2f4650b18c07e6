package checkout

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkoutColumns = `id::text, user_id::text, items, shipping_address, payment_method, total_cents, payment_status, is_paid, payment_details, paid_at, is_finalized, finalized_at, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateCheckoutInput) (*domain.Checkout, error) {
	const q = `
INSERT INTO checkouts (user_id, items, shipping_address, payment_method, total_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + checkoutColumns
	row := r.pool.QueryRow(ctx, q, in.UserID, in.Items, in.ShippingAddress, in.PaymentMethod, in.TotalCents)
	c, err := scanCheckout(row)
	if err != nil {
		r.logger.Printf("checkout repo: create user_id=%s error=%v", in.UserID, err)
		return nil, err
	}
	r.logger.Printf("checkout repo: created id=%s user_id=%s total_cents=%d", c.ID, c.UserID, c.TotalCents)
	return c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Checkout, error) {
	const q = `
SELECT ` + checkoutColumns + `
FROM checkouts
WHERE id = $1
`
	c, err := scanCheckout(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) MarkPaid(ctx context.Context, id string, details map[string]interface{}) (*domain.Checkout, error) {
	const q = `
UPDATE checkouts
SET is_paid = true,
    payment_status = $2,
    payment_details = $3,
    paid_at = now()
WHERE id = $1
RETURNING ` + checkoutColumns
	c, err := scanCheckout(r.pool.QueryRow(ctx, q, id, domain.PaymentStatusPaid, details))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) MarkFinalized(ctx context.Context, id string) (*domain.Checkout, error) {
	const q = `
UPDATE checkouts
SET is_finalized = true,
    finalized_at = now()
WHERE id = $1 AND is_finalized = false
RETURNING ` + checkoutColumns
	c, err := scanCheckout(r.pool.QueryRow(ctx, q, id))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	// CAS missed: the checkout is gone or another caller finalized it first.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrAlreadyFinalized
}

func (r *postgresRepo) RevertFinalized(ctx context.Context, id string) error {
	const q = `
UPDATE checkouts
SET is_finalized = false,
    finalized_at = NULL
WHERE id = $1 AND is_finalized = true
`
	cmd, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCheckout(row pgx.Row) (*domain.Checkout, error) {
	var c domain.Checkout
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Items,
		&c.ShippingAddress,
		&c.PaymentMethod,
		&c.TotalCents,
		&c.PaymentStatus,
		&c.IsPaid,
		&c.PaymentDetails,
		&c.PaidAt,
		&c.IsFinalized,
		&c.FinalizedAt,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
