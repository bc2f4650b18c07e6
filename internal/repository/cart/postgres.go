package cart

import (
	"context"
	"errors"

	"storefront-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	const q = `
SELECT id::text, user_id::text, items, total_cents, created_at
FROM carts
WHERE user_id = $1
`
	var c domain.Cart
	err := r.pool.QueryRow(ctx, q, userID).Scan(&c.ID, &c.UserID, &c.Items, &c.TotalCents, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Cart) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (user_id, items, total_cents)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE
SET items = EXCLUDED.items,
    total_cents = EXCLUDED.total_cents
RETURNING id::text, user_id::text, items, total_cents, created_at
`
	var out domain.Cart
	err := r.pool.QueryRow(ctx, q, c.UserID, c.Items, c.TotalCents).Scan(&out.ID, &out.UserID, &out.Items, &out.TotalCents, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) DeleteByUser(ctx context.Context, userID string) error {
	const q = `
DELETE FROM carts
WHERE user_id = $1
`
	_, err := r.pool.Exec(ctx, q, userID)
	return err
}
