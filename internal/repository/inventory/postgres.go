package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

func (r *postgresRepo) CheckStock(ctx context.Context, productID string) (int, error) {
	const q = `
SELECT count_in_stock
FROM products
WHERE id = $1
`
	var stock int
	if err := r.pool.QueryRow(ctx, q, productID).Scan(&stock); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return stock, nil
}

// AdjustStock is a single conditional UPDATE. The floor check lives in
// the WHERE clause, so a decrement either lands atomically or touches
// nothing; there is no read-then-write gap for concurrent callers to
// slip through.
func (r *postgresRepo) AdjustStock(ctx context.Context, productID string, delta int) (int, error) {
	const q = `
UPDATE products
SET count_in_stock = count_in_stock + $2
WHERE id = $1 AND count_in_stock + $2 >= 0
RETURNING count_in_stock
`
	var stock int
	err := r.pool.QueryRow(ctx, q, productID, delta).Scan(&stock)
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.logger.Printf("inventory repo: adjust product_id=%s delta=%d error=%v", productID, delta, err)
		return 0, err
	}

	// No row updated: either the product is gone or the floor check failed.
	current, checkErr := r.CheckStock(ctx, productID)
	if checkErr != nil {
		return 0, checkErr
	}
	return current, fmt.Errorf("product %s has %d in stock, need %d: %w", productID, current, -delta, domain.ErrInsufficientStock)
}
