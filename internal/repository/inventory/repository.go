package inventory

import "context"

// Repository owns per-product stock counts.
type Repository interface {
	// CheckStock returns the current stock for a product, or
	// domain.ErrNotFound if the product does not exist.
	CheckStock(ctx context.Context, productID string) (int, error)
	// AdjustStock applies delta to a product's stock and returns the new
	// quantity. A negative delta fails with domain.ErrInsufficientStock
	// if it would drive the count below zero, leaving the stored value
	// unchanged. A positive delta always succeeds for an existing product.
	AdjustStock(ctx context.Context, productID string, delta int) (int, error)
}
